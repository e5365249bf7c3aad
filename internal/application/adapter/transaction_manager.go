package adapter

import "context"

// TransactionManager runs a function inside a single storage transaction.
// Repository calls made with the context passed to fn join that transaction,
// so a session mutation and its goal/subject/topic counter adjustments
// commit or roll back together.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

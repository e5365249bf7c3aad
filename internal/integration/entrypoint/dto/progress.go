package dto

import (
	"github.com/study-tracker/backend/internal/application/usecase/progress"
)

// ProgressResponse represents the computed progress figures for a goal or
// subject over the requested view window. HasTarget distinguishes "no
// schedule configured" from "0% complete".
type ProgressResponse struct {
	View             string  `json:"view"`
	ReferenceDate    string  `json:"reference_date"`
	TargetMinutes    int     `json:"target_minutes"`
	StudiedMinutes   int     `json:"studied_minutes"`
	Percentage       float64 `json:"percentage"`
	RemainingMinutes int     `json:"remaining_minutes"`
	HasTarget        bool    `json:"has_target"`
}

// ToProgressResponse converts a ComputeProgressOutput to a ProgressResponse DTO.
func ToProgressResponse(output *progress.ComputeProgressOutput) ProgressResponse {
	return ProgressResponse{
		View:             string(output.View),
		ReferenceDate:    output.ReferenceDate,
		TargetMinutes:    output.TargetMinutes,
		StudiedMinutes:   output.StudiedMinutes,
		Percentage:       output.Percentage,
		RemainingMinutes: output.RemainingMinutes,
		HasTarget:        output.HasTarget,
	}
}

package model

// SummaryRequest is a clinician prompt after trimming.
type SummaryRequest struct {
	Prompt string `validate:"required"`
}

// ChatSummary is the single paragraph returned to the clinician
type ChatSummary struct {
	Summary string `json:"summary"`
}

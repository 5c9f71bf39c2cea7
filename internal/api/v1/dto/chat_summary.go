package dto

// ChatSummaryRequestDTO is the body of POST /chat/summary
type ChatSummaryRequestDTO struct {
	Prompt string `json:"prompt"`
}

// ChatSummaryResponseDTO is returned on a successful summary
type ChatSummaryResponseDTO struct {
	Summary string `json:"summary"`
}

package dto

type CaseAttachmentDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size"`
}

// CaseStudyResponseDTO is the full case study returned by GET /cases/{id}
type CaseStudyResponseDTO struct {
	ID                    string              `json:"id"`
	Title                 string              `json:"title"`
	Author                string              `json:"author"`
	ShortDescription      string              `json:"shortDescription"`
	AbstractSummary       string              `json:"abstractSummary"`
	InitialPresentation   string              `json:"initialPresentation"`
	KeyChallenge          string              `json:"keyChallenge"`
	CollaborativeInsights string              `json:"collaborativeInsights"`
	FinalDiagnosis        string              `json:"finalDiagnosis"`
	PatientOutcome        string              `json:"patientOutcome"`
	Attachments           []CaseAttachmentDTO `json:"attachments"`
}

// CaseSummaryResponseDTO is one entry of GET /cases
type CaseSummaryResponseDTO struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
}

package model

// CaseAttachment describes a file shared alongside a case study
type CaseAttachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size"`
}

// CaseStudy is a shared clinical case
type CaseStudy struct {
	ID                    string           `json:"id"`
	Title                 string           `json:"title"`
	Author                string           `json:"author"`
	ShortDescription      string           `json:"shortDescription"`
	AbstractSummary       string           `json:"abstractSummary"`
	InitialPresentation   string           `json:"initialPresentation"`
	KeyChallenge          string           `json:"keyChallenge"`
	CollaborativeInsights string           `json:"collaborativeInsights"`
	FinalDiagnosis        string           `json:"finalDiagnosis"`
	PatientOutcome        string           `json:"patientOutcome"`
	Attachments           []CaseAttachment `json:"attachments"`
	Featured              bool             `json:"featured"`
}

// CaseSummary is the short projection of a case study used in listings
type CaseSummary struct {
	ID               string
	Title            string
	ShortDescription string
}

// CaseStudyFilter narrows a case study listing.
// IDs, when set, also fixes the order of the result.
type CaseStudyFilter struct {
	IDs          []string
	FeaturedOnly bool
}

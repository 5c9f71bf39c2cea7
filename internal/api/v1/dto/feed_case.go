package dto

type CaseCommentDTO struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Specialty string `json:"specialty"`
	Initials  string `json:"initials"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
	IsReply   bool   `json:"isReply"`
}

type FeedCaseStatsDTO struct {
	Likes    int `json:"likes"`
	Insights int `json:"insights"`
	Support  int `json:"support"`
}

// FeedCaseSummaryResponseDTO is one card of GET /feed
type FeedCaseSummaryResponseDTO struct {
	ID           string           `json:"id"`
	Doctor       string           `json:"doctor"`
	Specialty    string           `json:"specialty"`
	Initials     string           `json:"initials"`
	PostedDate   string           `json:"postedDate"`
	Title        string           `json:"title"`
	KeyChallenge string           `json:"keyChallenge"`
	Stats        FeedCaseStatsDTO `json:"stats"`
	CommentCount int              `json:"commentCount"`
}

// FeedCaseResponseDTO is the full case returned by GET /feed/{id}
type FeedCaseResponseDTO struct {
	ID           string              `json:"id"`
	Doctor       string              `json:"doctor"`
	Specialty    string              `json:"specialty"`
	Initials     string              `json:"initials"`
	PostedDate   string              `json:"postedDate"`
	Title        string              `json:"title"`
	Summary      string              `json:"summary"`
	KeyChallenge string              `json:"keyChallenge"`
	Demographics string              `json:"demographics"`
	Symptoms     []string            `json:"symptoms"`
	Conditions   string              `json:"conditions"`
	Treatments   []string            `json:"treatments"`
	Attachments  []CaseAttachmentDTO `json:"attachments"`
	Stats        FeedCaseStatsDTO    `json:"stats"`
	Comments     []CaseCommentDTO    `json:"comments"`
}

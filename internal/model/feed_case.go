package model

// CaseComment is one clinician reply in a feed case discussion
type CaseComment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Specialty string `json:"specialty"`
	Initials  string `json:"initials"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
	IsReply   bool   `json:"isReply"`
}

type FeedCaseStats struct {
	Likes    int `json:"likes"`
	Insights int `json:"insights"`
	Support  int `json:"support"`
}

// FeedCase is a clinical case shared to the community feed
type FeedCase struct {
	ID           string           `json:"id"`
	Doctor       string           `json:"doctor"`
	Specialty    string           `json:"specialty"`
	Initials     string           `json:"initials"`
	PostedDate   string           `json:"postedDate"`
	Title        string           `json:"title"`
	Summary      string           `json:"summary"`
	KeyChallenge string           `json:"keyChallenge"`
	Demographics string           `json:"demographics"`
	Symptoms     []string         `json:"symptoms"`
	Conditions   string           `json:"conditions"`
	Treatments   []string         `json:"treatments"`
	Attachments  []CaseAttachment `json:"attachments"`
	Stats        FeedCaseStats    `json:"stats"`
	Comments     []CaseComment    `json:"comments"`
}

// FeedCaseFilter narrows the feed. Specialty matches case-insensitively.
type FeedCaseFilter struct {
	Specialty string
}

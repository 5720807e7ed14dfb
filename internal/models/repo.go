package models

// Repo is the normalized projection of a raw search result used by the
// analyzer and the report. Every field is populated after normalization;
// missing source fields get explicit defaults.
type Repo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Stars       int      `json:"stars"`
	Language    string   `json:"language"`
	CreatedAt   string   `json:"created_at"`
	Topics      []string `json:"topics"`
}

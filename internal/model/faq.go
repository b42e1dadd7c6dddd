package model

// FAQ is an indexable knowledge-base entry.
type FAQ struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	ShortAnswer string `json:"shortAnswer,omitempty"`
	LinkURL     string `json:"linkUrl,omitempty"`
}

// FAQResult is the best match for a search query.
type FAQResult struct {
	Question    string  `json:"question"`
	Answer      string  `json:"answer"`
	ShortAnswer string  `json:"shortAnswer,omitempty"`
	LinkURL     string  `json:"linkUrl,omitempty"`
	Confidence  float64 `json:"confidence"`
}

package summarize

import "errors"

type SummarizeDTO struct {
	Text string `json:"text"`
	URL  string `json:"url" binding:"omitempty,url"`
	Save bool   `json:"save"`
}

type summarizeResponse struct {
	ID        string   `json:"id,omitempty"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
	WordCount int      `json:"word_count"`
	Saved     bool     `json:"saved"`
}

var (
	// ErrMissingInput is returned when neither text nor url is provided,
	// or when both are.
	ErrMissingInput = errors.New("either text or url must be provided")
	// ErrExtraction wraps any failure to obtain usable text from a URL.
	ErrExtraction = errors.New("content extraction failed")
	// ErrModelCall wraps upstream model transport or response errors.
	ErrModelCall = errors.New("model call failed")
)

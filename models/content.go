// Package models defines the data structures shared by the extractors,
// the synthesizer, and the CLI.
package models

// Content describes one piece of editorial content to classify.
// Every field is optional; extractors skip what is missing.
type Content struct {
	// SectionPath is a URL or an explicit section path like "/technology/ai".
	SectionPath string `json:"section_path,omitempty"`
	Title       string `json:"title,omitempty"`
	Body        string `json:"body,omitempty"`
	Byline      string `json:"byline,omitempty"`
}

// Text returns the title and body joined for text-based extractors.
func (c Content) Text() string {
	return c.Title + " " + c.Body
}

// Empty reports whether the descriptor carries no usable fields.
func (c Content) Empty() bool {
	return c.SectionPath == "" && c.Title == "" && c.Body == "" && c.Byline == ""
}

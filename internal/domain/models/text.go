package models

// TextCheckRequest is the body of POST /api/v1/classify/text.
// Subject is optional; it is concatenated with the body before scanning.
type TextCheckRequest struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// TextCheckResponse wraps the verdict for a scanned message body.
type TextCheckResponse struct {
	Verdict *Verdict `json:"verdict"`
}

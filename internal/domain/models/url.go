package models

// ParsedURL is the normalized decomposition of a raw URL string.
type ParsedURL struct {
	Scheme string `json:"scheme"`
	Host   string `json:"host"`
	Path   string `json:"path"`
}

// URLCheckRequest is the body of POST /api/v1/classify/url.
type URLCheckRequest struct {
	URL string `json:"url"`
}

// URLCheckResponse wraps the verdict for a checked URL.
type URLCheckResponse struct {
	URL     string   `json:"url"`
	Verdict *Verdict `json:"verdict"`
}

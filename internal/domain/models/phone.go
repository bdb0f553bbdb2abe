package models

// CallerCategory is the coarse taxonomy of who is likely calling.
type CallerCategory string

const (
	CategoryIndividual      CallerCategory = "individual"
	CategoryGeneralBusiness CallerCategory = "general_business"
	CategoryPublicAuthority CallerCategory = "public_authority"
	CategoryBank            CallerCategory = "bank"
	CategoryInternational   CallerCategory = "international"
	CategorySpecial         CallerCategory = "special"
	CategoryUnknown         CallerCategory = "unknown"
	CategoryOther           CallerCategory = "other"
)

// Confidence expresses how certain the caller-type resolution is.
type Confidence string

const (
	ConfidenceLow     Confidence = "low"
	ConfidenceMedium  Confidence = "medium"
	ConfidenceHigh    Confidence = "high"
	ConfidenceCertain Confidence = "certain"
)

// CallerProfile classifies who is likely behind a phone number.
// It is produced once per phone classification and not modified after.
type CallerProfile struct {
	Type       string         `json:"type"`
	Category   CallerCategory `json:"category"`
	Confidence Confidence     `json:"confidence"`
	Details    []string       `json:"details"`
}

// PhoneCheckRequest is the body of POST /api/v1/classify/phone.
type PhoneCheckRequest struct {
	Number string `json:"number"`
}

// PhoneCheckResponse pairs the verdict with the resolved caller profile.
type PhoneCheckResponse struct {
	Number     string         `json:"number"`
	Normalized string         `json:"normalized"`
	Verdict    *Verdict       `json:"verdict"`
	Caller     *CallerProfile `json:"caller"`
}

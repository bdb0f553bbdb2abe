package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportedCase is a single user report about a phone number. The case log
// is append-only: reporting the same number twice produces two cases.
type ReportedCase struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"` // normalized digits
	Description string    `json:"description"`
	ReportedAt  time.Time `json:"reported_at"`
}

// DomainReportRequest is the body of POST /api/v1/report/domain.
type DomainReportRequest struct {
	Domain string `json:"domain"`
	Reason string `json:"reason,omitempty"`
}

// DomainReportResponse tells the caller whether the domain was newly added.
type DomainReportResponse struct {
	Added bool `json:"added"`
}

// PhoneReportRequest is the body of POST /api/v1/report/phone.
type PhoneReportRequest struct {
	Number string `json:"number"`
	Reason string `json:"reason,omitempty"`
}

// PhoneReportResponse confirms the report was recorded.
type PhoneReportResponse struct {
	Recorded bool          `json:"recorded"`
	Case     *ReportedCase `json:"case,omitempty"`
}

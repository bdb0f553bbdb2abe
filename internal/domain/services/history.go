package services

import (
	"sync"
	"time"

	"scamguard/internal/domain/models"
)

const historyCapacity = 200

// HistoryEntry records one past classification.
type HistoryEntry struct {
	Kind      string           `json:"kind"` // phone, url, text
	Input     string           `json:"input"`
	RiskLevel models.RiskLevel `json:"risk_level"`
	RiskScore int              `json:"risk_score"`
	CheckedAt time.Time        `json:"checked_at"`
}

// History is a capped in-memory log of recent classifications. It lives for
// the process lifetime only; nothing is persisted.
type History struct {
	mu      sync.Mutex
	entries []HistoryEntry
}

// NewHistory creates an empty history log.
func NewHistory() *History {
	return &History{}
}

// Record appends an entry, evicting the oldest once the cap is reached.
func (h *History) Record(kind, input string, v *models.Verdict) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, HistoryEntry{
		Kind:      kind,
		Input:     input,
		RiskLevel: v.RiskLevel,
		RiskScore: v.RiskScore,
		CheckedAt: v.CheckedAt,
	})
	if len(h.entries) > historyCapacity {
		h.entries = h.entries[len(h.entries)-historyCapacity:]
	}
}

// Recent returns up to n entries, newest last.
func (h *History) Recent(n int) []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 || n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]HistoryEntry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

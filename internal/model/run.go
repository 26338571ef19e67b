package model

import "time"

// Run is one persisted analysis: the exhibition analyzed, the full
// result, and summary counts for listing.
type Run struct {
	ID              string    `json:"id"`
	ExhibitionTitle string    `json:"exhibition_title"`
	ExhibitionType  *float64  `json:"exhibition_type,omitempty"`
	Result          *Result   `json:"result,omitempty"`
	InsightCount    int       `json:"insight_count"`
	DraftCount      int       `json:"draft_count"`
	CreatedAt       time.Time `json:"created_at"`
}

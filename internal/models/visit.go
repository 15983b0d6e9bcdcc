package models

import (
	"time"
)

// Visit is one append-only page-view row. No session id, no path; the
// client fires one POST per page view and never reads the response body.
type Visit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VisitedAt time.Time `gorm:"not null;index" json:"visit_timestamp"`
}

// VisitBucket is one aggregated point of the visits summary. Bucket is the
// truncated UTC instant the count belongs to.
type VisitBucket struct {
	Bucket time.Time `json:"bucket"`
	Count  int64     `json:"count"`
}

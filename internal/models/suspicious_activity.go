package models

import "time"

// SuspiciousActivity is an append-only advisory flag produced by the
// report-rate heuristic. It never blocks anything by itself.
type SuspiciousActivity struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	RepID     string    `gorm:"not null;index" json:"repId"`
	Reason    string    `gorm:"not null" json:"reason"`
	CreatedAt time.Time `json:"createdAt"`

	Rep *Rep `gorm:"foreignKey:RepID" json:"-"`
}

// SuspiciousActivityItem is a feed row with the flagged rep attached.
type SuspiciousActivityItem struct {
	SuspiciousActivity
	RepItem *FlaggedRep `json:"rep,omitempty"`
}

// FlaggedRep is the rep shape shown in the admin activity feed.
type FlaggedRep struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsFraud bool   `json:"isFraud"`
}

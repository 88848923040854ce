package model

import "time"

// Ballot is the single vote record belonging to one user. The unique index on
// UserID is the authoritative guard against double voting.
type Ballot struct {
	ID          uint `gorm:"primarykey"`
	UserID      uint `gorm:"not null;uniqueIndex"`
	CandidateID uint `gorm:"not null"`
	CreatedAt   time.Time
}

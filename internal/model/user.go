package model

import (
	"time"
)

type User struct {
	ID                    uint   `gorm:"primarykey"`
	Name                  string `gorm:"not null"`
	Email                 string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash          string
	FirebaseUID           *string `gorm:"uniqueIndex"`
	PictureURL            string
	Verified              bool `gorm:"not null;default:false"`
	VerificationCode      string
	VerificationExpiresAt *time.Time
	ResetCode             string
	ResetExpiresAt        *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

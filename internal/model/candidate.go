package model

import "time"

type Candidate struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null"`
	Party     string
	ImageURL  string
	CreatedAt time.Time
}

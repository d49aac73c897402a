package models

import "time"

type Goal struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"userId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1024" json:"description,omitempty"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	TargetDate  time.Time `gorm:"not null" json:"targetDate"`
	TargetValue float64   `gorm:"not null" json:"targetValue"`
	Unit        string    `gorm:"size:32;not null" json:"unit"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

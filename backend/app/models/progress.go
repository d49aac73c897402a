package models

import "time"

type Progress struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"userId"`
	GoalID    string    `gorm:"index;size:36;not null" json:"goalId"`
	Date      time.Time `gorm:"not null" json:"date"`
	Value     float64   `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

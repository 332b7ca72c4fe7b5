package models

import "time"

// Subject carries a positive credit weight used for GPA calculation.
type Subject struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Description string    `json:"description,omitempty"`
	Credits     int       `json:"credits" gorm:"default:3" validate:"gt=0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	Results     []*Result `json:"results,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

// DefaultCredits is the credit weight assigned when none is provided.
const DefaultCredits = 3

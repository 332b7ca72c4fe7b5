package models

import "time"

type User struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Username    string     `json:"username" gorm:"uniqueIndex;not null" validate:"required"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password    string     `json:"-" gorm:"not null" validate:"required,min=8"`
	Role        Role       `json:"role" gorm:"not null;default:student" validate:"required,oneof=admin student"`
	FirstName   string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName    string     `json:"last_name" gorm:"not null" validate:"required"`
	StudentID   *string    `json:"student_id,omitempty" gorm:"uniqueIndex"`
	Phone       string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Address     string     `json:"address,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Results     []*Result  `json:"results,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// FullName returns the display name used across responses.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

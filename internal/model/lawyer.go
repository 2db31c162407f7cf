package model

import "time"

// Lawyer is a member of the firm. Email is unique among lawyers.
type Lawyer struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Specialty  *string   `json:"specialty"`
	Phone      *string   `json:"phone"`
	HourlyRate *float64  `json:"hourly_rate"`
	CreatedAt  time.Time `json:"created_at"`
}

// LawyerInput carries the fields accepted on creation.
type LawyerInput struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Specialty  *string  `json:"specialty"`
	Phone      *string  `json:"phone"`
	HourlyRate *float64 `json:"hourly_rate"`
}

// LawyerUpdate carries a partial update; nil fields are left untouched.
type LawyerUpdate struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Email      *string  `json:"email"`
	Specialty  *string  `json:"specialty"`
	Phone      *string  `json:"phone"`
	HourlyRate *float64 `json:"hourly_rate"`
}

package domain

import "time"

type Member struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	PhoneNumber      string     `json:"phone_number"`
	NationalIDNumber string     `json:"national_id_number"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Gender           string     `json:"gender,omitempty"`
	Address          string     `json:"address,omitempty"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastLoginDate    *time.Time `json:"last_login_date,omitempty"`
	IsActive         bool       `json:"is_active"`
	Role             string     `json:"role"`
}

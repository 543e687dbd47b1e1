package request

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const dateOfBirthLayout = "2006-01-02"

var (
	phoneNumberExp = regexp.MustCompile(`^09\d{8}$`)
	nationalIDExp  = regexp.MustCompile(`^[A-Z][12]\d{8}$`)
)

type CreateMemberRequest struct {
	Name             string `json:"name"`
	PhoneNumber      string `json:"phone_number"`
	NationalIDNumber string `json:"national_id_number"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Email            string `json:"email"`
	PasswordHash     string `json:"password_hash"`
	Gender           string `json:"gender,omitempty"`
	Address          string `json:"address,omitempty"`
	Role             string `json:"role,omitempty"`
}

func (req *CreateMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.PhoneNumber, validation.Required, validation.Match(phoneNumberExp)),
		validation.Field(&req.NationalIDNumber, validation.Required, validation.Match(nationalIDExp)),
		validation.Field(&req.DateOfBirth, validation.Date(dateOfBirthLayout)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.PasswordHash, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Gender, validation.Length(0, 10)),
		validation.Field(&req.Address, validation.Length(0, 255)),
		validation.Field(&req.Role, validation.Length(0, 50)),
	)
}

// ParseDateOfBirth returns nil when the optional field is empty.
// Call Validate first; the layout is checked there.
func (req *CreateMemberRequest) ParseDateOfBirth() *time.Time {
	return parseDate(req.DateOfBirth, dateOfBirthLayout)
}

type UpdateMemberRequest struct {
	Name             string `json:"name"`
	PhoneNumber      string `json:"phone_number"`
	NationalIDNumber string `json:"national_id_number"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Email            string `json:"email"`
	Gender           string `json:"gender,omitempty"`
	Address          string `json:"address,omitempty"`
	LastLoginDate    string `json:"last_login_date,omitempty"`
	IsActive         bool   `json:"is_active"`
	Role             string `json:"role"`
}

func (req *UpdateMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.PhoneNumber, validation.Required, validation.Match(phoneNumberExp)),
		validation.Field(&req.NationalIDNumber, validation.Required, validation.Match(nationalIDExp)),
		validation.Field(&req.DateOfBirth, validation.Date(dateOfBirthLayout)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Gender, validation.Length(0, 10)),
		validation.Field(&req.Address, validation.Length(0, 255)),
		validation.Field(&req.LastLoginDate, validation.Date(time.RFC3339)),
		validation.Field(&req.Role, validation.Required, validation.Length(1, 50)),
	)
}

func (req *UpdateMemberRequest) ParseDateOfBirth() *time.Time {
	return parseDate(req.DateOfBirth, dateOfBirthLayout)
}

func (req *UpdateMemberRequest) ParseLastLoginDate() *time.Time {
	return parseDate(req.LastLoginDate, time.RFC3339)
}

func parseDate(value, layout string) *time.Time {
	if value == "" {
		return nil
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return nil
	}

	return &t
}

type SearchMemberByEmailRequest struct {
	Email string `form:"email"`
}

func (req *SearchMemberByEmailRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type SearchMemberByPhoneRequest struct {
	PhoneNumber string `form:"phoneNumber"`
}

func (req *SearchMemberByPhoneRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PhoneNumber, validation.Required, validation.Match(phoneNumberExp)),
	)
}

type SearchMemberByNationalIDRequest struct {
	NationalIDNumber string `form:"nationalIdNumber"`
}

func (req *SearchMemberByNationalIDRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NationalIDNumber, validation.Required, validation.Match(nationalIDExp)),
	)
}

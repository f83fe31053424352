package application

import (
	"net/mail"
	"strings"
	"time"

	"gather/internal/domain"
)

const minPasswordLength = 8

func validateEventFields(title string, date time.Time, city string) error {
	var v domain.ValidationError
	if strings.TrimSpace(title) == "" {
		v.Add("title", "title is required")
	}
	if date.IsZero() {
		v.Add("date", "date is required")
	}
	if strings.TrimSpace(city) == "" {
		v.Add("city", "city is required")
	}
	return v.Err()
}

func validateRegistration(name, email, password string) error {
	var v domain.ValidationError
	if strings.TrimSpace(name) == "" {
		v.Add("name", "name is required")
	}
	if strings.TrimSpace(email) == "" {
		v.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		v.Add("email", "email is invalid")
	}
	if len(password) < minPasswordLength {
		v.Add("password", "password must be at least 8 characters")
	}
	return v.Err()
}

package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FieldErrors maps a form field to a message shown next to it.
type FieldErrors map[string]string

func (e FieldErrors) OK() bool { return len(e) == 0 }

// Error lets a FieldErrors value travel as an error across the submission
// boundary. First message wins; field order is not meaningful.
func (e FieldErrors) Error() string {
	for _, msg := range e {
		return msg
	}
	return "invalid input"
}

func ValidateLogin(c Credentials) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(c.Username) == "" {
		errs["username"] = "username is required"
	}
	if c.Password == "" {
		errs["password"] = "password is required"
	}
	return errs
}

func ValidateRegistration(u UserCreate, confirmPassword string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(u.Email) == "" {
		errs["email"] = "email is required"
	} else if !strings.Contains(u.Email, "@") {
		errs["email"] = "email is invalid"
	}
	if strings.TrimSpace(u.Username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(u.FirstName) == "" {
		errs["first_name"] = "first name is required"
	}
	if strings.TrimSpace(u.LastName) == "" {
		errs["last_name"] = "last name is required"
	}
	if len(u.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	} else if u.Password != confirmPassword {
		errs["confirm_password"] = "passwords do not match"
	}
	return errs
}

// ValidateBooking enforces the client-side checks the booking form runs
// before any network call: dates parse, check-in is not in the past,
// check-out is strictly after check-in, guest count fits the room.
func ValidateBooking(b BookingCreate, capacity int, now time.Time) FieldErrors {
	errs := FieldErrors{}

	in, err := time.Parse(dateLayout, b.CheckInDate)
	if err != nil {
		errs["check_in_date"] = "check-in date is required"
	}
	out, err := time.Parse(dateLayout, b.CheckOutDate)
	if err != nil {
		errs["check_out_date"] = "check-out date is required"
	}
	if !errs.OK() {
		return errs
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if in.Before(today) {
		errs["check_in_date"] = "check-in date cannot be in the past"
	}
	if !out.After(in) {
		errs["check_out_date"] = "check-out date must be after check-in date"
	}
	if b.GuestCount < 1 {
		errs["guest_count"] = "at least one guest is required"
	} else if capacity > 0 && b.GuestCount > capacity {
		errs["guest_count"] = "guest count exceeds room capacity"
	}
	return errs
}

func ValidatePasswordChange(p PasswordChange, confirm string) FieldErrors {
	errs := FieldErrors{}
	if p.CurrentPassword == "" {
		errs["current_password"] = "current password is required"
	}
	if len(p.NewPassword) < 8 {
		errs["new_password"] = "new password must be at least 8 characters"
	} else if p.NewPassword != confirm {
		errs["confirm_password"] = "passwords do not match"
	}
	return errs
}

// Nights returns the stay length for a valid date pair, 0 otherwise.
func Nights(checkIn, checkOut string) int {
	in, err1 := time.Parse(dateLayout, checkIn)
	out, err2 := time.Parse(dateLayout, checkOut)
	if err1 != nil || err2 != nil || !out.After(in) {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

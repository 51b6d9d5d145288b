package domain_test

import (
	"testing"
	"time"

	"stayfront/internal/domain"
)

var now = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func TestValidateBooking_CheckOutNotAfterCheckIn(t *testing.T) {
	b := domain.BookingCreate{
		RoomID:       1,
		CheckInDate:  "2026-03-12",
		CheckOutDate: "2026-03-12",
		GuestCount:   2,
	}
	errs := domain.ValidateBooking(b, 4, now)
	if errs.OK() {
		t.Fatal("expected rejection for same-day check-out")
	}
	if _, ok := errs["check_out_date"]; !ok {
		t.Fatalf("expected check_out_date error, got %v", errs)
	}
}

func TestValidateBooking_PastCheckIn(t *testing.T) {
	b := domain.BookingCreate{
		RoomID:       1,
		CheckInDate:  "2026-03-01",
		CheckOutDate: "2026-03-05",
		GuestCount:   1,
	}
	errs := domain.ValidateBooking(b, 2, now)
	if _, ok := errs["check_in_date"]; !ok {
		t.Fatalf("expected check_in_date error, got %v", errs)
	}
}

func TestValidateBooking_TodayIsAllowed(t *testing.T) {
	b := domain.BookingCreate{
		RoomID:       1,
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-11",
		GuestCount:   2,
	}
	if errs := domain.ValidateBooking(b, 2, now); !errs.OK() {
		t.Fatalf("same-day check-in should pass, got %v", errs)
	}
}

func TestValidateBooking_GuestCount(t *testing.T) {
	b := domain.BookingCreate{
		RoomID:       1,
		CheckInDate:  "2026-03-12",
		CheckOutDate: "2026-03-14",
		GuestCount:   5,
	}
	errs := domain.ValidateBooking(b, 4, now)
	if _, ok := errs["guest_count"]; !ok {
		t.Fatalf("expected guest_count error, got %v", errs)
	}
	b.GuestCount = 0
	errs = domain.ValidateBooking(b, 4, now)
	if _, ok := errs["guest_count"]; !ok {
		t.Fatalf("expected guest_count error for zero guests, got %v", errs)
	}
}

func TestValidateBooking_MissingDates(t *testing.T) {
	errs := domain.ValidateBooking(domain.BookingCreate{RoomID: 1, GuestCount: 1}, 2, now)
	if _, ok := errs["check_in_date"]; !ok {
		t.Fatalf("expected check_in_date error, got %v", errs)
	}
	if _, ok := errs["check_out_date"]; !ok {
		t.Fatalf("expected check_out_date error, got %v", errs)
	}
}

func TestValidateRegistration(t *testing.T) {
	u := domain.UserCreate{
		Email:     "bob@example.com",
		Username:  "bob",
		Password:  "supersecret",
		FirstName: "Bob",
		LastName:  "Builder",
	}
	if errs := domain.ValidateRegistration(u, "supersecret"); !errs.OK() {
		t.Fatalf("valid registration rejected: %v", errs)
	}

	u.Password = "short"
	errs := domain.ValidateRegistration(u, "short")
	if _, ok := errs["password"]; !ok {
		t.Fatalf("expected password length error, got %v", errs)
	}

	u.Password = "supersecret"
	errs = domain.ValidateRegistration(u, "different")
	if _, ok := errs["confirm_password"]; !ok {
		t.Fatalf("expected mismatch error, got %v", errs)
	}
}

func TestValidateLogin(t *testing.T) {
	errs := domain.ValidateLogin(domain.Credentials{})
	if len(errs) != 2 {
		t.Fatalf("expected two field errors, got %v", errs)
	}
	if errs := domain.ValidateLogin(domain.Credentials{Username: "alice", Password: "x"}); !errs.OK() {
		t.Fatalf("valid login rejected: %v", errs)
	}
}

func TestValidatePasswordChange(t *testing.T) {
	p := domain.PasswordChange{CurrentPassword: "old", NewPassword: "longenough"}
	if errs := domain.ValidatePasswordChange(p, "longenough"); !errs.OK() {
		t.Fatalf("valid change rejected: %v", errs)
	}
	p.NewPassword = "tiny"
	if errs := domain.ValidatePasswordChange(p, "tiny"); errs.OK() {
		t.Fatal("expected length error")
	}
}

func TestNights(t *testing.T) {
	if n := domain.Nights("2026-03-10", "2026-03-13"); n != 3 {
		t.Fatalf("expected 3 nights, got %d", n)
	}
	if n := domain.Nights("2026-03-10", "2026-03-10"); n != 0 {
		t.Fatalf("expected 0 for empty range, got %d", n)
	}
}

package app_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"stayfront/internal/app"
	"stayfront/internal/domain"
)

func TestBookingsReport(t *testing.T) {
	bookings := []domain.Booking{
		{
			ID: 1, UserID: 2, RoomID: 3,
			CheckInDate: "2026-03-10", CheckOutDate: "2026-03-13",
			TotalPrice: 450, Status: domain.BookingConfirmed, GuestCount: 2,
			BookingReference: "BK-0001",
			User:             &domain.User{ID: 2, Username: "alice"},
			Room:             &domain.Room{ID: 3, RoomNumber: "301"},
		},
		{
			ID: 2, UserID: 4, RoomID: 5,
			CheckInDate: "2026-04-01", CheckOutDate: "2026-04-02",
			TotalPrice: 120, Status: domain.BookingPending, GuestCount: 1,
		},
	}

	var buf bytes.Buffer
	name, err := app.BookingsReport(&buf, bookings)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.HasPrefix(name, "bookings-") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("unexpected filename: %q", name)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][9] != "Status" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][2] != "alice" || rows[1][3] != "301" {
		t.Fatalf("named refs not rendered: %v", rows[1])
	}
	if rows[2][2] != "#4" {
		t.Fatalf("fallback user ref wrong: %v", rows[2])
	}
	if rows[1][6] != "3" {
		t.Fatalf("nights not computed: %v", rows[1])
	}
}

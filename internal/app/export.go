package app

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"stayfront/internal/domain"
)

// BookingsReport writes the back-office booking export as a spreadsheet.
// Returns the suggested download filename.
func BookingsReport(w io.Writer, bookings []domain.Booking) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}

	headers := []string{"ID", "Reference", "User", "Room", "Check-in", "Check-out", "Nights", "Guests", "Total price", "Status", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", err
		}
	}

	for row, b := range bookings {
		user := fmt.Sprintf("#%d", b.UserID)
		if b.User != nil {
			user = b.User.Username
		}
		room := fmt.Sprintf("#%d", b.RoomID)
		if b.Room != nil {
			room = b.Room.RoomNumber
		}
		values := []any{
			b.ID, b.BookingReference, user, room,
			b.CheckInDate, b.CheckOutDate,
			domain.Nights(b.CheckInDate, b.CheckOutDate),
			b.GuestCount, b.TotalPrice, b.Status, b.CreatedAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return "", err
	}
	return fmt.Sprintf("bookings-%s.xlsx", uuid.NewString()[:8]), nil
}

package resapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stayfront/internal/domain"
)

// Booking routes keep the backend's trailing-slash quirks verbatim; the
// server 307-redirects the canonical forms inconsistently, so matching its
// exact spelling avoids a redirect round-trip per call.

func (c *Client) CreateBooking(ctx context.Context, b domain.BookingCreate) (domain.Booking, error) {
	var out domain.Booking
	err := c.do(ctx, http.MethodPost, "/bookings/", "/bookings/", nil, b, bare(&out))
	return out, err
}

func (c *Client) ListBookings(ctx context.Context, q domain.BookingsQuery) ([]domain.Booking, error) {
	v := url.Values{}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.UserID != nil {
		v.Set("user_id", strconv.FormatInt(*q.UserID, 10))
	}
	if q.RoomID != nil {
		v.Set("room_id", strconv.FormatInt(*q.RoomID, 10))
	}
	if q.HotelID != nil {
		v.Set("hotel_id", strconv.FormatInt(*q.HotelID, 10))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	var out []domain.Booking
	err := c.do(ctx, http.MethodGet, "/bookings/", "/bookings/", v, nil, bare(&out))
	return out, err
}

func (c *Client) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := c.do(ctx, http.MethodGet, "/bookings/my-bookings/", "/bookings/my-bookings/", nil, nil, bare(&out))
	return out, err
}

func (c *Client) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	var out domain.Booking
	err := c.do(ctx, http.MethodGet, "/bookings/{id}/", fmt.Sprintf("/bookings/%d/", id), nil, nil, bare(&out))
	return out, err
}

func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, "/bookings/{id}/cancel/", fmt.Sprintf("/bookings/%d/cancel/", id), nil, nil, nil)
}

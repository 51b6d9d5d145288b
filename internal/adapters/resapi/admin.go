package resapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"stayfront/internal/domain"
)

// Back-office surface. Same wire client, admin token required server-side.

func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var out domain.Stats
	err := c.do(ctx, http.MethodGet, "/users/stats/overview", "/users/stats/overview", nil, nil, bare(&out))
	return out, err
}

// ---- users ----

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := c.do(ctx, http.MethodGet, "/users/", "/users/", nil, nil, bare(&out))
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, u domain.UserCreate) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPost, "/users/", "/users/", nil, u, bare(&out))
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id int64, u domain.UserUpdate) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPut, "/users/{id}", fmt.Sprintf("/users/%d", id), nil, u, bare(&out))
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/users/{id}", fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

// ---- hotels ----

func (c *Client) CreateHotel(ctx context.Context, h domain.HotelCreate) (domain.Hotel, error) {
	var out domain.Hotel
	err := c.do(ctx, http.MethodPost, "/hotels/", "/hotels/", nil, h, enveloped(&out))
	return out, err
}

func (c *Client) UpdateHotel(ctx context.Context, id int64, h domain.HotelUpdate) (domain.Hotel, error) {
	var out domain.Hotel
	err := c.do(ctx, http.MethodPut, "/hotels/{id}", fmt.Sprintf("/hotels/%d", id), nil, h, enveloped(&out))
	return out, err
}

func (c *Client) DeleteHotel(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/hotels/{id}", fmt.Sprintf("/hotels/%d", id), nil, nil, nil)
}

// ---- rooms ----

func (c *Client) CreateRoom(ctx context.Context, r domain.RoomCreate) (domain.Room, error) {
	var out domain.Room
	err := c.do(ctx, http.MethodPost, "/rooms/", "/rooms/", nil, r, bare(&out))
	return out, err
}

func (c *Client) UpdateRoom(ctx context.Context, id int64, r domain.RoomUpdate) (domain.Room, error) {
	var out domain.Room
	err := c.do(ctx, http.MethodPut, "/rooms/{id}", fmt.Sprintf("/rooms/%d", id), nil, r, bare(&out))
	return out, err
}

func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/rooms/{id}", fmt.Sprintf("/rooms/%d", id), nil, nil, nil)
}

func (c *Client) SetRoomMaintenance(ctx context.Context, id int64, maintenance bool) error {
	v := url.Values{}
	v.Set("is_maintenance", fmt.Sprintf("%t", maintenance))
	return c.do(ctx, http.MethodPost, "/rooms/{id}/maintenance", fmt.Sprintf("/rooms/%d/maintenance", id), v, nil, nil)
}

// ---- bookings ----

// ConfirmBooking and RejectBooking mirror the backend's route drift: confirm
// has no trailing slash, cancel does.

func (c *Client) ConfirmBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, "/bookings/{id}/confirm", fmt.Sprintf("/bookings/%d/confirm", id), nil, nil, nil)
}

func (c *Client) RejectBooking(ctx context.Context, id int64) error {
	return c.CancelBooking(ctx, id)
}

func (c *Client) UpdateBooking(ctx context.Context, id int64, b domain.BookingUpdate) (domain.Booking, error) {
	var out domain.Booking
	err := c.do(ctx, http.MethodPut, "/bookings/{id}", fmt.Sprintf("/bookings/%d", id), nil, b, bare(&out))
	return out, err
}

func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/bookings/{id}", fmt.Sprintf("/bookings/%d", id), nil, nil, nil)
}

// ---- payments ----

func (c *Client) CreatePayment(ctx context.Context, p domain.PaymentCreate) (domain.Payment, error) {
	var out domain.Payment
	err := c.do(ctx, http.MethodPost, "/payments", "/payments", nil, p, bare(&out))
	return out, err
}

func (c *Client) UpdatePayment(ctx context.Context, id int64, p domain.PaymentUpdate) (domain.Payment, error) {
	var out domain.Payment
	err := c.do(ctx, http.MethodPut, "/payments/{id}", fmt.Sprintf("/payments/%d", id), nil, p, bare(&out))
	return out, err
}

func (c *Client) DeletePayment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/payments/{id}", fmt.Sprintf("/payments/%d", id), nil, nil, nil)
}

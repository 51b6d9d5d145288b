package resapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stayfront/internal/domain"
)

func (c *Client) ListPayments(ctx context.Context, q domain.PaymentsQuery) ([]domain.Payment, error) {
	v := url.Values{}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.BookingID != nil {
		v.Set("booking_id", strconv.FormatInt(*q.BookingID, 10))
	}
	if q.UserID != nil {
		v.Set("user_id", strconv.FormatInt(*q.UserID, 10))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.PaymentMethod != "" {
		v.Set("payment_method", q.PaymentMethod)
	}
	var out []domain.Payment
	err := c.do(ctx, http.MethodGet, "/payments", "/payments", v, nil, bare(&out))
	return out, err
}

func (c *Client) GetPayment(ctx context.Context, id int64) (domain.Payment, error) {
	var out domain.Payment
	err := c.do(ctx, http.MethodGet, "/payments/{id}", fmt.Sprintf("/payments/%d", id), nil, nil, bare(&out))
	return out, err
}

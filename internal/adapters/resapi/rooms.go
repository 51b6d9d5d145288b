package resapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stayfront/internal/domain"
)

func (c *Client) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	v := url.Values{}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.HotelID != nil {
		v.Set("hotel_id", strconv.FormatInt(*q.HotelID, 10))
	}
	if q.RoomType != "" {
		v.Set("room_type", q.RoomType)
	}
	if q.MinPrice != nil {
		v.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		v.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Capacity != nil {
		v.Set("capacity", strconv.Itoa(*q.Capacity))
	}
	if q.AvailableOnly {
		v.Set("available_only", "true")
	}
	if q.CheckIn != "" {
		v.Set("check_in", q.CheckIn)
	}
	if q.CheckOut != "" {
		v.Set("check_out", q.CheckOut)
	}
	var out []domain.Room
	err := c.do(ctx, http.MethodGet, "/rooms/", "/rooms/", v, nil, bare(&out))
	return out, err
}

func (c *Client) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	var out domain.Room
	err := c.do(ctx, http.MethodGet, "/rooms/{id}", fmt.Sprintf("/rooms/%d", id), nil, nil, bare(&out))
	return out, err
}

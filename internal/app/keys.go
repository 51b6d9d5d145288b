package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"stayfront/internal/domain"
)

// Cache resources with independent generation counters.
const (
	resHotels   = "hotels"
	resRooms    = "rooms"
	resBookings = "bookings"
)

// curGen reads the current generation for a resource; absent means zero.
func curGen(ctx context.Context, c domain.Cache, res string) int64 {
	var g int64
	if ok, _ := c.Get(ctx, "gen:"+res, &g); ok {
		return g
	}
	return 0
}

// bumpGen advances the generation, detaching every cached key minted under
// the old one. The generation key itself never expires.
func bumpGen(ctx context.Context, c domain.Cache, res string) {
	_ = c.Set(ctx, "gen:"+res, curGen(ctx, c, res)+1, 0)
}

func hotelsKey(q domain.HotelsQuery) string {
	parts := []string{
		strconv.Itoa(q.Skip), strconv.Itoa(q.Limit),
		q.City, q.Country, q.Search,
	}
	if q.MinRating != nil {
		parts = append(parts, fmt.Sprintf("r%.1f", *q.MinRating))
	}
	return strings.Join(parts, ":")
}

func roomsKey(q domain.RoomsQuery) string {
	parts := []string{
		strconv.Itoa(q.Skip), strconv.Itoa(q.Limit),
		q.RoomType, q.CheckIn, q.CheckOut,
		strconv.FormatBool(q.AvailableOnly),
	}
	if q.HotelID != nil {
		parts = append(parts, fmt.Sprintf("h%d", *q.HotelID))
	}
	if q.MinPrice != nil {
		parts = append(parts, fmt.Sprintf("p%.2f", *q.MinPrice))
	}
	if q.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("P%.2f", *q.MaxPrice))
	}
	if q.Capacity != nil {
		parts = append(parts, fmt.Sprintf("c%d", *q.Capacity))
	}
	return strings.Join(parts, ":")
}

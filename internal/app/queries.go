package app

import (
	"context"
	"fmt"
	"time"

	"stayfront/internal/domain"
)

// QueryService serves the browsing reads through the ephemeral cache. Keys
// carry a per-resource generation number; mutations bump the generation,
// which orphans every cached list for that resource at once regardless of
// which filter combination produced it. Orphans age out by TTL.
type QueryService struct {
	api      domain.ReservationAPI
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(api domain.ReservationAPI, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{api: api, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ttl() int { return int(s.cacheTTL.Seconds()) }

func (s *QueryService) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	key := fmt.Sprintf("hotels:g%d:%s", curGen(ctx, s.cache, resHotels), hotelsKey(q))
	var out []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	hs, err := s.api.ListHotels(ctx, q)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, hs, s.ttl())
	return hs, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	key := fmt.Sprintf("hotel:g%d:%d", curGen(ctx, s.cache, resHotels), id)
	var out domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	h, err := s.api.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, s.ttl())
	return h, nil
}

func (s *QueryService) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	key := fmt.Sprintf("rooms:g%d:%s", curGen(ctx, s.cache, resRooms), roomsKey(q))
	var out []domain.Room
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	rs, err := s.api.ListRooms(ctx, q)
	if err != nil {
		return nil, err
	}
	// copy before caching so callers mutating the slice don't poison the entry
	cp := make([]domain.Room, len(rs))
	copy(cp, rs)
	_ = s.cache.Set(ctx, key, cp, s.ttl())
	return rs, nil
}

func (s *QueryService) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	key := fmt.Sprintf("room:g%d:%d", curGen(ctx, s.cache, resRooms), id)
	var out domain.Room
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	r, err := s.api.GetRoom(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Set(ctx, key, r, s.ttl())
	return r, nil
}

func (s *QueryService) MyBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	key := fmt.Sprintf("bookings:g%d:user:%d", curGen(ctx, s.cache, resBookings), userID)
	var out []domain.Booking
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	bs, err := s.api.MyBookings(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, bs, s.ttl())
	return bs, nil
}

// GetBooking is uncached: it is read right after state transitions, where a
// stale status would be worse than the extra round-trip.
func (s *QueryService) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	return s.api.GetBooking(ctx, id)
}

func (s *QueryService) ListPayments(ctx context.Context, q domain.PaymentsQuery) ([]domain.Payment, error) {
	return s.api.ListPayments(ctx, q)
}

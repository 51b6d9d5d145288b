package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stayfront/internal/app"
	"stayfront/internal/domain"
)

// ---- fakes ----

// fakeAPI embeds the ports so only the methods a test touches need bodies.
type fakeAPI struct {
	domain.ReservationAPI
	domain.AdminAPI

	hotels     []domain.Hotel
	rooms      []domain.Room
	bookings   []domain.Booking
	listCalls  int
	roomCalls  int
	createHits int
}

func (f *fakeAPI) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	f.listCalls++
	return f.hotels, nil
}

func (f *fakeAPI) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	f.roomCalls++
	return f.rooms, nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, b domain.BookingCreate) (domain.Booking, error) {
	f.createHits++
	return domain.Booking{ID: 1, RoomID: b.RoomID, Status: domain.BookingPending}, nil
}

func (f *fakeAPI) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeAPI) CreateHotel(ctx context.Context, h domain.HotelCreate) (domain.Hotel, error) {
	return domain.Hotel{ID: 10, Name: h.Name}, nil
}

type memCache struct {
	store map[string][]byte
}

func newMemCache() *memCache { return &memCache{store: map[string][]byte{}} }

func (c *memCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *memCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

// ---- tests ----

func TestListHotels_CacheMissThenHit(t *testing.T) {
	api := &fakeAPI{hotels: []domain.Hotel{{ID: 1, Name: "Grand Plaza"}}}
	cache := newMemCache()
	q := app.NewQueryService(api, cache, 10*time.Minute)

	hs, err := q.ListHotels(context.Background(), domain.HotelsQuery{Limit: 20})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(hs) != 1 || hs[0].Name != "Grand Plaza" {
		t.Fatalf("unexpected hotels: %+v", hs)
	}

	// second read must come from cache
	api.hotels[0].Name = "SHOULD NOT SEE THIS"
	hs2, err := q.ListHotels(context.Background(), domain.HotelsQuery{Limit: 20})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if hs2[0].Name != "Grand Plaza" {
		t.Fatalf("expected cached name, got %s", hs2[0].Name)
	}
	if api.listCalls != 1 {
		t.Fatalf("API hit %d times, want 1", api.listCalls)
	}
}

func TestListHotels_DifferentFiltersDifferentEntries(t *testing.T) {
	api := &fakeAPI{hotels: []domain.Hotel{{ID: 1}}}
	q := app.NewQueryService(api, newMemCache(), 10*time.Minute)

	_, _ = q.ListHotels(context.Background(), domain.HotelsQuery{City: "Hanoi"})
	_, _ = q.ListHotels(context.Background(), domain.HotelsQuery{City: "Hue"})
	if api.listCalls != 2 {
		t.Fatalf("distinct filters must miss separately, got %d calls", api.listCalls)
	}
}

func TestCreateBooking_InvalidatesRoomAndBookingCaches(t *testing.T) {
	api := &fakeAPI{rooms: []domain.Room{{ID: 5, RoomNumber: "501", IsAvailable: true}}}
	cache := newMemCache()
	q := app.NewQueryService(api, cache, 10*time.Minute)
	cmd := app.NewCommandService(api, api, cache)

	// warm the room cache
	if _, err := q.ListRooms(context.Background(), domain.RoomsQuery{}); err != nil {
		t.Fatalf("err: %v", err)
	}
	if api.roomCalls != 1 {
		t.Fatalf("warm call count: %d", api.roomCalls)
	}

	checkIn := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	if _, err := cmd.CreateBooking(context.Background(), domain.BookingCreate{
		RoomID: 5, CheckInDate: checkIn, CheckOutDate: checkOut, GuestCount: 2,
	}, 2); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// the cached room list must be stale now: a fresh read hits the API again
	if _, err := q.ListRooms(context.Background(), domain.RoomsQuery{}); err != nil {
		t.Fatalf("err: %v", err)
	}
	if api.roomCalls != 2 {
		t.Fatalf("expected cache invalidation to force a refetch, calls=%d", api.roomCalls)
	}
}

func TestCreateBooking_InvalidFormNeverReachesNetwork(t *testing.T) {
	api := &fakeAPI{}
	cmd := app.NewCommandService(api, api, newMemCache())

	// check-out equals check-in: rejected client-side
	day := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := cmd.CreateBooking(context.Background(), domain.BookingCreate{
		RoomID: 5, CheckInDate: day, CheckOutDate: day, GuestCount: 1,
	}, 2)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var fieldErrs domain.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if api.createHits != 0 {
		t.Fatalf("invalid form hit the network %d times", api.createHits)
	}
}

func TestCreateHotel_InvalidatesHotelCache(t *testing.T) {
	api := &fakeAPI{hotels: []domain.Hotel{{ID: 1}}}
	cache := newMemCache()
	q := app.NewQueryService(api, cache, 10*time.Minute)
	cmd := app.NewCommandService(api, api, cache)

	_, _ = q.ListHotels(context.Background(), domain.HotelsQuery{})
	if _, err := cmd.CreateHotel(context.Background(), domain.HotelCreate{Name: "New Place"}); err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	_, _ = q.ListHotels(context.Background(), domain.HotelsQuery{})
	if api.listCalls != 2 {
		t.Fatalf("expected refetch after hotel create, calls=%d", api.listCalls)
	}
}

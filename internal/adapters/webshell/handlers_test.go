package webshell_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"stayfront/internal/adapters/vault"
	"stayfront/internal/adapters/webshell"
	"stayfront/internal/app"
	"stayfront/internal/domain"
	"stayfront/internal/session"
)

// ---- fakes ----

// fakeAPI embeds the ports so only the methods a test touches need bodies.
type fakeAPI struct {
	domain.ReservationAPI
	domain.AdminAPI

	user       domain.User
	loginErr   error
	rooms      []domain.Room
	bookings   []domain.Booking
	createHits int
}

func (f *fakeAPI) Login(ctx context.Context, c domain.Credentials) (domain.User, string, error) {
	if f.loginErr != nil {
		return domain.User{}, "", f.loginErr
	}
	return f.user, "tok-1", nil
}

func (f *fakeAPI) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	return nil, nil
}

func (f *fakeAPI) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	return f.rooms, nil
}

func (f *fakeAPI) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	for _, r := range f.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Room{}, nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, b domain.BookingCreate) (domain.Booking, error) {
	f.createHits++
	return domain.Booking{ID: 7, RoomID: b.RoomID, BookingReference: "BK-7", Status: domain.BookingPending}, nil
}

func (f *fakeAPI) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	return f.bookings, nil
}

type memCache struct{ store map[string][]byte }

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

func newShell(t *testing.T, api *fakeAPI) (http.Handler, *session.Store) {
	t.Helper()
	v, err := vault.New(t.TempDir())
	if err != nil {
		t.Fatalf("vault: %v", err)
	}
	store := session.NewStore(api, v, zerolog.Nop())
	cache := newMemCache()

	h := &webshell.Handlers{
		Sessions:  store,
		Queries:   app.NewQueryService(api, cache, time.Minute),
		Commands:  app.NewCommandService(api, api, cache),
		API:       api,
		Admin:     api,
		MediaBase: "http://media.local",
	}
	srv := webshell.New()
	srv.MountHandlers(h)
	return srv.Mux(), store
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- tests ----

func TestHealthz(t *testing.T) {
	h, _ := newShell(t, &fakeAPI{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestProtectedPages_RedirectAnonymousToLogin(t *testing.T) {
	h, _ := newShell(t, &fakeAPI{})
	for _, path := range []string{"/bookings", "/profile"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("%s: status = %d, want 303", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login?next="+path {
			t.Fatalf("%s: location = %q", path, loc)
		}
	}
}

func TestAdmin_ForbiddenForGuests(t *testing.T) {
	h, store := newShell(t, &fakeAPI{})
	store.Login(domain.User{ID: 2, Username: "guest", Role: domain.RoleGuest}, "tok")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestLogin_SuccessRedirectsAndSetsSession(t *testing.T) {
	api := &fakeAPI{user: domain.User{ID: 1, Username: "ada", FirstName: "Ada", Role: domain.RoleGuest}}
	h, store := newShell(t, api)

	rec := postForm(h, "/login?next=/bookings", url.Values{
		"username": {"ada"},
		"password": {"hunter22"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/bookings" {
		t.Fatalf("location = %q", loc)
	}
	if !store.IsAuthenticated() {
		t.Fatal("session not set after login")
	}
}

func TestLogin_EmptyForm_RerendersWithErrors(t *testing.T) {
	h, store := newShell(t, &fakeAPI{})

	rec := postForm(h, "/login", url.Values{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "username is required") {
		t.Fatal("field error not shown")
	}
	if store.IsAuthenticated() {
		t.Fatal("session must stay empty")
	}
}

func TestBookRoom_InvalidDates_NeverReachesAPI(t *testing.T) {
	api := &fakeAPI{
		user:  domain.User{ID: 1, Username: "ada", Role: domain.RoleGuest},
		rooms: []domain.Room{{ID: 5, RoomNumber: "101", Capacity: 2, IsAvailable: true}},
	}
	h, store := newShell(t, api)
	store.Login(api.user, "tok")

	// a search first, so the failed submit has a room list to re-render
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms", nil))

	rec := postForm(h, "/rooms/5/book", url.Values{
		"check_in_date":  {"2026-09-10"},
		"check_out_date": {"2026-09-10"}, // same day, must be rejected
		"guest_count":    {"2"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "check-out date must be after check-in date") {
		t.Fatal("date error not shown")
	}
	if api.createHits != 0 {
		t.Fatalf("createHits = %d, want 0", api.createHits)
	}
}

func TestBookRoom_Success_RedirectsWithReference(t *testing.T) {
	api := &fakeAPI{
		user:  domain.User{ID: 1, Username: "ada", Role: domain.RoleGuest},
		rooms: []domain.Room{{ID: 5, RoomNumber: "101", Capacity: 4, IsAvailable: true}},
	}
	h, store := newShell(t, api)
	store.Login(api.user, "tok")

	checkIn := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 9).Format("2006-01-02")
	rec := postForm(h, "/rooms/5/book", url.Values{
		"check_in_date":  {checkIn},
		"check_out_date": {checkOut},
		"guest_count":    {"2"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %s", rec.Code, rec.Body.String())
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil || loc.Path != "/bookings" {
		t.Fatalf("location = %q", rec.Header().Get("Location"))
	}
	if !strings.Contains(loc.Query().Get("msg"), "BK-7") {
		t.Fatalf("flash = %q, want booking reference", loc.Query().Get("msg"))
	}
	if api.createHits != 1 {
		t.Fatalf("createHits = %d, want 1", api.createHits)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	h, store := newShell(t, &fakeAPI{})
	store.Login(domain.User{ID: 1, Username: "ada", Role: domain.RoleGuest}, "tok")

	rec := postForm(h, "/logout", url.Values{})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if store.IsAuthenticated() {
		t.Fatal("session still set after logout")
	}
}

func TestRooms_PublicSearchRenders(t *testing.T) {
	api := &fakeAPI{rooms: []domain.Room{{ID: 5, RoomNumber: "101", RoomType: domain.RoomDouble, Capacity: 2, IsAvailable: true}}}
	h, _ := newShell(t, api)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms?room_type=double", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Room 101") {
		t.Fatal("room not rendered")
	}
}

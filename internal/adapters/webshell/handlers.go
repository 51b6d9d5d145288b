package webshell

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayfront/internal/adapters/resapi"
	"stayfront/internal/app"
	"stayfront/internal/domain"
	"stayfront/internal/session"
)

// Uploader is the multipart image path, outside the shared JSON client.
type Uploader interface {
	UploadHotelImages(ctx context.Context, hotelID int64, files []resapi.UploadFile) ([]string, error)
	UploadRoomImages(ctx context.Context, roomID int64, files []resapi.UploadFile) ([]string, error)
}

type Handlers struct {
	Sessions  *session.Store
	Queries   *app.QueryService
	Commands  *app.CommandService
	API       domain.ReservationAPI
	Admin     domain.AdminAPI
	Uploads   Uploader
	MediaBase string

	// last admitted room search, used to re-render the rooms page around a
	// failed booking submit without refetching. The fence keeps a slow
	// stale search from overwriting a newer one.
	roomsMu    sync.Mutex
	roomsFence app.Fence
	lastRooms  []domain.Room
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/", h.home)
	s.mux.Get("/login", h.loginForm)
	s.mux.Post("/login", h.login)
	s.mux.Get("/register", h.registerForm)
	s.mux.Post("/register", h.register)
	s.mux.Post("/logout", h.logout)

	s.mux.Get("/hotels", h.hotels)
	s.mux.Get("/hotels/{id}", h.hotelDetail)
	s.mux.Get("/rooms", h.rooms)

	s.mux.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post("/rooms/{id}/book", h.bookRoom)
		r.Get("/bookings", h.myBookings)
		r.Post("/bookings/{id}/cancel", h.cancelBooking)
		r.Get("/profile", h.profile)
		r.Post("/profile", h.updateProfile)
		r.Post("/profile/password", h.changePassword)
	})

	s.mux.Route("/admin", func(r chi.Router) {
		r.Use(h.requireAdmin)
		h.mountAdmin(r)
	})
}

// fail converts an API error at the submission boundary: expired sessions go
// back through login, everything else becomes a redirect with a message.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, back string, err error) {
	if errors.Is(err, resapi.ErrUnauthorized) {
		// the OnUnauthorized hook has already cleared the session
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	msg := "Something went wrong, please try again"
	var apiErr *resapi.APIError
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	} else if errors.Is(err, resapi.ErrNotFound) {
		msg = "Not found"
	} else if errors.Is(err, resapi.ErrForbidden) {
		msg = "You are not allowed to do that"
	}
	log.Warn().Err(err).Str("path", r.URL.Path).Msg("request failed")
	redirectMsg(w, r, back, "", msg)
}

func redirectMsg(w http.ResponseWriter, r *http.Request, to, flash, errMsg string) {
	v := url.Values{}
	if flash != "" {
		v.Set("msg", flash)
	}
	if errMsg != "" {
		v.Set("err", errMsg)
	}
	if len(v) > 0 {
		to += "?" + v.Encode()
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// ---- public pages ----

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.Queries.ListHotels(r.Context(), domain.HotelsQuery{Limit: 6})
	if err != nil {
		featured = nil // home still renders without the strip
	}
	h.render(w, r, "home", map[string]any{"Featured": featured})
}

func (h *Handlers) loginForm(w http.ResponseWriter, r *http.Request) {
	if h.Sessions.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, "login", map[string]any{"Next": r.URL.Query().Get("next")})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	cred := domain.Credentials{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if errs := domain.ValidateLogin(cred); !errs.OK() {
		h.renderWith(w, r, "login", nil, errs, formValues(r, "username"))
		return
	}
	if err := h.Sessions.LoginWithCredentials(r.Context(), cred); err != nil {
		h.renderWith(w, r, "login", nil, domain.FieldErrors{"general": loginMessage(err)}, formValues(r, "username"))
		return
	}
	next := r.URL.Query().Get("next")
	if next == "" || next[0] != '/' {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func loginMessage(err error) string {
	if errors.Is(err, resapi.ErrUnauthorized) {
		return "Invalid username or password"
	}
	var apiErr *resapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Login failed, please try again"
}

func (h *Handlers) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register", nil)
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	u := domain.UserCreate{
		Email:     r.FormValue("email"),
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Phone:     r.FormValue("phone"),
	}
	keep := []string{"email", "username", "first_name", "last_name", "phone"}
	if errs := domain.ValidateRegistration(u, r.FormValue("confirm_password")); !errs.OK() {
		h.renderWith(w, r, "register", nil, errs, formValues(r, keep...))
		return
	}
	if err := h.Sessions.Register(r.Context(), u); err != nil {
		h.renderWith(w, r, "register", nil, domain.FieldErrors{"general": loginMessage(err)}, formValues(r, keep...))
		return
	}
	redirectMsg(w, r, "/", "Welcome, "+u.FirstName+"! Your account has been created.", "")
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout()
	redirectMsg(w, r, "/", "Logged out successfully", "")
}

func (h *Handlers) hotels(w http.ResponseWriter, r *http.Request) {
	q := domain.HotelsQuery{
		City:    r.URL.Query().Get("city"),
		Country: r.URL.Query().Get("country"),
		Search:  r.URL.Query().Get("search"),
		Limit:   50,
	}
	if mr, err := strconv.ParseFloat(r.URL.Query().Get("min_rating"), 64); err == nil {
		q.MinRating = &mr
	}
	hotels, err := h.Queries.ListHotels(r.Context(), q)
	if err != nil {
		h.fail(w, r, "/", err)
		return
	}
	h.render(w, r, "hotels", map[string]any{"Hotels": hotels, "Query": q})
}

func (h *Handlers) hotelDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid hotel id")
		return
	}
	hotel, err := h.Queries.GetHotel(r.Context(), id)
	if err != nil {
		h.fail(w, r, "/hotels", err)
		return
	}
	rooms, err := h.Queries.ListRooms(r.Context(), domain.RoomsQuery{HotelID: &id, Limit: 50})
	if err != nil {
		rooms = nil
	}
	h.render(w, r, "hotel_detail", map[string]any{"Hotel": hotel, "Rooms": rooms})
}

func (h *Handlers) rooms(w http.ResponseWriter, r *http.Request) {
	q := roomsQueryFromForm(r)
	seq := h.roomsFence.Next()
	rooms, err := h.Queries.ListRooms(r.Context(), q)
	if err != nil {
		h.fail(w, r, "/", err)
		return
	}
	if h.roomsFence.Admit(seq) {
		h.roomsMu.Lock()
		h.lastRooms = rooms
		h.roomsMu.Unlock()
	}
	h.render(w, r, "rooms", map[string]any{"Rooms": rooms, "Query": q, "BookingRoom": int64(0)})
}

func roomsQueryFromForm(r *http.Request) domain.RoomsQuery {
	get := r.URL.Query().Get
	q := domain.RoomsQuery{
		RoomType:      get("room_type"),
		CheckIn:       get("check_in"),
		CheckOut:      get("check_out"),
		AvailableOnly: get("available_only") == "true",
		Limit:         50,
	}
	if id, err := strconv.ParseInt(get("hotel_id"), 10, 64); err == nil {
		q.HotelID = &id
	}
	if p, err := strconv.ParseFloat(get("min_price"), 64); err == nil {
		q.MinPrice = &p
	}
	if p, err := strconv.ParseFloat(get("max_price"), 64); err == nil {
		q.MaxPrice = &p
	}
	if c, err := strconv.Atoi(get("capacity")); err == nil {
		q.Capacity = &c
	}
	return q
}

// ---- authenticated pages ----

func (h *Handlers) bookRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid room id")
		return
	}
	guests, _ := strconv.Atoi(r.FormValue("guest_count"))
	form := domain.BookingCreate{
		RoomID:          roomID,
		CheckInDate:     r.FormValue("check_in_date"),
		CheckOutDate:    r.FormValue("check_out_date"),
		GuestCount:      guests,
		SpecialRequests: r.FormValue("special_requests"),
	}

	capacity := 0
	if room, err := h.Queries.GetRoom(r.Context(), roomID); err == nil {
		capacity = room.Capacity
	}

	booking, err := h.Commands.CreateBooking(r.Context(), form, capacity)
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			// re-render the last admitted search with the form errors inline
			h.roomsMu.Lock()
			rooms := h.lastRooms
			h.roomsMu.Unlock()
			h.renderWith(w, r, "rooms", map[string]any{"Rooms": rooms, "BookingRoom": roomID}, fieldErrs,
				formValues(r, "check_in_date", "check_out_date", "guest_count", "special_requests"))
			return
		}
		h.fail(w, r, "/rooms", err)
		return
	}

	ref := booking.BookingReference
	if ref == "" {
		ref = strconv.FormatInt(booking.ID, 10)
	}
	redirectMsg(w, r, "/bookings", "Booking created! Reference: "+ref, "")
}

func (h *Handlers) myBookings(w http.ResponseWriter, r *http.Request) {
	cur := h.Sessions.Current()
	bookings, err := h.Queries.MyBookings(r.Context(), cur.User.ID)
	if err != nil {
		h.fail(w, r, "/", err)
		return
	}
	h.render(w, r, "bookings", map[string]any{"Bookings": bookings})
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}
	if err := h.Commands.CancelBooking(r.Context(), id); err != nil {
		h.fail(w, r, "/bookings", err)
		return
	}
	redirectMsg(w, r, "/bookings", "Booking cancelled", "")
}

func (h *Handlers) profile(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "profile", nil)
}

func (h *Handlers) updateProfile(w http.ResponseWriter, r *http.Request) {
	upd := domain.UserUpdate{}
	if v := r.FormValue("email"); v != "" {
		upd.Email = &v
	}
	if v := r.FormValue("first_name"); v != "" {
		upd.FirstName = &v
	}
	if v := r.FormValue("last_name"); v != "" {
		upd.LastName = &v
	}
	if v := r.FormValue("phone"); v != "" {
		upd.Phone = &v
	}
	if err := h.Sessions.UpdateProfile(r.Context(), upd); err != nil {
		h.fail(w, r, "/profile", err)
		return
	}
	redirectMsg(w, r, "/profile", "Profile updated successfully", "")
}

func (h *Handlers) changePassword(w http.ResponseWriter, r *http.Request) {
	p := domain.PasswordChange{
		CurrentPassword: r.FormValue("current_password"),
		NewPassword:     r.FormValue("new_password"),
	}
	if errs := domain.ValidatePasswordChange(p, r.FormValue("confirm_password")); !errs.OK() {
		h.renderWith(w, r, "profile", nil, errs, nil)
		return
	}
	if err := h.Sessions.ChangePassword(r.Context(), p); err != nil {
		h.fail(w, r, "/profile", err)
		return
	}
	redirectMsg(w, r, "/profile", "Password changed successfully", "")
}

func formValues(r *http.Request, names ...string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = r.FormValue(n)
	}
	return out
}

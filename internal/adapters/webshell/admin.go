package webshell

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stayfront/internal/adapters/resapi"
	"stayfront/internal/app"
	"stayfront/internal/domain"
)

func (h *Handlers) mountAdmin(r chi.Router) {
	r.Get("/", h.adminDashboard)

	r.Post("/users", h.adminCreateUser)
	r.Post("/users/{id}/update", h.adminUpdateUser)
	r.Post("/users/{id}/delete", h.adminDeleteUser)

	r.Post("/hotels", h.adminCreateHotel)
	r.Post("/hotels/{id}/update", h.adminUpdateHotel)
	r.Post("/hotels/{id}/delete", h.adminDeleteHotel)
	r.Post("/hotels/{id}/images", h.adminUploadHotelImages)

	r.Post("/rooms", h.adminCreateRoom)
	r.Post("/rooms/{id}/update", h.adminUpdateRoom)
	r.Post("/rooms/{id}/delete", h.adminDeleteRoom)
	r.Post("/rooms/{id}/maintenance", h.adminRoomMaintenance)
	r.Post("/rooms/{id}/images", h.adminUploadRoomImages)

	r.Post("/bookings/{id}/confirm", h.adminConfirmBooking)
	r.Post("/bookings/{id}/reject", h.adminRejectBooking)
	r.Post("/bookings/{id}/delete", h.adminDeleteBooking)
	r.Get("/bookings/export", h.adminExportBookings)

	r.Post("/payments", h.adminCreatePayment)
	r.Post("/payments/{id}/update", h.adminUpdatePayment)
	r.Post("/payments/{id}/delete", h.adminDeletePayment)
}

func (h *Handlers) adminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Back-office tables read fresh, not through the browse caches; an
	// admin acting on a stale row is worse than five extra round-trips.
	stats, err := h.Admin.Stats(ctx)
	if err != nil {
		h.fail(w, r, "/", err)
		return
	}
	users, err := h.Admin.ListUsers(ctx)
	if err != nil {
		h.fail(w, r, "/", err)
		return
	}
	hotels, _ := h.API.ListHotels(ctx, domain.HotelsQuery{Limit: 200})
	rooms, _ := h.API.ListRooms(ctx, domain.RoomsQuery{Limit: 200})
	bookings, _ := h.API.ListBookings(ctx, domain.BookingsQuery{Limit: 200})
	payments, _ := h.API.ListPayments(ctx, domain.PaymentsQuery{Limit: 200})

	h.render(w, r, "admin", map[string]any{
		"Stats":    stats,
		"Users":    users,
		"Hotels":   hotels,
		"Rooms":    rooms,
		"Bookings": bookings,
		"Payments": payments,
	})
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// ---- users ----

func (h *Handlers) adminCreateUser(w http.ResponseWriter, r *http.Request) {
	u := domain.UserCreate{
		Email:     r.FormValue("email"),
		Username:  r.FormValue("username"),
		Password:  r.FormValue("password"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Phone:     r.FormValue("phone"),
		Role:      r.FormValue("role"),
	}
	if errs := domain.ValidateRegistration(u, r.FormValue("password")); !errs.OK() {
		redirectMsg(w, r, "/admin", "", errs.Error())
		return
	}
	if _, err := h.Admin.CreateUser(r.Context(), u); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "User created", "")
}

func (h *Handlers) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
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
	if v := r.FormValue("role"); v != "" {
		upd.Role = &v
	}
	if v := r.FormValue("is_active"); v != "" {
		b := v == "true"
		upd.IsActive = &b
	}
	if _, err := h.Admin.UpdateUser(r.Context(), id, upd); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "User updated", "")
}

func (h *Handlers) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.Admin.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "User deleted", "")
}

// ---- hotels ----

func (h *Handlers) adminCreateHotel(w http.ResponseWriter, r *http.Request) {
	hc := domain.HotelCreate{
		Name:        r.FormValue("name"),
		Address:     r.FormValue("address"),
		City:        r.FormValue("city"),
		Country:     r.FormValue("country"),
		Phone:       r.FormValue("phone"),
		Email:       r.FormValue("email"),
		Description: r.FormValue("description"),
		Amenities:   r.FormValue("amenities"),
	}
	if v, err := strconv.Atoi(r.FormValue("star_rating")); err == nil {
		hc.StarRating = &v
	}
	if _, err := h.Commands.CreateHotel(r.Context(), hc); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Hotel created", "")
}

func (h *Handlers) adminUpdateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	upd := domain.HotelUpdate{}
	set := func(name string, dst **string) {
		if v := r.FormValue(name); v != "" {
			*dst = &v
		}
	}
	set("name", &upd.Name)
	set("address", &upd.Address)
	set("city", &upd.City)
	set("country", &upd.Country)
	set("phone", &upd.Phone)
	set("email", &upd.Email)
	set("description", &upd.Description)
	set("amenities", &upd.Amenities)
	if v, err := strconv.Atoi(r.FormValue("star_rating")); err == nil {
		upd.StarRating = &v
	}
	if _, err := h.Commands.UpdateHotel(r.Context(), id, upd); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Hotel updated", "")
}

func (h *Handlers) adminDeleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.Commands.DeleteHotel(r.Context(), id); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Hotel deleted", "")
}

func (h *Handlers) adminUploadHotelImages(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	files, err := multipartFiles(r)
	if err != nil {
		redirectMsg(w, r, "/admin", "", "No files selected")
		return
	}
	if _, err := h.Uploads.UploadHotelImages(r.Context(), id, files); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Images uploaded", "")
}

// ---- rooms ----

func (h *Handlers) adminCreateRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, _ := strconv.ParseInt(r.FormValue("hotel_id"), 10, 64)
	price, _ := strconv.ParseFloat(r.FormValue("price_per_night"), 64)
	capacity, _ := strconv.Atoi(r.FormValue("capacity"))
	rc := domain.RoomCreate{
		HotelID:       hotelID,
		RoomNumber:    r.FormValue("room_number"),
		RoomType:      r.FormValue("room_type"),
		PricePerNight: price,
		Capacity:      capacity,
		Description:   r.FormValue("description"),
		Amenities:     r.FormValue("amenities"),
	}
	if _, err := h.Commands.CreateRoom(r.Context(), rc); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Room created", "")
}

func (h *Handlers) adminUpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	upd := domain.RoomUpdate{}
	if v := r.FormValue("room_number"); v != "" {
		upd.RoomNumber = &v
	}
	if v := r.FormValue("room_type"); v != "" {
		upd.RoomType = &v
	}
	if v, err := strconv.ParseFloat(r.FormValue("price_per_night"), 64); err == nil {
		upd.PricePerNight = &v
	}
	if v, err := strconv.Atoi(r.FormValue("capacity")); err == nil {
		upd.Capacity = &v
	}
	if v := r.FormValue("is_available"); v != "" {
		b := v == "true"
		upd.IsAvailable = &b
	}
	if _, err := h.Commands.UpdateRoom(r.Context(), id, upd); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Room updated", "")
}

func (h *Handlers) adminDeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.Commands.DeleteRoom(r.Context(), id); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Room deleted", "")
}

func (h *Handlers) adminRoomMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	on := r.FormValue("is_maintenance") == "true"
	if err := h.Commands.SetRoomMaintenance(r.Context(), id, on); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	msg := "Room taken out of maintenance"
	if on {
		msg = "Room placed in maintenance"
	}
	redirectMsg(w, r, "/admin", msg, "")
}

func (h *Handlers) adminUploadRoomImages(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	files, err := multipartFiles(r)
	if err != nil {
		redirectMsg(w, r, "/admin", "", "No files selected")
		return
	}
	if _, err := h.Uploads.UploadRoomImages(r.Context(), id, files); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Images uploaded", "")
}

// ---- bookings ----

func (h *Handlers) adminConfirmBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.Commands.ConfirmBooking(r.Context(), id); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Booking confirmed", "")
}

func (h *Handlers) adminRejectBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.Commands.RejectBooking(r.Context(), id); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Booking rejected", "")
}

func (h *Handlers) adminDeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.Commands.DeleteBooking(r.Context(), id); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Booking deleted", "")
}

func (h *Handlers) adminExportBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.API.ListBookings(r.Context(), domain.BookingsQuery{Limit: 1000})
	if err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	// build in memory first so the filename header goes out before any bytes
	var buf bytes.Buffer
	name, err := app.BookingsReport(&buf, bookings)
	if err != nil {
		h.renderError(w, http.StatusInternalServerError, "Export failed")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = buf.WriteTo(w)
}

// ---- payments ----

func (h *Handlers) adminCreatePayment(w http.ResponseWriter, r *http.Request) {
	bookingID, _ := strconv.ParseInt(r.FormValue("booking_id"), 10, 64)
	amount, _ := strconv.ParseFloat(r.FormValue("amount"), 64)
	pc := domain.PaymentCreate{
		BookingID:     bookingID,
		Amount:        amount,
		PaymentMethod: r.FormValue("payment_method"),
		TransactionID: r.FormValue("transaction_id"),
	}
	if _, err := h.Admin.CreatePayment(r.Context(), pc); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Payment created", "")
}

func (h *Handlers) adminUpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	upd := domain.PaymentUpdate{}
	if v := r.FormValue("status"); v != "" {
		upd.Status = &v
	}
	if v := r.FormValue("transaction_id"); v != "" {
		upd.TransactionID = &v
	}
	if _, err := h.Admin.UpdatePayment(r.Context(), id, upd); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Payment updated", "")
}

func (h *Handlers) adminDeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.renderError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.Admin.DeletePayment(r.Context(), id); err != nil {
		h.fail(w, r, "/admin", err)
		return
	}
	redirectMsg(w, r, "/admin", "Payment deleted", "")
}

func multipartFiles(r *http.Request) ([]resapi.UploadFile, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, err
	}
	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		return nil, http.ErrMissingFile
	}
	files := make([]resapi.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		files = append(files, resapi.UploadFile{Name: fh.Filename, Reader: f})
	}
	return files, nil
}

package domain

import "context"

// ReservationAPI is the full surface of the upstream reservation service as
// this client consumes it. One method per endpoint; implementations own the
// envelope differences so callers never unwrap payloads themselves.
type ReservationAPI interface {
	// auth
	Register(ctx context.Context, u UserCreate) (User, error)
	Login(ctx context.Context, c Credentials) (User, string, error)
	CurrentUser(ctx context.Context) (User, error)
	UpdateProfile(ctx context.Context, u UserUpdate) (User, error)
	ChangePassword(ctx context.Context, p PasswordChange) error

	// browsing
	ListHotels(ctx context.Context, q HotelsQuery) ([]Hotel, error)
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	ListRooms(ctx context.Context, q RoomsQuery) ([]Room, error)
	GetRoom(ctx context.Context, id int64) (Room, error)

	// bookings
	CreateBooking(ctx context.Context, b BookingCreate) (Booking, error)
	ListBookings(ctx context.Context, q BookingsQuery) ([]Booking, error)
	MyBookings(ctx context.Context) ([]Booking, error)
	GetBooking(ctx context.Context, id int64) (Booking, error)
	CancelBooking(ctx context.Context, id int64) error

	// payments
	ListPayments(ctx context.Context, q PaymentsQuery) ([]Payment, error)
	GetPayment(ctx context.Context, id int64) (Payment, error)
}

// AdminAPI is the back-office surface, admin-token only.
type AdminAPI interface {
	Stats(ctx context.Context) (Stats, error)

	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, u UserCreate) (User, error)
	UpdateUser(ctx context.Context, id int64, u UserUpdate) (User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateHotel(ctx context.Context, h HotelCreate) (Hotel, error)
	UpdateHotel(ctx context.Context, id int64, h HotelUpdate) (Hotel, error)
	DeleteHotel(ctx context.Context, id int64) error

	CreateRoom(ctx context.Context, r RoomCreate) (Room, error)
	UpdateRoom(ctx context.Context, id int64, r RoomUpdate) (Room, error)
	DeleteRoom(ctx context.Context, id int64) error
	SetRoomMaintenance(ctx context.Context, id int64, maintenance bool) error

	ConfirmBooking(ctx context.Context, id int64) error
	RejectBooking(ctx context.Context, id int64) error
	UpdateBooking(ctx context.Context, id int64, b BookingUpdate) (Booking, error)
	DeleteBooking(ctx context.Context, id int64) error

	CreatePayment(ctx context.Context, p PaymentCreate) (Payment, error)
	UpdatePayment(ctx context.Context, id int64, p PaymentUpdate) (Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

// Cache is the ephemeral query-result cache. Mutations must invalidate the
// keys they affect; nothing here is authoritative.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, keys ...string) error
}

// SessionVault persists the session pair across restarts. Save and Clear
// operate on the pair as a unit; Load reports present only when both halves
// are readable.
type SessionVault interface {
	Save(user User, token string) error
	Load() (User, string, bool, error)
	Clear() error
}

package app

import (
	"context"
	"time"

	"stayfront/internal/domain"
)

// CommandService issues the mutating calls. Every successful mutation bumps
// the generation of the query caches it invalidates; the server stays the
// only authority on the outcome.
type CommandService struct {
	api   domain.ReservationAPI
	admin domain.AdminAPI
	cache domain.Cache
	now   func() time.Time
}

func NewCommandService(api domain.ReservationAPI, admin domain.AdminAPI, c domain.Cache) *CommandService {
	return &CommandService{api: api, admin: admin, cache: c, now: time.Now}
}

// CreateBooking runs the form validation first; an invalid form never
// reaches the network. capacity caps the guest count when known (>0).
func (s *CommandService) CreateBooking(ctx context.Context, b domain.BookingCreate, capacity int) (domain.Booking, error) {
	if errs := domain.ValidateBooking(b, capacity, s.now()); !errs.OK() {
		return domain.Booking{}, errs
	}
	created, err := s.api.CreateBooking(ctx, b)
	if err != nil {
		return domain.Booking{}, err
	}
	// availability changed for the room, and the user's booking list grew
	bumpGen(ctx, s.cache, resRooms)
	bumpGen(ctx, s.cache, resBookings)
	return created, nil
}

func (s *CommandService) CancelBooking(ctx context.Context, id int64) error {
	if err := s.api.CancelBooking(ctx, id); err != nil {
		return err
	}
	bumpGen(ctx, s.cache, resRooms)
	bumpGen(ctx, s.cache, resBookings)
	return nil
}

// ---- back office ----

func (s *CommandService) CreateHotel(ctx context.Context, h domain.HotelCreate) (domain.Hotel, error) {
	created, err := s.admin.CreateHotel(ctx, h)
	if err == nil {
		bumpGen(ctx, s.cache, resHotels)
	}
	return created, err
}

func (s *CommandService) UpdateHotel(ctx context.Context, id int64, h domain.HotelUpdate) (domain.Hotel, error) {
	updated, err := s.admin.UpdateHotel(ctx, id, h)
	if err == nil {
		bumpGen(ctx, s.cache, resHotels)
	}
	return updated, err
}

func (s *CommandService) DeleteHotel(ctx context.Context, id int64) error {
	err := s.admin.DeleteHotel(ctx, id)
	if err == nil {
		bumpGen(ctx, s.cache, resHotels)
		bumpGen(ctx, s.cache, resRooms)
	}
	return err
}

func (s *CommandService) CreateRoom(ctx context.Context, r domain.RoomCreate) (domain.Room, error) {
	created, err := s.admin.CreateRoom(ctx, r)
	if err == nil {
		bumpGen(ctx, s.cache, resRooms)
	}
	return created, err
}

func (s *CommandService) UpdateRoom(ctx context.Context, id int64, r domain.RoomUpdate) (domain.Room, error) {
	updated, err := s.admin.UpdateRoom(ctx, id, r)
	if err == nil {
		bumpGen(ctx, s.cache, resRooms)
	}
	return updated, err
}

func (s *CommandService) DeleteRoom(ctx context.Context, id int64) error {
	err := s.admin.DeleteRoom(ctx, id)
	if err == nil {
		bumpGen(ctx, s.cache, resRooms)
	}
	return err
}

func (s *CommandService) SetRoomMaintenance(ctx context.Context, id int64, maintenance bool) error {
	err := s.admin.SetRoomMaintenance(ctx, id, maintenance)
	if err == nil {
		bumpGen(ctx, s.cache, resRooms)
	}
	return err
}

func (s *CommandService) ConfirmBooking(ctx context.Context, id int64) error {
	err := s.admin.ConfirmBooking(ctx, id)
	if err == nil {
		bumpGen(ctx, s.cache, resBookings)
	}
	return err
}

func (s *CommandService) RejectBooking(ctx context.Context, id int64) error {
	err := s.admin.RejectBooking(ctx, id)
	if err == nil {
		bumpGen(ctx, s.cache, resRooms)
		bumpGen(ctx, s.cache, resBookings)
	}
	return err
}

func (s *CommandService) UpdateBooking(ctx context.Context, id int64, b domain.BookingUpdate) (domain.Booking, error) {
	updated, err := s.admin.UpdateBooking(ctx, id, b)
	if err == nil {
		bumpGen(ctx, s.cache, resBookings)
	}
	return updated, err
}

func (s *CommandService) DeleteBooking(ctx context.Context, id int64) error {
	err := s.admin.DeleteBooking(ctx, id)
	if err == nil {
		bumpGen(ctx, s.cache, resRooms)
		bumpGen(ctx, s.cache, resBookings)
	}
	return err
}

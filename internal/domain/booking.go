package domain

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

type Booking struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"user_id"`
	RoomID           int64   `json:"room_id"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	TotalPrice       float64 `json:"total_price"`
	Status           string  `json:"status"` // pending|confirmed|cancelled|completed
	GuestCount       int     `json:"guest_count"`
	BookingReference string  `json:"booking_reference,omitempty"`
	SpecialRequests  string  `json:"special_requests,omitempty"`
	CreatedAt        string  `json:"created_at,omitempty"`
	UpdatedAt        string  `json:"updated_at,omitempty"`
	User             *User   `json:"user,omitempty"`
	Room             *Room   `json:"room,omitempty"`
}

type BookingCreate struct {
	RoomID          int64  `json:"room_id"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	GuestCount      int    `json:"guest_count"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type BookingUpdate struct {
	CheckInDate     *string `json:"check_in_date,omitempty"`
	CheckOutDate    *string `json:"check_out_date,omitempty"`
	GuestCount      *int    `json:"guest_count,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
	Status          *string `json:"status,omitempty"`
}

type BookingsQuery struct {
	Skip      int
	Limit     int
	UserID    *int64
	RoomID    *int64
	HotelID   *int64
	Status    string
	StartDate string
	EndDate   string
}

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Payment struct {
	ID            int64    `json:"id"`
	BookingID     int64    `json:"booking_id"`
	Amount        float64  `json:"amount"`
	PaymentMethod string   `json:"payment_method"` // credit_card|debit_card|paypal|bank_transfer
	TransactionID string   `json:"transaction_id,omitempty"`
	Status        string   `json:"status"` // pending|completed|failed|refunded
	PaymentDate   string   `json:"payment_date,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
	Booking       *Booking `json:"booking,omitempty"`
}

type PaymentCreate struct {
	BookingID     int64   `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

type PaymentUpdate struct {
	Status        *string `json:"status,omitempty"`
	TransactionID *string `json:"transaction_id,omitempty"`
	PaymentDate   *string `json:"payment_date,omitempty"`
}

type PaymentsQuery struct {
	Skip          int
	Limit         int
	BookingID     *int64
	UserID        *int64
	Status        string
	PaymentMethod string
}

// Stats is the admin overview aggregate.
type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	InactiveUsers int64 `json:"inactive_users"`
	TotalHotels   int64 `json:"total_hotels"`
	TotalRooms    int64 `json:"total_rooms"`
	TotalBookings int64 `json:"total_bookings"`
}

package domain

const (
	RoomSingle = "single"
	RoomDouble = "double"
	RoomSuite  = "suite"
	RoomDeluxe = "deluxe"
)

type Room struct {
	ID            int64    `json:"id"`
	HotelID       int64    `json:"hotel_id"`
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"` // single|double|suite|deluxe
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Description   string   `json:"description,omitempty"`
	Amenities     string   `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsAvailable   bool     `json:"is_available"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
	Hotel         *Hotel   `json:"hotel,omitempty"`
}

type RoomCreate struct {
	HotelID       int64    `json:"hotel_id"`
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Description   string   `json:"description,omitempty"`
	Amenities     string   `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`
}

type RoomUpdate struct {
	RoomNumber    *string  `json:"room_number,omitempty"`
	RoomType      *string  `json:"room_type,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Capacity      *int     `json:"capacity,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Amenities     *string  `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`
	IsAvailable   *bool    `json:"is_available,omitempty"`
}

// RoomsQuery carries the room search filters. Dates are YYYY-MM-DD strings,
// passed through to the availability check on the server.
type RoomsQuery struct {
	Skip          int
	Limit         int
	HotelID       *int64
	RoomType      string
	MinPrice      *float64
	MaxPrice      *float64
	Capacity      *int
	AvailableOnly bool
	CheckIn       string
	CheckOut      string
}

package domain

type Hotel struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	StarRating  *int     `json:"star_rating,omitempty"`
	Amenities   string   `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type HotelCreate struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
	StarRating  *int   `json:"star_rating,omitempty"`
	Amenities   string `json:"amenities,omitempty"`
}

type HotelUpdate struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Description *string `json:"description,omitempty"`
	StarRating  *int    `json:"star_rating,omitempty"`
	Amenities   *string `json:"amenities,omitempty"`
}

// HotelsQuery carries the list filters the API accepts.
type HotelsQuery struct {
	Skip      int
	Limit     int
	City      string
	Country   string
	MinRating *float64
	Search    string
}

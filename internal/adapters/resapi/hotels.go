package resapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stayfront/internal/domain"
)

// Hotels endpoints wrap their payload in the {code, message, data} envelope;
// everything else on the API returns payloads bare.

func (c *Client) ListHotels(ctx context.Context, q domain.HotelsQuery) ([]domain.Hotel, error) {
	v := url.Values{}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.City != "" {
		v.Set("city", q.City)
	}
	if q.Country != "" {
		v.Set("country", q.Country)
	}
	if q.MinRating != nil {
		v.Set("min_rating", strconv.FormatFloat(*q.MinRating, 'f', -1, 64))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	var out []domain.Hotel
	err := c.do(ctx, http.MethodGet, "/hotels/", "/hotels/", v, nil, enveloped(&out))
	return out, err
}

func (c *Client) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	var out domain.Hotel
	err := c.do(ctx, http.MethodGet, "/hotels/{id}", fmt.Sprintf("/hotels/%d", id), nil, nil, enveloped(&out))
	return out, err
}

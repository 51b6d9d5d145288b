package resapi

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
)

// Image uploads are multipart form posts issued outside the shared JSON
// wrapper, so they do not participate in its retry policy or unauthorized
// hook. That matches the upstream contract: the upload endpoints answer
// their own auth failures and the caller handles them locally.

type UploadFile struct {
	Name   string
	Reader io.Reader
}

func (c *Client) UploadHotelImages(ctx context.Context, hotelID int64, files []UploadFile) ([]string, error) {
	return c.upload(ctx, fmt.Sprintf("%s/hotels/%d/upload-images", c.base, hotelID), files)
}

func (c *Client) UploadRoomImages(ctx context.Context, roomID int64, files []UploadFile) ([]string, error) {
	return c.upload(ctx, fmt.Sprintf("%s/rooms/%d/upload-images", c.base, roomID), files)
}

func (c *Client) upload(ctx context.Context, url string, files []UploadFile) ([]string, error) {
	var out struct {
		Data []string `json:"data"`
	}
	req := resty.New().R().
		SetContext(ctx).
		SetAuthToken(c.tokens()).
		SetResult(&out)
	for _, f := range files {
		req.SetFileReader("files", f.Name, f.Reader)
	}
	resp, err := req.Post(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upload failed: %s", resp.Status())
	}
	return out.Data, nil
}

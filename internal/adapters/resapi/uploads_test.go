package resapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stayfront/internal/adapters/resapi"
)

func TestUploadHotelImages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hotels/3/upload-images" {
			w.WriteHeader(404)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer up-tok" {
			t.Errorf("missing bearer on upload: %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("not multipart: %v", err)
		}
		if n := len(r.MultipartForm.File["files"]); n != 2 {
			t.Errorf("expected 2 files, got %d", n)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"message":"ok","data":["/uploads/a.jpg","/uploads/b.jpg"]}`))
	}))
	defer ts.Close()

	cl := resapi.New(ts.URL, func() string { return "up-tok" }, 100)
	paths, err := cl.UploadHotelImages(context.Background(), 3, []resapi.UploadFile{
		{Name: "a.jpg", Reader: strings.NewReader("aaa")},
		{Name: "b.jpg", Reader: strings.NewReader("bbb")},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/uploads/a.jpg" {
		t.Fatalf("unexpected paths: %v", paths)
	}
}

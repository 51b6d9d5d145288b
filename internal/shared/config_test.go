package shared_test

import (
	"testing"

	"stayfront/internal/shared"
)

func TestNormalizeBase(t *testing.T) {
	cases := map[string]string{
		"http://localhost:8000":         "http://localhost:8000/api/v1",
		"http://localhost:8000/":        "http://localhost:8000/api/v1",
		"http://localhost:8000/api/v1":  "http://localhost:8000/api/v1",
		"http://localhost:8000/api/v1/": "http://localhost:8000/api/v1",
		"https://api.example.com":       "https://api.example.com/api/v1",
	}
	for in, want := range cases {
		if got := shared.NormalizeBase(in); got != want {
			t.Errorf("NormalizeBase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMediaBase(t *testing.T) {
	if got := shared.MediaBase("http://localhost:8000/api/v1"); got != "http://localhost:8000" {
		t.Fatalf("unexpected media base: %q", got)
	}
}

func TestMediaURL(t *testing.T) {
	if got := shared.MediaURL("http://h", "/uploads/1.jpg"); got != "http://h/uploads/1.jpg" {
		t.Fatalf("relative path not resolved: %q", got)
	}
	if got := shared.MediaURL("http://h", "https://cdn/x.jpg"); got != "https://cdn/x.jpg" {
		t.Fatalf("absolute URL should pass through: %q", got)
	}
}

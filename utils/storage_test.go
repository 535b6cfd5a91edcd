package utils

import "testing"

func TestObjectNameFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"public url", "https://item-images.object.pscloud.io/abc123.jpg", "abc123.jpg"},
		{"nested path", "https://host/bucket/folder/photo.png", "photo.png"},
		{"bare name", "photo.webp", "photo.webp"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ObjectNameFromURL(tc.url); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

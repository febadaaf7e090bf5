package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned delivery URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1700000000/products/headphones.png",
			want: "products/headphones",
		},
		{
			name: "unversioned URL",
			url:  "https://res.cloudinary.com/demo/image/upload/products/keyboard.jpg",
			want: "products/keyboard",
		},
		{
			name: "query string stripped",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/products/mouse.webp?w=400",
			want: "products/mouse",
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/products/monitor",
			want: "products/monitor",
		},
		{
			name: "not an upload URL",
			url:  "https://cdn.example.com/static/logo.png",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicIDFromURL(tt.url))
		})
	}
}

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "versioned url with folder",
			url:      "https://res.cloudinary.com/demo/image/upload/v1712345678/lebenslauf/portrait.webp",
			expected: "lebenslauf/portrait",
		},
		{
			name:     "url without version",
			url:      "https://res.cloudinary.com/demo/image/upload/lebenslauf/portrait.jpg",
			expected: "lebenslauf/portrait",
		},
		{
			name:     "folder starting with v is kept",
			url:      "https://res.cloudinary.com/demo/image/upload/videos/clip.png",
			expected: "videos/clip",
		},
		{
			name:     "not a cloudinary path",
			url:      "https://example.com/images/portrait.jpg",
			expected: "",
		},
		{
			name:     "nothing after upload",
			url:      "https://res.cloudinary.com/demo/image/upload",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPublicID(tt.url))
		})
	}
}

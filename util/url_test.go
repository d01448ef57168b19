package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"Example.COM", "example.com"},
		{"https://www.example.com/path?q=1", "example.com"},
		{"http://shop.example.com:8080", "shop.example.com"},
		{"  www.example.com  ", "example.com"},
		{"example.com/blog", "example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := GetDomain(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetDomain_Empty(t *testing.T) {
	_, err := GetDomain("   ")
	assert.ErrorIs(t, err, ErrEmptyDomain)

	_, err = GetDomain("http://")
	assert.ErrorIs(t, err, ErrEmptyDomain)
}

func TestSplitList(t *testing.T) {
	got := SplitList([]string{"a.com,b.com", "", " c.com ", ",,"})
	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, got)
	assert.Nil(t, SplitList(nil))
}

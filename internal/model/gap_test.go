package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGapQuery_Normalizes(t *testing.T) {
	q, err := NewGapQuery("https://www.Example.com/", []string{
		"rival.com", "", "  ", "RIVAL.com", "example.com", "http://other.io/page",
	})
	require.NoError(t, err)

	assert.Equal(t, "example.com", q.Primary)
	assert.Equal(t, []string{"rival.com", "other.io"}, q.Competitors)
	assert.Equal(t, []string{"example.com", "rival.com", "other.io"}, q.Domains())
}

func TestNewGapQuery_EmptyPrimary(t *testing.T) {
	_, err := NewGapQuery("", []string{"rival.com"})
	assert.Error(t, err)
}

func TestGapQuery_Validate(t *testing.T) {
	q := GapQuery{Primary: "example.com", Competitors: []string{"a.com", "b.com"}}
	assert.NoError(t, q.Validate(4))
	assert.ErrorContains(t, q.Validate(1), "at most 1 competitors")

	noCompetitors := GapQuery{Primary: "example.com"}
	assert.ErrorContains(t, noCompetitors.Validate(4), "Competitors")

	badDomain := GapQuery{Primary: "example.com", Competitors: []string{"not a domain"}}
	assert.ErrorContains(t, badDomain.Validate(4), "fqdn")
}

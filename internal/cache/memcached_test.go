package cache

import (
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGapKey(t *testing.T) {
	a := model.GapQuery{Primary: "example.com", Competitors: []string{"b.com", "a.com"}}
	b := model.GapQuery{Primary: "example.com", Competitors: []string{"a.com", "b.com"}}
	other := model.GapQuery{Primary: "a.com", Competitors: []string{"example.com", "b.com"}}

	assert.Equal(t, gapKey(keywordGapPrefix, a), gapKey(keywordGapPrefix, b))
	assert.NotEqual(t, gapKey(keywordGapPrefix, a), gapKey(backlinkGapPrefix, a))
	assert.NotEqual(t, gapKey(keywordGapPrefix, a), gapKey(keywordGapPrefix, other))
	assert.Less(t, len(gapKey(backlinkGapPrefix, a)), 250)
	// sorting must not reorder the caller's slice
	assert.Equal(t, []string{"b.com", "a.com"}, a.Competitors)
}

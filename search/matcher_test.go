package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohithgowdak/ninexta/catalog"
)

func matchCatalog() []catalog.Agent {
	return []catalog.Agent{
		{ID: "1", Name: "WriteBot", Description: "AI-powered writing assistant", Categories: []string{"Writing"}, Capabilities: []string{"Content creation"}},
		{ID: "2", Name: "CodeAssist", Description: "AI coding assistant", Categories: []string{"Coding"}, Capabilities: []string{"Code generation"}},
		{ID: "3", Name: "DataAnalyst", Description: "data crunching", Categories: []string{"Data Analysis"}, Capabilities: []string{"Report generation"}},
	}
}

func TestMatch_EmptyQueryReturnsCatalogUnchanged(t *testing.T) {
	c := matchCatalog()
	got := Match("", c)
	require.Len(t, got, 3)
	assert.Equal(t, c, got)

	// whitespace-only behaves like empty
	assert.Equal(t, c, Match("   ", c))
}

func TestMatch_CaseInsensitive(t *testing.T) {
	c := matchCatalog()
	upper := Match("WRITING", c)
	lower := Match("writing", c)
	assert.Equal(t, lower, upper)
	require.Len(t, lower, 1)
	assert.Equal(t, "1", lower[0].ID)
}

func TestMatch_SubstringNotToken(t *testing.T) {
	c := matchCatalog()
	// "Data Analysis" must match both halves of the tag
	for _, q := range []string{"data", "analysis"} {
		got := Match(q, c)
		require.NotEmpty(t, got, "query %q", q)
		assert.Equal(t, "3", got[0].ID, "query %q", q)
	}
}

func TestMatch_FieldsSearched(t *testing.T) {
	c := matchCatalog()

	tests := []struct {
		query  string
		wantID string
	}{
		{"writebot", "1"},        // name
		{"coding assistant", "2"}, // description
		{"code generation", "2"},  // capability
	}
	for _, tt := range tests {
		got := Match(tt.query, c)
		require.Len(t, got, 1, "query %q", tt.query)
		assert.Equal(t, tt.wantID, got[0].ID)
	}
}

func TestMatch_NoHitYieldsEmptyNotError(t *testing.T) {
	got := Match("quantum blockchain", matchCatalog())
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestMatch_PreservesCatalogOrder(t *testing.T) {
	// "assistant" appears in two descriptions; relative order must hold
	got := Match("assistant", matchCatalog())
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestApply_Filters(t *testing.T) {
	c := matchCatalog()
	c[0].Rating = 4.5
	c[1].Rating = 3.0
	c[2].Rating = 4.0

	// no-op filters return input untouched
	assert.Equal(t, c, Apply(c, Filters{}))

	byCategory := Apply(c, Filters{Category: "Coding"})
	require.Len(t, byCategory, 1)
	assert.Equal(t, "2", byCategory[0].ID)

	// category is exact tag match, not substring
	assert.Empty(t, Apply(c, Filters{Category: "Cod"}))

	byRating := Apply(c, Filters{MinRating: 4.0})
	require.Len(t, byRating, 2)
	assert.Equal(t, "1", byRating[0].ID)
	assert.Equal(t, "3", byRating[1].ID)

	both := Apply(c, Filters{Category: "Writing", MinRating: 4.0})
	require.Len(t, both, 1)
	assert.Equal(t, "1", both[0].ID)
}

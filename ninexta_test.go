package ninexta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohithgowdak/ninexta/catalog"
	"github.com/mohithgowdak/ninexta/ranker"
)

func TestNew_Defaults(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	assert.Len(t, d.Agents(), 5)
	assert.NotEmpty(t, d.Categories())
}

func TestNew_RejectsBadCatalog(t *testing.T) {
	_, err := New(func(o *Options) {
		o.Agents = []catalog.Agent{{ID: "x"}, {ID: "x"}}
	})
	require.Error(t, err)
}

func TestDirectory_SearchEmptyQueryReturnsCatalog(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	got := d.Search(context.Background(), "")
	agents := d.Agents()
	require.Len(t, got, len(agents))
	for i := range got {
		assert.Equal(t, agents[i].ID, got[i].ID)
	}
}

func TestDirectory_SearchWithRanker(t *testing.T) {
	gen := &ranker.MockGenerator{Response: "2, 1"}
	d, err := New(func(o *Options) {
		o.Ranker = ranker.NewLLMRanker(gen)
	})
	require.NoError(t, err)

	got := d.Search(context.Background(), "coding")
	require.Len(t, got, 2)
	assert.Equal(t, "CodeAssist", got[0].Name)
	assert.Equal(t, "WriteBot", got[1].Name)
}

func TestDirectory_SubmitReview(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	before, err := d.Agent("1")
	require.NoError(t, err)

	a, err := d.SubmitReview("1", "Jane", 3, "decent")
	require.NoError(t, err)
	assert.Len(t, a.Reviews, len(before.Reviews)+1)

	_, err = d.SubmitReview("1", "", 6, "too high")
	var invalid *catalog.InvalidReviewError
	assert.ErrorAs(t, err, &invalid)
}

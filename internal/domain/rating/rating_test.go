//go:build unit

package rating_test

import (
	"strings"
	"testing"
	"time"

	"click-collect/internal/domain/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	now := time.Now()

	for _, score := range []int{0, 6, -1} {
		_, err := rating.NewRating(uuid.New(), uuid.New(), score, "", now)
		assert.ErrorIs(t, err, rating.ErrInvalidScore, "score %d", score)
	}

	_, err := rating.NewRating(uuid.New(), uuid.New(), 4, strings.Repeat("é", rating.MaxCommentLength+1), now)
	assert.ErrorIs(t, err, rating.ErrCommentTooLong)

	r, err := rating.NewRating(uuid.New(), uuid.New(), 5, strings.Repeat("é", rating.MaxCommentLength), now)
	require.NoError(t, err)
	require.NotNil(t, r.Comment())

	r, err = rating.NewRating(uuid.New(), uuid.New(), 1, "   ", now)
	require.NoError(t, err)
	assert.Nil(t, r.Comment())
}

func TestSummarize(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		avg    string
		count  int
	}{
		{name: "none", scores: nil, avg: "0", count: 0},
		{name: "single", scores: []int{4}, avg: "4", count: 1},
		{name: "rounded mean", scores: []int{5, 4, 4}, avg: "4.33", count: 3},
		{name: "round half up", scores: []int{5, 4, 4, 4, 4, 4, 4, 4}, avg: "4.13", count: 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := rating.Summarize(tc.scores)
			assert.Equal(t, tc.avg, s.Average.String())
			assert.Equal(t, tc.count, s.Count)
		})
	}

	assert.Equal(t, rating.Summarize([]int{5, 3, 1}), rating.FromTotals(9, 3))
}

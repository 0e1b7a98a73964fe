package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePostSort(t *testing.T) {
	cases := map[string]PostSort{
		"":            SortNewest,
		"newest":      SortNewest,
		"date-asc":    SortDateAsc,
		"title-asc":   SortTitleAsc,
		"most-liked":  SortMostLiked,
		"least-liked": SortLeastLiked,
		"popular":     SortNewest,
		"MOST-LIKED":  SortNewest,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParsePostSort(in), "input %q", in)
	}
}

package finder

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dl/quickfind/internal/matcher"
)

// identity treats offsets as line numbers so spans can name lines directly.
func identity(offset int) int { return offset }

func spansOnLines(lines ...int) []matcher.Span {
	spans := make([]matcher.Span, len(lines))
	for i, l := range lines {
		spans[i] = matcher.Span{Begin: l, End: l + 1}
	}
	return spans
}

func lineNumbers(set LineSet) []int {
	out := make([]int, len(set))
	for i, r := range set {
		out[i] = r.Line
	}
	return out
}

func TestCollect_SingleHit(t *testing.T) {
	got := Collect(spansOnLines(4), identity, 10)
	assert.Equal(t, LineSet{
		{Line: 2}, {Line: 3}, {Line: 4, Hits: 1}, {Line: 5}, {Line: 6},
	}, got)
}

func TestCollect_NoSpans(t *testing.T) {
	assert.Empty(t, Collect(nil, identity, 10))
}

func TestCollect_ClipsAtBothEnds(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, lineNumbers(Collect(spansOnLines(0), identity, 10)))
	assert.Equal(t, []int{7, 8, 9}, lineNumbers(Collect(spansOnLines(9), identity, 10)))
	assert.Equal(t, []int{0}, lineNumbers(Collect(spansOnLines(0), identity, 1)))
}

func TestCollect_DropsOutOfRangeHits(t *testing.T) {
	got := Collect(spansOnLines(-1, 12), identity, 10)
	assert.Empty(t, got)

	got = Collect(spansOnLines(9, 10), identity, 10)
	assert.Equal(t, []int{7, 8, 9}, lineNumbers(got))
	assert.Equal(t, 1, hitCount(got))
}

func TestCollect_CountsHitsPerLine(t *testing.T) {
	got := Collect(spansOnLines(3, 3, 3), identity, 10)
	assert.Equal(t, 3, hitCount(got))
	for _, r := range got {
		if r.Line == 3 {
			assert.Equal(t, 3, r.Hits)
		} else {
			assert.Zero(t, r.Hits)
		}
	}
}

func TestCollect_OverlappingWindowsMerge(t *testing.T) {
	// Windows [1,5] and [3,7] overlap on 3..5; each line appears once
	// and lines 3 and 5 keep their true hit counts.
	got := Collect(spansOnLines(5, 3), identity, 20)
	assert.Equal(t, LineSet{
		{Line: 1}, {Line: 2}, {Line: 3, Hits: 1}, {Line: 4}, {Line: 5, Hits: 1}, {Line: 6}, {Line: 7},
	}, got)
}

func TestCollect_TwoDisjointBlocks(t *testing.T) {
	got := Collect(spansOnLines(1, 8), identity, 10)
	assert.Equal(t, []int{0, 1, 2, 3, 6, 7, 8, 9}, lineNumbers(got))
}

func TestCollect_UsesLineOfBegin(t *testing.T) {
	// Offsets 0..9 on line 0, 10..19 on line 1, ...
	lineOf := func(off int) int { return off / 10 }
	spans := []matcher.Span{{Begin: 25, End: 42}} // spans lines 2..4, anchored on 2
	got := Collect(spans, lineOf, 10)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, lineNumbers(got))
	assert.Equal(t, 1, got[2].Hits)
}

func TestCollect_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for iter := 0; iter < 500; iter++ {
		lineCount := rng.IntN(40) + 1
		spans := make([]matcher.Span, rng.IntN(8))
		hits := map[int]int{}
		for i := range spans {
			l := rng.IntN(lineCount)
			spans[i] = matcher.Span{Begin: l, End: l + 1}
			hits[l]++
		}

		got := Collect(spans, identity, lineCount)

		want := map[int]bool{}
		for h := range hits {
			for i := h - ContextRadius; i <= h+ContextRadius; i++ {
				if i >= 0 && i < lineCount {
					want[i] = true
				}
			}
		}
		if !assert.Len(t, got, len(want), "iteration %d", iter) {
			return
		}
		for i, r := range got {
			assert.True(t, want[r.Line], "line %d not expected", r.Line)
			assert.Equal(t, hits[r.Line], r.Hits)
			if i > 0 {
				assert.Greater(t, r.Line, got[i-1].Line, "strictly increasing")
			}
		}

		// Reversed input yields the same set.
		reversed := make([]matcher.Span, len(spans))
		for i, s := range spans {
			reversed[len(spans)-1-i] = s
		}
		assert.Equal(t, got, Collect(reversed, identity, lineCount))
		assert.Equal(t, got, Collect(spans, identity, lineCount))
	}
}

func hitCount(s LineSet) int {
	n := 0
	for _, r := range s {
		n += r.Hits
	}
	return n
}

package get_available_slots

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBot/pkg/types"
)

func makeSequence(n int) []types.TimeString {
	seq := make([]types.TimeString, 0, n)
	for i := 0; i < n; i++ {
		seq = append(seq, types.TimeString(fmt.Sprintf("%02d:%02d", i/60, i%60)))
	}
	return seq
}

func TestPageSlice_Empty(t *testing.T) {
	chunk, hasPrev, hasNext := pageSlice([]types.TimeString{}, 0, 9)
	assert.Empty(t, chunk)
	assert.False(t, hasPrev)
	assert.False(t, hasNext)
}

func TestPageSlice_SinglePage(t *testing.T) {
	seq := makeSequence(5)

	chunk, hasPrev, hasNext := pageSlice(seq, 0, 9)
	assert.Equal(t, seq, chunk)
	assert.False(t, hasPrev)
	assert.False(t, hasNext)
}

func TestPageSlice_ExactPageSize(t *testing.T) {
	seq := makeSequence(9)

	chunk, hasPrev, hasNext := pageSlice(seq, 0, 9)
	assert.Len(t, chunk, 9)
	assert.False(t, hasPrev)
	assert.False(t, hasNext)
}

func TestPageSlice_TwoPages(t *testing.T) {
	seq := makeSequence(10)

	first, hasPrev, hasNext := pageSlice(seq, 0, 9)
	assert.Len(t, first, 9)
	assert.False(t, hasPrev)
	assert.True(t, hasNext)

	second, hasPrev, hasNext := pageSlice(seq, 1, 9)
	assert.Len(t, second, 1)
	assert.True(t, hasPrev)
	assert.False(t, hasNext)

	assert.Equal(t, seq, append(append([]types.TimeString{}, first...), second...))
}

// TestPageSlice_Concatenation проверяет, что конкатенация всех страниц
// по порядку воспроизводит исходную последовательность без потерь и дублей.
func TestPageSlice_Concatenation(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 100} {
		t.Run(fmt.Sprintf("len_%d", n), func(t *testing.T) {
			seq := makeSequence(n)

			collected := make([]types.TimeString, 0, n)
			page := 0
			for {
				chunk, hasPrev, hasNext := pageSlice(seq, page, 9)
				assert.Equal(t, page > 0, hasPrev)
				collected = append(collected, chunk...)
				if !hasNext {
					break
				}
				page++
			}

			require.Equal(t, seq, collected)
		})
	}
}

package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseHistogram(t *testing.T) {
	hist := denseHistogram([]hourBucket{
		{Hour: 0, Count: 2},
		{Hour: 9, Count: 14},
		{Hour: 23, Count: 1},
	})

	assert.Equal(t, int64(2), hist[0])
	assert.Equal(t, int64(14), hist[9])
	assert.Equal(t, int64(1), hist[23])

	var total int64
	for _, c := range hist {
		total += c
	}
	assert.Equal(t, int64(17), total)
}

func TestDenseHistogramEmpty(t *testing.T) {
	hist := denseHistogram(nil)
	for hour, c := range hist {
		assert.Zero(t, c, "hour %d", hour)
	}
}

func TestDenseHistogramDropsOutOfRange(t *testing.T) {
	hist := denseHistogram([]hourBucket{
		{Hour: -1, Count: 5},
		{Hour: 24, Count: 5},
		{Hour: 12, Count: 3},
	})

	var total int64
	for _, c := range hist {
		total += c
	}
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(3), hist[12])
}

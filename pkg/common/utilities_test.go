package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextProduct(t *testing.T) {
	ints := []int{2, 1}
	nextProduct := NextCProduct(ints)
	expectedArrs := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	curI := 0

	for {
		product := nextProduct()
		if len(product) == 0 {
			if curI != len(expectedArrs) {
				t.Fatalf("Expected %d products, got %d", len(expectedArrs), curI)
			}
			break
		}
		assert.Equal(t, expectedArrs[curI], product)
		curI++
	}
}

func TestNextProductEmptyDimension(t *testing.T) {
	nextProduct := NextCProduct([]int{2, -1, 0})
	assert.Nil(t, nextProduct())
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"M1", "M2", "M3"}, Unique([]string{"M2", "M1", "M2", "M3", "M1"}))
	assert.Equal(t, []int{4, 8, 16}, Unique([]int{16, 4, 8, 4}))
	assert.Empty(t, Unique([]int(nil)))
}

func TestCombinations(t *testing.T) {
	assert.Equal(t, []Pair[string]{
		{First: "M1", Second: "M2"},
		{First: "M1", Second: "M3"},
		{First: "M2", Second: "M3"},
	}, Combinations([]string{"M1", "M2", "M3"}))

	assert.Empty(t, Combinations([]string{"M1"}))
}

func TestEstimatorLabel(t *testing.T) {
	names := []string{"no-overlap", ""}

	assert.Equal(t, "no-overlap", EstimatorLabel(names, EstimatorA))
	assert.Equal(t, "ESTIMATE2", EstimatorLabel(names, EstimatorB))
	assert.Equal(t, "ESTIMATE3", EstimatorLabel(names, EstimatorC))
	assert.Equal(t, 3, EstimatorC.Number())
}

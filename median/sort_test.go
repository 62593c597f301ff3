package median

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected []float64
	}{
		{"empty", []float64{}, []float64{}},
		{"single element", []float64{42}, []float64{42}},
		{"already sorted", []float64{1, 2, 3}, []float64{1, 2, 3}},
		{"reverse order", []float64{5, 4, 3, 2, 1}, []float64{1, 2, 3, 4, 5}},
		{"duplicates", []float64{3, 1, 4, 1, 5}, []float64{1, 1, 3, 4, 5}},
		{"negatives and decimals", []float64{-1.5, 2.25, -10, 0}, []float64{-10, -1.5, 0, 2.25}},
		{"all equal", []float64{7, 7, 7}, []float64{7, 7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Sort(tt.input)
			assert.Equal(t, tt.expected, tt.input)
		})
	}
}

func TestSort_Integers(t *testing.T) {
	numbers := []int{9, -2, 4, 4, 0}
	Sort(numbers)
	assert.Equal(t, []int{-2, 0, 4, 4, 9}, numbers)
}

func TestSort_PermutationAndOrder(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for run := 0; run < 200; run++ {
		input := make([]float64, r.Intn(50))
		for i := range input {
			input[i] = float64(r.Intn(21) - 10)
		}

		sorted := append([]float64(nil), input...)
		Sort(sorted)

		require.Len(t, sorted, len(input))
		assert.ElementsMatch(t, input, sorted)
		for i := 1; i < len(sorted); i++ {
			require.LessOrEqual(t, sorted[i-1], sorted[i])
		}

		again := append([]float64(nil), sorted...)
		Sort(again)
		assert.Equal(t, sorted, again)
	}
}

func TestSortAndFindMedian(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"single element", []float64{4}, 4},
		{"odd count", []float64{3, 1, 4, 1, 5}, 3},
		{"even count", []float64{2, 4}, 3},
		{"even count with decimal result", []float64{7, 2, 9, 4}, 5.5},
		{"negative values", []float64{-3, -1, -2}, -2},
		{"unsorted even", []float64{10, 1, 3, 8, 2, 6}, 4.5},
		{"largest finite values", []float64{1.7e308, 1.7e308}, 1.7e308},
		{"opposite extremes", []float64{-1.7e308, 1.7e308}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			median, err := SortAndFindMedian(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, median)
		})
	}
}

func TestSortAndFindMedian_Empty(t *testing.T) {
	median, err := SortAndFindMedian([]float64{})

	require.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, 0.0, median)
}

func TestSortAndFindMedian_DoesNotMutateInput(t *testing.T) {
	input := []float64{3, 1, 2}

	_, err := SortAndFindMedian(input)

	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, input)
}

func TestSortAndFindMedian_Integers(t *testing.T) {
	median, err := SortAndFindMedian([]int{1, 2, 3, 4})

	require.NoError(t, err)
	assert.Equal(t, 2.5, median)
}

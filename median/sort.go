package median

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

var ErrEmptyInput = errors.New("no numbers provided")

type Number interface {
	constraints.Integer | constraints.Float
}

// Sort orders numbers in place using insertion sort.
func Sort[T Number](numbers []T) {
	for i := 1; i < len(numbers); i++ {
		key := numbers[i]
		j := i - 1
		for j >= 0 && numbers[j] > key {
			numbers[j+1] = numbers[j]
			j--
		}
		numbers[j+1] = key
	}
}

// SortAndFindMedian returns the median of numbers without modifying the
// caller's slice. Even-length inputs yield the mean of the two middle values.
func SortAndFindMedian[T Number](numbers []T) (float64, error) {
	if len(numbers) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := make([]T, len(numbers))
	copy(sorted, numbers)
	Sort(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return mean(float64(sorted[n/2-1]), float64(sorted[n/2])), nil
	}
	return float64(sorted[(n-1)/2]), nil
}

// mean halves each operand when the plain sum would overflow.
func mean(a, b float64) float64 {
	if sum := a + b; !math.IsInf(sum, 0) {
		return sum / 2
	}
	return a/2 + b/2
}

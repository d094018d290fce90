package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. This is essential for count * elementSize calculations
// in count-prefixed array parsing.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, false
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, false
	}
	if a > 0 && b < 0 && b < math.MinInt/a {
		return 0, false
	}
	if a < 0 && b > 0 && a < math.MinInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckArrayBounds validates that count elements of at least elementSize
// bytes each can still fit in the cursor's remaining bytes. It catches
// implausible declared counts before a reader loops over them.
func CheckArrayBounds(remaining, count, elementSize int) error {
	if count < 0 {
		return fmt.Errorf("negative count: %d", count)
	}
	if elementSize < 0 {
		return fmt.Errorf("negative element size: %d", elementSize)
	}
	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return fmt.Errorf("overflow: count=%d * elemSize=%d", count, elementSize)
	}
	if total > remaining {
		return fmt.Errorf("bounds: need at least %d bytes, %d remain", total, remaining)
	}
	return nil
}

package rowbind

import (
	"fmt"
	"math"
)

// truncInt truncates f toward zero and checks it fits a signed integer of the
// given bit size.
func truncInt(f float64, bits int) (int64, error) {
	t := math.Trunc(f)
	limit := math.Ldexp(1, bits-1)
	if math.IsNaN(t) || t < -limit || t >= limit {
		return 0, fmt.Errorf("%w: %v does not fit int%d", ErrOverflow, f, bits)
	}
	return int64(t), nil
}

// truncUint truncates f toward zero and checks it fits an unsigned integer of
// the given bit size.
func truncUint(f float64, bits int) (uint64, error) {
	t := math.Trunc(f)
	limit := math.Ldexp(1, bits)
	if math.IsNaN(t) || t < 0 || t >= limit {
		return 0, fmt.Errorf("%w: %v does not fit uint%d", ErrOverflow, f, bits)
	}
	return uint64(t), nil
}

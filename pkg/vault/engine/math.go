package engine

import "math/bits"

// Vault accounting never wraps or saturates. Each helper mirrors a checked
// u64 operation and surfaces ErrArithmeticOverflow, which callers treat as
// fatal for the entire operation.

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrArithmeticOverflow
	}
	return diff, nil
}

// checkedMulDiv computes a*b/denom with truncation toward zero. The
// intermediate product must itself fit in a u64, matching checked_mul
// followed by checked_div.
func checkedMulDiv(a, b, denom uint64) (uint64, error) {
	if denom == 0 {
		return 0, ErrArithmeticOverflow
	}

	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrArithmeticOverflow
	}

	return lo / denom, nil
}

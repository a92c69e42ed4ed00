package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAdd(t *testing.T) {
	sum, err := checkedAdd(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, sum)

	_, err = checkedAdd(math.MaxUint64, 1)
	assert.Equal(t, ErrArithmeticOverflow, err)
}

func TestCheckedSub(t *testing.T) {
	diff, err := checkedSub(3, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, diff)

	_, err = checkedSub(2, 3)
	assert.Equal(t, ErrArithmeticOverflow, err)
}

func TestCheckedMulDiv(t *testing.T) {
	// 5 USDC at 2.0 per token mints 2.5 tokens
	res, err := checkedMulDiv(5_000_000, 1_000_000, 2_000_000)
	require.NoError(t, err)
	assert.EqualValues(t, 2_500_000, res)

	// Truncates toward zero
	res, err = checkedMulDiv(10_000_000, 1_000_000, 3_000_000)
	require.NoError(t, err)
	assert.EqualValues(t, 3_333_333, res)

	// The intermediate product must fit in a u64
	_, err = checkedMulDiv(math.MaxUint64, 2, 4)
	assert.Equal(t, ErrArithmeticOverflow, err)

	_, err = checkedMulDiv(1, 1, 0)
	assert.Equal(t, ErrArithmeticOverflow, err)
}

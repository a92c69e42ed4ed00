package wrapper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablevault/vault-server/pkg/config/memory"
)

func TestUint64Config(t *testing.T) {
	ctx := context.Background()

	base := memory.NewConfig(nil)
	c := NewUint64Config(base, 1000000)

	// No value set, default is returned
	val, err := c.GetSafe(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1000000, val)

	base.SetValue(uint64(2000000))
	val, err = c.GetSafe(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2000000, val)

	// String values parse like env vars
	base.SetValue([]byte("42"))
	val, err = c.GetSafe(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 42, val)

	// Last known value is returned on error
	base.InduceErrors()
	val, err = c.GetSafe(ctx)
	assert.Error(t, err)
	assert.EqualValues(t, 42, val)
	assert.EqualValues(t, 42, c.Get(ctx))
}

func TestBoolConfig(t *testing.T) {
	ctx := context.Background()

	base := memory.NewConfig(nil)
	c := NewBoolConfig(base, false)

	assert.False(t, c.Get(ctx))

	base.SetValue(true)
	assert.True(t, c.Get(ctx))

	base.SetValue([]byte("false"))
	assert.False(t, c.Get(ctx))
}

func TestStringConfig(t *testing.T) {
	ctx := context.Background()

	base := memory.NewConfig(nil)
	c := NewStringConfig(base, "default")

	assert.Equal(t, "default", c.Get(ctx))

	base.SetValue("override")
	assert.Equal(t, "override", c.Get(ctx))

	base.SetValue([]byte("bytes"))
	assert.Equal(t, "bytes", c.Get(ctx))
}

func TestUnsupportedConversion(t *testing.T) {
	ctx := context.Background()

	base := memory.NewConfig(struct{}{})
	c := NewUint64Config(base, 123)

	val, err := c.GetSafe(ctx)
	assert.Equal(t, ErrUnsupportedConversion, err)
	assert.EqualValues(t, 123, val)
}

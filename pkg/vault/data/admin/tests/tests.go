package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablevault/vault-server/pkg/vault/data/admin"
)

func RunTests(t *testing.T, s admin.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s admin.Store){
		testHappyPath,
		testSingleton,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s admin.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		start := time.Now()

		_, err := s.Get(ctx)
		assert.Equal(t, admin.ErrNotFound, err)

		expected := &admin.Record{
			Address:   "admin_record_address",
			Bump:      254,
			Authority: "authority_public_key",
		}
		cloned := expected.Clone()

		require.NoError(t, s.Put(ctx, expected))
		assert.True(t, expected.Id > 0)
		assert.False(t, expected.CreatedAt.Before(start))

		actual, err := s.Get(ctx)
		require.NoError(t, err)
		assertEquivalentRecords(t, cloned, actual)
	})
}

func testSingleton(t *testing.T, s admin.Store) {
	t.Run("testSingleton", func(t *testing.T) {
		ctx := context.Background()

		record := &admin.Record{
			Address:   "admin_record_address",
			Bump:      254,
			Authority: "authority_public_key",
		}
		require.NoError(t, s.Put(ctx, record))

		// A second initialization must fail, even with a different authority
		err := s.Put(ctx, &admin.Record{
			Address:   "admin_record_address",
			Bump:      254,
			Authority: "another_authority",
		})
		assert.Equal(t, admin.ErrAlreadyExists, err)

		actual, err := s.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "authority_public_key", actual.Authority)
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *admin.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Authority, obj2.Authority)
}

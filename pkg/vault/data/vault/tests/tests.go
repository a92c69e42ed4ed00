package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablevault/vault-server/pkg/vault/data/vault"
)

func RunTests(t *testing.T, s vault.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s vault.Store){
		testHappyPath,
		testUniqueness,
		testUpdate,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s vault.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.GetByMint(ctx, "mint")
		assert.Equal(t, vault.ErrNotFound, err)

		_, err = s.GetByAddress(ctx, "vault_record_address")
		assert.Equal(t, vault.ErrNotFound, err)

		start := time.Now()

		expected := &vault.Record{
			Address: "vault_record_address",
			Bump:    251,

			Mint: "mint",

			TotalUsdc:    0,
			TotalAssets:  0,
			DepositLimit: 1_000_000_000,
		}
		cloned := expected.Clone()

		require.NoError(t, s.Put(ctx, expected))
		assert.True(t, expected.Id > 0)
		assert.False(t, expected.LastUpdatedAt.Before(start))

		actual, err := s.GetByMint(ctx, "mint")
		require.NoError(t, err)
		assertEquivalentRecords(t, cloned, actual)

		actual, err = s.GetByAddress(ctx, "vault_record_address")
		require.NoError(t, err)
		assertEquivalentRecords(t, cloned, actual)
	})
}

func testUniqueness(t *testing.T, s vault.Store) {
	t.Run("testUniqueness", func(t *testing.T) {
		ctx := context.Background()

		record := &vault.Record{
			Address: "vault_record_address",
			Bump:    251,

			Mint: "mint",

			DepositLimit: 1_000_000_000,
		}
		require.NoError(t, s.Put(ctx, record))

		err := s.Put(ctx, &vault.Record{
			Address: "other_vault_record_address",
			Bump:    250,

			Mint: "mint",

			DepositLimit: 2_000_000_000,
		})
		assert.Equal(t, vault.ErrAlreadyExists, err)
	})
}

func testUpdate(t *testing.T, s vault.Store) {
	t.Run("testUpdate", func(t *testing.T) {
		ctx := context.Background()

		err := s.Update(ctx, &vault.Record{
			Address: "vault_record_address",
			Mint:    "mint",
		})
		assert.Equal(t, vault.ErrNotFound, err)

		record := &vault.Record{
			Address: "vault_record_address",
			Bump:    251,

			Mint: "mint",

			DepositLimit: 1_000_000_000,
		}
		require.NoError(t, s.Put(ctx, record))

		firstUpdatedAt := record.LastUpdatedAt

		record.TotalUsdc = 5_000_000
		record.TotalAssets = 2_500_000
		require.NoError(t, s.Update(ctx, record))

		actual, err := s.GetByMint(ctx, "mint")
		require.NoError(t, err)
		assert.EqualValues(t, 5_000_000, actual.TotalUsdc)
		assert.EqualValues(t, 2_500_000, actual.TotalAssets)
		assert.EqualValues(t, 1_000_000_000, actual.DepositLimit)
		assert.False(t, actual.LastUpdatedAt.Before(firstUpdatedAt))

		// Updates must come from the stored record, not a reconstructed one
		err = s.Update(ctx, &vault.Record{
			Id:      record.Id + 1,
			Address: "vault_record_address",
			Mint:    "mint",
		})
		assert.Equal(t, vault.ErrStaleRecord, err)
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *vault.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Mint, obj2.Mint)
	assert.Equal(t, obj1.TotalUsdc, obj2.TotalUsdc)
	assert.Equal(t, obj1.TotalAssets, obj2.TotalAssets)
	assert.Equal(t, obj1.DepositLimit, obj2.DepositLimit)
}

package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablevault/vault-server/pkg/database/query"
	"github.com/stablevault/vault-server/pkg/vault/data/asset"
)

func RunTests(t *testing.T, s asset.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s asset.Store){
		testHappyPath,
		testUniqueness,
		testValidation,
		testGetAll,
	} {
		tf(t, s)
		teardown()
	}
}

func testHappyPath(t *testing.T, s asset.Store) {
	t.Run("testHappyPath", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.GetByMint(ctx, "mint")
		assert.Equal(t, asset.ErrNotFound, err)

		_, err = s.GetByAddress(ctx, "asset_record_address")
		assert.Equal(t, asset.ErrNotFound, err)

		start := time.Now()

		expected := &asset.Record{
			Address: "asset_record_address",
			Bump:    253,

			Name:   "Tokenized Treasury Bill",
			Ticker: "TBILL",

			Price: 2_000_000,

			Mint:      "mint",
			Vault:     "vault_record_address",
			Authority: "authority_public_key",
		}
		cloned := expected.Clone()

		require.NoError(t, s.Put(ctx, expected))
		assert.True(t, expected.Id > 0)
		assert.False(t, expected.CreatedAt.Before(start))

		actual, err := s.GetByMint(ctx, "mint")
		require.NoError(t, err)
		assertEquivalentRecords(t, cloned, actual)

		actual, err = s.GetByAddress(ctx, "asset_record_address")
		require.NoError(t, err)
		assertEquivalentRecords(t, cloned, actual)
	})
}

func testUniqueness(t *testing.T, s asset.Store) {
	t.Run("testUniqueness", func(t *testing.T) {
		ctx := context.Background()

		record := &asset.Record{
			Address: "asset_record_address",
			Bump:    253,

			Name:   "Tokenized Treasury Bill",
			Ticker: "TBILL",

			Price: 2_000_000,

			Mint:      "mint",
			Vault:     "vault_record_address",
			Authority: "authority_public_key",
		}
		require.NoError(t, s.Put(ctx, record))

		// One asset per mint, even under a different name
		err := s.Put(ctx, &asset.Record{
			Address: "other_asset_record_address",
			Bump:    252,

			Name:   "Another Bill",
			Ticker: "BILL2",

			Price: 3_000_000,

			Mint:      "mint",
			Vault:     "other_vault_record_address",
			Authority: "authority_public_key",
		})
		assert.Equal(t, asset.ErrAlreadyExists, err)

		actual, err := s.GetByMint(ctx, "mint")
		require.NoError(t, err)
		assert.Equal(t, "Tokenized Treasury Bill", actual.Name)
	})
}

func testValidation(t *testing.T, s asset.Store) {
	t.Run("testValidation", func(t *testing.T) {
		ctx := context.Background()

		valid := func() *asset.Record {
			return &asset.Record{
				Address: "asset_record_address",
				Bump:    253,

				Name:   "Tokenized Treasury Bill",
				Ticker: "TBILL",

				Price: 2_000_000,

				Mint:      "mint",
				Vault:     "vault_record_address",
				Authority: "authority_public_key",
			}
		}

		record := valid()
		record.Name = "0123456789012345678901234567890123456789012345678901" // 52 characters
		assert.Equal(t, asset.ErrNameTooLong, s.Put(ctx, record))

		record = valid()
		record.Ticker = "TOOLONGTICKR"
		assert.Equal(t, asset.ErrTickerTooLong, s.Put(ctx, record))

		record = valid()
		record.Price = 0
		assert.Equal(t, asset.ErrInvalidPrice, s.Put(ctx, record))

		// Nothing was persisted
		_, err := s.GetByMint(ctx, "mint")
		assert.Equal(t, asset.ErrNotFound, err)
	})
}

func testGetAll(t *testing.T, s asset.Store) {
	t.Run("testGetAll", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.GetAll(ctx, query.EmptyCursor, 10, query.Ascending)
		assert.Equal(t, asset.ErrNotFound, err)

		for i := 0; i < 5; i++ {
			require.NoError(t, s.Put(ctx, &asset.Record{
				Address: fmt.Sprintf("asset_record_address_%d", i),
				Bump:    253,

				Name:   fmt.Sprintf("Asset %d", i),
				Ticker: fmt.Sprintf("TKN%d", i),

				Price: 1_000_000,

				Mint:      fmt.Sprintf("mint_%d", i),
				Vault:     fmt.Sprintf("vault_record_address_%d", i),
				Authority: "authority_public_key",
			}))
		}

		all, err := s.GetAll(ctx, query.EmptyCursor, 10, query.Ascending)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i, record := range all {
			assert.Equal(t, fmt.Sprintf("mint_%d", i), record.Mint)
		}

		all, err = s.GetAll(ctx, query.EmptyCursor, 2, query.Ascending)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "mint_0", all[0].Mint)
		assert.Equal(t, "mint_1", all[1].Mint)

		all, err = s.GetAll(ctx, query.ToCursor(all[1].Id), 10, query.Ascending)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "mint_2", all[0].Mint)

		all, err = s.GetAll(ctx, query.EmptyCursor, 10, query.Descending)
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Equal(t, "mint_4", all[0].Mint)

		_, err = s.GetAll(ctx, query.ToCursor(all[len(all)-1].Id), 10, query.Descending)
		assert.Equal(t, asset.ErrNotFound, err)
	})
}

func assertEquivalentRecords(t *testing.T, obj1, obj2 *asset.Record) {
	assert.Equal(t, obj1.Address, obj2.Address)
	assert.Equal(t, obj1.Bump, obj2.Bump)
	assert.Equal(t, obj1.Name, obj2.Name)
	assert.Equal(t, obj1.Ticker, obj2.Ticker)
	assert.Equal(t, obj1.Price, obj2.Price)
	assert.Equal(t, obj1.Mint, obj2.Mint)
	assert.Equal(t, obj1.Vault, obj2.Vault)
	assert.Equal(t, obj1.Authority, obj2.Authority)
}

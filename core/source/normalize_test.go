package source

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	ctx := context.Background()

	t.Run("SkipsBannerAndMapsHeaders", func(t *testing.T) {
		table := [][]string{
			{"WAREHOUSE EXPORT - DO NOT EDIT", "", ""},
			{" imei ", "Model", "grade", "Lock  Status"},
			{"K1", "Phone X", "a", "Unlocked"},
			{" K2 ", "Phone Y", "B"},
		}

		res, err := Normalize(ctx, table, PrimarySchema(), Options{HeaderRow: 1})
		require.NoError(t, err)
		require.Len(t, res.Records, 2)
		assert.Equal(t, 2, res.Total)
		assert.Equal(t, 0, res.Malformed)

		assert.Equal(t, Record{Key: "K1", Model: "Phone X", Grade: "A", LockStatus: "unlocked"}, res.Records[0])
		assert.Equal(t, "K2", res.Records[1].Key)
		assert.Empty(t, res.Records[1].LockStatus)
		assert.Empty(t, res.Records[1].Location)
	})

	t.Run("CountsRowsWithoutKey", func(t *testing.T) {
		table := [][]string{
			{"IMEI", "MODEL"},
			{"", "orphan"},
			{"K1", "Phone"},
			{"   ", ""},
		}

		res, err := Normalize(ctx, table, PrimarySchema(), Options{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Equal(t, 2, res.Malformed)
		require.Len(t, res.Records, 1)
		assert.Equal(t, "K1", res.Records[0].Key)
	})

	t.Run("MissingKeyColumn", func(t *testing.T) {
		table := [][]string{{"MODEL", "GRADE"}, {"Phone", "A"}}

		_, err := Normalize(ctx, table, PrimarySchema(), Options{})
		assert.ErrorIs(t, err, ErrMissingKeyColumn)
	})

	t.Run("NoHeaderRow", func(t *testing.T) {
		_, err := Normalize(ctx, [][]string{{"banner"}}, PrimarySchema(), Options{HeaderRow: 1})
		assert.ErrorIs(t, err, ErrMissingKeyColumn)
	})

	t.Run("SecondarySchemaUsesItsOwnNames", func(t *testing.T) {
		table := [][]string{
			{"Serial Number", "Device", "Condition", "Shelf"},
			{"S1", "Tablet", "c", "B-4"},
		}

		res, err := Normalize(ctx, table, SecondarySchema(), Options{})
		require.NoError(t, err)
		require.Len(t, res.Records, 1)
		assert.Equal(t, Record{Key: "S1", Model: "Tablet", Grade: "C", Location: "B-4"}, res.Records[0])
	})

	t.Run("ChunksPreserveOrder", func(t *testing.T) {
		table := [][]string{{"IMEI"}}
		for i := 0; i < 1000; i++ {
			table = append(table, []string{fmt.Sprintf("K%04d", i)})
		}

		res, err := Normalize(ctx, table, PrimarySchema(), Options{ChunkSize: 7, Workers: 4})
		require.NoError(t, err)
		require.Len(t, res.Records, 1000)
		for i, rec := range res.Records {
			assert.Equal(t, fmt.Sprintf("K%04d", i), rec.Key)
		}
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		res, err := Normalize(ctx, [][]string{{"IMEI"}}, PrimarySchema(), Options{})
		require.NoError(t, err)
		assert.Empty(t, res.Records)
		assert.Zero(t, res.Total)
	})
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "LOCK STATUS", NormalizeHeader("  lock \t status "))
	assert.Equal(t, "", NormalizeHeader("   "))
}

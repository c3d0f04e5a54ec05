package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupAndApply(t *testing.T) {
	table := DefaultTable()

	t.Run("vat11", func(t *testing.T) {
		r, err := table.Lookup("vat11")
		require.NoError(t, err)
		got := r.Apply(decimal.NewFromFloat(1500000))
		assert.True(t, got.Equal(decimal.NewFromInt(165000)), "got %s", got)
	})

	t.Run("zero-rated", func(t *testing.T) {
		r, err := table.Lookup("none")
		require.NoError(t, err)
		assert.True(t, r.Apply(decimal.NewFromInt(999)).IsZero())
	})

	t.Run("rounding", func(t *testing.T) {
		r, err := table.Lookup("vat12")
		require.NoError(t, err)
		got := r.Apply(decimal.NewFromFloat(10.41))
		assert.True(t, got.Equal(decimal.NewFromFloat(1.25)), "got %s", got)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := table.Lookup("gst")
		assert.ErrorIs(t, err, ErrUnknownTaxCode)
	})
}

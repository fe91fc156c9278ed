package rcn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawelGambus/rcn-wroclaw/internal/gml"
)

func strPtr(s string) *string { return &s }

func TestFromLokal_FullRecord(t *testing.T) {
	tx := FromLokal(gml.Lokal{
		PriceGross: strPtr("550000.0"),
		UsableArea: strPtr("45.5"),
		DocDate:    strPtr("2026-03-01T00:00:00Z"),
		Rooms:      strPtr("2"),
		Floor:      strPtr("3"),
		UseType:    strPtr("mieszkalna"),
		MarketType: strPtr("rynek wtorny"),
		SellerType: strPtr("osoba fizyczna"),
	})

	require.NotNil(t, tx.Date)
	assert.Equal(t, "2026-03-01", *tx.Date)
	require.NotNil(t, tx.PricePLN)
	assert.Equal(t, int64(550000), *tx.PricePLN)
	require.NotNil(t, tx.AreaM2)
	assert.InDelta(t, 45.5, *tx.AreaM2, 1e-9)
	require.NotNil(t, tx.PricePerM2)
	assert.Equal(t, int64(12088), *tx.PricePerM2)
	require.NotNil(t, tx.Rooms)
	assert.Equal(t, "2", *tx.Rooms)
	require.NotNil(t, tx.SellerType)
	assert.Equal(t, "osoba fizyczna", *tx.SellerType)
}

func TestFromLokal_MissingPrice(t *testing.T) {
	tx := FromLokal(gml.Lokal{
		UsableArea: strPtr("38.2"),
		DocDate:    strPtr("2025-11-14T00:00:00Z"),
		Rooms:      strPtr("1"),
	})

	assert.Nil(t, tx.PricePLN)
	assert.Nil(t, tx.PricePerM2)
	require.NotNil(t, tx.AreaM2)
	assert.InDelta(t, 38.2, *tx.AreaM2, 1e-9)
	require.NotNil(t, tx.Date)
	assert.Equal(t, "2025-11-14", *tx.Date)
}

func TestFromLokal_MissingArea(t *testing.T) {
	tx := FromLokal(gml.Lokal{PriceGross: strPtr("480000")})

	require.NotNil(t, tx.PricePLN)
	assert.Equal(t, int64(480000), *tx.PricePLN)
	assert.Nil(t, tx.AreaM2)
	assert.Nil(t, tx.PricePerM2)
}

func TestFromLokal_PriceTruncatesNotRounds(t *testing.T) {
	tx := FromLokal(gml.Lokal{PriceGross: strPtr("449999.99")})

	require.NotNil(t, tx.PricePLN)
	assert.Equal(t, int64(449999), *tx.PricePLN)
}

func TestFromLokal_DerivedQuotientRounds(t *testing.T) {
	// 99999 / 7 = 14285.57..., which rounds to 14286. Truncating the
	// quotient would give 14285.
	tx := FromLokal(gml.Lokal{
		PriceGross: strPtr("99999"),
		UsableArea: strPtr("7"),
	})

	require.NotNil(t, tx.PricePerM2)
	assert.Equal(t, int64(14286), *tx.PricePerM2)
	require.NotNil(t, tx.PricePLN)
	assert.Equal(t, int64(99999), *tx.PricePLN)
}

func TestFromLokal_ZeroArea(t *testing.T) {
	tx := FromLokal(gml.Lokal{
		PriceGross: strPtr("250000"),
		UsableArea: strPtr("0"),
	})

	require.NotNil(t, tx.PricePLN)
	require.NotNil(t, tx.AreaM2)
	assert.Nil(t, tx.PricePerM2)
}

func TestFromLokal_UnparseableNumbers(t *testing.T) {
	tx := FromLokal(gml.Lokal{
		PriceGross: strPtr("n/a"),
		UsableArea: strPtr("45,5"),
		Rooms:      strPtr("two"),
	})

	assert.Nil(t, tx.PricePLN)
	assert.Nil(t, tx.AreaM2)
	assert.Nil(t, tx.PricePerM2)
	// Text fields pass through verbatim regardless.
	require.NotNil(t, tx.Rooms)
	assert.Equal(t, "two", *tx.Rooms)
}

func TestFromLokal_ShortDateKeptAsIs(t *testing.T) {
	tx := FromLokal(gml.Lokal{DocDate: strPtr("2026-03")})

	require.NotNil(t, tx.Date)
	assert.Equal(t, "2026-03", *tx.Date)
}

func TestFromLokal_Empty(t *testing.T) {
	tx := FromLokal(gml.Lokal{})

	assert.Nil(t, tx.Date)
	assert.Nil(t, tx.PricePLN)
	assert.Nil(t, tx.AreaM2)
	assert.Nil(t, tx.PricePerM2)
	assert.Nil(t, tx.Rooms)
	assert.Nil(t, tx.Floor)
	assert.Nil(t, tx.UseType)
	assert.Nil(t, tx.MarketType)
	assert.Nil(t, tx.SellerType)
}

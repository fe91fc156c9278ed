// Package rcn models residential-unit transactions from the Rejestr Cen
// Nieruchomosci and the derived price-per-m2 metric.
package rcn

import (
	"math"
	"strconv"
	"strings"

	"github.com/PawelGambus/rcn-wroclaw/internal/gml"
)

// Transaction is one residential-unit sale record. Nil fields were absent
// from the source feature.
type Transaction struct {
	Date       *string
	PricePLN   *int64
	AreaM2     *float64
	PricePerM2 *int64
	Rooms      *string
	Floor      *string
	UseType    *string
	MarketType *string
	SellerType *string
}

// FromLokal maps a raw feature onto a Transaction, applying the numeric and
// date transforms. PricePerM2 rounds the full-precision price over area;
// PricePLN truncates the same price. The order matters: the derivation never
// sees the truncated value.
func FromLokal(l gml.Lokal) Transaction {
	price := parseFloat(l.PriceGross)
	area := parseFloat(l.UsableArea)

	t := Transaction{
		AreaM2:     area,
		Rooms:      l.Rooms,
		Floor:      l.Floor,
		UseType:    l.UseType,
		MarketType: l.MarketType,
		SellerType: l.SellerType,
	}

	if l.DocDate != nil {
		d := *l.DocDate
		if len(d) > 10 {
			d = d[:10]
		}
		t.Date = &d
	}

	if price != nil {
		p := int64(*price)
		t.PricePLN = &p
	}

	if price != nil && area != nil && *area != 0 {
		ppm := int64(math.Round(*price / *area))
		t.PricePerM2 = &ppm
	}

	return t
}

// parseFloat returns nil for absent or unparseable numeric text.
func parseFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return nil
	}
	return &f
}

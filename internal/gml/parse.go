// Package gml extracts lokal transaction features from RCN WFS GetFeature
// responses encoded as GML 3.2.
package gml

import (
	"encoding/xml"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Namespace URIs used by the RCN response. They qualify tag matching only
// and are never dereferenced.
const (
	NSMapServer = "http://mapserver.gis.umn.edu/mapserver"
	NSWFS       = "http://www.opengis.net/wfs/2.0"
	NSGML       = "http://www.opengis.net/gml/3.2"
)

// Lokal is the raw residential-unit feature as it appears in the response.
// Every child element is optional; nil means absent or empty.
type Lokal struct {
	PriceGross *string `xml:"http://mapserver.gis.umn.edu/mapserver tran_cena_brutto"`
	UsableArea *string `xml:"http://mapserver.gis.umn.edu/mapserver lok_pow_uzyt"`
	DocDate    *string `xml:"http://mapserver.gis.umn.edu/mapserver dok_data"`
	Rooms      *string `xml:"http://mapserver.gis.umn.edu/mapserver lok_liczba_izb"`
	Floor      *string `xml:"http://mapserver.gis.umn.edu/mapserver lok_nr_kond"`
	UseType    *string `xml:"http://mapserver.gis.umn.edu/mapserver lok_funkcja"`
	MarketType *string `xml:"http://mapserver.gis.umn.edu/mapserver tran_rodzaj_trans"`
	SellerType *string `xml:"http://mapserver.gis.umn.edu/mapserver tran_sprzedajacy"`
}

type member struct {
	Lokal *Lokal `xml:"http://mapserver.gis.umn.edu/mapserver lokale"`
}

// document matches any root element carrying wfs:member children, which is
// all the feature collection shape this parser relies on.
type document struct {
	Members []member `xml:"http://www.opengis.net/wfs/2.0 member"`
}

// Parse decodes a GetFeature response body and returns the lokal features in
// document order. Members without a nested lokal element are dropped.
func Parse(body []byte) ([]Lokal, error) {
	var doc document
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, eris.Wrap(err, "gml: parse response")
	}

	features := make([]Lokal, 0, len(doc.Members))
	skipped := 0
	for _, m := range doc.Members {
		if m.Lokal == nil {
			skipped++
			continue
		}
		features = append(features, normalize(*m.Lokal))
	}

	if skipped > 0 {
		zap.L().Debug("gml: skipped members without lokal feature", zap.Int("skipped", skipped))
	}

	return features, nil
}

// normalize collapses present-but-empty elements to nil so downstream code
// sees a single notion of absence.
func normalize(l Lokal) Lokal {
	l.PriceGross = nonEmpty(l.PriceGross)
	l.UsableArea = nonEmpty(l.UsableArea)
	l.DocDate = nonEmpty(l.DocDate)
	l.Rooms = nonEmpty(l.Rooms)
	l.Floor = nonEmpty(l.Floor)
	l.UseType = nonEmpty(l.UseType)
	l.MarketType = nonEmpty(l.MarketType)
	l.SellerType = nonEmpty(l.SellerType)
	return l
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

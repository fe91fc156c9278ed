package wfs

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

const (
	// SRID2180 is EPSG:2180, the PL-1992 national coordinate system the RCN
	// service indexes features in.
	SRID2180 = 2180

	crsURN       = "urn:ogc:def:crs:EPSG::2180"
	typeNames    = "ms:lokale"
	outputFormat = "application/gml+xml; version=3.2"
)

// WroclawBounds returns the query extent covering the Wroclaw city centre
// and surrounding districts, in EPSG:2180.
func WroclawBounds() *geom.Bounds {
	return geom.NewBounds(geom.XY).Set(333000, 514000, 340000, 521000)
}

// FormatBBOX serializes bounds into the WFS 2.0 BBOX parameter form:
// minx,miny,maxx,maxy followed by the CRS URN.
func FormatBBOX(b *geom.Bounds) string {
	parts := []string{
		strconv.FormatFloat(b.Min(0), 'f', -1, 64),
		strconv.FormatFloat(b.Min(1), 'f', -1, 64),
		strconv.FormatFloat(b.Max(0), 'f', -1, 64),
		strconv.FormatFloat(b.Max(1), 'f', -1, 64),
		crsURN,
	}
	return strings.Join(parts, ",")
}

// Request describes one WFS 2.0 GetFeature query for lokal transactions.
type Request struct {
	Count  int
	Bounds *geom.Bounds
}

// Query returns the full GetFeature parameter set. Everything except the
// result cap and the extent is fixed by the service contract.
func (r Request) Query() url.Values {
	return url.Values{
		"SERVICE":      {"WFS"},
		"VERSION":      {"2.0.0"},
		"REQUEST":      {"GetFeature"},
		"TYPENAMES":    {typeNames},
		"COUNT":        {strconv.Itoa(r.Count)},
		"BBOX":         {FormatBBOX(r.Bounds)},
		"outputFormat": {outputFormat},
	}
}

// URL assembles the request URL against the given base endpoint.
func (r Request) URL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", eris.Wrapf(err, "wfs: parse base url %s", base)
	}
	u.RawQuery = r.Query().Encode()
	return u.String(), nil
}

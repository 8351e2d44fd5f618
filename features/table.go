// Package features reads feature geometries from external sources: ESRI
// shapefiles (decoded into the source geometry model) and GeoArrow-style
// feather files (raw WKB column).
package features

import "github.com/ctessum/geom"

// Table holds features read from one source. Shapefile tables carry
// decoded geometries; feather tables carry raw WKB buffers.
type Table struct {
	ids   []uint64
	geoms []geom.Geom
	wkbs  [][]byte
}

func (t *Table) Size() int {
	if t == nil {
		return 0
	}
	return len(t.ids)
}

func (t *Table) ID(i int) uint64 {
	return t.ids[i]
}

// Geom returns the decoded source geometry at i, or nil for WKB tables.
func (t *Table) Geom(i int) geom.Geom {
	if t.geoms == nil {
		return nil
	}
	return t.geoms[i]
}

// WKB returns the raw WKB buffer at i, or nil for decoded tables.
func (t *Table) WKB(i int) []byte {
	if t.wkbs == nil {
		return nil
	}
	return t.wkbs[i]
}

// Bounds is the union of all feature bounds. Only meaningful for decoded
// tables.
func (t *Table) Bounds() [4]float64 {
	b := geom.NewBounds()
	for _, g := range t.geoms {
		if g != nil {
			b.Extend(g.Bounds())
		}
	}
	return [4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y}
}

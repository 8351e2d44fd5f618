// Package convert builds native GEOS geometries from
// github.com/ctessum/geom values, normalizing rings on the way in. The
// source values are treated as read-only; every build either returns a
// fully constructed geometry or an error with nothing left allocated.
package convert

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/mkort/geosbridge/geos"
)

// coordSeq copies points into a fresh coordinate sequence of exactly
// len(points) positions, in input order.
func coordSeq(c *geos.Context, points []geom.Point) (*geos.CoordSeq, error) {
	seq, err := c.NewCoordSeq(len(points), 2)
	if err != nil {
		return nil, err
	}
	for i, p := range points {
		if err := seq.SetXY(c, i, p.X, p.Y); err != nil {
			seq.Destroy(c)
			return nil, err
		}
	}
	return seq, nil
}

// ringCoordSeq prepares a point sequence for ring construction. An empty
// input yields an empty sequence; rings of 1 or 2 points are invalid.
// Unclosed rings are closed by appending a copy of the first point. A
// closed 3-point ring (only two distinct vertices) is re-closed the same
// way, because GEOS counts the duplicate closing vertex toward its
// minimum ring size. Shapely behaves the same.
func ringCoordSeq(c *geos.Context, points []geom.Point) (*geos.CoordSeq, error) {
	n := len(points)
	if n > 0 && n < 3 {
		return nil, geos.InvalidGeometryError("impossible to create a LinearRing, a LinearRing must have at least 3 coordinates")
	}
	closed := n > 0 && points[0] == points[n-1]
	if n > 0 && (!closed || n == 3) {
		ring := make([]geom.Point, n+1)
		copy(ring, points)
		ring[n] = points[0]
		return coordSeq(c, ring)
	}
	return coordSeq(c, points)
}

// Point converts a single point.
func Point(c *geos.Context, p geom.Point) (*geos.Geom, error) {
	seq, err := coordSeq(c, []geom.Point{p})
	if err != nil {
		return nil, err
	}
	return seq.AsPoint(c)
}

// LineString converts an ordered point sequence without any ring rules.
func LineString(c *geos.Context, ls geom.LineString) (*geos.Geom, error) {
	seq, err := coordSeq(c, ls)
	if err != nil {
		return nil, err
	}
	return seq.AsLineString(c)
}

// LinearRing converts a path into a closed GEOS linear ring, closing it
// if needed. The caller does not have to pre-close the path.
func LinearRing(c *geos.Context, ring geom.Path) (*geos.Geom, error) {
	seq, err := ringCoordSeq(c, ring)
	if err != nil {
		return nil, err
	}
	return seq.AsLinearRing(c)
}

// Polygon converts a polygon with its exterior ring and any interior
// rings. The first failing ring aborts the build; partially built rings
// are destroyed and no polygon is returned.
func Polygon(c *geos.Context, p geom.Polygon) (*geos.Geom, error) {
	if len(p) == 0 {
		return nil, geos.InvalidGeometryError("a Polygon must have an exterior ring")
	}
	exterior, err := LinearRing(c, p[0])
	if err != nil {
		return nil, err
	}
	var interiors []*geos.Geom
	for _, ring := range p[1:] {
		g, err := LinearRing(c, ring)
		if err != nil {
			c.Destroy(exterior)
			for _, h := range interiors {
				c.Destroy(h)
			}
			return nil, err
		}
		interiors = append(interiors, g)
	}
	return c.Polygon(exterior, interiors)
}

// MultiPolygon converts each polygon in input order, failing on the first
// polygon that fails.
func MultiPolygon(c *geos.Context, mp geom.MultiPolygon) (*geos.Geom, error) {
	polygons := make([]*geos.Geom, 0, len(mp))
	for _, p := range mp {
		g, err := Polygon(c, p)
		if err != nil {
			for _, h := range polygons {
				c.Destroy(h)
			}
			return nil, err
		}
		polygons = append(polygons, g)
	}
	return c.MultiPolygon(polygons)
}

// Geometry dispatches over the supported source geometry types.
func Geometry(c *geos.Context, g geom.Geom) (*geos.Geom, error) {
	switch t := g.(type) {
	case geom.Point:
		return Point(c, t)
	case geom.LineString:
		return LineString(c, t)
	case geom.Polygon:
		return Polygon(c, t)
	case geom.MultiPolygon:
		return MultiPolygon(c, t)
	}
	return nil, fmt.Errorf("unsupported geometry type %T", g)
}

package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/ctessum/geom"

	"github.com/mkort/geosbridge/geos"
)

func newContext(t *testing.T) *geos.Context {
	t.Helper()
	c, err := geos.NewContext()
	if err != nil {
		t.Fatalf("could not create GEOS context: %v", err)
	}
	t.Cleanup(c.Finish)
	return c
}

func Test_LinearRing_Empty(t *testing.T) {
	c := newContext(t)

	g, err := LinearRing(c, geom.Path{})
	if err != nil {
		t.Fatalf("empty ring should build: %v", err)
	}
	defer c.Destroy(g)

	if valid, err := c.IsValid(g); err != nil || !valid {
		t.Errorf("empty ring should be valid (valid=%v, err=%v)", valid, err)
	}
	if isRing, err := c.IsRing(g); err != nil || !isRing {
		t.Errorf("empty ring should be a ring (isRing=%v, err=%v)", isRing, err)
	}
	if n, err := c.NumCoordinates(g); err != nil || n != 0 {
		t.Errorf("empty ring should have 0 coordinates, got %v (err=%v)", n, err)
	}
}

func Test_LinearRing_TooFewPoints(t *testing.T) {
	tests := []struct {
		name   string
		points geom.Path
	}{
		{name: "one point", points: geom.Path{{X: 0, Y: 0}}},
		{name: "two points", points: geom.Path{{X: 0, Y: 0}, {X: 0, Y: 1}}},
	}

	c := newContext(t)

	for _, tc := range tests {
		g, err := LinearRing(c, tc.points)
		if err == nil {
			c.Destroy(g)
			t.Errorf("%v: expected error, got ring", tc.name)
			continue
		}
		var invalid geos.InvalidGeometryError
		if !errors.As(err, &invalid) {
			t.Errorf("%v: expected InvalidGeometryError, got %T: %v", tc.name, err, err)
		}
		if !strings.Contains(err.Error(), "at least 3 coordinates") {
			t.Errorf("%v: error should mention the 3-coordinate rule: %v", tc.name, err)
		}
	}
}

func Test_LinearRing_Closing(t *testing.T) {
	tests := []struct {
		name       string
		points     geom.Path
		wantCoords int
	}{
		// an unclosed ring is closed by appending the first point
		{
			name:       "unclosed triangle",
			points:     geom.Path{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}},
			wantCoords: 4,
		},
		// a closed 3-point ring has only 2 distinct vertices, so it is
		// treated as unclosed and closed again
		{
			name:       "closed two distinct points",
			points:     geom.Path{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}},
			wantCoords: 4,
		},
		{
			name:       "closed triangle",
			points:     geom.Path{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 0}},
			wantCoords: 4,
		},
		{
			name:       "closed square",
			points:     geom.Path{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
			wantCoords: 5,
		},
	}

	c := newContext(t)

	for _, tc := range tests {
		g, err := LinearRing(c, tc.points)
		if err != nil {
			t.Errorf("%v: %v", tc.name, err)
			continue
		}

		if valid, err := c.IsValid(g); err != nil || !valid {
			t.Errorf("%v: ring should be valid (valid=%v, err=%v)", tc.name, valid, err)
		}
		if isRing, err := c.IsRing(g); err != nil || !isRing {
			t.Errorf("%v: should be a ring (isRing=%v, err=%v)", tc.name, isRing, err)
		}
		if n, err := c.NumCoordinates(g); err != nil || n != tc.wantCoords {
			t.Errorf("%v: coordinate count %v does not match expected value %v (err=%v)", tc.name, n, tc.wantCoords, err)
		}

		c.Destroy(g)
	}
}

func squareWithHole() geom.Polygon {
	return geom.Polygon{
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		{{X: 0.1, Y: 0.1}, {X: 0.1, Y: 0.9}, {X: 0.9, Y: 0.9}, {X: 0.9, Y: 0.1}, {X: 0.1, Y: 0.1}},
	}
}

func Test_Polygon_Contains(t *testing.T) {
	c := newContext(t)

	p := squareWithHole()

	g, err := Polygon(c, p)
	if err != nil {
		t.Fatalf("could not build polygon: %v", err)
	}
	defer c.Destroy(g)

	exterior, err := LinearRing(c, p[0])
	if err != nil {
		t.Fatalf("could not build exterior ring: %v", err)
	}
	defer c.Destroy(exterior)

	if contains, err := c.Contains(g, g); err != nil || !contains {
		t.Errorf("polygon should contain itself (contains=%v, err=%v)", contains, err)
	}
	if contains, err := c.Contains(g, exterior); err != nil || contains {
		t.Errorf("polygon should not contain its exterior ring (contains=%v, err=%v)", contains, err)
	}
	if covers, err := c.Covers(g, exterior); err != nil || !covers {
		t.Errorf("polygon should cover its exterior ring (covers=%v, err=%v)", covers, err)
	}
	if touches, err := c.Touches(g, exterior); err != nil || !touches {
		t.Errorf("polygon should touch its exterior ring (touches=%v, err=%v)", touches, err)
	}
}

func Test_MultiPolygon_Contains(t *testing.T) {
	c := newContext(t)

	p := squareWithHole()

	mp, err := MultiPolygon(c, geom.MultiPolygon{p})
	if err != nil {
		t.Fatalf("could not build multipolygon: %v", err)
	}
	defer c.Destroy(mp)

	single, err := Polygon(c, p)
	if err != nil {
		t.Fatalf("could not build polygon: %v", err)
	}
	defer c.Destroy(single)

	if contains, err := c.Contains(mp, mp); err != nil || !contains {
		t.Errorf("multipolygon should contain itself (contains=%v, err=%v)", contains, err)
	}
	if contains, err := c.Contains(mp, single); err != nil || !contains {
		t.Errorf("multipolygon should contain its only polygon (contains=%v, err=%v)", contains, err)
	}
}

func Test_Polygon_InvalidExterior(t *testing.T) {
	c := newContext(t)

	// one-point exterior, no interiors
	p := geom.Polygon{{{X: 0, Y: 0}}}

	if g, err := Polygon(c, p); err == nil {
		c.Destroy(g)
		t.Error("polygon with one-point exterior should fail")
	} else {
		var invalid geos.InvalidGeometryError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidGeometryError, got %T: %v", err, err)
		}
	}

	// the same failure propagates out of the multipolygon build
	if g, err := MultiPolygon(c, geom.MultiPolygon{p}); err == nil {
		c.Destroy(g)
		t.Error("multipolygon containing an invalid polygon should fail")
	}
}

func Test_Polygon_UnclosedRings(t *testing.T) {
	c := newContext(t)

	// neither ring is pre-closed; conversion closes both
	p := geom.Polygon{
		{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}},
		{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 10}},
	}

	g, err := Polygon(c, p)
	if err != nil {
		t.Fatalf("unclosed rings should be closed during conversion: %v", err)
	}
	c.Destroy(g)
}

func Test_LineString(t *testing.T) {
	c := newContext(t)

	g, err := LineString(c, geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		t.Fatalf("could not build linestring: %v", err)
	}
	defer c.Destroy(g)

	if typ := c.Type(g); typ != "LineString" {
		t.Errorf("type %q does not match expected value LineString", typ)
	}
	if n, err := c.NumCoordinates(g); err != nil || n != 2 {
		t.Errorf("linestring should keep its 2 coordinates, got %v (err=%v)", n, err)
	}
}

func Test_Geometry_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		geometry geom.Geom
		wantType string
	}{
		{name: "point", geometry: geom.Point{X: 2.5, Y: 2.5}, wantType: "Point"},
		{name: "linestring", geometry: geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}}, wantType: "LineString"},
		{name: "polygon", geometry: squareWithHole(), wantType: "Polygon"},
		{name: "multipolygon", geometry: geom.MultiPolygon{squareWithHole()}, wantType: "MultiPolygon"},
	}

	c := newContext(t)

	for _, tc := range tests {
		g, err := Geometry(c, tc.geometry)
		if err != nil {
			t.Errorf("%v: %v", tc.name, err)
			continue
		}
		if typ := c.Type(g); typ != tc.wantType {
			t.Errorf("%v: type %q does not match expected value %q", tc.name, typ, tc.wantType)
		}
		c.Destroy(g)
	}

	if _, err := Geometry(c, geom.MultiLineString{}); err == nil {
		t.Error("unsupported geometry type should fail")
	}
}

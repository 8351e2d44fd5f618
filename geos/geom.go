package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"
import "unsafe"

// Geom is an opaque handle to a native GEOS geometry. Geometries are
// exclusively owned: once a Geom is consumed by Polygon or MultiPolygon
// its handle belongs to the parent and must not be used independently.
type Geom struct {
	v *C.GEOSGeometry
}

// Destroy releases the native geometry. Safe to call on an already
// destroyed or consumed Geom.
func (c *Context) Destroy(g *Geom) {
	if g != nil && g.v != nil {
		C.GEOSGeom_destroy_r(c.v, g.v)
		g.v = nil
	}
}

// Polygon assembles a polygon from an exterior ring and zero or more
// interior rings. Ownership of every ring transfers into the polygon.
func (c *Context) Polygon(exterior *Geom, interiors []*Geom) (*Geom, error) {
	var v *C.GEOSGeometry
	if len(interiors) == 0 {
		v = C.GEOSGeom_createPolygon_r(c.v, exterior.v, nil, C.uint(0))
	} else {
		ptr := make([]*C.GEOSGeometry, len(interiors))
		for i, ring := range interiors {
			ptr[i] = ring.v
		}
		v = C.GEOSGeom_createPolygon_r(c.v, exterior.v, &ptr[0], C.uint(len(interiors)))
	}
	// rings belong to the polygon now, even on failure
	exterior.v = nil
	for _, ring := range interiors {
		ring.v = nil
	}
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &Geom{v}, nil
}

// MultiPolygon assembles a multipolygon owning the given polygons in
// order. An empty input produces an empty multipolygon.
func (c *Context) MultiPolygon(polygons []*Geom) (*Geom, error) {
	if len(polygons) == 0 {
		v := C.GEOSGeom_createEmptyCollection_r(c.v, C.GEOS_MULTIPOLYGON)
		if v == nil {
			return nil, Error(c.lastError())
		}
		return &Geom{v}, nil
	}
	ptr := make([]*C.GEOSGeometry, len(polygons))
	for i, p := range polygons {
		ptr[i] = p.v
	}
	v := C.GEOSGeom_createCollection_r(c.v, C.GEOS_MULTIPOLYGON, &ptr[0], C.uint(len(polygons)))
	for _, p := range polygons {
		p.v = nil
	}
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &Geom{v}, nil
}

// Type returns the geometry type name, e.g. "Polygon".
func (c *Context) Type(g *Geom) string {
	t := C.GEOSGeomType_r(c.v, g.v)
	if t == nil {
		return "Unknown"
	}
	defer C.free(unsafe.Pointer(t))
	return C.GoString(t)
}

// NumCoordinates returns the total coordinate count of the geometry,
// including duplicate ring-closing vertices.
func (c *Context) NumCoordinates(g *Geom) (int, error) {
	n := int(C.GEOSGetNumCoordinates_r(c.v, g.v))
	if n < 0 {
		return 0, Error(c.lastError())
	}
	return n, nil
}

type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

var NilBounds = Bounds{1e20, 1e20, -1e20, -1e20}

// Extend grows b to cover o.
func (b *Bounds) Extend(o Bounds) {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
}

// Bounds walks the exterior ring of the geometry's envelope.
func (c *Context) Bounds(g *Geom) Bounds {
	env := C.GEOSEnvelope_r(c.v, g.v)
	if env == nil {
		return NilBounds
	}
	defer C.GEOSGeom_destroy_r(c.v, env)

	var cs *C.GEOSCoordSequence
	extRing := C.GEOSGetExteriorRing_r(c.v, env)
	if extRing != nil {
		cs = C.GEOSGeom_getCoordSeq_r(c.v, extRing)
	} else {
		// envelope of a point is a point
		cs = C.GEOSGeom_getCoordSeq_r(c.v, env)
	}
	if cs == nil {
		return NilBounds
	}

	var csLen C.uint
	C.GEOSCoordSeq_getSize_r(c.v, cs, &csLen)

	bounds := NilBounds
	var temp C.double
	for i := 0; i < int(csLen); i++ {
		C.GEOSCoordSeq_getX_r(c.v, cs, C.uint(i), &temp)
		x := float64(temp)
		C.GEOSCoordSeq_getY_r(c.v, cs, C.uint(i), &temp)
		y := float64(temp)
		bounds.Extend(Bounds{x, y, x, y})
	}
	return bounds
}

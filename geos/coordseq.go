package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
*/
import "C"

// CoordSeq is an owned, fixed-length coordinate sequence. Ownership moves
// into whichever geometry is built from it; a consumed sequence must not
// be reused or destroyed.
type CoordSeq struct {
	v *C.GEOSCoordSequence
}

// NewCoordSeq creates a coordinate sequence of fixed size and
// dimensionality.
func (c *Context) NewCoordSeq(size, dims int) (*CoordSeq, error) {
	v := C.GEOSCoordSeq_create_r(c.v, C.uint(size), C.uint(dims))
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &CoordSeq{v}, nil
}

// SetXY assigns position i. i must be within the size declared at
// creation.
func (s *CoordSeq) SetXY(c *Context, i int, x, y float64) error {
	if C.GEOSCoordSeq_setX_r(c.v, s.v, C.uint(i), C.double(x)) == 0 {
		return Error(c.lastError())
	}
	if C.GEOSCoordSeq_setY_r(c.v, s.v, C.uint(i), C.double(y)) == 0 {
		return Error(c.lastError())
	}
	return nil
}

func (s *CoordSeq) Size(c *Context) (int, error) {
	var size C.uint
	if C.GEOSCoordSeq_getSize_r(c.v, s.v, &size) == 0 {
		return 0, Error(c.lastError())
	}
	return int(size), nil
}

// Destroy frees a sequence that was never consumed by a geometry
// constructor.
func (s *CoordSeq) Destroy(c *Context) {
	if s.v != nil {
		C.GEOSCoordSeq_destroy_r(c.v, s.v)
		s.v = nil
	}
}

// AsPoint consumes the sequence into a Point geometry.
func (s *CoordSeq) AsPoint(c *Context) (*Geom, error) {
	v := C.GEOSGeom_createPoint_r(c.v, s.v)
	s.v = nil
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &Geom{v}, nil
}

// AsLineString consumes the sequence into a LineString geometry.
func (s *CoordSeq) AsLineString(c *Context) (*Geom, error) {
	v := C.GEOSGeom_createLineString_r(c.v, s.v)
	s.v = nil
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &Geom{v}, nil
}

// AsLinearRing consumes the sequence into a LinearRing geometry. The
// sequence must already be closed; GEOS rejects rings with fewer than 4
// coordinates unless the sequence is empty.
func (s *CoordSeq) AsLinearRing(c *Context) (*Geom, error) {
	v := C.GEOSGeom_createLinearRing_r(c.v, s.v)
	s.v = nil
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &Geom{v}, nil
}

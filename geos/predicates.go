package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
*/
import "C"

// GEOS predicates return 1, 0, or 2 on exception.
func (c *Context) boolResult(r C.char) (bool, error) {
	switch r {
	case 1:
		return true, nil
	case 0:
		return false, nil
	}
	return false, Error(c.lastError())
}

func (c *Context) Contains(a, b *Geom) (bool, error) {
	return c.boolResult(C.GEOSContains_r(c.v, a.v, b.v))
}

func (c *Context) Covers(a, b *Geom) (bool, error) {
	return c.boolResult(C.GEOSCovers_r(c.v, a.v, b.v))
}

func (c *Context) Touches(a, b *Geom) (bool, error) {
	return c.boolResult(C.GEOSTouches_r(c.v, a.v, b.v))
}

func (c *Context) Intersects(a, b *Geom) (bool, error) {
	return c.boolResult(C.GEOSIntersects_r(c.v, a.v, b.v))
}

// Equals is topological equality, not coordinate-wise equality.
func (c *Context) Equals(a, b *Geom) (bool, error) {
	return c.boolResult(C.GEOSEquals_r(c.v, a.v, b.v))
}

func (c *Context) IsValid(g *Geom) (bool, error) {
	return c.boolResult(C.GEOSisValid_r(c.v, g.v))
}

func (c *Context) IsRing(g *Geom) (bool, error) {
	return c.boolResult(C.GEOSisRing_r(c.v, g.v))
}

func (c *Context) IsEmpty(g *Geom) (bool, error) {
	return c.boolResult(C.GEOSisEmpty_r(c.v, g.v))
}

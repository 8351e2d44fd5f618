package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdlib.h>
*/
import "C"
import "unsafe"

// GeomToWKB serializes the geometry to WKB using the context's output
// settings. A null result is reported with the last captured diagnostic.
func (c *Context) GeomToWKB(g *Geom) ([]byte, error) {
	var size C.size_t
	buf := C.GEOSGeomToWKB_buf_r(c.v, g.v, &size)
	if buf == nil {
		return nil, Error(c.lastError())
	}
	defer C.free(unsafe.Pointer(buf))
	return C.GoBytes(unsafe.Pointer(buf), C.int(size)), nil
}

// GeomFromWKB parses a WKB buffer into a geometry.
func (c *Context) GeomFromWKB(wkb []byte) (*Geom, error) {
	if len(wkb) == 0 {
		return nil, CreateError("empty WKB buffer")
	}
	v := C.GEOSGeomFromWKB_buf_r(c.v, (*C.uchar)(&wkb[0]), C.size_t(len(wkb)))
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &Geom{v}, nil
}

// GeomToHEX serializes the geometry to the hexadecimal rendering of WKB.
// Unlike GeomToWKB it reports failure without diagnostic text: the
// underlying engine call does not distinguish failure causes for HEX
// output, and the asymmetry is kept as is.
func (c *Context) GeomToHEX(g *Geom) ([]byte, bool) {
	var size C.size_t
	buf := C.GEOSGeomToHEX_buf_r(c.v, g.v, &size)
	if buf == nil {
		return nil, false
	}
	defer C.free(unsafe.Pointer(buf))
	return C.GoBytes(unsafe.Pointer(buf), C.int(size)), true
}

// GeomFromHEX parses a hexadecimal WKB buffer into a geometry.
func (c *Context) GeomFromHEX(hex []byte) (*Geom, error) {
	if len(hex) == 0 {
		return nil, CreateError("empty HEX buffer")
	}
	v := C.GEOSGeomFromHEX_buf_r(c.v, (*C.uchar)(&hex[0]), C.size_t(len(hex)))
	if v == nil {
		return nil, Error(c.lastError())
	}
	return &Geom{v}, nil
}

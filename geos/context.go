package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"

extern GEOSContextHandle_t geosbridge_initContext(void *userdata);
*/
import "C"
import (
	"runtime/cgo"
	"sync"
	"unsafe"
)

// ByteOrder selects the endianness of WKB output.
type ByteOrder int

const (
	BigEndian    ByteOrder = 0 // XDR
	LittleEndian ByteOrder = 1 // NDR
)

// messages is shared between a Context and its registered handlers.
// Handlers run during engine calls, so every access goes through mu.
type messages struct {
	mu         sync.Mutex
	lastError  string
	lastNotice string
}

// Context owns one native GEOS context handle with error and notice
// handlers that capture engine diagnostics. Finish must be called to
// release the native context; geometries created under a Context remain
// valid after it is finished.
//
// A Context is not safe for concurrent use: the underlying GEOS handle
// must only be used by one goroutine at a time.
type Context struct {
	v    C.GEOSContextHandle_t
	h    cgo.Handle
	msgs *messages
}

// NewContext acquires a native GEOS context and installs the diagnostic
// handlers against it.
func NewContext() (*Context, error) {
	msgs := &messages{}
	h := cgo.NewHandle(msgs)
	v := C.geosbridge_initContext(unsafe.Pointer(uintptr(h)))
	if v == nil {
		h.Delete()
		return nil, InitError("GEOS_init_r failed")
	}
	return &Context{v: v, h: h, msgs: msgs}, nil
}

// Finish releases the native context. Calling it more than once is a
// no-op; no other method may be called afterwards.
func (c *Context) Finish() {
	if c.v != nil {
		C.GEOS_finish_r(c.v)
		c.v = nil
		c.h.Delete()
	}
}

// TakeLastNotice returns and clears the most recent notice emitted by the
// engine under this context. ok is false when no notice is pending.
func (c *Context) TakeLastNotice() (notice string, ok bool) {
	c.msgs.mu.Lock()
	defer c.msgs.mu.Unlock()
	notice = c.msgs.lastNotice
	c.msgs.lastNotice = ""
	return notice, notice != ""
}

// lastError returns and clears the most recent captured error message.
// Some engine calls fail without invoking the error handler; those get
// the fixed "unknown error" placeholder.
func (c *Context) lastError() string {
	c.msgs.mu.Lock()
	defer c.msgs.mu.Unlock()
	msg := c.msgs.lastError
	c.msgs.lastError = ""
	if msg == "" {
		return "unknown error"
	}
	return msg
}

// WKBOutputDims returns the coordinate dimensionality of subsequent WKB
// encodings under this context.
func (c *Context) WKBOutputDims() int {
	return int(C.GEOS_getWKBOutputDims_r(c.v))
}

// SetWKBOutputDims sets the coordinate dimensionality (2 or 3) of
// subsequent WKB encodings and returns the value now in effect.
// Previously produced buffers are unaffected.
func (c *Context) SetWKBOutputDims(dims int) int {
	return int(C.GEOS_setWKBOutputDims_r(c.v, C.int(dims)))
}

// WKBByteOrder returns the byte order of subsequent WKB encodings.
func (c *Context) WKBByteOrder() ByteOrder {
	return ByteOrder(C.GEOS_getWKBByteOrder_r(c.v))
}

// SetWKBByteOrder sets the byte order of subsequent WKB encodings and
// returns the value now in effect.
func (c *Context) SetWKBByteOrder(order ByteOrder) ByteOrder {
	return ByteOrder(C.GEOS_setWKBByteOrder_r(c.v, C.int(order)))
}

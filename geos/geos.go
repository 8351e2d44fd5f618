// Package geos wraps the GEOS C API through per-session context handles.
// Every call goes through the reentrant (_r) entry points of libgeos_c so
// that independent Contexts never share engine state.
package geos

// #cgo LDFLAGS: -lgeos_c
// #include "geos_c.h"
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// Note: can't use components because GEOS_VERSION_PATCH may be int or string-like
const GEOSVersion string = C.GEOS_VERSION

// Export callbacks to be able to call from C. They are registered against
// each context at creation (see cwrap.go); GEOS invokes them synchronously
// from within engine calls. userdata is a cgo.Handle to the context's
// shared messages record.

//export geos_errorMessageHandlerCallback
func geos_errorMessageHandlerCallback(message *C.char, userdata unsafe.Pointer) {
	m := cgo.Handle(uintptr(userdata)).Value().(*messages)
	m.mu.Lock()
	m.lastError = C.GoString(message)
	m.mu.Unlock()
}

//export geos_noticeMessageHandlerCallback
func geos_noticeMessageHandlerCallback(message *C.char, userdata unsafe.Pointer) {
	m := cgo.Handle(uintptr(userdata)).Value().(*messages)
	m.mu.Lock()
	m.lastNotice = C.GoString(message)
	m.mu.Unlock()
}

package geos

// Error is a failure reported by the engine. It carries the most recent
// diagnostic captured by the error message handler, or "unknown error"
// when the failing call never invoked the handler.
type Error string

// InitError means a native GEOS context could not be acquired.
type InitError string

// CreateError means a construction step returned a null geometry without
// reporting a diagnostic. Unreachable given upstream validation.
type CreateError string

// InvalidGeometryError is a structural rule violation detected before the
// geometry is handed to GEOS.
type InvalidGeometryError string

func (e Error) Error() string {
	return string(e)
}

func (e InitError) Error() string {
	return string(e)
}

func (e CreateError) Error() string {
	return string(e)
}

func (e InvalidGeometryError) Error() string {
	return string(e)
}

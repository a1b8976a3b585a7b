package proj

/*
#cgo darwin pkg-config: proj
#cgo !darwin LDFLAGS: -lproj
#include "proj_go.h"
*/
import "C"

import (
	"errors"
	"math"
	"runtime"
	"strings"
	"unsafe"
)

const (
	DegToRad = math.Pi / 180 // Multiply by this to convert degrees to radians
	RadToDeg = 180 / math.Pi // Multiply by this to convert radians to degrees
)

// A projection object
type Projection struct {
	parameters string
	pj_context *C.PJ_CONTEXT
	pj         *C.PJ
	opened     bool
}

type LibInfo struct {
	Major      int    // Major version number.
	Minor      int    // Minor version number.
	Patch      int    // Patch level of release.
	Release    string // Release info. Version number and release date, e.g. “Rel. 9.1.1, December 1st, 2022”.
	Version    string // Text representation of the full version number, e.g. “9.1.1”.
	Searchpath string // Search path for PROJ. List of directories separated by semicolons (Windows) or colons (non-Windows).
}

// Create a projection from a coordinate reference system definition: a
// string of general parameters, e.g. “+proj=utm +zone=10 +datum=WGS84”, or
// anything else proj_create accepts, e.g. “EPSG:32610”.
//
// Coordinates are in the units of the CRS: degrees for a geographic CRS,
// with longitude first.
//
// See: https://proj.org/usage/projections.html
func NewProjection(parameters string) (*Projection, error) {
	ctx := C.proj_context_create()

	cs := C.CString(crsDefinition(parameters))
	defer C.free(unsafe.Pointer(cs))
	pj, errno := C.proj_create(ctx, cs)
	if pj == nil {
		err := &Error{
			Kind:    InitFailed,
			Code:    errnoCode(errno),
			Message: errorMessage(ctx, nil),
		}
		C.proj_context_destroy(ctx)
		return nil, err
	}

	p := Projection{
		parameters: parameters,
		pj_context: ctx,
		pj:         pj,
		opened:     true,
	}
	runtime.SetFinalizer(&p, (*Projection).Close)
	return &p, nil
}

// crsDefinition marks a bare PROJ string as a CRS, the way cs2cs does, so
// that it can be the source or target of a transformation.
func crsDefinition(parameters string) string {
	s := strings.TrimSpace(parameters)
	for _, prefix := range []string{"proj=", "+proj=", "+init=", "+title="} {
		if strings.HasPrefix(s, prefix) {
			if !strings.Contains(s, "type=crs") {
				return s + " +type=crs"
			}
			return s
		}
	}
	return parameters
}

// Close the projection and release its native resources. Calling Close
// more than once has no effect.
func (p *Projection) Close() {
	if p.opened {
		C.proj_destroy(p.pj)
		C.proj_context_destroy(p.pj_context)
		p.pj = nil
		p.pj_context = nil
		p.opened = false
	}
}

// The parameters the projection was created with, verbatim
func (p *Projection) Parameters() string {
	return p.parameters
}

func (p *Projection) String() string {
	return p.parameters
}

// The definition of the projection as a PROJ string, as seen by the library
func (p *Projection) Definition() (string, error) {
	if !p.opened {
		return "", ErrClosed
	}
	cs := C.proj_as_proj_string(p.pj_context, p.pj, C.PJ_PROJ_5, nil)
	def := C.GoString(cs)
	runtime.KeepAlive(p)
	if def == "" {
		return "", errors.New(errorMessage(p.pj_context, nil))
	}
	return strings.TrimSpace(def), nil
}

// Is this a geographic projection, with coordinates in degrees?
func (p *Projection) IsLatLong() (bool, error) {
	if !p.opened {
		return false, ErrClosed
	}
	t := C.crs_type(p.pj_context, p.pj)
	runtime.KeepAlive(p)
	return t == C.PJ_TYPE_GEOGRAPHIC_2D_CRS || t == C.PJ_TYPE_GEOGRAPHIC_3D_CRS || t == C.PJ_TYPE_GEOGRAPHIC_CRS, nil
}

// Is this a geocentric projection?
func (p *Projection) IsGeocent() (bool, error) {
	if !p.opened {
		return false, ErrClosed
	}
	t := C.crs_type(p.pj_context, p.pj)
	runtime.KeepAlive(p)
	return t == C.PJ_TYPE_GEOCENTRIC_CRS, nil
}

/*
Transform points from this projection to projection to.

All points are passed to the library in one call. The result has the same
length and order as the input, which is not modified. If any point fails,
the whole batch fails: no points are returned, and both projections remain
usable.
*/
func (p *Projection) Transform(points []Point3D, to *Projection) ([]Point3D, error) {
	if !p.opened || to == nil || !to.opened {
		return nil, ErrClosed
	}

	n := len(points)
	if n == 0 {
		return []Point3D{}, nil
	}

	// The operation lives in the context of p, so p and to must outlive it.
	defer runtime.KeepAlive(p)
	defer runtime.KeepAlive(to)

	op := C.crs_to_crs(p.pj_context, p.pj, to.pj)
	if op == nil {
		code := int(C.proj_context_errno(p.pj_context))
		return nil, &Error{Kind: TransformFailed, Code: code, Message: errorMessage(p.pj_context, &code)}
	}
	defer C.proj_destroy(op)

	x := make([]C.double, n)
	y := make([]C.double, n)
	z := make([]C.double, n)
	for i, pt := range points {
		x[i] = C.double(pt.X)
		y[i] = C.double(pt.Y)
		z[i] = C.double(pt.Z)
	}

	st := C.size_t(C.sizeof_double)
	nc := C.size_t(n)

	C.proj_errno_reset(op)
	C.proj_trans_generic(
		op,
		C.PJ_DIRECTION(C.PJ_FWD),
		&x[0], st, nc,
		&y[0], st, nc,
		&z[0], st, nc,
		nil, 0, 0)

	if e := C.proj_errno(op); e != 0 {
		code := int(e)
		return nil, &Error{Kind: TransformFailed, Code: code, Message: errorMessage(p.pj_context, &code)}
	}

	out := make([]Point3D, n)
	for i := range out {
		out[i] = Point3D{
			X: float64(x[i]),
			Y: float64(y[i]),
			Z: float64(z[i]),
		}
	}
	return out, nil
}

// Transform a single point from this projection to projection to
func (p *Projection) TransformPoint(point Point3D, to *Projection) (Point3D, error) {
	out, err := p.Transform([]Point3D{point}, to)
	if err != nil {
		return Point3D{}, err
	}
	return out[0], nil
}

// Calculate geodesic distance between two points in geodetic coordinates,
// longitude and latitude in degrees
//
// The calculated distance is between the two points located on the
// ellipsoid of the projection
func (p *Projection) Dist(u1, v1, u2, v2 float64) (float64, error) {
	if !p.opened {
		return 0, ErrClosed
	}
	var d C.double
	ok := C.ellps_dist(p.pj_context, p.pj, C.double(u1), C.double(v1), C.double(u2), C.double(v2), &d)
	runtime.KeepAlive(p)
	if ok == 0 {
		return 0, errNoEllipsoid
	}
	return float64(d), nil
}

// Calculate geodesic distance between two points in geodetic coordinates
//
// Similar to Dist() but also takes the height above the ellipsoid into account
func (p *Projection) Dist3(u1, v1, w1, u2, v2, w2 float64) (float64, error) {
	d, err := p.Dist(u1, v1, u2, v2)
	if err != nil {
		return 0, err
	}
	return math.Hypot(d, w2-w1), nil
}

// Get information about the current instance of the PROJ library
func Info() LibInfo {
	info := C.proj_info()
	return LibInfo{
		Major:      int(info.major),
		Minor:      int(info.minor),
		Patch:      int(info.patch),
		Release:    C.GoString(info.release),
		Version:    C.GoString(info.version),
		Searchpath: C.GoString(info.searchpath),
	}
}

package proj

// A point in three dimensions, in the units of its projection. For a
// geographic projection X is the longitude and Y the latitude, in degrees.
type Point3D struct {
	X, Y, Z float64
}

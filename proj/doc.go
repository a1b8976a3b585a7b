/*
Package proj provides an interface to the Cartographic Projections Library PROJ [cartography].

See: https://proj.org/

This package supports PROJ version 8 and above.

A Projection is a coordinate reference system. A bare PROJ string such as
“+proj=utm +zone=10 +datum=WGS84” is taken to describe a CRS, as cs2cs
does. Coordinates are in the units of the CRS. For geographic projections
this is degrees, longitude first.

A Projection owns a native handle. Release it with Close when done:

	src, err := proj.NewProjection("+proj=latlong +datum=WGS84")
	if err != nil {
		return err
	}
	defer src.Close()

Every Projection has its own PROJ context, so distinct projections are
independent and may be used from different goroutines. A single Projection
must not be used from several goroutines at the same time.

*/
package proj

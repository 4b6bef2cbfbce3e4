package kernel

import (
	"errors"
	"fmt"

	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
	"github.com/KimJinHyeon0/vroom/internal/pkg/guard"
)

const (
	// LonMin is the minimum valid longitude.
	LonMin = -180.0
	// LonMax is the maximum valid longitude.
	LonMax = 180.0
	// LatMin is the minimum valid latitude.
	LatMin = -90.0
	// LatMax is the maximum valid latitude.
	LatMax = 90.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation, NewLocationFromIndex or NewLocationFromCoordinates constructors")

// Coordinates is a (lon, lat) pair in degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Location is an opaque reference to a place, usable by the distance/duration
// collaborator. It carries a matrix index, coordinates, or both.
//
// Jobs never interpret a Location; they only hand it back to the routing layer.
//
// Example:
//
//	loc, err := kernel.NewLocationFromCoordinates(2.3522, 48.8566)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Location(lon=2.352200,lat=48.856600)
type Location struct { //nolint:recvcheck //using for validation
	index       uint
	hasIndex    bool
	coordinates Coordinates
	hasCoords   bool
	guard       guard.ConstructorGuard
}

// NewLocationFromIndex creates a Location pointing at row/column index of a
// user-supplied duration matrix.
func NewLocationFromIndex(index uint) Location {
	return Location{
		index:    index,
		hasIndex: true,
		guard:    guard.NewConstructorGuard(),
	}
}

// NewLocationFromCoordinates creates a Location from longitude and latitude.
// Returns an error if either value lies outside its valid range.
func NewLocationFromCoordinates(lon, lat float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setCoordinates(lon, lat); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewLocation creates a Location carrying both a matrix index and coordinates.
func NewLocation(index uint, lon, lat float64) (Location, error) {
	loc, err := NewLocationFromCoordinates(lon, lat)
	if err != nil {
		return Location{}, err
	}

	loc.index = index
	loc.hasIndex = true
	return loc, nil
}

// Validate checks if the Location was properly constructed using a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Index returns the matrix index and whether one was supplied.
func (l Location) Index() (uint, bool) {
	return l.index, l.hasIndex
}

// Coordinates returns the coordinates and whether they were supplied.
func (l Location) Coordinates() (Coordinates, bool) {
	return l.coordinates, l.hasCoords
}

// String returns a human-readable representation for logging.
func (l Location) String() string {
	switch {
	case l.hasIndex && l.hasCoords:
		return fmt.Sprintf("Location(index=%d,lon=%f,lat=%f)", l.index, l.coordinates.Lon, l.coordinates.Lat)
	case l.hasCoords:
		return fmt.Sprintf("Location(lon=%f,lat=%f)", l.coordinates.Lon, l.coordinates.Lat)
	default:
		return fmt.Sprintf("Location(index=%d)", l.index)
	}
}

// IsEqual compares two locations. Both must be properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// setCoordinates validates and stores lon/lat.
// Pointer receiver on a value type: only used during construction.
func (l *Location) setCoordinates(lon, lat float64) error {
	var errLon, errLat error
	if lon < LonMin || lon > LonMax {
		errLon = errs.NewValueIsOutOfRangeError("lon", lon, LonMin, LonMax)
	}
	if lat < LatMin || lat > LatMax {
		errLat = errs.NewValueIsOutOfRangeError("lat", lat, LatMin, LatMax)
	}
	if err := errors.Join(errLon, errLat); err != nil {
		return err
	}

	l.coordinates = Coordinates{Lon: lon, Lat: lat}
	l.hasCoords = true
	return nil
}

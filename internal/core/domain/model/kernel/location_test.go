package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KimJinHyeon0/vroom/internal/core/domain/model/kernel"
	"github.com/KimJinHyeon0/vroom/internal/pkg/errs"
)

func TestNewLocationFromCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		wantErr  bool
	}{
		{name: "valid location", lon: 2.35, lat: 48.85},
		{name: "min bounds", lon: kernel.LonMin, lat: kernel.LatMin},
		{name: "max bounds", lon: kernel.LonMax, lat: kernel.LatMax},
		{name: "lon too small", lon: kernel.LonMin - 0.1, lat: 0, wantErr: true},
		{name: "lon too large", lon: kernel.LonMax + 0.1, lat: 0, wantErr: true},
		{name: "lat too small", lon: 0, lat: kernel.LatMin - 0.1, wantErr: true},
		{name: "lat too large", lon: 0, lat: kernel.LatMax + 0.1, wantErr: true},
		{name: "both invalid", lon: 500, lat: -500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocationFromCoordinates(tt.lon, tt.lat)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, loc)
				return
			}

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			coords, ok := loc.Coordinates()
			assert.True(t, ok)
			assert.Equal(t, kernel.Coordinates{Lon: tt.lon, Lat: tt.lat}, coords)
			_, hasIndex := loc.Index()
			assert.False(t, hasIndex)
		})
	}
}

func TestNewLocationFromIndex(t *testing.T) {
	loc := kernel.NewLocationFromIndex(3)

	require.NoError(t, loc.Validate())
	index, ok := loc.Index()
	assert.True(t, ok)
	assert.Equal(t, uint(3), index)
	_, ok = loc.Coordinates()
	assert.False(t, ok)
	assert.Equal(t, "Location(index=3)", loc.String())
}

func TestNewLocation(t *testing.T) {
	loc, err := kernel.NewLocation(1, 10, 20)
	require.NoError(t, err)

	index, ok := loc.Index()
	assert.True(t, ok)
	assert.Equal(t, uint(1), index)
	_, ok = loc.Coordinates()
	assert.True(t, ok)
	assert.Equal(t, "Location(index=1,lon=10.000000,lat=20.000000)", loc.String())

	_, err = kernel.NewLocation(1, 200, 20)
	require.Error(t, err)
}

func TestLocation_Validate(t *testing.T) {
	var loc kernel.Location
	assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
}

func TestLocation_IsEqual(t *testing.T) {
	a := kernel.NewLocationFromIndex(2)
	b := kernel.NewLocationFromIndex(2)
	c := kernel.NewLocationFromIndex(5)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

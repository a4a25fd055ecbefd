// Package grid oversamples a bounding square with a regular grid of cell
// centers. Point-search APIs cap the number of results per query, so one
// large-radius query misses most places in a dense area; many overlapping
// small-radius queries approximate the full result set.
package grid

import (
	"math"

	"attractions-gpx/internal/types"
)

// metersPerDegreeLat is the approximate length of one degree of latitude.
const metersPerDegreeLat = 111320.0

// Sample returns the cell centers of a square grid around center, in
// row-major order. The square extends halfSideMeters in each cardinal
// direction and cells are stepMeters apart, so the result holds
// (floor(2*halfSideMeters/stepMeters)+1)^2 coordinates. A zero half side
// (or a step larger than the square) degenerates to the single center
// cell. Longitude offsets diverge near the poles; callers are expected to
// stay away from them.
func Sample(center types.Coords, halfSideMeters, stepMeters float64) []types.Coords {
	latDegPerMeter := 1.0 / metersPerDegreeLat
	cosLat := math.Cos(center.Latitude * math.Pi / 180.0)
	lonDegPerMeter := 1.0 / (metersPerDegreeLat * cosLat)

	stepsCount := 0
	if stepMeters > 0 {
		stepsCount = int((2 * halfSideMeters) / stepMeters)
	}

	cells := make([]types.Coords, 0, (stepsCount+1)*(stepsCount+1))
	for i := 0; i <= stepsCount; i++ {
		offsetLatDeg := (-halfSideMeters + float64(i)*stepMeters) * latDegPerMeter

		for j := 0; j <= stepsCount; j++ {
			offsetLonDeg := (-halfSideMeters + float64(j)*stepMeters) * lonDegPerMeter

			cells = append(cells, types.NewCoords(
				center.Latitude+offsetLatDeg,
				center.Longitude+offsetLonDeg,
			))
		}
	}

	return cells
}

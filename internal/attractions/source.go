// Package attractions holds the source adapters that turn external place
// APIs into normalized Points, and the aggregator that fans out across
// them for one request.
package attractions

import (
	"context"
	"time"

	"attractions-gpx/internal/types"
)

// Source is one external attraction source. GetData covers the requested
// radius around the coordinates and returns normalized, deduplicated
// points. Per-cell failures inside an adapter degrade to zero results for
// that cell; a returned error means the whole source failed.
type Source interface {
	Name() string
	GetData(ctx context.Context, coords types.Coords, radiusMeters int) ([]types.Point, error)
}

// interCallDelay is the cooperative pause between sequential sub-queries
// of one source, to stay under provider rate limits.
const interCallDelay = 50 * time.Millisecond

// pause sleeps between sequential sub-queries, returning early with the
// context error when the request is cancelled.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// nameFromTags picks a display name out of an OSM-style tag map: the
// localized name for the requested language first, then English, then the
// generic name tag.
func nameFromTags(tags map[string]string, language string) string {
	if language != "" {
		if name := tags["name:"+language]; name != "" {
			return name
		}
	}
	if name := tags["name:en"]; name != "" {
		return name
	}
	if name := tags["name"]; name != "" {
		return name
	}
	return "Unknown Place"
}

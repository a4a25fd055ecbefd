package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"attractions-gpx/internal/attractions"
	"attractions-gpx/internal/gpx"
	"attractions-gpx/internal/types"

	"github.com/gin-gonic/gin"
)

// GetAttractionsInput defines the query parameters for the attraction endpoints
type GetAttractionsInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	Radius    int     `form:"radius"`                       // Search radius in meters, defaults to app.radiusMeters
	Source    string  `form:"source"`                       // all, google, tripadvisor, osm, wikidata or wikipedia
}

// SourceSummary reports one source's outcome in the JSON response
type SourceSummary struct {
	Source string `json:"source" example:"Google"`
	Count  int    `json:"count" example:"17"`
	Error  string `json:"error,omitempty"`
}

// AttractionsResponse is the JSON point list with per-source outcomes
type AttractionsResponse struct {
	Points  []types.Point   `json:"points"`
	Sources []SourceSummary `json:"sources"`
}

// handleListAttractions godoc
// @Summary List aggregated attractions
// @Description Fetch attractions near a coordinate from all sources and return them as JSON, with a per-source completion summary
// @Tags attractions
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(48.8566)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(2.3522)
// @Param radius query int false "Search radius in meters" example(5000)
// @Success 200 {object} AttractionsResponse
// @Failure 400 {object} map[string]string
// @Router /attractions [get]
func (app *App) handleListAttractions(c *gin.Context) {
	input, ok := app.bindInput(c)
	if !ok {
		return
	}

	coords := types.NewCoords(input.Latitude, input.Longitude)

	var summaries []SourceSummary
	points := app.aggregator.Aggregate(c.Request.Context(), coords, input.Radius, app.credentials(), func(result attractions.SourceResult) {
		summary := SourceSummary{Source: result.Source, Count: result.Count}
		if result.Err != nil {
			summary.Error = result.Err.Error()
		}
		summaries = append(summaries, summary)
	})

	c.JSON(http.StatusOK, AttractionsResponse{
		Points:  points,
		Sources: summaries,
	})
}

// handleGetAttractionsGpx godoc
// @Summary Generate a GPX waypoint file
// @Description Fetch attractions near a coordinate and return them as a GPX 1.1 document; the suggested file name is carried in the Content-Disposition header
// @Tags attractions
// @Produce xml
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(48.8566)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(2.3522)
// @Param radius query int false "Search radius in meters" example(5000)
// @Param source query string false "Source to query: all, google, tripadvisor, osm, wikidata or wikipedia" example(all)
// @Success 200 {string} string "GPX document"
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /attractions/gpx [get]
func (app *App) handleGetAttractionsGpx(c *gin.Context) {
	input, ok := app.bindInput(c)
	if !ok {
		return
	}

	coords := types.NewCoords(input.Latitude, input.Longitude)
	ctx := c.Request.Context()

	var points []types.Point
	prefix := app.cfg.App.FileNamePrefix

	if input.Source == "" || input.Source == "all" {
		points = app.aggregator.Aggregate(ctx, coords, input.Radius, app.credentials(), func(result attractions.SourceResult) {
			if result.Err != nil {
				app.logger.Warn("source failed", "source", result.Source, "error", result.Err)
			}
		})
	} else {
		source, err := app.newSource(input.Source)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		prefix = input.Source

		points, err = source.GetData(ctx, coords, input.Radius)
		if err != nil {
			// Missing credentials are a client problem, everything else a
			// failed upstream call.
			if errors.Is(err, attractions.ErrMissingGoogleKey) || errors.Is(err, attractions.ErrMissingTripAdvisorKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("failed to fetch attractions: %v", err)})
			return
		}
	}

	// The resolved place name only decorates the file name; ignore
	// failures and fall back to an empty segment.
	locationName, err := app.geocodeService.LocationName(ctx, coords, app.cfg.App.Language)
	if err != nil {
		app.logger.Warn("failed to resolve location name", "error", err)
		locationName = ""
	}

	fileName := gpx.FileName(prefix, locationName, time.Now())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/gpx+xml", []byte(gpx.Serialize(points)))
}

func (app *App) bindInput(c *gin.Context) (GetAttractionsInput, bool) {
	var input GetAttractionsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}

	if input.Latitude < -90 || input.Latitude > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": types.ErrInvalidLatitude.Error()})
		return input, false
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": types.ErrInvalidLongitude.Error()})
		return input, false
	}

	if input.Radius <= 0 {
		input.Radius = app.cfg.App.RadiusMeters
	}

	return input, true
}

func (app *App) credentials() attractions.Credentials {
	return attractions.Credentials{
		GooglePlacesKey: app.cfg.App.GooglePlacesKey,
		TripAdvisorKey:  app.cfg.App.TripAdvisorKey,
	}
}

// newSource builds a single source by request name.
func (app *App) newSource(name string) (attractions.Source, error) {
	switch name {
	case "google":
		return attractions.NewGoogleSource(app.cfg.App.GooglePlacesKey, app.logger), nil
	case "tripadvisor":
		return attractions.NewTripAdvisorSource(app.cfg.App.TripAdvisorKey, app.logger), nil
	case "osm":
		return attractions.NewOsmSource(app.cfg.App.Language, app.logger), nil
	case "wikidata":
		return attractions.NewWikidataSource(app.cfg.App.Language, app.logger), nil
	case "wikipedia":
		return attractions.NewWikipediaSource(app.cfg.App.Language, app.logger), nil
	default:
		return nil, fmt.Errorf("unknown source %q", name)
	}
}

// Package gpx serializes normalized attraction points into a GPX 1.1
// waypoint document.
package gpx

import (
	"fmt"
	"strings"
	"time"

	"attractions-gpx/internal/types"
)

const creator = "attractions-gpx"

// Serialize renders the points as a GPX 1.1 document, one <wpt> per
// point, in input order.
//
// Known limitation, kept for output compatibility with existing files:
// only "&" is escaped in name and desc content. A name containing "<"
// or ">" produces malformed XML.
func Serialize(points []types.Point) string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"yes\"?>\n")
	sb.WriteString(fmt.Sprintf("<gpx version=\"1.1\" creator=\"%s\" xmlns=\"http://www.topografix.com/GPX/1/1\">\n", creator))

	for _, point := range points {
		sb.WriteString(fmt.Sprintf("  <wpt lat=\"%v\" lon=\"%v\">\n", point.Coordinates.Latitude, point.Coordinates.Longitude))
		sb.WriteString(fmt.Sprintf("    <name>%s</name>\n", escape(point.Name)))
		sb.WriteString(fmt.Sprintf("    <desc>%s</desc>\n", escape(point.Description)))
		sb.WriteString("  </wpt>\n")
	}

	sb.WriteString("</gpx>\n")
	return sb.String()
}

func escape(text string) string {
	return strings.ReplaceAll(text, "&", "&amp;")
}

// FileName builds the suggested name for a generated file:
// "{prefix}_{locationName}_{timestamp}.gpx", with the colons of the
// timestamp replaced so the name is valid on every filesystem.
func FileName(prefix, locationName string, now time.Time) string {
	timestamp := strings.ReplaceAll(now.Format("2006-01-02T15:04:05.000"), ":", "-")
	return fmt.Sprintf("%s_%s_%s.gpx", prefix, locationName, timestamp)
}

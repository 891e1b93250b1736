package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pytroll/fdrtool/pkg/granule"
)

// GranuleSpec describes a synthetic level 1c granule for tests.
type GranuleSpec struct {
	// Platform attribute value; may use the "long > short" form.
	Platform string

	// Start and LineStep generate the per-scanline acquisition times
	// unless Times is given.
	Start    time.Time
	Lines    int
	LineStep time.Duration
	Times    []time.Time

	// Lat generates the mid-swath latitude per scanline; the default is
	// a constant 10 degrees (never crosses the equator).  Lon likewise,
	// default constant 0.
	Lat func(line int) float64
	Lon func(line int) float64
}

// WriteGranule writes a synthetic granule metadata document into dir and
// returns its path.
func WriteGranule(t *testing.T, dir, name string, spec GranuleSpec) string {
	t.Helper()

	times := spec.Times
	if times == nil {
		step := spec.LineStep
		if step == 0 {
			step = 500 * time.Millisecond
		}
		for i := 0; i < spec.Lines; i++ {
			times = append(times, spec.Start.Add(time.Duration(i)*step))
		}
	}
	lat := spec.Lat
	if lat == nil {
		lat = func(int) float64 { return 10 }
	}
	lon := spec.Lon
	if lon == nil {
		lon = func(int) float64 { return 0 }
	}

	doc := granule.Document{
		GlobalAttrs: map[string]interface{}{
			"platform": spec.Platform,
		},
		AcqTime: times,
	}
	for i := range times {
		doc.MidSwathLat = append(doc.MidSwathLat, lat(i))
		doc.MidSwathLon = append(doc.MidSwathLon, lon(i))
	}

	filename := filepath.Join(dir, name)
	require.NoError(t, doc.Write(filename))
	return filename
}

package attrs_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pytroll/fdrtool/pkg/attrs"
	"github.com/pytroll/fdrtool/pkg/granule"
)

func TestCompose(t *testing.T) {
	t.Parallel()
	doc := &granule.Document{
		GlobalAttrs: map[string]interface{}{"platform": "NOAA-19"},
		AcqTime: []time.Time{
			time.Date(2009, 7, 1, 10, 26, 24, 0, time.UTC),
			time.Date(2009, 7, 1, 12, 7, 59, 0, time.UTC),
		},
		MidSwathLat: []float64{-12.5, 48.25},
		MidSwathLon: []float64{100.5, -170.25},
	}
	md := granule.Metadata{
		Platform:  "NOAA-19",
		StartTime: doc.AcqTime[0],
		EndTime:   doc.AcqTime[1],
	}
	composer := attrs.Composer{
		Static: map[string]interface{}{
			"institution": "EUMETSAT",
			// Computed attributes win over static ones.
			"platform": "bogus",
		},
	}
	created := time.Date(2020, 1, 17, 9, 0, 0, 0, time.UTC)

	composed := composer.Compose(doc, md, created)
	assert.Equal(t, map[string]interface{}{
		"institution":         "EUMETSAT",
		"platform":            "NOAA-19",
		"time_coverage_start": "2009-07-01T10:26:24Z",
		"time_coverage_end":   "2009-07-01T12:07:59Z",
		"date_created":        "2020-01-17T09:00:00Z",
		"geospatial_lat_min":  -12.5,
		"geospatial_lat_max":  48.25,
		"geospatial_lon_min":  -170.25,
		"geospatial_lon_max":  100.5,
	}, composed)

	assert.Equal(t, []string{
		"date_created",
		"geospatial_lat_max",
		"geospatial_lat_min",
		"geospatial_lon_max",
		"geospatial_lon_min",
		"institution",
		"platform",
		"time_coverage_end",
		"time_coverage_start",
	}, attrs.SortedKeys(composed))
}

func TestComposeNonFiniteCoordinates(t *testing.T) {
	t.Parallel()
	doc := &granule.Document{
		AcqTime: []time.Time{
			time.Date(2009, 7, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2009, 7, 1, 10, 0, 1, 0, time.UTC),
			time.Date(2009, 7, 1, 10, 0, 2, 0, time.UTC),
		},
		MidSwathLat: []float64{math.NaN(), 3, math.Inf(1)},
		MidSwathLon: []float64{math.NaN(), math.NaN(), math.NaN()},
	}
	md := granule.Metadata{
		Platform:  "NOAA-19",
		StartTime: doc.AcqTime[0],
		EndTime:   doc.AcqTime[2],
	}

	composed := attrs.Composer{}.Compose(doc, md, time.Unix(0, 0))

	// Non-finite samples are skipped; all-NaN longitudes produce no
	// bounds at all.
	assert.Equal(t, 3.0, composed["geospatial_lat_min"])
	assert.Equal(t, 3.0, composed["geospatial_lat_max"])
	assert.NotContains(t, composed, "geospatial_lon_min")
	assert.NotContains(t, composed, "geospatial_lon_max")
}

// Package attrs composes the global attributes written into output
// products, following the CF-1.8 / ACDD-1.3 conventions: the static
// attributes from the configuration, overlaid with attributes computed
// from the granule itself.
package attrs

import (
	"math"
	"sort"
	"time"

	"github.com/pytroll/fdrtool/pkg/granule"
)

// ISO8601 is the layout used for time attributes.
const ISO8601 = "2006-01-02T15:04:05Z"

// Composer composes global attributes.
type Composer struct {
	// Static attributes from the configuration ("global_attrs").
	// Computed attributes win on conflict.
	Static map[string]interface{}
}

// Compose returns the global attributes for one granule.  The created
// time should come from reproducible.Now so that re-runs are
// deterministic.
func (c Composer) Compose(doc *granule.Document, md granule.Metadata, created time.Time) map[string]interface{} {
	ret := make(map[string]interface{}, len(c.Static)+8)
	for key, val := range c.Static {
		ret[key] = val
	}

	ret["platform"] = md.Platform
	ret["time_coverage_start"] = md.StartTime.UTC().Format(ISO8601)
	ret["time_coverage_end"] = md.EndTime.UTC().Format(ISO8601)
	ret["date_created"] = created.UTC().Format(ISO8601)

	if latMin, latMax, ok := bounds(doc.MidSwathLat); ok {
		ret["geospatial_lat_min"] = latMin
		ret["geospatial_lat_max"] = latMax
	}
	if lonMin, lonMax, ok := bounds(doc.MidSwathLon); ok {
		ret["geospatial_lon_min"] = lonMin
		ret["geospatial_lon_max"] = lonMax
	}

	return ret
}

// bounds returns the finite min/max of vs.
func bounds(vs []float64) (min, max float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// SortedKeys returns the attribute names in deterministic order.
func SortedKeys(attrs map[string]interface{}) []string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

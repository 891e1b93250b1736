// Package reproducible pins the creation timestamp that goes into output
// filenames and the date_created attribute, so that archive re-runs can
// produce byte-identical names.
package reproducible

import (
	"os"
	"strconv"
	"sync"
	"time"
)

var (
	nowOnce sync.Once
	now     time.Time
)

// Now returns the creation timestamp, UTC.  It honors the standard
// SOURCE_DATE_EPOCH environment variable and is fixed for the lifetime of
// the process.
func Now() time.Time {
	nowOnce.Do(func() {
		secs, err := strconv.ParseInt(os.Getenv("SOURCE_DATE_EPOCH"), 10, 64)
		if err == nil {
			now = time.Unix(secs, 0).UTC()
		} else {
			now = time.Now().UTC()
		}
	})
	return now
}

// Package qc collects metadata from level 1c granule files and complements
// it with global quality flags, equator crossing, midnight line, and
// overlap information.
package qc

import (
	"context"
	"sort"
	"time"

	"github.com/datawire/dlib/dlog"

	"github.com/pytroll/fdrtool/pkg/granule"
)

// Collector collects and complements metadata from level 1c files.
type Collector struct {
	// MinNumLines is the minimum number of scanlines for a file to be
	// considered ok.  Shorter files are flagged too_short.
	MinNumLines int

	// MinDuration is the minimum duration for a file to be considered
	// ok.  Shorter files are flagged too_short.
	MinDuration time.Duration

	// MaxDuration is the maximum duration for a file to be considered
	// ok.  Longer files are flagged too_long; this happens when the
	// timestamps of the first or last scanline are corrupted, and
	// flagging it prevents subsequent files from being flagged
	// redundant.
	MaxDuration time.Duration

	// RedundantWindow is the number of files (current one included)
	// taken into account when looking for predecessors that fully
	// overlap a file.
	RedundantWindow int

	// OpenEnd leaves the last file's overlap_free_end unset, for
	// incremental collection runs where the subsequent file is not
	// known yet.
	OpenEnd bool
}

// NewCollector returns a Collector with the default thresholds.
func NewCollector() *Collector {
	return &Collector{
		MinNumLines:     50,
		MinDuration:     5 * time.Minute,
		MaxDuration:     120 * time.Minute,
		RedundantWindow: 20,
	}
}

// record pairs a catalog record with the per-scanline data the overlap
// pass needs.
type record struct {
	md  granule.Metadata
	acq []time.Time
}

// Collect reads the given granule files and returns their complemented
// metadata, sorted by (start_time, end_time).
func (c *Collector) Collect(ctx context.Context, filenames []string) ([]granule.Metadata, error) {
	dlog.Infof(ctx, "Collecting metadata")
	records := make([]*record, 0, len(filenames))
	for _, filename := range filenames {
		dlog.Debugf(ctx, "Collecting metadata from %s", filename)
		doc, err := granule.ReadDocument(filename)
		if err != nil {
			return nil, err
		}
		md, err := doc.Metadata(filename)
		if err != nil {
			return nil, err
		}
		md.MidnightLine = midnightLine(ctx, doc.AcqTime)
		md.EquatorCrossingLon, md.EquatorCrossingTime = equatorCrossing(doc)
		records = append(records, &record{md: md, acq: doc.AcqTime})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].md.StartTime.Equal(records[j].md.StartTime) {
			return records[i].md.StartTime.Before(records[j].md.StartTime)
		}
		return records[i].md.EndTime.Before(records[j].md.EndTime)
	})

	dlog.Infof(ctx, "Computing quality flags")
	for _, platform := range platforms(records) {
		group := byPlatform(records, platform)
		if err := c.setQualityFlags(group, platform); err != nil {
			return nil, err
		}
	}

	dlog.Infof(ctx, "Computing overlap")
	for _, platform := range platforms(records) {
		c.calcOverlap(ctx, byPlatform(records, platform))
	}

	mds := make([]granule.Metadata, 0, len(records))
	for _, rec := range records {
		mds = append(mds, rec.md)
	}
	return mds, nil
}

// platforms returns the distinct platforms in first-seen order.
func platforms(records []*record) []string {
	var names []string
	seen := make(map[string]bool)
	for _, rec := range records {
		if !seen[rec.md.Platform] {
			seen[rec.md.Platform] = true
			names = append(names, rec.md.Platform)
		}
	}
	return names
}

// byPlatform returns the subsequence of records for one platform, keeping
// the global (start_time, end_time) order.
func byPlatform(records []*record, platform string) []*record {
	var group []*record
	for _, rec := range records {
		if rec.md.Platform == platform {
			group = append(group, rec)
		}
	}
	return group
}

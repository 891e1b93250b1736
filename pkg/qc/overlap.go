package qc

import (
	"context"
	"time"

	"github.com/datawire/dlib/dlog"

	"github.com/pytroll/fdrtool/pkg/granule"
)

// calcOverlap compares timestamps of neighbouring files and determines
// the overlap-free part of each file.  Only files that passed all quality
// checks participate; for each of those, overlap_free_start/end is set
// from the end/start timestamps of the preceding/subsequent ok file.
func (c *Collector) calcOverlap(ctx context.Context, records []*record) {
	var ok []*record
	for _, rec := range records {
		if rec.md.QualityFlag == granule.FlagOK {
			ok = append(ok, rec)
		}
	}

	for i, this := range ok {
		dlog.Debugf(ctx, "Computing overlap for %s", this.md.Filename)

		// Overlap with the preceding file.
		start := 0
		if i > 0 {
			prev := ok[i-1]
			if !prev.md.EndTime.Before(this.md.StartTime) {
				start = firstIndex(this.acq, func(t time.Time) bool {
					return t.After(prev.md.EndTime)
				})
			}
		}
		this.md.OverlapFreeStart = &start

		// Overlap with the subsequent file.
		if i < len(ok)-1 {
			next := ok[i+1]
			end := this.md.AlongTrack - 1
			if !this.md.EndTime.Before(next.md.StartTime) {
				end = firstIndex(this.acq, func(t time.Time) bool {
					return !t.Before(next.md.StartTime)
				}) - 1
			}
			this.md.OverlapFreeEnd = &end
		} else if !c.OpenEnd {
			end := this.md.AlongTrack - 1
			this.md.OverlapFreeEnd = &end
		}
	}
}

// firstIndex returns the index of the first scanline satisfying the
// condition, or 0 if none does.
func firstIndex(acq []time.Time, cond func(time.Time) bool) int {
	for i, t := range acq {
		if cond(t) {
			return i
		}
	}
	return 0
}

// midnightLine finds the scanline where the UTC date increases by one
// day, if any.  If the date increases more than once, the first
// occurrence wins.
func midnightLine(ctx context.Context, acq []time.Time) *int {
	var found *int
	for i := 0; i < len(acq)-1; i++ {
		if epochDay(acq[i+1])-epochDay(acq[i]) == 1 {
			if found != nil {
				dlog.Warnf(ctx, "UTC date increases more than once. Choosing the first "+
					"occurence as midnight scanline.")
				break
			}
			line := i
			found = &line
		}
	}
	return found
}

// epochDay returns the number of whole days between the Unix epoch and t.
func epochDay(t time.Time) int64 {
	const secondsPerDay = 24 * 60 * 60
	secs := t.Unix()
	day := secs / secondsPerDay
	if secs < 0 && secs%secondsPerDay != 0 {
		day--
	}
	return day
}

// equatorCrossing determines where the ascending node crosses the
// equator, using the coordinates in the middle of the swath.  Returns
// nils when the granule never crosses the equator northbound.
func equatorCrossing(doc *granule.Document) (*float64, *time.Time) {
	lat := doc.MidSwathLat
	for i := 0; i < len(lat); i++ {
		// The scanline after the last one is taken to be the last
		// one itself, which can never register as a crossing.
		next := lat[len(lat)-1]
		if i < len(lat)-1 {
			next = lat[i+1]
		}
		if sign(next) != sign(lat[i]) && next > lat[i] {
			lon := doc.MidSwathLon[i]
			t := doc.AcqTime[i].UTC()
			return &lon, &t
		}
	}
	return nil, nil
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

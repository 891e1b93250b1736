package qc

import (
	"github.com/pytroll/fdrtool/pkg/granule"
)

// setQualityFlags runs all flag passes over one platform's records.  The
// pass order matters: redundancy only considers files that passed the
// preceding checks, and the duplicate pass runs last over all files.
func (c *Collector) setQualityFlags(records []*record, platform string) error {
	if err := c.setInvalidTimestampFlag(records, platform); err != nil {
		return err
	}
	c.setTooShortFlag(records)
	c.setTooLongFlag(records)
	c.setRedundantFlag(records)
	c.setDuplicateFlag(records)
	return nil
}

// setInvalidTimestampFlag flags files whose timestamps are outside the
// temporal coverage of the platform or where end_time < start_time.
func (c *Collector) setInvalidTimestampFlag(records []*record, platform string) error {
	cov, err := granule.PlatformCoverage(platform)
	if err != nil {
		return err
	}
	for _, rec := range records {
		outOfRange := rec.md.StartTime.Before(cov.Begin) ||
			rec.md.StartTime.After(cov.End) ||
			rec.md.EndTime.Before(cov.Begin) ||
			rec.md.EndTime.After(cov.End)
		negDuration := rec.md.EndTime.Before(rec.md.StartTime)
		if outOfRange || negDuration {
			rec.md.QualityFlag = granule.FlagInvalidTimestamp
		}
	}
	return nil
}

// setTooShortFlag flags files with too few scanlines or too short a
// duration.
func (c *Collector) setTooShortFlag(records []*record) {
	for _, rec := range records {
		duration := rec.md.Duration()
		if duration < 0 {
			duration = -duration
		}
		if rec.md.AlongTrack < c.MinNumLines || duration < c.MinDuration {
			rec.md.QualityFlag = granule.FlagTooShort
		}
	}
}

// setTooLongFlag flags files where (end_time - start_time) is
// unrealistically large.
func (c *Collector) setTooLongFlag(records []*record) {
	for _, rec := range records {
		if rec.md.Duration() > c.MaxDuration {
			rec.md.QualityFlag = granule.FlagTooLong
		}
	}
}

// setRedundantFlag flags files that are entirely overlapped by one of
// their predecessors (in time).  Only files that passed the checks so far
// participate, so that e.g. a too_long file does not swallow many
// subsequent files.  The window is taken over that ok-subsequence, and is
// fixed before any redundant flag is applied: a file found redundant still
// counts as a predecessor for later files.
func (c *Collector) setRedundantFlag(records []*record) {
	var ok []*record
	for _, rec := range records {
		if rec.md.QualityFlag == granule.FlagOK {
			ok = append(ok, rec)
		}
	}
	redundant := make([]bool, len(ok))
	for i := range ok {
		lo := i - c.RedundantWindow + 1
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			startCovered := !ok[j].md.StartTime.After(ok[i].md.StartTime)
			endCovered := !ok[j].md.EndTime.Before(ok[i].md.EndTime)
			if startCovered && endCovered {
				redundant[i] = true
				break
			}
		}
	}
	for i, rec := range ok {
		if redundant[i] {
			rec.md.QualityFlag = granule.FlagRedundant
		}
	}
}

// setDuplicateFlag flags files with identical (platform, start_time,
// end_time) as an earlier file.  This happens when the same measurement
// has been transferred to two different ground stations.  The first
// occurrence wins.
func (c *Collector) setDuplicateFlag(records []*record) {
	type key struct {
		start int64
		end   int64
	}
	seen := make(map[key]bool)
	for _, rec := range records {
		k := key{rec.md.StartTime.UnixNano(), rec.md.EndTime.UnixNano()}
		if seen[k] {
			rec.md.QualityFlag = granule.FlagDuplicate
			continue
		}
		seen[k] = true
	}
}

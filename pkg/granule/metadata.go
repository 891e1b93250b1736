package granule

import (
	"time"
)

// Metadata is one granule's catalog record: what was read from the file
// plus what the QC and overlap passes computed.  Pointer fields are unset
// until computed, and may stay unset (a granule that never crosses the
// equator northbound has no equator crossing).
type Metadata struct {
	Platform   string    `json:"platform" yaml:"platform"`
	StartTime  time.Time `json:"start_time" yaml:"start_time"`
	EndTime    time.Time `json:"end_time" yaml:"end_time"`
	AlongTrack int       `json:"along_track" yaml:"along_track"`
	Filename   string    `json:"filename" yaml:"filename"`

	EquatorCrossingLon  *float64   `json:"equator_crossing_longitude" yaml:"equator_crossing_longitude"`
	EquatorCrossingTime *time.Time `json:"equator_crossing_time" yaml:"equator_crossing_time"`

	// 0-based scanline indexes into this file.
	MidnightLine     *int `json:"midnight_line" yaml:"midnight_line"`
	OverlapFreeStart *int `json:"overlap_free_start" yaml:"overlap_free_start"`
	OverlapFreeEnd   *int `json:"overlap_free_end" yaml:"overlap_free_end"`

	QualityFlag QualityFlag `json:"global_quality_flag" yaml:"global_quality_flag"`
}

// Duration is EndTime - StartTime.  Negative for corrupted timestamps.
func (md Metadata) Duration() time.Duration {
	return md.EndTime.Sub(md.StartTime)
}

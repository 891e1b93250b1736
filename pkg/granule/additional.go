package granule

import (
	"time"
)

// Fill values for the additional metadata variables.
const (
	FillValueInt   = -9999
	FillValueFloat = -9999.0
)

// VarDef describes one additional metadata variable to be stamped into the
// level 1c files after metadata collection.
type VarDef struct {
	Name      string
	DType     string
	FillValue interface{} // nil means no fill value
	Attrs     map[string]interface{}
}

// AdditionalVariables returns the definitions of the variables added by the
// metadata update step.
func AdditionalVariables() []VarDef {
	return []VarDef{
		{
			Name:      "overlap_free_start",
			DType:     "int16",
			FillValue: FillValueInt,
			Attrs: map[string]interface{}{
				"long_name": "First scanline (0-based) of the overlap-free part of this file. " +
					"Scanlines before that also appear in the preceding file.",
			},
		},
		{
			Name:      "overlap_free_end",
			DType:     "int16",
			FillValue: FillValueInt,
			Attrs: map[string]interface{}{
				"long_name": "Last scanline (0-based) of the overlap-free part of this file. " +
					"Scanlines hereafter also appear in the subsequent file.",
			},
		},
		{
			Name:      "midnight_line",
			DType:     "int16",
			FillValue: FillValueInt,
			Attrs: map[string]interface{}{
				"long_name": "Scanline (0-based) where UTC timestamp crosses the dateline",
			},
		},
		{
			Name:      "equator_crossing_longitude",
			DType:     "float64",
			FillValue: FillValueFloat,
			Attrs: map[string]interface{}{
				"long_name": "Longitude where ascending node crosses the equator",
				"units":     "degrees_east",
			},
		},
		{
			Name:      "equator_crossing_time",
			DType:     "float64",
			FillValue: FillValueInt,
			Attrs: map[string]interface{}{
				"long_name": "UTC time when ascending node crosses the equator",
				"units":     EpochSecondsUnits,
				"calendar":  "standard",
			},
		},
		{
			Name:  "global_quality_flag",
			DType: "uint8",
			Attrs: map[string]interface{}{
				"long_name": "Global quality flag",
				"comment": "If this flag is everything else than \"ok\", it is recommended not " +
					"to use the file.",
				"flag_values":   FlagValues(),
				"flag_meanings": FlagMeanings(),
			},
		},
	}
}

// EpochSecondsUnits is the CF units string used for timestamps stamped as
// numbers.
const EpochSecondsUnits = "seconds since 1970-01-01 00:00:00"

// EncodeEpochSeconds encodes a timestamp per EpochSecondsUnits.
func EncodeEpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

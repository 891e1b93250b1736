// Package granule models the per-file metadata of AVHRR GAC level 1c
// granules: identity, timestamps, quality flags, and the additional
// variables that get stamped back into the product files.
package granule

import (
	"fmt"
)

// QualityFlag is the global quality flag of a granule.  The numeric values
// are written into products as flag_values and must never change.
type QualityFlag uint8

const (
	FlagOK               QualityFlag = 0
	FlagInvalidTimestamp QualityFlag = 1 // end time < start time or timestamp out of valid range
	FlagTooShort         QualityFlag = 2 // not enough scanlines or duration too short
	FlagTooLong          QualityFlag = 3 // (end_time - start_time) unrealistically large
	FlagDuplicate        QualityFlag = 4 // identical record from different ground stations
	FlagRedundant        QualityFlag = 5 // subset of another file
)

var flagNames = map[QualityFlag]string{
	FlagOK:               "ok",
	FlagInvalidTimestamp: "invalid_timestamp",
	FlagTooShort:         "too_short",
	FlagTooLong:          "too_long",
	FlagDuplicate:        "duplicate",
	FlagRedundant:        "redundant",
}

func (f QualityFlag) String() string {
	str, ok := flagNames[f]
	if !ok {
		panic(fmt.Errorf("invalid QualityFlag: %d", uint8(f)))
	}
	return str
}

// ParseQualityFlag is the inverse of QualityFlag.String.
func ParseQualityFlag(str string) (QualityFlag, error) {
	for flag, name := range flagNames {
		if name == str {
			return flag, nil
		}
	}
	return 0, fmt.Errorf("invalid quality flag: %q", str)
}

// FlagValues returns all quality flag values in ascending order, for use as
// the flag_values attribute.
func FlagValues() []uint8 {
	return []uint8{0, 1, 2, 3, 4, 5}
}

// FlagMeanings returns the names matching FlagValues, for use as the
// flag_meanings attribute.
func FlagMeanings() []string {
	values := FlagValues()
	meanings := make([]string, 0, len(values))
	for _, value := range values {
		meanings = append(meanings, QualityFlag(value).String())
	}
	return meanings
}

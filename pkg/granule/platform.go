package granule

import (
	"fmt"
	"strings"
	"time"
)

// Coverage is the temporal coverage of a platform.  A zero End means the
// mission is still flying; OpenEndedUntil is used as the upper bound then.
type Coverage struct {
	Begin time.Time
	End   time.Time
}

// OpenEndedUntil caps the coverage of missions that are still operating.
var OpenEndedUntil = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func mkdate(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// Estimated based on the NOAA L1B archive.
var timeCoverage = map[string]Coverage{
	"METOP-A": {mkdate(2007, 6, 28, 23, 14), time.Time{}},
	"METOP-B": {mkdate(2013, 1, 1, 1, 1), time.Time{}},
	"NOAA-6":  {mkdate(1980, 1, 1, 0, 0), mkdate(1982, 8, 3, 0, 39)},
	"NOAA-7":  {mkdate(1981, 8, 24, 0, 13), mkdate(1985, 2, 1, 22, 21)},
	"NOAA-8":  {mkdate(1983, 5, 4, 19, 9), mkdate(1985, 10, 14, 3, 26)},
	"NOAA-9":  {mkdate(1985, 2, 25, 0, 13), mkdate(1988, 11, 7, 21, 18)},
	"NOAA-10": {mkdate(1986, 11, 17, 1, 22), mkdate(1991, 9, 16, 21, 19)},
	"NOAA-11": {mkdate(1988, 11, 8, 0, 16), mkdate(1994, 10, 16, 23, 27)},
	"NOAA-12": {mkdate(1991, 9, 16, 0, 17), mkdate(1998, 12, 14, 20, 43)},
	"NOAA-14": {mkdate(1995, 1, 20, 0, 37), mkdate(2002, 10, 7, 22, 47)},
	"NOAA-15": {mkdate(1998, 10, 26, 0, 54), time.Time{}},
	"NOAA-16": {mkdate(2001, 1, 1, 0, 0), mkdate(2011, 12, 31, 23, 40)},
	"NOAA-17": {mkdate(2002, 6, 25, 5, 41), mkdate(2011, 12, 31, 19, 11)},
	"NOAA-18": {mkdate(2005, 5, 20, 18, 17), time.Time{}},
	"NOAA-19": {mkdate(2009, 2, 6, 18, 32), time.Time{}},
	"TIROS-N": {mkdate(1978, 11, 5, 9, 8), mkdate(1980, 1, 30, 17, 3)},
}

// PlatformCoverage returns the temporal coverage of the given platform.
// Open-ended missions get OpenEndedUntil as their upper bound.
func PlatformCoverage(platform string) (Coverage, error) {
	cov, ok := timeCoverage[platform]
	if !ok {
		return Coverage{}, fmt.Errorf("unknown platform: %q", platform)
	}
	if cov.End.IsZero() {
		cov.End = OpenEndedUntil
	}
	return cov, nil
}

// NormalizePlatform extracts the platform short name from an attribute
// value.  The level 1c files carry WMO-style values like
// "NOAA 19 > NOAA-19"; the last ">"-separated element, trimmed, is the
// name used throughout.
func NormalizePlatform(attr string) string {
	parts := strings.Split(attr, ">")
	return strings.TrimSpace(parts[len(parts)-1])
}

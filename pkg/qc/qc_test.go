package qc_test

import (
	"testing"
	"time"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pytroll/fdrtool/pkg/granule"
	"github.com/pytroll/fdrtool/pkg/qc"
	"github.com/pytroll/fdrtool/pkg/testutil"
)

// byFilename indexes collected records for easy assertions.
func byFilename(t *testing.T, records []granule.Metadata) map[string]granule.Metadata {
	t.Helper()
	ret := make(map[string]granule.Metadata, len(records))
	for _, md := range records {
		require.NotContains(t, ret, md.Filename)
		ret[md.Filename] = md
	}
	return ret
}

func TestCollectFlagsAndOverlap(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	dir := t.TempDir()

	t0 := time.Date(2009, 7, 1, 0, 0, 0, 0, time.UTC)
	lineStep := 500 * time.Millisecond

	// A healthy one-hour granule.
	fullA := testutil.WriteGranule(t, dir, "a.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0, Lines: 7200, LineStep: lineStep,
	})
	// Entirely covered by a.
	insideA := testutil.WriteGranule(t, dir, "b.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0.Add(30 * time.Minute), Lines: 1200, LineStep: lineStep,
	})
	// A second healthy granule, no overlap with a.
	fullC := testutil.WriteGranule(t, dir, "c.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0.Add(70 * time.Minute), Lines: 7200, LineStep: lineStep,
	})
	// Same measurement as c, received by another ground station.
	stationDupl := testutil.WriteGranule(t, dir, "d.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0.Add(70 * time.Minute), Lines: 7200, LineStep: lineStep,
	})
	// Not enough scanlines.
	short := testutil.WriteGranule(t, dir, "e.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0.Add(140 * time.Minute), Lines: 10, LineStep: lineStep,
	})
	// Corrupted last timestamp: unrealistically long duration.
	long := testutil.WriteGranule(t, dir, "f.json", testutil.GranuleSpec{
		Platform: "NOAA-19",
		Times: []time.Time{
			t0.Add(150 * time.Minute),
			t0.Add(280 * time.Minute),
		},
	})
	// Before the start of the NOAA-19 mission.
	outOfRange := testutil.WriteGranule(t, dir, "g.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC),
		Lines: 7200, LineStep: lineStep,
	})

	records, err := qc.NewCollector().Collect(ctx, []string{
		fullA, insideA, fullC, stationDupl, short, long, outOfRange,
	})
	require.NoError(t, err)
	require.Len(t, records, 7)

	// Sorted by (start_time, end_time).
	assert.Equal(t, outOfRange, records[0].Filename)
	assert.Equal(t, fullA, records[1].Filename)

	mds := byFilename(t, records)
	assert.Equal(t, granule.FlagOK, mds[fullA].QualityFlag)
	assert.Equal(t, granule.FlagRedundant, mds[insideA].QualityFlag)
	assert.Equal(t, granule.FlagOK, mds[fullC].QualityFlag)
	assert.Equal(t, granule.FlagDuplicate, mds[stationDupl].QualityFlag)
	assert.Equal(t, granule.FlagTooShort, mds[short].QualityFlag)
	assert.Equal(t, granule.FlagTooLong, mds[long].QualityFlag)
	assert.Equal(t, granule.FlagInvalidTimestamp, mds[outOfRange].QualityFlag)

	// Overlap is only computed for the ok files (a and c), which don't
	// overlap each other.
	require.NotNil(t, mds[fullA].OverlapFreeStart)
	assert.Equal(t, 0, *mds[fullA].OverlapFreeStart)
	require.NotNil(t, mds[fullA].OverlapFreeEnd)
	assert.Equal(t, 7199, *mds[fullA].OverlapFreeEnd)
	require.NotNil(t, mds[fullC].OverlapFreeStart)
	assert.Equal(t, 0, *mds[fullC].OverlapFreeStart)
	require.NotNil(t, mds[fullC].OverlapFreeEnd)
	assert.Equal(t, 7199, *mds[fullC].OverlapFreeEnd)

	assert.Nil(t, mds[insideA].OverlapFreeStart)
	assert.Nil(t, mds[insideA].OverlapFreeEnd)
}

func TestCollectOverlappingNeighbours(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	dir := t.TempDir()

	t0 := time.Date(2009, 7, 1, 10, 0, 0, 0, time.UTC)
	lineStep := 500 * time.Millisecond

	// Three consecutive granules, each overlapping its successor by 100
	// scanlines.
	g1 := testutil.WriteGranule(t, dir, "g1.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0, Lines: 3600, LineStep: lineStep,
	})
	g2 := testutil.WriteGranule(t, dir, "g2.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0.Add(3500 * lineStep), Lines: 3600, LineStep: lineStep,
	})
	g3 := testutil.WriteGranule(t, dir, "g3.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: t0.Add(7000 * lineStep), Lines: 3600, LineStep: lineStep,
	})

	records, err := qc.NewCollector().Collect(ctx, []string{g1, g2, g3})
	require.NoError(t, err)

	md := func(filename string, start time.Time, overlapFreeStart, overlapFreeEnd int) granule.Metadata {
		return granule.Metadata{
			Platform:         "NOAA-19",
			StartTime:        start,
			EndTime:          start.Add(3599 * lineStep),
			AlongTrack:       3600,
			Filename:         filename,
			OverlapFreeStart: &overlapFreeStart,
			OverlapFreeEnd:   &overlapFreeEnd,
			QualityFlag:      granule.FlagOK,
		}
	}
	testutil.AssertEqualMetadata(t, []granule.Metadata{
		md(g1, t0, 0, 3499),
		md(g2, t0.Add(3500*lineStep), 100, 3499),
		md(g3, t0.Add(7000*lineStep), 100, 3599),
	}, records)
}

func TestCollectOpenEnd(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	dir := t.TempDir()

	filename := testutil.WriteGranule(t, dir, "g.json", testutil.GranuleSpec{
		Platform: "NOAA-19",
		Start:    time.Date(2009, 7, 1, 10, 0, 0, 0, time.UTC),
		Lines:    3600, LineStep: 500 * time.Millisecond,
	})

	collector := qc.NewCollector()
	collector.OpenEnd = true
	records, err := collector.Collect(ctx, []string{filename})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The subsequent file isn't known yet, so overlap_free_end stays
	// unset.
	assert.Equal(t, 0, *records[0].OverlapFreeStart)
	assert.Nil(t, records[0].OverlapFreeEnd)
}

func TestCollectMidnightLine(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	dir := t.TempDir()

	filename := testutil.WriteGranule(t, dir, "g.json", testutil.GranuleSpec{
		Platform: "NOAA-19",
		Start:    time.Date(2009, 7, 1, 23, 59, 0, 0, time.UTC),
		Lines:    1200, LineStep: time.Second,
	})

	records, err := qc.NewCollector().Collect(ctx, []string{filename})
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Scanline 59 is the last one of 2009-07-01; the date changes with
	// scanline 60.
	require.NotNil(t, records[0].MidnightLine)
	assert.Equal(t, 59, *records[0].MidnightLine)
}

func TestCollectEquatorCrossing(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	dir := t.TempDir()

	start := time.Date(2009, 7, 1, 10, 0, 0, 0, time.UTC)
	southbound := func(line int) float64 { return 5 - 0.01*float64(line) }
	northbound := func(line int) float64 { return -5 + 0.01*float64(line) }
	lon := func(line int) float64 { return 100 + 0.001*float64(line) }

	ascending := testutil.WriteGranule(t, dir, "asc.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: start, Lines: 1200, LineStep: time.Second,
		Lat: northbound, Lon: lon,
	})
	descending := testutil.WriteGranule(t, dir, "desc.json", testutil.GranuleSpec{
		Platform: "NOAA-19", Start: start.Add(30 * time.Minute), Lines: 1200, LineStep: time.Second,
		Lat: southbound, Lon: lon,
	})

	records, err := qc.NewCollector().Collect(ctx, []string{ascending, descending})
	require.NoError(t, err)
	mds := byFilename(t, records)

	// Northbound crossing: latitude -0.01 at scanline 499, 0 at 500.
	asc := mds[ascending]
	require.NotNil(t, asc.EquatorCrossingLon)
	assert.InDelta(t, 100.499, *asc.EquatorCrossingLon, 1e-9)
	require.NotNil(t, asc.EquatorCrossingTime)
	assert.Equal(t, start.Add(499*time.Second), *asc.EquatorCrossingTime)

	// A descending pass has no ascending-node crossing.
	desc := mds[descending]
	assert.Nil(t, desc.EquatorCrossingLon)
	assert.Nil(t, desc.EquatorCrossingTime)
}

func TestCollectUnknownPlatform(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	dir := t.TempDir()

	filename := testutil.WriteGranule(t, dir, "g.json", testutil.GranuleSpec{
		Platform: "SENTINEL-3A",
		Start:    time.Date(2019, 7, 1, 10, 0, 0, 0, time.UTC),
		Lines:    3600, LineStep: 500 * time.Millisecond,
	})

	_, err := qc.NewCollector().Collect(ctx, []string{filename})
	assert.EqualError(t, err, `unknown platform: "SENTINEL-3A"`)
}

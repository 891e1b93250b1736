package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/pytroll/fdrtool/pkg/granule"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// DumpMetadata renders metadata records in a stable, diffable form.
func DumpMetadata(records []granule.Metadata) string {
	return spewConfig.Sdump(records)
}

// AssertEqualMetadata compares two metadata slices and reports a unified
// diff on mismatch.
func AssertEqualMetadata(t *testing.T, exp, act []granule.Metadata) bool {
	t.Helper()

	expStr := DumpMetadata(exp)
	actStr := DumpMetadata(act)
	if expStr == actStr {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expStr),
		B:        difflib.SplitLines(actStr),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})
	t.Errorf("Metadata diff:\n%s", diff)
	return false
}

package gemmbitserial

import "testing"

// AllocContextOrFail allocates a GEMMContext and fails the test if the
// shape or precision is rejected.
func AllocContextOrFail(t testing.TB, lhsRows, depth, rhsRows uint64, lhsBits, rhsBits int, lhsSigned, rhsSigned bool) *GEMMContext {
	t.Helper()
	ctx, err := AllocContext(lhsRows, depth, rhsRows, lhsBits, rhsBits, lhsSigned, rhsSigned)
	if err != nil {
		t.Fatalf("AllocContext(%d, %d, %d, %d, %d, %v, %v) failed: %v",
			lhsRows, depth, rhsRows, lhsBits, rhsBits, lhsSigned, rhsSigned, err)
	}
	return ctx
}

// requireEqualInt32 fails the test with a diff-style message if got and
// want disagree anywhere.
func requireEqualInt32(t testing.TB, got, want []int32, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch got=%d want=%d", msg, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: index %d: got %d, want %d", msg, i, got[i], want[i])
		}
	}
}

package gemmbitserial

import (
	"strings"
	"testing"
)

func TestAlignUp(t *testing.T) {
	cases := []struct{ in, af, want uint64 }{
		{0, 64, 0},
		{1, 64, 64},
		{64, 64, 64},
		{65, 64, 128},
		{3, 2, 4},
	}
	for _, c := range cases {
		if got := alignUp(c.in, c.af); got != c.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", c.in, c.af, got, c.want)
		}
	}
}

func TestAllocBitSerialMatrixPadsColsTo64(t *testing.T) {
	m := allocBitSerialMatrix(2, 3, 5, false, 1, 64)
	if m.NColsA != 64 {
		t.Fatalf("NColsA = %d, want 64", m.NColsA)
	}
	if m.NRowsA != 3 {
		t.Fatalf("NRowsA = %d, want 3", m.NRowsA)
	}
	if len(m.Data) != 2*3*1 {
		t.Fatalf("len(Data) = %d, want %d", len(m.Data), 2*3*1)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	src := []uint8{
		0, 1, 2, 3,
		4, 5, 6, 7,
		1, 1, 1, 1,
	}
	m := allocBitSerialMatrix(3, 3, 4, false, 1, 64)
	m.Import(src, false)

	dst := make([]uint8, len(src))
	m.Export(dst)

	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("round trip mismatch at %d: got %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestImportColMajor(t *testing.T) {
	// 2x2 matrix, column-major source [a00 a10 a01 a11]
	src := []uint8{1, 2, 3, 4}
	m := allocBitSerialMatrix(3, 2, 2, false, 1, 64)
	m.Import(src, true)

	dst := make([]uint8, 4)
	m.Export(dst)
	want := []uint8{1, 3, 2, 4}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("col-major import mismatch at %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestAlignmentPaddingIsZero(t *testing.T) {
	m := allocBitSerialMatrix(2, 3, 5, false, 1, 64)
	m.Import([]uint8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, false)

	for b := 0; b < m.NBits; b++ {
		for r := 0; r < m.NRowsA; r++ {
			for c := 0; c < m.NColsA; c++ {
				if r < m.NRows && c < m.NCols {
					continue
				}
				if m.Get(b, r, c) {
					t.Fatalf("padding bit set at (%d,%d,%d)", b, r, c)
				}
			}
		}
	}
}

func TestBipolar(t *testing.T) {
	m := allocBitSerialMatrix(1, 1, 64, true, 1, 64)
	if !m.Bipolar() {
		t.Fatal("1-bit signed matrix should be bipolar")
	}
	m2 := allocBitSerialMatrix(1, 1, 64, false, 1, 64)
	if m2.Bipolar() {
		t.Fatal("1-bit unsigned matrix should not be bipolar")
	}
	m3 := allocBitSerialMatrix(2, 1, 64, true, 1, 64)
	if m3.Bipolar() {
		t.Fatal("2-bit signed matrix should not be bipolar")
	}
}

func TestSetGetClearAll(t *testing.T) {
	m := allocBitSerialMatrix(1, 2, 128, false, 1, 64)
	m.Set(0, 0, 0)
	m.Set(0, 1, 127)
	if !m.Get(0, 0, 0) || !m.Get(0, 1, 127) {
		t.Fatal("expected bits to be set")
	}
	m.ClearAll()
	if m.Get(0, 0, 0) || m.Get(0, 1, 127) {
		t.Fatal("expected ClearAll to zero all bits")
	}
}

func TestBitSerialMatrixString(t *testing.T) {
	m := allocBitSerialMatrix(3, 5, 70, true, 1, 64)
	s := m.String()
	for _, want := range []string{"bits: 3", "signed: true", "5x70", "5x128"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestImportIntsTruncates(t *testing.T) {
	m := allocBitSerialMatrix(8, 1, 1, false, 1, 64)
	m.ImportInts([]int{300}, false) // 300 truncates to 44 (0b00101100)
	dst := make([]int, 1)
	m.ExportInts(dst)
	if dst[0] != 300%256 {
		t.Errorf("ImportInts/ExportInts truncation mismatch: got %d, want %d", dst[0], 300%256)
	}
}

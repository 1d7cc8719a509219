package gemmbitserial

import "math/bits"

// binaryTileLHS, binaryTileDepth, binaryTileRHS are the fixed register
// tile dimensions the chunk kernel below unrolls: two LHS rows, one word
// of depth, two RHS rows per inner iteration.
const (
	binaryTileLHS   = 2
	binaryTileDepth = 1
	binaryTileRHS   = 2
)

// gemmBinaryChunk multiplies one lhsBlock x rhsBlock tile of two binary
// (single bit-plane) matrices starting at row bLHS in a and bRHS in bt,
// accumulating alpha*popcount(AND) into the transposed result ct. a and bt
// are row-major, depthWords words per row; ct is rhsRowsOrig x lhsRowsOrig,
// ct[c*lhsRowsOrig+r] accumulating the (r, c) product.
//
// lhsRowsOrig and rhsRowsOrig are the real (unpadded) row counts: writes
// past them land in alignment padding and are skipped, since the padding
// region of ct has no corresponding storage.
func gemmBinaryChunk(a, bt []uint64, ct []int32, alpha int32, depthWords uint64, bLHS, bRHS, lhsBlock, rhsBlock, lhsRowsOrig, rhsRowsOrig uint64) {
	for rRHS := bRHS; rRHS < bRHS+rhsBlock; rRHS += binaryTileRHS {
		btPtr := bt[rRHS*depthWords:]
		for rLHS := bLHS; rLHS < bLHS+lhsBlock; rLHS += binaryTileLHS {
			aPtr := a[rLHS*depthWords:]

			var acc [binaryTileLHS * binaryTileRHS]int32
			for d := uint64(0); d < depthWords; d += binaryTileDepth {
				a0 := aPtr[d]
				a1 := aPtr[d+depthWords]
				b0 := btPtr[d]
				b1 := btPtr[d+depthWords]
				acc[0] += int32(bits.OnesCount64(a0 & b0))
				acc[1] += int32(bits.OnesCount64(a0 & b1))
				acc[2] += int32(bits.OnesCount64(a1 & b0))
				acc[3] += int32(bits.OnesCount64(a1 & b1))
			}

			for at := uint64(0); at < binaryTileLHS; at++ {
				for bt2 := uint64(0); bt2 < binaryTileRHS; bt2++ {
					if rRHS+bt2 < rhsRowsOrig && rLHS+at < lhsRowsOrig {
						ct[(rRHS+bt2)*lhsRowsOrig+(rLHS+at)] += acc[at*binaryTileRHS+bt2] * alpha
					}
				}
			}
		}
	}
}

// gemmBinaryL1 computes ct += alpha * popcount(AND(a, bt)) over the
// lhsRows x rhsRows binary product starting at RHS row rhsRowStart,
// cache-blocked by lhsBlock/rhsBlock and register-tiled within each block
// via gemmBinaryChunk. lhsRows and rhsRows bound the row range processed
// (both allocated, padded counts) and must be divisible by lhsBlock and
// rhsBlock respectively; lhsRowsOrig/rhsRowsOrig are the real row counts,
// used globally (not relative to rhsRowStart) to mask out padding
// contributions. rhsRowStart lets callers partition the RHS row range
// across independent calls that write disjoint regions of ct.
func gemmBinaryL1(a, bt []uint64, ct []int32, alpha int32, depthWords, lhsRows, rhsRows, lhsRowsOrig, rhsRowsOrig, lhsBlock, rhsBlock, rhsRowStart uint64) {
	if rhsRows%rhsBlock != 0 || lhsRows%lhsBlock != 0 {
		panic("gemmbitserial: block size does not divide allocated row count")
	}
	if lhsBlock%binaryTileLHS != 0 || rhsBlock%binaryTileRHS != 0 {
		panic("gemmbitserial: block size is not a multiple of the register tile")
	}

	for bRHS := rhsRowStart; bRHS < rhsRowStart+rhsRows; bRHS += rhsBlock {
		for bLHS := uint64(0); bLHS < lhsRows; bLHS += lhsBlock {
			gemmBinaryChunk(a, bt, ct, alpha, depthWords, bLHS, bRHS, lhsBlock, rhsBlock, lhsRowsOrig, rhsRowsOrig)
		}
	}
}

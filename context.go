package gemmbitserial

import "fmt"

// GEMMContext owns a pair of bit-packed operands, their chosen block
// sizes, and the transposed result buffer for one bit-serial GEMM. It is
// produced by AllocContext and must be released with Free exactly once.
//
// The result convention follows the transposed-RHS/transposed-output
// layout used throughout this package: Res is laid out [rhs row][lhs row],
// i.e. Res[c*lhs.NRows+r] holds the product of lhs row r with rhs row c.
type GEMMContext struct {
	LHS, RHS *BitSerialMatrix

	lhsBlock, rhsBlock uint64

	// Res holds the int32 accumulator, rhs.NRows-by-lhs.NRows, transposed
	// relative to conventional row-major C = A*B output.
	Res []int32

	freed bool
}

// AllocContext allocates a GEMMContext ready to multiply an lhsRows x depth
// operand by a depth x rhsRows operand (rhs given row-major, i.e. already
// transposed relative to conventional B). lhsBits/rhsBits give each
// operand's bit precision and lhsSigned/rhsSigned whether its most
// significant bit-plane carries negative weight.
//
// Returns ErrInvalidRows if a row count or depth is zero, and ErrInvalidBits
// if a precision is outside 1..64 (both of type ErrTypeInvalidArg).
func AllocContext(lhsRows, depth, rhsRows uint64, lhsBits, rhsBits int, lhsSigned, rhsSigned bool) (*GEMMContext, error) {
	if lhsRows == 0 || rhsRows == 0 || depth == 0 {
		return nil, ErrInvalidRows
	}
	if lhsBits < 1 || lhsBits > 64 || rhsBits < 1 || rhsBits > 64 {
		return nil, ErrInvalidBits
	}

	features := DetectedCPUFeatures()
	cacheBits := defaultCacheBits(features)

	depthWords := alignUp(depth, DefaultRegBlockDepth*BitsPerWord) / BitsPerWord
	lhsBlock, rhsBlock := planBlocks(lhsRows, depthWords, rhsRows, DefaultRegBlockLHS, DefaultRegBlockRHS, cacheBits)

	colAlign := uint64(DefaultRegBlockDepth) * BitsPerWord
	lhs := allocBitSerialMatrix(lhsBits, int(lhsRows), int(depth), lhsSigned, lhsBlock, colAlign)
	rhs := allocBitSerialMatrix(rhsBits, int(rhsRows), int(depth), rhsSigned, rhsBlock, colAlign)

	return &GEMMContext{
		LHS:      lhs,
		RHS:      rhs,
		lhsBlock: lhsBlock,
		rhsBlock: rhsBlock,
		Res:      make([]int32, lhsRows*rhsRows),
	}, nil
}

// String reports ctx's operand shapes, chosen block sizes, and the
// fraction of allocated (padded) multiply-accumulate work that is real
// versus alignment padding.
func (ctx *GEMMContext) String() string {
	actualOps := 2 * float64(ctx.LHS.NRows) * float64(ctx.LHS.NCols) * float64(ctx.RHS.NRows)
	allocOps := 2 * float64(ctx.LHS.NRowsA) * float64(ctx.LHS.NColsA) * float64(ctx.RHS.NRowsA)
	pct := 100.0
	if allocOps > 0 {
		pct = 100 * actualOps / allocOps
	}
	return fmt.Sprintf("GEMMContext{lhs: %s, lhsBlock: %d, rhs: %s, rhsBlock: %d, actualOps: %.0f, allocatedOps: %.0f, utilization: %.1f%%}",
		ctx.LHS, ctx.lhsBlock, ctx.RHS, ctx.rhsBlock, actualOps, allocOps, pct)
}

// Free releases ctx's buffers. Calling Free more than once, or using ctx
// after Free, panics: a GEMMContext has single-owner lifetime.
func (ctx *GEMMContext) Free() {
	if ctx.freed {
		panic("gemmbitserial: GEMMContext double free")
	}
	ctx.freed = true
	ctx.LHS = nil
	ctx.RHS = nil
	ctx.Res = nil
}

// checkNotFreed panics if ctx has already been freed; called at the top of
// every operation that touches ctx's buffers.
func (ctx *GEMMContext) checkNotFreed(op string) {
	if ctx.freed {
		panic("gemmbitserial: use of GEMMContext after Free in " + op)
	}
}

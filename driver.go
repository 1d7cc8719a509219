package gemmbitserial

// Multiply runs the bit-serial GEMM for ctx, filling ctx.Res. lhs and rhs
// must share the same logical depth (checked by AllocContext's shape, not
// here); the result is produced transposed, Res[c*lhs.NRows+r] holding the
// product of lhs row r against rhs row c.
//
// Multiply supports the bipolar ({-1,+1}, single-bit signed) encoding on
// either or both operands. When exactly one operand is bipolar, or both
// are, the accumulator is seeded from the non-bit-serial algebraic
// identity for that combination (see prepareAccumulators) before the
// normal bit-plane loop runs.
func (ctx *GEMMContext) Multiply() {
	ctx.checkNotFreed("Multiply")
	prepareAccumulators(ctx)

	lhsBipolar := ctx.LHS.Bipolar()
	rhsBipolar := ctx.RHS.Bipolar()
	multiplier := int32(1)
	if lhsBipolar {
		multiplier *= 2
	}
	if rhsBipolar {
		multiplier *= 2
	}

	lhsEffSigned := ctx.LHS.Signed && !lhsBipolar
	rhsEffSigned := ctx.RHS.Signed && !rhsBipolar

	for lbit := 0; lbit < ctx.LHS.NBits; lbit++ {
		negLHS := lhsEffSigned && lbit == ctx.LHS.NBits-1
		for rbit := 0; rbit < ctx.RHS.NBits; rbit++ {
			negRHS := rhsEffSigned && rbit == ctx.RHS.NBits-1
			neg := negLHS != negRHS

			shift := int32(1) << uint(lbit+rbit)
			alpha := shift * multiplier
			if neg {
				alpha = -alpha
			}

			gemmBinaryL1(
				ctx.LHS.PlaneWords(lbit), ctx.RHS.PlaneWords(rbit), ctx.Res, alpha,
				uint64(ctx.LHS.wordsPerRow()),
				uint64(ctx.LHS.NRowsA), uint64(ctx.RHS.NRowsA),
				uint64(ctx.LHS.NRows), uint64(ctx.RHS.NRows),
				ctx.lhsBlock, ctx.rhsBlock, 0,
			)
		}
	}
}

// prepareAccumulators seeds ctx.Res before the bit-plane loop runs.
//
// When neither operand is bipolar, Res starts at zero: the bit-plane loop
// alone reconstructs the product.
//
// When exactly one operand is bipolar, the bipolar value at depth index k
// is 2*bit(k)-1, so splitting the dot product gives
//
//	sum_k (2*bit_L(k)-1) * rhsVal(k) = 2*sum_k bit_L(k)*rhsVal(k) - sum_k rhsVal(k)
//
// (symmetric if it's the RHS operand that's bipolar). The bit-plane loop
// computes the first term once its sign handling is suppressed for the
// bipolar side (see lhsEffSigned/rhsEffSigned in Multiply) and scaled by
// multiplier=2; prepareAccumulators seeds Res with the constant second
// term, -RowSums of the non-bipolar operand, broadcast across the other
// operand's rows.
//
// When both operands are bipolar, expanding (2*bL-1)*(2*bR-1) gives
//
//	4*bL*bR - 2*bL - 2*bR + 1
//
// summed over depth: 4*popcount(AND(bL,bR)) - 2*popcount(bL) - 2*popcount(bR) + depth.
// The bit-plane loop (lbit=rbit=0, multiplier=4) computes the first term;
// prepareAccumulators seeds Res with the remaining three, using the raw
// (unsigned) per-row popcounts rather than RowSums, since RowSums reports
// a bipolar row's {-1,+1} sum as -popcount, not popcount.
func prepareAccumulators(ctx *GEMMContext) {
	for i := range ctx.Res {
		ctx.Res[i] = 0
	}

	lhsBipolar := ctx.LHS.Bipolar()
	rhsBipolar := ctx.RHS.Bipolar()
	lhsRows := ctx.LHS.NRows
	rhsRows := ctx.RHS.NRows

	switch {
	case !lhsBipolar && !rhsBipolar:
		return

	case lhsBipolar && !rhsBipolar:
		rhsSums := RowSums(ctx.RHS)
		for c := 0; c < rhsRows; c++ {
			base := -rhsSums[c]
			for r := 0; r < lhsRows; r++ {
				ctx.Res[c*lhsRows+r] = base
			}
		}

	case !lhsBipolar && rhsBipolar:
		lhsSums := RowSums(ctx.LHS)
		for r := 0; r < lhsRows; r++ {
			base := -lhsSums[r]
			for c := 0; c < rhsRows; c++ {
				ctx.Res[c*lhsRows+r] = base
			}
		}

	default: // both bipolar
		depth := int32(ctx.LHS.NCols)
		lhsPop := make([]int32, lhsRows)
		for r := 0; r < lhsRows; r++ {
			lhsPop[r] = int32(popcountRow(ctx.LHS, 0, r))
		}
		rhsPop := make([]int32, rhsRows)
		for c := 0; c < rhsRows; c++ {
			rhsPop[c] = int32(popcountRow(ctx.RHS, 0, c))
		}
		for c := 0; c < rhsRows; c++ {
			for r := 0; r < lhsRows; r++ {
				ctx.Res[c*lhsRows+r] = -2*lhsPop[r] - 2*rhsPop[c] + depth
			}
		}
	}
}

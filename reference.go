package gemmbitserial

// MultiplyNaive computes the same transposed product as Multiply, without
// cache or register blocking. It exists to check the blocked kernel
// against a simpler, obviously-correct implementation, and is not sized
// for performance.
func MultiplyNaive(ctx *GEMMContext) {
	ctx.checkNotFreed("MultiplyNaive")

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

	depthWords := ctx.LHS.wordsPerRow()
	lhsRows := ctx.LHS.NRows
	rhsRows := ctx.RHS.NRows

	var lhsSums, rhsSums []int32
	if lhsBipolar && !rhsBipolar {
		rhsSums = RowSums(ctx.RHS)
	}
	if rhsBipolar && !lhsBipolar {
		lhsSums = RowSums(ctx.LHS)
	}

	for c := 0; c < rhsRows; c++ {
		for r := 0; r < lhsRows; r++ {
			var rowres int32
			for lbit := 0; lbit < ctx.LHS.NBits; lbit++ {
				negLHS := lhsEffSigned && lbit == ctx.LHS.NBits-1
				lrow := ctx.LHS.RowWords(lbit, r)
				for rbit := 0; rbit < ctx.RHS.NBits; rbit++ {
					negRHS := rhsEffSigned && rbit == ctx.RHS.NBits-1
					rrow := ctx.RHS.RowWords(rbit, c)

					var andcard int32
					for k := 0; k < depthWords; k++ {
						andcard += int32(popcountWord(lrow[k] & rrow[k]))
					}
					andcard = (andcard << uint(lbit+rbit)) * multiplier
					if negLHS != negRHS {
						andcard = -andcard
					}
					rowres += andcard
				}
			}
			switch {
			case lhsBipolar && !rhsBipolar:
				rowres -= rhsSums[c]
			case rhsBipolar && !lhsBipolar:
				rowres -= lhsSums[r]
			case lhsBipolar && rhsBipolar:
				rowres += -2*int32(popcountRow(ctx.LHS, 0, r)) - 2*int32(popcountRow(ctx.RHS, 0, c)) + int32(ctx.LHS.NCols)
			}
			ctx.Res[c*lhsRows+r] = rowres
		}
	}
}

func popcountWord(w uint64) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}
	return n
}

package gemmbitserial

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MultiplyParallel runs Multiply's bit-plane loop with the RHS operand
// partitioned into disjoint row blocks distributed across goroutines. The
// kernel is stateless apart from the caller-owned buffers it's given, and
// distinct RHS row ranges write disjoint slices of Res, so no
// synchronization is needed between workers beyond the final join -- this
// is exactly the safe partition the design calls out: distinct output
// tiles do not alias.
//
// workers bounds concurrency; a value <= 0 defaults to runtime.GOMAXPROCS(0).
// parent controls cancellation of the worker pool.
func (ctx *GEMMContext) MultiplyParallel(parent context.Context, workers int) error {
	ctx.checkNotFreed("MultiplyParallel")
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

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

	partitions := partitionRHSBlocks(uint64(ctx.RHS.NRowsA), ctx.rhsBlock, workers)
	rhsRowsOrig := uint64(ctx.RHS.NRows)
	lhsRowsOrig := uint64(ctx.LHS.NRows)
	depthWords := uint64(ctx.LHS.wordsPerRow())

	g, gctx := errgroup.WithContext(parent)
	g.SetLimit(workers)

	for _, part := range partitions {
		part := part
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
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
						depthWords,
						uint64(ctx.LHS.NRowsA), part.rows,
						lhsRowsOrig, rhsRowsOrig,
						ctx.lhsBlock, ctx.rhsBlock, part.start,
					)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// rhsPartition is a contiguous, whole-block range of allocated RHS rows:
// [start, start+rows).
type rhsPartition struct {
	start uint64
	rows  uint64
}

// partitionRHSBlocks splits nRowsA allocated RHS rows into at most workers
// contiguous ranges, each a whole number of rhsBlock-sized blocks so that
// gemmBinaryL1's "block divides row count" precondition holds within each
// range independently.
func partitionRHSBlocks(nRowsA, rhsBlock uint64, workers int) []rhsPartition {
	totalBlocks := nRowsA / rhsBlock
	if totalBlocks <= 1 {
		return []rhsPartition{{start: 0, rows: nRowsA}}
	}
	if uint64(workers) > totalBlocks {
		workers = int(totalBlocks)
	}

	blocksPerWorker := totalBlocks / uint64(workers)
	remainder := totalBlocks % uint64(workers)

	partitions := make([]rhsPartition, 0, workers)
	var blockOffset uint64
	for w := 0; w < workers; w++ {
		nBlocks := blocksPerWorker
		if uint64(w) < remainder {
			nBlocks++
		}
		if nBlocks == 0 {
			continue
		}
		partitions = append(partitions, rhsPartition{
			start: blockOffset * rhsBlock,
			rows:  nBlocks * rhsBlock,
		})
		blockOffset += nBlocks
	}
	return partitions
}

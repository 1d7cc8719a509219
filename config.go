// Package gemmbitserial configuration constants
package gemmbitserial

// Word geometry. All bit-plane storage is addressed in units of 64-bit words.
const (
	// BitsPerWord is the number of bits in one storage word.
	BitsPerWord = 64
)

// Generic backend register tiling: a 2x1x2 register tile (two LHS rows,
// one word of depth, two RHS rows) processed per inner-loop iteration.
const (
	// DefaultRegBlockLHS is the LHS row register tile multiple.
	DefaultRegBlockLHS = 2

	// DefaultRegBlockDepth is the depth register tile, in 64-bit words.
	DefaultRegBlockDepth = 1

	// DefaultRegBlockRHS is the RHS row register tile multiple.
	DefaultRegBlockRHS = 2

	// DefaultCacheBits is the target L1 working-set budget the block
	// planner sizes cache blocks against: 32KiB, expressed in bits.
	DefaultCacheBits = 32 * 1024 * 8
)

// fineTuneWastePct is the alignment-padding threshold (fraction of the row
// count) above which the block planner's fine-tune search kicks in.
const fineTuneWastePct = 0.1

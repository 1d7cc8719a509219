package gemmbitserial

// CPUFeatures records the instruction-set extensions available on the
// current host that the block planner consults when picking a cache
// budget. Actual bit-plane arithmetic always goes through the generic
// scalar popcount path; architecture-specific vector backends are a
// separate concern (see the binary kernel interface in the design notes).
type CPUFeatures struct {
	HasPOPCNT bool // hardware population count instruction available
	HasAVX2   bool // 256-bit integer AND lanes (x86)
	HasNEON   bool // 128-bit integer AND lanes (ARM64)
}

var detectedFeatures = detectCPUFeatures()

// DetectedCPUFeatures returns the CPU features detected for this process.
// The result is fixed at program start and does not change at runtime.
func DetectedCPUFeatures() CPUFeatures {
	return detectedFeatures
}

// defaultCacheBits picks the block planner's cache budget for the
// detected host. Wider AND lanes let a single popcount pass usefully
// stream a larger working set, so we widen the budget from the
// conservative L1 default toward an L2-sized one when available.
func defaultCacheBits(f CPUFeatures) uint64 {
	if f.HasAVX2 || f.HasNEON {
		return 256 * 1024 * 8
	}
	return DefaultCacheBits
}

//go:build arm64

package gemmbitserial

import "golang.org/x/sys/cpu"

func detectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		// ARMv8 mandates NEON; CNT gives a fast vector population count
		// even though there is no dedicated scalar popcount instruction.
		HasPOPCNT: cpu.ARM64.HasASIMD,
		HasNEON:   cpu.ARM64.HasASIMD,
	}
}

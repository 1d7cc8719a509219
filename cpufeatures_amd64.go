//go:build amd64

package gemmbitserial

import "golang.org/x/sys/cpu"

func detectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		HasPOPCNT: cpu.X86.HasPOPCNT,
		HasAVX2:   cpu.X86.HasAVX2,
	}
}

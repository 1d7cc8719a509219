//go:build !amd64 && !arm64

package gemmbitserial

func detectCPUFeatures() CPUFeatures {
	return CPUFeatures{}
}

package gemmbitserial

import "testing"

func TestDetectedCPUFeaturesStable(t *testing.T) {
	a := DetectedCPUFeatures()
	b := DetectedCPUFeatures()
	if a != b {
		t.Errorf("DetectedCPUFeatures() is not stable across calls: %+v vs %+v", a, b)
	}
}

func TestDefaultCacheBits(t *testing.T) {
	if got := defaultCacheBits(CPUFeatures{}); got != DefaultCacheBits {
		t.Errorf("defaultCacheBits(no features) = %d, want %d", got, DefaultCacheBits)
	}
	if got := defaultCacheBits(CPUFeatures{HasAVX2: true}); got <= DefaultCacheBits {
		t.Errorf("defaultCacheBits(AVX2) = %d, want > %d", got, DefaultCacheBits)
	}
	if got := defaultCacheBits(CPUFeatures{HasNEON: true}); got <= DefaultCacheBits {
		t.Errorf("defaultCacheBits(NEON) = %d, want > %d", got, DefaultCacheBits)
	}
}

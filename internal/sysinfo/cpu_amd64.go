//go:build amd64

package sysinfo

import "golang.org/x/sys/cpu"

// detectSIMDFeatures queries the x86 feature flags relevant to the numeric
// workloads: wide vector units for the matrix kernels, fused multiply-add
// for the scalar approximations.
func detectSIMDFeatures() []string {
	var features []string
	if cpu.X86.HasSSE42 {
		features = append(features, "SSE4.2")
	}
	if cpu.X86.HasAVX {
		features = append(features, "AVX")
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ {
		features = append(features, "AVX-512")
	}
	if cpu.X86.HasFMA {
		features = append(features, "FMA")
	}
	return features
}

//go:build !amd64

package sysinfo

import "golang.org/x/sys/cpu"

// detectSIMDFeatures covers the non-x86 architectures the harness is run
// on. Only ARM64 has flags worth reporting; everything else returns nil.
func detectSIMDFeatures() []string {
	var features []string
	if cpu.ARM64.HasASIMD {
		features = append(features, "ASIMD")
	}
	if cpu.ARM64.HasSVE {
		features = append(features, "SVE")
	}
	return features
}

// Package sysinfo reports the hardware context a benchmark run executed in.
// Results without a machine description are hard to compare afterwards, so
// every report embeds one.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"
)

// Info describes the host executing the benchmarks.
type Info struct {
	// OS and Arch are the runtime's GOOS and GOARCH.
	OS   string
	Arch string

	// NumCPU is the number of logical CPUs usable by the process.
	NumCPU int

	// GoVersion is the version of the Go runtime.
	GoVersion string

	// SIMDFeatures lists the detected vector instruction set extensions,
	// empty on architectures without detection support.
	SIMDFeatures []string
}

// Collect gathers the host description. It is cheap and can be called per
// run.
func Collect() Info {
	return Info{
		OS:           runtime.GOOS,
		Arch:         runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
		GoVersion:    runtime.Version(),
		SIMDFeatures: detectSIMDFeatures(),
	}
}

// String returns a single-line summary suitable for report headers.
func (i Info) String() string {
	simd := "none detected"
	if len(i.SIMDFeatures) > 0 {
		simd = strings.Join(i.SIMDFeatures, ", ")
	}
	return fmt.Sprintf("%s/%s, %d CPUs, %s, SIMD: %s",
		i.OS, i.Arch, i.NumCPU, i.GoVersion, simd)
}

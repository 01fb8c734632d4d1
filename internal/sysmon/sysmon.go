// Package sysmon samples system-wide CPU and memory usage and reports the
// processor features that matter when comparing timings across machines.
package sysmon

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Busy reports whether the CPU load in s is above threshold percent.
// Timings taken on a loaded machine are noisy.
func Busy(s Stats, threshold float64) bool {
	return threshold > 0 && s.CPUPercent > threshold
}

// Features describes the host processor.
type Features struct {
	Arch      string
	Cores     int
	ModelName string
	Flags     []string
}

// String returns a one-line summary such as "amd64, 8 cores, avx2 bmi2".
func (f Features) String() string {
	var b strings.Builder
	b.WriteString(f.Arch)
	if f.Cores > 0 {
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(f.Cores))
		b.WriteString(" cores")
	}
	if f.ModelName != "" {
		b.WriteString(", ")
		b.WriteString(f.ModelName)
	}
	if len(f.Flags) > 0 {
		b.WriteString(", ")
		b.WriteString(strings.Join(f.Flags, " "))
	}
	return b.String()
}

// CPUFeatures reports the processor model and the instruction set
// extensions that change big-number arithmetic speed.
func CPUFeatures() Features {
	f := Features{Arch: runtime.GOARCH, Cores: runtime.NumCPU()}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		f.ModelName = strings.TrimSpace(infos[0].ModelName)
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, x := range []struct {
			name string
			has  bool
		}{
			{"avx", xcpu.X86.HasAVX},
			{"avx2", xcpu.X86.HasAVX2},
			{"avx512f", xcpu.X86.HasAVX512F},
			{"bmi2", xcpu.X86.HasBMI2},
			{"adx", xcpu.X86.HasADX},
		} {
			if x.has {
				f.Flags = append(f.Flags, x.name)
			}
		}
	case "arm64":
		if xcpu.ARM64.HasASIMD {
			f.Flags = append(f.Flags, "asimd")
		}
		if xcpu.ARM64.HasSVE {
			f.Flags = append(f.Flags, "sve")
		}
	}
	return f
}

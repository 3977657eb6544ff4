//go:build amd64

package clock

import (
	"slices"
	"time"
)

// rdtscp reads the time stamp counter via the RDTSCP instruction,
// which waits for prior instructions to retire before sampling.
// Implemented in counter_amd64.s.
//
//go:noescape
func rdtscp() uint64

// cpuid executes the CPUID instruction for the given leaf and
// subleaf. Implemented in counter_amd64.s.
//
//go:noescape
func cpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

func readCounter() uint64 {
	return rdtscp()
}

func detect() CounterInfo {
	var info CounterInfo

	maxStd, _, _, _ := cpuid(0, 0)
	maxExt, _, _, _ := cpuid(0x80000000, 0)

	// CPUID 0x80000001 EDX bit 27: RDTSCP and IA32_TSC_AUX.
	if maxExt >= 0x80000001 {
		_, _, _, edx := cpuid(0x80000001, 0)
		info.Available = edx&(1<<27) != 0
	}

	if !info.Available {
		return info
	}

	// CPUID 0x80000007 EDX bit 8: invariant TSC.
	if maxExt >= 0x80000007 {
		_, _, _, edx := cpuid(0x80000007, 0)
		info.Invariant = edx&(1<<8) != 0
	}

	// CPUID 0x15: TSC / core crystal clock ratio.
	if maxStd >= 0x15 {
		denom, numer, crystalHz, _ := cpuid(0x15, 0)
		if denom != 0 && numer != 0 && crystalHz != 0 {
			info.FrequencyHz = uint64(crystalHz) * uint64(numer) / uint64(denom)
		}
	}

	// CPUID 0x16 EAX bits 15:0: processor base frequency in MHz.
	if info.FrequencyHz == 0 && maxStd >= 0x16 {
		base, _, _, _ := cpuid(0x16, 0)
		if base&0xFFFF != 0 {
			info.FrequencyHz = uint64(base&0xFFFF) * 1_000_000
		}
	}

	// CPUID reported nothing; measure against the wall clock.
	if info.FrequencyHz == 0 {
		info.FrequencyHz = calibrate()
	}

	return info
}

// calibrate estimates the counter frequency by timing it against the
// wall clock, taking the median of several interval measurements to
// shrug off scheduling noise.
func calibrate() uint64 {
	const (
		rounds   = 5
		interval = 10 * time.Millisecond
	)

	freqs := make([]uint64, 0, rounds)

	for range rounds {
		begin := rdtscp()
		wallBegin := time.Now()

		time.Sleep(interval)

		ticks := rdtscp() - begin
		elapsed := time.Since(wallBegin)

		freqs = append(freqs, uint64(float64(ticks)/elapsed.Seconds()))
	}

	slices.Sort(freqs)

	return freqs[rounds/2]
}

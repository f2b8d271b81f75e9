//go:build linux
// +build linux

package platformservice

import "golang.org/x/sys/unix"

// affinityCPUs counts the CPUs in the process's current affinity mask.
// runtime.NumCPU only samples the mask at startup.
func affinityCPUs() (int, bool) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0, false
	}

	n := set.Count()
	return n, n > 0
}

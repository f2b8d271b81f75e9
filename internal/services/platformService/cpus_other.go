//go:build !linux
// +build !linux

package platformservice

func affinityCPUs() (int, bool) {
	return 0, false
}

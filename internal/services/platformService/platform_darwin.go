//go:build darwin
// +build darwin

package platformservice

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// translatedNativeArch reports the native architecture when the process runs
// under Rosetta 2, where uname reports x86_64 on Apple silicon.
func translatedNativeArch() (Architecture, bool) {
	translated, err := unix.SysctlUint32("sysctl.proc_translated")
	if err != nil || translated != 1 {
		return ArchUnknown, false
	}

	return ArchArm64, true
}

// osVersionNumber prefers the marketing product version (e.g. 14.4.1) over
// the Darwin kernel release.
func osVersionNumber(release string) string {
	if runtime.GOOS == "darwin" {
		if v, err := unix.Sysctl("kern.osproductversion"); err == nil {
			if v = versionQuad(v); v != "" {
				return v
			}
		}
	}

	return versionQuad(release)
}

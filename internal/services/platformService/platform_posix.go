//go:build linux || freebsd || netbsd || openbsd
// +build linux freebsd netbsd openbsd

package platformservice

func translatedNativeArch() (Architecture, bool) {
	return ArchUnknown, false
}

func osVersionNumber(release string) string {
	return versionQuad(release)
}

//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd,!windows

package platformservice

import "os"

// hostBackend for Unix-like targets without a native implementation
// (solaris, illumos, aix, dragonfly). Only the hostname is portable.
type hostBackend struct{}

func (hostBackend) osArchitecture() (Architecture, error) {
	return ArchUnknown, ErrUnsupportedOnPlatform
}

func (hostBackend) osVersionString(PlatformID) (string, error) {
	return "", ErrUnsupportedOnPlatform
}

func (hostBackend) osDescription() (string, error) {
	return "", ErrUnsupportedOnPlatform
}

func (hostBackend) machineName() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", err
	}
	return shortHostname(name), nil
}

func (hostBackend) userName() (string, error) {
	return "", ErrUnsupportedOnPlatform
}

func (hostBackend) userDomainName() (string, error) {
	return "", ErrUnsupportedOnPlatform
}

func (hostBackend) isUserInteractive() (bool, error) {
	return false, ErrUnsupportedOnPlatform
}

func (hostBackend) logicalDrives() ([]string, error) {
	return nil, ErrUnsupportedOnPlatform
}

func (hostBackend) systemDirectory() (string, error) {
	return "", ErrUnsupportedOnPlatform
}

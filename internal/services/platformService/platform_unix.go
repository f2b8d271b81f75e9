//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package platformservice

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type hostBackend struct{}

// selfMountsContext pins gopsutil to this process's mount namespace.
// Without it gopsutil reads /proc/1/mountinfo (init's namespace) and honours
// HOST_PROC / HOST_PROC_MOUNTINFO from the environment.
func selfMountsContext() context.Context {
	return context.WithValue(context.Background(), common.EnvKey, common.EnvMap{
		common.HostProcEnvKey:    "/proc",
		common.HostProcMountinfo: "/proc/self/mountinfo",
	})
}

func uname() (unix.Utsname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return u, fmt.Errorf("uname: %w", err)
	}
	return u, nil
}

func (hostBackend) osArchitecture() (Architecture, error) {
	// A translated process (Rosetta 2) sees the emulated machine in uname.
	if arch, ok := translatedNativeArch(); ok {
		return arch, nil
	}

	machine, err := host.KernelArch()
	if err != nil {
		return ArchUnknown, fmt.Errorf("kernel arch: %w", err)
	}

	return archFromMachine(machine), nil
}

func (hostBackend) osVersionString(id PlatformID) (string, error) {
	u, err := uname()
	if err != nil {
		return "", err
	}

	release := unix.ByteSliceToString(u.Release[:])
	v := osVersionNumber(release)
	if v == "" {
		return "", fmt.Errorf("no version number in kernel release %q", release)
	}

	return id.versionLabel() + " " + v, nil
}

func (hostBackend) osDescription() (string, error) {
	u, err := uname()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, 3)
	for _, field := range [][]byte{u.Sysname[:], u.Release[:], u.Version[:]} {
		if s := strings.TrimSpace(unix.ByteSliceToString(field)); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, " "), nil
}

func (hostBackend) machineName() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}

	return shortHostname(name), nil
}

func (hostBackend) userName() (string, error) {
	// user.Current caches its result; look up the effective uid every time.
	u, err := user.LookupId(strconv.Itoa(os.Geteuid()))
	if err != nil {
		return "", fmt.Errorf("lookup euid: %w", err)
	}

	return u.Username, nil
}

func (hostBackend) userDomainName() (string, error) {
	return "", ErrUnsupportedOnPlatform
}

func (hostBackend) isUserInteractive() (bool, error) {
	return term.IsTerminal(int(os.Stdin.Fd())) || term.IsTerminal(int(os.Stdout.Fd())), nil
}

func (hostBackend) logicalDrives() ([]string, error) {
	partitions, err := disk.PartitionsWithContext(selfMountsContext(), true)
	// gopsutil can return partial results alongside an error.
	if err != nil && len(partitions) == 0 {
		return nil, fmt.Errorf("list partitions: %w", err)
	}

	mounts := make([]string, 0, len(partitions))
	for _, p := range partitions {
		mounts = append(mounts, p.Mountpoint)
	}

	return uniqueMounts(mounts), nil
}

func (hostBackend) systemDirectory() (string, error) {
	return "", ErrUnsupportedOnPlatform
}

//go:build windows
// +build windows

package platformservice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
)

// IMAGE_FILE_MACHINE_* values reported by IsWow64Process2.
const (
	imageFileMachineUnknown = 0x0000
	imageFileMachineI386    = 0x014c
	imageFileMachineARMNT   = 0x01c4
	imageFileMachineAMD64   = 0x8664
	imageFileMachineARM64   = 0xaa64
)

type hostBackend struct{}

var errNoVersion = errors.New("RtlGetVersion returned no version")

func archFromImageMachine(machine uint16) Architecture {
	switch machine {
	case imageFileMachineI386:
		return ArchX86
	case imageFileMachineARMNT:
		return ArchArm
	case imageFileMachineAMD64:
		return ArchX64
	case imageFileMachineARM64:
		return ArchArm64
	default:
		return ArchUnknown
	}
}

func (hostBackend) osArchitecture() (Architecture, error) {
	var processMachine, nativeMachine uint16

	// IsWow64Process2 is missing before Windows 10 1511; fall back to
	// GetNativeSystemInfo through gopsutil.
	err := windows.IsWow64Process2(windows.CurrentProcess(), &processMachine, &nativeMachine)
	if err == nil && nativeMachine != imageFileMachineUnknown {
		return archFromImageMachine(nativeMachine), nil
	}

	machine, err := host.KernelArch()
	if err != nil {
		return ArchUnknown, fmt.Errorf("kernel arch: %w", err)
	}

	return archFromMachine(machine), nil
}

func (hostBackend) osVersionString(id PlatformID) (string, error) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		return "", errNoVersion
	}

	revision := uint32(v.ServicePackMajor)<<16 | uint32(v.ServicePackMinor)
	s := fmt.Sprintf("%s %d.%d.%d.%d", id.versionLabel(), v.MajorVersion, v.MinorVersion, v.BuildNumber, revision)

	if csd := windows.UTF16ToString(v.CsdVersion[:]); csd != "" {
		s += " " + csd
	}

	return s, nil
}

func (hostBackend) osDescription() (string, error) {
	v := windows.RtlGetVersion()
	if v == nil || v.MajorVersion == 0 {
		return "", errNoVersion
	}

	s := fmt.Sprintf("Microsoft Windows %d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)
	if csd := windows.UTF16ToString(v.CsdVersion[:]); csd != "" {
		s += " " + csd
	}

	return s, nil
}

func (hostBackend) machineName() (string, error) {
	name, err := windows.ComputerName()
	if err != nil {
		return "", fmt.Errorf("GetComputerName: %w", err)
	}

	return name, nil
}

// account resolves the user and domain of the current process token.
func account() (string, string, error) {
	token := windows.GetCurrentProcessToken()

	tu, err := token.GetTokenUser()
	if err != nil {
		return "", "", fmt.Errorf("token user: %w", err)
	}

	name, domain, _, err := tu.User.Sid.LookupAccount("")
	if err != nil {
		return "", "", fmt.Errorf("lookup account: %w", err)
	}

	return name, domain, nil
}

func (hostBackend) userName() (string, error) {
	name, _, err := account()
	return name, err
}

func (hostBackend) userDomainName() (string, error) {
	_, domain, err := account()
	return domain, err
}

func (hostBackend) isUserInteractive() (bool, error) {
	isService, err := svc.IsWindowsService()
	if err != nil {
		return false, fmt.Errorf("detect service: %w", err)
	}

	return !isService, nil
}

func (hostBackend) logicalDrives() ([]string, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, fmt.Errorf("GetLogicalDrives: %w", err)
	}

	return driveRoots(mask), nil
}

func (hostBackend) systemDirectory() (string, error) {
	dir, err := windows.GetSystemDirectory()
	if err != nil {
		return "", fmt.Errorf("GetSystemDirectory: %w", err)
	}

	return strings.TrimRight(dir, `\`), nil
}

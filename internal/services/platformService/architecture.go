package platformservice

import "strings"

// Architecture is a CPU architecture in the facade's vocabulary.
// The empty value means the architecture could not be determined.
type Architecture string

const (
	ArchUnknown     Architecture = ""
	ArchX86         Architecture = "X86"
	ArchX64         Architecture = "X64"
	ArchArm         Architecture = "Arm"
	ArchArm64       Architecture = "Arm64"
	ArchWasm        Architecture = "Wasm"
	ArchS390x       Architecture = "S390x"
	ArchLoongArch64 Architecture = "LoongArch64"
	ArchPpc64le     Architecture = "Ppc64le"
	ArchRiscV64     Architecture = "RiscV64"
	ArchMips64      Architecture = "Mips64"
)

func (a Architecture) String() string {
	return string(a)
}

// PlatformID is the coarse operating system family.
type PlatformID string

const (
	PlatformUnknown PlatformID = ""
	PlatformWin32NT PlatformID = "Win32NT"
	PlatformUnix    PlatformID = "Unix"
	PlatformMacOSX  PlatformID = "MacOSX"
	PlatformOther   PlatformID = "Other"
)

func (p PlatformID) String() string {
	return string(p)
}

// versionLabel is the prefix used when rendering an OS version string,
// e.g. "Microsoft Windows NT 10.0.19045.0" or "Unix 6.8.0.45".
func (p PlatformID) versionLabel() string {
	switch p {
	case PlatformWin32NT:
		return "Microsoft Windows NT"
	case PlatformMacOSX:
		return "Mac OS X"
	case PlatformUnix:
		return "Unix"
	default:
		return "Other"
	}
}

// platformIDFor maps a GOOS value to its platform family.
func platformIDFor(goos string) PlatformID {
	switch goos {
	case "windows":
		return PlatformWin32NT
	case "darwin", "ios":
		return PlatformMacOSX
	case "linux", "android", "freebsd", "netbsd", "openbsd", "dragonfly",
		"solaris", "illumos", "aix":
		return PlatformUnix
	case "":
		return PlatformUnknown
	default:
		return PlatformOther
	}
}

// archFromGOARCH maps a Go toolchain target architecture.
func archFromGOARCH(goarch string) Architecture {
	switch goarch {
	case "386":
		return ArchX86
	case "amd64":
		return ArchX64
	case "arm":
		return ArchArm
	case "arm64":
		return ArchArm64
	case "wasm":
		return ArchWasm
	case "s390x":
		return ArchS390x
	case "loong64":
		return ArchLoongArch64
	case "ppc64le":
		return ArchPpc64le
	case "riscv64":
		return ArchRiscV64
	case "mips64", "mips64le":
		return ArchMips64
	default:
		return ArchUnknown
	}
}

// archFromMachine maps a kernel machine string (uname -m, gopsutil KernelArch)
// to an Architecture.
func archFromMachine(machine string) Architecture {
	m := strings.ToLower(strings.TrimSpace(machine))

	switch m {
	case "x86_64", "amd64", "x64":
		return ArchX64
	case "i386", "i486", "i586", "i686", "x86", "i86pc":
		return ArchX86
	case "aarch64", "arm64", "aarch64_be":
		return ArchArm64
	case "s390x":
		return ArchS390x
	case "ppc64le":
		return ArchPpc64le
	case "riscv64":
		return ArchRiscV64
	case "loongarch64", "loong64":
		return ArchLoongArch64
	case "mips64", "mips64el":
		return ArchMips64
	case "wasm", "wasm32":
		return ArchWasm
	}

	if m == "arm" || strings.HasPrefix(m, "armv") {
		return ArchArm
	}

	return ArchUnknown
}

package platformservice

import (
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Facade is a read-only view of host and runtime metadata.
//
// Every method re-queries the host on each call; nothing is cached. Methods
// never return errors: when the host has no equivalent concept, or refuses
// the query, the field's neutral value ("", nil, 0 or false) is returned.
type Facade interface {
	RuntimeDescription() string
	RuntimeVersion() string
	OSArchitecture() Architecture
	OSPlatformID() PlatformID
	OSVersionString() string
	OSDescription() string
	ProcessArchitecture() Architecture
	ProcessorCount() int
	MachineName() string
	UserName() string
	UserDomainName() string
	IsUserInteractive() bool
	LogicalDrives() []string
	SystemDirectory() string
	MemoryPageSize() int
}

// backend performs the host-specific queries. One implementation is
// compiled per target OS (see platform_unix.go, platform_windows.go,
// platform_other.go).
type backend interface {
	osArchitecture() (Architecture, error)
	osVersionString(id PlatformID) (string, error)
	osDescription() (string, error)
	machineName() (string, error)
	userName() (string, error)
	userDomainName() (string, error)
	isUserInteractive() (bool, error)
	logicalDrives() ([]string, error)
	systemDirectory() (string, error)
}

// PlatformInfoFacade implements Facade for the current host.
// It has no mutable state and is safe for concurrent use.
type PlatformInfoFacade struct {
	host backend
	log  logrus.FieldLogger
}

var _ Facade = PlatformInfoFacade{}

// New returns a facade over the current host, logging through the
// logrus standard logger.
func New() PlatformInfoFacade {
	return NewWithLogger(logrus.StandardLogger())
}

// NewWithLogger returns a facade over the current host that reports
// neutral-value fallbacks to log at debug level.
func NewWithLogger(log logrus.FieldLogger) PlatformInfoFacade {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return PlatformInfoFacade{host: hostBackend{}, log: log}
}

// query runs fn and converts an error or a panic into T's zero value.
func query[T any](f PlatformInfoFacade, field string, fn func() (T, error)) (v T) {
	defer func() {
		if r := recover(); r != nil {
			f.logger().WithFields(logrus.Fields{
				"field": field,
				"panic": r,
			}).Debug("platform query panicked, returning neutral value")

			var zero T
			v = zero
		}
	}()

	out, err := fn()
	if err != nil {
		f.logger().WithFields(logrus.Fields{
			"field":  field,
			"reason": failureReason(err),
		}).WithError(err).Debug("platform query failed, returning neutral value")

		var zero T
		return zero
	}

	return out
}

func (f PlatformInfoFacade) logger() logrus.FieldLogger {
	if f.log == nil {
		return logrus.StandardLogger()
	}
	return f.log
}

func (f PlatformInfoFacade) queries() backend {
	if f.host == nil {
		return hostBackend{}
	}
	return f.host
}

// RuntimeDescription returns the runtime name and version, e.g. "Go 1.24.6".
func (f PlatformInfoFacade) RuntimeDescription() string {
	return describeRuntime(runtime.Version())
}

// RuntimeVersion returns the dotted numeric runtime version, e.g. "1.24.6".
func (f PlatformInfoFacade) RuntimeVersion() string {
	return parseRuntimeVersion(runtime.Version())
}

// OSArchitecture returns the architecture of the OS kernel, which may differ
// from ProcessArchitecture (e.g. a 386 binary on a 64-bit kernel).
func (f PlatformInfoFacade) OSArchitecture() Architecture {
	return query(f, "osArchitecture", f.queries().osArchitecture)
}

// OSPlatformID returns the coarse OS family of the host.
func (f PlatformInfoFacade) OSPlatformID() PlatformID {
	return platformIDFor(runtime.GOOS)
}

// OSVersionString returns an opaque, OS-specific version string such as
// "Unix 6.8.0.45" or "Microsoft Windows NT 10.0.19045.0".
func (f PlatformInfoFacade) OSVersionString() string {
	id := f.OSPlatformID()
	return query(f, "osVersionString", func() (string, error) {
		return f.queries().osVersionString(id)
	})
}

// OSDescription returns an opaque descriptive string for the OS.
func (f PlatformInfoFacade) OSDescription() string {
	return query(f, "osDescription", f.queries().osDescription)
}

// ProcessArchitecture returns the architecture this binary was built for.
func (f PlatformInfoFacade) ProcessArchitecture() Architecture {
	return archFromGOARCH(runtime.GOARCH)
}

// ProcessorCount returns the number of logical CPUs usable by the process.
func (f PlatformInfoFacade) ProcessorCount() int {
	if n, ok := affinityCPUs(); ok {
		return n
	}

	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// MachineName returns the host name without any domain suffix.
func (f PlatformInfoFacade) MachineName() string {
	return query(f, "machineName", f.queries().machineName)
}

// UserName returns the name of the user the process runs as.
func (f PlatformInfoFacade) UserName() string {
	return query(f, "userName", f.queries().userName)
}

// UserDomainName returns the network domain of the current user.
// Empty on POSIX hosts.
func (f PlatformInfoFacade) UserDomainName() string {
	return query(f, "userDomainName", f.queries().userDomainName)
}

// IsUserInteractive reports whether the process runs in an interactive
// session. False for services, daemons and headless sessions.
func (f PlatformInfoFacade) IsUserInteractive() bool {
	return query(f, "isUserInteractive", f.queries().isUserInteractive)
}

// LogicalDrives returns mount points (POSIX) or drive roots (Windows) in the
// order the OS reports them. Never nil.
func (f PlatformInfoFacade) LogicalDrives() []string {
	drives := query(f, "logicalDrives", f.queries().logicalDrives)
	if drives == nil {
		return []string{}
	}
	return drives
}

// SystemDirectory returns the fully qualified system directory, or "" where
// the OS has no such concept.
func (f PlatformInfoFacade) SystemDirectory() string {
	return query(f, "systemDirectory", f.queries().systemDirectory)
}

// MemoryPageSize returns the OS memory page size in bytes.
func (f PlatformInfoFacade) MemoryPageSize() int {
	n := os.Getpagesize()
	if n < 0 {
		return 0
	}
	return n
}

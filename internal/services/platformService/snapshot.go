package platformservice

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot is every Facade field read once, for diagnostic output.
// Values are read independently, so fields taken at different instants
// may be mutually inconsistent if the host changed in between.
type Snapshot struct {
	RuntimeDescription  string       `json:"runtimeDescription" yaml:"runtimeDescription"`
	RuntimeVersion      string       `json:"runtimeVersion" yaml:"runtimeVersion"`
	OSArchitecture      Architecture `json:"osArchitecture" yaml:"osArchitecture"`
	OSPlatformID        PlatformID   `json:"osPlatformId" yaml:"osPlatformId"`
	OSVersionString     string       `json:"osVersionString" yaml:"osVersionString"`
	OSDescription       string       `json:"osDescription" yaml:"osDescription"`
	ProcessArchitecture Architecture `json:"processArchitecture" yaml:"processArchitecture"`
	ProcessorCount      int          `json:"processorCount" yaml:"processorCount"`
	MachineName         string       `json:"machineName" yaml:"machineName"`
	UserName            string       `json:"userName" yaml:"userName"`
	UserDomainName      string       `json:"userDomainName" yaml:"userDomainName"`
	IsUserInteractive   bool         `json:"isUserInteractive" yaml:"isUserInteractive"`
	LogicalDrives       []string     `json:"logicalDrives" yaml:"logicalDrives"`
	SystemDirectory     string       `json:"systemDirectory" yaml:"systemDirectory"`
	MemoryPageSize      int          `json:"memoryPageSize" yaml:"memoryPageSize"`
}

// Capture reads every accessor of f once.
func Capture(f Facade) Snapshot {
	return Snapshot{
		RuntimeDescription:  f.RuntimeDescription(),
		RuntimeVersion:      f.RuntimeVersion(),
		OSArchitecture:      f.OSArchitecture(),
		OSPlatformID:        f.OSPlatformID(),
		OSVersionString:     f.OSVersionString(),
		OSDescription:       f.OSDescription(),
		ProcessArchitecture: f.ProcessArchitecture(),
		ProcessorCount:      f.ProcessorCount(),
		MachineName:         f.MachineName(),
		UserName:            f.UserName(),
		UserDomainName:      f.UserDomainName(),
		IsUserInteractive:   f.IsUserInteractive(),
		LogicalDrives:       f.LogicalDrives(),
		SystemDirectory:     f.SystemDirectory(),
		MemoryPageSize:      f.MemoryPageSize(),
	}
}

type property struct {
	key     string
	label   string
	aliases []string
	value   func(Snapshot) string
}

// properties is in display order.
var properties = []property{
	{"runtimeDescription", "Runtime", []string{"runtime", "framework"}, func(s Snapshot) string { return s.RuntimeDescription }},
	{"runtimeVersion", "Runtime Version", []string{"version", "frameworkversion"}, func(s Snapshot) string { return s.RuntimeVersion }},
	{"osArchitecture", "OS Architecture", []string{"osarch", "arch"}, func(s Snapshot) string { return s.OSArchitecture.String() }},
	{"osPlatformId", "OS Platform", []string{"platform", "os"}, func(s Snapshot) string { return s.OSPlatformID.String() }},
	{"osVersionString", "OS Version", []string{"osversion", "release", "osrelease"}, func(s Snapshot) string { return s.OSVersionString }},
	{"osDescription", "OS Description", []string{"description"}, func(s Snapshot) string { return s.OSDescription }},
	{"processArchitecture", "Process Arch", []string{"processarch"}, func(s Snapshot) string { return s.ProcessArchitecture.String() }},
	{"processorCount", "Processors", []string{"cpus", "cputhreads"}, func(s Snapshot) string { return strconv.Itoa(s.ProcessorCount) }},
	{"machineName", "Machine Name", []string{"hostname", "machine"}, func(s Snapshot) string { return s.MachineName }},
	{"userName", "User", []string{"user", "username"}, func(s Snapshot) string { return s.UserName }},
	{"userDomainName", "User Domain", []string{"domain"}, func(s Snapshot) string { return s.UserDomainName }},
	{"isUserInteractive", "Interactive", []string{"interactive"}, func(s Snapshot) string { return strconv.FormatBool(s.IsUserInteractive) }},
	{"logicalDrives", "Logical Drives", []string{"drives"}, func(s Snapshot) string { return strings.Join(s.LogicalDrives, ", ") }},
	{"systemDirectory", "System Dir", []string{"systemdir"}, func(s Snapshot) string { return s.SystemDirectory }},
	{"memoryPageSize", "Page Size", []string{"pagesize"}, func(s Snapshot) string { return strconv.Itoa(s.MemoryPageSize) }},
}

// PropertyNames returns the canonical property keys in display order.
func PropertyNames() []string {
	names := make([]string, 0, len(properties))
	for _, p := range properties {
		names = append(names, p.key)
	}
	return names
}

func lookupProperty(name string) (property, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range properties {
		if strings.ToLower(p.key) == n {
			return p, true
		}
		for _, a := range p.aliases {
			if a == n {
				return p, true
			}
		}
	}
	return property{}, false
}

// CanonicalProperty resolves a key or alias (case-insensitive) to its
// canonical key.
func CanonicalProperty(name string) (string, error) {
	p, ok := lookupProperty(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return p.key, nil
}

// Property returns the display value of a single property.
func (s Snapshot) Property(name string) (string, error) {
	p, ok := lookupProperty(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return p.value(s), nil
}

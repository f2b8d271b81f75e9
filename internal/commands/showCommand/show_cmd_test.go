package showCommand

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/redjax/platinfo/internal/config"
	platformservice "github.com/redjax/platinfo/internal/services/platformService"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFacade struct{}

func (fakeFacade) RuntimeDescription() string { return "Go 1.24.6" }
func (fakeFacade) RuntimeVersion() string { return "1.24.6" }
func (fakeFacade) OSArchitecture() platformservice.Architecture {
	return platformservice.ArchArm64
}
func (fakeFacade) OSPlatformID() platformservice.PlatformID { return platformservice.PlatformUnix }
func (fakeFacade) OSVersionString() string { return "Unix 6.8.0.45" }
func (fakeFacade) OSDescription() string { return "Linux 6.8.0 #1 SMP" }
func (fakeFacade) ProcessArchitecture() platformservice.Architecture {
	return platformservice.ArchArm64
}
func (fakeFacade) ProcessorCount() int { return 4 }
func (fakeFacade) MachineName() string { return "pi" }
func (fakeFacade) UserName() string { return "pi" }
func (fakeFacade) UserDomainName() string { return "" }
func (fakeFacade) IsUserInteractive() bool { return false }
func (fakeFacade) LogicalDrives() []string { return []string{"/", "/boot/firmware"} }
func (fakeFacade) SystemDirectory() string { return "" }
func (fakeFacade) MemoryPageSize() int { return 16384 }

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewShowCmd(fakeFacade{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(config.WithConfig(context.Background(), cfg))
	return out.String(), err
}

func TestShowPlatformProperties(t *testing.T) {
	out, err := run(t, config.Config{}, "platform", "--property", "hostname", "--property", "PAGESIZE,osarch")
	require.NoError(t, err)

	assert.Equal(t, "machineName: pi\nmemoryPageSize: 16384\nosArchitecture: Arm64\n", out)
}

func TestShowPlatformPropertiesHonourFormat(t *testing.T) {
	out, err := run(t, config.Config{Output: config.OutputConfig{Format: "json"}}, "platform", "--property", "hostname,drives")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"machineName":   "pi",
		"logicalDrives": []any{"/", "/boot/firmware"},
	}, got)
}

func TestShowPlatformPropertiesBadFormat(t *testing.T) {
	out, err := run(t, config.Config{Output: config.OutputConfig{Format: "xml"}}, "platform", "--property", "hostname")

	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestShowPlatformUnknownProperty(t *testing.T) {
	out, err := run(t, config.Config{}, "platform", "--property", "hostname", "--property", "kernel")

	assert.ErrorIs(t, err, platformservice.ErrUnknownProperty)
	assert.Empty(t, out)
}

func TestShowPlatformJSON(t *testing.T) {
	out, err := run(t, config.Config{Output: config.OutputConfig{Format: "json"}}, "platform")
	require.NoError(t, err)

	var snap platformservice.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, platformservice.Capture(fakeFacade{}), snap)
}

func TestShowPlatformText(t *testing.T) {
	out, err := run(t, config.Config{}, "platform")
	require.NoError(t, err)

	assert.Contains(t, out, "Platform Information:")
	assert.Contains(t, out, "/boot/firmware")
}

func TestShowPlatformBadFormat(t *testing.T) {
	_, err := run(t, config.Config{Output: config.OutputConfig{Format: "xml"}}, "platform")
	assert.Error(t, err)
}

func TestShowDrives(t *testing.T) {
	out, err := run(t, config.Config{}, "drives")
	require.NoError(t, err)

	assert.Equal(t, "/\n/boot/firmware\n", out)
}

func TestShowRuntime(t *testing.T) {
	out, err := run(t, config.Config{}, "runtime")
	require.NoError(t, err)

	assert.Contains(t, out, "Go 1.24.6")
	assert.Contains(t, out, "Process Arch: Arm64")
}

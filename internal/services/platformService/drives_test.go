package platformservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHostname(t *testing.T) {
	assert.Equal(t, "web01", shortHostname("web01.example.com"))
	assert.Equal(t, "web01", shortHostname("web01\n"))
	assert.Equal(t, "", shortHostname(""))
}

func TestUniqueMountsKeepsOrder(t *testing.T) {
	got := uniqueMounts([]string{"/", "/proc", "", "/sys", "/proc", "/run/lock", "/"})

	assert.Equal(t, []string{"/", "/proc", "/sys", "/run/lock"}, got)
}

func TestDriveRoots(t *testing.T) {
	// A:, C:, D:, Z:
	mask := uint32(1<<0 | 1<<2 | 1<<3 | 1<<25)

	assert.Equal(t, []string{`A:\`, `C:\`, `D:\`, `Z:\`}, driveRoots(mask))
	assert.Empty(t, driveRoots(0))
}

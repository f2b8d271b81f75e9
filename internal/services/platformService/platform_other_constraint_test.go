package platformservice

import (
	"bufio"
	"go/build/constraint"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileConstraint(t *testing.T, name string) constraint.Expr {
	t.Helper()

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if constraint.IsGoBuild(line) {
			expr, err := constraint.Parse(line)
			require.NoError(t, err)
			return expr
		}
	}
	require.NoError(t, scanner.Err())
	t.Fatalf("%s has no //go:build line", name)
	return nil
}

// goosTags returns the build tags satisfied by goos, including the implied
// ones (android implies linux, illumos implies solaris, ios implies darwin).
func goosTags(goos string) map[string]bool {
	tags := map[string]bool{goos: true, "gc": true}
	switch goos {
	case "android":
		tags["linux"] = true
	case "illumos":
		tags["solaris"] = true
	case "ios":
		tags["darwin"] = true
	}
	return tags
}

func TestFallbackBackendTargets(t *testing.T) {
	fallback := fileConstraint(t, "platform_other.go")
	unix := fileConstraint(t, "platform_unix.go")
	windows := fileConstraint(t, "platform_windows.go")

	tests := []struct {
		goos     string
		fallback bool
	}{
		{"solaris", true},
		{"illumos", true},
		{"aix", true},
		{"dragonfly", true},
		{"linux", false},
		{"android", false},
		{"darwin", false},
		{"ios", false},
		{"freebsd", false},
		{"netbsd", false},
		{"openbsd", false},
		{"windows", false},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			tags := goosTags(tt.goos)
			has := func(tag string) bool { return tags[tag] }

			assert.Equal(t, tt.fallback, fallback.Eval(has))
			// Exactly one backend is compiled per target.
			n := 0
			for _, expr := range []constraint.Expr{fallback, unix, windows} {
				if expr.Eval(has) {
					n++
				}
			}
			assert.Equal(t, 1, n)
		})
	}
}

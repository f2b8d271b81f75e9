package platformservice

import (
	"regexp"
	"strings"
)

var goVersionPattern = regexp.MustCompile(`go(\d+(?:\.\d+)*)`)

// describeRuntime renders a runtime.Version() value as a display string,
// e.g. "go1.24.6" -> "Go 1.24.6".
func describeRuntime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	return "Go " + strings.TrimPrefix(raw, "go")
}

// parseRuntimeVersion extracts the dotted numeric release from a
// runtime.Version() value. Returns "" when none is present.
//
//	go1.24.6                 -> 1.24.6
//	go1.25rc1                -> 1.25
//	devel go1.26-4d2f1a Tue  -> 1.26
func parseRuntimeVersion(raw string) string {
	m := goVersionPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}

	return m[1]
}

var digitRunPattern = regexp.MustCompile(`\d+`)

// versionQuad reads up to four numeric components from a kernel or product
// release and renders them as major.minor.build.revision. Non-digit text
// between components is skipped and missing components are zero. Returns ""
// when the release holds no digits.
//
//	6.18.44-fc-v139        -> 6.18.44.139
//	4.4.0-19041-Microsoft  -> 4.4.0.19041
//	7.5                    -> 7.5.0.0
func versionQuad(release string) string {
	runs := digitRunPattern.FindAllString(release, 4)
	if len(runs) == 0 {
		return ""
	}

	parts := make([]string, 4)
	for i := range parts {
		parts[i] = "0"
		if i < len(runs) {
			if n := strings.TrimLeft(runs[i], "0"); n != "" {
				parts[i] = n
			}
		}
	}

	return strings.Join(parts, ".")
}

package platformservice

import "strings"

// shortHostname drops any domain suffix from a host name.
func shortHostname(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// uniqueMounts drops empty and repeated mount points (stacked mounts),
// keeping the first occurrence so OS order is preserved.
func uniqueMounts(mounts []string) []string {
	seen := make(map[string]struct{}, len(mounts))
	out := make([]string, 0, len(mounts))

	for _, m := range mounts {
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}

	return out
}

// driveRoots expands a GetLogicalDrives bitmask into drive roots, bit 0
// being A:\.
func driveRoots(mask uint32) []string {
	var roots []string
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) != 0 {
			roots = append(roots, string(rune('A'+i))+`:\`)
		}
	}
	return roots
}

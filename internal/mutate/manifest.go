package mutate

import "strings"

// AddDependency appends name to the manifest text as its own line.
// Idempotent: when name already appears as an entry the manifest is
// returned unchanged. Existing non-empty lines are never reordered or
// removed; the result ends with exactly one trailing newline.
func AddDependency(manifest, name string) string {
	for _, line := range strings.Split(manifest, "\n") {
		if strings.TrimSpace(line) == name {
			return manifest
		}
	}

	out := strings.TrimRight(manifest, "\n")
	if out == "" {
		return name + "\n"
	}
	return out + "\n" + name + "\n"
}

package scripts

import (
	"fmt"
	"os"
	"sort"
)

// Discover returns the sorted names of the genuine scripts in binDir using
// DefaultRules. Only regular files are considered: directories and symlinks
// (the environment's interpreter links) never count as scripts.
//
// A missing binDir is returned as an error wrapping fs.ErrNotExist.
func Discover(binDir string) ([]string, error) {
	return DiscoverWith(binDir, DefaultRules)
}

// DiscoverWith is Discover with a caller-supplied rule set.
func DiscoverWith(binDir string, rules []Rule) ([]string, error) {
	entries, err := os.ReadDir(binDir)
	if err != nil {
		return nil, fmt.Errorf("reading executable directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if Excluded(entry.Name(), rules) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/venvlink/venvlink/internal/platform"
)

// Result records what Link or Unlink did, by script name, in input order.
type Result struct {
	Created  []string
	Existing []string
	Removed  []string
	Skipped  []string
}

// ConflictError reports a destination occupied by something venvlink does
// not own.
type ConflictError struct {
	Path   string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot link %s: destination is %s", e.Path, e.Reason)
}

// Link creates sharedDir/<name> -> binDir/<name> for every name. Names
// without a source file are skipped. A destination that is already a link to
// the source is left as is. Any other occupant aborts the whole call with a
// *ConflictError; links created before the conflicting entry are kept.
func Link(binDir, sharedDir string, names []string) (*Result, error) {
	result := &Result{}

	for _, name := range names {
		src := filepath.Join(binDir, name)
		dst := filepath.Join(sharedDir, name)

		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				result.Skipped = append(result.Skipped, name)
				continue
			}
			return result, fmt.Errorf("checking script %s: %w", src, err)
		}

		owned, err := platform.IsSymlinkTo(dst, src)
		if err != nil {
			return result, fmt.Errorf("inspecting %s: %w", dst, err)
		}
		if owned {
			result.Existing = append(result.Existing, name)
			continue
		}

		if err := platform.CreateSymlink(src, dst); err != nil {
			if os.IsExist(err) {
				return result, &ConflictError{Path: dst, Reason: platform.Describe(dst)}
			}
			return result, fmt.Errorf("linking %s: %w", dst, err)
		}
		result.Created = append(result.Created, name)
	}

	return result, nil
}

// Unlink removes sharedDir/<name> for every name whose destination is a link
// to binDir/<name>. Anything else, including a missing destination, is
// skipped without error.
func Unlink(binDir, sharedDir string, names []string) (*Result, error) {
	result := &Result{}

	for _, name := range names {
		src := filepath.Join(binDir, name)
		dst := filepath.Join(sharedDir, name)

		owned, err := platform.IsSymlinkTo(dst, src)
		if err != nil {
			return result, fmt.Errorf("inspecting %s: %w", dst, err)
		}
		if !owned {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if err := platform.RemoveSymlink(dst); err != nil {
			return result, fmt.Errorf("removing link %s: %w", dst, err)
		}
		result.Removed = append(result.Removed, name)
	}

	return result, nil
}

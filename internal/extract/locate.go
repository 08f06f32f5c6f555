package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// MissingFileError reports a calculation output that could not be located
// under any of the accepted names.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing file: %s", e.Path)
}

// FindOut resolves a calculation output below base. It accepts the exact
// relative path, the path with a ".out" suffix, or failing both, the
// lexicographically first *.out file in the same directory (ORCA runs are
// sometimes renamed after the job).
func FindOut(base, rel string) (string, error) {
	p := filepath.Join(base, rel)
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	if _, err := os.Stat(p + ".out"); err == nil {
		return p + ".out", nil
	}
	outs, _ := filepath.Glob(filepath.Join(filepath.Dir(p), "*.out"))
	if len(outs) > 0 {
		sort.Strings(outs)
		return outs[0], nil
	}
	return "", &MissingFileError{Path: p}
}

// ReadText slurps a report file.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

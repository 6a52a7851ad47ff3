// Package fileutil provides output path derivation and filesystem checks.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentinel errors for file utility operations.
var (
	ErrNotADirectory = errors.New("output path exists but is not a directory")
	ErrNameConflict  = errors.New("output name taken by a non-file")
)

// Directory permissions for created output directories.
const dirPermissions = 0o750

// maxNameLength caps derived file names so pathological input lines cannot
// exceed filesystem limits.
const maxNameLength = 120

// EnsureDir creates path as a directory if it does not exist.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	case err == nil:
		return nil
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(path, dirPermissions); mkErr != nil {
			return fmt.Errorf("creating output directory %s: %w", path, mkErr)
		}
		return nil
	default:
		return fmt.Errorf("checking output directory %s: %w", path, err)
	}
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// CheckConflict fails when path exists but is not a regular file, since it
// can then be neither skipped nor overwritten.
func CheckConflict(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNameConflict, path)
	}
	return nil
}

// SanitizeName reduces a line of text to something safe as a file name:
// path separators and control characters become underscores, surrounding
// whitespace and leading dots are trimmed, and overlong names are cut.
// Returns "" when nothing usable remains; callers fall back to index names.
func SanitizeName(text string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == os.PathSeparator:
			return '_'
		case unicode.IsControl(r):
			return '_'
		default:
			return r
		}
	}, text)

	mapped = strings.TrimSpace(mapped)
	mapped = strings.TrimLeft(mapped, ".")
	if len(mapped) > maxNameLength {
		// Cut on a rune boundary so the name stays valid UTF-8.
		cut := maxNameLength
		for cut > 0 && !utf8.RuneStart(mapped[cut]) {
			cut--
		}
		mapped = mapped[:cut]
	}
	return mapped
}

// Namer derives unique output paths for one invocation.
type Namer struct {
	dir     string
	byIndex bool
	counts  map[string]int
	taken   map[string]bool
}

// NewNamer returns a Namer writing into dir. With byIndex true, names come
// from the input line number instead of the line content.
func NewNamer(dir string, byIndex bool) *Namer {
	return &Namer{
		dir:     dir,
		byIndex: byIndex,
		counts:  make(map[string]int),
		taken:   make(map[string]bool),
	}
}

// Path returns the output path for the line at the given 1-based index.
// Names that repeat within the invocation get a numeric suffix. A suffixed
// candidate is checked against every name handed out so far, so an input
// line that itself spells a suffixed form cannot collide with one.
func (n *Namer) Path(index int, text string) string {
	base := ""
	if !n.byIndex {
		base = SanitizeName(text)
	}
	if base == "" {
		base = fmt.Sprintf("line-%04d", index)
	}

	name := base
	for {
		n.counts[base]++
		if count := n.counts[base]; count > 1 {
			name = fmt.Sprintf("%s-%d", base, count)
		}
		if !n.taken[name] {
			break
		}
	}
	n.taken[name] = true
	return filepath.Join(n.dir, name+".png")
}

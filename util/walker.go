package util

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/ngx-i18n-scan/errors"
	"github.com/spf13/afero"
)

// DefaultSkipDirs lists directory names never descended into
var DefaultSkipDirs = []string{"node_modules", "dist", "vendor"}

// Matcher reports whether a file path should be yielded
type Matcher func(path string) bool

type walkEntry struct {
	path  string
	isDir bool
}

// SourceWalker is a lazy depth-first traversal of a source tree. Each call to
// Files starts a fresh walk, so a walker can be iterated any number of times.
type SourceWalker struct {
	fs    afero.Fs
	root  string
	match Matcher
	skip  map[string]bool
}

// NewSourceWalker creates a walker over root yielding files accepted by match.
// Hidden directories and DefaultSkipDirs are skipped.
func NewSourceWalker(fs afero.Fs, root string, match Matcher) *SourceWalker {
	skip := make(map[string]bool, len(DefaultSkipDirs))
	for _, d := range DefaultSkipDirs {
		skip[d] = true
	}
	return &SourceWalker{fs: fs, root: root, match: match, skip: skip}
}

func (w *SourceWalker) skipDir(name string) bool {
	return w.skip[name] || (strings.HasPrefix(name, ".") && name != "." && name != "..")
}

// Files yields matching file paths in directory order. A directory that cannot
// be read is yielded as an error and the walk continues with its siblings.
func (w *SourceWalker) Files() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stack := deque.New()
		stack.PushBack(walkEntry{path: w.root, isDir: true})

		for stack.Len() > 0 {
			v, _ := stack.PopBack()
			entry := v.(walkEntry)

			if !entry.isDir {
				if w.match == nil || w.match(entry.path) {
					if !yield(entry.path, nil) {
						return
					}
				}
				continue
			}

			infos, err := afero.ReadDir(w.fs, entry.path)
			if err != nil {
				if !yield(entry.path, errors.ErrWalkFailed.WithArgs(entry.path).Wrap(err)) {
					return
				}
				continue
			}

			// push in reverse so entries pop in directory order
			for i := len(infos) - 1; i >= 0; i-- {
				info := infos[i]
				if info.IsDir() && w.skipDir(info.Name()) {
					continue
				}
				stack.PushBack(walkEntry{
					path:  filepath.Join(entry.path, info.Name()),
					isDir: info.IsDir(),
				})
			}
		}
	}
}

// Collect drains the walker, returning all matching files and the first error seen
func (w *SourceWalker) Collect() ([]string, error) {
	var (
		files    []string
		firstErr error
	)
	for path, err := range w.Files() {
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		files = append(files, path)
	}
	return files, firstErr
}

// HasExtension returns a Matcher accepting files with any of the given extensions
func HasExtension(exts ...string) Matcher {
	return func(path string) bool {
		ext := filepath.Ext(path)
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
		return false
	}
}

// HasSuffix returns a Matcher accepting files whose name ends with any suffix
func HasSuffix(suffixes ...string) Matcher {
	return func(path string) bool {
		for _, s := range suffixes {
			if strings.HasSuffix(path, s) {
				return true
			}
		}
		return false
	}
}

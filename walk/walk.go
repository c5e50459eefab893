// Package walk is the default directory-walk collaborator: a
// recursive, .gitignore-aware traversal built on godirwalk. It
// satisfies search.Walker; the search package never imports it.
package walk

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
	gitignore "github.com/sabhiram/go-gitignore"
	log "gopkg.in/inconshreveable/log15.v2"

	"github.com/keegancsmith/fulf/search"
)

type entry struct {
	path  string
	isDir bool
}

func (e entry) Path() string        { return e.path }
func (e entry) IsRegularFile() bool { return !e.isDir }

// Walker recursively walks Root, skipping .git and anything matched
// by a .gitignore file found along the way. It satisfies
// search.Walker.
type Walker struct {
	Root   string
	Logger log.Logger
}

// New returns a Walker rooted at root.
func New(root string) *Walker {
	return &Walker{Root: root}
}

func (w *Walker) logger() log.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return log.New("component", "walk")
}

// Walk traverses w.Root, sending one search.WalkResult per regular
// file entry (skipping directories, .git, and ignored paths) or per
// unrecoverable per-entry error, and closes the returned channel once
// the traversal finishes or ctx is done.
func (w *Walker) Walk(ctx context.Context) <-chan search.WalkResult {
	out := make(chan search.WalkResult, 64)

	go func() {
		defer close(out)

		ignorers := &ignoreSet{}
		logger := w.logger()

		walkErr := godirwalk.Walk(w.Root, &godirwalk.Options{
			Unsorted: true,
			Callback: func(path string, de *godirwalk.Dirent) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				rel := relSlash(w.Root, path)

				if de.IsDir() {
					if rel != "" && de.Name() == ".git" {
						return filepath.SkipDir
					}
					ignorers.loadDir(w.Root, rel)
					if rel != "" && ignorers.matches(rel) {
						return filepath.SkipDir
					}
					return nil
				}

				if ignorers.matches(rel) {
					return nil
				}

				select {
				case out <- search.WalkResult{Entry: entry{path: path}}:
				case <-ctx.Done():
					return ctx.Err()
				}
				return nil
			},
			ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
				select {
				case out <- search.WalkResult{Err: errors.Wrapf(err, "walking %s", path)}:
				case <-ctx.Done():
					return godirwalk.Halt
				}
				return godirwalk.SkipNode
			},
		})
		if walkErr != nil && walkErr != context.Canceled {
			logger.Error("walk failed", "root", w.Root, "error", walkErr)
		}
		if ignorers.errs != nil {
			logger.Warn("some .gitignore files failed to parse", "error", ignorers.errs)
		}
	}()

	return out
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return ""
	}
	return rel
}

// ignoreSet accumulates .gitignore matchers as the walk descends,
// each scoped to the relative directory it was found in.
type ignoreSet struct {
	entries []ignoreEntry
	errs    *multierror.Error
}

type ignoreEntry struct {
	prefix string
	m      *gitignore.GitIgnore
}

func (s *ignoreSet) loadDir(root, relDir string) {
	path := filepath.Join(root, relDir, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return
	}
	m, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		s.errs = multierror.Append(s.errs, errors.Wrapf(err, "parsing %s", path))
		return
	}
	s.entries = append(s.entries, ignoreEntry{prefix: relDir, m: m})
}

func (s *ignoreSet) matches(rel string) bool {
	for _, e := range s.entries {
		sub := rel
		if e.prefix != "" {
			if !strings.HasPrefix(rel, e.prefix+"/") {
				continue
			}
			sub = strings.TrimPrefix(rel, e.prefix+"/")
		}
		if e.m.MatchesPath(sub) {
			return true
		}
	}
	return false
}

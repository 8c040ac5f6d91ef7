// Package snippet provides storage, searching, and clipboard delivery for
// oneliners. A oneliner is a single line of text; the store is a plain
// newline-delimited file in the user's home directory. The store is
// append-only and holds no schema beyond one snippet per line.
package snippet

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/afero"
)

const storeFileName = ".oneliners"

const (
	// ListLimit is the maximum number of entries printed by the list command.
	ListLimit = 10
	// MatchLimit caps the number of search results offered for selection.
	MatchLimit = 3
)

// Sentinel results from Store.Add. Both leave the store untouched.
var (
	ErrMultiline = errors.New("multi-line snippets are not supported")
	ErrDuplicate = errors.New("snippet already present")
)

// StorePath resolves the absolute path of the oneliners file,
// <home>/.oneliners. There is no fallback location and no override: an
// undeterminable home directory is an error for the caller to treat as fatal.
func StorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to locate oneliners storage file: %w", err)
	}
	return filepath.Join(home, storeFileName), nil
}

// Store is the newline-delimited snippet file. All reads scan the file
// line-by-line on each call; nothing is cached between operations. There is
// no locking, so concurrent invocations of the tool may interleave appends.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a Store backed by the given filesystem and file path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the file path the store reads from and appends to.
func (s *Store) Path() string {
	return s.path
}

// Add appends a new oneliner to the store, creating the file if absent.
// Candidates containing a line break are rejected with ErrMultiline, and a
// candidate whose trimmed form already exists (trimmed) in the store is
// rejected with ErrDuplicate. Any other error means the append itself
// failed and the invocation cannot proceed.
func (s *Store) Add(oneliner string) error {
	if strings.Contains(oneliner, "\n") || strings.Contains(oneliner, "\r\n") {
		return ErrMultiline
	}
	if s.contains(oneliner) {
		return ErrDuplicate
	}

	f, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open oneliners file %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, oneliner); err != nil {
		return fmt.Errorf("failed to write oneliner: %w", err)
	}
	return nil
}

// contains reports whether the trimmed candidate matches any trimmed stored
// line. An unopenable store is treated as empty.
func (s *Store) contains(oneliner string) bool {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return false
	}
	defer f.Close()

	target := strings.TrimSpace(oneliner)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == target {
			return true
		}
	}
	return false
}

// List returns up to ListLimit trimmed, non-empty lines in file order.
// The cut-off is the first ListLimit surviving lines, oldest-appended first;
// no recency ordering is applied. ok is false when the store file cannot be
// opened — absent and unreadable are deliberately not distinguished.
func (s *Store) List() (entries []string, ok bool) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
		if len(entries) == ListLimit {
			break
		}
	}
	return entries, true
}

// All returns every non-empty trimmed line in file order, with no cap.
// Same open-failure semantics as List.
func (s *Store) All() (entries []string, ok bool) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, true
}

// Search returns the first MatchLimit non-empty lines containing search as a
// case-sensitive substring, in file order. No normalization is applied to
// either side. Same open-failure semantics as List.
func (s *Store) Search(search string) (matches []string, ok bool) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || !strings.Contains(line, search) {
			continue
		}
		matches = append(matches, line)
		if len(matches) == MatchLimit {
			break
		}
	}
	return matches, true
}

// SearchFuzzy returns up to MatchLimit fuzzy matches for search, best match
// first. Unlike Search, matching is case-insensitive and tolerant of
// character gaps. Same open-failure semantics as List.
func (s *Store) SearchFuzzy(search string) (matches []string, ok bool) {
	lines, ok := s.All()
	if !ok {
		return nil, false
	}

	ranks := fuzzy.RankFindNormalizedFold(search, lines)
	sort.Sort(ranks)
	for _, r := range ranks {
		matches = append(matches, r.Target)
		if len(matches) == MatchLimit {
			break
		}
	}
	return matches, true
}

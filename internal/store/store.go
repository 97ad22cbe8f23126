// Package store persists parsed CLI trees on disk and resolves
// version/tag pairs for comparison.
//
// Layout: <root>/<program>/<version-or-tag>/parsed.json. External
// consumers locate trees by this path convention, so it is part of the
// output contract.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/schmitthub/cliscope/internal/cst"
)

// TreeFileName is the file name of a persisted tree inside its tag
// directory.
const TreeFileName = "parsed.json"

// Store reads and writes persisted trees under a root directory.
type Store struct {
	root string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// TreePath returns the path a tree for program/tag is persisted at.
func (s *Store) TreePath(program, tag string) string {
	return filepath.Join(s.root, program, tag, TreeFileName)
}

// Save persists a tree under the given tag and returns the written
// path. When tag is empty the tree's own version is used, or "latest"
// when the version is empty or Unknown.
func (s *Store) Save(tree *cst.Node, tag string) (string, error) {
	if tag == "" {
		tag = DefaultTag(tree.Version)
	}

	path := s.TreePath(tree.Name, tag)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	raw, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing structure: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("writing structure: %w", err)
	}
	return path, nil
}

// Load reads a persisted tree back from path.
func (s *Store) Load(path string) (*cst.Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	var tree cst.Node
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parsing structure: %w", err)
	}
	return &tree, nil
}

// Versions lists the persisted tags for a program, latest first
// (descending lexical order, matching how they are resolved for
// comparison defaults).
func (s *Store) Versions(program string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, program))
	if err != nil {
		return nil, fmt.Errorf("no parsed data found for program %q: %w", program, err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(versions)))
	return versions, nil
}

// Resolve maps a program and tag to its stored tree file. An empty tag
// resolves to the most recent persisted tag.
func (s *Store) Resolve(program, tag string) (string, error) {
	if tag != "" {
		return s.TreePath(program, tag), nil
	}
	versions, err := s.Versions(program)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no parsed trees found for program %q", program)
	}
	return s.TreePath(program, versions[0]), nil
}

// ResolvePair resolves the from/to tags of a comparison to tree file
// paths. An empty to defaults to the latest persisted tag, an empty
// from to the one before it.
func (s *Store) ResolvePair(program, from, to string) (string, string, error) {
	versions, err := s.Versions(program)
	if err != nil {
		return "", "", err
	}
	if len(versions) == 0 {
		return "", "", fmt.Errorf("no parsed trees found for program %q", program)
	}

	if to == "" {
		to = versions[0]
	}
	if from == "" {
		if len(versions) < 2 {
			return "", "", fmt.Errorf("need at least two parsed versions of %q to compare, have %d", program, len(versions))
		}
		from = versions[1]
	}
	return s.TreePath(program, from), s.TreePath(program, to), nil
}

// DefaultTag maps a crawled version string to a storage tag.
func DefaultTag(version string) string {
	if version == "" || version == "Unknown" {
		return "latest"
	}
	return version
}

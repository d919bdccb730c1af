package filediscovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Chilluba/gemini-cli/pkg/language"
)

// dependencyDirs are package-manager cache directories that are never walked.
var dependencyDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// Discover returns the set of analyzable files under root. A root naming a
// regular file yields that single path regardless of extension; a directory
// is walked recursively, skipping hidden directories, dependency caches, and
// anything matched by ignore rules, collecting files with recognized code
// extensions. Walk order of filepath.WalkDir makes the result deterministic
// for a fixed tree.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("path '%s' not found: %w", root, err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	ignoreRules := GetIgnoreRules(root)

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are invisible, not fatal
		}
		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || dependencyDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !language.IsCodeFile(path) {
			return nil
		}
		if ignoreRules != nil {
			if rel, relErr := filepath.Rel(root, path); relErr == nil && ignoreRules.MatchesPath(rel) {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory '%s': %w", root, err)
	}

	return files, nil
}

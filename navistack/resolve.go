package navistack

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrDirectoryTraversal is returned when a link tries to escape into system directories.
	ErrDirectoryTraversal = errors.New("directory traversal not allowed")
	// ErrFileNotFound is returned when a file link doesn't exist after resolution attempts.
	ErrFileNotFound = errors.New("file not found")
)

// ResolveLocation turns a link found on the page at from into a location
// that a ContentProvider can load.
//
// Resolution order:
// 1. absolute HTTP(S) URL -> as-is
// 2. from is an HTTP(S) URL -> resolved against it
// 3. directory traversal check
// 4. absolute path that exists -> as-is
// 5. relative to the directory of from
// 6. each search root in order
//
// Any "#fragment" suffix is dropped; history tracks whole pages.
func ResolveLocation(link, from string, searchRoots []string) (string, error) {
	link, _, _ = strings.Cut(strings.TrimSpace(link), "#")
	if link == "" {
		return "", ErrEmptyLocation
	}

	if isHTTPURL(link) {
		return link, nil
	}

	if isHTTPURL(from) {
		base, err := url.Parse(from)
		if err != nil {
			return "", err
		}
		ref, err := url.Parse(link)
		if err != nil {
			return "", err
		}
		return base.ResolveReference(ref).String(), nil
	}

	if escapesIntoSystemDirs(link) {
		return "", ErrDirectoryTraversal
	}

	if filepath.IsAbs(link) {
		if fileExists(link) {
			return link, nil
		}
		return "", ErrFileNotFound
	}

	candidates := make([]string, 0, 1+len(searchRoots))
	if from != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(from), link))
	}
	for _, root := range searchRoots {
		if root != "" {
			candidates = append(candidates, filepath.Join(root, link))
		}
	}

	for _, c := range candidates {
		c = filepath.Clean(c)
		if fileExists(c) {
			if abs, err := filepath.Abs(c); err == nil {
				return abs, nil
			}
			return c, nil
		}
	}

	return "", ErrFileNotFound
}

func isHTTPURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

var sensitiveDirs = map[string]struct{}{
	"etc":  {},
	"sys":  {},
	"proc": {},
	"root": {},
	"usr":  {},
}

// escapesIntoSystemDirs reports links that climb more than one level or
// point into well-known system directories.
func escapesIntoSystemDirs(path string) bool {
	cleaned := filepath.ToSlash(filepath.Clean(path))
	parts := strings.Split(strings.TrimPrefix(cleaned, "/"), "/")

	if filepath.IsAbs(path) {
		// /var is allowed: temp dirs often live under it (e.g. /var/folders on macOS)
		_, blocked := sensitiveDirs[parts[0]]
		return blocked
	}

	ups := 0
	for _, part := range parts {
		if part != ".." {
			break
		}
		ups++
	}
	if ups > 1 {
		return true
	}

	for _, part := range parts[ups:] {
		if _, blocked := sensitiveDirs[part]; blocked {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

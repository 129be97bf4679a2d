// Package scan enumerates installable agent files and detects collisions
// with the destination directory.
package scan

import (
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/agentup/agentup/pkg/errors"
	"github.com/agentup/agentup/pkg/logging"
	"github.com/agentup/agentup/pkg/types"
)

// Scan lists the files in sourceDir matching pattern, paired with a
// collision flag against destDir. The scan is flat: subdirectories are
// skipped, not traversed. It performs no mutation and is called both for
// the pre-flight warning list and to drive per-file decisions.
//
// Entries come back in directory enumeration order; callers must not rely
// on any particular ordering.
func Scan(sourceDir, destDir, pattern string) ([]types.FileEntry, error) {
	logger := logging.GetLogger("scan")

	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid file pattern %q", pattern)
	}

	dirEntries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read source directory %s", sourceDir)
	}

	var entries []types.FileEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !matcher.Match(name) {
			logger.Debug().Str("file", name).Msg("Skipping non-matching file")
			continue
		}

		destPath := filepath.Join(destDir, name)
		entries = append(entries, types.FileEntry{
			Name:       name,
			SourcePath: filepath.Join(sourceDir, name),
			DestPath:   destPath,
			Collides:   fileExists(destPath),
		})
	}

	logger.Debug().
		Int("installable", len(entries)).
		Str("source", sourceDir).
		Msg("Scan completed")

	return entries, nil
}

// Collisions filters a scan down to the entries that already exist at the
// destination.
func Collisions(entries []types.FileEntry) []types.FileEntry {
	var collisions []types.FileEntry
	for _, entry := range entries {
		if entry.Collides {
			collisions = append(collisions, entry)
		}
	}
	return collisions
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

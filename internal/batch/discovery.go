package batch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spectralab/autofft/pkg/logging"
)

// LoadExcludeList reads the exclusion file: one file name per line, blank
// lines ignored. A missing exclusion file is not an error; it means nothing
// is excluded.
func LoadExcludeList(path string, logger logging.Logger) (map[string]struct{}, error) {
	excluded := make(map[string]struct{})

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("Exclusion file not found, analyzing all files", logging.Fields{
				"path": path,
			})
			return excluded, nil
		}
		return nil, fmt.Errorf("failed to open exclusion file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		excluded[name] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exclusion file %s: %w", path, err)
	}

	logger.Info("Loaded exclusion list", logging.Fields{
		"path":  path,
		"count": len(excluded),
	})
	return excluded, nil
}

// DiscoverFiles enumerates the eligible data files in dir: regular files
// that are neither on the exclusion list nor the exclusion file itself.
// Results are sorted lexicographically for reproducible output naming.
func DiscoverFiles(dir, excludePath string, excluded map[string]struct{}) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}

	excludeClean := filepath.Clean(excludePath)

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if _, skip := excluded[entry.Name()]; skip {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if filepath.Clean(path) == excludeClean {
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

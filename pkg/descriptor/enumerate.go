package descriptor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches the descriptor files directly inside the candidate directory.
const DefaultPattern = "*.plist"

const maxParallelLoads = 8

// Result pairs a candidate file with either its parsed descriptor or the reason it
// could not be loaded.
type Result struct {
	Path       string
	Descriptor *Descriptor
	Err        error
}

// Enumerate lists the regular files under dir matching pattern. The returned paths are
// in directory listing order and include dir as prefix.
func Enumerate(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid candidate pattern '%s': %w", pattern, doublestar.ErrBadPattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("checking candidate directory '%s': %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("candidate directory '%s' is not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("listing candidates in '%s': %w", dir, err)
	}

	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, filepath.Join(dir, filepath.FromSlash(m)))
	}

	zap.S().Debugf("Found %d candidate descriptor(s) in '%s' matching '%s'", len(candidates), dir, pattern)

	return candidates, nil
}

// LoadAll loads every candidate under dir. Individual load failures are reported through
// Result.Err; only enumeration failures are returned as an error.
func LoadAll(dir, pattern string) ([]Result, error) {
	candidates, err := Enumerate(dir, pattern)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(candidates))

	var g errgroup.Group
	g.SetLimit(maxParallelLoads)

	for i, path := range candidates {
		i, path := i, path
		g.Go(func() error {
			d, loadErr := Load(path)
			results[i] = Result{
				Path:       path,
				Descriptor: d,
				Err:        loadErr,
			}
			return nil
		})
	}

	_ = g.Wait()

	return results, nil
}

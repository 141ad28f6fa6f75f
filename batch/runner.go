package batch

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/go-imsto/shrink/utils"
)

// Eligible filters candidate paths down to regular files that carry an
// extension. Directories and extensionless paths are dropped silently;
// they are not failures.
func Eligible(paths []string) []string {
	files := make([]string, 0, len(paths))
	for _, p := range paths {
		if utils.IsRegular(p) && utils.HasExt(p) {
			files = append(files, p)
		}
	}
	return files
}

// Run fans ProcessFile out over every eligible path on a bounded worker
// pool and returns one Outcome per file, in completion order. A file's
// failure travels inside its Outcome and never cancels the rest of the
// batch; the returned error covers setup only (output directory creation
// before any fan-out).
func (r *Runner) Run(paths []string) ([]Outcome, error) {
	files := Eligible(paths)
	if len(files) == 0 {
		logger().Warnw("no eligible files", "candidates", len(paths))
		return nil, nil
	}

	if r.naming == NamingSubdir {
		if err := utils.EnsureDir(r.outDir); err != nil {
			return nil, fmt.Errorf("output dir %s: %w", r.outDir, err)
		}
	}

	results := make(chan Outcome, len(files))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for _, p := range files {
		p := p
		g.Go(func() error {
			name, err := r.ProcessFile(p)
			o := Outcome{Name: name, Err: err}
			if o.Ok() {
				logger().Infow("compressed", "name", name)
			} else {
				logger().Warnw("failed", "name", name, "err", err)
			}
			results <- o
			return nil
		})
	}
	g.Wait() // workers never return errors
	close(results)

	outcomes := make([]Outcome, 0, len(files))
	for o := range results {
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-imsto/shrink/image"
	"github.com/go-imsto/shrink/utils"
)

// Runner owns the fixed settings of one batch: the bound, the output
// location and the worker count. It carries no per-file state; every file
// processed gets its own buffers.
type Runner struct {
	outDir  string
	bound   image.Dimension
	quality image.Quality
	sharpen bool
	naming  Naming
	workers int
}

// NewRunner builds a Runner writing into outDir (used by the subdir naming
// mode). The re-encoding quality is fixed.
func NewRunner(outDir string, opts ...Option) (*Runner, error) {
	if outDir == "" {
		return nil, fmt.Errorf("empty output directory")
	}
	r := &Runner{
		outDir:  outDir,
		bound:   image.DefaultBound,
		quality: image.DefaultQuality,
		sharpen: true,
		naming:  NamingSubdir,
		workers: defaultWorkers(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// OutputPath derives the target filename for one input, deterministic per
// naming mode.
func (r *Runner) OutputPath(path string) string {
	base := filepath.Base(path)
	if r.naming == NamingPrefix {
		return filepath.Join(filepath.Dir(path), "resized_"+base)
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(r.outDir, stem+"_resized.jpg")
}

// ProcessFile runs one file through read, decode, resize, encode and write.
// The first failing step wins; nothing is written unless the whole encoded
// buffer exists, so a failed file leaves no partial output. The returned
// name is the input basename, used for reporting either way.
func (r *Runner) ProcessFile(path string) (string, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return name, fmt.Errorf("read: %w", err)
	}

	src, err := image.Decode(data)
	if err != nil {
		return name, fmt.Errorf("decode: %w", err)
	}

	dst, err := image.Resize(src, r.bound, r.sharpen)
	if err != nil {
		return name, fmt.Errorf("resize: %w", err)
	}

	blob, err := image.Encode(dst, src.Markers, r.quality)
	if err != nil {
		return name, fmt.Errorf("encode: %w", err)
	}

	if err = utils.SaveFile(r.OutputPath(path), blob); err != nil {
		return name, fmt.Errorf("write: %w", err)
	}

	logger().Debugw("processed",
		"name", name,
		"in", fmt.Sprintf("%dx%d", src.Width, src.Height),
		"out", fmt.Sprintf("%dx%d", dst.Width, dst.Height),
		"bytes", len(blob))
	return name, nil
}

package batch

import (
	"runtime"

	"github.com/go-imsto/shrink/image"
)

// Naming selects where outputs land and how they are named.
type Naming string

const (
	// NamingSubdir writes <stem>_resized.jpg into a dedicated output
	// directory.
	NamingSubdir Naming = "subdir"
	// NamingPrefix writes resized_<basename> next to the source file.
	NamingPrefix Naming = "prefix"
)

// Valid reports a known naming mode.
func (n Naming) Valid() bool {
	return n == NamingSubdir || n == NamingPrefix
}

type Option func(*Runner)

func WithBound(d image.Dimension) func(*Runner) {
	return func(r *Runner) {
		if d > 0 {
			r.bound = d
		}
	}
}

func WithSharpen(on bool) func(*Runner) {
	return func(r *Runner) {
		r.sharpen = on
	}
}

func WithNaming(n Naming) func(*Runner) {
	return func(r *Runner) {
		if n.Valid() {
			r.naming = n
		}
	}
}

func WithWorkers(n int) func(*Runner) {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// defaultWorkers bounds fan-out by available CPU parallelism.
func defaultWorkers() int {
	return runtime.NumCPU()
}

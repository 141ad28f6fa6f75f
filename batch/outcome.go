// Package batch runs the decode-resize-encode pipeline over many files in
// parallel, one outcome per input, with per-file fault isolation.
package batch

import (
	"fmt"

	"github.com/go-imsto/shrink/log"
)

func logger() log.Logger {
	return log.Get()
}

// Outcome is the terminal result for one input file: its display name and,
// on failure, the classified error. A batch has no verdict of its own; it
// is just the set of outcomes.
type Outcome struct {
	Name string
	Err  error
}

// Ok reports success.
func (o Outcome) Ok() bool { return o.Err == nil }

func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s FAILED due to %s", o.Name, o.Err)
	}
	return fmt.Sprintf("%s is compressed", o.Name)
}

package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-imsto/shrink/batch"
	"github.com/go-imsto/shrink/config"
	"github.com/go-imsto/shrink/image"
)

var cmdRun = &Command{
	UsageLine: "run [-b bound] [-j workers] [-d name] [-naming mode] [-no-sharpen] [-no-pause] <first-path> [more-paths...]",
	Short:     "resize and recompress JPEG files",
	Long: `
Decode every given JPEG, fit it inside the bound keeping the aspect ratio,
sharpen, re-encode at quality 70 with metadata segments preserved, and
write the result. The output directory is the "compressed" folder beside
the first path (subdir naming) or each file's own folder (prefix naming).
Files are processed in parallel; one bad file never stops the rest.
`,
}

var (
	rBound     uint
	rWorkers   int
	rOutName   string
	rNaming    string
	rNoSharpen bool
	rNoPause   bool
)

func init() {
	cmdRun.Run = runRun
	cmdRun.Flag.UintVar(&rBound, "b", uint(image.DefaultBound), "bounding dimension for the larger side")
	cmdRun.Flag.IntVar(&rWorkers, "j", 0, "concurrent workers (0 means number of CPUs)")
	cmdRun.Flag.StringVar(&rOutName, "d", "compressed", "output subdirectory name, for subdir naming")
	cmdRun.Flag.StringVar(&rNaming, "naming", "", "naming mode: subdir or prefix")
	cmdRun.Flag.BoolVar(&rNoSharpen, "no-sharpen", false, "skip the sharpening pass")
	cmdRun.Flag.BoolVar(&rNoPause, "no-pause", false, "do not wait for a keypress when done")
}

// onDone runs after the batch; swapped out by -no-pause / SHRINK_NO_PAUSE
// so harnesses never block on a keypress.
var onDone = pause

func runRun(args []string) bool {
	if len(args) < 1 {
		return false
	}

	cfg := mergeFlags(config.Current())
	if err := cfg.Validate(); err != nil {
		errorf("bad settings: %s", err)
		return false
	}

	outDir := filepath.Join(filepath.Dir(args[0]), cfg.OutName)
	r, err := batch.NewRunner(outDir,
		batch.WithBound(image.Dimension(cfg.Bound)),
		batch.WithWorkers(cfg.Workers),
		batch.WithSharpen(cfg.Sharpen),
		batch.WithNaming(batch.Naming(cfg.Naming)),
	)
	if err != nil {
		errorf("setup: %s", err)
		return false
	}

	outcomes, err := r.Run(args)
	if err != nil {
		// setup failure before any file was touched
		logger().Fatalw("batch setup failed", "err", err)
		return false
	}

	var ok, failed int
	for _, o := range outcomes {
		fmt.Println(o)
		if o.Ok() {
			ok++
		} else {
			failed++
		}
	}
	logger().Infow("done", "total", len(outcomes), "ok", ok, "failed", failed)

	if !cfg.NoPause && onDone != nil {
		onDone()
	}
	return true
}

// mergeFlags lays explicitly set flags over the environment settings.
func mergeFlags(cfg config.Settings) config.Settings {
	cmdRun.Flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b":
			cfg.Bound = rBound
		case "j":
			cfg.Workers = rWorkers
		case "d":
			cfg.OutName = rOutName
		case "naming":
			cfg.Naming = rNaming
		case "no-sharpen":
			cfg.Sharpen = !rNoSharpen
		case "no-pause":
			cfg.NoPause = rNoPause
		}
	})
	return cfg
}

func pause() {
	fmt.Print("Press any key to continue...")
	var b [1]byte
	os.Stdin.Read(b[:])
	fmt.Println()
}

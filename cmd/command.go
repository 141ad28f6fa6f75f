// Package cmd The command line tool for running the shrink batch.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/go-imsto/shrink/config"
	zlog "github.com/go-imsto/shrink/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(args []string) bool
	UsageLine, Short, Long string
	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

func (cmd *Command) Usage() {
	fmt.Fprintf(os.Stderr, "Usage: shrink %s\n", cmd.UsageLine)
	fmt.Fprintf(os.Stderr, "Default Usage:\n")
	cmd.Flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "Description:\n")
	fmt.Fprintf(os.Stderr, "  %s\n", strings.TrimSpace(cmd.Long))
	os.Exit(2)
}

var commands = []*Command{
	cmdRun,
}

func logger() zlog.Logger {
	return zlog.Get()
}

func knownCommand(name string) bool {
	for _, cmd := range commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

func Main() {
	flag.Usage = func() { usage(1) }
	flag.Parse()
	args := flag.Args()

	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "bad settings: %s\n", err)
		os.Exit(2)
	}

	if len(args) < 1 || args[0] == "help" {
		if len(args) == 1 {
			usage(0)
		}
		if len(args) > 1 {
			for _, cmd := range commands {
				if cmd.Name() == args[1] {
					tmpl(os.Stdout, helpTemplate, cmd)
					return
				}
			}
		}
		usage(2)
	}

	var zl *zap.Logger
	if config.InDevelop() {
		zl, _ = zap.NewDevelopment()
		zl.Debug("logger start")
	} else {
		zl, _ = zap.NewProduction()
	}
	defer zl.Sync() // flushes buffer, if any
	zlog.Set(zl.Sugar())

	// A first argument that names no command is a path for the default
	// run command.
	if !knownCommand(args[0]) {
		args = append([]string{"run"}, args...)
	}

	for _, cmd := range commands {
		name := cmd.Name()
		if name == args[0] && cmd.Run != nil {
			cmd.Flag.Usage = func() { cmd.Usage() }
			cmd.Flag.Parse(args[1:])
			args = cmd.Flag.Args()

			if !cmd.Run(args) {
				fmt.Fprintf(os.Stderr, "\n")
				cmd.Flag.Usage()
				fmt.Fprintf(os.Stderr, "Default Parameters:\n")
				cmd.Flag.PrintDefaults()
			}
			return
		}
	}

	errorf("unknown command %q\nRun 'shrink help' for usage.\n", args[0])
}

func errorf(format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

const usageTemplate = `usage: shrink [command] [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Use "shrink help [command]" for more information.
A first argument that is a path runs the "run" command on it.
`

var helpTemplate = `usage: shrink {{.UsageLine}}
{{.Long}}
`

func usage(exitCode int) {
	fmt.Fprintln(os.Stderr, "version ", config.Version)
	tmpl(os.Stderr, usageTemplate, commands)
	os.Exit(exitCode)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

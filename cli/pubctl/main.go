package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"pubkit/cli/pubctl/internal/cmdregistry"
	"pubkit/cli/pubctl/internal/commands/allcmd"
	"pubkit/cli/pubctl/internal/commands/buildcmd"
	"pubkit/cli/pubctl/internal/commands/checkcmd"
	"pubkit/cli/pubctl/internal/commands/cleancmd"
	"pubkit/cli/pubctl/internal/commands/publishcmd"
	"pubkit/cli/pubctl/internal/execx"
	"pubkit/cli/pubctl/internal/pipeline"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: pubctl [--dist DIR] [--dry-run] <action>

Actions:
  clean     remove previously built artifacts and the dist directory
  build     build the distributable package
  check     validate the built artifacts
  test      upload the artifacts to Test PyPI
  publish   upload the artifacts to PyPI (asks for confirmation)
  all       clean, build, and check in order

Flags:
  --dist DIR   artifact directory (default "dist")
  --dry-run    print external commands to stderr instead of running them`)
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("PUBKIT_DEBUG") == "1" {
		log.SetLevel(log.DebugLevel)
	}

	dist := "dist"
	dryRun := false
	args := os.Args[1:]
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "--dist":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--dist requires value")
				os.Exit(2)
			}
			dist = args[i+1]
			i++
		case "--dry-run":
			dryRun = true
		case "-h", "--help", "help":
			usage()
			return
		default:
			out = append(out, a)
		}
	}
	args = out
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	action := args[0]

	registry := cmdregistry.New()
	cleancmd.Register(registry)
	buildcmd.Register(registry)
	checkcmd.Register(registry)
	publishcmd.Register(registry)
	allcmd.Register(registry)

	handler, ok := registry.Lookup(action)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown action: %s\n\n", action)
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pipe := &pipeline.Pipeline{
		Dist:    dist,
		Run:     execx.Host{},
		Confirm: pipeline.LineConfirmer{In: os.Stdin},
		DryRun:  dryRun,
	}
	err := handler(&cmdregistry.Context{Ctx: ctx, Pipe: pipe})

	// Single translation point: every stage failure or cancellation is
	// reported here and nowhere else.
	switch {
	case err == nil:
		fmt.Println("✓ Action completed successfully!")
	case errors.Is(err, context.Canceled):
		fmt.Println("\n✗ Cancelled by user")
		os.Exit(1)
	default:
		var ee *execx.ExitError
		if errors.As(err, &ee) {
			fmt.Printf("✗ Command failed with exit code %d\n", ee.Code)
		} else {
			fmt.Printf("✗ %v\n", err)
		}
		os.Exit(1)
	}
}

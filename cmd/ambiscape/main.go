// SPDX-License-Identifier: MIT

// Command ambiscape instantiates a YAML scene specification and writes the
// resulting scene as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/ambiscape/soundscape"
	"github.com/katalvlaran/ambiscape/specfile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ambiscape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "Random seed (0 uses the default seed)")
	outFile := fs.String("o", "", "Output file (default: stdout)")
	noRepeat := fs.Bool("no-repeat", false, "Use each source file at most once per role")
	quiet := fs.Bool("quiet", false, "Do not log warnings")
	schema := fs.Bool("schema", false, "Print the JSON schema of the output and exit")
	stats := fs.Bool("stats", false, "Print polyphony statistics to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ambiscape [options] scene.yaml\n\nInstantiates an ambisonics scene specification.\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  ambiscape -seed 7 park.yaml\n")
		fmt.Fprintf(stderr, "  ambiscape -no-repeat -o scene.json park.yaml\n")
		fmt.Fprintf(stderr, "  ambiscape -schema\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *schema {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(soundscape.Schema())
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one scene file")
	}

	f, err := specfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	// Validation warnings resurface on the scene and are logged by Generate.
	sc, _, err := f.Build()
	if err != nil {
		return err
	}

	gen := []soundscape.GenerateOption{
		soundscape.WithSeed(*seed),
		soundscape.WithAllowRepeatedSource(!*noRepeat),
		soundscape.WithLogger(slog.New(slog.NewTextHandler(stderr, nil))),
	}
	if *quiet {
		gen = append(gen, soundscape.WithoutWarnings())
	}
	scene, err := sc.Generate(ctx, gen...)
	if err != nil {
		return err
	}

	if *outFile != "" {
		if err := writeFile(*outFile, scene.Encode); err != nil {
			return err
		}
	} else if err := scene.Encode(stdout); err != nil {
		return err
	}

	if *stats {
		gini, err := scene.PolyphonyGini(soundscape.DefaultHop)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Events:    %d foreground, %d background\n", len(scene.Foreground()), len(scene.Background()))
		fmt.Fprintf(stderr, "Polyphony: max %d, gini %.3f\n", scene.MaxPolyphony(), gini)
	}
	return nil
}

// writeFile creates path and hands it to write. Close errors are returned.
func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := write(fh); err != nil {
		fh.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

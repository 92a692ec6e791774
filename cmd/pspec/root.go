package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/pspec/internal/config"
	"github.com/dkoosis/pspec/internal/detect"
	"github.com/dkoosis/pspec/pkg/collect"
	"github.com/dkoosis/pspec/pkg/gotest"
	"github.com/dkoosis/pspec/pkg/report"
	"github.com/dkoosis/pspec/pkg/reporter"
	"github.com/dkoosis/pspec/pkg/testjson"
)

const defaultWidth = 80

type rootOptions struct {
	pspec      bool
	format     string
	color      string
	configPath string
	dir        string
	logLevel   string

	stdin          io.Reader
	stdout, stderr io.Writer
}

// statsConsumer is a reporter whose statistics decide the exit code.
type statsConsumer interface {
	report.Consumer
	Stats() *report.Stats
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	return exitCode(cmd.ExecuteContext(context.Background()), stderr)
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "pspec",
		Short: "Render go test -json output as a readable specification",
		Long: `pspec reads a go test -json stream on stdin and prints each test as a
sentence grouped under its package or parent test.

  go test -json ./... | pspec --pspec`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: exitUsage, err: err}
	})

	f := cmd.Flags()
	f.BoolVar(&o.pspec, "pspec", false, "Render test outcomes as a specification")
	f.StringVar(&o.format, "format", config.DefaultFormat, "Line format: utf8 or plaintext")
	f.StringVar(&o.color, "color", config.DefaultColor, "Colour output: yes, no or auto")
	f.StringVar(&o.configPath, "config", "", "Config file (default .pspec.yaml, then ~/.config/pspec/.pspec.yaml)")
	f.StringVar(&o.dir, "dir", ".", "Module root scanned for test doc comments")
	f.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "Diagnostics level: debug, info, warn or error")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg, err := config.ResolveConfig(config.CliFlags{
		ConfigPath:  o.configPath,
		Format:      o.format,
		FormatSet:   flags.Changed("format"),
		Color:       o.color,
		ColorSet:    flags.Changed("color"),
		LogLevel:    o.logLevel,
		LogLevelSet: flags.Changed("log-level"),
	})
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	logger := newLogger(o.stderr, cfg.LogLevel)
	logger.Debug("configuration resolved",
		"path", cfg.ConfigPath,
		"format", cfg.Format, "format_source", cfg.FormatSource,
		"color", cfg.Color, "color_source", cfg.ColorSource)

	br := bufio.NewReaderSize(o.stdin, 64*1024)
	peeked, _ := br.Peek(4096)
	if len(peeked) == 0 {
		return usageError("no input on stdin")
	}
	if format := detect.Sniff(peeked); format != detect.GoTestJSON {
		return usageError("unrecognized input format %s (expected go test -json)", format)
	}

	opts := reporter.Options{
		Patterns: cfg.Patterns,
		Format:   cfg.Format,
		Color:    cfg.UseColor(isTTYWriter(o.stdout)),
		Width:    termWidth(o.stdout),
		Logger:   logger,
	}
	var consumer statsConsumer
	adapterOpts := []gotest.Option{gotest.WithLogger(logger)}
	if o.pspec {
		consumer = reporter.NewSpec(o.stdout, opts)
		adapterOpts = append(adapterOpts, gotest.WithDocs(loadDocs(o.dir, logger)))
	} else {
		consumer = reporter.NewDefault(o.stdout, opts)
	}
	adapter := gotest.New(consumer, adapterOpts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	// bufio.Reader doesn't implement io.Closer, so Stream can't close stdin
	// itself on cancel.
	if c, ok := o.stdin.(io.Closer); ok {
		stopClose := context.AfterFunc(ctx, func() { _ = c.Close() })
		defer stopClose()
	}

	start := time.Now()
	malformed, streamErr := testjson.Stream(ctx, br, adapter.Handle)
	if malformed > 0 {
		logger.Warn("skipped malformed lines", "count", malformed)
	}

	// The footer covers whatever was read, even when the stream broke off.
	if err := consumer.Finish(time.Since(start)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	switch {
	case streamErr != nil && !errors.Is(streamErr, context.Canceled):
		return &exitError{code: exitUsage, err: fmt.Errorf("reading go test -json: %w", streamErr)}
	case streamErr != nil:
		logger.Warn("interrupted")
		return &exitError{code: exitInterrupted, err: streamErr}
	case consumer.Stats().Failed():
		return &exitError{code: exitFailed, err: errTestsFailed}
	}
	return nil
}

// loadDocs scans the module at dir for test doc comments. Descriptions are
// optional, so failures are logged and an empty set is returned.
func loadDocs(dir string, logger *log.Logger) collect.Docs {
	modulePath, err := collect.ModulePath(dir)
	if err != nil {
		logger.Debug("test descriptions disabled", "dir", dir, "err", err)
		return nil
	}
	docs, err := collect.Scan(dir, modulePath)
	if err != nil {
		logger.Warn("scanning test doc comments", "dir", dir, "err", err)
	}
	logger.Debug("scanned test doc comments", "module", modulePath, "packages", len(docs))
	return docs
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return defaultWidth
}

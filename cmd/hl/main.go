package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aybabtme/rgbterm"
	"github.com/humanlogio/hl"
	"github.com/humanlogio/hl/internal/pkg/config"
	"github.com/humanlogio/hl/pkg/sink"
	"github.com/humanlogio/hl/pkg/sink/bufsink"
	"github.com/humanlogio/hl/pkg/sink/stdiosink"
	"github.com/humanlogio/hl/pkg/sink/teesink"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli"
)

var version = "devel"

// lines written to the --tee file per batch
const teeBatchSize = 64

func main() {
	// broken pipes must come back as EPIPE from write instead of
	// killing the process, so a pager quitting early ends the run cleanly
	signal.Ignore(syscall.SIGPIPE)

	app := newApp(os.Stdin, os.Stdout)

	log.SetFlags(0)
	log.SetPrefix(app.Name + "> ")
	if fd := os.Stderr.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		log.SetPrefix(rgbterm.FgString(app.Name+"> ", 99, 99, 99))
	}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {

	fieldFlag := cli.StringSliceFlag{
		Name:  "field, f",
		Usage: "color a field, as `FIELD:COLOR`; colors are default, black, red, green, yellow, blue, magenta, cyan, white, fixed(N), rgb(R,G,B) and size",
		Value: &cli.StringSlice{},
	}
	delimiterFlag := cli.StringFlag{
		Name:  "delimiter, delimeter, d",
		Usage: "delimiter between fields",
		Value: *config.DefaultConfig.Delimiter,
	}
	skipFlag := cli.StringFlag{
		Name:  "skip, s",
		Usage: "skip to a substring and match fields after it",
	}
	yellowSizeFlag := cli.StringFlag{
		Name:  "yellow-size",
		Usage: "sizes above this are yellow, for the \"size\" color",
		Value: *config.DefaultConfig.YellowSize,
	}
	redSizeFlag := cli.StringFlag{
		Name:  "red-size",
		Usage: "sizes above this are red, for the \"size\" color",
		Value: *config.DefaultConfig.RedSize,
	}
	colorFlag := cli.StringFlag{
		Name:  "color",
		Usage: "when to color output: on, off or auto",
		Value: *config.DefaultConfig.ColorMode,
	}
	teeFlag := cli.StringFlag{
		Name:  "tee",
		Usage: "also write lines, without colors, to this file",
	}
	configFlag := cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML config file; defaults to ~/.config/hl/config.yaml when it exists",
	}

	app := cli.NewApp()
	app.Name = "hl"
	app.Version = version
	app.Usage = "reads lines from stdin, colors some of their fields on stdout"
	app.Flags = []cli.Flag{fieldFlag, delimiterFlag, skipFlag, yellowSizeFlag, redSizeFlag, colorFlag, teeFlag, configFlag}

	app.Action = func(c *cli.Context) error {
		fileCfg, err := readConfig(c.String(configFlag.Name), c.IsSet(configFlag.Name))
		if err != nil {
			return err
		}

		var flagCfg config.Config
		if c.IsSet("field") {
			fields := c.StringSlice("field")
			flagCfg.Fields = &fields
		}
		for _, f := range []struct {
			name string
			dst  **string
		}{
			{"delimiter", &flagCfg.Delimiter},
			{"skip", &flagCfg.Skip},
			{yellowSizeFlag.Name, &flagCfg.YellowSize},
			{redSizeFlag.Name, &flagCfg.RedSize},
			{colorFlag.Name, &flagCfg.ColorMode},
		} {
			if c.IsSet(f.name) {
				v := c.String(f.name)
				*f.dst = &v
			}
		}
		cfg := flagCfg.PopulateEmpty(fileCfg)

		opts, dups, err := cfg.Options()
		if err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}
		for _, dup := range dups {
			logwarn("binding %q is never used, field %d is already colored by %q", dup.Input, dup.Field, dup.Shadow)
		}
		if opts.YellowSize > opts.RedSize {
			logwarn("yellow size is above red size, sizes are never yellow")
		}

		colorMode, err := config.GrokColorMode(*cfg.ColorMode)
		if err != nil {
			return err
		}
		sinks := []sink.Sink{stdiosink.NewStdio(stdout, stdiosink.StdioOptsFrom(colorMode))}
		var teeBuf *bufsink.SizedBuffer
		if path := c.String(teeFlag.Name); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("opening tee file: %w", err)
			}
			defer f.Close()
			teeBuf = bufsink.NewSizedBufferedSink(teeBatchSize, stdiosink.NewStdio(f, stdiosink.StdioOptsFrom(config.ColorModeOff)))
			sinks = append(sinks, teeBuf)
		}

		ctx := context.Background()
		logdebug("fields=%d delimiter=%q red=%d yellow=%d", len(opts.Fields), opts.Delimiter, opts.RedSize, opts.YellowSize)
		scanErr := hl.Scan(ctx, stdin, teesink.NewTeeSink(sinks...), opts)
		if teeBuf != nil {
			// lines seen before a failing one still belong in the file
			if err := teeBuf.Flush(ctx); err != nil {
				logerror("writing tee file: %v", err)
				if scanErr == nil {
					return fmt.Errorf("writing tee file: %w", err)
				}
			}
		}
		if scanErr != nil {
			return fmt.Errorf("scanning caught an error: %w", scanErr)
		}
		return nil
	}
	return app
}

func readConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit {
		dflt, err := config.GetDefaultConfigFilepath()
		if err != nil {
			loginfo("no config file: %v", err)
			return &config.DefaultConfig, nil
		}
		path = dflt
	}
	cfg, err := config.ReadConfigFile(path, &config.DefaultConfig, explicit)
	if err != nil {
		logerror("can't read config file: %v", err)
		return nil, err
	}
	return cfg, nil
}

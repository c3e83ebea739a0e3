// Copyright
// SPDX-License-Identifier: MIT
// pullrefresh: pull-to-refresh overscroll demo with bubbletea and tcell hosts + scenario simulator
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"

	cfg "pullrefresh/internal/config"
	"pullrefresh/internal/feed"
	"pullrefresh/internal/feedback"
	"pullrefresh/internal/logging"
	"pullrefresh/internal/session"
	"pullrefresh/internal/sim"
	"pullrefresh/internal/surface"
	"pullrefresh/internal/tcellhost"
	appTUI "pullrefresh/internal/tui"
)

const Version = "0.1.0"

const (
	settleRatio = 0.5
	soundVolume = 0.5
	saveDir     = ".pullrefresh/logs"
)

/* ---------- CLI ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	var err error
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "--version":
		fmt.Println("pullrefresh", Version)
	case "init":
		err = cmdInit(os.Args[2:])
	case "tui":
		err = cmdTUI(os.Args[2:])
	case "tcell":
		err = cmdTcell(os.Args[2:])
	case "sim":
		err = cmdSim(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pullrefresh:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`pullrefresh ` + Version + `
Pull past the top or bottom of a list to reveal a refresh accessory; release once it is fully shown to refresh.
USAGE
  pullrefresh <command> [options]
COMMANDS
  tui          Run the demo in a bubbletea terminal UI (mouse wheel pulls the list)
  tcell        Run the same demo on a raw tcell screen
  sim          Replay the reference scenarios headlessly and print their notification traces
  init         Write pullrefresh.json with default settings
  help         Show help (try: pullrefresh help tui)
  version      Print version
NOTES
  • Logs go to --log-file only; the terminal belongs to the UI. Use -v or -vv for more detail.
  • An accessory height of 0 disables pulling on that edge.
`)
}

func helpTopic(name string) {
	switch name {
	case "tui", "tcell":
		fmt.Println(`USAGE
  pullrefresh ` + name + ` [--config PATH] [--top N] [--bottom N] [--lines N] [--feed-url URL]
                 [--sound] [--no-color] [-v | -vv] [--log-file PATH]
DESCRIPTION
  Shows a list of lines with a refresh accessory above and below it. Scroll the wheel
  past either end to pull the accessory into view. Releasing after it is fully visible
  triggers a refresh; new lines are prepended (top) or appended (bottom) and marked with "+".
OPTIONS
  --config PATH          Settings file (default: pullrefresh.json; defaults apply if missing)
  --top N                Top accessory rows (0 disables the top edge)
  --bottom N             Bottom accessory rows (0 disables the bottom edge)
  --lines N              Initial number of lines
  --feed-url URL         Fetch refresh lines from URL (JSON array of strings) instead of generating them
  --sound                Play a chime when an accessory sticks and a tick when it recedes
  --no-color             Disable colors (NO_COLOR is honoured too)
  -v                     Verbose logs (INFO)
  -vv                    Debug logs (every edge transition)
  --log-file PATH        Append JSON logs to file (created if missing)
`)
	case "sim":
		fmt.Println(`USAGE
  pullrefresh sim [A|B|C|D|all] [-v | -vv] [--log-file PATH]
DESCRIPTION
  Runs a scripted event sequence against the coordinator and a frictionless scroll view,
  printing each step and the accessory/delegate notifications it caused. Default: all.
`)
	case "init":
		fmt.Println(`USAGE
  pullrefresh init [--config PATH] [--force]
DESCRIPTION
  Writes the default settings to PATH (default: pullrefresh.json). Refuses to overwrite
  an existing file unless --force is given.
`)
	default:
		usage()
	}
}

/* ---------- shared flags ---------- */

type runFlags struct {
	configPath string
	top        int
	bottom     int
	lines      int
	feedURL    string
	sound      bool
	noColor    bool
	verbose    bool
	debug      bool
	logPath    string
}

func newRunFlags(fs *flag.FlagSet) *runFlags {
	f := &runFlags{}
	fs.StringVar(&f.configPath, "config", cfg.DefaultPath, "Settings file")
	fs.IntVar(&f.top, "top", -1, "Top accessory rows (0 disables)")
	fs.IntVar(&f.bottom, "bottom", -1, "Bottom accessory rows (0 disables)")
	fs.IntVar(&f.lines, "lines", -1, "Initial number of lines")
	fs.StringVar(&f.feedURL, "feed-url", "", "Fetch refresh lines from URL")
	fs.BoolVar(&f.sound, "sound", false, "Play feedback tones")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fs.BoolVar(&f.verbose, "v", false, "Verbose logs (INFO)")
	fs.BoolVar(&f.debug, "vv", false, "Debug logs (DEBUG)")
	fs.StringVar(&f.logPath, "log-file", "", "Append logs to file (created if missing)")
	return f
}

func (f *runFlags) verbosity() int {
	switch {
	case f.debug:
		return logging.DEBUG
	case f.verbose:
		return logging.VERBOSE
	}
	return logging.DEFAULT
}

// settings loads the file and lays the flags over it.
func (f *runFlags) settings() (*cfg.Config, error) {
	c, err := cfg.LoadOrDefault(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.top >= 0 {
		c.TopAccessoryRows = f.top
	}
	if f.bottom >= 0 {
		c.BottomAccessoryRows = f.bottom
	}
	if f.lines >= 0 {
		c.InitialLines = f.lines
	}
	if f.feedURL != "" {
		c.FeedURL = f.feedURL
	}
	if f.sound {
		c.Sound = true
	}
	if f.noColor {
		c.NoColor = true
	}
	if f.logPath != "" {
		c.LogFile = f.logPath
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// demo is everything a host needs, built from the settings.
type demo struct {
	cfg     *cfg.Config
	log     logr.Logger
	sess    *session.Session
	player  *feedback.Player
	closers []func() error
}

func (d *demo) Close() {
	if d.player != nil {
		d.player.Close()
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

func setup(f *runFlags) (*demo, error) {
	c, err := f.settings()
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logging.New(c.LogFile, f.verbosity())
	if err != nil {
		return nil, err
	}
	d := &demo{cfg: c, log: log, closers: []func() error{closeLog}}

	src, err := feed.New(c.FeedURL, c.RefreshDelay.D())
	if err != nil {
		d.Close()
		return nil, err
	}

	opts := session.Options{
		TopRows:    c.TopAccessoryRows,
		BottomRows: c.BottomAccessoryRows,
		Lines:      feed.Initial(c.InitialLines),
		Physics: surface.Config{
			WheelStep:     c.WheelStep,
			Resistance:    c.Resistance,
			MaxOverscroll: c.MaxOverscroll,
			SettleRatio:   settleRatio,
		},
		Source: src,
		Log:    log,
	}
	if c.Sound {
		d.player = feedback.NewPlayer(soundVolume)
		if err := d.player.Open(); err != nil {
			log.Error(err, "audio unavailable, continuing without sound")
		} else {
			opts.Sound = d.player
		}
	}
	d.sess = session.New(opts)
	log.V(logging.VERBOSE).Info("session ready",
		"top", c.TopAccessoryRows, "bottom", c.BottomAccessoryRows,
		"lines", c.InitialLines, "feed", c.FeedURL)
	return d, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

/* ---------- commands ---------- */

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() { helpTopic("init") }
	path := fs.String("config", cfg.DefaultPath, "Settings file to write")
	force := fs.Bool("force", false, "Overwrite an existing file")
	_ = fs.Parse(args)

	if _, err := os.Stat(*path); err == nil && !*force {
		fmt.Println(*path, "already exists; not overwriting")
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", *path, err)
	}
	if err := cfg.Save(*path, cfg.Default()); err != nil {
		return err
	}
	fmt.Println("Wrote", *path)
	return nil
}

func cmdTUI(args []string) error {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	fs.Usage = func() { helpTopic("tui") }
	f := newRunFlags(fs)
	_ = fs.Parse(args)

	d, err := setup(f)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, stop := signalContext()
	defer stop()
	err = appTUI.Run(ctx, d.sess, appTUI.Options{
		IdleTimeout: d.cfg.GestureIdle.D(),
		SettleFrame: d.cfg.SettleFrame.D(),
		NoColor:     d.cfg.NoColor,
		Player:      d.player,
		Sound:       d.cfg.Sound,
		SaveDir:     saveDir,
		Log:         d.log,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func cmdTcell(args []string) error {
	fs := flag.NewFlagSet("tcell", flag.ExitOnError)
	fs.Usage = func() { helpTopic("tcell") }
	f := newRunFlags(fs)
	_ = fs.Parse(args)

	d, err := setup(f)
	if err != nil {
		return err
	}
	defer d.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signalContext()
	defer stop()
	host := tcellhost.New(ctx, screen, d.sess, tcellhost.Options{
		IdleTimeout: d.cfg.GestureIdle.D(),
		SettleFrame: d.cfg.SettleFrame.D(),
		NoColor:     d.cfg.NoColor,
		Log:         d.log,
	})
	if err := host.Run(); err != nil {
		return fmt.Errorf("tcell: %w", err)
	}
	return nil
}

func cmdSim(args []string) error {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	fs.Usage = func() { helpTopic("sim") }
	verbose := fs.Bool("v", false, "Verbose logs (INFO)")
	debug := fs.Bool("vv", false, "Debug logs (DEBUG)")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	_ = fs.Parse(args)

	verbosity := logging.DEFAULT
	if *debug {
		verbosity = logging.DEBUG
	} else if *verbose {
		verbosity = logging.VERBOSE
	}
	log, closeLog, err := logging.New(*logPath, verbosity)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	names := fs.Args()
	if len(names) == 0 || (len(names) == 1 && strings.EqualFold(names[0], "all")) {
		names = sim.Names()
	}
	for i, name := range names {
		sc, ok := sim.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown scenario %q (have %s)", name, strings.Join(sim.Names(), ", "))
		}
		if i > 0 {
			fmt.Println()
		}
		if err := sim.Run(sc, log.WithValues("scenario", sc.Name)).Write(os.Stdout); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}
	return nil
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command swagos runs the SwagOS demo on the cooperative executor.
//
// By default the screen is drawn to the terminal with ANSI escapes and
// keys are read from stdin (type a digit or ESC and press Enter; q also
// stops the running program). With -window, binaries built with cgo and
// -tags window open an ebiten window instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"code.hybscloud.com/coop/host"
	"code.hybscloud.com/coop/internal/demo"
)

type options struct {
	ticks   int
	hz      int
	fps     int
	seed    uint
	window  bool
	verbose bool
}

func main() {
	var opt options
	flag.IntVar(&opt.ticks, "ticks", 0, "Stop after N scheduler steps (0 = run forever).")
	flag.IntVar(&opt.hz, "hz", 0, "Scheduler steps per second (0 = unpaced).")
	flag.IntVar(&opt.fps, "fps", 30, "Screen redraws per second.")
	flag.UintVar(&opt.seed, "seed", host.DefaultSeed, "Random seed.")
	flag.BoolVar(&opt.window, "window", false, "Open a window instead of drawing to the terminal.")
	flag.BoolVar(&opt.verbose, "v", false, "Log slot lifecycle events to stderr.")
	flag.Parse()

	cfg := demo.Config(demo.DefaultTiming())
	cfg.Seed = uint32(opt.seed)
	cfg.MaxPolls = opt.ticks
	if opt.verbose {
		cfg.Logger = stdLogger{log.New(os.Stderr, "swagos: ", log.LstdFlags|log.Lmicroseconds)}
	}

	var err error
	if opt.window {
		err = runWindow(cfg, opt)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = runTerminal(ctx, cfg, opt, os.Stdin, os.Stdout)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, demo.ErrSwagOverload) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// stdLogger adapts a standard library logger to host.Logger.
type stdLogger struct {
	l *log.Logger
}

func (s stdLogger) WriteLineString(line string) {
	s.l.Println(line)
}

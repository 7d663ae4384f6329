package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"schedsim/internal/report"
	"schedsim/internal/sched"
	"schedsim/internal/workload"
)

var (
	realtime    bool   // pace ticks with the wall clock
	tickMS      int    // wall-clock length of one tick
	csvPath     string // CSV event log
	showGantt   bool   // print the timeline
	interactive bool   // read "name burst" lines from stdin while running
)

// runCmd simulates one policy over one workload
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one scheduling policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("realtime") {
			cfg.Realtime = realtime
		}
		if cmd.Flags().Changed("tick-ms") {
			cfg.TickMS = tickMS
		}
		if cmd.Flags().Changed("csv") {
			cfg.CSVPath = csvPath
		}

		procs, err := loadProcesses(cmd, &cfg)
		if err != nil {
			return err
		}
		sel, err := cfg.Selector()
		if err != nil {
			return err
		}
		if err := workload.Validate(procs, sel.Kind(), cfg.Quantum); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		engine := sched.NewEngine(sel)
		if cfg.CSVPath != "" {
			csvLog, err := sched.NewCSVLogger(cfg.CSVPath, engine.Table())
			if err != nil {
				return err
			}
			defer func() {
				if err := csvLog.Close(); err != nil {
					logrus.Errorf("closing csv log: %v", err)
				}
			}()
			engine.Subscribe(csvLog)
		}
		for _, p := range procs {
			if err := engine.Register(p); err != nil {
				return err
			}
		}

		logrus.Infof("Starting %s simulation with %d processes (quantum=%d, realtime=%v)",
			strings.ToUpper(string(sel.Kind())), len(procs), cfg.Quantum, cfg.Realtime)

		if cfg.Realtime {
			engine.Subscribe(&report.Console{W: out, Table: engine.Table()})
			if err := runRealtime(cmd.Context(), engine, cfg, procs, cmd.InOrStdin()); err != nil {
				return err
			}
		} else {
			for !engine.Tick() {
			}
		}

		title := fmt.Sprintf("%s results", strings.ToUpper(string(sel.Kind())))
		if showGantt {
			report.Gantt(out, engine.History(), engine.Results())
		}
		report.Results(out, title, engine.Results())
		logrus.Info("Simulation complete.")
		return nil
	},
}

func runRealtime(parent context.Context, engine *sched.Engine, cfg sched.Config, procs []sched.Process, in io.Reader) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	driver := sched.NewDriver(engine, time.Duration(cfg.TickMS)*time.Millisecond)
	if interactive {
		go readInjections(ctx, driver, in, procs, engine.Selector().Kind(), cfg.Quantum)
	}
	return driver.Run(ctx)
}

// readInjections turns "name burst" lines into processes arriving immediately.
func readInjections(ctx context.Context, d *sched.Driver, in io.Reader, procs []sched.Process, kind sched.Kind, q int) {
	var nextID sched.ProcessID
	for _, p := range procs {
		if p.ID > nextID {
			nextID = p.ID
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			logrus.Warnf("expected \"name burst\", got %q", scanner.Text())
			continue
		}
		burst, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			logrus.Warnf("bad burst %q: %v", fields[1], err)
			continue
		}
		p := sched.NewProcess(nextID+1, fields[0], 0, burst)
		if err := workload.Validate([]sched.Process{p}, kind, q); err != nil {
			logrus.Warn(err)
			continue
		}
		nextID++
		d.InjectNow(p)
	}
}

func init() {
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "Pace ticks with the wall clock and print events")
	runCmd.Flags().IntVar(&tickMS, "tick-ms", 500, "Milliseconds per tick in realtime mode")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write every engine event to this CSV file")
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Print a text timeline")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "In realtime mode, read \"name burst\" lines from stdin and inject them")
}

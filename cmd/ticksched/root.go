package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"schedsim/internal/sched"
	"schedsim/internal/workload"
)

var (
	configPath   string // YAML config file
	workloadPath string // YAML workload file
	presetName   string // built-in workload
	policyName   string // scheduling policy
	quantum      int    // round robin time slice
	logLevel     string // log verbosity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "ticksched",
	Short:         "Tick-by-tick CPU scheduling simulator (FCFS, SJF, SRTF, Round Robin)",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the flags the user actually set.
func loadConfig(cmd *cobra.Command) (sched.Config, error) {
	cfg, err := sched.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy = policyName
	}
	if cmd.Flags().Changed("quantum") {
		cfg.Quantum = quantum
	}
	if !cmd.Flags().Changed("log") && configPath != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return cfg, fmt.Errorf("config log_level %q: %w", cfg.LogLevel, err)
		}
		logrus.SetLevel(level)
	}
	return cfg, nil
}

// loadProcesses returns the normalized processes of the workload file or the
// preset. Policy and quantum from a workload file fill in values the user
// did not set on the command line.
func loadProcesses(cmd *cobra.Command, cfg *sched.Config) ([]sched.Process, error) {
	var procs []sched.Process
	switch {
	case workloadPath != "":
		f, err := workload.Load(workloadPath)
		if err != nil {
			return nil, err
		}
		if f.Policy != "" && !cmd.Flags().Changed("policy") {
			cfg.Policy = f.Policy
		}
		if f.Quantum > 0 && !cmd.Flags().Changed("quantum") {
			cfg.Quantum = f.Quantum
		}
		procs = f.Processes
	default:
		p, ok := workload.Preset(presetName)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q; valid: %v", presetName, workload.PresetNames())
		}
		procs = p
	}
	return workload.Normalize(procs), nil
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&workloadPath, "workload", "", "YAML workload file (overrides --preset)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "default", "Built-in workload name")
	rootCmd.PersistentFlags().StringVar(&policyName, "policy", string(sched.KindFCFS), "Scheduling policy (fcfs, sjf, srtf, rr)")
	rootCmd.PersistentFlags().IntVar(&quantum, "quantum", sched.DefaultQuantum, "Round robin quantum in ticks")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(runCmd, compareCmd, presetsCmd)
}

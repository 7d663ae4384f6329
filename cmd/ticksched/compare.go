package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"schedsim/internal/report"
	"schedsim/internal/sched"
	"schedsim/internal/workload"
)

var showDetails bool

// compareCmd runs every policy over the same workload
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run FCFS, SJF, SRTF and Round Robin on the same workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		procs, err := loadProcesses(cmd, &cfg)
		if err != nil {
			return err
		}
		if err := workload.Validate(procs, sched.KindRR, cfg.Quantum); err != nil {
			return err
		}

		selectors := make([]sched.Selector, 0, len(sched.PolicyNames()))
		for _, name := range sched.PolicyNames() {
			selectors = append(selectors, sched.MustSelector(name, cfg.Quantum))
		}
		outcomes := sched.Compare(selectors, procs)

		out := cmd.OutOrStdout()
		if showDetails {
			for _, o := range outcomes {
				report.Results(out, fmt.Sprintf("%s results", strings.ToUpper(string(o.Policy))), o.Results)
			}
		}
		report.Comparison(out, outcomes)
		return nil
	},
}

// presetsCmd lists the built-in workloads
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in workloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range workload.PresetNames() {
			procs, _ := workload.Preset(name)
			fmt.Fprintf(out, "%-12s %d processes\n", name, len(procs))
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().BoolVar(&showDetails, "details", false, "Print the per-process table of every policy")
}

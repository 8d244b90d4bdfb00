package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

func main() {
	configDir := flag.String("config", "./", "Directory holding config.yaml")
	algorithm := flag.String("algorithm", "all", "fcfs, sjf, srtf, rr, priority or all")
	quantum := flag.Int("quantum", 0, "Round-robin time quantum (defaults to the configured one)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-algorithm name] [-quantum n] [-config dir] <processes.csv>\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.LoadSchedulerConfig(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := util.NewLogger(os.Stderr, cfg.LogLevel)
	if *quantum == 0 {
		*quantum = cfg.RoundRobinTimeQuantum
	}

	if err := run(os.Stdout, flag.Arg(0), *algorithm, *quantum, logger); err != nil {
		logger.Error("scheduling failed", "kind", core.Kind(err), "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, path, algorithm string, quantum int, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening scheduling file: %w", err)
	}
	defer f.Close()

	processes, err := requests.LoadProcesses(f)
	if err != nil {
		return err
	}

	algorithms := schedulers.Algorithms
	if algorithm != "all" {
		a, err := schedulers.ParseAlgorithm(algorithm)
		if err != nil {
			return err
		}
		algorithms = []schedulers.Algorithm{a}
	}

	for _, a := range algorithms {
		schedule, err := schedulers.Run(a, processes, quantum)
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		logger.Debug("scheduled", "algorithm", a, "processes", len(processes), "total_time", schedule.Cpu.TotalTime)
		report.OutputSchedule(w, a.Title(), schedule)
	}
	return nil
}

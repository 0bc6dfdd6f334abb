package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"cpu-sim/api"
	"cpu-sim/config"
	"cpu-sim/internal/core"
	"cpu-sim/internal/report"
	"cpu-sim/internal/schedulers"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "rr", "srtf", "fcfs", "mlfq":
		simulate(os.Args[1], os.Args[2:])
	case "serve":
		serve()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cpu-sim <rr|srtf|fcfs|mlfq> [-table] < input")
	fmt.Fprintln(os.Stderr, "       cpu-sim serve")
	fmt.Fprintln(os.Stderr, "input: n, [quantum (rr only)], then n lines of: pid arrival burst")
}

// simulate reads one process set from stdin, runs the chosen policy and
// prints the trace and metrics. Any validation failure aborts before
// simulation state is built.
func simulate(mode string, args []string) {
	flags := flag.NewFlagSet(mode, flag.ExitOnError)
	pretty := flags.Bool("table", false, "render the results as a bordered table")
	if err := flags.Parse(args); err != nil {
		os.Exit(2)
	}

	jobs, quantum, err := loadJobs(os.Stdin, mode == "rr")
	if err != nil {
		log.Fatalln(err)
	}

	policy, err := buildPolicy(mode, quantum)
	if err != nil {
		log.Fatalln(err)
	}

	table, err := core.Load(jobs)
	if err != nil {
		log.Fatalln(err)
	}

	timeline := schedulers.Run(table, policy)
	response := schedulers.GenerateResponse(table, timeline)

	if *pretty {
		report.WriteTable(os.Stdout, policy.Name(), response)
	} else {
		report.Write(os.Stdout, policy.Name(), response)
	}
}

func buildPolicy(mode string, quantum int) (schedulers.Policy, error) {
	switch mode {
	case "rr":
		return schedulers.NewRoundRobin(quantum)
	case "srtf":
		return schedulers.NewShortestRemainingTimeFirst(), nil
	case "fcfs":
		return schedulers.NewFirstComeFirstServe(), nil
	default: // mlfq
		return schedulers.NewMultilevelFeedbackQueue(
			config.GetSchedulerConfig().MultilevelFeedbackQueueLevelsTimeQuantum)
	}
}

// loadJobs parses the whitespace-separated integer input: the process
// count, the quantum when withQuantum is set, then one pid/arrival/burst
// triple per process. Range checks on arrival and burst happen in
// core.Load.
func loadJobs(r io.Reader, withQuantum bool) ([]core.Job, int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func() (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("%w: unexpected end of input", core.ErrInvalidInput)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: expected an integer, got %q", core.ErrInvalidInput, sc.Text())
		}
		return v, nil
	}

	n, err := next()
	if err != nil {
		return nil, 0, err
	}
	if n <= 0 {
		return nil, 0, fmt.Errorf("%w: process count must be > 0, got %d", core.ErrInvalidInput, n)
	}

	quantum := 0
	if withQuantum {
		if quantum, err = next(); err != nil {
			return nil, 0, err
		}
	}

	jobs := make([]core.Job, 0, n)
	for i := 0; i < n; i++ {
		var job core.Job
		if job.Pid, err = next(); err != nil {
			return nil, 0, err
		}
		if job.Arrival, err = next(); err != nil {
			return nil, 0, err
		}
		if job.Burst, err = next(); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	return jobs, quantum, nil
}

func serve() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	apiGroup := app.Group("/api")

	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

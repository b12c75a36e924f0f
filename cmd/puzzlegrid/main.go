// Command puzzlegrid runs or benchmarks the registered puzzle solvers.
//
// Usage:
//
//	puzzlegrid                      run every puzzle with inputs from the config
//	puzzlegrid -problem 3           run one puzzle
//	puzzlegrid -problem 3 -input -  read that puzzle's input from stdin
//	puzzlegrid -bench -samples 200  benchmark instead of running
//	puzzlegrid -config grid.yaml    load a YAML manifest
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/puzzlegrid/problems"
	"github.com/katalvlaran/puzzlegrid/runner"
)

func main() {
	var (
		problem  = flag.Int("problem", 0, "problem number to run (0 = all)")
		input    = flag.String("input", "", "input path; \"-\" reads stdin (single problem only)")
		bench    = flag.Bool("bench", false, "benchmark instead of printing answers")
		samples  = flag.Int("samples", 0, "bench sample count (overrides the config)")
		confPath = flag.String("config", "", "path to a YAML manifest")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	runner.SetLogger(log)

	if err := run(log, *problem, *input, *bench, *samples, *confPath); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, problem int, input string, bench bool, samples int, confPath string) error {
	cfg := runner.DefaultConfig()
	if confPath != "" {
		var err error
		if cfg, err = runner.LoadConfig(confPath); err != nil {
			return err
		}
	}
	if samples > 0 {
		cfg.BenchSamples = samples
	}

	set, err := problems.All()
	if err != nil {
		return err
	}

	numbers := set.Numbers()
	if problem != 0 {
		numbers = []int{problem}
	} else if input != "" {
		return fmt.Errorf("-input requires -problem")
	}

	for _, n := range numbers {
		in, err := openInput(cfg, n, input)
		if err != nil {
			// A missing input file skips just that puzzle when running
			// the whole set.
			if problem == 0 && os.IsNotExist(err) {
				log.WithField("problem", n).Warn("input missing, skipping")
				continue
			}
			return err
		}
		err = dispatch(set, n, in, bench, cfg.BenchSamples)
		if c, ok := in.(io.Closer); ok {
			c.Close()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func openInput(cfg runner.Config, number int, override string) (io.Reader, error) {
	switch override {
	case "-":
		return os.Stdin, nil
	case "":
		return os.Open(cfg.InputPath(number))
	default:
		return os.Open(override)
	}
}

func dispatch(set *runner.Set, number int, in io.Reader, bench bool, samples int) error {
	if bench {
		rep, err := set.Bench(number, in, samples)
		if err != nil {
			return err
		}
		printBench(rep.Number, 1, rep.Part1)
		printBench(rep.Number, 2, rep.Part2)
		return nil
	}

	res, err := set.Run(number, in)
	if err != nil {
		return err
	}
	printPart(res.Number, 1, res.Part1)
	printPart(res.Number, 2, res.Part2)
	return nil
}

func printPart(number, part int, r *runner.PartResult) {
	if r == nil {
		return
	}
	if r.Err != nil {
		fmt.Printf("%02dp%d: error: %v\n", number, part, r.Err)
		return
	}
	fmt.Printf("%02dp%d: %v  (%v)\n", number, part, r.Answer, r.Elapsed)
}

func printBench(number, part int, s *runner.BenchSummary) {
	if s == nil {
		return
	}
	fmt.Printf("%02dp%d: mean %v  stddev %v  min %v  max %v  (n=%d)\n",
		number, part, s.Mean, s.StdDev, s.Min, s.Max, s.Samples)
}

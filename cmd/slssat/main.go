package main

import (
	"fmt"
	"os"
	"time"

	"github.com/coreos/go-semver/semver"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/thtran97/Local-Search-for-SAT"
	"github.com/thtran97/Local-Search-for-SAT/dimacs"
)

// Version is the solver's release tag.
var Version = semver.New("0.1.0")

func newSelector(name string, noise float64) (slssat.Selector, error) {
	switch name {
	case "gsat":
		return slssat.NewGSAT(true, noise), nil
	case "walksat":
		return slssat.NewWalkSAT(true, noise), nil
	case "novelty":
		return slssat.NewNovelty(noise), nil
	case "adaptive-novelty":
		return slssat.NewAdaptiveNovelty(noise), nil
	case "r-novelty":
		return slssat.NewRNovelty(noise), nil
	case "gsat-tabu":
		return slssat.NewGSATTabu(true, noise, 0), nil
	case "walksat-tabu":
		return slssat.NewWalkSATTabu(true, noise, 0), nil
	case "rots":
		return slssat.NewRoTS(), nil
	case "hrts":
		return slssat.NewHammingRTS(), nil
	case "irots":
		return slssat.NewIRoTS(), nil
	case "amls":
		return slssat.NewAMLS(), nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	var (
		input     string
		verbose   int
		heuristic string
		seed      int64
		maxTries  int64
		maxFlips  int64
		noise     float64
		showVer   bool
	)

	root := &cobra.Command{
		Use:   "slssat",
		Short: "Stochastic local search for SAT",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVer {
				fmt.Println(Version)
				return nil
			}
			if verbose >= 1 {
				log.SetLevel(log.InfoLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
			if input == "" {
				return fmt.Errorf("slssat: -i/--input is required")
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			prob, err := dimacs.ParseFile(input)
			if err != nil {
				return fmt.Errorf("slssat: parsing %q: %w", input, err)
			}
			log.WithFields(log.Fields{
				"vars":    prob.NumVars,
				"clauses": prob.NumClauses,
				"file":    input,
			}).Info("parsed DIMACS input")

			clauses := make([][]int, len(prob.Clauses))
			for i, c := range prob.Clauses {
				clauses[i] = []int(c)
			}
			formula, err := slssat.NewFormula(clauses, prob.NumVars)
			if err != nil {
				return fmt.Errorf("slssat: building formula: %w", err)
			}

			sel, err := newSelector(heuristic, noise)
			if err != nil {
				return err
			}

			start := time.Now()
			res := slssat.Run(formula, sel, slssat.Config{
				MaxTries: maxTries,
				MaxFlips: maxFlips,
				Seed:     seed,
			})
			elapsed := time.Since(start)

			fmt.Printf("Nb flips:  %d\n", res.Flips)
			fmt.Printf("Nb tries:  %d\n", res.Tries)
			fmt.Printf("CPU time:  %.4f s\n", elapsed.Seconds())
			if res.Sat {
				fmt.Println("SAT")
				for i, lit := range res.Model {
					if i > 0 {
						fmt.Print(" ")
					}
					fmt.Print(lit)
				}
				fmt.Println()
			} else {
				fmt.Println("UNKNOWN")
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&input, "input", "i", "", "DIMACS CNF input file (required)")
	flags.IntVarP(&verbose, "verbose", "v", 1, "verbosity (0 or 1)")
	flags.StringVarP(&heuristic, "heuristic", "H", "walksat", "selector: gsat, walksat, novelty, adaptive-novelty, r-novelty, gsat-tabu, walksat-tabu, rots, hrts, irots, amls")
	flags.Int64Var(&seed, "seed", 0, "RNG seed (0 selects one from the clock)")
	flags.Int64Var(&maxTries, "max-tries", slssat.DefaultMaxTries, "override MAX_TRIES")
	flags.Int64Var(&maxFlips, "max-flips", 0, "override the base MAX_FLIPS (0 keeps the 100*n default)")
	flags.Float64VarP(&noise, "noise", "p", 0.5, "noise parameter for selectors that use one")
	flags.BoolVar(&showVer, "version", false, "print the solver version and exit")

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

package main

import (
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bartolsthoorn/gosimplex/lpfile"
	"github.com/bartolsthoorn/gosimplex/simplex"
)

// errVerify is returned when --verify finds an optimal point that breaks
// one of its problem's constraints.
var errVerify = errors.New("verification failed")

func newSolveCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [FILE...]",
		Short: "Solve one or more problem files",
		Long: `Solves each problem file (YAML or JSON) and each --example problem.
Problems are solved concurrently and reported in the order given.`,
		Example: `  lpsolve solve diet.yaml
  lpsolve solve --example production-mix --output json
  lpsolve solve a.yaml b.json --verify --log-level info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("example", nil, "Bundled example problem to solve (repeatable)")
	flags.Float64("tolerance", simplex.DefaultTolerance, "Numerical zero tolerance")
	flags.Int("max-iterations", 0, "Pivot cap across both phases (0 = 20·(m+k))")
	flags.StringP("output", "o", string(lpfile.FormatText), "Output format: text, json, yaml")
	flags.Bool("verify", false, "Check optimal points against every constraint and bound")
	flags.Float64("verify-tolerance", 1e-6, "Absolute tolerance used by --verify")
	flags.Int("concurrency", runtime.GOMAXPROCS(0), "Number of problems solved at once")
	return cmd
}

type job struct {
	problem *lpfile.Problem
	source  string
}

func (c *cli) runSolve(cmd *cobra.Command, args []string) error {
	format, err := lpfile.ParseFormat(c.vip.GetString("output"))
	if err != nil {
		return err
	}
	jobs, err := loadJobs(args, c.vip.GetStringSlice("example"))
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return errors.New("no problems given: pass FILE arguments or --example NAME")
	}

	solver, err := simplex.NewSolver(
		simplex.WithTolerance(c.vip.GetFloat64("tolerance")),
		simplex.WithMaxIterations(c.vip.GetInt("max-iterations")),
		simplex.WithLogger(c.logger),
	)
	if err != nil {
		return err
	}
	verify := c.vip.GetBool("verify")
	verifyTol := c.vip.GetFloat64("verify-tolerance")

	results := make([]*lpfile.Result, len(jobs))
	g, ctx := errgroup.WithContext(cmd.Context())
	if n := c.vip.GetInt("concurrency"); n > 0 {
		g.SetLimit(n)
	}
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := c.solveJob(solver, j, verify, verifyTol)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := lpfile.WriteResults(cmd.OutOrStdout(), results, format); err != nil {
		return err
	}

	var failed []string
	for _, r := range results {
		if len(r.Violations) > 0 {
			failed = append(failed, r.Problem)
		}
	}
	if len(failed) > 0 {
		return errors.Wrapf(errVerify, "%s", strings.Join(failed, ", "))
	}
	return nil
}

func (c *cli) solveJob(solver *simplex.Solver, j job, verify bool, verifyTol float64) (*lpfile.Result, error) {
	m, err := j.problem.Model()
	if err != nil {
		return nil, errors.Wrap(err, j.source)
	}

	start := time.Now()
	sol, err := solver.Solve(m)
	if err != nil {
		return nil, errors.Wrap(err, j.source)
	}
	c.logger.Info("solved",
		"problem", j.problem.Name,
		"source", j.source,
		"status", sol.Status.String(),
		"objective", sol.Objective,
		"iterations", sol.Iterations,
		"elapsed", time.Since(start),
	)

	r := lpfile.NewResult(j.problem, m, sol)
	if verify && sol.HasSolution() {
		for _, v := range m.Check(sol.ColValues, verifyTol) {
			r.Violations = append(r.Violations, v.String())
		}
		if len(r.Violations) > 0 {
			c.logger.Warn("optimal point violates constraints", "problem", j.problem.Name, "violations", len(r.Violations))
		}
	}
	return r, nil
}

func loadJobs(paths, examples []string) ([]job, error) {
	jobs := make([]job, 0, len(paths)+len(examples))
	for _, path := range paths {
		p, err := lpfile.Load(path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{problem: p, source: path})
	}
	for _, name := range examples {
		p, err := lpfile.LoadExample(name)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{problem: p, source: "example:" + name})
	}
	return jobs, nil
}

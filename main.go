package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/satlab/dpll/solver"
)

var log = logrus.New()

func main() {
	app := cli.NewApp()
	app.Name = "dpll"
	app.Usage = "decide satisfiability of a DIMACS CNF file"
	app.ArgsUsage = "file.cnf"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log solving statistics",
		},
		cli.BoolFlag{
			Name:  "count, c",
			Usage: "rather than solving the problem, count the number of models it accepts",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("expected exactly one CNF file argument", 1)
	}
	path := c.Args().First()
	pb, err := parse(path)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	s := solver.New(pb)
	if c.Bool("verbose") {
		s.Verbose = true
		s.Logger = log
		log.WithFields(logrus.Fields{
			"vars":    pb.NbVars,
			"clauses": len(pb.Clauses),
		}).Infof("solving %s", path)
	}
	if c.Bool("count") {
		fmt.Println(s.CountModels())
		return nil
	}
	if s.Solve() == solver.Sat {
		fmt.Println("s SATISFIABLE")
		fmt.Println("v " + modelLine(s.Model()))
	} else {
		fmt.Println("s UNSATISFIABLE")
	}
	return nil
}

func parse(path string) (*solver.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	pb, err := solver.ParseCNF(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse DIMACS file %q: %v", path, err)
	}
	return pb, nil
}

// modelLine renders a model the way the input denotes clauses: 1-based
// variables, '-' for false ones, terminated by 0.
func modelLine(model []bool) string {
	tokens := lo.Map(model, func(val bool, i int) string {
		if val {
			return fmt.Sprintf("%d", i+1)
		}
		return fmt.Sprintf("%d", -i-1)
	})
	return strings.Join(append(tokens, "0"), " ")
}

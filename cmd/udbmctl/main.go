// Command udbmctl is a small inspection tool for the minimal-graph wire
// format and a scripted walkthrough of the federation engine, wrapping
// the udbm library the way kcptun's client/server binaries wrap theirs:
// a single urfave/cli app with one subcommand per operation.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/dbm/minigraph"
	"github.com/go-dbm/udbm/fed"
	"github.com/go-dbm/udbm/udbmctx"
)

var log = logrus.New()

func main() {
	app := cli.NewApp()
	app.Name = "udbmctl"
	app.Usage = "inspect minimal-graph files and exercise the federation engine"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug-level logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("debug") {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		encodeCommand,
		decodeCommand,
		demoCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("udbmctl: command failed")
		os.Exit(1)
	}
}

var encodeCommand = cli.Command{
	Name:      "encode",
	Usage:     "build a zone from constraints and write its minimal-graph encoding",
	ArgsUsage: "<dim> <output-file> [constraint ...]",
	Description: "Each constraint has the form i:j:bound:strict, encoding xi - xj <= bound\n" +
		"(strict=true for \"<\"). Clock 0 is the reference clock.",
	Action: func(c *cli.Context) error {
		if c.NArg() < 2 {
			return cli.NewExitError("encode requires at least <dim> <output-file>", 1)
		}
		dim, err := strconv.Atoi(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "parsing dim")
		}
		outPath := c.Args().Get(1)

		ctx := udbmctx.New()
		z := dbm.New(ctx, dim)
		z.SetInit()

		for _, raw := range c.Args()[2:] {
			cons, err := parseConstraint(raw)
			if err != nil {
				return errors.Wrapf(err, "parsing constraint %q", raw)
			}
			if status := z.Constrain(cons.I, cons.J, cons.Bound); status == dbm.Empty {
				log.WithField("constraint", raw).Warn("encode: zone became empty")
				break
			}
		}

		b, err := minigraph.Encode(z)
		if err != nil {
			return errors.Wrap(err, "encoding minimal graph")
		}
		if err := os.WriteFile(outPath, b, 0o644); err != nil {
			return errors.Wrap(err, "writing output file")
		}
		log.WithFields(logrus.Fields{"dim": dim, "bytes": len(b), "path": outPath}).Info("encode: wrote minimal graph")
		return nil
	},
}

var decodeCommand = cli.Command{
	Name:      "decode",
	Usage:     "decode a minimal-graph file and print its bounds",
	ArgsUsage: "<input-file>",
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return cli.NewExitError("decode requires <input-file>", 1)
		}
		b, err := os.ReadFile(c.Args().Get(0))
		if err != nil {
			return errors.Wrap(err, "reading input file")
		}

		ctx := udbmctx.New()
		z, err := minigraph.Decode(ctx, b)
		if err != nil {
			return errors.Wrap(err, "decoding minimal graph")
		}
		printZone(z)
		return nil
	},
}

var demoCommand = cli.Command{
	Name:  "demo",
	Usage: "run a canned federation walkthrough",
	Action: func(c *cli.Context) error {
		ctx := udbmctx.New()
		dim := 2

		a := dbm.New(ctx, dim)
		a.SetInit()
		a.Constrain(1, 0, bound.MustMake(5, false)) // x1 <= 5

		b := dbm.New(ctx, dim)
		b.SetInit()
		b.Constrain(0, 1, bound.MustMake(-3, false)) // x1 >= 3
		b.Constrain(1, 0, bound.MustMake(10, false)) // x1 <= 10

		f := fed.New(ctx, dim)
		if err := f.Append(a); err != nil {
			return errors.Wrap(err, "appending first zone")
		}
		if err := f.Append(b); err != nil {
			return errors.Wrap(err, "appending second zone")
		}
		log.WithField("size", f.Size()).Info("demo: federation built")

		f.MergeReduce()
		log.WithField("size", f.Size()).Info("demo: after merge-reduce")

		contains := f.ContainsPoint([]int32{0, 4})
		log.WithField("point", "(x1=4)").WithField("contained", contains).Info("demo: point membership")

		return nil
	},
}

type constraint struct {
	I, J  int
	Bound bound.Bound
}

func parseConstraint(raw string) (constraint, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 4 {
		return constraint{}, fmt.Errorf("expected i:j:bound:strict, got %q", raw)
	}
	i, err := strconv.Atoi(parts[0])
	if err != nil {
		return constraint{}, errors.Wrap(err, "parsing i")
	}
	j, err := strconv.Atoi(parts[1])
	if err != nil {
		return constraint{}, errors.Wrap(err, "parsing j")
	}
	val, err := strconv.ParseInt(parts[2], 10, 32)
	if err != nil {
		return constraint{}, errors.Wrap(err, "parsing bound")
	}
	strict, err := strconv.ParseBool(parts[3])
	if err != nil {
		return constraint{}, errors.Wrap(err, "parsing strict")
	}
	b, err := bound.Make(int32(val), strict)
	if err != nil {
		return constraint{}, errors.Wrap(err, "constructing bound")
	}
	return constraint{I: i, J: j, Bound: b}, nil
}

func printZone(z dbm.DBM) {
	dim := z.Dim()
	for i := 0; i < dim; i++ {
		row := make([]string, dim)
		for j := 0; j < dim; j++ {
			b, _ := z.At(i, j)
			row[j] = b.String()
		}
		fmt.Printf("x%d: %s\n", i, strings.Join(row, "  "))
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"pkg.jsn.cam/pseudofq/internal/fastq"
	"pkg.jsn.cam/pseudofq/internal/generator"
	"pkg.jsn.cam/pseudofq/internal/ledger"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "pseudofq",
		Usage:     "Write a FASTQ fixture holding one fixed read repeated N times",
		ArgsUsage: "N",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
				Usage: "Directory to write testP<N/1e6>M_1.fq into",
			},
			&cli.StringFlag{
				Name:  "ledger",
				Usage: "Record the run in this bbolt database",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show a progress bar on stderr",
			},
		},
		Action: generate,
		Commands: []*cli.Command{
			{
				Name:      "verify",
				Usage:     "Check that a file holds only copies of the fixed record",
				ArgsUsage: "FILE",
				Action:    verify,
			},
			{
				Name:      "history",
				Usage:     "List runs recorded in a ledger, or show one run",
				ArgsUsage: "[RUN-ID]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "ledger",
						Usage:    "Path to the bbolt ledger database",
						Required: true,
					},
				},
				Action: history,
			},
		},
		HideHelpCommand: true,
	}
}

func generate(c *cli.Context) error {
	// Parse before touching the filesystem so bad input leaves no file behind.
	n, err := generator.ParseCount(c.Args().Slice())
	if err != nil {
		return err
	}

	opts := []generator.Option{generator.WithDir(c.String("dir"))}
	if c.Bool("progress") {
		opts = append(opts, generator.WithProgress(c.App.ErrWriter))
	}
	gen := generator.New(generator.DefaultSource(), opts...)

	var l *ledger.Ledger
	if path := c.String("ledger"); path != "" {
		if l, err = ledger.Open(path); err != nil {
			return err
		}
		defer l.Close()
	}

	run := ledger.Begin(gen.Path(n), n)
	res, err := gen.Generate(n)
	if err != nil {
		return err
	}
	run.Finish(res.Bytes)

	log.Printf("[GEN] Wrote %s records (%s) to %s in %v [%s]",
		humanize.Comma(res.Records), humanize.Bytes(uint64(res.Bytes)), res.Path, run.Duration(), res.Format)

	if l != nil {
		if err := l.Record(run); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		log.Printf("[LEDGER] Recorded run %s", run.ID)
	}

	return nil
}

func verify(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("verify: missing FILE argument")
	}
	path := c.Args().First()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	count, err := fastq.Verify(f, fastq.Default())
	if err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}

	fmt.Fprintf(c.App.Writer, "%s: %s records OK\n", path, humanize.Comma(count))
	return nil
}

func history(c *cli.Context) error {
	l, err := ledger.Open(c.String("ledger"))
	if err != nil {
		return err
	}
	defer l.Close()

	if c.NArg() > 0 {
		run, err := l.Get(c.Args().First())
		if err != nil {
			return err
		}
		printRun(c.App.Writer, run)
		return nil
	}

	runs, err := l.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(c.App.Writer, "No runs recorded")
		return nil
	}

	for _, run := range runs {
		printRun(c.App.Writer, run)
	}
	return nil
}

func printRun(w io.Writer, run *ledger.Run) {
	fmt.Fprintf(w, "%s  %s  %12s records  %10s  %-8v  %s\n",
		run.ID,
		run.StartedAt.Format("2006-01-02 15:04:05"),
		humanize.Comma(run.Count),
		humanize.Bytes(uint64(run.Bytes)),
		run.Duration().Round(time.Millisecond),
		run.Path,
	)
}

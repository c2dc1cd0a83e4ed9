package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tdewolff/csstree/internal/load"
	"github.com/tdewolff/csstree/internal/logger"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [FILES...]",
		Short: "Check that stylesheets parse",
		Long: `Parse all files matching the glob patterns concurrently and report their errors.
Without arguments the files of the config file are checked.`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runCheck,
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of files parsed concurrently, zero uses all CPUs")
	_ = a.v.BindPFlag("jobs", cmd.Flags().Lookup("jobs"))
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = a.cfg.Files
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}
	files, err := load.Expand(patterns)
	if err != nil {
		return err
	}

	jobs := a.v.GetInt("jobs")
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// each file is parsed by its own goroutine and writes only its own slot
	errs := make([]error, len(files))
	g := errgroup.Group{}
	g.SetLimit(jobs)
	for i, file := range files {
		g.Go(func() error {
			logger.Debug("checking %s", file)
			_, errs[i] = a.parseFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintln(w, err)
		}
	}
	logger.Info("checked %d files", len(files))
	if failed != 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}


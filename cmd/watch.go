package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kievzenit/coolfront/internal/frontend"
	"github.com/kievzenit/coolfront/internal/watcher"
)

type watchFlags struct {
	format    string
	positions bool
}

var watchOpts watchFlags

var watchCmd = &cobra.Command{
	Use:   "watch FILE|DIR",
	Short: "Rebuild and print the AST whenever a source file changes",
	Long: `Watch a COOL source file, or every source file below a directory, and
print its AST again after each change. Every change rebuilds the whole file.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOpts.format, "format", "f", "", "output format: tree, yaml or litter (default from config)")
	watchCmd.Flags().BoolVarP(&watchOpts.positions, "positions", "p", false, "print line:column of every node")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	format, opts, err := outputSettings(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	w, err := watcher.NewWatcher(watcher.Config{
		Path:       path,
		Debounce:   cfg.Watch.Debounce,
		Extensions: cfg.Watch.Extensions,
	}, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	fe := frontend.New(logger)
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// callbacks for different files may run at the same time
	var mu sync.Mutex
	rebuild := func(file string) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(out, "== %s ==\n", file)
		if err := printUnit(out, errOut, fe, file, format, opts); err != nil {
			logger.Info("rebuild failed", "file", file)
		}
	}

	if !info.IsDir() {
		rebuild(path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Watch(ctx, rebuild)
}

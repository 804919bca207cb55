package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kievzenit/coolfront/internal/ast_printer"
	"github.com/kievzenit/coolfront/internal/compiler_errors"
	"github.com/kievzenit/coolfront/internal/frontend"
)

type astFlags struct {
	format    string
	positions bool
}

var astOpts astFlags

var astCmd = &cobra.Command{
	Use:   "ast FILE...",
	Short: "Print the abstract syntax tree of COOL source files",
	Long: `Build the AST of every file and print it. Files are processed one after
another, each as its own compilation unit; a file with errors does not stop
the remaining ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAst,
}

func init() {
	astCmd.Flags().StringVarP(&astOpts.format, "format", "f", "", "output format: tree, yaml or litter (default from config)")
	astCmd.Flags().BoolVarP(&astOpts.positions, "positions", "p", false, "print line:column of every node")

	rootCmd.AddCommand(astCmd)
}

func runAst(cmd *cobra.Command, args []string) error {
	format, opts, err := outputSettings(cmd)
	if err != nil {
		return err
	}

	fe := frontend.New(logger)
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		if len(args) > 1 {
			fmt.Fprintf(out, "== %s ==\n", path)
		}

		if err := printUnit(out, cmd.ErrOrStderr(), fe, path, format, opts); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}

	return nil
}

// outputSettings merges the output section of the config with flags given
// on the command line.
func outputSettings(cmd *cobra.Command) (ast_printer.Format, ast_printer.Options, error) {
	format := ast_printer.Format(cfg.Output.Format)
	opts := ast_printer.Options{
		Positions: cfg.Output.Positions,
		Indent:    cfg.Output.Indent,
	}

	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		format = ast_printer.Format(f.Value.String())
	}
	if f := cmd.Flags().Lookup("positions"); f != nil && f.Changed {
		opts.Positions = f.Value.String() == "true"
	}

	if !format.Valid() {
		return "", opts, fmt.Errorf("unknown output format %q (want tree, yaml or litter)", format)
	}

	return format, opts, nil
}

// printUnit compiles path and prints its AST to out, or its errors to errOut.
func printUnit(out, errOut io.Writer, fe *frontend.Frontend, path string, format ast_printer.Format, opts ast_printer.Options) error {
	unit, err := fe.CompileFile(path)
	if err != nil {
		reportError(errOut, err)
		return err
	}

	if err := ast_printer.Print(out, format, unit.Program, opts); err != nil {
		return fmt.Errorf("failed to print ast of %q: %w", path, err)
	}

	return nil
}

func reportError(w io.Writer, err error) {
	var syntaxErr *frontend.SyntaxError
	if !errors.As(err, &syntaxErr) {
		fmt.Fprintf(w, "ERROR: %s\n", err)
		return
	}

	fmt.Fprintln(w, "Build failed with errors:")
	for _, e := range syntaxErr.Errors {
		fmt.Fprintf(w, "ERROR: %s\n", compiler_errors.Format(e))
	}
}

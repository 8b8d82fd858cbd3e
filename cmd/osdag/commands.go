package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Osdag/internal/calc/dispatch"
	"Osdag/internal/calc/standard"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "osdag",
		Short:         "Structural steel design checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCalcCmd(), newGradesCmd(), newCombinationsCmd(), newLimitsCmd(), newKindsCmd())
	return root
}

// newCalcCmd evaluates one calculation from key=value arguments.
//
//	osdag calc factored_load dead_load=100 live_load=50
//	osdag calc deflection actual_deflection=15 span_length=6000 --status
func newCalcCmd() *cobra.Command {
	var statusOnly bool
	cmd := &cobra.Command{
		Use:   "calc <calculation_type> [field=value ...]",
		Short: "Run a calculation and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseFields(args[1:])
			if err != nil {
				return err
			}
			out, err := dispatch.EvaluateNamed(args[0], p)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			if statusOnly {
				fmt.Fprintln(cmd.OutOrStdout(), out.Result.Classification())
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "print only the status classification")
	return cmd
}

func parseFields(args []string) (dispatch.Params, error) {
	p := dispatch.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not field=value", arg)
		}
		p[key] = value
	}
	return p, nil
}

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "List steel grades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return table(cmd.OutOrStdout(), "GRADE\tFY (MPa)\tFU (MPa)\tELONGATION (%)\tDESCRIPTION", func(w io.Writer) {
				for _, g := range standard.Grades() {
					fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\n", g.Name, g.YieldStrength, g.UltimateStrength, g.Elongation, g.Description)
				}
			})
		},
	}
}

func newCombinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combinations",
		Short: "List load combinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return table(cmd.OutOrStdout(), "NAME\tDESCRIPTION", func(w io.Writer) {
				for _, c := range standard.Combinations() {
					fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Description)
				}
			})
		},
	}
}

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: "List deflection limit presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return table(cmd.OutOrStdout(), "CATEGORY\tLIMIT", func(w io.Writer) {
				for _, d := range standard.DeflectionLimits() {
					fmt.Fprintf(w, "%s\tL/%d\n", d.Category, d.Ratio)
				}
			})
		},
	}
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List calculation types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range dispatch.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func table(out io.Writer, header string, rows func(io.Writer)) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	return w.Flush()
}

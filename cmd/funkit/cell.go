package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/funkit/errors"
	"github.com/kbukum/funkit/logger"
	"github.com/kbukum/funkit/ref"
	"github.com/kbukum/funkit/resilience"
)

func newCellCmd(a *app) *cobra.Command {
	var initial, lower, upper int

	cmd := &cobra.Command{
		Use:   "cell <N|set:N|add:N>...",
		Short: "Write values to a validated cell and print every transition",
		Long: `Writes each argument to an integer cell bounded by --min and --max.
N and set:N set the value; add:N adds N to the current value. Rejected
writes are reported and leave the cell unchanged.`,
		Example: `  funkit cell 5 add:10 add:-20 7
  funkit cell --min 10 --max 20 --initial 10 15 25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min") {
				lower = a.cfg.Cell.Min
			}
			if !cmd.Flags().Changed("max") {
				upper = a.cfg.Cell.Max
			}
			if lower > upper {
				return errors.InvalidArgument("cell", fmt.Sprintf("--min %d exceeds --max %d", lower, upper))
			}

			out := cmd.OutOrStdout()
			cell := ref.New(initial,
				ref.WithName[int]("cell"),
				ref.WithValidator(ref.Var[int](fmt.Sprintf("gte=%d,lte=%d", lower, upper))),
				ref.WithLogger[int](logger.Get("cell")),
				ref.WithMetrics[int](a.metrics),
			)
			cell.AddWatch("printer", func(key string, oldValue, newValue int) error {
				_, err := fmt.Fprintf(out, "%s: %d -> %d\n", key, oldValue, newValue)
				return err
			})

			retry := resilience.DefaultRetryConfig()
			retry.MaxAttempts = a.cfg.Cell.Attempts

			for _, arg := range args {
				if err := applyArg(cmd, cell, retry, arg); err != nil {
					if !ref.IsValidationError(err) {
						return err
					}
					fmt.Fprintf(out, "rejected %s: %v\n", arg, err)
				}
			}
			_, err := fmt.Fprintf(out, "final: %d\n", cell.Get())
			return err
		},
	}
	cmd.Flags().IntVar(&initial, "initial", 0, "initial cell value (not validated)")
	cmd.Flags().IntVar(&lower, "min", 0, "smallest accepted value (default from config)")
	cmd.Flags().IntVar(&upper, "max", 0, "largest accepted value (default from config)")
	return cmd
}

func applyArg(cmd *cobra.Command, cell *ref.Ref[int], retry resilience.RetryConfig, arg string) error {
	op, operand, found := strings.Cut(arg, ":")
	if !found {
		op, operand = "set", arg
	}
	n, err := strconv.Atoi(operand)
	if err != nil {
		return errors.InvalidArgument("cell", fmt.Sprintf("%q is not an integer", operand))
	}

	switch op {
	case "set":
		_, err = cell.SetValue(n)
	case "add":
		_, err = cell.SwapContext(cmd.Context(), retry, func(v int) (int, error) {
			return v + n, nil
		})
	default:
		err = errors.InvalidArgument("cell", fmt.Sprintf("unknown operation %q", op))
	}
	return err
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/kbukum/funkit/action"
	"github.com/kbukum/funkit/errors"
	"github.com/kbukum/funkit/logger"
	"github.com/kbukum/funkit/seq"
)

type stack = []int

var (
	push = action.Def(
		func(e int, s stack) stack { return seq.Cons(e, s) },
		action.Nothing[int, stack, int],
	)
	pop = action.Def(
		func(_ struct{}, s stack) stack { return lo.Drop(s, 1) },
		func(_ struct{}, s stack) mo.Option[int] { return mo.TupleToOption(lo.First(s)) },
	)
	peek = action.Def(
		func(_ struct{}, s stack) stack { return s },
		func(_ struct{}, s stack) mo.Option[int] { return mo.TupleToOption(lo.First(s)) },
	)
	strictPop = action.DefE(
		func(_ struct{}, s stack) (stack, error) { return lo.Drop(s, 1), nil },
		func(_ struct{}, s stack) (mo.Option[int], error) {
			if len(s) == 0 {
				return mo.None[int](), errors.InvalidArgument("pop", "stack is empty")
			}
			return mo.Some(s[0]), nil
		},
	)
)

// parseOps turns "push:4 pop peek" into bound actions.
func parseOps(ops []string, strict bool) ([]action.FallibleStateAction[stack, int], error) {
	acts := make([]action.FallibleStateAction[stack, int], 0, len(ops))
	for _, op := range ops {
		name, arg, hasArg := strings.Cut(op, ":")
		switch name {
		case "push":
			if !hasArg {
				return nil, errors.InvalidArgument("stack", fmt.Sprintf("%q needs a value, as in push:4", op))
			}
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, errors.InvalidArgument("stack", fmt.Sprintf("%q: %v", op, err))
			}
			acts = append(acts, action.Fallible(push(n)))
		case "pop":
			if strict {
				acts = append(acts, strictPop(struct{}{}))
			} else {
				acts = append(acts, action.Fallible(pop(struct{}{})))
			}
		case "peek":
			acts = append(acts, action.Fallible(peek(struct{}{})))
		default:
			return nil, errors.InvalidArgument("stack", fmt.Sprintf("unknown operation %q", op))
		}
	}
	return acts, nil
}

func newStackCmd(a *app) *cobra.Command {
	var (
		initial []int
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "stack <op>...",
		Short: "Run push:N, pop and peek operations against a stack",
		Example: `  funkit stack push:4 push:5 push:6 pop pop pop
  funkit stack --initial 1,2 --strict pop pop pop`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acts, err := parseOps(args, strict)
			if err != nil {
				return err
			}

			report := func(values []int) func(stack) (string, error) {
				return func(final stack) (string, error) {
					return fmt.Sprintf("values: %v\nstack: %v", values, final), nil
				}
			}

			out, err := action.Run(cmd.Context(), "stack", acts, report, slicesCopy(initial),
				action.WithLogger(logger.Get("stack")), action.WithMetrics(a.metrics))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntSliceVar(&initial, "initial", nil, "initial stack contents, top first")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when popping an empty stack")
	return cmd
}

func slicesCopy(s []int) stack {
	return append(stack{}, s...)
}

// Package action threads a state value through a chain of state actions and
// hands the values they emit to a continuation.
//
// A StateAction maps a prior state to an optional value and the next state.
// Def builds argument-taking actions from a state transition and a value
// extraction:
//
//	push := action.Def(
//		func(e int, s []int) []int { return append([]int{e}, s...) },
//		action.Nothing[int, []int, int],
//	)
//	pop := action.Def(
//		func(_ struct{}, s []int) []int { return lo.Drop(s, 1) },
//		func(_ struct{}, s []int) mo.Option[int] { return mo.TupleToOption(lo.First(s)) },
//	)
//
//	run := action.Actions([]action.StateAction[[]int, int]{push(4), push(5), pop(struct{}{})},
//		func(values []int) func([]int) string {
//			return func(final []int) string { return fmt.Sprint(values, final) }
//		})
//	run(nil) // "[5] [4]"
//
// Only present values reach the continuation, in the order their actions
// ran. Errors from fallible actions abort the chain and discard its state.
package action

// Package landscape holds the fixed registry of closed-form scalar fields
// that optimizer trajectories are drawn over.
//
// Each [Kind] carries its own evaluator, so adding a landscape means adding
// a constant and a case to every switch:
//
//	k, err := landscape.Resolve("rosenbrock")
//	z := k.Eval(1, 1) // 0 at the global minimum
package landscape

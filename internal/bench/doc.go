// Package bench renders benchmark results: grouped bar charts per metric,
// a convergence plot of the field value along each trajectory and a
// tabular summary.
package bench

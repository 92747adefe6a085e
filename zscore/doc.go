// Package zscore standardizes observed graph statistics against a null-model
// ensemble. Degenerate ensembles map onto sentinels instead of errors so a
// profile over many statistics never aborts on one of them.
package zscore

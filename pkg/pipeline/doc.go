// Package pipeline applies an ordered list of relocators to archive entry
// names and source text. Path and class decisions short-circuit at the
// first relocator that matches; source text rewriting composes across all
// relocators.
package pipeline

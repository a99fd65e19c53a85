// Package relocation implements the namespace relocation rules used when
// merging archives. A relocator decides whether a class name or resource
// path belongs to a configured namespace, computes its renamed form, and
// rewrites textual references in source files while leaving prose and
// excluded sub-namespaces alone.
package relocation

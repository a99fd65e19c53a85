// Package archive rewrites zip/jar archives through the relocation
// pipeline: entry names are renamed, source entries have their textual
// namespace references rewritten, and everything else is copied through
// unchanged.
package archive

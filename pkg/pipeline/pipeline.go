package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/shade/pkg/logging"
	"github.com/arthur-debert/shade/pkg/relocation"
)

// Pipeline holds the relocators of a repackaging pass, in configuration
// order.
type Pipeline struct {
	relocators []relocation.Relocator
	logger     zerolog.Logger
}

// New creates a pipeline over the given relocators
func New(relocators []relocation.Relocator) *Pipeline {
	return &Pipeline{
		relocators: relocators,
		logger:     logging.GetLogger("pipeline"),
	}
}

// Len returns the number of relocators in the pipeline
func (p *Pipeline) Len() int {
	return len(p.relocators)
}

// RelocatePath renames path using the first relocator that claims it. The
// second return reports whether any relocator matched; on false the path is
// returned unchanged.
func (p *Pipeline) RelocatePath(path string) (string, bool) {
	for _, r := range p.relocators {
		if r.CanRelocatePath(path) {
			relocated := r.RelocatePath(path)
			p.logger.Debug().
				Str("path", path).
				Str("relocated", relocated).
				Msg("relocated path")
			return relocated, true
		}
	}
	return path, false
}

// RelocateClass renames className using the first relocator that claims it.
// The second return reports whether any relocator matched.
func (p *Pipeline) RelocateClass(className string) (string, bool) {
	for _, r := range p.relocators {
		if r.CanRelocateClass(className) {
			relocated := r.RelocateClass(className)
			p.logger.Debug().
				Str("class", className).
				Str("relocated", relocated).
				Msg("relocated class")
			return relocated, true
		}
	}
	return className, false
}

// ApplyToSourceContent runs every relocator's source rewrite over content,
// in order. Unlike the path and class decisions this does not short-circuit:
// each relocator rewrites a different namespace.
func (p *Pipeline) ApplyToSourceContent(content string) string {
	for _, r := range p.relocators {
		content = r.ApplyToSourceContent(content)
	}
	return content
}

package relocation

// Relocator is the contract shared by all relocation strategies. Callers
// check the Can* predicates before invoking the corresponding rename;
// behavior on non-matching input is unspecified.
type Relocator interface {
	// CanRelocatePath reports whether the given resource path belongs to
	// this relocator's namespace.
	CanRelocatePath(path string) bool

	// CanRelocateClass reports whether the given class name belongs to
	// this relocator's namespace.
	CanRelocateClass(className string) bool

	// RelocatePath returns the renamed form of a relocatable path.
	RelocatePath(path string) string

	// RelocateClass returns the renamed form of a relocatable class name.
	RelocateClass(className string) string

	// ApplyToSourceContent rewrites textual references to the namespace
	// within free-form source text.
	ApplyToSourceContent(content string) string
}

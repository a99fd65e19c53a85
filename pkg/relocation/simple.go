package relocation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/shade/pkg/errors"
	"github.com/arthur-debert/shade/pkg/logging"
)

// ShadedPrefix qualifies relocated names when no target pattern is
// configured, so defaulted targets never collide with the original
// namespace.
const ShadedPrefix = "hidden"

const classSuffix = ".class"

// SimpleRelocator relocates a single namespace prefix to a new one. Each
// pattern is kept in two spellings, dot-separated and slash-separated,
// because class names and resource paths spell the same namespace with
// different separators. In raw string mode the pattern is an opaque regex
// matched against paths as-is and the dual spellings are not derived.
//
// A SimpleRelocator is immutable after construction and safe for
// unsynchronized concurrent use.
type SimpleRelocator struct {
	pattern           string
	pathPattern       string
	shadedPattern     string
	shadedPathPattern string

	includes map[string]struct{}
	excludes map[string]struct{}

	// Remainders of exclude patterns that begin with the source pattern,
	// consumed only by ApplyToSourceContent.
	sourcePackageExcludes []string
	sourcePathExcludes    []string

	rawString bool
	rawRx     *regexp.Regexp
}

var _ Relocator = (*SimpleRelocator)(nil)

// NewSimpleRelocator builds a relocator for one rule. pattern is the source
// namespace in either spelling; an empty pattern means the empty namespace.
// An empty shadedPattern defaults to the source pattern qualified with
// ShadedPrefix. includes and excludes are glob path patterns; malformed
// globs and, in raw mode, an uncompilable pattern are reported here rather
// than at first use.
func NewSimpleRelocator(pattern, shadedPattern string, includes, excludes []string, rawString bool) (*SimpleRelocator, error) {
	logger := logging.GetLogger("relocation.simple")

	r := &SimpleRelocator{rawString: rawString}

	if rawString {
		rx, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid raw string pattern %q", pattern)
		}
		r.rawRx = rx
		r.pathPattern = pattern
		r.shadedPathPattern = shadedPattern
	} else {
		r.pattern = strings.ReplaceAll(pattern, "/", ".")
		r.pathPattern = strings.ReplaceAll(pattern, ".", "/")

		if shadedPattern != "" {
			r.shadedPattern = strings.ReplaceAll(shadedPattern, "/", ".")
			r.shadedPathPattern = strings.ReplaceAll(shadedPattern, ".", "/")
		} else {
			r.shadedPattern = ShadedPrefix + "." + r.pattern
			r.shadedPathPattern = ShadedPrefix + "/" + r.pathPattern
		}
	}

	var err error
	if r.includes, err = normalizePatterns(includes); err != nil {
		return nil, err
	}
	if r.excludes, err = normalizePatterns(excludes); err != nil {
		return nil, err
	}

	if !rawString && len(r.excludes) > 0 {
		// Excludes should be sub-namespaces of the source pattern; record
		// the remainder of each one for source text rewriting.
		for exclude := range r.excludes {
			if strings.HasPrefix(exclude, r.pattern) {
				r.sourcePackageExcludes = append(r.sourcePackageExcludes,
					strings.TrimSuffix(exclude[len(r.pattern):], ".*"))
			}
			if strings.HasPrefix(exclude, r.pathPattern) {
				r.sourcePathExcludes = append(r.sourcePathExcludes,
					strings.TrimSuffix(exclude[len(r.pathPattern):], "/*"))
			}
		}
		sort.Strings(r.sourcePackageExcludes)
		sort.Strings(r.sourcePathExcludes)
	}

	logger.Debug().
		Str("pattern", r.pattern).
		Str("pathPattern", r.pathPattern).
		Bool("rawString", rawString).
		Int("includes", len(r.includes)).
		Int("excludes", len(r.excludes)).
		Msg("created relocator")

	return r, nil
}

// normalizePatterns converts dots to slashes in each pattern and, for every
// pattern ending in a wildcard subtree, also emits the subtree root itself.
// The verbatim inputs are kept as well so patterns that intentionally mix
// separators (e.g. META-INF/maven/${groupId}) still match.
func normalizePatterns(patterns []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(patterns)*2)
	for _, p := range patterns {
		slashed := strings.ReplaceAll(p, ".", "/")
		candidates := []string{slashed, p}
		if strings.HasSuffix(slashed, "/*") || strings.HasSuffix(slashed, "/**") {
			candidates = append(candidates, slashed[:strings.LastIndex(slashed, "/")])
		}
		for _, c := range candidates {
			if !doublestar.ValidatePattern(c) {
				return nil, errors.Newf(errors.ErrGlobInvalid, "invalid glob pattern %q", p)
			}
			set[c] = struct{}{}
		}
	}
	return set, nil
}

func matchAny(patterns map[string]struct{}, path string) bool {
	for p := range patterns {
		if ok, err := doublestar.Match(p, path); err == nil && ok {
			return true
		}
	}
	return false
}

func (r *SimpleRelocator) isIncluded(path string) bool {
	if len(r.includes) == 0 {
		return true
	}
	return matchAny(r.includes, path)
}

func (r *SimpleRelocator) isExcluded(path string) bool {
	return matchAny(r.excludes, path)
}

// CanRelocatePath reports whether path belongs to the source namespace. A
// trailing compiled-class suffix and a single leading slash are stripped
// before matching; the leading slash shows up when callers look names up
// resource-style, e.g. getResource("/a/b/c.properties").
func (r *SimpleRelocator) CanRelocatePath(path string) bool {
	if r.rawString {
		return r.rawRx.MatchString(path)
	}

	path = strings.TrimSuffix(path, classSuffix)
	if strings.HasPrefix(path, "/") {
		path = path[1:]
	}

	return r.isIncluded(path) && !r.isExcluded(path) && strings.HasPrefix(path, r.pathPattern)
}

// CanRelocateClass reports whether className belongs to the source
// namespace. Names containing a slash are rejected outright; a bare class
// name was expected. Raw string mode only relocates paths.
func (r *SimpleRelocator) CanRelocateClass(className string) bool {
	return !r.rawString &&
		!strings.Contains(className, "/") &&
		r.CanRelocatePath(strings.ReplaceAll(className, ".", "/"))
}

// RelocatePath returns the renamed path. In normal mode only the first
// occurrence of the source pattern is replaced, anchoring the rename to the
// matched prefix; raw string mode replaces every regex match.
func (r *SimpleRelocator) RelocatePath(path string) string {
	if r.rawString {
		return r.rawRx.ReplaceAllString(path, r.shadedPathPattern)
	}
	return strings.Replace(path, r.pathPattern, r.shadedPathPattern, 1)
}

// RelocateClass returns the renamed class name. Raw string mode returns the
// input unchanged.
func (r *SimpleRelocator) RelocateClass(className string) string {
	if r.rawString {
		return className
	}
	return strings.Replace(className, r.pattern, r.shadedPattern, 1)
}

package relocation

import (
	"regexp"
	"strings"
)

// Matches dot, slash or space at the end of a string.
var rxEndsWithDotSlashSpace = regexp.MustCompile(`[./ ]$`)

// Matches certain Java keywords followed by a space, or the beginning of a
// Javadoc link with optional line breaks continued with '*', at the end of
// a string.
var rxEndsWithKeyword = regexp.MustCompile(
	`\b(import|package|public|protected|private|static|final|synchronized|abstract|volatile) $` +
		`|\{@link( \*)* $`)

var rxWhitespaceRun = regexp.MustCompile(`\s+`)

// ApplyToSourceContent rewrites textual references to the source namespace
// within free-form source text. Both spellings of the pattern are rewritten,
// since either can appear literally in source, e.g. inside string literals.
// Raw string mode is a no-op, and so is an empty source pattern: with no
// token to anchor on there is no sound boundary to match, so text
// relocation is disabled rather than guessed at.
func (r *SimpleRelocator) ApplyToSourceContent(content string) string {
	if r.rawString || r.pattern == "" {
		return content
	}
	content = shadeSource(content, r.pattern, r.shadedPattern, r.sourcePackageExcludes)
	return shadeSource(content, r.pathPattern, r.shadedPathPattern, r.sourcePathExcludes)
}

// shadeSource replaces word-bounded occurrences of from with to, keeping an
// occurrence unrenamed when its remainder starts with an excluded suffix or
// when the preceding context is ambiguous. The preceding segment is
// inspected with whitespace runs collapsed, so multi-line contexts read as
// one line:
//
//   - a remainder starting with an excluded suffix always stays unrenamed
//   - a Java keyword plus space, or an opening Javadoc link, right before
//     the occurrence marks a genuine reference and is renamed
//   - any other context ending in '.', '/' or ' ' is ambiguous and stays
//     unrenamed
func shadeSource(content, from, to string, excludedSuffixes []string) string {
	segments := splitAtPattern(content, from)
	if len(segments) == 1 {
		return content
	}

	// Shading usually makes names longer, so size the buffer ahead.
	var shaded strings.Builder
	shaded.Grow(len(content) + len(content)/10)
	shaded.WriteString(segments[0])

	for i := 1; i < len(segments); i++ {
		segment := segments[i]

		keepOriginal := hasAnyPrefix(segment, excludedSuffixes)
		if !keepOriginal {
			previous := rxWhitespaceRun.ReplaceAllString(segments[i-1], " ")
			afterDotSlashSpace := rxEndsWithDotSlashSpace.MatchString(previous)
			afterKeyword := rxEndsWithKeyword.MatchString(previous)
			keepOriginal = afterDotSlashSpace && !afterKeyword
		}

		if keepOriginal {
			shaded.WriteString(from)
		} else {
			shaded.WriteString(to)
		}
		shaded.WriteString(segment)
	}

	return shaded.String()
}

// splitAtPattern splits s at every word-bounded occurrence of pattern,
// treating pattern verbatim. For n occurrences it returns n+1 segments;
// joining the segments with pattern restores s.
func splitAtPattern(s, pattern string) []string {
	var segments []string
	start, from := 0, 0
	for {
		i := strings.Index(s[from:], pattern)
		if i < 0 {
			break
		}
		i += from
		end := i + len(pattern)
		if wordBoundedAt(s, i, end) {
			segments = append(segments, s[start:i])
			start, from = end, end
		} else {
			from = i + 1
		}
	}
	return append(segments, s[start:])
}

// wordBoundedAt reports whether s[start:end] sits on word boundaries: on
// each side either the text ends, or exactly one of the two adjacent bytes
// is a word character.
func wordBoundedAt(s string, start, end int) bool {
	if start == 0 {
		if !isWordByte(s[0]) {
			return false
		}
	} else if isWordByte(s[start-1]) == isWordByte(s[start]) {
		return false
	}
	if end == len(s) {
		return isWordByte(s[end-1])
	}
	return isWordByte(s[end-1]) != isWordByte(s[end])
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('A' <= b && b <= 'Z') ||
		('a' <= b && b <= 'z')
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

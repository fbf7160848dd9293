package scopewalk

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceRange is a half-open byte range into the source text the parser is
// driving the analyzer from. The analyzer never interprets these offsets; it
// only carries them through to diagnostics.
type SourceRange struct {
	Begin uint32
	End   uint32
}

// Identifier is the opaque handle the parser passes to every event that
// names a variable. Two identifiers denote the same variable iff their
// normalized names match byte-for-byte; the source spelling (in particular,
// Unicode escapes) never affects equality.
type Identifier struct {
	Range          SourceRange
	normalizedName string
}

// NewIdentifier decodes raw's Unicode escapes into the canonical name used
// for equality and scope lookups. raw is the identifier exactly as it
// appeared in the source text, including any `\uXXXX`/`\u{X...}` escapes.
func NewIdentifier(raw string, rng SourceRange) Identifier {
	return Identifier{Range: rng, normalizedName: decodeUnicodeEscapes(raw)}
}

// NormalizedName returns the canonical name used for all scope lookups.
func (id Identifier) NormalizedName() string { return id.normalizedName }

func (id Identifier) String() string {
	return fmt.Sprintf("%s@[%d,%d)", id.normalizedName, id.Range.Begin, id.Range.End)
}

// decodeUnicodeEscapes rewrites `\uXXXX` and `\u{X...}` escape sequences into
// the Unicode code points they denote. Anything that isn't a well-formed
// escape is passed through unchanged, matching how a lenient lexer recovers
// from a malformed identifier rather than rejecting it outright.
func decodeUnicodeEscapes(raw string) string {
	if !strings.Contains(raw, `\u`) {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == 'u' {
			if r, width, ok := decodeOneEscape(raw[i:]); ok {
				b.WriteRune(r)
				i += width

				continue
			}
		}

		b.WriteByte(raw[i])
		i++
	}

	return b.String()
}

// decodeOneEscape decodes a single `\uXXXX` or `\u{X...}` escape at the start
// of s, returning the decoded rune, the number of bytes it consumed from s,
// and whether decoding succeeded.
func decodeOneEscape(s string) (r rune, width int, ok bool) {
	if len(s) >= 3 && s[2] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0, false
		}

		v, err := strconv.ParseUint(s[3:end], 16, 32)
		if err != nil {
			return 0, 0, false
		}

		return rune(v), end + 1, true
	}

	if len(s) < 6 {
		return 0, 0, false
	}

	v, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, 0, false
	}

	return rune(v), 6, true
}

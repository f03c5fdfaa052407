package tokenizer

import (
	"strconv"
	"unicode"

	"github.com/halvorsen-oss/gohtml5/internal/constants"
)

// decodeNumericEntity resolves a numeric character reference's digit text
// (already stripped of "&#"/"&#x" and any trailing ";") to the rune it
// designates, applying the spec's Windows-1252 override table and the
// surrogate/out-of-range substitutions.
func decodeNumericEntity(digits string, isHex bool) rune {
	base := 10
	if isHex {
		base = 16
	}
	codepoint, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return unicode.ReplacementChar
	}

	cp := int(codepoint)
	if replacement, ok := constants.NumericReplacements[cp]; ok {
		return replacement
	}
	if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		return unicode.ReplacementChar
	}
	return rune(cp)
}

// longestLegacyPrefix finds the longest prefix of name that names a
// semicolon-optional legacy entity, returning its replacement text and the
// number of runes of name it consumed. Shared by the exact-match-failed
// fallback after a trailing ';' and by the no-';' path, since both reduce to
// the same greedy-prefix rule.
func longestLegacyPrefix(name string) (value string, length int, ok bool) {
	for k := len(name); k > 0; k-- {
		prefix := name[:k]
		if !constants.LegacyEntities[prefix] {
			continue
		}
		if v, found := constants.NamedEntities[prefix]; found {
			return v, k, true
		}
	}
	return "", 0, false
}

// entityScan holds the cursor state while walking a text or attribute-value
// string looking for character references.
type entityScan struct {
	runes       []rune
	pos         int
	inAttribute bool
	out         []rune
}

// decodeEntitiesInText decodes HTML character references in text (or an
// attribute value, when inAttribute is set) per the WHATWG named/numeric
// character reference consumption algorithm.
func decodeEntitiesInText(text string, inAttribute bool) string {
	s := &entityScan{
		runes:       []rune(text),
		inAttribute: inAttribute,
		out:         make([]rune, 0, len(text)),
	}
	for s.pos < len(s.runes) {
		s.consumeUpToAmpersand()
		if s.pos >= len(s.runes) {
			break
		}
		if !s.tryNumeric() {
			s.tryNamed()
		}
	}
	return string(s.out)
}

// consumeUpToAmpersand copies plain text through to the next '&', leaving
// pos at the '&' (or at len(runes) if none remains).
func (s *entityScan) consumeUpToAmpersand() {
	start := s.pos
	for s.pos < len(s.runes) && s.runes[s.pos] != '&' {
		s.pos++
	}
	if s.pos > start {
		s.out = append(s.out, s.runes[start:s.pos]...)
	}
}

func isEntityDigit(r rune, isHex bool) bool {
	if isHex {
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	}
	return r >= '0' && r <= '9'
}

// tryNumeric handles "&#..." references at pos (which points at '&'). It
// reports whether this was in fact a numeric reference, consuming it (valid
// or not) whenever it was.
func (s *entityScan) tryNumeric() bool {
	j := s.pos + 1
	if j >= len(s.runes) || s.runes[j] != '#' {
		return false
	}
	j++

	isHex := false
	if j < len(s.runes) && (s.runes[j] == 'x' || s.runes[j] == 'X') {
		isHex = true
		j++
	}

	digitStart := j
	for j < len(s.runes) && isEntityDigit(s.runes[j], isHex) {
		j++
	}

	digits := string(s.runes[digitStart:j])
	hasSemicolon := j < len(s.runes) && s.runes[j] == ';'

	if digits == "" {
		// "&#" or "&#x" with no digits following isn't a reference at all;
		// emit it verbatim, including the ';' if one followed.
		if hasSemicolon {
			s.out = append(s.out, s.runes[s.pos:j+1]...)
			s.pos = j + 1
		} else {
			s.out = append(s.out, s.runes[s.pos:j]...)
			s.pos = j
		}
		return true
	}

	s.out = append(s.out, decodeNumericEntity(digits, isHex))
	if hasSemicolon {
		s.pos = j + 1
	} else {
		s.pos = j
	}
	return true
}

// tryNamed handles a named character reference at pos (pointing at '&').
func (s *entityScan) tryNamed() {
	j := s.pos + 1
	for j < len(s.runes) && (unicode.IsLetter(s.runes[j]) || unicode.IsDigit(s.runes[j])) {
		j++
	}
	name := string(s.runes[s.pos+1 : j])
	hasSemicolon := j < len(s.runes) && s.runes[j] == ';'

	if name == "" {
		s.out = append(s.out, '&')
		s.pos++
		return
	}

	if hasSemicolon {
		if value, ok := constants.NamedEntities[name]; ok {
			s.out = append(s.out, []rune(value)...)
			s.pos = j + 1
			return
		}
		if !s.inAttribute {
			if value, length, ok := longestLegacyPrefix(name); ok {
				s.out = append(s.out, []rune(value)...)
				s.pos = s.pos + 1 + length
				return
			}
		}
	}

	if constants.LegacyEntities[name] {
		if value, ok := constants.NamedEntities[name]; ok {
			var nextChar rune
			if j < len(s.runes) {
				nextChar = s.runes[j]
			}
			atAttrBoundary := nextChar != 0 && (unicode.IsLetter(nextChar) || unicode.IsDigit(nextChar) || nextChar == '=')
			if s.inAttribute && atAttrBoundary {
				s.out = append(s.out, '&')
				s.pos++
				return
			}
			s.out = append(s.out, []rune(value)...)
			s.pos = j
			return
		}
	}

	if value, length, ok := longestLegacyPrefix(name); ok {
		if s.inAttribute {
			s.out = append(s.out, '&')
			s.pos++
			return
		}
		s.out = append(s.out, []rune(value)...)
		s.pos = s.pos + 1 + length
		return
	}

	if hasSemicolon {
		s.out = append(s.out, s.runes[s.pos:j+1]...)
		s.pos = j + 1
		return
	}
	s.out = append(s.out, '&')
	s.pos++
}

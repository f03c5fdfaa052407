package errors

// codeEntry pairs one WHATWG parse-error code with its human-readable
// explanation. Grouping the two together in one table (rather than a
// separate const block and message map kept in parallel) means adding or
// renaming a code can't leave the two out of sync.
//
// See: https://html.spec.whatwg.org/multipage/parsing.html#parse-errors
type codeEntry struct {
	code    string
	message string
}

var tokenizerCodes = []codeEntry{
	{"abrupt-closing-of-empty-comment", "This error occurs if the parser encounters an empty comment that is abruptly closed by a U+003E (>) code point."},
	{"abrupt-doctype-public-identifier", "This error occurs if the parser encounters a U+003E (>) code point in the DOCTYPE public identifier."},
	{"abrupt-doctype-system-identifier", "This error occurs if the parser encounters a U+003E (>) code point in the DOCTYPE system identifier."},
	{"absence-of-digits-in-numeric-character-reference", "This error occurs if the parser encounters a numeric character reference that doesn't contain any digits."},
	{"cdata-in-html-content", "This error occurs if the parser encounters a CDATA section outside of foreign content (SVG or MathML)."},
	{"character-reference-outside-unicode-range", "This error occurs if the parser encounters a numeric character reference that references a code point greater than U+10FFFF."},
	{"control-character-in-input-stream", "This error occurs if the input stream contains a control character other than ASCII whitespace or U+0000 NULL."},
	{"control-character-reference", "This error occurs if the parser encounters a numeric character reference that references a control character."},
	{"duplicate-attribute", "This error occurs if the parser encounters an attribute with the same name as an earlier attribute on the same tag."},
	{"end-tag-with-attributes", "This error occurs if the parser encounters an end tag with attributes."},
	{"end-tag-with-trailing-solidus", "This error occurs if the parser encounters an end tag with a trailing solidus (/)."},
	{"eof-before-tag-name", "This error occurs if the parser encounters EOF where a tag name is expected."},
	{"eof-in-cdata", "This error occurs if the parser encounters EOF in a CDATA section."},
	{"eof-in-comment", "This error occurs if the parser encounters EOF in a comment."},
	{"eof-in-doctype", "This error occurs if the parser encounters EOF in a DOCTYPE."},
	{"eof-in-script-html-comment-like-text", "This error occurs if the parser encounters EOF in a script element in an HTML comment-like text."},
	{"eof-in-tag", "This error occurs if the parser encounters EOF in a tag."},
	{"incorrectly-closed-comment", "This error occurs if the parser encounters an incorrectly closed comment."},
	{"incorrectly-opened-comment", "This error occurs if the parser encounters an incorrectly opened comment."},
	{"invalid-character-sequence-after-doctype-name", "This error occurs if the parser encounters an invalid character sequence after a DOCTYPE name."},
	{"invalid-first-character-of-tag-name", "This error occurs if the parser encounters an invalid first character of a tag name."},
	{"missing-attribute-value", "This error occurs if the parser encounters an attribute name not followed by an attribute value."},
	{"missing-doctype-name", "This error occurs if the parser encounters a DOCTYPE without a name."},
	{"missing-doctype-public-identifier", "This error occurs if the parser encounters a DOCTYPE with a missing public identifier."},
	{"missing-doctype-system-identifier", "This error occurs if the parser encounters a DOCTYPE with a missing system identifier."},
	{"missing-end-tag-name", "This error occurs if the parser encounters a missing end tag name."},
	{"missing-quote-before-doctype-public-identifier", "This error occurs if the parser encounters a DOCTYPE public identifier without a leading quote."},
	{"missing-quote-before-doctype-system-identifier", "This error occurs if the parser encounters a DOCTYPE system identifier without a leading quote."},
	{"missing-semicolon-after-character-reference", "This error occurs if the parser encounters a character reference not terminated by a semicolon."},
	{"missing-whitespace-after-doctype-public-keyword", "This error occurs if the parser encounters a DOCTYPE with missing whitespace after the PUBLIC keyword."},
	{"missing-whitespace-after-doctype-system-keyword", "This error occurs if the parser encounters a DOCTYPE with missing whitespace after the SYSTEM keyword."},
	{"missing-whitespace-before-doctype-name", "This error occurs if the parser encounters a DOCTYPE without whitespace before the name."},
	{"missing-whitespace-between-attributes", "This error occurs if the parser encounters a missing whitespace between attributes."},
	{"missing-whitespace-between-doctype-public-and-system-identifiers", "This error occurs if the parser encounters a DOCTYPE with missing whitespace between public and system identifiers."},
	{"nested-comment", "This error occurs if the parser encounters a nested comment."},
	{"noncharacter-character-reference", "This error occurs if the parser encounters a numeric character reference that references a noncharacter."},
	{"noncharacter-in-input-stream", "This error occurs if the input stream contains a noncharacter."},
	{"non-void-html-element-start-tag-with-trailing-solidus", "This error occurs if the parser encounters a non-void HTML element start tag with a trailing solidus."},
	{"null-character-reference", "This error occurs if the parser encounters a numeric character reference that references U+0000 NULL."},
	{"surrogate-character-reference", "This error occurs if the parser encounters a numeric character reference that references a surrogate."},
	{"surrogate-in-input-stream", "This error occurs if the input stream contains a surrogate."},
	{"unexpected-character-after-doctype-system-identifier", "This error occurs if the parser encounters an unexpected character after a DOCTYPE system identifier."},
	{"unexpected-character-in-attribute-name", "This error occurs if the parser encounters an unexpected character in an attribute name."},
	{"unexpected-character-in-unquoted-attribute-value", "This error occurs if the parser encounters an unexpected character in an unquoted attribute value."},
	{"unexpected-equals-sign-before-attribute-name", "This error occurs if the parser encounters an equals sign before an attribute name."},
	{"unexpected-null-character", "This error occurs if the parser encounters an unexpected null character."},
	{"unexpected-question-mark-instead-of-tag-name", "This error occurs if the parser encounters a question mark instead of a tag name."},
	{"unexpected-solidus-in-tag", "This error occurs if the parser encounters an unexpected solidus in a tag."},
	{"unknown-named-character-reference", "This error occurs if the parser encounters an unknown named character reference."},
}

var treeConstructionCodes = []codeEntry{
	{"non-space-character-in-table-text", "This error occurs if the parser encounters a non-whitespace character where only table text is expected."},
	{"foster-parented-character", "This error occurs if the parser foster-parents a character outside of its original table position."},
}

// Named constants for the codes tokenizer and tree-construction code use to
// report parse errors. Values are the exact kebab-case strings WHATWG HTML
// assigns to each error, so calling code can compare a reported code against
// these names instead of repeating the literal string.
const (
	AbruptClosingOfEmptyComment                               = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier                             = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier                              = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharReference                      = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                                         = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange                      = "character-reference-outside-unicode-range"
	ControlCharacterInInputStream                              = "control-character-in-input-stream"
	ControlCharacterReference                                  = "control-character-reference"
	DuplicateAttribute                                         = "duplicate-attribute"
	EndTagWithAttributes                                       = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                                  = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                                           = "eof-before-tag-name"
	EOFInCDATA                                                 = "eof-in-cdata"
	EOFInComment                                               = "eof-in-comment"
	EOFInDoctype                                               = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText                             = "eof-in-script-html-comment-like-text"
	EOFInTag                                                   = "eof-in-tag"
	IncorrectlyClosedComment                                   = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                                   = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName                   = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName                             = "invalid-first-character-of-tag-name"
	MissingAttributeValue                                      = "missing-attribute-value"
	MissingDoctypeName                                         = "missing-doctype-name"
	MissingDoctypePublicIdentifier                             = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier                              = "missing-doctype-system-identifier"
	MissingEndTagName                                          = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier                  = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier                  = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference                    = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword                 = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword                 = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName                         = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes                         = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers  = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                                              = "nested-comment"
	NoncharacterCharacterReference                             = "noncharacter-character-reference"
	NoncharacterInInputStream                                  = "noncharacter-in-input-stream"
	NonVoidHTMLElementStartTagWithTrailingSolidus              = "non-void-html-element-start-tag-with-trailing-solidus"
	NullCharacterReference                                     = "null-character-reference"
	SurrogateCharacterReference                                = "surrogate-character-reference"
	SurrogateInInputStream                                     = "surrogate-in-input-stream"
	UnexpectedCharacterAfterDoctypeSystemIdentifier            = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName                         = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue                = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName                    = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                                    = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName                     = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                                     = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference                             = "unknown-named-character-reference"

	NonSpaceCharacterInTableText = "non-space-character-in-table-text"
	FosterParentedCharacter      = "foster-parented-character"
)

var errorMessages = buildErrorMessages()

func buildErrorMessages() map[string]string {
	out := make(map[string]string, len(tokenizerCodes)+len(treeConstructionCodes))
	for _, e := range tokenizerCodes {
		out[e.code] = e.message
	}
	for _, e := range treeConstructionCodes {
		out[e.code] = e.message
	}
	return out
}

// Message returns the human-readable message for an error code, or a
// fallback string if code isn't one this package knows about.
func Message(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Unknown error"
}

// IsKnown reports whether code matches one of the named parse-error
// constants above.
func IsKnown(code string) bool {
	_, ok := errorMessages[code]
	return ok
}

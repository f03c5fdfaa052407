package tokenizer

// State represents the tokenizer state.
// The tokenizer is a state machine that transitions between these states.
type State int

// InvalidState is used to indicate an unknown or invalid state.
const InvalidState State = -1

// State aliases for html5lib-tests compatibility.
const (
	PlaintextState = PLAINTEXTState
	RawtextState   = RAWTEXTState
)

// Tokenizer states as defined by the HTML5 specification.
// See: https://html.spec.whatwg.org/multipage/parsing.html#tokenization
//
// The enum is grouped by the content family each state belongs to (plain
// text content, tag/attribute parsing, comments, DOCTYPE, CDATA, character
// references) rather than left as one flat block; iota assigns values in
// declaration order regardless of grouping, so this is purely organizational.
const (
	// Text content states (data, RCDATA, RAWTEXT, script data, plaintext)
	// and their respective "<" / end-tag sub-states.
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState

	// Tag open / name / attribute states.
	TagOpenState
	EndTagOpenState
	TagNameState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState

	// Comment and bogus-comment states.
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState

	// DOCTYPE states.
	DOCTYPEState
	BeforeDOCTYPENameState
	DOCTYPENameState
	AfterDOCTYPENameState
	AfterDOCTYPEPublicKeywordState
	BeforeDOCTYPEPublicIdentifierState
	DOCTYPEPublicIdentifierDoubleQuotedState
	DOCTYPEPublicIdentifierSingleQuotedState
	AfterDOCTYPEPublicIdentifierState
	BetweenDOCTYPEPublicAndSystemIdentifiersState
	AfterDOCTYPESystemKeywordState
	BeforeDOCTYPESystemIdentifierState
	DOCTYPESystemIdentifierDoubleQuotedState
	DOCTYPESystemIdentifierSingleQuotedState
	AfterDOCTYPESystemIdentifierState
	BogusDOCTYPEState

	// CDATA section states (foreign content only).
	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState

	// Character-reference states, handled inline by the entity decoder
	// rather than as step() dispatch targets; kept here so State covers
	// every state WHATWG HTML §13.2.5 names.
	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

// stateNames maps each state to its debug name, keyed by the constant
// itself rather than by declaration position: the enum above is organized
// into content-family groups rather than kept as one flat iota block, so a
// position-indexed name table would silently drift out of sync with it.
var stateNames = map[State]string{
	DataState:       "Data",
	RCDATAState:     "RCDATA",
	RAWTEXTState:    "RAWTEXT",
	ScriptDataState: "ScriptData",
	PLAINTEXTState:  "PLAINTEXT",

	RCDATALessThanSignState:                  "RCDATALessThanSign",
	RCDATAEndTagOpenState:                    "RCDATAEndTagOpen",
	RCDATAEndTagNameState:                    "RCDATAEndTagName",
	RAWTEXTLessThanSignState:                 "RAWTEXTLessThanSign",
	RAWTEXTEndTagOpenState:                   "RAWTEXTEndTagOpen",
	RAWTEXTEndTagNameState:                   "RAWTEXTEndTagName",
	ScriptDataLessThanSignState:              "ScriptDataLessThanSign",
	ScriptDataEndTagOpenState:                "ScriptDataEndTagOpen",
	ScriptDataEndTagNameState:                "ScriptDataEndTagName",
	ScriptDataEscapeStartState:               "ScriptDataEscapeStart",
	ScriptDataEscapeStartDashState:           "ScriptDataEscapeStartDash",
	ScriptDataEscapedState:                   "ScriptDataEscaped",
	ScriptDataEscapedDashState:               "ScriptDataEscapedDash",
	ScriptDataEscapedDashDashState:           "ScriptDataEscapedDashDash",
	ScriptDataEscapedLessThanSignState:       "ScriptDataEscapedLessThanSign",
	ScriptDataEscapedEndTagOpenState:         "ScriptDataEscapedEndTagOpen",
	ScriptDataEscapedEndTagNameState:         "ScriptDataEscapedEndTagName",
	ScriptDataDoubleEscapeStartState:         "ScriptDataDoubleEscapeStart",
	ScriptDataDoubleEscapedState:             "ScriptDataDoubleEscaped",
	ScriptDataDoubleEscapedDashState:         "ScriptDataDoubleEscapedDash",
	ScriptDataDoubleEscapedDashDashState:     "ScriptDataDoubleEscapedDashDash",
	ScriptDataDoubleEscapedLessThanSignState: "ScriptDataDoubleEscapedLessThanSign",
	ScriptDataDoubleEscapeEndState:           "ScriptDataDoubleEscapeEnd",

	TagOpenState:                   "TagOpen",
	EndTagOpenState:                "EndTagOpen",
	TagNameState:                   "TagName",
	BeforeAttributeNameState:       "BeforeAttributeName",
	AttributeNameState:             "AttributeName",
	AfterAttributeNameState:        "AfterAttributeName",
	BeforeAttributeValueState:      "BeforeAttributeValue",
	AttributeValueDoubleQuotedState: "AttributeValueDoubleQuoted",
	AttributeValueSingleQuotedState: "AttributeValueSingleQuoted",
	AttributeValueUnquotedState:     "AttributeValueUnquoted",
	AfterAttributeValueQuotedState:  "AfterAttributeValueQuoted",
	SelfClosingStartTagState:        "SelfClosingStartTag",

	BogusCommentState:                   "BogusComment",
	MarkupDeclarationOpenState:          "MarkupDeclarationOpen",
	CommentStartState:                   "CommentStart",
	CommentStartDashState:               "CommentStartDash",
	CommentState:                        "Comment",
	CommentLessThanSignState:            "CommentLessThanSign",
	CommentLessThanSignBangState:        "CommentLessThanSignBang",
	CommentLessThanSignBangDashState:    "CommentLessThanSignBangDash",
	CommentLessThanSignBangDashDashState: "CommentLessThanSignBangDashDash",
	CommentEndDashState:                 "CommentEndDash",
	CommentEndState:                     "CommentEnd",
	CommentEndBangState:                 "CommentEndBang",

	DOCTYPEState:                             "DOCTYPE",
	BeforeDOCTYPENameState:                   "BeforeDOCTYPEName",
	DOCTYPENameState:                         "DOCTYPEName",
	AfterDOCTYPENameState:                    "AfterDOCTYPEName",
	AfterDOCTYPEPublicKeywordState:           "AfterDOCTYPEPublicKeyword",
	BeforeDOCTYPEPublicIdentifierState:       "BeforeDOCTYPEPublicIdentifier",
	DOCTYPEPublicIdentifierDoubleQuotedState: "DOCTYPEPublicIdentifierDoubleQuoted",
	DOCTYPEPublicIdentifierSingleQuotedState: "DOCTYPEPublicIdentifierSingleQuoted",
	AfterDOCTYPEPublicIdentifierState:        "AfterDOCTYPEPublicIdentifier",
	BetweenDOCTYPEPublicAndSystemIdentifiersState: "BetweenDOCTYPEPublicAndSystemIdentifiers",
	AfterDOCTYPESystemKeywordState:                "AfterDOCTYPESystemKeyword",
	BeforeDOCTYPESystemIdentifierState:            "BeforeDOCTYPESystemIdentifier",
	DOCTYPESystemIdentifierDoubleQuotedState:       "DOCTYPESystemIdentifierDoubleQuoted",
	DOCTYPESystemIdentifierSingleQuotedState:       "DOCTYPESystemIdentifierSingleQuoted",
	AfterDOCTYPESystemIdentifierState:              "AfterDOCTYPESystemIdentifier",
	BogusDOCTYPEState:                              "BogusDOCTYPE",

	CDATASectionState:        "CDATASection",
	CDATASectionBracketState: "CDATASectionBracket",
	CDATASectionEndState:     "CDATASectionEnd",

	CharacterReferenceState:                 "CharacterReference",
	NamedCharacterReferenceState:             "NamedCharacterReference",
	AmbiguousAmpersandState:                  "AmbiguousAmpersand",
	NumericCharacterReferenceState:           "NumericCharacterReference",
	HexadecimalCharacterReferenceStartState:  "HexadecimalCharacterReferenceStart",
	DecimalCharacterReferenceStartState:      "DecimalCharacterReferenceStart",
	HexadecimalCharacterReferenceState:       "HexadecimalCharacterReference",
	DecimalCharacterReferenceState:           "DecimalCharacterReference",
	NumericCharacterReferenceEndState:        "NumericCharacterReferenceEnd",
}

// String returns the name of the state for debugging.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

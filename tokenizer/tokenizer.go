package tokenizer

import (
	"strings"
	"sync"
	"unicode"

	"github.com/halvorsen-oss/gohtml5/internal/constants"
)

// attrMapPool pools attribute index maps to reduce allocations.
var attrMapPool = sync.Pool{
	New: func() interface{} {
		return make(map[string]struct{}, 8) // Pre-allocate for typical attribute count
	},
}

// getAttrMap retrieves a map from the pool and clears it.
func getAttrMap() map[string]struct{} {
	m := attrMapPool.Get().(map[string]struct{})
	// Clear the map
	for k := range m {
		delete(m, k)
	}
	return m
}

// putAttrMap returns a map to the pool.
func putAttrMap(m map[string]struct{}) {
	if m != nil {
		attrMapPool.Put(m)
	}
}

// Tokenizer implements the HTML5 tokenization algorithm (port of the Python reference).
//
// It produces a stream of tokens and collects parse errors.
type Tokenizer struct {
	opts Options

	origInput string

	buf []rune
	pos int

	state    State
	textMode State

	reconsume bool
	ignoreLF  bool

	line   int
	column int

	// Current tag token being built.
	currentTagKind        TokenKind
	currentTagName        []rune
	currentTagAttrs       []Attr
	currentTagAttrIndex   map[string]struct{}
	currentTagSelfClosing bool

	currentAttrName           []rune
	currentAttrValue          []rune
	currentAttrValueHasAmp    bool
	currentComment            []rune
	commentEOF                bool
	currentDoctypeName        []rune
	currentDoctypePublic      *[]rune // nil = not set, empty slice = empty string
	currentDoctypeSystem      *[]rune
	currentDoctypeForceQuirks bool

	// For rawtext/rcdata/script end-tag matching.
	rawtextTagName  string
	originalTagName []rune
	tempBuffer      []rune

	lastStartTagName string

	textBuffer strings.Builder
	textHasAmp bool

	pendingTokens []Token
	errors        []ParseError

	allowCDATA bool
}

// ParseError represents a tokenizer parse error.
type ParseError struct {
	Code    string
	Message string
	Line    int
	Column  int
}

// New creates a new tokenizer for the given input.
func New(input string) *Tokenizer {
	return NewWithOptions(input, defaultOptions())
}

// NewWithOptions creates a new tokenizer for the given input and options.
func NewWithOptions(input string, opts Options) *Tokenizer {
	tz := &Tokenizer{
		opts:     opts,
		state:    DataState,
		textMode: DataState,
		line:     1,
		column:   0,
	}
	tz.origInput = input
	tz.reset(input)
	return tz
}

func (tz *Tokenizer) reset(input string) {
	if input != "" && tz.opts.DiscardBOM {
		r := []rune(input)
		if len(r) > 0 && r[0] == 0xFEFF {
			r = r[1:]
		}
		tz.buf = r
	} else {
		tz.buf = []rune(input)
	}

	tz.pos = 0
	tz.reconsume = false
	tz.ignoreLF = false
	tz.line = 1
	tz.column = 0
	tz.textMode = tz.state

	tz.currentTagKind = StartTag
	tz.currentTagName = tz.currentTagName[:0]
	tz.currentTagAttrs = tz.currentTagAttrs[:0]
	// Return old map to pool and get a fresh one
	putAttrMap(tz.currentTagAttrIndex)
	tz.currentTagAttrIndex = getAttrMap()
	tz.currentTagSelfClosing = false
	tz.currentAttrName = tz.currentAttrName[:0]
	tz.currentAttrValue = tz.currentAttrValue[:0]
	tz.currentAttrValueHasAmp = false
	tz.currentComment = tz.currentComment[:0]
	tz.currentDoctypeName = tz.currentDoctypeName[:0]
	tz.currentDoctypePublic = nil
	tz.currentDoctypeSystem = nil
	tz.currentDoctypeForceQuirks = false

	tz.rawtextTagName = ""
	tz.originalTagName = tz.originalTagName[:0]
	tz.tempBuffer = tz.tempBuffer[:0]

	tz.textBuffer.Reset()
	tz.textHasAmp = false

	tz.pendingTokens = nil
	tz.errors = nil
}

// SetDiscardBOM controls whether the leading U+FEFF BOM is discarded.
// For correctness, this should be called before consuming tokens.
func (tz *Tokenizer) SetDiscardBOM(discard bool) {
	if tz.opts.DiscardBOM == discard {
		return
	}
	tz.opts.DiscardBOM = discard
	// Re-initialize the input buffer since BOM handling affects the rune stream.
	tz.reset(tz.origInput)
}

// SetXMLCoercion enables/disables XML coercion for text/comment output.
func (tz *Tokenizer) SetXMLCoercion(enabled bool) {
	tz.opts.XMLCoercion = enabled
}

// SetAllowCDATA toggles CDATA section parsing for foreign content.
func (tz *Tokenizer) SetAllowCDATA(enabled bool) {
	tz.allowCDATA = enabled
}

// SetState sets the tokenizer state.
// This is used by the tree builder to switch to RCDATA, RAWTEXT, etc.
func (tz *Tokenizer) SetState(state State) {
	tz.state = state
	//nolint:exhaustive // Only specific states affect textMode; others use default behavior
	switch state {
	case DataState, RCDATAState, RAWTEXTState, ScriptDataState, PLAINTEXTState, CDATASectionState:
		tz.textMode = state
	default:
		// Other states do not change textMode
	}
	// Ensure rawtext end-tag matching has a tag name.
	if (state == RCDATAState || state == RAWTEXTState || state == ScriptDataState) && tz.rawtextTagName == "" && tz.lastStartTagName != "" {
		tz.rawtextTagName = tz.lastStartTagName
	}
}

// SetLastStartTag sets the last start tag name.
// This is used for appropriate end tag matching in RCDATA/RAWTEXT/script states.
func (tz *Tokenizer) SetLastStartTag(name string) {
	tz.lastStartTagName = name
	// For tokenizer tests, we use this as the current rawtext tag name as well.
	tz.rawtextTagName = name
}

// Errors returns the parse errors encountered during tokenization.
func (tz *Tokenizer) Errors() []ParseError {
	return tz.errors
}

// Next returns the next token.
// Returns a token with Type == EOF when input is exhausted.
func (tz *Tokenizer) Next() Token {
	if len(tz.pendingTokens) > 0 {
		token := tz.pendingTokens[0]
		tz.pendingTokens = tz.pendingTokens[1:]
		return token
	}

	for len(tz.pendingTokens) == 0 {
		tz.step()
	}
	token := tz.pendingTokens[0]
	tz.pendingTokens = tz.pendingTokens[1:]
	return token
}

// numTokenizerStates sizes stateHandlers to cover every defined State value.
const numTokenizerStates = NumericCharacterReferenceEndState + 1

// stateHandlers dispatches step() to the method implementing each state,
// indexed by State value instead of switched on it; states with no
// implementation (InvalidState, the character-reference substates handled
// inline by decodeEntitiesInText) leave their slot nil and fall back to
// DataState.
var stateHandlers [numTokenizerStates]func(*Tokenizer)

func init() {
	stateHandlers[DataState] = (*Tokenizer).stateData
	stateHandlers[TagOpenState] = (*Tokenizer).stateTagOpen
	stateHandlers[EndTagOpenState] = (*Tokenizer).stateEndTagOpen
	stateHandlers[TagNameState] = (*Tokenizer).stateTagName
	stateHandlers[BeforeAttributeNameState] = (*Tokenizer).stateBeforeAttributeName
	stateHandlers[AttributeNameState] = (*Tokenizer).stateAttributeName
	stateHandlers[AfterAttributeNameState] = (*Tokenizer).stateAfterAttributeName
	stateHandlers[BeforeAttributeValueState] = (*Tokenizer).stateBeforeAttributeValue
	stateHandlers[AttributeValueDoubleQuotedState] = (*Tokenizer).stateAttributeValueDoubleQuoted
	stateHandlers[AttributeValueSingleQuotedState] = (*Tokenizer).stateAttributeValueSingleQuoted
	stateHandlers[AttributeValueUnquotedState] = (*Tokenizer).stateAttributeValueUnquoted
	stateHandlers[AfterAttributeValueQuotedState] = (*Tokenizer).stateAfterAttributeValueQuoted
	stateHandlers[SelfClosingStartTagState] = (*Tokenizer).stateSelfClosingStartTag
	stateHandlers[MarkupDeclarationOpenState] = (*Tokenizer).stateMarkupDeclarationOpen
	stateHandlers[CommentStartState] = (*Tokenizer).stateCommentStart
	stateHandlers[CommentStartDashState] = (*Tokenizer).stateCommentStartDash
	stateHandlers[CommentState] = (*Tokenizer).stateComment
	stateHandlers[CommentEndDashState] = (*Tokenizer).stateCommentEndDash
	stateHandlers[CommentEndState] = (*Tokenizer).stateCommentEnd
	stateHandlers[CommentEndBangState] = (*Tokenizer).stateCommentEndBang
	stateHandlers[BogusCommentState] = (*Tokenizer).stateBogusComment
	stateHandlers[DOCTYPEState] = (*Tokenizer).stateDoctype
	stateHandlers[BeforeDOCTYPENameState] = (*Tokenizer).stateBeforeDoctypeName
	stateHandlers[DOCTYPENameState] = (*Tokenizer).stateDoctypeName
	stateHandlers[AfterDOCTYPENameState] = (*Tokenizer).stateAfterDoctypeName
	stateHandlers[BogusDOCTYPEState] = (*Tokenizer).stateBogusDoctype
	stateHandlers[AfterDOCTYPEPublicKeywordState] = (*Tokenizer).stateAfterDoctypePublicKeyword
	stateHandlers[AfterDOCTYPESystemKeywordState] = (*Tokenizer).stateAfterDoctypeSystemKeyword
	stateHandlers[BeforeDOCTYPEPublicIdentifierState] = (*Tokenizer).stateBeforeDoctypePublicIdentifier
	stateHandlers[DOCTYPEPublicIdentifierDoubleQuotedState] = (*Tokenizer).stateDoctypePublicIdentifierDoubleQuoted
	stateHandlers[DOCTYPEPublicIdentifierSingleQuotedState] = (*Tokenizer).stateDoctypePublicIdentifierSingleQuoted
	stateHandlers[AfterDOCTYPEPublicIdentifierState] = (*Tokenizer).stateAfterDoctypePublicIdentifier
	stateHandlers[BetweenDOCTYPEPublicAndSystemIdentifiersState] = (*Tokenizer).stateBetweenDoctypePublicAndSystemIdentifiers
	stateHandlers[BeforeDOCTYPESystemIdentifierState] = (*Tokenizer).stateBeforeDoctypeSystemIdentifier
	stateHandlers[DOCTYPESystemIdentifierDoubleQuotedState] = (*Tokenizer).stateDoctypeSystemIdentifierDoubleQuoted
	stateHandlers[DOCTYPESystemIdentifierSingleQuotedState] = (*Tokenizer).stateDoctypeSystemIdentifierSingleQuoted
	stateHandlers[AfterDOCTYPESystemIdentifierState] = (*Tokenizer).stateAfterDoctypeSystemIdentifier
	stateHandlers[CDATASectionState] = (*Tokenizer).stateCDATASection
	stateHandlers[CDATASectionBracketState] = (*Tokenizer).stateCDATASectionBracket
	stateHandlers[CDATASectionEndState] = (*Tokenizer).stateCDATASectionEnd
	stateHandlers[RCDATAState] = (*Tokenizer).stateRCDATA
	stateHandlers[RCDATALessThanSignState] = (*Tokenizer).stateRCDATALessThanSign
	stateHandlers[RCDATAEndTagOpenState] = (*Tokenizer).stateRCDATAEndTagOpen
	stateHandlers[RCDATAEndTagNameState] = (*Tokenizer).stateRCDATAEndTagName
	stateHandlers[RAWTEXTState] = (*Tokenizer).stateRAWTEXT
	stateHandlers[ScriptDataState] = (*Tokenizer).stateRAWTEXT // script data behaves like rawtext with extra handling
	stateHandlers[RAWTEXTLessThanSignState] = (*Tokenizer).stateRAWTEXTLessThanSign
	stateHandlers[RAWTEXTEndTagOpenState] = (*Tokenizer).stateRAWTEXTEndTagOpen
	stateHandlers[RAWTEXTEndTagNameState] = (*Tokenizer).stateRAWTEXTEndTagName
	stateHandlers[PLAINTEXTState] = (*Tokenizer).statePLAINTEXT
	stateHandlers[ScriptDataEscapedState] = (*Tokenizer).stateScriptDataEscaped
	stateHandlers[ScriptDataEscapedDashState] = (*Tokenizer).stateScriptDataEscapedDash
	stateHandlers[ScriptDataEscapedDashDashState] = (*Tokenizer).stateScriptDataEscapedDashDash
	stateHandlers[ScriptDataEscapedLessThanSignState] = (*Tokenizer).stateScriptDataEscapedLessThanSign
	stateHandlers[ScriptDataEscapedEndTagOpenState] = (*Tokenizer).stateScriptDataEscapedEndTagOpen
	stateHandlers[ScriptDataEscapedEndTagNameState] = (*Tokenizer).stateScriptDataEscapedEndTagName
	stateHandlers[ScriptDataDoubleEscapeStartState] = (*Tokenizer).stateScriptDataDoubleEscapeStart
	stateHandlers[ScriptDataDoubleEscapedState] = (*Tokenizer).stateScriptDataDoubleEscaped
	stateHandlers[ScriptDataDoubleEscapedDashState] = (*Tokenizer).stateScriptDataDoubleEscapedDash
	stateHandlers[ScriptDataDoubleEscapedDashDashState] = (*Tokenizer).stateScriptDataDoubleEscapedDashDash
	stateHandlers[ScriptDataDoubleEscapedLessThanSignState] = (*Tokenizer).stateScriptDataDoubleEscapedLessThanSign
	stateHandlers[ScriptDataDoubleEscapeEndState] = (*Tokenizer).stateScriptDataDoubleEscapeEnd
}

// step advances the state machine by one state-handler invocation, looking
// the handler up in stateHandlers rather than switching on tz.state.
func (tz *Tokenizer) step() {
	if h := stateHandlers[tz.state]; h != nil {
		h(tz)
		return
	}
	// Unimplemented states behave like Data for now.
	tz.state = DataState
}

func (tz *Tokenizer) getChar() (rune, bool) {
	if tz.reconsume {
		tz.reconsume = false
		if tz.pos == 0 {
			return 0, false
		}
		tz.pos--
	}

	for {
		if tz.pos >= len(tz.buf) {
			return 0, false
		}

		c := tz.buf[tz.pos]
		tz.pos++

		if c == '\r' {
			tz.ignoreLF = true
			tz.advance('\n')
			return '\n', true
		}
		if c == '\n' {
			if tz.ignoreLF {
				tz.ignoreLF = false
				continue
			}
			tz.advance('\n')
			return '\n', true
		}

		tz.ignoreLF = false
		tz.advance(c)
		return c, true
	}
}

func (tz *Tokenizer) peek(offset int) (rune, bool) {
	i := tz.pos + offset
	if tz.reconsume {
		i--
	}
	if i < 0 || i >= len(tz.buf) {
		return 0, false
	}
	return tz.buf[i], true
}

func (tz *Tokenizer) advance(c rune) {
	if c == '\n' {
		tz.line++
		tz.column = 0
		return
	}
	tz.column++
}

func (tz *Tokenizer) emit(tok Token) {
	tz.pendingTokens = append(tz.pendingTokens, tok)
}

func (tz *Tokenizer) emitEOF() {
	tz.flushText()
	tz.emit(Token{Type: EOF})
}

func (tz *Tokenizer) emitError(code string) {
	tz.errors = append(tz.errors, ParseError{
		Code:   code,
		Line:   tz.line,
		Column: max(1, tz.column),
	})
}

func (tz *Tokenizer) reconsumeCurrent() {
	tz.reconsume = true
}

func (tz *Tokenizer) appendTextRune(r rune) {
	if r == '&' {
		tz.textHasAmp = true
	}
	tz.textBuffer.WriteRune(r)
}

func (tz *Tokenizer) flushText() {
	if tz.textBuffer.Len() == 0 {
		return
	}
	data := tz.textBuffer.String()
	tz.textBuffer.Reset()

	// Decode character references in Data/RCDATA modes (including their helper states).
	if (tz.textMode == DataState || tz.textMode == RCDATAState) && tz.textHasAmp {
		data = decodeEntitiesInText(data, false)
	}
	tz.textHasAmp = false

	if tz.opts.XMLCoercion {
		data = coerceTextForXML(data)
	}

	tz.emit(Token{Type: Character, Data: data})
}

func (tz *Tokenizer) finishAttribute() {
	if len(tz.currentAttrName) == 0 {
		return
	}
	name := constants.InternAttributeName(string(tz.currentAttrName))
	tz.currentAttrName = tz.currentAttrName[:0]

	if _, exists := tz.currentTagAttrIndex[name]; exists {
		tz.emitError("duplicate-attribute")
		tz.currentAttrValue = tz.currentAttrValue[:0]
		tz.currentAttrValueHasAmp = false
		return
	}

	value := ""
	if len(tz.currentAttrValue) > 0 {
		value = string(tz.currentAttrValue)
	}
	if tz.currentAttrValueHasAmp {
		value = decodeEntitiesInText(value, true)
	}
	tz.currentTagAttrs = append(tz.currentTagAttrs, Attr{Name: name, Value: value})
	tz.currentTagAttrIndex[name] = struct{}{}

	tz.currentAttrValue = tz.currentAttrValue[:0]
	tz.currentAttrValueHasAmp = false
}

func (tz *Tokenizer) emitCurrentTag() bool {
	var switchedTextMode bool
	name := constants.InternTagName(string(tz.currentTagName))
	attrs := append([]Attr(nil), tz.currentTagAttrs...)
	tok := Token{
		Type:        tz.currentTagKind,
		Name:        name,
		Attrs:       attrs,
		SelfClosing: tz.currentTagSelfClosing,
	}

	// Tokenizer-side state switching for rawtext/rcdata elements.
	// In the full HTML parsing pipeline, the tree builder controls these switches.
	// The reference Python implementation performs this switch when emitting the
	// tag into the sink; tokenizer tests in this repo expect the same behavior.
	if tok.Type == StartTag {
		tz.lastStartTagName = name
		switch name {
		case "title", "textarea":
			tz.state = RCDATAState
			tz.textMode = RCDATAState
			tz.rawtextTagName = name
			switchedTextMode = true
		case "script":
			tz.state = ScriptDataState
			tz.textMode = RAWTEXTState
			tz.rawtextTagName = name
			switchedTextMode = true
		case "style", "xmp", "iframe", "noembed", "noframes":
			tz.state = RAWTEXTState
			tz.textMode = RAWTEXTState
			tz.rawtextTagName = name
			switchedTextMode = true
		case "plaintext":
			tz.state = PLAINTEXTState
			tz.textMode = PLAINTEXTState
			tz.rawtextTagName = name
			switchedTextMode = true
		}
	}

	tz.currentTagName = tz.currentTagName[:0]
	tz.currentTagAttrs = tz.currentTagAttrs[:0]
	// Return old map to pool and get a fresh one
	putAttrMap(tz.currentTagAttrIndex)
	tz.currentTagAttrIndex = getAttrMap()
	tz.currentAttrName = tz.currentAttrName[:0]
	tz.currentAttrValue = tz.currentAttrValue[:0]
	tz.currentAttrValueHasAmp = false
	tz.currentTagSelfClosing = false
	tz.currentTagKind = StartTag

	tz.emit(tok)
	return switchedTextMode
}

func (tz *Tokenizer) emitComment() {
	data := string(tz.currentComment)
	tz.currentComment = tz.currentComment[:0]
	if tz.opts.XMLCoercion {
		data = coerceCommentForXML(data)
	}
	tz.emit(Token{Type: Comment, Data: data, CommentEOF: tz.commentEOF})
	tz.commentEOF = false
}

func (tz *Tokenizer) emitDoctype() {
	name := string(tz.currentDoctypeName)
	var publicID *string
	var systemID *string
	if tz.currentDoctypePublic != nil {
		s := string(*tz.currentDoctypePublic)
		publicID = &s
	}
	if tz.currentDoctypeSystem != nil {
		s := string(*tz.currentDoctypeSystem)
		systemID = &s
	}

	tz.emit(Token{
		Type:        DOCTYPE,
		Name:        name,
		PublicID:    publicID,
		SystemID:    systemID,
		ForceQuirks: tz.currentDoctypeForceQuirks,
	})
}

func (tz *Tokenizer) consumeIf(lit string) bool {
	r := []rune(lit)
	if tz.pos+len(r) > len(tz.buf) {
		return false
	}
	for i := range r {
		if tz.buf[tz.pos+i] != r[i] {
			return false
		}
	}
	tz.pos += len(r)
	// Update column as if consumed (best-effort; these literals are ASCII).
	tz.column += len(r)
	return true
}

func (tz *Tokenizer) consumeCaseInsensitive(lit string) bool {
	r := []rune(lit)
	if tz.pos+len(r) > len(tz.buf) {
		return false
	}
	for i := range r {
		a := tz.buf[tz.pos+i]
		b := r[i]
		if unicode.ToLower(a) != unicode.ToLower(b) {
			return false
		}
	}
	tz.pos += len(r)
	tz.column += len(r)
	return true
}


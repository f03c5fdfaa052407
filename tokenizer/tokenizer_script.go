package tokenizer

import (
	"strings"
	"unicode"
)

// script element content states, including the escaped and
// double-escaped variants (WHATWG HTML §13.2.5.27-13.2.5.38).

func (tz *Tokenizer) stateScriptDataEscaped() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	switch c {
	case '-':
		tz.appendTextRune('-')
		tz.state = ScriptDataEscapedDashState
	case '<':
		tz.state = ScriptDataEscapedLessThanSignState
	case 0:
		tz.emitError("unexpected-null-character")
		tz.appendTextRune(unicode.ReplacementChar)
	default:
		tz.appendTextRune(c)
	}
}

func (tz *Tokenizer) stateScriptDataEscapedDash() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	switch c {
	case '-':
		tz.appendTextRune('-')
		tz.state = ScriptDataEscapedDashDashState
	case '<':
		tz.state = ScriptDataEscapedLessThanSignState
	case 0:
		tz.emitError("unexpected-null-character")
		tz.appendTextRune(unicode.ReplacementChar)
		tz.state = ScriptDataEscapedState
	default:
		tz.appendTextRune(c)
		tz.state = ScriptDataEscapedState
	}
}

func (tz *Tokenizer) stateScriptDataEscapedDashDash() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	switch c {
	case '-':
		tz.appendTextRune('-')
	case '<':
		tz.appendTextRune('<')
		tz.state = ScriptDataEscapedLessThanSignState
	case '>':
		tz.appendTextRune('>')
		tz.state = ScriptDataState
	case 0:
		tz.emitError("unexpected-null-character")
		tz.appendTextRune(unicode.ReplacementChar)
		tz.state = ScriptDataEscapedState
	default:
		tz.appendTextRune(c)
		tz.state = ScriptDataEscapedState
	}
}

func (tz *Tokenizer) stateScriptDataEscapedLessThanSign() {
	c, ok := tz.getChar()
	if ok && c == '/' {
		tz.tempBuffer = tz.tempBuffer[:0]
		tz.state = ScriptDataEscapedEndTagOpenState
		return
	}
	if ok && unicode.IsLetter(c) {
		tz.tempBuffer = tz.tempBuffer[:0]
		tz.appendTextRune('<')
		tz.appendTextRune(c)
		tz.tempBuffer = append(tz.tempBuffer, unicode.ToLower(c))
		tz.state = ScriptDataDoubleEscapeStartState
		return
	}
	tz.appendTextRune('<')
	if ok {
		tz.reconsumeCurrent()
	}
	tz.state = ScriptDataEscapedState
}

func (tz *Tokenizer) stateScriptDataEscapedEndTagOpen() {
	c, ok := tz.getChar()
	if ok && unicode.IsLetter(c) {
		tz.currentTagName = tz.currentTagName[:0]
		tz.originalTagName = tz.originalTagName[:0]
		tz.currentTagName = append(tz.currentTagName, unicode.ToLower(c))
		tz.originalTagName = append(tz.originalTagName, c)
		tz.state = ScriptDataEscapedEndTagNameState
		return
	}
	tz.appendTextRune('<')
	tz.appendTextRune('/')
	if ok {
		tz.reconsumeCurrent()
	}
	tz.state = ScriptDataEscapedState
}

func (tz *Tokenizer) stateScriptDataEscapedEndTagName() {
	for {
		c, ok := tz.getChar()
		if ok && unicode.IsLetter(c) {
			tz.currentTagName = append(tz.currentTagName, unicode.ToLower(c))
			tz.originalTagName = append(tz.originalTagName, c)
			continue
		}
		tagName := string(tz.currentTagName)
		if tagName == "script" {
			if ok && (c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f') {
				tz.flushText()
				tz.currentTagKind = EndTag
				tz.currentTagName = []rune(tagName)
				tz.currentTagAttrs = tz.currentTagAttrs[:0]
				putAttrMap(tz.currentTagAttrIndex)
		tz.currentTagAttrIndex = getAttrMap()
				tz.state = BeforeAttributeNameState
				return
			}
			if ok && c == '/' {
				tz.flushText()
				tz.currentTagKind = EndTag
				tz.currentTagName = []rune(tagName)
				tz.currentTagAttrs = tz.currentTagAttrs[:0]
				putAttrMap(tz.currentTagAttrIndex)
		tz.currentTagAttrIndex = getAttrMap()
				tz.state = SelfClosingStartTagState
				return
			}
			if ok && c == '>' {
				tz.flushText()
				tz.emit(Token{Type: EndTag, Name: tagName})
				tz.state = DataState
				return
			}
		}

		tz.appendTextRune('<')
		tz.appendTextRune('/')
		for _, r := range tz.originalTagName {
			tz.appendTextRune(r)
		}
		tz.currentTagName = tz.currentTagName[:0]
		tz.originalTagName = tz.originalTagName[:0]
		if ok {
			tz.reconsumeCurrent()
		}
		tz.state = ScriptDataEscapedState
		return
	}
}

func (tz *Tokenizer) stateScriptDataDoubleEscapeStart() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	if unicode.IsLetter(c) {
		tz.tempBuffer = append(tz.tempBuffer, unicode.ToLower(c))
		tz.appendTextRune(c)
		return
	}

	temp := strings.ToLower(string(tz.tempBuffer))
	if temp == "script" {
		if ok && (c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '/' || c == '>') {
			tz.state = ScriptDataDoubleEscapedState
		} else {
			tz.state = ScriptDataEscapedState
		}
	} else {
		tz.state = ScriptDataEscapedState
	}
	if ok {
		tz.reconsumeCurrent()
	}
}

func (tz *Tokenizer) stateScriptDataDoubleEscaped() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	switch c {
	case '-':
		tz.appendTextRune('-')
		tz.state = ScriptDataDoubleEscapedDashState
	case '<':
		tz.appendTextRune('<')
		tz.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		tz.emitError("unexpected-null-character")
		tz.appendTextRune(unicode.ReplacementChar)
	default:
		tz.appendTextRune(c)
	}
}

func (tz *Tokenizer) stateScriptDataDoubleEscapedDash() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	switch c {
	case '-':
		tz.appendTextRune('-')
		tz.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		tz.appendTextRune('<')
		tz.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		tz.emitError("unexpected-null-character")
		tz.appendTextRune(unicode.ReplacementChar)
		tz.state = ScriptDataDoubleEscapedState
	default:
		tz.appendTextRune(c)
		tz.state = ScriptDataDoubleEscapedState
	}
}

func (tz *Tokenizer) stateScriptDataDoubleEscapedDashDash() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	switch c {
	case '-':
		tz.appendTextRune('-')
	case '<':
		tz.appendTextRune('<')
		tz.state = ScriptDataDoubleEscapedLessThanSignState
	case '>':
		tz.appendTextRune('>')
		tz.state = ScriptDataState
	case 0:
		tz.emitError("unexpected-null-character")
		tz.appendTextRune(unicode.ReplacementChar)
		tz.state = ScriptDataDoubleEscapedState
	default:
		tz.appendTextRune(c)
		tz.state = ScriptDataDoubleEscapedState
	}
}

func (tz *Tokenizer) stateScriptDataDoubleEscapedLessThanSign() {
	c, ok := tz.getChar()
	if ok && c == '/' {
		tz.tempBuffer = tz.tempBuffer[:0]
		tz.appendTextRune('/')
		tz.state = ScriptDataDoubleEscapeEndState
		return
	}
	if ok {
		tz.reconsumeCurrent()
	}
	tz.state = ScriptDataDoubleEscapedState
}

func (tz *Tokenizer) stateScriptDataDoubleEscapeEnd() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitEOF()
		return
	}
	if unicode.IsLetter(c) {
		tz.tempBuffer = append(tz.tempBuffer, unicode.ToLower(c))
		tz.appendTextRune(c)
		return
	}
	temp := strings.ToLower(string(tz.tempBuffer))
	if temp == "script" {
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '/' || c == '>' {
			tz.state = ScriptDataEscapedState
		} else {
			tz.state = ScriptDataDoubleEscapedState
		}
	} else {
		tz.state = ScriptDataDoubleEscapedState
	}
	tz.reconsumeCurrent()
}


package tokenizer

import "unicode"

// RCDATA, RAWTEXT and PLAINTEXT content states (WHATWG HTML §13.2.5.11-13.2.5.23,
// §13.2.5.74).

func (tz *Tokenizer) stateRCDATA() {
	tz.textMode = RCDATAState
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitEOF()
			return
		}
		switch c {
		case '<':
			tz.state = RCDATALessThanSignState
			return
		case 0:
			tz.emitError("unexpected-null-character")
			tz.appendTextRune(unicode.ReplacementChar)
		default:
			tz.appendTextRune(c)
		}
	}
}

func (tz *Tokenizer) stateRCDATALessThanSign() {
	c, ok := tz.getChar()
	if ok && c == '/' {
		tz.currentTagName = tz.currentTagName[:0]
		tz.originalTagName = tz.originalTagName[:0]
		tz.state = RCDATAEndTagOpenState
		return
	}
	tz.appendTextRune('<')
	if ok {
		tz.reconsumeCurrent()
	}
	tz.state = RCDATAState
}

func (tz *Tokenizer) stateRCDATAEndTagOpen() {
	c, ok := tz.getChar()
	if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		tz.currentTagName = append(tz.currentTagName, unicode.ToLower(c))
		tz.originalTagName = append(tz.originalTagName, c)
		tz.state = RCDATAEndTagNameState
		return
	}
	tz.appendTextRune('<')
	tz.appendTextRune('/')
	if ok {
		tz.reconsumeCurrent()
	}
	tz.state = RCDATAState
}

//nolint:dupl // stateRCDATAEndTagName and stateRAWTEXTEndTagName follow same HTML5 spec pattern with different fallback states
func (tz *Tokenizer) stateRCDATAEndTagName() {
	for {
		c, ok := tz.getChar()
		if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			tz.currentTagName = append(tz.currentTagName, unicode.ToLower(c))
			tz.originalTagName = append(tz.originalTagName, c)
			continue
		}

		tagName := string(tz.currentTagName)
		if tagName == tz.rawtextTagName {
			if ok && c == '>' {
				tz.flushText()
				tz.emit(Token{Type: EndTag, Name: tagName})
				tz.state = DataState
				tz.rawtextTagName = ""
				tz.currentTagName = tz.currentTagName[:0]
				tz.originalTagName = tz.originalTagName[:0]
				return
			}
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
		}

		// Not a matching end tag.
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
		tz.state = RCDATAState
		return
	}
}

func (tz *Tokenizer) stateRAWTEXT() {
	tz.textMode = RAWTEXTState
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitEOF()
			return
		}
		if c == '<' {
			// Script special-cases for "<!--" starting escape.
			if tz.rawtextTagName == "script" {
				n1, ok1 := tz.peek(0)
				n2, ok2 := tz.peek(1)
				n3, ok3 := tz.peek(2)
				if ok1 && ok2 && ok3 && n1 == '!' && n2 == '-' && n3 == '-' {
					tz.appendTextRune('<')
					tz.appendTextRune('!')
					tz.appendTextRune('-')
					tz.appendTextRune('-')
					_, _ = tz.getChar()
					_, _ = tz.getChar()
					_, _ = tz.getChar()
					tz.state = ScriptDataEscapedState
					return
				}
			}
			tz.state = RAWTEXTLessThanSignState
			return
		}
		if c == 0 {
			tz.emitError("unexpected-null-character")
			tz.appendTextRune(unicode.ReplacementChar)
			continue
		}
		tz.appendTextRune(c)
	}
}

func (tz *Tokenizer) stateRAWTEXTLessThanSign() {
	c, ok := tz.getChar()
	if ok && c == '/' {
		tz.currentTagName = tz.currentTagName[:0]
		tz.originalTagName = tz.originalTagName[:0]
		tz.state = RAWTEXTEndTagOpenState
		return
	}
	tz.appendTextRune('<')
	if ok {
		tz.reconsumeCurrent()
	}
	if tz.rawtextTagName == "script" {
		tz.state = ScriptDataState
	} else {
		tz.state = RAWTEXTState
	}
}

func (tz *Tokenizer) stateRAWTEXTEndTagOpen() {
	c, ok := tz.getChar()
	if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		tz.currentTagName = append(tz.currentTagName, unicode.ToLower(c))
		tz.originalTagName = append(tz.originalTagName, c)
		tz.state = RAWTEXTEndTagNameState
		return
	}
	tz.appendTextRune('<')
	tz.appendTextRune('/')
	if ok {
		tz.reconsumeCurrent()
	}
	if tz.rawtextTagName == "script" {
		tz.state = ScriptDataState
	} else {
		tz.state = RAWTEXTState
	}
}

//nolint:dupl // stateRCDATAEndTagName and stateRAWTEXTEndTagName follow same HTML5 spec pattern with different fallback states
func (tz *Tokenizer) stateRAWTEXTEndTagName() {
	for {
		c, ok := tz.getChar()
		if ok && ((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			tz.currentTagName = append(tz.currentTagName, unicode.ToLower(c))
			tz.originalTagName = append(tz.originalTagName, c)
			continue
		}
		tagName := string(tz.currentTagName)
		if tagName == tz.rawtextTagName {
			if ok && c == '>' {
				tz.flushText()
				tz.emit(Token{Type: EndTag, Name: tagName})
				tz.state = DataState
				tz.rawtextTagName = ""
				tz.currentTagName = tz.currentTagName[:0]
				tz.originalTagName = tz.originalTagName[:0]
				return
			}
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
		}

		// Not a matching end tag.
		tz.appendTextRune('<')
		tz.appendTextRune('/')
		for _, r := range tz.originalTagName {
			tz.appendTextRune(r)
		}
		tz.currentTagName = tz.currentTagName[:0]
		tz.originalTagName = tz.originalTagName[:0]
		if !ok {
			tz.emitEOF()
			return
		}
		tz.reconsumeCurrent()
		if tz.rawtextTagName == "script" {
			tz.state = ScriptDataState
		} else {
			tz.state = RAWTEXTState
		}
		return
	}
}

func (tz *Tokenizer) statePLAINTEXT() {
	tz.textMode = PLAINTEXTState
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitEOF()
			return
		}
		if c == 0 {
			tz.emitError("unexpected-null-character")
			tz.appendTextRune(unicode.ReplacementChar)
			continue
		}
		tz.appendTextRune(c)
	}
}


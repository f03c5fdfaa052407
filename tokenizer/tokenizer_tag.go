package tokenizer

import "unicode"

// Tag, tag-name and attribute states (WHATWG HTML §13.2.5.6-13.2.5.33).

func (tz *Tokenizer) stateData() {
	tz.textMode = DataState
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitEOF()
			return
		}
		switch c {
		case '<':
			tz.flushText()
			tz.state = TagOpenState
			return
		case 0:
			tz.emitError("unexpected-null-character")
			// The Python reference emits the error but keeps U+0000 in the output.
			tz.appendTextRune(0)
		default:
			tz.appendTextRune(c)
		}
	}
}

func (tz *Tokenizer) startTag(kind TokenKind, first rune) {
	tz.currentTagKind = kind
	tz.currentTagName = tz.currentTagName[:0]
	tz.currentTagAttrs = tz.currentTagAttrs[:0]
	// Return old map to pool and get a fresh one
	putAttrMap(tz.currentTagAttrIndex)
	tz.currentTagAttrIndex = getAttrMap()
	tz.currentAttrName = tz.currentAttrName[:0]
	tz.currentAttrValue = tz.currentAttrValue[:0]
	tz.currentAttrValueHasAmp = false
	tz.currentTagSelfClosing = false

	if first >= 'A' && first <= 'Z' {
		first += 32
	}
	tz.currentTagName = append(tz.currentTagName, first)
}

func (tz *Tokenizer) stateTagOpen() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitError("eof-before-tag-name")
		tz.appendTextRune('<')
		tz.emitEOF()
		return
	}
	switch c {
	case '!':
		tz.state = MarkupDeclarationOpenState
	case '/':
		tz.state = EndTagOpenState
	case '?':
		tz.emitError("unexpected-question-mark-instead-of-tag-name")
		tz.currentComment = tz.currentComment[:0]
		tz.reconsumeCurrent()
		tz.state = BogusCommentState
	default:
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			tz.startTag(StartTag, c)
			tz.state = TagNameState
			return
		}
		tz.emitError("invalid-first-character-of-tag-name")
		tz.appendTextRune('<')
		tz.reconsumeCurrent()
		tz.state = DataState
	}
}

func (tz *Tokenizer) stateEndTagOpen() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitError("eof-before-tag-name")
		tz.appendTextRune('<')
		tz.appendTextRune('/')
		tz.emitEOF()
		return
	}
	if c == '>' {
		tz.emitError("empty-end-tag")
		tz.state = DataState
		return
	}
	if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		tz.startTag(EndTag, c)
		tz.state = TagNameState
		return
	}
	tz.emitError("invalid-first-character-of-tag-name")
	tz.currentComment = tz.currentComment[:0]
	tz.reconsumeCurrent()
	tz.state = BogusCommentState
}

func (tz *Tokenizer) stateTagName() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emitEOF()
			return
		}

		switch c {
		case '\t', '\n', '\f', ' ':
			tz.state = BeforeAttributeNameState
			return
		case '/':
			tz.state = SelfClosingStartTagState
			return
		case '>':
			tz.finishAttribute()
			if !tz.emitCurrentTag() {
				tz.state = DataState
			}
			return
		case 0:
			tz.emitError("unexpected-null-character")
			tz.currentTagName = append(tz.currentTagName, unicode.ReplacementChar)
		default:
			if c >= 'A' && c <= 'Z' {
				c += 32
			}
			tz.currentTagName = append(tz.currentTagName, c)
		}
	}
}

func (tz *Tokenizer) stateBeforeAttributeName() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '/':
			tz.finishAttribute()
			tz.state = SelfClosingStartTagState
			return
		case '>':
			tz.finishAttribute()
			if !tz.emitCurrentTag() {
				tz.state = DataState
			}
			return
		default:
			tz.finishAttribute()
			tz.currentAttrName = tz.currentAttrName[:0]
			tz.currentAttrValue = tz.currentAttrValue[:0]
			tz.currentAttrValueHasAmp = false
			switch {
			case c == 0:
				tz.emitError("unexpected-null-character")
				c = unicode.ReplacementChar
			case c >= 'A' && c <= 'Z':
				c += 32
			case c == '=':
				tz.emitError("unexpected-equals-sign-before-attribute-name")
			}
			tz.currentAttrName = append(tz.currentAttrName, c)
			tz.state = AttributeNameState
			return
		}
	}
}

func (tz *Tokenizer) stateAttributeName() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			tz.finishAttribute()
			tz.state = AfterAttributeNameState
			return
		case '/':
			tz.finishAttribute()
			tz.state = SelfClosingStartTagState
			return
		case '=':
			tz.state = BeforeAttributeValueState
			return
		case '>':
			tz.finishAttribute()
			if !tz.emitCurrentTag() {
				tz.state = DataState
			}
			return
		case 0:
			tz.emitError("unexpected-null-character")
			tz.currentAttrName = append(tz.currentAttrName, unicode.ReplacementChar)
		default:
			if c == '"' || c == '\'' || c == '<' {
				tz.emitError("unexpected-character-in-attribute-name")
			}
			if c >= 'A' && c <= 'Z' {
				c += 32
			}
			tz.currentAttrName = append(tz.currentAttrName, c)
		}
	}
}

func (tz *Tokenizer) stateAfterAttributeName() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '/':
			tz.finishAttribute()
			tz.state = SelfClosingStartTagState
			return
		case '=':
			tz.state = BeforeAttributeValueState
			return
		case '>':
			tz.finishAttribute()
			if !tz.emitCurrentTag() {
				tz.state = DataState
			}
			return
		default:
			tz.finishAttribute()
			tz.currentAttrName = tz.currentAttrName[:0]
			tz.currentAttrValue = tz.currentAttrValue[:0]
			tz.currentAttrValueHasAmp = false
			if c == 0 {
				tz.emitError("unexpected-null-character")
				c = unicode.ReplacementChar
			} else if c >= 'A' && c <= 'Z' {
				c += 32
			}
			tz.currentAttrName = append(tz.currentAttrName, c)
			tz.state = AttributeNameState
			return
		}
	}
}

func (tz *Tokenizer) stateBeforeAttributeValue() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '"':
			tz.state = AttributeValueDoubleQuotedState
			return
		case '\'':
			tz.state = AttributeValueSingleQuotedState
			return
		case '>':
			tz.emitError("missing-attribute-value")
			tz.finishAttribute()
			if !tz.emitCurrentTag() {
				tz.state = DataState
			}
			return
		default:
			tz.reconsumeCurrent()
			tz.state = AttributeValueUnquotedState
			return
		}
	}
}

func (tz *Tokenizer) stateAttributeValueDoubleQuoted() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emitEOF()
			return
		}
		switch c {
		case '"':
			tz.state = AfterAttributeValueQuotedState
			return
		case '&':
			tz.currentAttrValueHasAmp = true
			tz.currentAttrValue = append(tz.currentAttrValue, '&')
		case 0:
			tz.emitError("unexpected-null-character")
			tz.currentAttrValue = append(tz.currentAttrValue, unicode.ReplacementChar)
		default:
			tz.currentAttrValue = append(tz.currentAttrValue, c)
		}
	}
}

func (tz *Tokenizer) stateAttributeValueSingleQuoted() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emitEOF()
			return
		}
		switch c {
		case '\'':
			tz.state = AfterAttributeValueQuotedState
			return
		case '&':
			tz.currentAttrValueHasAmp = true
			tz.currentAttrValue = append(tz.currentAttrValue, '&')
		case 0:
			tz.emitError("unexpected-null-character")
			tz.currentAttrValue = append(tz.currentAttrValue, unicode.ReplacementChar)
		default:
			tz.currentAttrValue = append(tz.currentAttrValue, c)
		}
	}
}

func (tz *Tokenizer) stateAttributeValueUnquoted() {
	for {
		c, ok := tz.getChar()
		if !ok {
			tz.emitError("eof-in-tag")
			tz.emit(Token{Type: EOF})
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			tz.finishAttribute()
			tz.state = BeforeAttributeNameState
			return
		case '>':
			tz.finishAttribute()
			tz.emitCurrentTag()
			tz.state = DataState
			return
		case '&':
			tz.currentAttrValueHasAmp = true
			tz.currentAttrValue = append(tz.currentAttrValue, '&')
		case 0:
			tz.emitError("unexpected-null-character")
			tz.currentAttrValue = append(tz.currentAttrValue, unicode.ReplacementChar)
		default:
			if c == '"' || c == '\'' || c == '<' || c == '=' || c == '`' {
				tz.emitError("unexpected-character-in-unquoted-attribute-value")
			}
			tz.currentAttrValue = append(tz.currentAttrValue, c)
		}
	}
}

func (tz *Tokenizer) stateAfterAttributeValueQuoted() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitError("eof-in-tag")
		tz.emitEOF()
		return
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		tz.finishAttribute()
		tz.state = BeforeAttributeNameState
	case '/':
		tz.finishAttribute()
		tz.state = SelfClosingStartTagState
	case '>':
		tz.finishAttribute()
		if !tz.emitCurrentTag() {
			tz.state = DataState
		}
	default:
		tz.emitError("missing-whitespace-between-attributes")
		tz.finishAttribute()
		tz.reconsumeCurrent()
		tz.state = BeforeAttributeNameState
	}
}

func (tz *Tokenizer) stateSelfClosingStartTag() {
	c, ok := tz.getChar()
	if !ok {
		tz.emitError("eof-in-tag")
		tz.emitEOF()
		return
	}
	if c == '>' {
		tz.currentTagSelfClosing = true
		if !tz.emitCurrentTag() {
			tz.state = DataState
		}
		return
	}
	tz.emitError("unexpected-character-after-solidus-in-tag")
	tz.reconsumeCurrent()
	tz.state = BeforeAttributeNameState
}


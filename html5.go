// Package html5 provides a pure Go HTML5 parser implementing the WHATWG HTML5 specification.
//
// html5 is an HTML5 parser that recovers from malformed HTML using the WHATWG
// tree-construction rules. DESIGN.md lists the places where it simplifies them.
//
// # Basic Usage
//
//	doc, err := html5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query with CSS selectors
//	paragraphs, err := doc.Query("p")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range paragraphs {
//		fmt.Println(p.Text())
//	}
//
// # Features
//
//   - HTML5 parsing per the WHATWG Living Standard, with the simplifications listed in DESIGN.md
//   - CSS selector support
//   - Streaming API for memory-efficient processing
//   - Encoding detection per HTML5 spec
//   - Fragment parsing for innerHTML-style use cases
//
// For more information, see https://github.com/halvorsen-oss/gohtml5
package html5

import (
	"github.com/halvorsen-oss/gohtml5/dom"
	"github.com/halvorsen-oss/gohtml5/encoding"
	htmlerrors "github.com/halvorsen-oss/gohtml5/errors"
	_ "github.com/halvorsen-oss/gohtml5/selector" // registers CSS selector matching with dom.Query
	"github.com/halvorsen-oss/gohtml5/tokenizer"
	"github.com/halvorsen-oss/gohtml5/treebuilder"
)

// Version is the current version of html5.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns a Document.
//
// The parser handles malformed HTML according to the WHATWG HTML5 specification,
// ensuring the same behavior as web browsers.
//
// Example:
//
//	doc, err := html5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		// err contains parse errors if WithCollectErrors() was used
//	}
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseBytes parses HTML from a byte slice with automatic encoding detection.
//
// The encoding is detected in this order:
//  1. HTTP Content-Type header (if provided via WithEncoding); it takes
//     precedence over a BOM
//  2. BOM (Byte Order Mark)
//  3. <meta charset> or <meta http-equiv="Content-Type">
//  4. Fallback to windows-1252
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	doc, err := html5.ParseBytes(data)
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)

	// Detect and decode encoding
	decoded, enc, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return nil, err
	}
	_ = enc // TODO: store detected encoding in document

	return parse(decoded, cfg)
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := html5.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	if context == "" {
		return nil, &htmlerrors.CallerError{Message: "fragment context element name must not be empty"}
	}
	cfg := newConfig(opts...)
	namespace := "html"
	if cfg.fragmentContext != nil && cfg.fragmentContext.Namespace != "" {
		namespace = cfg.fragmentContext.Namespace
	}
	cfg.fragmentContext = &treebuilder.FragmentContext{
		TagName:   context,
		Namespace: namespace,
	}
	return parseFragment(html, cfg)
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (doc *dom.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, sinkErrorFromPanic("parse", r)
		}
	}()

	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := treebuilder.New(tok)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	if cfg.scriptingEnabled {
		tb.SetScriptingEnabled(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.Document(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.Document(), nil
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) (nodes []*dom.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes, err = nil, sinkErrorFromPanic("parseFragment", r)
		}
	}()

	tok := tokenizer.New(html)
	if cfg.xmlCoercion {
		tok.SetXMLCoercion(true)
	}
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	if cfg.scriptingEnabled {
		tb.SetScriptingEnabled(true)
	}

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors())
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.FragmentNodes(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.FragmentNodes(), nil
}

// sinkErrorFromPanic converts a recovered *dom.CycleError into a SinkError.
// Any other recovered value is re-panicked: only sink-contract violations
// are meant to surface as an error return, everything else is a genuine bug
// that should crash loudly rather than be swallowed.
func sinkErrorFromPanic(op string, r any) error {
	if cycleErr, ok := r.(*dom.CycleError); ok {
		return &htmlerrors.SinkError{Op: op, Err: cycleErr}
	}
	panic(r)
}

func convertTokenizerErrors(errs []tokenizer.ParseError) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.Message(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}

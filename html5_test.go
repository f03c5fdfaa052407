package html5

import (
	"errors"
	"testing"

	htmlerrors "github.com/halvorsen-oss/gohtml5/errors"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestParse_ReturnsDocument(t *testing.T) {
	doc, err := Parse("<html><body><p>Hello</p></body></html>")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if doc == nil || doc.DocumentElement() == nil || doc.DocumentElement().TagName != "html" {
		t.Fatalf("Parse returned invalid document: %#v", doc)
	}
}

func TestParseBytes_ReturnsDocument(t *testing.T) {
	doc, err := ParseBytes([]byte("<html><body><p>Hello</p></body></html>"))
	if err != nil {
		t.Fatalf("ParseBytes returned error: %v", err)
	}
	if doc == nil || doc.DocumentElement() == nil || doc.DocumentElement().TagName != "html" {
		t.Fatalf("ParseBytes returned invalid document: %#v", doc)
	}
}

func TestParseFragment_ReturnsNodes(t *testing.T) {
	nodes, err := ParseFragment("<td>Cell</td>", "tr")
	if err != nil {
		t.Fatalf("ParseFragment returned error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].TagName != "td" {
		t.Fatalf("ParseFragment nodes = %#v, want single <td>", nodes)
	}
}

func TestParseFragment_EmptyContextIsCallerError(t *testing.T) {
	_, err := ParseFragment("<td>Cell</td>", "")
	var callerErr *htmlerrors.CallerError
	if !errors.As(err, &callerErr) {
		t.Fatalf("ParseFragment with empty context: err = %v, want *errors.CallerError", err)
	}
}

func TestWithScriptingEnabled(t *testing.T) {
	scriptedDoc, err := Parse("<html><head><noscript><p>fallback</p></noscript></head></html>", WithScriptingEnabled())
	if err != nil {
		t.Fatalf("Parse with scripting enabled returned error: %v", err)
	}
	noscript, err := scriptedDoc.Query("noscript")
	if err != nil {
		t.Fatalf("Query(noscript) error: %v", err)
	}
	if len(noscript) != 1 {
		t.Fatalf("expected one noscript element, got %d", len(noscript))
	}
	if len(noscript[0].Children()) != 1 {
		t.Fatalf("scripting enabled: expected <noscript> contents to be a single text node, got %#v", noscript[0].Children())
	}

	unscriptedDoc, err := Parse("<html><head><noscript><p>fallback</p></noscript></head></html>")
	if err != nil {
		t.Fatalf("Parse with scripting disabled returned error: %v", err)
	}
	p, err := unscriptedDoc.Query("noscript p")
	if err != nil {
		t.Fatalf("Query(noscript p) error: %v", err)
	}
	if len(p) != 1 {
		t.Fatalf("scripting disabled: expected <noscript> contents to be parsed as markup, got %#v", p)
	}
}

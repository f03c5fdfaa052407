package html5

import (
	"github.com/halvorsen-oss/gohtml5/treebuilder"
)

// config holds parser configuration.
type config struct {
	encoding         string
	fragmentContext  *treebuilder.FragmentContext
	iframeSrcdoc     bool
	strict           bool
	collectErrors    bool
	xmlCoercion      bool
	scriptingEnabled bool
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithEncoding sets the character encoding to use for parsing.
// This overrides automatic encoding detection.
//
// Common values: "utf-8", "windows-1252", "iso-8859-1"
func WithEncoding(enc string) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithFragment sets an HTML-namespace fragment context in the configuration.
// ParseFragment takes the context tag name from its own argument and Parse
// uses no fragment context, so neither is changed by this option.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS sets the parsing context with a specific namespace.
// Use this for parsing SVG or MathML fragments: ParseFragment keeps this
// namespace ("svg" or "mathml") and takes the tag name from its own argument.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}

// WithXMLCoercion enables XML-compatible coercion of text and comment output,
// matching the adjustments some conformance suites expect (e.g. comments that
// would otherwise contain "--" get adjusted).
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithScriptingEnabled tells the parser that scripting is enabled for this
// document, per the WHATWG HTML5 "scripting flag". This flips the parsing
// behavior of <noscript> from its unscripted handling, where its contents
// are parsed as markup, to the scripted, RAWTEXT-like behavior where its
// contents are not tokenized as markup.
func WithScriptingEnabled() Option {
	return func(c *config) {
		c.scriptingEnabled = true
	}
}

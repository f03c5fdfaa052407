// Package constants defines HTML5 specification constants: tag-name
// classification sets, foreign-content namespace/case-adjustment tables,
// and the scope terminator sets the tree constructor's stack queries use.
package constants

import "strings"

// ForeignAttribute represents a foreign (namespaced) attribute adjustment.
type ForeignAttribute struct {
	Prefix       string // Attribute prefix (e.g., "xlink", "xml"), or empty string
	LocalName    string // Local name of the attribute
	NamespaceURL string // Namespace URL
}

// toSet turns a whitespace-separated word list into a membership set. Most
// of the tag-classification tables below are naturally written as a list of
// names rather than a map literal with a `true` value repeated on every
// line.
func toSet(words string) map[string]bool {
	fields := strings.Fields(words)
	set := make(map[string]bool, len(fields))
	for _, w := range fields {
		set[w] = true
	}
	return set
}

// VoidElements are elements that have no closing tag.
var VoidElements = toSet(`area base br col embed hr img input keygen link meta param source track wbr`)

// RawTextElements are elements whose content is raw text.
var RawTextElements = toSet(`script style`)

// EscapableRawTextElements are elements with escapable raw text.
var EscapableRawTextElements = toSet(`textarea title`)

// SpecialElements are elements that require special parsing behavior. Per
// the HTML5 spec, these elements affect the stack of open elements during
// tree construction (they bound the adoption agency's "furthest block"
// search and the "any other end tag" fallback).
var SpecialElements = toSet(`
	address applet area article aside base basefont bgsound blockquote body
	br button caption center col colgroup dd details dialog dir div dl dt
	embed fieldset figcaption figure footer form frame frameset h1 h2 h3 h4
	h5 h6 head header hgroup hr html iframe img input keygen li link
	listing main marquee menu menuitem meta nav noembed noframes noscript
	object ol p param plaintext pre script search section select source
	style summary table tbody td template textarea tfoot th thead title tr
	track ul wbr
`)

// FormattingElements are elements used for text formatting; the adoption
// agency algorithm and the active-formatting-elements list only ever deal
// with these.
var FormattingElements = toSet(`a b big code em font i nobr s small strike strong tt u`)

// TableFosterTargets are elements whose presence as the current node
// forces character/element insertion to be foster-parented out of the
// table instead of appended as a child.
var TableFosterTargets = toSet(`table tbody tfoot thead tr`)

// TableAllowedChildren are elements allowed as direct children of table
// elements without triggering foster parenting.
var TableAllowedChildren = toSet(`caption colgroup tbody tfoot thead tr td th script template style`)

// ImpliedEndTagElements are elements popped automatically by "generate
// implied end tags" before certain insertions/closures.
var ImpliedEndTagElements = toSet(`dd dt li optgroup option p rb rp rt rtc`)

// ThoroughlyImpliedEndTagElements extends ImpliedEndTagElements with the
// table-section elements, for the "thorough" variant used before inserting
// a start tag that pops all the way out of the current table subtree.
var ThoroughlyImpliedEndTagElements = toSet(`caption colgroup dd dt li optgroup option p rb rp rt rtc tbody td tfoot th thead tr`)

// camelAdjustments builds a lowercase-name -> properly-cased-name table
// from a list of the properly-cased names, deriving each lowercase key
// automatically instead of spelling out both forms on every line.
func camelAdjustments(names ...string) map[string]string {
	table := make(map[string]string, len(names))
	for _, name := range names {
		table[strings.ToLower(name)] = name
	}
	return table
}

// SVGTagNameAdjustments maps lowercase SVG tag names to their proper
// camelCase form. Per HTML5 spec §13.2.6.5, SVG elements need case
// adjustment when parsed.
var SVGTagNameAdjustments = camelAdjustments(
	"altGlyph", "altGlyphDef", "altGlyphItem", "animateColor", "animateMotion",
	"animateTransform", "clipPath", "feBlend", "feColorMatrix", "feComponentTransfer",
	"feComposite", "feConvolveMatrix", "feDiffuseLighting", "feDisplacementMap",
	"feDistantLight", "feFlood", "feFuncA", "feFuncB", "feFuncG", "feFuncR",
	"feGaussianBlur", "feImage", "feMerge", "feMergeNode", "feMorphology",
	"feOffset", "fePointLight", "feSpecularLighting", "feSpotLight", "feTile",
	"feTurbulence", "foreignObject", "glyphRef", "linearGradient",
	"radialGradient", "textPath",
)

// SVGAttributeAdjustments maps lowercase SVG attribute names to their
// proper camelCase form. Per HTML5 spec §13.2.6.5, SVG attributes need
// case adjustment when parsed.
var SVGAttributeAdjustments = camelAdjustments(
	"attributeName", "attributeType", "baseFrequency", "baseProfile", "calcMode",
	"clipPathUnits", "diffuseConstant", "edgeMode", "filterUnits", "glyphRef",
	"gradientTransform", "gradientUnits", "kernelMatrix", "kernelUnitLength",
	"keyPoints", "keySplines", "keyTimes", "lengthAdjust", "limitingConeAngle",
	"markerHeight", "markerUnits", "markerWidth", "maskContentUnits", "maskUnits",
	"numOctaves", "pathLength", "patternContentUnits", "patternTransform",
	"patternUnits", "pointsAtX", "pointsAtY", "pointsAtZ", "preserveAlpha",
	"preserveAspectRatio", "primitiveUnits", "refX", "refY", "repeatCount",
	"repeatDur", "requiredExtensions", "requiredFeatures", "specularConstant",
	"specularExponent", "spreadMethod", "startOffset", "stdDeviation",
	"stitchTiles", "surfaceScale", "systemLanguage", "tableValues", "targetX",
	"targetY", "textLength", "viewBox", "viewTarget", "xChannelSelector",
	"yChannelSelector", "zoomAndPan",
)

// MathMLAttributeAdjustments maps lowercase MathML attribute names to
// their proper camelCase form. Per HTML5 spec §13.2.6.5, MathML
// attributes need case adjustment when parsed.
var MathMLAttributeAdjustments = camelAdjustments("definitionURL")

// ForeignAttributeAdjustments maps lowercase attribute names to their
// namespaced form. Per HTML5 spec §13.2.6.5, foreign attributes need
// namespace adjustment when parsed.
var ForeignAttributeAdjustments = map[string]ForeignAttribute{
	"xlink:actuate": {Prefix: "xlink", LocalName: "actuate", NamespaceURL: NamespaceXLink},
	"xlink:arcrole": {Prefix: "xlink", LocalName: "arcrole", NamespaceURL: NamespaceXLink},
	"xlink:href":    {Prefix: "xlink", LocalName: "href", NamespaceURL: NamespaceXLink},
	"xlink:role":    {Prefix: "xlink", LocalName: "role", NamespaceURL: NamespaceXLink},
	"xlink:show":    {Prefix: "xlink", LocalName: "show", NamespaceURL: NamespaceXLink},
	"xlink:title":   {Prefix: "xlink", LocalName: "title", NamespaceURL: NamespaceXLink},
	"xlink:type":    {Prefix: "xlink", LocalName: "type", NamespaceURL: NamespaceXLink},
	"xml:lang":      {Prefix: "xml", LocalName: "lang", NamespaceURL: NamespaceXML},
	"xml:space":     {Prefix: "xml", LocalName: "space", NamespaceURL: NamespaceXML},
	"xmlns":         {Prefix: "", LocalName: "xmlns", NamespaceURL: NamespaceXMLNS},
	"xmlns:xlink":   {Prefix: "xmlns", LocalName: "xlink", NamespaceURL: NamespaceXMLNS},
}

// Namespace URLs used in HTML5 parsing.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

// IntegrationPoint represents an element that serves as an integration point.
type IntegrationPoint struct {
	Namespace string
	LocalName string
}

// HTMLIntegrationPoints are SVG/MathML elements that allow HTML content.
// Per HTML5 spec §13.2.6.5, these elements switch back to HTML parsing mode.
var HTMLIntegrationPoints = map[IntegrationPoint]bool{
	{Namespace: NamespaceMathML, LocalName: "annotation-xml"}: true,
	{Namespace: NamespaceSVG, LocalName: "foreignObject"}:     true,
	{Namespace: NamespaceSVG, LocalName: "desc"}:              true,
	{Namespace: NamespaceSVG, LocalName: "title"}:             true,
}

// MathMLTextIntegrationPoints are MathML elements that allow text
// integration. Per HTML5 spec §13.2.6.5, these elements can contain text.
var MathMLTextIntegrationPoints = map[IntegrationPoint]bool{
	{Namespace: NamespaceMathML, LocalName: "mi"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mo"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mn"}:    true,
	{Namespace: NamespaceMathML, LocalName: "ms"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mtext"}: true,
}

// ForeignBreakoutElements are HTML elements that break out of foreign
// content. Per HTML5 spec §13.2.6.5, encountering a start tag with one of
// these names while in foreign content pops back out to HTML parsing.
var ForeignBreakoutElements = toSet(`
	b big blockquote body br center code dd div dl dt em embed h1 h2 h3 h4
	h5 h6 head hr i img li listing menu meta nobr ol p pre ruby s small
	span strong strike sub sup table tt u ul var
`)

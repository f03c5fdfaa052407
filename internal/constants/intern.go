package constants

// String interning for common HTML tag and attribute names: tokenizing the
// same document repeatedly (or many documents sharing boilerplate markup)
// otherwise allocates a fresh string for every occurrence of "div" or
// "class". Looking the name up in one of these tables and returning the
// single canonical instance lets the garbage collector see one string
// object shared across the whole tree instead of one per occurrence.

// tagNameGroups lists common tag names grouped by HTML category purely for
// readability; the grouping has no runtime effect beyond documenting why
// each name made the cut.
var tagNameGroups = [][]string{
	{"html", "head", "body", "title", "meta", "link", "style"},
	{"header", "footer", "nav", "section", "article", "aside", "main"},
	{"div", "p", "span", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "code"},
	{"ul", "ol", "li", "dl", "dt", "dd"},
	{"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption", "colgroup", "col"},
	{"form", "input", "button", "select", "option", "textarea", "label", "fieldset", "legend"},
	{"img", "video", "audio", "source", "track", "canvas", "svg"},
	{"a", "script", "noscript", "iframe"},
	{"b", "i", "u", "s", "em", "strong", "small", "mark", "del", "ins", "sub", "sup"},
	{"br", "hr", "template", "slot", "base"},
}

var attributeNameGroups = [][]string{
	{"id", "class", "style", "title", "lang", "dir"},
	{"data-id", "data-name", "data-value"},
	{"href", "rel", "target", "type"},
	{"src", "alt", "width", "height"},
	{"name", "value", "placeholder", "disabled", "readonly", "required", "checked", "selected", "action", "method", "for"},
	{"onclick", "onchange", "onsubmit", "onload", "tabindex", "aria-label", "role"},
	{"content", "charset", "property"},
	{"hidden", "data", "download", "enctype", "accept", "autocomplete", "autofocus", "maxlength", "minlength", "pattern", "multiple", "size", "min", "max", "step", "colspan", "rowspan", "scope", "headers"},
}

// CommonTagNames maps a common tag name to its canonical (shared) string.
var CommonTagNames = buildInternTable(tagNameGroups)

// CommonAttributeNames maps a common attribute name to its canonical
// (shared) string.
var CommonAttributeNames = buildInternTable(attributeNameGroups)

func buildInternTable(groups [][]string) map[string]string {
	table := make(map[string]string)
	for _, group := range groups {
		for _, name := range group {
			table[name] = name
		}
	}
	return table
}

// InternTagName returns the canonical shared string for name if it's a
// common tag, otherwise name itself.
func InternTagName(name string) string {
	if interned, ok := CommonTagNames[name]; ok {
		return interned
	}
	return name
}

// InternAttributeName returns the canonical shared string for name if it's
// a common attribute, otherwise name itself.
func InternAttributeName(name string) string {
	if interned, ok := CommonAttributeNames[name]; ok {
		return interned
	}
	return name
}

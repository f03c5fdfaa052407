package constants

// Scope terminator sets used by the open-elements stack's *scope queries.
//
// Each "in *scope" check (has_in_scope, has_in_button_scope, ...) walks the
// stack from the top down and stops at the first element whose local name
// is in the relevant terminator set below. The sets mostly share a common
// core (the elements that always close off a scope: applet/caption/table
// cell/marquee/object/template, plus the MathML and SVG elements that act
// as scope boundaries even in foreign content) with a handful of
// scope-specific extras layered on top.

// mergeInto copies every key of src into dst and returns dst, letting the
// scope-specific sets below be expressed as "common boundary set plus these
// extra tags" instead of four near-duplicate literals.
func mergeInto(dst map[string]bool, src map[string]bool) map[string]bool {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func withTags(base map[string]bool, tags ...string) map[string]bool {
	out := make(map[string]bool, len(base)+len(tags))
	mergeInto(out, base)
	for _, t := range tags {
		out[t] = true
	}
	return out
}

// scopeBoundaryCore are the elements common to DefaultScope, ListItemScope
// and ButtonScope: the plain HTML boundary tags.
var scopeBoundaryCore = map[string]bool{
	"applet":   true,
	"caption":  true,
	"html":     true,
	"table":    true,
	"td":       true,
	"th":       true,
	"marquee":  true,
	"object":   true,
	"template": true,
}

// scopeBoundaryForeign are the MathML/SVG elements that also terminate
// DefaultScope, ListItemScope and ButtonScope (they behave as scope
// boundaries even though they aren't HTML).
var scopeBoundaryForeign = map[string]bool{
	"mi":             true,
	"mo":             true,
	"mn":             true,
	"ms":             true,
	"mtext":          true,
	"annotation-xml": true,
	"foreignObject":  true,
	"desc":           true,
	"title":          true,
}

// scopeBoundaryHTMLAndForeign is scopeBoundaryCore + scopeBoundaryForeign,
// the basis for DefaultScope, ListItemScope and ButtonScope.
var scopeBoundaryHTMLAndForeign = mergeInto(withTags(scopeBoundaryCore), scopeBoundaryForeign)

// DefaultScope elements terminate the default scope (used by most
// "is X in scope" checks in the tree constructor).
var DefaultScope = withTags(scopeBoundaryHTMLAndForeign)

// ListItemScope additionally stops at ol/ul, for closing an open li.
var ListItemScope = withTags(scopeBoundaryHTMLAndForeign, "ol", "ul")

// ButtonScope additionally stops at button, for the "close an open p when
// a block element with a button ancestor is inserted" rule.
var ButtonScope = withTags(scopeBoundaryHTMLAndForeign, "button")

// tableScopeCore is the boundary shared by TableScope, TableBodyScope and
// TableRowScope: html/table/template always stop a table-family scope walk.
var tableScopeCore = map[string]bool{
	"html":     true,
	"table":    true,
	"template": true,
}

// TableScope terminates at table, html or template.
var TableScope = withTags(tableScopeCore)

// TableBodyScope additionally stops at the table-section elements.
var TableBodyScope = withTags(tableScopeCore, "tbody", "tfoot", "thead")

// TableRowScope additionally stops at tr as well as the section elements.
var TableRowScope = withTags(tableScopeCore, "tbody", "tfoot", "thead", "tr")

// SelectScope lists the only two tags InSelect's scope walk does NOT stop
// at (option/optgroup); every other element boundary-checks against this
// set's absence rather than its presence.
var SelectScope = map[string]bool{
	"optgroup": true,
	"option":   true,
}

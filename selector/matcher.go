package selector

import (
	"strconv"
	"strings"

	"github.com/halvorsen-oss/gohtml5/dom"
)

// matchAST checks if an element matches a parsed selector AST.
func matchAST(elem *dom.Element, sel selectorAST) bool {
	switch s := sel.(type) {
	case ComplexSelector:
		return matchComplex(elem, s)
	case SelectorList:
		return matchSelectorList(elem, s)
	default:
		return false
	}
}

// matchSelectorList checks if an element matches any selector in the list.
func matchSelectorList(elem *dom.Element, list SelectorList) bool {
	for _, sel := range list.Selectors {
		if matchComplex(elem, sel) {
			return true
		}
	}
	return false
}

// matchComplex checks if an element matches a complex selector, walking the
// combinator chain right-to-left: the rightmost compound must match elem
// itself, and each combinator to its left must find a matching
// ancestor/sibling before the chain can be considered satisfied.
func matchComplex(elem *dom.Element, sel ComplexSelector) bool {
	if len(sel.Parts) == 0 {
		return false
	}

	lastIdx := len(sel.Parts) - 1
	if !matchCompound(elem, sel.Parts[lastIdx].Compound) {
		return false
	}

	current := elem
	for i := lastIdx - 1; i >= 0; i-- {
		combinator := sel.Parts[i+1].Combinator
		compound := sel.Parts[i].Compound

		next, ok := stepCombinator(current, combinator, compound)
		if !ok {
			return false
		}
		current = next
	}

	return true
}

// stepCombinator advances current across one combinator, returning the
// ancestor/sibling the compound matched against (to continue walking from)
// and whether a match was found at all.
func stepCombinator(current *dom.Element, combinator Combinator, compound CompoundSelector) (*dom.Element, bool) {
	switch combinator {
	case CombinatorDescendant:
		for ancestor := getParentElement(current); ancestor != nil; ancestor = getParentElement(ancestor) {
			if matchCompound(ancestor, compound) {
				return ancestor, true
			}
		}
		return nil, false

	case CombinatorChild:
		parent := getParentElement(current)
		if parent == nil || !matchCompound(parent, compound) {
			return nil, false
		}
		return parent, true

	case CombinatorAdjacent:
		prev := getPreviousElementSibling(current)
		if prev == nil || !matchCompound(prev, compound) {
			return nil, false
		}
		return prev, true

	case CombinatorGeneral:
		for sib := getPreviousElementSibling(current); sib != nil; sib = getPreviousElementSibling(sib) {
			if matchCompound(sib, compound) {
				return sib, true
			}
		}
		return nil, false

	default:
		// CombinatorNone only ever belongs to the first part of a chain,
		// which is handled before stepCombinator is ever called.
		return nil, false
	}
}

// matchCompound checks if an element matches all simple selectors in a compound.
func matchCompound(elem *dom.Element, compound CompoundSelector) bool {
	for _, sel := range compound.Selectors {
		if !matchSimple(elem, sel) {
			return false
		}
	}
	return true
}

// matchSimple checks if an element matches a single simple selector.
func matchSimple(elem *dom.Element, sel SimpleSelector) bool {
	switch sel.Kind {
	case KindTag:
		// Case-insensitive for HTML, case-sensitive for SVG/MathML.
		if elem.Namespace == dom.NamespaceHTML {
			return strings.EqualFold(elem.TagName, sel.Name)
		}
		return elem.TagName == sel.Name

	case KindUniversal:
		return true

	case KindID:
		return elem.ID() == sel.Name

	case KindClass:
		return elem.HasClass(sel.Name)

	case KindAttr:
		return matchAttribute(elem, sel)

	case KindPseudo:
		return matchPseudo(elem, sel)

	default:
		return false
	}
}

// attrComparators implements every attribute-selector operator besides
// AttrExists (which matchAttribute short-circuits before an attribute value
// even matters).
var attrComparators = map[AttrOperator]func(val, want string) bool{
	AttrEquals: func(val, want string) bool { return val == want },
	AttrIncludes: func(val, want string) bool {
		for _, w := range strings.Fields(val) {
			if w == want {
				return true
			}
		}
		return false
	},
	AttrDashPrefix: func(val, want string) bool {
		return val == want || strings.HasPrefix(val, want+"-")
	},
	AttrPrefixMatch: func(val, want string) bool { return want != "" && strings.HasPrefix(val, want) },
	AttrSuffixMatch: func(val, want string) bool { return want != "" && strings.HasSuffix(val, want) },
	AttrSubstring:   func(val, want string) bool { return want != "" && strings.Contains(val, want) },
}

// matchAttribute checks if an element matches an attribute selector.
func matchAttribute(elem *dom.Element, sel SimpleSelector) bool {
	if sel.Operator == AttrExists {
		return elem.HasAttr(sel.Name)
	}
	if !elem.HasAttr(sel.Name) {
		return false
	}
	cmp, ok := attrComparators[sel.Operator]
	if !ok {
		return false
	}
	return cmp(elem.Attr(sel.Name), sel.Value)
}

// matchPseudo checks if an element matches a pseudo-class selector.
func matchPseudo(elem *dom.Element, sel SimpleSelector) bool {
	switch sel.Name {
	case "first-child":
		return isFirstChild(elem)
	case "last-child":
		return isLastChild(elem)
	case "only-child":
		return isOnlyChild(elem)
	case "nth-child":
		a, b, ok := parseNthExpression(sel.Value)
		return ok && isNthChild(elem, a, b)
	case "nth-last-child":
		a, b, ok := parseNthExpression(sel.Value)
		return ok && isNthLastChild(elem, a, b)
	case "first-of-type":
		return isFirstOfType(elem)
	case "last-of-type":
		return isLastOfType(elem)
	case "only-of-type":
		return isOnlyOfType(elem)
	case "nth-of-type":
		a, b, ok := parseNthExpression(sel.Value)
		return ok && isNthOfType(elem, a, b)
	case "nth-last-of-type":
		a, b, ok := parseNthExpression(sel.Value)
		return ok && isNthLastOfType(elem, a, b)
	case "empty":
		return isEmpty(elem)
	case "root":
		return isRoot(elem)
	case "not":
		return matchNot(elem, sel.Value)
	default:
		return false
	}
}

// nthMatch evaluates the An+B formula against elem's 1-based position within
// siblings, optionally counting from the end.
func nthMatch(elem *dom.Element, siblings []*dom.Element, a, b int, fromEnd bool) bool {
	index := getElementIndex(elem, siblings)
	if index == 0 {
		return false
	}
	if fromEnd {
		index = len(siblings) - index + 1
	}
	return matchesNth(index, a, b)
}

// isNthChild checks if element matches :nth-child(An+B).
func isNthChild(elem *dom.Element, a, b int) bool {
	return nthMatch(elem, getElementSiblings(elem), a, b, false)
}

// isNthLastChild checks if element matches :nth-last-child(An+B).
func isNthLastChild(elem *dom.Element, a, b int) bool {
	return nthMatch(elem, getElementSiblings(elem), a, b, true)
}

// isNthOfType checks if element matches :nth-of-type(An+B).
func isNthOfType(elem *dom.Element, a, b int) bool {
	return nthMatch(elem, getSiblingsOfSameType(elem), a, b, false)
}

// isNthLastOfType checks if element matches :nth-last-of-type(An+B).
func isNthLastOfType(elem *dom.Element, a, b int) bool {
	return nthMatch(elem, getSiblingsOfSameType(elem), a, b, true)
}

// getParentElement returns the parent if it's an Element, nil otherwise.
func getParentElement(elem *dom.Element) *dom.Element {
	parent := elem.Parent()
	if parent == nil {
		return nil
	}
	if e, ok := parent.(*dom.Element); ok {
		return e
	}
	return nil
}

// getElementSiblings returns all element siblings (including the element itself).
func getElementSiblings(elem *dom.Element) []*dom.Element {
	parent := elem.Parent()
	if parent == nil {
		return []*dom.Element{elem}
	}

	var siblings []*dom.Element
	for _, child := range parent.Children() {
		if e, ok := child.(*dom.Element); ok {
			siblings = append(siblings, e)
		}
	}
	return siblings
}

// getElementIndex returns the 1-based index of the element among its
// siblings, or 0 if it isn't present in the slice.
func getElementIndex(elem *dom.Element, siblings []*dom.Element) int {
	for i, sib := range siblings {
		if sib == elem {
			return i + 1
		}
	}
	return 0
}

// getPreviousElementSibling returns the previous element sibling or nil.
func getPreviousElementSibling(elem *dom.Element) *dom.Element {
	parent := elem.Parent()
	if parent == nil {
		return nil
	}

	var prev *dom.Element
	for _, child := range parent.Children() {
		if child == elem {
			return prev
		}
		if e, ok := child.(*dom.Element); ok {
			prev = e
		}
	}
	return nil
}

// getSiblingsOfSameType returns all element siblings with the same tag name.
func getSiblingsOfSameType(elem *dom.Element) []*dom.Element {
	parent := elem.Parent()
	if parent == nil {
		return []*dom.Element{elem}
	}

	var siblings []*dom.Element
	for _, child := range parent.Children() {
		if e, ok := child.(*dom.Element); ok && strings.EqualFold(e.TagName, elem.TagName) {
			siblings = append(siblings, e)
		}
	}
	return siblings
}

// edgeMatch reports whether elem sits at position pos (1 for first, -1 for
// last, 0 for "the only one") within siblings.
func edgeMatch(elem *dom.Element, siblings []*dom.Element, pos int) bool {
	if len(siblings) == 0 {
		return false
	}
	switch pos {
	case 1:
		return siblings[0] == elem
	case -1:
		return siblings[len(siblings)-1] == elem
	default:
		return len(siblings) == 1 && siblings[0] == elem
	}
}

func isFirstChild(elem *dom.Element) bool { return edgeMatch(elem, getElementSiblings(elem), 1) }
func isLastChild(elem *dom.Element) bool  { return edgeMatch(elem, getElementSiblings(elem), -1) }
func isOnlyChild(elem *dom.Element) bool  { return edgeMatch(elem, getElementSiblings(elem), 0) }

func isFirstOfType(elem *dom.Element) bool { return edgeMatch(elem, getSiblingsOfSameType(elem), 1) }
func isLastOfType(elem *dom.Element) bool  { return edgeMatch(elem, getSiblingsOfSameType(elem), -1) }
func isOnlyOfType(elem *dom.Element) bool  { return edgeMatch(elem, getSiblingsOfSameType(elem), 0) }

// isEmpty checks if element has no element children and no non-whitespace text.
func isEmpty(elem *dom.Element) bool {
	for _, child := range elem.Children() {
		switch c := child.(type) {
		case *dom.Element:
			return false
		case *dom.Text:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		}
	}
	return true
}

// isRoot checks if element is the root (parent is Document or DocumentFragment).
func isRoot(elem *dom.Element) bool {
	parent := elem.Parent()
	if parent == nil {
		return false
	}
	switch parent.(type) {
	case *dom.Document, *dom.DocumentFragment:
		return true
	}
	return false
}

// matchNot checks if element does NOT match the inner selector.
func matchNot(elem *dom.Element, arg string) bool {
	if arg == "" {
		return true
	}
	innerSel, err := Parse(arg)
	if err != nil {
		// An inner selector we can't parse can't be matched, so :not()
		// of it never matches either.
		return false
	}
	return !innerSel.Match(elem)
}

// parseNthExpression parses an An+B expression. Returns (a, b, ok) where the
// formula matches index i when (i - b) is a multiple of a with the same
// sign (or zero), per the CSS nth-child grammar.
func parseNthExpression(expr string) (int, int, bool) {
	expr = strings.TrimSpace(strings.ToLower(expr))

	switch expr {
	case "odd":
		return 2, 1, true
	case "even":
		return 2, 0, true
	}

	if n, err := strconv.Atoi(expr); err == nil {
		return 0, n, true
	}

	// An+B form: n, 2n, 2n+1, -n+3, n+5, -2n-1, ...
	nIdx := strings.Index(expr, "n")
	if nIdx == -1 {
		return 0, 0, false
	}

	var a int
	switch aStr := expr[:nIdx]; aStr {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		var err error
		a, err = strconv.Atoi(aStr)
		if err != nil {
			return 0, 0, false
		}
	}

	var b int
	if bStr := strings.TrimSpace(expr[nIdx+1:]); bStr != "" {
		var err error
		b, err = strconv.Atoi(strings.TrimPrefix(bStr, "+"))
		if err != nil {
			return 0, 0, false
		}
	}

	return a, b, true
}

// matchesNth checks if index (1-based) matches the An+B formula.
func matchesNth(index, a, b int) bool {
	if a == 0 {
		return index == b
	}
	diff := index - b
	if a > 0 {
		return diff >= 0 && diff%a == 0
	}
	return diff <= 0 && diff%a == 0
}

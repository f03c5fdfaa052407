package dom

// selectorHooks breaks the import cycle between dom and selector: the
// selector package implements CSS matching against *Element trees, but
// Element.Query/QueryFirst need to call into it. The selector package
// registers its implementation here during its own init().
type selectorHooks struct {
	query      func(root *Element, selector string) ([]*Element, error)
	queryFirst func(root *Element, selector string) (*Element, error)
}

var hooks = selectorHooks{
	query:      func(*Element, string) ([]*Element, error) { return nil, nil },
	queryFirst: func(*Element, string) (*Element, error) { return nil, nil },
}

// SetSelectorMatch registers the function used by Element.Query.
func SetSelectorMatch(fn func(root *Element, selector string) ([]*Element, error)) {
	hooks.query = fn
}

// SetSelectorMatchFirst registers the function used by Element.QueryFirst.
func SetSelectorMatchFirst(fn func(root *Element, selector string) (*Element, error)) {
	hooks.queryFirst = fn
}

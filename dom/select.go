package dom

import "math/rand"

// Select walks the tree rooted at root (root included) in document order
// and returns the first element matching pred, or nil.
func Select(root *Element, pred func(*Element) bool) *Element {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	for _, c := range root.children {
		if found := Select(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// SelectAll walks the tree rooted at root and returns every element
// matching pred, in document order.
func SelectAll(root *Element, pred func(*Element) bool) []*Element {
	var out []*Element
	if root == nil {
		return out
	}
	var walk func(*Element)
	walk = func(e *Element) {
		if pred(e) {
			out = append(out, e)
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// ByClass returns a predicate matching elements carrying the given class.
func ByClass(class string) func(*Element) bool {
	return func(e *Element) bool { return e.HasClass(class) }
}

// ByTag returns a predicate matching elements with the given tag.
func ByTag(tag string) func(*Element) bool {
	return func(e *Element) bool { return e.Tag == tag }
}

// Random picks one element from candidates uniformly at random using the
// supplied *rand.Rand, so callers can seed determinism into tests. Returns
// nil for an empty slice.
func Random(rng *rand.Rand, candidates []*Element) *Element {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.Intn(len(candidates))]
}

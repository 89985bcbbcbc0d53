package carousel

// ExtraItems returns the synthetic leading and trailing items a renderer
// needs for seamless looping: the leading clones mirror the last
// itemsPerView items and the trailing clones mirror the first itemsPerView
// items, so one full viewport exists on either side of the real sequence.
//
// This is a pure render-layer helper; the returned slices are fresh copies
// and no controller state is involved. When looping cannot engage (fewer
// items than fit in one view, or a non-positive itemsPerView) both results
// are nil.
func ExtraItems[T any](items []T, itemsPerView int) (leading, trailing []T) {
	if itemsPerView <= 0 || len(items) <= itemsPerView {
		return nil, nil
	}
	leading = make([]T, itemsPerView)
	copy(leading, items[len(items)-itemsPerView:])
	trailing = make([]T, itemsPerView)
	copy(trailing, items[:itemsPerView])
	return leading, trailing
}

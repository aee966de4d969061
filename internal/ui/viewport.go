package ui

// listViewport is the row-based scrollable surface backing the open option
// list: one row per item, offset measured in rows. It satisfies
// listbox.Viewport so the engine's scroll controller can drive it.
type listViewport struct {
	offset  int
	height  int
	content int
}

func newListViewport() *listViewport {
	return &listViewport{}
}

func (v *listViewport) ScrollOffset() int {
	return v.offset
}

func (v *listViewport) ViewportHeight() int {
	return v.height
}

func (v *listViewport) ContentHeight() int {
	return v.content
}

func (v *listViewport) ScrollTo(offset int) {
	v.offset = offset
	v.clamp()
}

func (v *listViewport) ScrollBy(delta int) {
	v.ScrollTo(v.offset + delta)
}

func (v *listViewport) ItemRegion(index int) (int, int) {
	if index < 0 || index >= v.content {
		return 0, 0
	}
	return index, 1
}

func (v *listViewport) clamp() {
	max := v.content - v.height
	if max < 0 {
		max = 0
	}
	if v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// window returns the half-open range of item rows currently visible.
func (v *listViewport) window() (start, end int) {
	start = v.offset
	end = v.offset + v.height
	if end > v.content {
		end = v.content
	}
	if start > end {
		start = end
	}
	return start, end
}

package listbox

// Viewport is the scrollable list surface the host renders into. Offsets and
// heights share one unit (rows in the terminal host); ContentHeight is the
// full extent of the option list, ViewportHeight the visible window.
type Viewport interface {
	ScrollOffset() int
	ViewportHeight() int
	ContentHeight() int
	ScrollBy(delta int)
	ScrollTo(offset int)
	// ItemRegion reports the top offset and height of the item at the given
	// live position, in viewport units.
	ItemRegion(index int) (top, height int)
}

// ScrollDirection identifies a continuous-scroll affordance.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota - 1
	scrollIdle
	ScrollDown
)

// DefaultScrollStep is how far one auto-scroll frame moves the viewport.
const DefaultScrollStep = 2

// ScrollController drives a Viewport: boundary-disabled state for the scroll
// affordances, scroll-into-view for cursor moves, and the continuous
// hover-scroll task. At most one continuous task is live at a time; the host
// drives it cooperatively by calling Tick once per frame.
type ScrollController struct {
	vp     Viewport
	step   int
	active ScrollDirection
}

// NewScrollController wraps the viewport with the default step.
func NewScrollController(vp Viewport) *ScrollController {
	return &ScrollController{vp: vp, step: DefaultScrollStep}
}

// SetStep overrides the per-frame scroll distance.
func (c *ScrollController) SetStep(step int) {
	if step > 0 {
		c.step = step
	}
}

// UpDisabled reports whether the scroll-up affordance is at its boundary.
func (c *ScrollController) UpDisabled() bool {
	return c.vp.ScrollOffset() <= 0
}

// DownDisabled reports whether the scroll-down affordance is at its boundary.
func (c *ScrollController) DownDisabled() bool {
	return c.vp.ScrollOffset()+c.vp.ViewportHeight() >= c.vp.ContentHeight()
}

// IntoView scrolls the minimum distance that makes the item fully visible,
// or centers it in the viewport when center is set.
func (c *ScrollController) IntoView(index int, center bool) {
	top, height := c.vp.ItemRegion(index)
	if height <= 0 {
		return
	}
	offset := c.vp.ScrollOffset()
	view := c.vp.ViewportHeight()
	if center {
		c.vp.ScrollTo(top - (view-height)/2)
		return
	}
	if top < offset {
		c.vp.ScrollTo(top)
		return
	}
	if top+height > offset+view {
		c.vp.ScrollTo(top + height - view)
	}
}

// StartAuto begins continuous scrolling toward the given direction, replacing
// any task already running. Starting toward a disabled boundary is a no-op.
func (c *ScrollController) StartAuto(dir ScrollDirection) bool {
	c.active = scrollIdle
	switch dir {
	case ScrollUp:
		if c.UpDisabled() {
			return false
		}
	case ScrollDown:
		if c.DownDisabled() {
			return false
		}
	default:
		return false
	}
	c.active = dir
	return true
}

// StopAuto cancels the continuous-scroll task.
func (c *ScrollController) StopAuto() {
	c.active = scrollIdle
}

// AutoActive reports whether a continuous-scroll task is live.
func (c *ScrollController) AutoActive() bool {
	return c.active != scrollIdle
}

// Tick advances the live task by one frame. It returns false once the task
// has stopped, either because it was cancelled or the boundary was reached.
func (c *ScrollController) Tick() bool {
	switch c.active {
	case ScrollUp:
		if c.UpDisabled() {
			c.active = scrollIdle
			return false
		}
		c.vp.ScrollBy(-c.step)
		if c.UpDisabled() {
			c.active = scrollIdle
			return false
		}
	case ScrollDown:
		if c.DownDisabled() {
			c.active = scrollIdle
			return false
		}
		c.vp.ScrollBy(c.step)
		if c.DownDisabled() {
			c.active = scrollIdle
			return false
		}
	default:
		return false
	}
	return true
}

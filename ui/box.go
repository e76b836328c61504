package ui

// Box lays out child elements in a row or column. Extra main-axis room is
// split equally among items flagged expand; when no item expands, the
// packed run is placed by the box's own alignment instead. Each item's
// alignment positions it on the cross axis, with fill stretching to the
// padding box. Children that do not fit are silently clipped.
type Box struct {
	base

	orientation Orientation
	alignment   Alignment

	items []boxItem

	padLeft   int
	padRight  int
	padTop    int
	padBottom int

	spacing int
}

type boxItem struct {
	element   Element
	alignment Alignment
	expand    bool
}

// NewBox creates an empty box laying out along orientation.
func NewBox(orientation Orientation) *Box {
	return &Box{orientation: orientation, alignment: AlignStart}
}

// SetPadding sets the four inner padding widths.
func (b *Box) SetPadding(left, right, top, bottom int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.padLeft, b.padRight, b.padTop, b.padBottom = left, right, top, bottom
}

// SetSpacing sets the gap drawn between consecutive items.
func (b *Box) SetSpacing(spacing int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spacing = spacing
}

// SetAlignment sets how the packed run of items is placed along the main
// axis when there is extra room and no expanding item.
func (b *Box) SetAlignment(alignment Alignment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alignment = alignment
}

// PushFront prepends an item.
func (b *Box) PushFront(el Element, alignment Alignment, expand bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append([]boxItem{{element: el, alignment: alignment, expand: expand}}, b.items...)
}

// PushBack appends an item.
func (b *Box) PushBack(el Element, alignment Alignment, expand bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, boxItem{element: el, alignment: alignment, expand: expand})
}

// PopFront removes the first item, if any.
func (b *Box) PopFront() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) > 0 {
		b.items = b.items[1:]
	}
}

// PopBack removes the last item, if any.
func (b *Box) PopBack() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) > 0 {
		b.items = b.items[:len(b.items)-1]
	}
}

// RemoveItem removes every item holding el, compared by identity.
func (b *Box) RemoveItem(el Element) {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.items[:0]
	for _, item := range b.items {
		if item.element != el {
			kept = append(kept, item)
		}
	}
	b.items = kept
}

// InsertBefore inserts el in front of before, reporting whether before was
// found.
func (b *Box) InsertBefore(before, el Element, alignment Alignment, expand bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, item := range b.items {
		if item.element == before {
			b.items = append(b.items[:i], append([]boxItem{{element: el, alignment: alignment, expand: expand}}, b.items[i:]...)...)
			return true
		}
	}
	return false
}

// InsertAfter inserts el right after after, reporting whether after was
// found.
func (b *Box) InsertAfter(after, el Element, alignment Alignment, expand bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, item := range b.items {
		if item.element == after {
			b.items = append(b.items[:i+1], append([]boxItem{{element: el, alignment: alignment, expand: expand}}, b.items[i+1:]...)...)
			return true
		}
	}
	return false
}

// Clear removes all items.
func (b *Box) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = nil
}

// Boxes have no background.
func (b *Box) BackgroundColor() Color { return Color(0x00000000) }

func (b *Box) SetBackgroundColor(color Color) {}

// layout is the snapshot a box computes from under its lock. All child
// calls happen against the snapshot with the lock released.
type boxLayout struct {
	x, y          int
	width, height int
	orientation   Orientation
	alignment     Alignment
	items         []boxItem
	padLeft       int
	padRight      int
	padTop        int
	padBottom     int
	spacing       int
}

func (b *Box) snapshot() boxLayout {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]boxItem, len(b.items))
	copy(items, b.items)
	return boxLayout{
		x: b.x, y: b.y,
		width: b.width, height: b.height,
		orientation: b.orientation,
		alignment:   b.alignment,
		items:       items,
		padLeft:     b.padLeft,
		padRight:    b.padRight,
		padTop:      b.padTop,
		padBottom:   b.padBottom,
		spacing:     b.spacing,
	}
}

func (l *boxLayout) preferredWidth() int {
	w := 0
	switch l.orientation {
	case Horizontal:
		for i, item := range l.items {
			w += item.element.PreferredWidth()
			if i < len(l.items)-1 {
				w += l.spacing
			}
		}
	case Vertical:
		for _, item := range l.items {
			if cw := item.element.PreferredWidth(); cw > w {
				w = cw
			}
		}
	}
	return w + l.padLeft + l.padRight
}

func (l *boxLayout) preferredHeight() int {
	h := 0
	switch l.orientation {
	case Horizontal:
		for _, item := range l.items {
			if ch := item.element.PreferredHeight(); ch > h {
				h = ch
			}
		}
	case Vertical:
		for i, item := range l.items {
			h += item.element.PreferredHeight()
			if i < len(l.items)-1 {
				h += l.spacing
			}
		}
	}
	return h + l.padTop + l.padBottom
}

func (b *Box) PreferredWidth() int {
	l := b.snapshot()
	return l.preferredWidth()
}

func (b *Box) PreferredHeight() int {
	l := b.snapshot()
	return l.preferredHeight()
}

func (b *Box) Draw(offsetX, offsetY int, frame Frame) {
	l := b.snapshot()

	prefWidth := l.preferredWidth()
	prefHeight := l.preferredHeight()
	if l.width < prefWidth {
		prefWidth = l.width
	}
	if l.height < prefHeight {
		prefHeight = l.height
	}

	var extraRoom int
	if l.orientation == Horizontal {
		extraRoom = l.width - prefWidth
	} else {
		extraRoom = l.height - prefHeight
	}

	fillItems := 0
	for _, item := range l.items {
		if item.expand {
			fillItems++
		}
	}

	itemFillSize := 0
	if fillItems > 0 {
		itemFillSize = extraRoom / fillItems
	} else {
		extraRoom = 0
	}

	ox := offsetX + l.x
	oy := offsetY + l.y

	if !frame.PushScissor(ox+l.padLeft, oy+l.padTop, ox+l.width-l.padRight, oy+l.height-l.padBottom) {
		return
	}
	defer frame.PopScissor()

	switch l.orientation {
	case Vertical:
		var y int
		switch l.alignment {
		case AlignMiddle:
			y = oy + l.height/2 - (prefHeight+extraRoom)/2
		case AlignEnd:
			y = oy + l.height - l.padBottom - prefHeight
		default:
			y = oy + l.padTop
		}

		for i, item := range l.items {
			itemWidth := item.element.PreferredWidth()
			itemHeight := item.element.PreferredHeight()

			if item.expand {
				itemHeight += itemFillSize
			}
			if item.alignment == AlignFill {
				itemWidth = l.width - l.padLeft - l.padRight
			}

			item.element.SetWidth(itemWidth)
			item.element.SetHeight(itemHeight)

			var x int
			switch item.alignment {
			case AlignMiddle:
				x = ox + l.width/2 - itemWidth/2
			case AlignEnd:
				x = ox + l.width - l.padRight - itemWidth
			default:
				x = ox + l.padLeft
			}

			item.element.Draw(x, y, frame)

			y += itemHeight
			if i < len(l.items)-1 {
				y += l.spacing
			}
		}

	case Horizontal:
		var x int
		switch l.alignment {
		case AlignMiddle:
			content := l.width - l.padLeft - l.padRight
			x = ox + l.padLeft + content/2 - (prefWidth-l.padLeft-l.padRight)/2
		case AlignEnd:
			x = ox + l.width - l.padRight - prefWidth
		default:
			x = ox + l.padLeft
		}

		for i, item := range l.items {
			itemWidth := item.element.PreferredWidth()
			itemHeight := item.element.PreferredHeight()

			if item.expand {
				itemWidth += itemFillSize
			}

			item.element.SetWidth(itemWidth)
			if item.alignment == AlignFill {
				itemHeight = l.height - l.padTop - l.padBottom
			}
			item.element.SetHeight(itemHeight)

			var y int
			switch item.alignment {
			case AlignMiddle:
				y = oy + l.height/2 - itemHeight/2
			case AlignEnd:
				y = oy + l.height - l.padBottom - itemHeight
			default:
				y = oy + l.padTop
			}

			item.element.Draw(x, y, frame)

			x += itemWidth
			if i < len(l.items)-1 {
				x += l.spacing
			}
		}
	}
}

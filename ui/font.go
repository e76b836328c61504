package ui

import (
	"container/list"
	"sync"
)

// Font measures and renders text for one face and size. Measurement is a
// pure query; rendering draws through the frame's scissor stack.
type Font interface {
	TextWidth(text string) int
	LineSpacing() int
	RenderText(frame Frame, x, y int, text string, color Color)
}

// NewCachingFont wraps font with an LRU width cache. Layout measures the
// same strings every frame, so repeated TextWidth calls for unchanged text
// skip the backend.
func NewCachingFont(font Font, capacity int) Font {
	if capacity <= 0 {
		capacity = 1024
	}
	return &cachingFont{
		Font:  font,
		cap:   capacity,
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

type cachingFont struct {
	Font
	mu    sync.Mutex
	cap   int
	order *list.List
	index map[string]*list.Element
}

type widthEntry struct {
	text  string
	width int
}

func (f *cachingFont) TextWidth(text string) int {
	f.mu.Lock()
	if el, ok := f.index[text]; ok {
		f.order.MoveToFront(el)
		w := el.Value.(*widthEntry).width
		f.mu.Unlock()
		return w
	}
	f.mu.Unlock()

	w := f.Font.TextWidth(text)

	f.mu.Lock()
	if _, ok := f.index[text]; !ok {
		f.index[text] = f.order.PushFront(&widthEntry{text: text, width: w})
		if f.order.Len() > f.cap {
			oldest := f.order.Back()
			f.order.Remove(oldest)
			delete(f.index, oldest.Value.(*widthEntry).text)
		}
	}
	f.mu.Unlock()
	return w
}

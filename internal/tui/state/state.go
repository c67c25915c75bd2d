package state

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ScrollTop returns the first card to draw so that the card at cursor is
// fully inside a display area of the given height. heights holds the line
// count of every card. The cursor card always shows, even when it alone is
// taller than the area.
func ScrollTop(heights []int, top, cursor, height int) int {
	if len(heights) == 0 {
		return 0
	}
	cursor = ClampCursor(cursor, len(heights))
	top = ClampCursor(top, len(heights))
	if cursor < top {
		return cursor
	}
	for top < cursor && span(heights, top, cursor+1) > height {
		top++
	}
	return top
}

// CycleIndex steps through n slots and wraps at both ends.
func CycleIndex(current, delta, n int) int {
	if n <= 0 {
		return 0
	}
	next := (current + delta) % n
	if next < 0 {
		next += n
	}
	return next
}

func span(heights []int, from, to int) int {
	total := 0
	for i := from; i < to; i++ {
		total += heights[i]
	}
	return total
}

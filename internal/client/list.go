package client

// node wraps a Client with its main-list links and its focus-stack links.
// alive is false once the slot has been freed by Destroy and is awaiting
// reuse; List never hands out an index for a dead node.
type node struct {
	c    Client
	prev int
	next int

	focusPrev int
	focusNext int

	alive bool
}

// List is an ordered doubly-linked collection of Clients with O(1) head/tail
// access, O(n) search, plus an auxiliary MRU focus stack.
type List struct {
	nodes []node
	free  []int

	head, tail int
	length     int

	focusHead int
}

// NewList returns an empty ClientList.
func NewList() *List {
	return &List{head: NoClient, tail: NoClient, focusHead: NoClient}
}

func (l *List) alloc(c Client) int {
	if n := len(l.free); n > 0 {
		idx := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[idx] = node{c: c, prev: NoClient, next: NoClient, focusPrev: NoClient, focusNext: NoClient, alive: true}
		return idx
	}
	l.nodes = append(l.nodes, node{c: c, prev: NoClient, next: NoClient, focusPrev: NoClient, focusNext: NoClient, alive: true})
	return len(l.nodes) - 1
}

// Insert prepends c at the head of the list and returns its stable handle.
func (l *List) Insert(c Client) int {
	idx := l.alloc(c)
	n := &l.nodes[idx]
	n.next = l.head
	n.prev = NoClient
	if l.head != NoClient {
		l.nodes[l.head].prev = idx
	}
	l.head = idx
	if l.tail == NoClient {
		l.tail = idx
	}
	l.length++
	return idx
}

// Remove unlinks idx from the main list (not the focus stack) and clears
// its next/prev so it may be reinserted elsewhere.
func (l *List) Remove(idx int) {
	if !l.valid(idx) {
		return
	}
	n := &l.nodes[idx]

	if n.prev != NoClient {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != NoClient {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = NoClient
	n.next = NoClient
	l.length--
}

// Destroy removes idx from the main list, removes it from the focus stack,
// and releases its slot for reuse.
func (l *List) Destroy(idx int) {
	if !l.valid(idx) {
		return
	}
	l.Remove(idx)
	l.FocusRemove(idx)
	l.nodes[idx].alive = false
	l.free = append(l.free, idx)
}

func (l *List) valid(idx int) bool {
	return idx >= 0 && idx < len(l.nodes) && l.nodes[idx].alive
}

// Get returns a pointer to the live Client at idx, or nil if idx does not
// name a live client. The pointer aliases List's internal storage and is
// invalidated by any further mutating call.
func (l *List) Get(idx int) *Client {
	if !l.valid(idx) {
		return nil
	}
	return &l.nodes[idx].c
}

// Head returns the handle at the head of the main list, and whether the
// list is non-empty.
func (l *List) Head() (int, bool) {
	return l.head, l.head != NoClient
}

// Tail returns the handle at the tail of the main list, and whether the
// list is non-empty.
func (l *List) Tail() (int, bool) {
	return l.tail, l.tail != NoClient
}

// Next returns the handle following idx in the main list, and whether one
// exists.
func (l *List) Next(idx int) (int, bool) {
	if !l.valid(idx) {
		return NoClient, false
	}
	n := l.nodes[idx].next
	return n, n != NoClient
}

// Prev returns the handle preceding idx in the main list, and whether one
// exists.
func (l *List) Prev(idx int) (int, bool) {
	if !l.valid(idx) {
		return NoClient, false
	}
	p := l.nodes[idx].prev
	return p, p != NoClient
}

// Len returns the number of live clients in the list.
func (l *List) Len() int {
	return l.length
}

// Indices returns the handles of every live client, head to tail, in main
// list order. Used by the tiler to iterate clients in layout order.
func (l *List) Indices() []int {
	out := make([]int, 0, l.length)
	for idx, ok := l.Head(); ok; idx, ok = l.Next(idx) {
		out = append(out, idx)
	}
	return out
}

// FindByWindow linearly scans the list, comparing either the Frame or
// Window field depending on kind.
func (l *List) FindByWindow(id uint32, kind Kind) (int, bool) {
	for idx, ok := l.Head(); ok; idx, ok = l.Next(idx) {
		c := l.nodes[idx].c
		var want uint32
		if kind == KindFrame {
			want = uint32(c.Frame)
		} else {
			want = uint32(c.Window)
		}
		if want == id {
			return idx, true
		}
	}
	return NoClient, false
}

// FocusPush removes any existing focus-stack entry for idx, then pushes idx
// to the top. Pushing an already-present client promotes it.
func (l *List) FocusPush(idx int) {
	if !l.valid(idx) {
		return
	}
	l.focusUnlink(idx)

	n := &l.nodes[idx]
	n.focusNext = l.focusHead
	n.focusPrev = NoClient
	if l.focusHead != NoClient {
		l.nodes[l.focusHead].focusPrev = idx
	}
	l.focusHead = idx
}

// FocusRemove unlinks idx's FocusStack entry, if present.
func (l *List) FocusRemove(idx int) {
	if idx < 0 || idx >= len(l.nodes) {
		return
	}
	l.focusUnlink(idx)
}

func (l *List) focusUnlink(idx int) {
	n := &l.nodes[idx]
	// A node with no focus-stack membership has both pointers unset and is
	// not the head; guard against double-unlinking a node that was never
	// pushed.
	if l.focusHead != idx && n.focusPrev == NoClient && n.focusNext == NoClient {
		return
	}

	if n.focusPrev != NoClient {
		l.nodes[n.focusPrev].focusNext = n.focusNext
	} else if l.focusHead == idx {
		l.focusHead = n.focusNext
	}
	if n.focusNext != NoClient {
		l.nodes[n.focusNext].focusPrev = n.focusPrev
	}
	n.focusPrev = NoClient
	n.focusNext = NoClient
}

// Focused returns the handle at the top of the FocusStack, and whether one
// exists.
func (l *List) Focused() (int, bool) {
	return l.focusHead, l.focusHead != NoClient
}

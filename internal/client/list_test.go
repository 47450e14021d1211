package client

import "testing"

// checkListInvariants asserts the list's structural invariants: the head
// has no prev, the tail has no next, every node's prev/next links agree
// with its neighbors, and the reported length matches a full traversal.
func checkListInvariants(t *testing.T, l *List) {
	t.Helper()

	if head, ok := l.Head(); ok {
		if _, hasPrev := l.Prev(head); hasPrev {
			t.Errorf("head %d has a prev", head)
		}
	}
	if tail, ok := l.Tail(); ok {
		if _, hasNext := l.Next(tail); hasNext {
			t.Errorf("tail %d has a next", tail)
		}
	}

	count := 0
	var last int = NoClient
	for idx, ok := l.Head(); ok; idx, ok = l.Next(idx) {
		if prev, hasPrev := l.Prev(idx); hasPrev {
			if prev != last {
				t.Errorf("node %d's prev %d does not match traversal predecessor %d", idx, prev, last)
			}
		} else if last != NoClient {
			t.Errorf("node %d has no prev but is not first", idx)
		}
		last = idx
		count++
	}
	if count != l.Len() {
		t.Errorf("length %d does not match traversal count %d", l.Len(), count)
	}
}

func TestListInsertRemoveInvariants(t *testing.T) {
	l := NewList()
	a := l.Insert(Client{Window: 1})
	b := l.Insert(Client{Window: 2})
	c := l.Insert(Client{Window: 3})
	checkListInvariants(t, l)

	head, _ := l.Head()
	if head != c {
		t.Errorf("expected most recently inserted client %d at head, got %d", c, head)
	}

	l.Remove(b)
	checkListInvariants(t, l)
	if l.Len() != 2 {
		t.Errorf("expected length 2 after remove, got %d", l.Len())
	}

	// Removed node must be re-insertable.
	l.Insert(*l.Get(b))
	checkListInvariants(t, l)

	l.Remove(a)
	l.Remove(c)
	checkListInvariants(t, l)
	if l.Len() != 1 {
		t.Errorf("expected length 1, got %d", l.Len())
	}
}

func TestListDestroyRemovesFromFocusStack(t *testing.T) {
	l := NewList()
	a := l.Insert(Client{Window: 1})
	b := l.Insert(Client{Window: 2})

	l.FocusPush(a)
	l.FocusPush(b)

	l.Destroy(b)
	checkListInvariants(t, l)

	top, ok := l.Focused()
	if !ok || top != a {
		t.Fatalf("expected a to be focused after destroying b, got %v ok=%v", top, ok)
	}
}

func TestFocusStackUniquenessAndMRU(t *testing.T) {
	l := NewList()
	a := l.Insert(Client{Window: 1})
	b := l.Insert(Client{Window: 2})
	c := l.Insert(Client{Window: 3})

	l.FocusPush(a)
	l.FocusPush(b)
	l.FocusPush(c)
	l.FocusPush(a) // re-push promotes a back to top

	top, ok := l.Focused()
	if !ok || top != a {
		t.Fatalf("expected a at top of focus stack after re-push, got %v", top)
	}

	// Walk the focus stack by repeatedly removing the top and verify each
	// client appears exactly once.
	seen := map[int]bool{}
	order := []int{}
	remaining := &List{nodes: l.nodes, free: l.free, head: l.head, tail: l.tail, length: l.length, focusHead: l.focusHead}
	for {
		top, ok := remaining.Focused()
		if !ok {
			break
		}
		if seen[top] {
			t.Fatalf("client %d appeared twice in focus stack", top)
		}
		seen[top] = true
		order = append(order, top)
		remaining.FocusRemove(top)
	}

	if len(order) != 3 {
		t.Fatalf("expected 3 entries in focus stack, got %d", len(order))
	}
	if order[0] != a || order[1] != c || order[2] != b {
		t.Fatalf("unexpected MRU order: %v", order)
	}
}

func TestFindByWindow(t *testing.T) {
	l := NewList()
	idx := l.Insert(Client{Window: 42, Frame: 99})
	l.Insert(Client{Window: 7, Frame: 8})

	found, ok := l.FindByWindow(42, KindWindow)
	if !ok || found != idx {
		t.Fatalf("expected to find client by window id, got %v ok=%v", found, ok)
	}

	found, ok = l.FindByWindow(99, KindFrame)
	if !ok || found != idx {
		t.Fatalf("expected to find client by frame id, got %v ok=%v", found, ok)
	}

	if _, ok := l.FindByWindow(123, KindWindow); ok {
		t.Fatal("expected no match for unknown window id")
	}
}

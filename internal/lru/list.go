package lru

// node is an element of the recency list. It stores the key so the oldest
// entry can be deleted from the map in O(1).
type node[K comparable] struct {
	key  K
	prev *node[K]
	next *node[K]
}

// list is a doubly-linked list ordered from most (head) to least (tail)
// recently used.
type list[K comparable] struct {
	head *node[K]
	tail *node[K]
	len  int
}

func (l *list[K]) pushFront(key K) *node[K] {
	n := &node[K]{key: key, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
	return n
}

func (l *list[K]) moveToFront(n *node[K]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.len++
}

func (l *list[K]) removeOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

func (l *list[K]) unlink(n *node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}

func (l *list[K]) clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

package binding

import "sync"

// ChangeKind describes a single ObservableList mutation.
type ChangeKind int

const (
	// ChangeAdd is an append at the end of the list.
	ChangeAdd ChangeKind = iota
	// ChangeInsert is an insertion at Index.
	ChangeInsert
	// ChangeRemove is a removal from Index.
	ChangeRemove
	// ChangeReset is a whole-list clear.
	ChangeReset
)

// ListChange carries the details of one mutation. Item is the affected
// element (the removed one for ChangeRemove); it is the zero value for
// ChangeReset.
type ListChange[T any] struct {
	Kind  ChangeKind
	Index int
	Item  T
}

// ObservableList is a list container whose mutations notify registered
// listeners, so a bound UI collection can mirror it without polling.
type ObservableList[T comparable] struct {
	mu        sync.Mutex
	items     []T
	listeners []listListener[T]
	nextID    uint64
}

type listListener[T comparable] struct {
	id uint64
	fn func(ListChange[T])
}

// NewObservableList creates an empty list.
func NewObservableList[T comparable]() *ObservableList[T] {
	return &ObservableList[T]{}
}

// OnChanged registers a mutation listener and returns an id for removal.
func (l *ObservableList[T]) OnChanged(fn func(ListChange[T])) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	l.listeners = append(l.listeners, listListener[T]{id: l.nextID, fn: fn})
	return l.nextID
}

// RemoveOnChanged removes a mutation listener by id.
func (l *ObservableList[T]) RemoveOnChanged(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, entry := range l.listeners {
		if entry.id == id {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}

// Append adds item at the end of the list.
func (l *ObservableList[T]) Append(item T) {
	l.mu.Lock()
	l.items = append(l.items, item)
	change := ListChange[T]{Kind: ChangeAdd, Index: len(l.items) - 1, Item: item}
	snapshot := l.snapshotListeners()
	l.mu.Unlock()

	notify(snapshot, change)
}

// Insert adds item at index. Index must be in [0, Len()].
func (l *ObservableList[T]) Insert(index int, item T) {
	l.mu.Lock()
	l.items = append(l.items, item)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
	change := ListChange[T]{Kind: ChangeInsert, Index: index, Item: item}
	snapshot := l.snapshotListeners()
	l.mu.Unlock()

	notify(snapshot, change)
}

// RemoveAt removes and returns the item at index. Index must be in
// [0, Len()).
func (l *ObservableList[T]) RemoveAt(index int) T {
	l.mu.Lock()
	item := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	change := ListChange[T]{Kind: ChangeRemove, Index: index, Item: item}
	snapshot := l.snapshotListeners()
	l.mu.Unlock()

	notify(snapshot, change)
	return item
}

// Remove removes the first occurrence of item and reports whether one was
// found.
func (l *ObservableList[T]) Remove(item T) bool {
	l.mu.Lock()
	index := -1
	for i, v := range l.items {
		if v == item {
			index = i
			break
		}
	}
	if index < 0 {
		l.mu.Unlock()
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	change := ListChange[T]{Kind: ChangeRemove, Index: index, Item: item}
	snapshot := l.snapshotListeners()
	l.mu.Unlock()

	notify(snapshot, change)
	return true
}

// Pop removes and returns the last item. The second return is false when
// the list is empty.
func (l *ObservableList[T]) Pop() (T, bool) {
	l.mu.Lock()
	if len(l.items) == 0 {
		l.mu.Unlock()
		var zero T
		return zero, false
	}
	index := len(l.items) - 1
	item := l.items[index]
	l.items = l.items[:index]
	change := ListChange[T]{Kind: ChangeRemove, Index: index, Item: item}
	snapshot := l.snapshotListeners()
	l.mu.Unlock()

	notify(snapshot, change)
	return item, true
}

// Clear removes every item.
func (l *ObservableList[T]) Clear() {
	l.mu.Lock()
	l.items = nil
	change := ListChange[T]{Kind: ChangeReset}
	snapshot := l.snapshotListeners()
	l.mu.Unlock()

	notify(snapshot, change)
}

// Len returns the number of items.
func (l *ObservableList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// At returns the item at index. Index must be in [0, Len()).
func (l *ObservableList[T]) At(index int) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items[index]
}

// IndexOf returns the index of the first occurrence of item, or -1.
func (l *ObservableList[T]) IndexOf(item T) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, v := range l.items {
		if v == item {
			return i
		}
	}
	return -1
}

// Items returns a copy of the current contents.
func (l *ObservableList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// snapshotListeners must be called with l.mu held.
func (l *ObservableList[T]) snapshotListeners() []listListener[T] {
	out := make([]listListener[T], len(l.listeners))
	copy(out, l.listeners)
	return out
}

func notify[T comparable](listeners []listListener[T], change ListChange[T]) {
	for _, entry := range listeners {
		entry.fn(change)
	}
}

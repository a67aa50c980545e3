// Copyright (c) 2026, Spanlay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

// EventType is the kind of surface event a listener can register for.
type EventType int32

const (
	// Click is a pointer click inside a node.
	Click EventType = iota

	// Scroll is a scroll tick on a node.
	Scroll

	// Resize is a size change of a node.
	Resize
)

func (t EventType) String() string {
	switch t {
	case Click:
		return "Click"
	case Scroll:
		return "Scroll"
	case Resize:
		return "Resize"
	}
	return "Unknown"
}

// Handle identifies one registered event listener, for removal.
type Handle int

type listener struct {
	handle Handle
	fun    func()
}

// Listeners registers lists of event listener functions by event type.
// Listeners are closure methods with all context captured, registered
// on specific nodes. Unlike a plain listener slice, registration
// returns a [Handle] so a listener can be detached before a new one is
// bound or on teardown.
type Listeners struct {
	next  Handle
	funcs map[EventType][]listener
}

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if ls.funcs == nil {
		ls.funcs = make(map[EventType][]listener)
	}
}

// Add registers a function for the given event type and returns its
// removal handle.
func (ls *Listeners) Add(t EventType, f func()) Handle {
	ls.Init()
	ls.next++
	ls.funcs[t] = append(ls.funcs[t], listener{ls.next, f})
	return ls.next
}

// Remove removes the listener with the given handle for the given
// event type. Removing an unknown handle is a no-op.
func (ls *Listeners) Remove(t EventType, h Handle) {
	lst := ls.funcs[t]
	for i, l := range lst {
		if l.handle == h {
			ls.funcs[t] = append(lst[:i], lst[i+1:]...)
			return
		}
	}
}

// Call calls all functions registered for the given event type, in
// registration order.
func (ls *Listeners) Call(t EventType) {
	for _, l := range ls.funcs[t] {
		l.fun()
	}
}

// Count returns the number of listeners registered for the given
// event type.
func (ls *Listeners) Count(t EventType) int {
	return len(ls.funcs[t])
}

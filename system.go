package xlog

/*
Registry of a logger family.

Loggers are kept in an arena of generational slots; a Logger refers to its
parent by ref, never by pointer, so a released parent can not be reached
through a stale link. The reverse index (children) lets unregister splice the
children of a destroyed logger onto its own parent.

Every function here expects the System lock to be held by the caller unless
its comment says otherwise.
*/

import (
	"slices"
)

// resolve returns the live logger addressed by r or nil.
func (s *System) resolve(r ref) *Logger {
	if r.gen == 0 || int(r.index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[r.index]
	if sl.gen != r.gen {
		return nil
	}
	return sl.logger
}

// allocate takes a free arena slot (or grows the arena) for l.
func (s *System) allocate(l *Logger) ref {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		idx = uint32(len(s.slots) - 1)
	}
	sl := &s.slots[idx]
	sl.gen++
	if sl.gen == 0 { // zero generation means "no logger"
		sl.gen = 1
	}
	sl.logger = l
	return ref{index: idx, gen: sl.gen}
}

// release returns the slot of r to the free list and invalidates every ref to it.
func (s *System) release(r ref) {
	sl := &s.slots[r.index]
	sl.logger = nil
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	s.free = append(s.free, r.index)
}

// register adds l to the tracked set and to the child index of its parent.
// A logger of another System is a programming error and panics.
func (s *System) register(l *Logger) {
	if l.system != s {
		panic(_ERROR_MESSAGE_ALIEN_LOGGER)
	}
	l.self = s.allocate(l)
	s.loggers = append(s.loggers, l)
	if s.resolve(l.parent) != nil {
		s.children[l.parent] = append(s.children[l.parent], l.self)
	} else {
		l.parent = ref{}
	}
}

// unregister removes l from the tracked set and rebinds every child of l to
// the parent of l (or makes it a root when l was a root).
func (s *System) unregister(l *Logger) {
	if l.system != s {
		panic(_ERROR_MESSAGE_ALIEN_LOGGER)
	}
	if i := slices.Index(s.loggers, l); i >= 0 {
		s.loggers = slices.Delete(s.loggers, i, i+1)
	}
	grand := s.resolve(l.parent) != nil
	for _, cr := range s.children[l.self] {
		child := s.resolve(cr)
		if child == nil {
			continue
		}
		if grand {
			child.parent = l.parent
			s.children[l.parent] = append(s.children[l.parent], cr)
		} else {
			child.parent = ref{}
		}
	}
	delete(s.children, l.self)
	if grand {
		siblings := s.children[l.parent]
		if i := slices.Index(siblings, l.self); i >= 0 {
			s.children[l.parent] = slices.Delete(siblings, i, i+1)
		}
		if len(s.children[l.parent]) == 0 {
			delete(s.children, l.parent)
		}
	}
	s.release(l.self)
	l.parent = ref{}
}

// Locked runs f while holding the System lock. The lock is released on every
// exit path, panics included. f must not call locking methods of loggers of
// this System.
func (s *System) Locked(f func()) {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	f()
}

// Loggers returns a snapshot of the live loggers in registration order.
func (s *System) Loggers() []*Logger {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	return slices.Clone(s.loggers)
}

// Len returns the number of live loggers.
func (s *System) Len() int {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	return len(s.loggers)
}

// Children returns a snapshot of the live direct children of l.
func (s *System) Children(l *Logger) []*Logger {
	s.sync.mtx.Lock()
	defer s.sync.mtx.Unlock()
	if l == nil || l.system != s || l.closed {
		return nil
	}
	var out []*Logger
	for _, cr := range s.children[l.self] {
		if c := s.resolve(cr); c != nil {
			out = append(out, c)
		}
	}
	return out
}

package buffer

// BeginUserAction opens an atomic edit bracket. Brackets nest; changes
// made until the outermost EndUserAction are delivered to listeners as a
// single ChangeSet.
func (b *Buffer) BeginUserAction() {
	b.BeginNamedAction("")
}

// BeginNamedAction is BeginUserAction with a label that is copied into
// the resulting ChangeSet. Only the outermost name is kept.
func (b *Buffer) BeginNamedAction(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.actionDepth == 0 {
		b.actionName = name
		b.pending = nil
	}
	b.actionDepth++
}

// EndUserAction closes the innermost bracket. Calls without a matching
// BeginUserAction are ignored.
func (b *Buffer) EndUserAction() {
	b.mu.Lock()
	if b.actionDepth == 0 {
		b.mu.Unlock()
		return
	}
	b.actionDepth--
	if b.actionDepth > 0 {
		b.mu.Unlock()
		return
	}

	cs := ChangeSet{Action: b.actionName, Changes: b.pending, Revision: b.revisionID}
	b.pending = nil
	b.actionName = ""
	listeners := b.listenersLocked()
	b.mu.Unlock()

	if len(cs.Changes) > 0 {
		notify(listeners, cs)
	}
}

// InUserAction reports whether a bracket is open.
func (b *Buffer) InUserAction() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.actionDepth > 0
}

// UserAction runs fn inside a bracket. The bracket is closed even when
// fn returns an error; changes already made stay in the buffer.
func (b *Buffer) UserAction(name string, fn func() error) error {
	b.BeginNamedAction(name)
	defer b.EndUserAction()
	return fn()
}

// Subscribe registers a change listener.
func (b *Buffer) Subscribe(l Listener) ListenerID {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextListener++
	id := b.nextListener
	b.listeners = append(b.listeners, listenerEntry{id: id, fn: l})
	return id
}

// Unsubscribe removes a change listener.
func (b *Buffer) Unsubscribe(id ListenerID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.listeners {
		if e.id == id {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// recordLocked queues a change, or returns the listeners to notify immediately
// when no bracket is open. Must be called with the write lock held.
func (b *Buffer) recordLocked(c Change) []Listener {
	b.revisionID = NewRevisionID()
	b.modified = true
	if b.actionDepth > 0 {
		b.pending = append(b.pending, c)
		return nil
	}
	return b.listenersLocked()
}

func (b *Buffer) listenersLocked() []Listener {
	if len(b.listeners) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(b.listeners))
	for _, e := range b.listeners {
		out = append(out, e.fn)
	}
	return out
}

type listenerEntry struct {
	id ListenerID
	fn Listener
}

func notify(listeners []Listener, cs ChangeSet) {
	for _, l := range listeners {
		l(cs)
	}
}

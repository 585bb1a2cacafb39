package engine

// Event is a multi-cast event with no payload.
// Listeners are registered through Subscribe and removed through the
// returned Subscription, so every registration has a matching release.
type Event struct {
	inner EventWithArg[struct{}]
}

// Subscribe registers a callback and returns its subscription handle.
func (e *Event) Subscribe(callback func()) Subscription {
	if callback == nil {
		return Subscription{}
	}
	return e.inner.Subscribe(func(struct{}) { callback() })
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	e.inner.Invoke(struct{}{})
}

// GetListenerCount returns the number of registered listeners (for debugging)
func (e *Event) GetListenerCount() int {
	return e.inner.GetListenerCount()
}

// EventWithArg is a generic event with one argument.
// Listeners run in subscription order.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    uint64
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers a callback and returns its subscription handle.
func (e *EventWithArg[T]) Subscribe(callback func(T)) Subscription {
	if callback == nil {
		return Subscription{}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: callback})
	return Subscription{cancel: func() { e.remove(id) }}
}

func (e *EventWithArg[T]) remove(id uint64) {
	for i, l := range e.listeners {
		if l.id == id {
			// Copy so an Invoke already iterating the old slice is unaffected.
			next := make([]listener[T], 0, len(e.listeners)-1)
			next = append(next, e.listeners[:i]...)
			e.listeners = append(next, e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}

// Subscription is the handle returned by Subscribe.
// The zero value is valid and Unsubscribe on it does nothing.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the listener. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Active reports whether the subscription still has a registered listener.
func (s *Subscription) Active() bool {
	return s.cancel != nil
}

// Scope groups subscriptions acquired by one owner so they can be released
// together when the owner is torn down.
type Scope struct {
	subs []Subscription
}

// Add takes ownership of a subscription.
func (s *Scope) Add(sub Subscription) {
	s.subs = append(s.subs, sub)
}

// Len returns the number of subscriptions held.
func (s *Scope) Len() int {
	return len(s.subs)
}

// Close unsubscribes everything in reverse acquisition order.
func (s *Scope) Close() {
	for i := len(s.subs) - 1; i >= 0; i-- {
		s.subs[i].Unsubscribe()
	}
	s.subs = nil
}

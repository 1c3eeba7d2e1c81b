package godux

import "fmt"

// Observer receives state pushes from the observable bridge.
type Observer interface {
	Next(state any)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(state any)

// Next calls f with the pushed state.
func (f ObserverFunc) Next(state any) { f(state) }

// Subscription is the handle returned by the observable bridge.
type Subscription struct {
	unsubscribe UnsubscribeFunc
}

// Unsubscribe removes the observer. Idempotent, like every unsubscribe.
func (s Subscription) Unsubscribe() error {
	if s.unsubscribe == nil {
		return nil
	}
	return s.unsubscribe()
}

// StateObservable adapts Subscribe to a minimal push-stream protocol for
// interop with reactive libraries.
type StateObservable struct {
	store *Store
}

// Observable returns the bridge into the minimal push-stream protocol.
func (s *Store) Observable() *StateObservable {
	return &StateObservable{store: s}
}

// Observable returns the observable itself, the self-reference reactive
// libraries use to recognize the protocol.
func (o *StateObservable) Observable() *StateObservable { return o }

// Subscribe pushes the current state to the observer synchronously, then
// again after every committed dispatch, until unsubscribed.
func (o *StateObservable) Subscribe(observer Observer) (Subscription, error) {
	if observer == nil {
		return Subscription{}, fmt.Errorf("observe: %w", ErrNilObserver)
	}

	observeState := func() {
		observer.Next(o.store.GetState())
	}

	observeState()
	unsubscribe, err := o.store.Subscribe(observeState)
	if err != nil {
		return Subscription{}, err
	}
	return Subscription{unsubscribe: unsubscribe}, nil
}

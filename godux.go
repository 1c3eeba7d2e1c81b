// Package godux provides a predictable state container: a single in-process
// store that holds an application's entire state tree, permits mutation only
// through a strict dispatch protocol funnelling every change through a pure
// reducer, and broadcasts post-transition notifications to subscribed
// listeners. Most applications interact with this package by:
//  1. Writing one or more reducers (pure state transition functions)
//  2. Creating a Store via NewStore (optionally combining reducers and
//     layering enhancers such as ApplyMiddleware)
//  3. Dispatching actions and subscribing to state changes
//
// # Actions and reducers
//
// An action is a plain record — a string-keyed map or a methodless struct —
// carrying a type tag ("type" key or Type field) plus arbitrary payload
// fields. A Reducer maps (previousState, action) to the next state. Reducers
// must be pure, must never return nil, must return their initial state when
// fed nil state, and must return the previous state unchanged (same
// reference) when they ignore an action. nil is reserved to mean "absent":
// it is how the store asks a reducer for its initial state.
//
// # Dispatch and subscription
//
// Dispatch is fully synchronous: the reducer runs, the new state is
// committed, and every listener registered before the dispatch began is
// notified, all before Dispatch returns. Listeners may call back into the
// store (nested dispatch, subscribe, unsubscribe); mutations of the listener
// list made inside a listener take effect on the next dispatch, never the
// current one. Reducers may not call back into the store at all.
//
// The store is designed for single-goroutine cooperative use, mirroring its
// synchronous contract. It performs no locking; callers that share a store
// across goroutines must serialize access themselves.
//
// # Extension points
//
// Enhancers wrap store creation; ApplyMiddleware is the canonical enhancer,
// composing curried interceptors around dispatch. The middleware subpackage
// ships stock interceptors (logging, thunks, panic recovery), and the
// logging subpackage provides the structured warning/tracing sink used
// throughout.
package godux

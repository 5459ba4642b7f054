// Package middleware decorates history stores with at-rest protections.
package middleware

import "github.com/aretw0/cmdline/pkg/ports"

// Middleware wraps a HistoryStore to add behavior.
type Middleware func(ports.HistoryStore) ports.HistoryStore

// Chain applies mws to store, the first one outermost.
func Chain(store ports.HistoryStore, mws ...Middleware) ports.HistoryStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}

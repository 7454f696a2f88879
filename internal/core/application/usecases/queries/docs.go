// Package queries contains read operations over the storefront's orders.
// Queries never change state: they read the tracker registry, the order store
// and the per-user signal feeds.
package queries

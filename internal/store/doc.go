// Package store publishes catalog snapshots with atomic pointer swaps so
// request handlers never observe a partially built catalog.
package store

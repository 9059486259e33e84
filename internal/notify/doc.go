// Package notify pushes catalog updates to websocket subscribers so clients
// can refresh without polling.
package notify

// Package middleware provides HTTP middleware for request logging in W3C
// Extended Log Format, Prometheus metrics collection and CORS.
package middleware

// Package server runs the panel's HTTP server and its background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGTERM, SIGINT
// or SIGQUIT the HTTP server drains in-flight requests and the workers stop.
package server

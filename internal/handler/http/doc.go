// Package http implements the agent's local control API.
//
// It exposes route wiring, request handlers, and middleware for the loopback
// REST surface the tracker UI talks to: triggering sync passes, reading sync
// status, and the local CRUD write path. Requests are delegated to the service
// layer; this package only translates between HTTP and service calls.
package http

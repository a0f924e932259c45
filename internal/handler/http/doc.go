// Package http implements the REST transport of the reference document
// server.
//
// It exposes the document routes, the unauthenticated version endpoint used
// as a reachability probe, and the middleware chain (trace id, access
// logging, bearer authentication) that runs before requests reach the
// service layer.
package http

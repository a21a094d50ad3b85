// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the HTML page handlers of the inventory website,
// and middleware. Cross-cutting concerns such as request tracing, access
// logging, request metrics and response compression are handled in this
// package before requests are delegated to the service layer.
package http

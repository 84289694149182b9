// Package http implements the HTTP host of the dev server.
//
// It serves the index document with the resolved UI configuration injected,
// the static assets next to it, a build info endpoint, and the websocket used
// to push live-reload messages to browsers. Request tracing, access logging,
// panic recovery and compression are applied here before requests reach the
// service layer.
package http

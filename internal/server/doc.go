// Package server runs the dev server: the HTTP host and the background
// workers, including signal handling and graceful shutdown.
package server

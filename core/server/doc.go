// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) handles the server startup;
// this package only defines the settings it reads: the HTTP port, the API key
// protecting every route, and the request body limit.
package server

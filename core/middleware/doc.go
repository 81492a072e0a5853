// Package middleware contains HTTP middleware for the Fiber application.
//
//   - auth: API key validation protecting every feature route.
//   - rayid: a unique request id (RayID) injected into the context and the
//     response headers for tracing.
package middleware

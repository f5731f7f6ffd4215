// Package controller contains net/http middlewares and helper handlers the
// API server wraps around its routes.
//
//   - WithCORS: CORS headers for the web client and OPTIONS preflight.
//   - WithLogger: request ID, request-scoped logger and access log.
//   - PprofMux: net/http/pprof handlers under a prefix.
package controller

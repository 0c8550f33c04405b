// Package middleware provides HTTP middleware for the server.
package middleware

import "net/http"

// statusResponseWriter captures the status code and response size written by
// a handler.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (srw *statusResponseWriter) WriteHeader(code int) {
	srw.statusCode = code
	srw.ResponseWriter.WriteHeader(code)
}

func (srw *statusResponseWriter) Write(b []byte) (int, error) {
	n, err := srw.ResponseWriter.Write(b)
	srw.size += n
	return n, err
}

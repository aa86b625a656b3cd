// Package api contains tests that run against a real backend server.
//
// These tests require the backend server to be running before execution.
// They cover the public surface: health, pages, listings, and route guards.
//
// Usage:
//
//	# Start the backend server first
//	go run ./cmd/server serve
//
//	# Then run the API tests
//	go test -tags=api ./tests/api/... -v
//
// Environment Variables:
//
//	API_BASE_URL - Base URL of the server (default: http://localhost:8080)
package api

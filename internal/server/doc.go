// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, graceful shutdown and teardown of registered background
// workers.
package server

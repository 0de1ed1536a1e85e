// Package server runs the development wallet's HTTP transport.
//
// It covers startup, signal handling and graceful shutdown.
package server

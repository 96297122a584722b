// Package app wires the health service runtime: config, logging, HTTP
// routes and graceful shutdown.
package app

// Package connectors provides implementations of the Connector
// interface for document sources. Each connector knows how to load
// standards documents from a specific source type; the filesystem
// connector is the only one today.
package connectors

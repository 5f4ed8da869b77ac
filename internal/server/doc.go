// Package server runs the HTTP listener of the name service.
//
// [NewServer] binds the listening socket up front so that an address already
// in use is reported before the process claims to be serving. [Server.RunServer]
// then blocks until SIGINT, SIGTERM or SIGQUIT arrives and shuts the listener
// down gracefully, letting in-flight requests finish.
package server

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-name-gen startup sequence and handlers.
//
// All Msg* constants are human-readable message strings that are written into
// log entries to tell the operator what happened during startup. Keeping them
// in one place ensures consistent wording.
package app

const (
	// MsgLoadingNames is logged right before the word source is read.
	MsgLoadingNames = "loading names..."

	// MsgNamesFileCreated is logged when the names file did not exist and an
	// empty one was scaffolded. The process stops with exit code 0.
	MsgNamesFileCreated = "names file created -> fill it and restart"

	// MsgNamesFileCreateFailed is logged when the missing names file could
	// not be scaffolded. Startup continues with an empty word list.
	MsgNamesFileCreateFailed = "names file failed to create -> create it manually"

	// MsgWordListEmpty is logged when no usable word was loaded. The process
	// stops with a non-zero exit code.
	MsgWordListEmpty = "word list is empty -> stopping server"

	// MsgNamesLoaded is logged once the word list is ready.
	MsgNamesLoaded = "names loaded"

	// MsgStartingServer is logged right before the listener is bound.
	MsgStartingServer = "starting webservice..."
)

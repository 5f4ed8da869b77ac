// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrNamesEnvNotSet is returned by the environment word source when the
	// configured variable is not present in the process environment.
	ErrNamesEnvNotSet = errors.New("names environment variable is not set")

	// ErrNamesFileCreated is returned by the file word source when the names
	// file did not exist and an empty one was created in its place. It is a
	// first-run signal rather than a failure: the caller is expected to stop
	// cleanly and let the operator fill the file.
	ErrNamesFileCreated = errors.New("names file was created")

	// ErrWordListEmpty is returned when the source yields no usable word
	// after normalization.
	ErrWordListEmpty = errors.New("word list is empty")

	// ErrReadingNamesFile wraps I/O failures while reading an existing
	// names file.
	ErrReadingNamesFile = errors.New("error reading names file")
)

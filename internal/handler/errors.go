// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoNameService is returned by NewHandlers when the services carry no
// name service: every route except the static assets would fail, so the
// application refuses to start.
var errNoNameService = errors.New("no name service provided")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoRoutes is returned by NewRouterHandlers when it is given no
// destination registry.
var errNoRoutes = errors.New("no destination routes are provided")

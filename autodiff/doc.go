// Copyright 2026 The Axon ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff is the public API for reverse-mode automatic
// differentiation over an explicit operation graph.
package autodiff

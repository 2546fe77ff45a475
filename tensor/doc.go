// Copyright 2026 The Axon ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API for fixed-shape float64 buffers:
// shapes with NumPy-style broadcasting, elementwise and matrix
// operations, reductions, and the explicit in-place variants used for
// gradient accumulation and optimizer updates.
package tensor

// Copyright 2026 The Axon ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is the public API for building feed-forward classifiers:
// linear layers, ReLU and log-softmax stages, sequential composition,
// negative log-likelihood loss, and weight initialization.
package nn

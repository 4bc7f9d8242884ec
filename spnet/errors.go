// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import "errors"

var (
	// ErrConfigMismatch is returned by NewNetwork when the configuration is
	// inconsistent, e.g., the number of neuron types does not match the number
	// of neurons.  No Network is returned.
	ErrConfigMismatch = errors.New("configuration mismatch")

	// ErrInvalidInputShape is returned by Forward when an input vector does not
	// have the configured length.  No state is changed, so the call can be
	// retried with a corrected vector.
	ErrInvalidInputShape = errors.New("invalid input shape")
)

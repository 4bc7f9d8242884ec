// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spiking is the overall repository for a small recurrent network of
threshold-crossing spiking neurons whose input weights are learned by
spike-timing-dependent plasticity (STDP), implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* stdp: the STDP learning rule parameters, spike time traces, and the pairwise
weight change computation.

* spnet: the neuron state machine (refractory period, bursting, adaptation current,
type-specific threshold and sign adaptation), the neuron types, and the Network
that wires neurons together through normalized external and recurrent connectivity.

* examples: these actually compile into runnable programs.  examples/spikesim
drives a network with a noisy stimulus and saves the neuron state log.
*/
package spiking

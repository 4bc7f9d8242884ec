// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spnet simulates a small recurrent network of threshold-crossing
spiking neurons whose input weights learn by spike-timing-dependent
plasticity (see the stdp package).

A Neuron owns its dynamical state (membrane potential, threshold, refractory,
burst and adaptation counters), its input weights and its pre / post
synaptic spike time traces.  NeuronTypes (Pyramidal, Interneuron, Purkinje,
Sensory, Motor, Generic) fix different constants at construction time, and
Sensory and Interneuron types additionally adapt their threshold or sign
every step.

A Network owns a fixed list of Neurons plus dense external -> neuron and
neuron -> neuron connectivity tensors.  Each Forward call is one discrete
time step: the recurrent drive is computed from the previous step's outputs
(fed back by the caller), every neuron receives its external contribution
followed by the shared recurrent vector, and the per-neuron outputs form the
output vector for the step.  All random draws come from a generator owned by
the Network and seeded from NetConfig.Seed, so runs are reproducible.
*/
package spnet

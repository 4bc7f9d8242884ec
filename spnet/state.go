// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

// NeuronState is a read-only snapshot of a Neuron, for visualization and
// logging.  The json keys follow the snake_case names used by the
// plotting tools.
type NeuronState struct {
	Type     string    `json:"neuron_type"`
	Region   string    `json:"region"`
	Wts      []float32 `json:"weights"`
	Bias     float32   `json:"bias"`
	Vm       float32   `json:"membrane_potential"`
	Spike    int       `json:"spike"`
	Excit    bool      `json:"is_excitatory"`
	Thr      float32   `json:"threshold"`
	Refrac   float32   `json:"refractory_time"`
	OutScale float32   `json:"output_scaling"`
	BurstCtr int       `json:"burst_count"`
	AdaptCur float32   `json:"adaptation_current"`
}

// State returns a snapshot of the neuron state.  The weights are copied.
func (nrn *Neuron) State() NeuronState {
	return NeuronState{
		Type:     nrn.TypeTag,
		Region:   nrn.Region,
		Wts:      append([]float32(nil), nrn.Wts...),
		Bias:     nrn.Bias,
		Vm:       nrn.Vm,
		Spike:    nrn.Spike,
		Excit:    nrn.Excit,
		Thr:      nrn.Thr,
		Refrac:   nrn.Refrac,
		OutScale: nrn.Act.OutScale,
		BurstCtr: nrn.BurstCtr,
		AdaptCur: nrn.AdaptCur,
	}
}

// State returns the snapshots of all neurons, in index order
func (nt *Network) State() []NeuronState {
	st := make([]NeuronState, len(nt.Neurons))
	for ni, nrn := range nt.Neurons {
		st[ni] = nrn.State()
	}
	return st
}

// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"strings"

	"github.com/goki/ki/kit"
)

// NeuronTypes enumerates the biologically named neuron variants.
// The type fixes different constants at construction time (see TypeConsts),
// and selects the per-step adaptation and burst behavior.
type NeuronTypes int

//go:generate stringer -type=NeuronTypes

var KiT_NeuronTypes = kit.Enums.AddEnum(NeuronTypesN, kit.NotBitFlag, nil)

func (ev NeuronTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeuronTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The neuron types
const (
	// Generic is the default neuron, used for any unrecognized type tag
	Generic NeuronTypes = iota

	// Pyramidal is an excitatory principal cell that fires short bursts
	// using a shortened refractory window, up to Burst.Max spikes in a row
	Pyramidal

	// Interneuron is an inhibitory local cell, whose sign is recomputed every
	// step from the mean of its inputs
	Interneuron

	// Purkinje is an inhibitory cerebellar output cell with a high threshold
	Purkinje

	// Sensory is an excitatory input cell that lowers its threshold when its
	// recent inputs vary a lot, and raises it back when they are steady
	Sensory

	// Motor is an excitatory output cell, with larger output in brainstem
	Motor

	NeuronTypesN
)

// NeuronTypeFromTag returns the type for given tag, matched
// case-insensitively.  Unrecognized tags return Generic.
func NeuronTypeFromTag(tag string) NeuronTypes {
	tag = strings.TrimSpace(tag)
	for nt := Generic; nt < NeuronTypesN; nt++ {
		if strings.EqualFold(nt.String(), tag) {
			return nt
		}
	}
	return Generic
}

// Tag returns the lower-case type tag, e.g., "pyramidal"
func (nt NeuronTypes) Tag() string {
	return strings.ToLower(nt.String())
}

// TypeConsts are the construction-time constants that differ by NeuronTypes.
type TypeConsts struct {
	Thr   float32 `desc:"base firing threshold (mV)"`
	Leak  float32 `desc:"leak conductance"`
	Excit bool    `desc:"excitatory by default"`
}

// NeuronTypeConsts is the constant table consulted by Neuron.ConfigType.
// Region-specific overrides are applied on top of these.
var NeuronTypeConsts = [NeuronTypesN]TypeConsts{
	Generic:     {Thr: -65, Leak: 0.02, Excit: true},
	Pyramidal:   {Thr: -58, Leak: 0.02, Excit: true},
	Interneuron: {Thr: -65, Leak: 0.04, Excit: false},
	Purkinje:    {Thr: -50, Leak: 0.02, Excit: false},
	Sensory:     {Thr: -65, Leak: 0.02, Excit: true},
	Motor:       {Thr: -65, Leak: 0.02, Excit: true},
}

// Region tags with overrides
const (
	Cortex     = "cortex"
	Cerebellum = "cerebellum"
	Brainstem  = "brainstem"
)

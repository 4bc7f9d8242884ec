// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the spiking and adaptation params for spnet neurons

// ActParams are the basic threshold-crossing spike parameters.
// Potentials are in mV and times in msec.
type ActParams struct {
	Rest     float32 `def:"-70" desc:"resting membrane potential -- initial value of Vm"`
	Thr      float32 `def:"-65" desc:"base firing threshold -- the per-neuron Thr state starts here and is adapted from it (set per NeuronTypes)"`
	Reset    float32 `def:"-80" desc:"membrane potential after a spike"`
	MinVm    float32 `def:"-85" desc:"minimum membrane potential -- not currently used in the dynamics"`
	Leak     float32 `def:"0.02" desc:"leak conductance -- configured per NeuronTypes but not currently used in the dynamics, as Vm is not integrated from input current"`
	Refrac   float32 `def:"0.15" min:"0" desc:"refractory period in msec after a spike, during which the neuron cannot fire again"`
	OutScale float32 `def:"1" desc:"magnitude of the output on a spike step -- negated for inhibitory neurons"`
}

func (ac *ActParams) Update() {
}

func (ac *ActParams) Defaults() {
	ac.Rest = -70
	ac.Thr = -65
	ac.Reset = -80
	ac.MinVm = -85
	ac.Leak = 0.02
	ac.Refrac = 0.15
	ac.OutScale = 1
	ac.Update()
}

// AdaptParams are the spike-driven adaptation current parameters
type AdaptParams struct {
	Strength float32 `def:"0.0006" desc:"increment in adaptation current on each spike"`
	Decay    float32 `def:"0.8" desc:"rate of exponential decay of the adaptation current, per msec"`
}

func (ap *AdaptParams) Update() {
}

func (ap *AdaptParams) Defaults() {
	ap.Strength = 0.0006
	ap.Decay = 0.8
	ap.Update()
}

// DecayFactor returns the multiplicative decay of the adaptation current
// over one step of dt msec
func (ap *AdaptParams) DecayFactor(dt float32) float32 {
	return mat32.Exp(-ap.Decay * dt)
}

// BurstParams are the burst firing parameters for Pyramidal neurons
type BurstParams struct {
	Max        int     `def:"3" desc:"maximum number of consecutive spikes that use the shortened refractory window"`
	RefracMult float32 `def:"0.5" desc:"multiplier on the refractory period within a burst"`
}

func (bp *BurstParams) Update() {
}

func (bp *BurstParams) Defaults() {
	bp.Max = 3
	bp.RefracMult = 0.5
	bp.Update()
}

// SensoryParams control threshold adaptation in Sensory neurons, as a function
// of the variance of recent inputs
type SensoryParams struct {
	MaxHist int     `def:"5" desc:"number of most recent input vectors retained for computing input variance"`
	VarThr  float32 `def:"0.5" desc:"threshold on the mean per-input variance over the history -- above this the firing threshold is lowered, otherwise it is raised"`
	ThrStep float32 `def:"2" desc:"amount to lower or raise the threshold per step"`
	ThrMin  float32 `def:"-70" desc:"lowest the threshold can be adapted down to"`
	ThrMax  float32 `def:"10" desc:"threshold can be raised up to Act.Thr plus this amount"`
}

func (sp *SensoryParams) Update() {
}

func (sp *SensoryParams) Defaults() {
	sp.MaxHist = 5
	sp.VarThr = 0.5
	sp.ThrStep = 2
	sp.ThrMin = -70
	sp.ThrMax = 10
	sp.Update()
}

// AdaptThr returns the adapted threshold given current threshold,
// base threshold and input variance
func (sp *SensoryParams) AdaptThr(thr, baseThr, inVar float32) float32 {
	if inVar > sp.VarThr {
		return mat32.Max(sp.ThrMin, thr-sp.ThrStep)
	}
	return mat32.Min(thr+sp.ThrStep, baseThr+sp.ThrMax)
}

// InterParams control the sign of Interneuron outputs
type InterParams struct {
	ExcitThr float32 `def:"0.5" desc:"an interneuron is excitatory on a step when the mean of its inputs is at or below this value, and inhibitory above it"`
}

func (ip *InterParams) Update() {
}

func (ip *InterParams) Defaults() {
	ip.ExcitThr = 0.5
	ip.Update()
}

// DendParams split the input weights into proximal and distal dendritic segments
type DendParams struct {
	Split       float32 `def:"0.7" min:"0" max:"1" desc:"proportion of inputs (from the start) that are proximal -- the rest are distal"`
	DistalAtten float32 `def:"0.5" desc:"attenuation factor for distal inputs -- not currently applied, as Vm is not integrated from input current"`
}

func (dp *DendParams) Update() {
}

func (dp *DendParams) Defaults() {
	dp.Split = 0.7
	dp.DistalAtten = 0.5
	dp.Update()
}

// NProx returns the number of proximal inputs out of nIn
func (dp *DendParams) NProx(nIn int) int {
	np := int(float32(nIn) * dp.Split)
	if np > nIn {
		np = nIn
	}
	return np
}

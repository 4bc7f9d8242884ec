// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stdp provides pair-based spike-timing-dependent plasticity (STDP).

Every recorded pre-synaptic spike on an input line is paired with every
recorded post-synaptic spike of the receiving neuron.  When the post spike
follows the pre spike (causal order) the synapse is potentiated, and when it
precedes it the synapse is depressed, in both cases by an amount that decays
exponentially with the spike time difference.  Pairs further apart than the
learning Window contribute nothing, and spike times older than the Window are
pruned from the traces every step.
*/
package stdp

import "github.com/goki/mat32"

// Params are the STDP learning rule parameters.
// Times are in msec of simulation time.
type Params struct {
	On     bool    `def:"true" desc:"enable STDP weight changes"`
	Window float32 `def:"20" min:"0" desc:"width of the plasticity window in msec -- spike pairs further apart than this do not interact, and recorded spike times are pruned once they are this old"`
	APlus  float32 `def:"0.015" min:"0" desc:"amplitude of potentiation for pre-before-post pairs, scaled by exp(-dt / Window)"`
	AMinus float32 `def:"0.012" min:"0" desc:"amplitude of depression for post-before-pre pairs, scaled by exp(dt / Window)"`
	WtMin  float32 `def:"-0.6" desc:"minimum weight value -- weights are clipped to [WtMin, WtMax] after each update"`
	WtMax  float32 `def:"0.6" desc:"maximum weight value -- weights are clipped to [WtMin, WtMax] after each update"`
	ActThr float32 `def:"0.5" desc:"input value above which an input line counts as a pre-synaptic spike on that step"`
}

func (sp *Params) Update() {
}

func (sp *Params) Defaults() {
	sp.On = true
	sp.Window = 20
	sp.APlus = 0.015
	sp.AMinus = 0.012
	sp.WtMin = -0.6
	sp.WtMax = 0.6
	sp.ActThr = 0.5
	sp.Update()
}

// IsSpike returns true if input value counts as a pre-synaptic spike
func (sp *Params) IsSpike(in float32) bool {
	return in > sp.ActThr
}

// InWindow returns true if spike at time t is still recent relative to now
func (sp *Params) InWindow(now, t float32) bool {
	return now-t < sp.Window
}

// DWtPair returns the weight change for one spike pair separated by
// dt = post - pre.  Zero-lag pairs and pairs beyond the Window give 0.
func (sp *Params) DWtPair(dt float32) float32 {
	switch {
	case dt > 0 && dt <= sp.Window:
		return sp.APlus * mat32.Exp(-dt/sp.Window)
	case dt < 0 && -dt <= sp.Window:
		return -sp.AMinus * mat32.Exp(dt/sp.Window)
	}
	return 0
}

// DWt returns the summed weight change over all pairs of pre and post spike times
func (sp *Params) DWt(pre, post Trace) float32 {
	dwt := float32(0)
	for _, pt := range pre {
		for _, qt := range post {
			dwt += sp.DWtPair(qt - pt)
		}
	}
	return dwt
}

// ClipWt clips weight to the [WtMin, WtMax] range
func (sp *Params) ClipWt(wt float32) float32 {
	return mat32.Min(mat32.Max(wt, sp.WtMin), sp.WtMax)
}

// WtFmDWt returns the new weight after adding dwt, clipped to range
func (sp *Params) WtFmDWt(wt, dwt float32) float32 {
	return sp.ClipWt(wt + dwt)
}

// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/emer/emergent/params"
	"github.com/emer/spiking/stdp"
	"github.com/goki/mat32"
	"gonum.org/v1/gonum/stat"
)

// spnet.Neuron is one threshold-crossing spiking neuron with its own input
// weights, learned by STDP.  It owns all of its state -- nothing outside
// the neuron mutates it.
type Neuron struct {
	Nm      string      `desc:"name of the neuron, used for params Sel #Name matching"`
	Type    NeuronTypes `desc:"neuron type -- determines construction-time constants and per-step adaptation"`
	TypeTag string      `desc:"type tag as given at construction, in lower case -- unrecognized tags are kept here but behave as Generic"`
	Region  string      `desc:"brain region tag, in lower case -- some types have region-specific constants"`
	NIn     int         `inactive:"+" desc:"number of inputs -- fixed at construction"`

	Act   ActParams     `view:"inline" desc:"spiking parameters"`
	Adapt AdaptParams   `view:"inline" desc:"spike-driven adaptation current parameters"`
	Burst BurstParams   `view:"inline" desc:"burst firing parameters (Pyramidal only)"`
	Sens  SensoryParams `view:"inline" desc:"input history and threshold adaptation parameters (adaptation for Sensory only)"`
	Inter InterParams   `view:"inline" desc:"sign adaptation parameters (Interneuron only)"`
	Dend  DendParams    `view:"inline" desc:"proximal / distal dendrite split"`
	STDP  stdp.Params   `view:"inline" desc:"spike-timing-dependent plasticity parameters"`

	Excit    bool    `desc:"whether the output is positive (excitatory) or negated (inhibitory) -- fixed except for Interneuron, which recomputes it every step"`
	Vm       float32 `desc:"membrane potential (mV) -- only changes by reset on a spike"`
	Thr      float32 `desc:"current firing threshold (mV)"`
	Refrac   float32 `desc:"remaining refractory time (msec), >= 0"`
	Spike    int     `desc:"1 if the neuron spiked on the last step, else 0"`
	BurstCtr int     `desc:"number of consecutive burst spikes, 0..Burst.Max"`
	AdaptCur float32 `desc:"adaptation current, decays geometrically every step"`
	Bias     float32 `desc:"bias -- part of the neuron state but not currently used in the dynamics"`

	Wts       []float32    `desc:"input weights, one per input, in [STDP.WtMin, STDP.WtMax] after any update"`
	PreTimes  []stdp.Trace `view:"-" desc:"pre-synaptic spike times per input line, within STDP.Window of now"`
	PostTimes stdp.Trace   `view:"-" desc:"post-synaptic spike times, within STDP.Window of now"`
	Hist      [][]float32  `view:"-" desc:"most recent input vectors, oldest first, up to Sens.MaxHist"`
	Tm        Time         `view:"inline" desc:"time state -- spike times are in Tm.Time units"`
}

// NewNeuron returns a new neuron with nIn inputs, of given type and region,
// stepping dt msec per Forward call.  Weights and bias are drawn from rnd
// -- if nil, a generator with a fixed seed is used.
func NewNeuron(nIn int, typ, region string, dt float32, rnd *rand.Rand) *Neuron {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	nrn := &Neuron{}
	nrn.TypeTag = strings.ToLower(strings.TrimSpace(typ))
	nrn.Type = NeuronTypeFromTag(nrn.TypeTag)
	nrn.Region = strings.ToLower(strings.TrimSpace(region))
	nrn.Tm.Dt = dt
	nrn.Defaults()
	nrn.Build(nIn)
	nrn.InitWts(rnd)
	nrn.ConfigType()
	nrn.InitActs()
	return nrn
}

// Defaults sets all the default parameters
func (nrn *Neuron) Defaults() {
	nrn.Act.Defaults()
	nrn.Adapt.Defaults()
	nrn.Burst.Defaults()
	nrn.Sens.Defaults()
	nrn.Inter.Defaults()
	nrn.Dend.Defaults()
	nrn.STDP.Defaults()
	if nrn.Tm.Dt <= 0 {
		nrn.Tm.Defaults()
	}
}

// UpdateParams must be called after any changes to parameters
func (nrn *Neuron) UpdateParams() {
	nrn.Act.Update()
	nrn.Adapt.Update()
	nrn.Burst.Update()
	nrn.Sens.Update()
	nrn.Inter.Update()
	nrn.Dend.Update()
	nrn.STDP.Update()
}

// Build allocates the weights and spike time traces for nIn inputs
func (nrn *Neuron) Build(nIn int) {
	nrn.NIn = nIn
	nrn.Wts = make([]float32, nIn)
	nrn.PreTimes = make([]stdp.Trace, nIn)
}

// InitWts draws random gaussian weights (sd .3) and bias (sd .2)
func (nrn *Neuron) InitWts(rnd *rand.Rand) {
	for i := range nrn.Wts {
		nrn.Wts[i] = float32(rnd.NormFloat64()) * 0.3
	}
	nrn.Bias = float32(rnd.NormFloat64()) * 0.2
}

// ConfigType applies the NeuronTypeConsts table and region-specific
// overrides for this neuron's type.  Called once at construction.
func (nrn *Neuron) ConfigType() {
	tc := NeuronTypeConsts[nrn.Type]
	nrn.Act.Thr = tc.Thr
	nrn.Act.Leak = tc.Leak
	switch nrn.Type {
	case Pyramidal:
		if nrn.Region == Cortex {
			nrn.Bias = 180
		}
	case Interneuron:
		nrn.Bias = 0
	case Motor:
		if nrn.Region == Brainstem {
			nrn.Act.OutScale = 3
		}
	}
}

// InitThr returns the initial firing threshold: Act.Thr, except for
// Purkinje neurons in cerebellum, which start lower at -45.
func (nrn *Neuron) InitThr() float32 {
	if nrn.Type == Purkinje && nrn.Region == Cerebellum {
		return -45
	}
	return nrn.Act.Thr
}

// InitActs initializes the dynamical state to rest, and clears the spike
// time traces, input history and time.  Weights and bias are not changed.
func (nrn *Neuron) InitActs() {
	nrn.Vm = nrn.Act.Rest
	nrn.Thr = nrn.InitThr()
	nrn.Refrac = 0
	nrn.Spike = 0
	nrn.BurstCtr = 0
	nrn.AdaptCur = 0
	nrn.Excit = NeuronTypeConsts[nrn.Type].Excit
	for i := range nrn.PreTimes {
		nrn.PreTimes[i].Reset()
	}
	nrn.PostTimes.Reset()
	nrn.Hist = nrn.Hist[:0]
	nrn.Tm.Reset()
}

//////////////////////////////////////////////////////////////////////////////////////
//  Params styling

func (nrn *Neuron) Name() string     { return nrn.Nm }
func (nrn *Neuron) SetName(nm string) { nrn.Nm = nm }
func (nrn *Neuron) Class() string    { return nrn.TypeTag + " " + nrn.Region }
func (nrn *Neuron) TypeName() string { return "Neuron" } // type category, for params..

// ApplyParams applies given parameter style Sheet to this neuron.
// Calls UpdateParams if anything set to ensure derived parameters are all updated.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (nrn *Neuron) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(nrn, setMsg)
	if app {
		nrn.UpdateParams()
	}
	return app, err
}

//////////////////////////////////////////////////////////////////////////////////////
//  Step

// Forward runs one discrete step of the neuron given this step's input
// vector, returning the output: Act.OutScale on a spike step (negated if
// not Excit), else 0.  Returns ErrInvalidInputShape, without changing any
// state, if len(inputs) != NIn.
func (nrn *Neuron) Forward(inputs []float32) (float32, error) {
	if len(inputs) != nrn.NIn {
		return 0, fmt.Errorf("spnet.Neuron %s Forward: got %d inputs, configured for %d: %w", nrn.Nm, len(inputs), nrn.NIn, ErrInvalidInputShape)
	}
	now := nrn.Tm.Time
	nrn.AddHist(inputs)
	nrn.PreSpikes(inputs, now)
	nrn.AdaptBehavior(inputs)

	nrn.Refrac = mat32.Max(nrn.Refrac-nrn.Tm.Dt, 0)
	nrn.AdaptCur *= nrn.Adapt.DecayFactor(nrn.Tm.Dt)

	out := float32(0)
	if nrn.Refrac <= 0 && nrn.Vm >= nrn.Thr {
		nrn.Spike = 1
		nrn.Vm = nrn.Act.Reset
		nrn.Refrac = nrn.Act.Refrac
		nrn.AdaptCur += nrn.Adapt.Strength
		nrn.PostTimes.Add(now)
		if nrn.Type == Pyramidal && nrn.BurstCtr < nrn.Burst.Max {
			nrn.BurstCtr++
			nrn.Refrac = nrn.Burst.RefracMult * nrn.Act.Refrac
		}
		if nrn.STDP.On {
			nrn.UpdateWeights()
		}
		out = nrn.Act.OutScale
	} else {
		nrn.Spike = 0
		nrn.BurstCtr = 0
	}
	nrn.PostTimes.Prune(&nrn.STDP, now)
	nrn.Tm.StepInc()

	if !nrn.Excit && out != 0 {
		out = -out
	}
	return out, nil
}

// AddHist adds a copy of inputs to the input history, dropping the
// oldest entries beyond Sens.MaxHist
func (nrn *Neuron) AddHist(inputs []float32) {
	in := make([]float32, len(inputs))
	copy(in, inputs)
	nrn.Hist = append(nrn.Hist, in)
	if over := len(nrn.Hist) - nrn.Sens.MaxHist; over > 0 {
		nrn.Hist = nrn.Hist[over:]
	}
}

// PreSpikes records a pre-synaptic spike at time now on each input line
// whose value is over STDP.ActThr, and prunes all lines to the STDP.Window
func (nrn *Neuron) PreSpikes(inputs []float32, now float32) {
	for i, in := range inputs {
		if nrn.STDP.IsSpike(in) {
			nrn.PreTimes[i].Add(now)
		}
		nrn.PreTimes[i].Prune(&nrn.STDP, now)
	}
}

// AdaptBehavior runs the type-specific adaptation before the spike test:
// Sensory neurons adapt their threshold to the variance of recent inputs,
// and Interneurons recompute their sign from the mean of this step's inputs.
func (nrn *Neuron) AdaptBehavior(inputs []float32) {
	switch nrn.Type {
	case Sensory:
		if len(nrn.Hist) < 2 {
			return
		}
		nrn.Thr = nrn.Sens.AdaptThr(nrn.Thr, nrn.Act.Thr, nrn.HistVar())
	case Interneuron:
		nrn.Excit = MeanF32(inputs) <= nrn.Inter.ExcitThr
	}
}

// HistVar returns the mean over inputs of the population variance of
// each input across the input history
func (nrn *Neuron) HistVar() float32 {
	nh := len(nrn.Hist)
	if nh == 0 || nrn.NIn == 0 {
		return 0
	}
	col := make([]float64, nh)
	sum := 0.0
	for i := 0; i < nrn.NIn; i++ {
		for hi, in := range nrn.Hist {
			col[hi] = float64(in[i])
		}
		sum += stat.PopVariance(col, nil)
	}
	return float32(sum / float64(nrn.NIn))
}

// UpdateWeights applies the STDP rule to every input line, pairing all of
// its recorded pre-synaptic spike times with all post-synaptic spike times,
// and clips the resulting weights to range.  Called on each spike.
func (nrn *Neuron) UpdateWeights() {
	for i := range nrn.Wts {
		dwt := nrn.STDP.DWt(nrn.PreTimes[i], nrn.PostTimes)
		nrn.Wts[i] = nrn.STDP.WtFmDWt(nrn.Wts[i], dwt)
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  Weights

// SetWts sets the weights from given values, which must have NIn values
func (nrn *Neuron) SetWts(wts []float32) error {
	if len(wts) != nrn.NIn {
		return fmt.Errorf("spnet.Neuron %s SetWts: got %d weights, configured for %d: %w", nrn.Nm, len(wts), nrn.NIn, ErrInvalidInputShape)
	}
	copy(nrn.Wts, wts)
	return nil
}

// Proximal returns a copy of the proximal segment of the weights
func (nrn *Neuron) Proximal() []float32 {
	np := nrn.Dend.NProx(nrn.NIn)
	return append([]float32(nil), nrn.Wts[:np]...)
}

// Distal returns a copy of the distal segment of the weights
func (nrn *Neuron) Distal() []float32 {
	np := nrn.Dend.NProx(nrn.NIn)
	return append([]float32(nil), nrn.Wts[np:]...)
}

// MeanF32 returns the mean of the values, 0 if empty
func MeanF32(vals []float32) float32 {
	if len(vals) == 0 {
		return 0
	}
	sum := float32(0)
	for _, v := range vals {
		sum += v
	}
	return sum / float32(len(vals))
}

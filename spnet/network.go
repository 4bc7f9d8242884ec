// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/params"
	"github.com/emer/etable/etensor"
)

// NetConfig is the configuration for building a Network
type NetConfig struct {
	NNeurons int      `min:"1" desc:"number of neurons in the network"`
	NInputs  int      `min:"1" desc:"number of external inputs to every neuron -- each neuron has NInputs + NNeurons input lines"`
	Types    []string `desc:"type tag for each neuron -- if empty, the first 4/5 are pyramidal and the rest interneuron, otherwise must have NNeurons entries"`
	Region   string   `def:"cortex" desc:"region tag applied to all neurons"`
	Seed     int64    `def:"42" desc:"seed for the random weights and connectivity -- the same seed gives the same network"`
	TimeStep float32  `def:"0.5" min:"0" desc:"msec per step for all neurons"`
}

// Defaults sets the default values, leaving the sizes and types alone
func (nc *NetConfig) Defaults() {
	nc.Region = Cortex
	nc.Seed = 42
	nc.TimeStep = 0.5
}

// Update fills in zero-valued Region and TimeStep with defaults
func (nc *NetConfig) Update() {
	if nc.Region == "" {
		nc.Region = Cortex
	}
	if nc.TimeStep == 0 {
		nc.TimeStep = 0.5
	}
}

// TypeTags returns the type tag of every neuron, using the default
// pyramidal / interneuron split if Types is empty.  Returns an error
// wrapping ErrConfigMismatch if Types does not have NNeurons entries.
func (nc *NetConfig) TypeTags() ([]string, error) {
	if len(nc.Types) == 0 {
		tags := make([]string, nc.NNeurons)
		npyr := nc.NNeurons * 4 / 5
		for i := range tags {
			if i < npyr {
				tags[i] = Pyramidal.Tag()
			} else {
				tags[i] = Interneuron.Tag()
			}
		}
		return tags, nil
	}
	if len(nc.Types) != nc.NNeurons {
		return nil, fmt.Errorf("spnet.NetConfig: %d neuron types for %d neurons: %w", len(nc.Types), nc.NNeurons, ErrConfigMismatch)
	}
	return nc.Types, nil
}

// Validate checks the sizes and time step
func (nc *NetConfig) Validate() error {
	if nc.NNeurons <= 0 || nc.NInputs <= 0 {
		return fmt.Errorf("spnet.NetConfig: sizes must be positive, got NNeurons: %d NInputs: %d: %w", nc.NNeurons, nc.NInputs, ErrConfigMismatch)
	}
	if nc.TimeStep <= 0 {
		return fmt.Errorf("spnet.NetConfig: TimeStep must be positive, got %g: %w", nc.TimeStep, ErrConfigMismatch)
	}
	_, err := nc.TypeTags()
	return err
}

// The boosted neuron is the one fixed slot that can fire from rest: there
// is no integration of input current into Vm, so without the lowered
// threshold no neuron would ever cross it.  The boost is applied at build
// and the threshold part again on every InitActs.
const (
	// BoostIdx is the index of the boosted neuron -- only applies if the
	// network has more than BoostIdx neurons
	BoostIdx = 6

	// BoostBias is added to the bias of the boosted neuron
	BoostBias = 50

	// BoostThr is the firing threshold of the boosted neuron
	BoostThr = -70
)

// spnet.Network is a recurrent circuit of spiking neurons.  Each neuron
// receives the external inputs, weighted by its row of ExtCon, plus the
// recurrent input RecCon * outputs from the previous step, which is the
// same for every neuron.
type Network struct {
	Nm      string           `desc:"overall name of network -- helps discriminate if there are multiple"`
	Config  NetConfig        `view:"inline" desc:"configuration the network was built from"`
	Con     ConParams        `view:"inline" desc:"connectivity parameters"`
	Neurons []*Neuron        `desc:"the neurons, in update order"`
	ExtCon  *etensor.Float32 `view:"no-inline" desc:"external connectivity [NNeurons][NInputs] -- each neuron's external inputs are multiplied elementwise by its row"`
	RecCon  *etensor.Float32 `view:"no-inline" desc:"recurrent connectivity [NNeurons][NNeurons] -- zero diagonal"`
	Rand    *rand.Rand       `view:"-" desc:"random number generator owned by the network, seeded from Config.Seed"`
	Step    int              `inactive:"+" desc:"number of Forward steps taken since build or InitActs"`
	recIn   []float32        `view:"-" desc:"recurrent input scratch buffer"`
	nrnIn   []float32        `view:"-" desc:"per-neuron full input scratch buffer"`
}

// NewNetwork returns a new network built from cfg, or an error wrapping
// ErrConfigMismatch if the configuration is inconsistent.
func NewNetwork(cfg *NetConfig) (*Network, error) {
	if cfg == nil {
		return nil, fmt.Errorf("spnet.NewNetwork: nil config: %w", ErrConfigMismatch)
	}
	nt := &Network{Nm: "SpikeNet"}
	nt.Config = *cfg
	nt.Config.Update()
	nt.Con.Defaults()
	if err := nt.Build(); err != nil {
		return nil, err
	}
	return nt, nil
}

// NNeurons returns the number of neurons
func (nt *Network) NNeurons() int {
	return len(nt.Neurons)
}

// NInputs returns the number of external inputs
func (nt *Network) NInputs() int {
	return nt.Config.NInputs
}

// Build constructs the neurons and connectivity from Config and Con,
// drawing everything from a new generator seeded with Config.Seed.
// Order: neuron weights, external connectivity, recurrent connectivity.
func (nt *Network) Build() error {
	if err := nt.Config.Validate(); err != nil {
		return err
	}
	tags, _ := nt.Config.TypeTags()
	n := nt.Config.NNeurons
	nin := nt.Config.NInputs
	nt.Rand = rand.New(rand.NewSource(nt.Config.Seed))

	nt.Neurons = make([]*Neuron, n)
	for ni := range nt.Neurons {
		nrn := NewNeuron(nin+n, tags[ni], nt.Config.Region, nt.Config.TimeStep, nt.Rand)
		nrn.SetName(fmt.Sprintf("Neuron%d", ni))
		nt.Neurons[ni] = nrn
	}

	nt.ExtCon = NewRandCon(nt.Rand, n, nin, nt.Con.ExtKeep, nt.Con.Norm, []string{"Recv", "Input"})
	nt.RecCon = NewRandCon(nt.Rand, n, n, nt.Con.RecKeep, nt.Con.Norm, []string{"Recv", "Send"})
	ZeroDiag(nt.RecCon)
	NormRows(nt.ExtCon, nt.Con.Norm)
	NormRows(nt.RecCon, nt.Con.Norm)
	nt.InhibCon()
	nt.Boost()

	nt.recIn = make([]float32, n)
	nt.nrnIn = make([]float32, nin+n)
	nt.Step = 0
	return nil
}

// InhibCon scales both connectivity rows of every neuron that is
// inhibitory at construction by Con.InhibScale
func (nt *Network) InhibCon() {
	for ni, nrn := range nt.Neurons {
		if nrn.Excit {
			continue
		}
		ScaleRow(nt.ExtCon, ni, nt.Con.InhibScale)
		ScaleRow(nt.RecCon, ni, nt.Con.InhibScale)
	}
}

// BoostNeuron returns the boosted neuron, nil if the network is too small
func (nt *Network) BoostNeuron() *Neuron {
	if len(nt.Neurons) <= BoostIdx {
		return nil
	}
	return nt.Neurons[BoostIdx]
}

// Boost adds BoostBias to the bias of the boosted neuron and sets its
// threshold to BoostThr.  Called once by Build.
func (nt *Network) Boost() {
	nrn := nt.BoostNeuron()
	if nrn == nil {
		return
	}
	nrn.Bias += BoostBias
	nrn.Thr = BoostThr
}

// InitActs re-initializes the dynamical state of all neurons, keeping the
// learned weights and the connectivity.  The boosted neuron gets its
// lowered threshold back.
func (nt *Network) InitActs() {
	for _, nrn := range nt.Neurons {
		nrn.InitActs()
	}
	if nrn := nt.BoostNeuron(); nrn != nil {
		nrn.Thr = BoostThr
	}
	nt.Step = 0
}

// Forward runs one step of the network given the external inputs and the
// outputs of the previous step (nil = all zero), returning the output of
// every neuron.  Returns an error wrapping ErrInvalidInputShape, before
// any neuron is updated, if either vector has the wrong length.
func (nt *Network) Forward(inputs, prev []float32) ([]float32, error) {
	n := len(nt.Neurons)
	nin := nt.Config.NInputs
	if len(inputs) != nin {
		return nil, fmt.Errorf("spnet.Network %s Forward: got %d inputs, configured for %d: %w", nt.Nm, len(inputs), nin, ErrInvalidInputShape)
	}
	if prev != nil && len(prev) != n {
		return nil, fmt.Errorf("spnet.Network %s Forward: got %d previous outputs, configured for %d neurons: %w", nt.Nm, len(prev), n, ErrInvalidInputShape)
	}
	if prev == nil {
		for i := range nt.recIn {
			nt.recIn[i] = 0
		}
	} else {
		MatVec(nt.RecCon, prev, nt.recIn)
	}
	copy(nt.nrnIn[nin:], nt.recIn)

	outs := make([]float32, n)
	for ni, nrn := range nt.Neurons {
		ext := ConRow(nt.ExtCon, ni)
		for i, in := range inputs {
			nt.nrnIn[i] = ext[i] * in
		}
		out, err := nrn.Forward(nt.nrnIn)
		if err != nil {
			return nil, err
		}
		outs[ni] = out
	}
	nt.Step++
	return outs, nil
}

// NSpiking returns the number of non-zero outputs
func (nt *Network) NSpiking(outs []float32) int {
	ns := 0
	for _, out := range outs {
		if out != 0 {
			ns++
		}
	}
	return ns
}

// ApplyParams applies given parameter style Sheet to all neurons.
// If setMsg is true, then a message is printed to confirm each parameter that is set.
// it always prints a message if a parameter fails to be set.
// returns true if any params were set, and error if there were any errors.
func (nt *Network) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	var rerr error
	for _, nrn := range nt.Neurons {
		app, err := nrn.ApplyParams(pars, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			log.Println(err)
			rerr = err
		}
	}
	return applied, rerr
}

// SizeReport returns a string reporting the size of
// each neuron and the connectivity, and overall.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	nrnMem := 0
	for _, nrn := range nt.Neurons {
		nmem := int(unsafe.Sizeof(Neuron{})) + len(nrn.Wts)*4
		for _, tr := range nrn.PreTimes {
			nmem += cap(tr) * 4
		}
		nrnMem += nmem
	}
	conMem := (len(nt.ExtCon.Values) + len(nt.RecCon.Values)) * 4
	fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v\n", nt.Nm, len(nt.Neurons), (datasize.ByteSize)(nrnMem).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Cons: %d\t ConMem: %v\n", "ExtCon", len(nt.ExtCon.Values), (datasize.ByteSize)(len(nt.ExtCon.Values)*4).HumanReadable())
	fmt.Fprintf(&b, "%14s:\t Cons: %d\t ConMem: %v\n", "RecCon", len(nt.RecCon.Values), (datasize.ByteSize)(len(nt.RecCon.Values)*4).HumanReadable())
	fmt.Fprintf(&b, "\n\n%14s:\t Neurons: %d\t NeurMem: %v \t Cons: %d \t ConMem: %v\n", "Total", len(nt.Neurons), (datasize.ByteSize)(nrnMem).HumanReadable(), len(nt.ExtCon.Values)+len(nt.RecCon.Values), (datasize.ByteSize)(conMem).HumanReadable())
	return b.String()
}

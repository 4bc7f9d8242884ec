// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/emer/emergent/params"
	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"
)

// normTol is the tolerance for row norms of the connectivity
const normTol = float32(1.0e-3)

var testStim = []float32{100, 50, -20, 80, 30}

func newTestNet(t *testing.T) *Network {
	cfg := &NetConfig{NNeurons: 10, NInputs: 5}
	cfg.Defaults()
	nt, err := NewNetwork(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return nt
}

func TestNetConfig(t *testing.T) {
	nt := newTestNet(t)
	if nt.NNeurons() != 10 || nt.NInputs() != 5 {
		t.Errorf("sizes: %d %d\n", nt.NNeurons(), nt.NInputs())
	}
	for ni, nrn := range nt.Neurons {
		cortp := Pyramidal
		if ni >= 8 {
			cortp = Interneuron
		}
		if nrn.Type != cortp {
			t.Errorf("neuron %d type: %v, should be: %v\n", ni, nrn.Type, cortp)
		}
		if nrn.NIn != 15 || nrn.Region != Cortex {
			t.Errorf("neuron %d nin: %d region: %s\n", ni, nrn.NIn, nrn.Region)
		}
	}
	if nt.Neurons[3].Name() != "Neuron3" {
		t.Errorf("name: %s\n", nt.Neurons[3].Name())
	}

	cfg := &NetConfig{NNeurons: 3, NInputs: 2, Types: []string{"sensory", "Motor", "purkinje"}, Region: "Brainstem"}
	nt3, err := NewNetwork(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if nt3.Neurons[1].Type != Motor || nt3.Neurons[1].Act.OutScale != 3 || nt3.Neurons[2].Excit {
		t.Errorf("explicit types not applied: %+v\n", nt3.State())
	}
	if nt3.BoostNeuron() != nil {
		t.Errorf("small network should have no boosted neuron\n")
	}
}

func TestNetConfigMismatch(t *testing.T) {
	cfgs := []*NetConfig{
		{NNeurons: 10, NInputs: 5, Types: []string{"pyramidal", "interneuron", "sensory"}},
		{NNeurons: 0, NInputs: 5},
		{NNeurons: 10, NInputs: -1},
		{NNeurons: 10, NInputs: 5, TimeStep: -1},
		nil,
	}
	for i, cfg := range cfgs {
		nt, err := NewNetwork(cfg)
		if !errors.Is(err, ErrConfigMismatch) {
			t.Errorf("cfg %d: expected ErrConfigMismatch, got: %v\n", i, err)
		}
		if nt != nil {
			t.Errorf("cfg %d: no network should be returned on error\n", i)
		}
	}
}

func TestNetCon(t *testing.T) {
	nt := newTestNet(t)
	for ni := 0; ni < 10; ni++ {
		if rc := nt.RecCon.Value([]int{ni, ni}); rc != 0 {
			t.Errorf("recurrent diagonal %d not zero: %v\n", ni, rc)
		}
	}
	cons := []*etensor.Float32{nt.ExtCon, nt.RecCon}
	for ci, con := range cons {
		for ni, nrn := range nt.Neurons {
			rn := RowNorm(con, ni)
			if rn == 0 {
				continue
			}
			cornorm := nt.Con.Norm
			if !nrn.Excit {
				cornorm *= -nt.Con.InhibScale
				for _, v := range ConRow(con, ni) {
					if v > 0 {
						t.Errorf("con %d inhibitory row %d has positive value: %v\n", ci, ni, v)
					}
				}
			}
			if dif := mat32.Abs(rn - cornorm); dif > normTol {
				t.Errorf("con %d row %d norm: %v, cornorm: %v\n", ci, ni, rn, cornorm)
			}
		}
	}
}

func TestNetBoost(t *testing.T) {
	nt := newTestNet(t)
	bn := nt.BoostNeuron()
	if bn != nt.Neurons[6] {
		t.Fatalf("boosted neuron should be index 6\n")
	}
	if bn.Thr != -70 || bn.Bias != 230 {
		t.Errorf("boost: thr: %v bias: %v\n", bn.Thr, bn.Bias)
	}
	if nt.Neurons[5].Thr != -58 || nt.Neurons[5].Bias != 180 {
		t.Errorf("neuron 5 should not be boosted: thr: %v bias: %v\n", nt.Neurons[5].Thr, nt.Neurons[5].Bias)
	}
}

func TestNetForward(t *testing.T) {
	nt := newTestNet(t)
	outs, err := nt.Forward(testStim, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 10 {
		t.Fatalf("outs len: %d\n", len(outs))
	}
	for ni, out := range outs {
		if out != 0 && out != 1 && out != -1 {
			t.Errorf("out %d: %v not in {-1, 0, 1}\n", ni, out)
		}
	}
	if outs[6] != 1 || nt.NSpiking(outs) != 1 {
		t.Errorf("only the boosted neuron should spike from rest: %v\n", outs)
	}

	outs, err = nt.Forward(testStim, outs)
	if err != nil {
		t.Fatal(err)
	}
	if nt.NSpiking(outs) != 0 {
		t.Errorf("no neuron should spike after reset: %v\n", outs)
	}
	if nt.Step != 2 || nt.Neurons[0].Tm.Step != 2 {
		t.Errorf("steps: %d %d\n", nt.Step, nt.Neurons[0].Tm.Step)
	}

	nt.InitActs()
	if nt.Neurons[6].Thr != BoostThr || nt.Step != 0 {
		t.Errorf("InitActs should restore boosted threshold: %v\n", nt.Neurons[6].Thr)
	}
	outs, _ = nt.Forward(testStim, nil)
	if outs[6] != 1 {
		t.Errorf("boosted neuron should spike again after InitActs: %v\n", outs)
	}
}

func TestNetForwardInvalid(t *testing.T) {
	nt := newTestNet(t)
	before := nt.State()
	if _, err := nt.Forward([]float32{1, 2}, nil); !errors.Is(err, ErrInvalidInputShape) {
		t.Errorf("expected ErrInvalidInputShape for inputs, got: %v\n", err)
	}
	if _, err := nt.Forward(testStim, make([]float32, 3)); !errors.Is(err, ErrInvalidInputShape) {
		t.Errorf("expected ErrInvalidInputShape for previous outputs, got: %v\n", err)
	}
	if !reflect.DeepEqual(before, nt.State()) || nt.Step != 0 {
		t.Errorf("state changed on invalid input\n")
	}
}

func TestNetDeterministic(t *testing.T) {
	nt1 := newTestNet(t)
	nt2 := newTestNet(t)
	if !reflect.DeepEqual(nt1.ExtCon.Values, nt2.ExtCon.Values) || !reflect.DeepEqual(nt1.RecCon.Values, nt2.RecCon.Values) {
		t.Errorf("same seed should give same connectivity\n")
	}
	if !reflect.DeepEqual(nt1.State(), nt2.State()) {
		t.Errorf("same seed should give same neurons\n")
	}
	prv1, prv2 := []float32(nil), []float32(nil)
	for i := 0; i < 5; i++ {
		prv1, _ = nt1.Forward(testStim, prv1)
		prv2, _ = nt2.Forward(testStim, prv2)
		if !reflect.DeepEqual(prv1, prv2) {
			t.Errorf("step %d outputs differ: %v %v\n", i, prv1, prv2)
		}
	}

	cfg := &NetConfig{NNeurons: 10, NInputs: 5, Seed: 7}
	nt3, err := NewNetwork(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(nt1.ExtCon.Values, nt3.ExtCon.Values) {
		t.Errorf("different seed should give different connectivity\n")
	}
}

func TestNetState(t *testing.T) {
	nt := newTestNet(t)
	st := nt.State()
	if len(st) != 10 {
		t.Fatalf("state len: %d\n", len(st))
	}
	if st[0].Type != "pyramidal" || st[9].Type != "interneuron" || st[9].Excit {
		t.Errorf("state types: %s %s excit: %v\n", st[0].Type, st[9].Type, st[9].Excit)
	}
	if st[6].Thr != -70 || len(st[6].Wts) != 15 || st[6].OutScale != 1 {
		t.Errorf("state 6: %+v\n", st[6])
	}
	st[6].Wts[0] = 100
	if nt.Neurons[6].Wts[0] == 100 {
		t.Errorf("state weights should be a copy\n")
	}
}

func TestNetApplyParams(t *testing.T) {
	nt := newTestNet(t)
	sheet := &params.Sheet{
		{Sel: "Neuron", Desc: "all neurons",
			Params: params.Params{
				"Neuron.STDP.APlus": "0.02",
			}},
		{Sel: "#Neuron6", Desc: "stronger output from the boosted neuron",
			Params: params.Params{
				"Neuron.Act.OutScale": "2",
			}},
	}
	app, err := nt.ApplyParams(sheet, false)
	if !app || err != nil {
		t.Errorf("params not applied: %v %v\n", app, err)
	}
	for ni, nrn := range nt.Neurons {
		if nrn.STDP.APlus != 0.02 {
			t.Errorf("neuron %d APlus: %v\n", ni, nrn.STDP.APlus)
		}
		corsc := float32(1)
		if ni == 6 {
			corsc = 2
		}
		if nrn.Act.OutScale != corsc {
			t.Errorf("neuron %d OutScale: %v, corsc: %v\n", ni, nrn.Act.OutScale, corsc)
		}
	}
	outs, _ := nt.Forward(testStim, nil)
	if outs[6] != 2 {
		t.Errorf("boosted neuron output should be scaled: %v\n", outs[6])
	}
}

func TestNetSizeReport(t *testing.T) {
	nt := newTestNet(t)
	rpt := nt.SizeReport()
	if !strings.Contains(rpt, "ExtCon") || !strings.Contains(rpt, "Total") {
		t.Errorf("size report: %s\n", rpt)
	}
}

func TestConHelpers(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	con := NewRandCon(rnd, 3, 4, 0, 80, nil)
	for i, v := range con.Values {
		if v != 0 {
			t.Errorf("keep 0 value %d: %v\n", i, v)
		}
	}
	NormRows(con, 80)
	if RowNorm(con, 0) != 0 {
		t.Errorf("zero row should stay zero\n")
	}

	con = etensor.NewFloat32([]int{2, 2}, nil, nil)
	copy(con.Values, []float32{3, 4, 1, 2})
	NormRows(con, 10)
	if dif := mat32.Abs(RowNorm(con, 0) - 10); dif > difTol {
		t.Errorf("row 0 norm: %v\n", RowNorm(con, 0))
	}
	if con.Values[0] != 6 || con.Values[1] != 8 {
		t.Errorf("row 0: %v\n", ConRow(con, 0))
	}
	ZeroDiag(con)
	if con.Values[0] != 0 || con.Values[3] != 0 || con.Values[1] != 8 {
		t.Errorf("zero diag: %v\n", con.Values)
	}
	out := make([]float32, 2)
	MatVec(con, []float32{1, 1}, out)
	if out[0] != 8 || out[1] != con.Values[2] {
		t.Errorf("mat vec: %v\n", out)
	}
}

// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"strconv"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// ConfigStateLog configures dt as a neuron state log, with one row per
// neuron per step
func ConfigStateLog(dt *etable.Table) {
	dt.SetMetaData("name", "StateLog")
	dt.SetMetaData("desc", "Record of neuron state over steps of the network")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))
	sch := etable.Schema{
		{Name: "Step", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Neuron", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Type", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Vm", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Thr", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Spike", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Output", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Refrac", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "BurstCount", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "AdaptCur", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Excit", Type: etensor.INT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
}

// LogState adds the current state of every neuron to the state log dt,
// with outs the outputs of the step just taken (nil = from neuron state).
// Returns the first row added.
func (nt *Network) LogState(dt *etable.Table, outs []float32) int {
	row := dt.Rows
	dt.SetNumRows(row + len(nt.Neurons))
	for ni, nrn := range nt.Neurons {
		r := row + ni
		out := float32(nrn.Spike) * nrn.Act.OutScale
		if !nrn.Excit {
			out = -out
		}
		if outs != nil {
			out = outs[ni]
		}
		excit := 0.0
		if nrn.Excit {
			excit = 1
		}
		dt.SetCellFloat("Step", r, float64(nt.Step))
		dt.SetCellFloat("Neuron", r, float64(ni))
		dt.SetCellString("Type", r, nrn.TypeTag)
		dt.SetCellFloat("Vm", r, float64(nrn.Vm))
		dt.SetCellFloat("Thr", r, float64(nrn.Thr))
		dt.SetCellFloat("Spike", r, float64(nrn.Spike))
		dt.SetCellFloat("Output", r, float64(out))
		dt.SetCellFloat("Refrac", r, float64(nrn.Refrac))
		dt.SetCellFloat("BurstCount", r, float64(nrn.BurstCtr))
		dt.SetCellFloat("AdaptCur", r, float64(nrn.AdaptCur))
		dt.SetCellFloat("Excit", r, excit)
	}
	return row
}

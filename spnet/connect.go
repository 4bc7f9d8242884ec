// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"math/rand"

	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"
)

// ConParams are the parameters for the random connectivity of a Network
type ConParams struct {
	Norm       float32 `def:"80" min:"0" desc:"euclidean norm of each non-zero connectivity row after normalization"`
	ExtKeep    float32 `def:"0.85" min:"0" max:"1" desc:"probability of keeping each external -> neuron connection -- the rest are zero"`
	RecKeep    float32 `def:"0.9" min:"0" max:"1" desc:"probability of keeping each neuron -> neuron connection -- the rest are zero, as are self connections"`
	InhibScale float32 `def:"-0.3" desc:"multiplier on both connectivity rows of neurons that are inhibitory at construction -- weak, sign-flipped influence"`
}

func (cp *ConParams) Update() {
}

func (cp *ConParams) Defaults() {
	cp.Norm = 80
	cp.ExtKeep = 0.85
	cp.RecKeep = 0.9
	cp.InhibScale = -0.3
	cp.Update()
}

// NewRandCon returns a new nRecv x nSend connectivity tensor with values
// drawn uniformly from [0, 1), then multiplied by a Bernoulli mask that
// keeps each entry with probability keep, and by scale.  All values are
// drawn before all mask entries, in row-major order.
func NewRandCon(rnd *rand.Rand, nRecv, nSend int, keep, scale float32, dimNames []string) *etensor.Float32 {
	con := etensor.NewFloat32([]int{nRecv, nSend}, nil, dimNames)
	for i := range con.Values {
		con.Values[i] = float32(rnd.Float64())
	}
	for i := range con.Values {
		if rnd.Float64() >= float64(keep) {
			con.Values[i] = 0
		}
		con.Values[i] *= scale
	}
	return con
}

// ConRow returns row of connectivity for receiving index ri.
// This is a view onto the tensor values, not a copy.
func ConRow(con *etensor.Float32, ri int) []float32 {
	ns := con.Dim(1)
	return con.Values[ri*ns : (ri+1)*ns]
}

// ZeroDiag sets the diagonal of a square connectivity tensor to zero
func ZeroDiag(con *etensor.Float32) {
	n := con.Dim(0)
	for i := 0; i < n; i++ {
		con.Set([]int{i, i}, 0)
	}
}

// RowNorm returns the euclidean norm of the given row
func RowNorm(con *etensor.Float32, ri int) float32 {
	ss := float32(0)
	for _, v := range ConRow(con, ri) {
		ss += v * v
	}
	return mat32.Sqrt(ss)
}

// NormRows rescales every row to have euclidean norm = norm.
// Rows that are all zero stay zero.
func NormRows(con *etensor.Float32, norm float32) {
	for ri := 0; ri < con.Dim(0); ri++ {
		rn := RowNorm(con, ri)
		if rn > 0 {
			ScaleRow(con, ri, norm/rn)
		}
	}
}

// ScaleRow multiplies every value in row ri by scale
func ScaleRow(con *etensor.Float32, ri int, scale float32) {
	row := ConRow(con, ri)
	for i := range row {
		row[i] *= scale
	}
}

// MatVec computes out = con * vec, where vec has con.Dim(1) values and
// out has con.Dim(0) values
func MatVec(con *etensor.Float32, vec, out []float32) {
	for ri := range out {
		sum := float32(0)
		for si, w := range ConRow(con, ri) {
			sum += w * vec[si]
		}
		out[ri] = sum
	}
}

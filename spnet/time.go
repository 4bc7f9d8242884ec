// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

// spnet.Time contains the timing state and parameters for stepping a neuron
type Time struct {

	// accumulated amount of simulation time, in msec, at the start of the
	// current step: Step * Dt.
	Time float32

	// number of steps taken since the last Reset.
	Step int

	// amount of time per step, in msec.
	Dt float32 `def:"0.5"`
}

// NewTime returns a new Time struct with given step size
func NewTime(dt float32) *Time {
	tm := &Time{}
	tm.Defaults()
	if dt > 0 {
		tm.Dt = dt
	}
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.Dt = 0.5
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.Dt == 0 {
		tm.Defaults()
	}
}

// StepInc increments at the step level.  Time is recomputed from the
// step count so it does not accumulate rounding error.
func (tm *Time) StepInc() {
	tm.Step++
	tm.Time = float32(tm.Step) * tm.Dt
}

// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stdp

// Trace is an ordered list of spike times, oldest first
type Trace []float32

// Add records a spike at time t
func (tr *Trace) Add(t float32) {
	*tr = append(*tr, t)
}

// Prune removes all spike times that are no longer within the Window of now.
// The underlying storage is reused.
func (tr *Trace) Prune(sp *Params, now float32) {
	n := 0
	for _, t := range *tr {
		if sp.InWindow(now, t) {
			(*tr)[n] = t
			n++
		}
	}
	*tr = (*tr)[:n]
}

// Reset removes all spike times
func (tr *Trace) Reset() {
	*tr = (*tr)[:0]
}

// Last returns the most recent spike time, and false if there are none
func (tr Trace) Last() (float32, bool) {
	if len(tr) == 0 {
		return 0, false
	}
	return tr[len(tr)-1], true
}

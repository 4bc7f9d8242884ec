// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spnet

import (
	"encoding/json"
	"testing"
)

func TestNeuronTypes(t *testing.T) {
	for nt := Generic; nt < NeuronTypesN; nt++ {
		if got := NeuronTypeFromTag(nt.Tag()); got != nt {
			t.Errorf("tag: %s parsed as: %v\n", nt.Tag(), got)
		}
	}
	if NeuronTypeFromTag(" INTERNEURON ") != Interneuron || NeuronTypeFromTag("granule") != Generic {
		t.Errorf("tag parsing not case-insensitive or unknown not generic\n")
	}

	b, err := json.Marshal(Sensory)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"Sensory"` {
		t.Errorf("json: %s\n", string(b))
	}
	var nt NeuronTypes
	if err := json.Unmarshal(b, &nt); err != nil || nt != Sensory {
		t.Errorf("unmarshal: %v %v\n", nt, err)
	}
}

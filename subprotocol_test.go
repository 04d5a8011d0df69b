// Copyright 2026 Meshweave Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package protover

import "testing"

func TestProtocolById(t *testing.T) {
	// Boundary integer values are ABI-fixed
	testDefs := []struct {
		id       int
		expected Protocol
	}{
		{id: 0, expected: ProtocolLink},
		{id: 1, expected: ProtocolLinkAuth},
		{id: 2, expected: ProtocolRelay},
		{id: 3, expected: ProtocolDirCache},
		{id: 4, expected: ProtocolHSDir},
		{id: 5, expected: ProtocolHSIntro},
		{id: 6, expected: ProtocolHSRend},
		{id: 7, expected: ProtocolDesc},
		{id: 8, expected: ProtocolMicrodesc},
		{id: 9, expected: ProtocolCons},
		{id: 10, expected: ProtocolInvalid},
		{id: -1, expected: ProtocolInvalid},
		{id: 9999, expected: ProtocolInvalid},
	}
	for _, testDef := range testDefs {
		if result := ProtocolById(testDef.id); result != testDef.expected {
			t.Errorf(
				"ProtocolById(%d) = %s, wanted %s",
				testDef.id,
				result,
				testDef.expected,
			)
		}
	}
}

func TestProtocolByName(t *testing.T) {
	for _, proto := range Protocols() {
		if result := ProtocolByName(proto.String()); result != proto {
			t.Errorf(
				"ProtocolByName(%q) = %s, wanted %s",
				proto.String(),
				result,
				proto,
			)
		}
	}
	if result := ProtocolByName("Wombat"); result != ProtocolInvalid {
		t.Errorf("ProtocolByName(\"Wombat\") = %s, wanted invalid", result)
	}
	if result := ProtocolByName("link"); result != ProtocolInvalid {
		t.Errorf("ProtocolByName(\"link\") = %s, wanted invalid", result)
	}
	if result := ProtocolByName(""); result != ProtocolInvalid {
		t.Errorf("ProtocolByName(\"\") = %s, wanted invalid", result)
	}
}

func TestProtocolString(t *testing.T) {
	if ProtocolLink.String() != "Link" {
		t.Errorf("unexpected name for ProtocolLink: %s", ProtocolLink)
	}
	if ProtocolInvalid.String() != "invalid" {
		t.Errorf("unexpected name for ProtocolInvalid: %s", ProtocolInvalid)
	}
	if Protocol(42).String() != "invalid" {
		t.Errorf("unexpected name for out-of-range value: %s", Protocol(42))
	}
}

func TestProtocolsOrder(t *testing.T) {
	protos := Protocols()
	if len(protos) != 10 {
		t.Fatalf("unexpected protocol count: %d", len(protos))
	}
	for i, proto := range protos {
		if int(proto) != i {
			t.Errorf("protocol %s out of boundary order at %d", proto, i)
		}
	}
}

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

import (
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
)

// Capability snapshots are the binary form of a capability map exchanged
// over the control plane: a CBOR map keyed by subprotocol name, encoded
// deterministically so two nodes encoding the same map produce identical
// bytes.

// EncodeSnapshot encodes a capability map as a deterministic CBOR snapshot
func EncodeSnapshot(caps CapabilityMap) ([]byte, error) {
	entries := make(map[string]VersionSet, len(caps))
	for proto, set := range caps {
		if !proto.valid() {
			return nil, fmt.Errorf(
				"%w: protocol id %d",
				ErrUnknownProtocol,
				int(proto),
			)
		}
		normalized := slices.Clone(set)
		slices.Sort(normalized)
		entries[proto.String()] = slices.Compact(normalized)
	}
	opts := cbor.EncOptions{
		// Make sure that maps have ordered keys
		Sort: cbor.SortCoreDeterministic,
	}
	em, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(entries)
}

// DecodeSnapshot decodes a CBOR snapshot back into a capability map. The
// input is untrusted: names must be known subprotocols and each version set
// is re-normalized and held to the same expansion cap as text parsing.
func DecodeSnapshot(data []byte) (CapabilityMap, error) {
	var entries map[string]VersionSet
	if err := cbor.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	caps := CapabilityMap{}
	for name, set := range entries {
		proto := ProtocolByName(name)
		if proto == ProtocolInvalid {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
		}
		slices.Sort(set)
		set = slices.Compact(set)
		if len(set) > MaxVersionsToExpand {
			return nil, ErrTooManyVersions
		}
		caps[proto] = set
	}
	return caps, nil
}

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

// Package protover tracks the subprotocol capability versions spoken across
// the overlay network. Each node advertises the versions it supports per
// subprotocol as a capability list ("Link=1-4 Cons=1-2 ..."); this package
// parses those advertisements, answers whether the local build can
// interoperate with a given peer, and computes the threshold vote the
// directory authorities use to set network-wide capability policy.
//
// All functions are pure and safe for concurrent use; the only shared state
// is the compiled-in registry of locally supported versions, which is
// parsed once and read-only thereafter.
package protover

import "strings"

// IsSupportedHere reports whether this build supports the given version of
// the given subprotocol. An invalid protocol value is simply unsupported,
// never an error.
func IsSupportedHere(proto Protocol, version uint32) bool {
	set, ok := supportedHere()[proto]
	if !ok {
		return false
	}
	return set.Contains(version)
}

// EntryFullySupported reports whether this build supports every version in
// a single "Name=versions" capability entry. Anything that fails to parse
// is unsupported: an unparseable entry must never be mistaken for a
// supported one.
func EntryFullySupported(entry string) bool {
	proto, versions, err := ParseEntry(entry)
	if err != nil {
		return false
	}
	supported, ok := supportedHere()[proto]
	if !ok {
		return false
	}
	return supported.ContainsAll(versions)
}

// ListSupportsProtocol reports whether the given capability list includes
// support for the given subprotocol version. The whole list must parse: a
// peer whose advertisement is malformed anywhere cannot be trusted to
// support anything.
func ListSupportsProtocol(list string, proto Protocol, version uint32) bool {
	caps, err := ParseCapabilityList(list)
	if err != nil {
		return false
	}
	return caps[proto].Contains(version)
}

// AllSupported checks a peer's advertised capability list against what this
// build supports. It returns true and the empty string when every entry is
// fully supported; otherwise it returns false and the failing entries
// verbatim, space-joined in their original order, so the operator can see
// exactly what was rejected.
func AllSupported(advertised string) (bool, string) {
	var unsupported []string
	for _, entry := range strings.Fields(advertised) {
		if !EntryFullySupported(entry) {
			unsupported = append(unsupported, entry)
		}
	}
	return len(unsupported) == 0, strings.Join(unsupported, " ")
}

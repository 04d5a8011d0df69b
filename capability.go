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
	"strings"
)

// CapabilityMap maps each subprotocol in a capability list to the version
// set it advertises. A CapabilityMap is built fresh per parse call and never
// shared between callers.
type CapabilityMap map[Protocol]VersionSet

// parsePolicy controls what a capability-list walk does when an entry fails
// to parse. Strict and tolerant call sites share the same grammar; only the
// failure handling differs.
type parsePolicy int

const (
	// policyStrict aborts the walk on the first bad entry
	policyStrict parsePolicy = iota
	// policySkip drops bad entries and keeps walking
	policySkip
)

// parseRawEntry splits a single "Name=versions" entry, returning the raw
// (unvalidated) protocol name and the parsed version set. Voting keeps raw
// names so the network can vote on subprotocols this build doesn't know yet.
func parseRawEntry(entry string) (string, VersionSet, error) {
	name, versions, found := strings.Cut(entry, "=")
	if !found || name == "" {
		return "", nil, fmt.Errorf("%w: entry %q", ErrEmptyInput, entry)
	}
	set, err := ParseVersionList(versions)
	if err != nil {
		return "", nil, err
	}
	return name, set, nil
}

// parseList walks the whitespace-separated entries of one capability list,
// calling visit for each entry that parses. Under policyStrict the first
// failure (from the grammar or from visit) aborts the walk; under policySkip
// failed entries are dropped and the walk continues.
func parseList(
	text string,
	policy parsePolicy,
	visit func(name string, set VersionSet) error,
) error {
	for _, entry := range strings.Fields(text) {
		name, set, err := parseRawEntry(entry)
		if err == nil {
			err = visit(name, set)
		}
		if err != nil && policy == policyStrict {
			return err
		}
	}
	return nil
}

// ParseEntry strict-parses a single "Name=versions" entry. The name must be
// a known subprotocol.
func ParseEntry(entry string) (Protocol, VersionSet, error) {
	name, set, err := parseRawEntry(entry)
	if err != nil {
		return ProtocolInvalid, nil, err
	}
	proto := ProtocolByName(name)
	if proto == ProtocolInvalid {
		return ProtocolInvalid, nil, fmt.Errorf(
			"%w: %q",
			ErrUnknownProtocol,
			name,
		)
	}
	return proto, set, nil
}

// ParseCapabilityList strict-parses a whitespace-separated capability list.
// The first entry that fails to parse, or that names an unknown
// subprotocol, fails the whole parse. If a subprotocol appears more than
// once the last entry wins.
func ParseCapabilityList(text string) (CapabilityMap, error) {
	caps := CapabilityMap{}
	err := parseList(
		text,
		policyStrict,
		func(name string, set VersionSet) error {
			proto := ProtocolByName(name)
			if proto == ProtocolInvalid {
				return fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
			}
			caps[proto] = set
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return caps, nil
}

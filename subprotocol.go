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

// Protocol identifies one subprotocol of the overlay network's wire
// protocol. The set is fixed at build time; adding a member is a
// coordinated release.
type Protocol int

// Known subprotocols. The integer values cross the host boundary as plain
// ints and must not be reordered.
const (
	ProtocolLink Protocol = iota
	ProtocolLinkAuth
	ProtocolRelay
	ProtocolDirCache
	ProtocolHSDir
	ProtocolHSIntro
	ProtocolHSRend
	ProtocolDesc
	ProtocolMicrodesc
	ProtocolCons

	// ProtocolInvalid is used as a return value for lookup functions when a
	// subprotocol isn't found
	ProtocolInvalid Protocol = -1
)

// Version milestones for v3 hidden services
const (
	ProtocolVersionHSDirV3   = 2
	ProtocolVersionHSIntroV3 = 4
)

var protocolNames = map[Protocol]string{
	ProtocolLink:      "Link",
	ProtocolLinkAuth:  "LinkAuth",
	ProtocolRelay:     "Relay",
	ProtocolDirCache:  "DirCache",
	ProtocolHSDir:     "HSDir",
	ProtocolHSIntro:   "HSIntro",
	ProtocolHSRend:    "HSRend",
	ProtocolDesc:      "Desc",
	ProtocolMicrodesc: "Microdesc",
	ProtocolCons:      "Cons",
}

func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return "invalid"
}

func (p Protocol) valid() bool {
	return p >= ProtocolLink && p <= ProtocolCons
}

// Protocols returns all known subprotocols in boundary order
func Protocols() []Protocol {
	ret := make([]Protocol, 0, len(protocolNames))
	for p := ProtocolLink; p <= ProtocolCons; p++ {
		ret = append(ret, p)
	}
	return ret
}

// ProtocolById returns a known subprotocol by its boundary integer value
func ProtocolById(id int) Protocol {
	if p := Protocol(id); p.valid() {
		return p
	}
	return ProtocolInvalid
}

// ProtocolByName returns a known subprotocol by its wire name
// (case-sensitive)
func ProtocolByName(name string) Protocol {
	for p, n := range protocolNames {
		if n == name {
			return p
		}
	}
	return ProtocolInvalid
}

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
	"sync"

	"github.com/jinzhu/copier"
)

// supportedProtocols is the capability list this build advertises. It is
// configuration compiled into the binary; changing it is a release decision.
const supportedProtocols = "Cons=1-2 Desc=1-2 DirCache=1-2 HSDir=1-2" +
	" HSIntro=3-4 HSRend=1-2 Link=1-4 LinkAuth=1,3 Microdesc=1-2 Relay=1-2"

// Policy capability lists voted into the consensus by the directory
// authorities. Nodes compare themselves against these to decide whether
// they can usefully participate.
const (
	RecommendedClientProtocols = "Cons=1-2 Desc=1-2 DirCache=1 HSDir=1" +
		" HSIntro=3 HSRend=1 Link=4 LinkAuth=1 Microdesc=1-2 Relay=2"
	RequiredClientProtocols = "Cons=1-2 Desc=1-2 DirCache=1 HSDir=1" +
		" HSIntro=3 HSRend=1 Link=4 LinkAuth=1 Microdesc=1-2 Relay=2"
	RequiredRelayProtocols = "Cons=1 Desc=1 DirCache=1 HSDir=1" +
		" HSIntro=3 HSRend=1 Link=3-4 LinkAuth=1 Microdesc=1 Relay=1-2"
)

var (
	registryOnce sync.Once
	registry     CapabilityMap
)

// supportedHere returns the shared parsed form of the compiled-in table.
// The table is trusted input: a parse failure here is a defect in the table
// itself, not a runtime condition, so it panics instead of returning an
// error.
func supportedHere() CapabilityMap {
	registryOnce.Do(func() {
		caps, err := ParseCapabilityList(supportedProtocols)
		if err != nil {
			panic(
				fmt.Sprintf(
					"protover: compiled-in protocol table is invalid: %s",
					err,
				),
			)
		}
		registry = caps
	})
	return registry
}

// SupportedProtocols returns the capability list this build advertises
func SupportedProtocols() string {
	return supportedProtocols
}

// SupportedHere returns the parsed capability map for this build. The
// returned map is a deep copy owned by the caller, so the published
// registry can never be mutated through it.
func SupportedHere() CapabilityMap {
	src := supportedHere()
	caps := CapabilityMap{}
	if err := copier.CopyWithOption(
		&caps,
		&src,
		copier.Option{DeepCopy: true},
	); err != nil {
		panic(fmt.Sprintf("protover: failed to copy protocol table: %s", err))
	}
	return caps
}

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

import "github.com/meshweave/protover/release"

// FirstAdvertisingRelease is the first release that self-reports its
// capability list. The directory authorities use it to decide whether to
// infer a capability list for a node instead of trusting its descriptor.
const FirstAdvertisingRelease = "0.2.9.3-alpha"

// legacyEntry pairs a minimum release with the capability list every build
// from that release (up to the next entry) is known to support.
type legacyEntry struct {
	release string
	caps    string
}

// Known capability lists for builds that predate self-reporting, ordered
// newest-first. Inference returns the first entry at or below the build's
// release.
var legacyTable = []legacyEntry{
	{
		release: "0.2.9.1-alpha",
		caps: "Cons=1-2 Desc=1-2 DirCache=1 HSDir=1 HSIntro=3 HSRend=1-2" +
			" Link=1-4 LinkAuth=1 Microdesc=1-2 Relay=1-2",
	},
	{
		release: "0.2.7.5",
		caps: "Cons=1-2 Desc=1-2 DirCache=1 HSDir=1 HSIntro=3 HSRend=1" +
			" Link=1-4 LinkAuth=1 Microdesc=1-2 Relay=1-2",
	},
	{
		release: "0.2.4.19",
		caps: "Cons=1 Desc=1 DirCache=1 HSDir=1 HSIntro=3 HSRend=1" +
			" Link=1-4 LinkAuth=1 Microdesc=1 Relay=1-2",
	},
}

// ComputeForLegacy infers the capability list for a build too old to
// self-report, keyed by its release version. Builds at or past
// FirstAdvertisingRelease get the empty string (they are expected to
// self-report, so nothing should be inferred for them), as do builds older
// than every known entry and builds whose version doesn't parse.
func ComputeForLegacy(buildVersion string) string {
	if release.AtLeast(buildVersion, FirstAdvertisingRelease) {
		return ""
	}
	for _, entry := range legacyTable {
		if release.AtLeast(buildVersion, entry.release) {
			return entry.caps
		}
	}
	return ""
}

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
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ComputeVote aggregates many peers' capability lists into the list of
// versions reported at least threshold times. Reports are parsed
// tolerantly: a corrupt report from a buggy or adversarial peer is skipped
// entry by entry and never prevents the vote from being computed. Reported
// versions are not filtered against what this build supports; the vote
// reflects the network, which may be ahead of us.
//
// Occurrences are counted per (name, version) pair across all reports,
// duplicates included. A threshold of zero or less keeps everything
// reported at least once; the caller owns choosing a meaningful quorum.
//
// The output is canonical: subprotocol names in byte order, each version
// set compressed to minimal ranges, entries space-joined. Subprotocols with
// no surviving versions are omitted; no reports yields the empty string.
// Independent voters fed the same reports produce identical bytes.
func ComputeVote(reports []string, threshold int) string {
	if len(reports) == 0 {
		return ""
	}

	// Multiset of reported versions per raw subprotocol name. Names stay
	// raw text so the network can vote on subprotocols this build doesn't
	// recognize yet.
	tally := make(map[string][]uint32)
	for _, report := range reports {
		_ = parseList(
			report,
			policySkip,
			func(name string, set VersionSet) error {
				tally[name] = append(tally[name], set...)
				return nil
			},
		)
	}

	vote := make(map[string]string, len(tally))
	names := make([]string, 0, len(tally))
	for name, reported := range tally {
		counts := make(map[uint32]int)
		for _, version := range reported {
			counts[version]++
		}
		kept := VersionSet{}
		for version, count := range counts {
			if count >= threshold {
				kept = append(kept, version)
			}
		}
		if len(kept) == 0 {
			continue
		}
		slices.Sort(kept)
		vote[name] = kept.String()
		names = append(names, name)
	}

	slices.Sort(names)
	entries := make([]string, 0, len(names))
	for _, name := range names {
		entries = append(entries, name+"="+vote[name])
	}
	return strings.Join(entries, " ")
}

// VoteDigest returns the BLAKE2b-256 digest of a canonical vote string,
// used to reference the vote from signed consensus documents.
func VoteDigest(vote string) [32]byte {
	return blake2b.Sum256([]byte(vote))
}

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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeVote(t *testing.T) {
	testDefs := []struct {
		name      string
		reports   []string
		threshold int
		expected  string
	}{
		{
			name:      "no reports yields no consensus",
			reports:   []string{},
			threshold: 1,
			expected:  "",
		},
		{
			name:      "version kept only when reported by quorum",
			reports:   []string{"Link=3-4", "Link=3"},
			threshold: 2,
			expected:  "Link=3",
		},
		{
			name:      "threshold one keeps everything reported",
			reports:   []string{"Link=3-4", "Link=3"},
			threshold: 1,
			expected:  "Link=3-4",
		},
		{
			name:      "threshold above report count keeps nothing",
			reports:   []string{"Link=3-4", "Link=3"},
			threshold: 3,
			expected:  "",
		},
		{
			name:      "protocol names sort lexicographically",
			reports:   []string{"Relay=1 Cons=1 Link=2", "Relay=1 Cons=1 Link=2"},
			threshold: 2,
			expected:  "Cons=1 Link=2 Relay=1",
		},
		{
			name:      "votes are not filtered by the local registry",
			reports:   []string{"Wombat=9", "Wombat=9"},
			threshold: 2,
			expected:  "Wombat=9",
		},
		{
			name:      "malformed entries are skipped not fatal",
			reports:   []string{"Link=1 bogus=x=y", "Link=1 ???"},
			threshold: 2,
			expected:  "Link=1",
		},
		{
			name:      "fully corrupt report doesn't block the rest",
			reports:   []string{"Link=1", "not a capability list", "Link=1"},
			threshold: 2,
			expected:  "Link=1",
		},
		{
			name:      "duplicates within one report count separately",
			reports:   []string{"Link=1 Link=1"},
			threshold: 2,
			expected:  "Link=1",
		},
		{
			name:      "retained versions compress to canonical ranges",
			reports:   []string{"Link=1-5,9", "Link=1-5,9", "Link=3"},
			threshold: 2,
			expected:  "Link=1-5,9",
		},
		{
			name:      "zero threshold accepts anything reported once",
			reports:   []string{"Link=1", "Cons=2"},
			threshold: 0,
			expected:  "Cons=2 Link=1",
		},
		{
			name:      "negative threshold behaves like zero",
			reports:   []string{"Link=1"},
			threshold: -5,
			expected:  "Link=1",
		},
		{
			name:      "all reports corrupt yields empty vote",
			reports:   []string{"garbage", "=1"},
			threshold: 1,
			expected:  "",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			result := ComputeVote(testDef.reports, testDef.threshold)
			require.Equal(t, testDef.expected, result)
		})
	}
}

func TestComputeVoteDeterminism(t *testing.T) {
	reports := []string{
		"Link=1-4 Cons=1-2 Relay=1",
		"Cons=1-2 Link=2-5",
		"Relay=1 Link=3",
	}
	first := ComputeVote(reports, 2)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ComputeVote(reports, 2))
	}
	// The canonical output must survive a vote over itself
	require.Equal(t, first, ComputeVote([]string{first, first}, 2))
}

func TestVoteDigest(t *testing.T) {
	voteA := ComputeVote([]string{"Link=1", "Link=1"}, 2)
	voteB := ComputeVote([]string{"Link=2", "Link=2"}, 2)
	require.Equal(t, VoteDigest(voteA), VoteDigest(voteA))
	require.NotEqual(t, VoteDigest(voteA), VoteDigest(voteB))
}

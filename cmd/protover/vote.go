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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/meshweave/protover"
)

type voteFlags struct {
	flagset   *flag.FlagSet
	threshold int
	digest    bool
}

func newVoteFlags() *voteFlags {
	f := &voteFlags{
		flagset: flag.NewFlagSet("vote", flag.ExitOnError),
	}
	f.flagset.IntVar(
		&f.threshold,
		"threshold",
		1,
		"minimum number of reports a version needs to survive",
	)
	f.flagset.BoolVar(
		&f.digest,
		"digest",
		false,
		"also print the BLAKE2b digest of the vote",
	)
	return f
}

func runVote(args []string) {
	f := newVoteFlags()
	if err := f.flagset.Parse(args); err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	reports := f.flagset.Args()
	if len(reports) < 1 {
		fmt.Printf("ERROR: you must specify at least one report\n")
		os.Exit(1)
	}
	vote := protover.ComputeVote(reports, f.threshold)
	fmt.Println(vote)
	if f.digest {
		digest := protover.VoteDigest(vote)
		fmt.Printf("digest: %s\n", hex.EncodeToString(digest[:]))
	}
}

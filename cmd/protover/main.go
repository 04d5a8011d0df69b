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
	"fmt"
	"os"

	"github.com/meshweave/protover"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Printf(
			"You must specify a subcommand (supported, check, satisfies, vote, or legacy)\n",
		)
		os.Exit(1)
	}
	switch os.Args[1] {
	case "supported":
		fmt.Println(protover.SupportedProtocols())
	case "check":
		runCheck(os.Args[2:])
	case "satisfies":
		runSatisfies(os.Args[2:])
	case "vote":
		runVote(os.Args[2:])
	case "legacy":
		runLegacy(os.Args[2:])
	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func runCheck(args []string) {
	if len(args) < 1 {
		fmt.Printf("ERROR: you must specify a capability list to check\n")
		os.Exit(1)
	}
	ok, unsupported := protover.AllSupported(args[0])
	if ok {
		fmt.Println("all entries supported")
		return
	}
	fmt.Printf("unsupported: %s\n", unsupported)
	os.Exit(1)
}

func runLegacy(args []string) {
	if len(args) < 1 {
		fmt.Printf("ERROR: you must specify a release version\n")
		os.Exit(1)
	}
	caps := protover.ComputeForLegacy(args[0])
	if caps == "" {
		fmt.Printf(
			"no inference for %s (self-reporting or too old)\n",
			args[0],
		)
		return
	}
	fmt.Println(caps)
}

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
	"flag"
	"fmt"
	"os"

	"github.com/meshweave/protover"
)

type satisfiesFlags struct {
	flagset  *flag.FlagSet
	protocol string
	version  uint
}

func newSatisfiesFlags() *satisfiesFlags {
	f := &satisfiesFlags{
		flagset: flag.NewFlagSet("satisfies", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.protocol,
		"protocol",
		"",
		"subprotocol name to look for",
	)
	f.flagset.UintVar(
		&f.version,
		"version",
		0,
		"subprotocol version to look for",
	)
	return f
}

func runSatisfies(args []string) {
	f := newSatisfiesFlags()
	if err := f.flagset.Parse(args); err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if len(f.flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a capability list\n")
		os.Exit(1)
	}
	proto := protover.ProtocolByName(f.protocol)
	if proto == protover.ProtocolInvalid {
		fmt.Printf("Invalid protocol specified: %s\n", f.protocol)
		os.Exit(1)
	}
	list := f.flagset.Arg(0)
	if protover.ListSupportsProtocol(list, proto, uint32(f.version)) {
		fmt.Printf("%s=%d is supported by the list\n", proto, f.version)
		return
	}
	fmt.Printf("%s=%d is NOT supported by the list\n", proto, f.version)
	os.Exit(1)
}

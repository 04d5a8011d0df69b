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

// Package release parses and orders the network's software release version
// strings, e.g. "0.2.9.3-alpha". A release version is three or four
// dot-separated numeric fields with an optional status tag after a hyphen.
// Ordering compares the numeric fields first; equal numerics fall back to a
// plain byte comparison of the status tags, so an untagged release sorts
// before any tagged one with the same numbers. That matches the network's
// historical comparison rule and is kept for compatibility.
package release

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedRelease = errors.New("malformed release version")

// Version is a parsed release version
type Version struct {
	Major  uint32
	Minor  uint32
	Micro  uint32
	Patch  uint32
	Status string
}

func (v Version) String() string {
	text := fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Micro, v.Patch)
	if v.Status != "" {
		text += "-" + v.Status
	}
	return text
}

// Parse parses a release version string. Anything after the first space
// (such as a build annotation) is ignored.
func Parse(text string) (Version, error) {
	text, _, _ = strings.Cut(text, " ")
	numbers, status, _ := strings.Cut(text, "-")
	fields := strings.Split(numbers, ".")
	if len(fields) < 3 || len(fields) > 4 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedRelease, text)
	}
	var parsed [4]uint32
	for i, field := range fields {
		value, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf(
				"%w: bad field %q in %q",
				ErrMalformedRelease,
				field,
				text,
			)
		}
		parsed[i] = uint32(value)
	}
	return Version{
		Major:  parsed[0],
		Minor:  parsed[1],
		Micro:  parsed[2],
		Patch:  parsed[3],
		Status: status,
	}, nil
}

// Compare returns -1, 0, or 1 as a orders before, equal to, or after b
func Compare(a, b Version) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Micro, b.Micro); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Patch, b.Patch); c != 0 {
		return c
	}
	return strings.Compare(a.Status, b.Status)
}

// AtLeast reports whether version orders at or after minimum. A version
// string that doesn't parse is never "at least" anything.
func AtLeast(version, minimum string) bool {
	v, err := Parse(version)
	if err != nil {
		return false
	}
	m, err := Parse(minimum)
	if err != nil {
		return false
	}
	return Compare(v, m) >= 0
}

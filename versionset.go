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
	"slices"
	"strconv"
	"strings"
)

// MaxVersionsToExpand is the most versions a single version list may expand
// to. It bounds memory and CPU against adversarial ranges like
// "1-4000000000".
const MaxVersionsToExpand = 500

// VersionSet is the set of version numbers supported for a single
// subprotocol, kept strictly ascending with no duplicates.
type VersionSet []uint32

// ParseVersionList parses the comma-separated version list of a single
// capability entry. Each piece is either a bare version number or a
// "low-high" range; ranges are expanded to their members. The resulting set
// is sorted and deduplicated, and parsing fails with ErrTooManyVersions once
// the set exceeds MaxVersionsToExpand.
func ParseVersionList(text string) (VersionSet, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	versions := VersionSet{}
	for _, piece := range strings.Split(text, ",") {
		if strings.Contains(piece, "-") {
			expanded, err := expandVersionRange(piece)
			if err != nil {
				return nil, err
			}
			versions = append(versions, expanded...)
		} else {
			version, err := parseVersion(piece)
			if err != nil {
				return nil, err
			}
			versions = append(versions, version)
		}
		slices.Sort(versions)
		versions = slices.Compact(versions)
		if len(versions) > MaxVersionsToExpand {
			return nil, ErrTooManyVersions
		}
	}
	return versions, nil
}

func parseVersion(text string) (uint32, error) {
	version, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedVersion, text)
	}
	return uint32(version), nil
}

// expandVersionRange expands a "low-high" range to every version it covers.
// Both bounds are required. An inverted range (low > high) expands to the
// empty set rather than failing; deployed peers depend on that behavior, so
// it is preserved even though it looks like it should be an error.
func expandVersionRange(text string) (VersionSet, error) {
	lowText, highText, found := strings.Cut(text, "-")
	if !found || lowText == "" || highText == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRange, text)
	}
	low, err := strconv.ParseUint(lowText, 10, 32)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: bad lower bound in %q",
			ErrMalformedRange,
			text,
		)
	}
	high, err := strconv.ParseUint(highText, 10, 32)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: bad upper bound in %q",
			ErrMalformedRange,
			text,
		)
	}
	// Refuse oversized ranges before allocating anything
	if high >= low && high-low >= MaxVersionsToExpand {
		return nil, ErrTooManyVersions
	}
	expanded := VersionSet{}
	for version := low; version <= high; version++ {
		expanded = append(expanded, uint32(version))
	}
	return expanded, nil
}

// Contains reports whether the set includes the given version
func (s VersionSet) Contains(version uint32) bool {
	return slices.Contains(s, version)
}

// ContainsAll reports whether the set includes every version in other
func (s VersionSet) ContainsAll(other VersionSet) bool {
	for _, version := range other {
		if !s.Contains(version) {
			return false
		}
	}
	return true
}

// String encodes the set in canonical form: a greedy leftmost run-length
// encoding where any run of two or more consecutive versions becomes a
// "low-high" range, pieces joined with commas. The output always parses
// back to the identical set.
func (s VersionSet) String() string {
	remaining := slices.Clone(s)
	slices.Sort(remaining)
	remaining = slices.Compact(remaining)
	var pieces []string
	for len(remaining) > 0 {
		start := remaining[0]
		end := start
		next := 1
		for next < len(remaining) && remaining[next] == end+1 {
			end = remaining[next]
			next++
		}
		if end > start {
			pieces = append(pieces, fmt.Sprintf("%d-%d", start, end))
		} else {
			pieces = append(pieces, strconv.FormatUint(uint64(start), 10))
		}
		remaining = remaining[next:]
	}
	return strings.Join(pieces, ",")
}

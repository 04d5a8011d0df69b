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

import "errors"

// Parse errors for capability lists and version lists
var (
	ErrMalformedVersion = errors.New("malformed version number")
	ErrMalformedRange   = errors.New("malformed version range")
	ErrUnknownProtocol  = errors.New("unknown protocol name")
	ErrTooManyVersions  = errors.New("too many versions to expand")
	ErrEmptyInput       = errors.New("empty input")
)

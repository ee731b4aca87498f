// Copyright 2025 The Rivaas Authors
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

package fluentroutes

import (
	"fmt"
	"strings"
)

// splitFragment splits a path fragment into its individual segments.
// A fragment may carry several segments in one call ("api/v1"); stray leading,
// trailing, and duplicated separators are dropped so that splitting is
// insensitive to slash placement. A fragment that is empty, or all separators,
// is malformed. Parameter segments keep their ":name" spelling; translating
// that sentinel into host syntax is the host adapter's job.
//
// Validation happens here, before any node is created for the fragment.
func splitFragment(fragment string) ([]string, error) {
	segments := make([]string, 0, strings.Count(fragment, "/")+1)
	for part := range strings.SplitSeq(fragment, "/") {
		if part == "" {
			continue
		}
		if err := validateSegment(part); err != nil {
			return nil, err
		}
		segments = append(segments, part)
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrSegmentEmpty, fragment)
	}

	return segments, nil
}

// validateSegment rejects characters that can never appear in a path segment
// of a registration pattern.
func validateSegment(segment string) error {
	if segment == ":" || segment == "*" {
		return fmt.Errorf("%w: %q has no parameter name", ErrSegmentInvalid, segment)
	}
	if strings.ContainsAny(segment, " \t\n\x00?#") {
		return fmt.Errorf("%w: %q", ErrSegmentInvalid, segment)
	}

	return nil
}

// joinPath joins accumulated segments into a full path: a leading separator,
// exactly one separator between segments, and none at the end. No segments
// yields the root path.
func joinPath(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}

	var sb strings.Builder
	for _, segment := range segments {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}

	return sb.String()
}

// isParam reports whether a segment is a parameter placeholder (":name").
func isParam(segment string) bool {
	return strings.HasPrefix(segment, ":")
}

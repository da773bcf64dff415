/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package resolve discovers the top-level API objects in a schema
// definitions map, groups them by kind, and picks exactly one version per
// kind to generate from.
package resolve

import (
	"regexp"
	"strings"
)

// versionSegment matches an API version path segment such as "v1",
// "v1beta1" or "v2alpha3".
var versionSegment = regexp.MustCompile(`^v\d+(?:(?:alpha|beta)\d*)?$`)

// TypeName is the identity of a schema definition, parsed from its
// fully-qualified key, e.g. "io.k8s.api.apps.v1.Deployment".
type TypeName struct {
	// Basename is the versionless kind name, e.g. "Deployment".
	Basename string
	// Group is everything before the version segment, e.g. "io.k8s.api.apps".
	Group string
	// Version is the raw version segment, empty when the key carries none.
	Version string
	// Fullname is the original key, always unique within a document.
	Fullname string
}

// ParseTypeName splits a fully-qualified definition key at its last version
// segment. Keys without a version segment parse with an empty Version; they
// denote data types rather than versioned API types, and classification
// never selects them, so this is not an error.
func ParseTypeName(fullname string) TypeName {
	segments := strings.Split(fullname, ".")
	for i := len(segments) - 1; i >= 0; i-- {
		if versionSegment.MatchString(segments[i]) {
			return TypeName{
				Basename: strings.Join(segments[i+1:], "."),
				Group:    strings.Join(segments[:i], "."),
				Version:  segments[i],
				Fullname: fullname,
			}
		}
	}
	return TypeName{
		Basename: segments[len(segments)-1],
		Group:    strings.Join(segments[:len(segments)-1], "."),
		Fullname: fullname,
	}
}

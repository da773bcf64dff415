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

package resolve

import (
	"regexp"
	"strconv"
)

var versionParts = regexp.MustCompile(`^v(\d+)(?:(alpha|beta)(\d*))?$`)

// Stability tiers, GA ranks above beta above alpha.
const (
	tierAlpha = iota
	tierBeta
	tierGA
)

type parsedVersion struct {
	major int
	tier  int
	minor int
}

// parseVersion ranks a raw version string. Unparsable strings rank below
// everything so that definitions without a proper version never win a
// selection.
func parseVersion(v string) parsedVersion {
	m := versionParts.FindStringSubmatch(v)
	if m == nil {
		return parsedVersion{major: -1, tier: -1, minor: -1}
	}
	major, _ := strconv.Atoi(m[1])
	tier := tierGA
	switch m[2] {
	case "alpha":
		tier = tierAlpha
	case "beta":
		tier = tierBeta
	}
	// A missing trailing numeral ("v1beta") counts as 0.
	minor := 0
	if m[3] != "" {
		minor, _ = strconv.Atoi(m[3])
	}
	return parsedVersion{major: major, tier: tier, minor: minor}
}

// CompareVersions is a total order over the versions of two definitions of
// the same kind, negative when a ranks below b. Higher major wins first
// (v2 > v1beta1), then stability (GA > beta > alpha), then the trailing
// numeral (beta2 > beta1). Ties compare equal and keep discovery order
// under a stable sort.
func CompareVersions(a, b TypeName) int {
	pa, pb := parseVersion(a.Version), parseVersion(b.Version)
	if pa.major != pb.major {
		return pa.major - pb.major
	}
	if pa.tier != pb.tier {
		return pa.tier - pb.tier
	}
	return pa.minor - pb.minor
}

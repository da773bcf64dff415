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
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Select picks exactly one ObjectDefinition per kind in the index. The
// default pick is the maximum under CompareVersions, the most stable and
// most recent candidate. A fully-qualified name on the include list
// overrides the default for its kind; naming two candidates of the same
// kind is rejected as invalid configuration. Every kind in the index yields
// exactly one selection, returned in basename order.
func Select(idx Index, include []string) ([]*ObjectDefinition, error) {
	includeSet := sets.New[string](include...)
	selections := make([]*ObjectDefinition, 0, len(idx))
	for _, kind := range idx.Kinds() {
		candidates := append([]*ObjectDefinition{}, idx[kind]...)
		sort.SliceStable(candidates, func(i, j int) bool {
			return CompareVersions(candidates[i].TypeName, candidates[j].TypeName) < 0
		})
		selected := candidates[len(candidates)-1]
		var override *ObjectDefinition
		for _, c := range candidates {
			if !includeSet.Has(c.Fullname) {
				continue
			}
			if override != nil {
				return nil, fmt.Errorf("the include list names both %q and %q for kind %q, only one version per kind may be requested", override.Fullname, c.Fullname, kind)
			}
			override = c
		}
		if override != nil {
			selected = override
		}
		selections = append(selections, selected)
	}
	return selections, nil
}

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
	"context"
	"sort"

	"github.com/numaproj-labs/kindgen/pkg/openapi"
	"github.com/numaproj-labs/kindgen/pkg/shared/logging"
)

// Index groups the classified API objects of a document by basename; each
// entry holds every version candidate seen for that kind.
type Index map[string][]*ObjectDefinition

// Kinds returns the indexed basenames in lexical order.
func (idx Index) Kinds() []string {
	kinds := make([]string, 0, len(idx))
	for k := range idx {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// BuildIndex classifies every definition in the document and groups the
// accepted ones by basename. Definitions are visited in key order so that
// discovery order, which breaks comparator ties later, does not depend on
// map iteration. Skipped data types are counted and logged at debug level.
func BuildIndex(ctx context.Context, doc *openapi.Document) (Index, error) {
	log := logging.FromContext(ctx)
	names := make([]string, 0, len(doc.Definitions))
	for name := range doc.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	idx := Index{}
	skipped := 0
	for _, name := range names {
		od, err := Classify(name, doc.Definitions[name])
		if err != nil {
			return nil, err
		}
		if od == nil {
			skipped++
			continue
		}
		idx[od.Basename] = append(idx[od.Basename], od)
	}
	log.Debugw("Built the object index", "kinds", len(idx), "skippedDefinitions", skipped)
	return idx, nil
}

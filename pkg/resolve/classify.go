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

	"github.com/numaproj-labs/kindgen/pkg/openapi"
)

// ObjectDefinition is one classified top-level API object: the identity
// parsed from the definition key, the GVK taken from the vendor extension,
// and the schema subtree to generate from. Immutable after classification.
type ObjectDefinition struct {
	TypeName
	GVK    openapi.GroupVersionKind
	Schema *openapi.Definition
}

// GroupVersionKind re-derives the annotated GVK from the schema. For
// anything that passed classification the annotation is guaranteed to be
// present, so an absence here is a contract violation and fatal.
func (d *ObjectDefinition) GroupVersionKind() (openapi.GroupVersionKind, error) {
	kinds := d.Schema.TopLevelKinds()
	if len(kinds) == 0 {
		return openapi.GroupVersionKind{}, fmt.Errorf("definition %q has no %s annotation", d.Fullname, openapi.GroupVersionKindExtension)
	}
	return kinds[0], nil
}

// Classify decides whether a definition is a top-level API object. It must
// carry a GVK vendor extension and declare a "metadata" property; types
// like DeleteOptions carry the extension but cannot stand alone in a
// manifest and are skipped. A nil return with a nil error is the common
// "not an API object" case, not a failure.
//
// A definition annotated with more than one GVK triple is ambiguous: there
// is no way to know which identity the generated construct should carry, so
// it is rejected instead of silently picking one.
func Classify(name string, def *openapi.Definition) (*ObjectDefinition, error) {
	kinds := def.TopLevelKinds()
	if len(kinds) == 0 || !def.HasProperty("metadata") {
		return nil, nil
	}
	if len(kinds) > 1 {
		return nil, fmt.Errorf("definition %q is annotated with %d group-version-kinds, cannot determine which one to generate", name, len(kinds))
	}
	return &ObjectDefinition{
		TypeName: ParseTypeName(name),
		GVK:      kinds[0],
		Schema:   def,
	}, nil
}

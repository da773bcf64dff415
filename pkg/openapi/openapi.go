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

// Package openapi models the subset of a Kubernetes swagger/OpenAPI v2
// document that the generator consumes: the flat definitions map, the
// per-definition properties, and the x-kubernetes-group-version-kind
// vendor extension.
package openapi

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// GroupVersionKindExtension is the vendor extension key carrying the GVK
// triples on top-level API object definitions.
const GroupVersionKindExtension = "x-kubernetes-group-version-kind"

// GroupVersionKind is one triple from the vendor extension. The json tags
// match the lowercase keys used in the swagger document.
type GroupVersionKind struct {
	Group   string `json:"group"`
	Version string `json:"version"`
	Kind    string `json:"kind"`
}

// APIVersion returns the apiVersion string as it appears in a manifest,
// "group/version" for grouped APIs and bare "version" for the core group.
func (gvk GroupVersionKind) APIVersion() string {
	if gvk.Group == "" {
		return gvk.Version
	}
	return gvk.Group + "/" + gvk.Version
}

func (gvk GroupVersionKind) String() string {
	return gvk.APIVersion() + "/" + gvk.Kind
}

// Property is a single schema property of a definition. Only the fields the
// generator needs are modeled; everything else in the subtree is ignored.
type Property struct {
	Description          string    `json:"description,omitempty"`
	Type                 string    `json:"type,omitempty"`
	Format               string    `json:"format,omitempty"`
	Ref                  string    `json:"$ref,omitempty"`
	Items                *Property `json:"items,omitempty"`
	AdditionalProperties *Property `json:"additionalProperties,omitempty"`
}

// Definition is a single named schema definition.
type Definition struct {
	Description       string               `json:"description,omitempty"`
	Type              string               `json:"type,omitempty"`
	Format            string               `json:"format,omitempty"`
	Required          []string             `json:"required,omitempty"`
	Properties        map[string]*Property `json:"properties,omitempty"`
	GroupVersionKinds []GroupVersionKind   `json:"x-kubernetes-group-version-kind,omitempty"`
}

// HasProperty reports whether the definition declares the named property.
func (d *Definition) HasProperty(name string) bool {
	_, ok := d.Properties[name]
	return ok
}

// TopLevelKinds returns the GVK triples annotated on the definition, empty
// for nested data types.
func (d *Definition) TopLevelKinds() []GroupVersionKind {
	return d.GroupVersionKinds
}

// Info identifies the API the document describes, e.g. "Kubernetes v1.29.2".
type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// Document is the decoded swagger document.
type Document struct {
	Info        Info                   `json:"info"`
	Definitions map[string]*Definition `json:"definitions"`
}

// Decode parses a raw swagger document. A document without a definitions map
// is considered malformed, there is nothing to generate from it.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode the schema document, %w", err)
	}
	if len(doc.Definitions) == 0 {
		return nil, fmt.Errorf("the schema document contains no definitions")
	}
	return doc, nil
}

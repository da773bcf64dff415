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

// Package codegen renders Go source from schema definitions: one struct (or
// alias) per definition reachable from a generation root, plus a typed
// constructor per selected API object kind.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-openapi/inflect"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/numaproj-labs/kindgen/pkg/openapi"
)

const refPrefix = "#/definitions/"

// TypeGenerator accumulates type declarations across Emit calls. Emit
// returns the Go type name generated for the definition.
type TypeGenerator interface {
	Emit(fullname string) (string, error)
	Source() string
}

// GoTypeGenerator walks $ref edges from each emitted root across the full
// definitions map and renders one Go declaration per definition visited.
// Definitions on the exclude list are not walked; references to them render
// as interface{}.
type GoTypeGenerator struct {
	definitions map[string]*openapi.Definition
	exclude     sets.Set[string]
	idents      map[string]string // fullname -> generated type name
	taken       map[string]string // generated type name -> fullname
	decls       []string
}

func NewGoTypeGenerator(definitions map[string]*openapi.Definition, exclude []string) *GoTypeGenerator {
	return &GoTypeGenerator{
		definitions: definitions,
		exclude:     sets.New[string](exclude...),
		idents:      map[string]string{},
		taken:       map[string]string{},
	}
}

func (g *GoTypeGenerator) Emit(fullname string) (string, error) {
	if ident, ok := g.idents[fullname]; ok {
		return ident, nil
	}
	if g.exclude.Has(fullname) {
		return "interface{}", nil
	}
	def, ok := g.definitions[fullname]
	if !ok {
		return "", fmt.Errorf("schema definition %q not found", fullname)
	}
	ident := g.claimIdent(fullname)
	// Registered before walking so that $ref cycles terminate.
	g.idents[fullname] = ident

	var b strings.Builder
	if doc := docLine(def.Description); doc != "" {
		fmt.Fprintf(&b, "// %s %s\n", ident, doc)
	}
	if len(def.Properties) > 0 {
		required := sets.New[string](def.Required...)
		names := make([]string, 0, len(def.Properties))
		for name := range def.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, "type %s struct {\n", ident)
		for _, name := range names {
			goType, err := g.propertyType(def.Properties[name], required.Has(name))
			if err != nil {
				return "", fmt.Errorf("failed to render property %q of %q, %w", name, fullname, err)
			}
			tag := name
			if !required.Has(name) {
				tag += ",omitempty"
			}
			fmt.Fprintf(&b, "\t%s %s `json:%q`\n", fieldName(name), goType, tag)
		}
		b.WriteString("}\n")
	} else {
		fmt.Fprintf(&b, "type %s = %s\n", ident, scalarType(def.Type, def.Format))
	}
	g.decls = append(g.decls, b.String())
	return ident, nil
}

// Source returns all declarations emitted so far, dependencies ahead of the
// types referencing them.
func (g *GoTypeGenerator) Source() string {
	return strings.Join(g.decls, "\n")
}

func (g *GoTypeGenerator) propertyType(p *openapi.Property, required bool) (string, error) {
	switch {
	case p == nil:
		return "interface{}", nil
	case p.Ref != "":
		target := strings.TrimPrefix(p.Ref, refPrefix)
		ident, err := g.Emit(target)
		if err != nil {
			return "", err
		}
		if !required && !strings.HasPrefix(ident, "interface") {
			return "*" + ident, nil
		}
		return ident, nil
	case p.Type == "array":
		elem, err := g.propertyType(p.Items, true)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case p.Type == "object" && p.AdditionalProperties != nil:
		elem, err := g.propertyType(p.AdditionalProperties, true)
		if err != nil {
			return "", err
		}
		return "map[string]" + elem, nil
	default:
		return scalarType(p.Type, p.Format), nil
	}
}

// claimIdent derives a unique Go type name for a definition key, prepending
// camelized leading segments (version, then group parts) on collisions,
// e.g. "V1beta1Deployment" next to "Deployment".
func (g *GoTypeGenerator) claimIdent(fullname string) string {
	segments := strings.Split(fullname, ".")
	ident := goName(segments[len(segments)-1])
	for i := len(segments) - 2; i >= 0; i-- {
		if owner, clash := g.taken[ident]; !clash || owner == fullname {
			break
		}
		ident = goName(segments[i]) + ident
	}
	g.taken[ident] = fullname
	return ident
}

func goName(segment string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, segment)
	return inflect.Camelize(sanitized)
}

func fieldName(property string) string {
	return goName(property)
}

func scalarType(schemaType, format string) string {
	switch schemaType {
	case "string":
		switch format {
		case "byte":
			return "[]byte"
		case "int-or-string":
			return "interface{}"
		default:
			return "string"
		}
	case "integer":
		if format == "int32" {
			return "int32"
		}
		return "int64"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	default:
		return "interface{}"
	}
}

// docLine reduces a schema description to its first sentence for use as a
// declaration comment.
func docLine(description string) string {
	d := strings.TrimSpace(description)
	if d == "" {
		return ""
	}
	if i := strings.Index(d, ". "); i >= 0 {
		d = d[:i+1]
	}
	return strings.ReplaceAll(d, "\n", " ")
}

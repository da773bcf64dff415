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

package codegen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/numaproj-labs/kindgen/pkg/openapi"
)

var constructTemplate = template.Must(template.New("construct").Parse(`// New{{ .FuncName }} returns a {{ .Kind }} ({{ .APIVersion }}) with its type metadata populated.
func New{{ .FuncName }}() *{{ .TypeIdent }} {
	return &{{ .TypeIdent }}{
{{- if .HasAPIVersion }}
		ApiVersion: "{{ .APIVersion }}",
{{- end }}
{{- if .HasKind }}
		Kind: "{{ .Kind }}",
{{- end }}
	}
}
`))

// ConstructInput is the tuple the templater consumes for one selected kind.
type ConstructInput struct {
	GVK       openapi.GroupVersionKind
	TypeIdent string
	Schema    *openapi.Definition
}

// RenderConstruct renders the typed constructor for one selected API object
// kind. It is pure string templating, the version resolution has already
// happened by the time it runs.
func RenderConstruct(in ConstructInput) (string, error) {
	data := struct {
		FuncName      string
		Kind          string
		APIVersion    string
		TypeIdent     string
		HasAPIVersion bool
		HasKind       bool
	}{
		FuncName:      goName(in.GVK.Kind),
		Kind:          in.GVK.Kind,
		APIVersion:    in.GVK.APIVersion(),
		TypeIdent:     in.TypeIdent,
		HasAPIVersion: in.Schema.HasProperty("apiVersion"),
		HasKind:       in.Schema.HasProperty("kind"),
	}
	var b strings.Builder
	if err := constructTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render the constructor for kind %q, %w", in.GVK.Kind, err)
	}
	return b.String(), nil
}

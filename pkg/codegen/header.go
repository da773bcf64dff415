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

	"github.com/numaproj-labs/kindgen/pkg/openapi"
)

// Header renders the fixed preamble of a generated file: the generation
// banner, the source document identity, and the package clause.
func Header(pkg string, info openapi.Info) string {
	var b strings.Builder
	b.WriteString("// Code generated by kindgen. DO NOT EDIT.\n")
	if info.Title != "" || info.Version != "" {
		fmt.Fprintf(&b, "// Source: %s %s\n", info.Title, info.Version)
	}
	fmt.Fprintf(&b, "\npackage %s\n", pkg)
	return b.String()
}

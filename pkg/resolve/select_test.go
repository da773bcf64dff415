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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	idx, err := BuildIndex(context.Background(), testDocument())
	assert.NoError(t, err)

	t.Run("default picks most stable recent", func(t *testing.T) {
		selections, err := Select(idx, nil)
		assert.NoError(t, err)
		assert.Len(t, selections, 2)
		assert.Equal(t, "io.k8s.api.core.v1.ConfigMap", selections[0].Fullname)
		assert.Equal(t, "io.k8s.api.apps.v1.Deployment", selections[1].Fullname)
	})

	t.Run("include list overrides", func(t *testing.T) {
		selections, err := Select(idx, []string{"io.k8s.api.apps.v1beta1.Deployment"})
		assert.NoError(t, err)
		assert.Len(t, selections, 2)
		assert.Equal(t, "io.k8s.api.apps.v1beta1.Deployment", selections[1].Fullname)
		// the other kind is unaffected
		assert.Equal(t, "io.k8s.api.core.v1.ConfigMap", selections[0].Fullname)
	})

	t.Run("include naming two versions of one kind rejected", func(t *testing.T) {
		_, err := Select(idx, []string{"io.k8s.api.apps.v1beta1.Deployment", "io.k8s.api.apps.v1.Deployment"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `kind "Deployment"`)
	})

	t.Run("unknown include names are ignored", func(t *testing.T) {
		selections, err := Select(idx, []string{"io.k8s.api.apps.v9.Deployment"})
		assert.NoError(t, err)
		assert.Equal(t, "io.k8s.api.apps.v1.Deployment", selections[1].Fullname)
	})
}

func TestSelectCoverage(t *testing.T) {
	idx, err := BuildIndex(context.Background(), testDocument())
	assert.NoError(t, err)
	selections, err := Select(idx, nil)
	assert.NoError(t, err)
	seen := map[string]int{}
	for _, sel := range selections {
		seen[sel.Basename]++
	}
	assert.Len(t, seen, len(idx))
	for kind, n := range seen {
		assert.Equal(t, 1, n, "kind %q selected %d times", kind, n)
	}
}

func TestSelectIdempotent(t *testing.T) {
	idx, err := BuildIndex(context.Background(), testDocument())
	assert.NoError(t, err)
	include := []string{"io.k8s.api.apps.v1beta1.Deployment"}
	first, err := Select(idx, include)
	assert.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Select(idx, include)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSelectDoesNotMutateIndex(t *testing.T) {
	idx, err := BuildIndex(context.Background(), testDocument())
	assert.NoError(t, err)
	before := append([]*ObjectDefinition{}, idx["Deployment"]...)
	_, err = Select(idx, nil)
	assert.NoError(t, err)
	assert.Equal(t, before, idx["Deployment"])
}

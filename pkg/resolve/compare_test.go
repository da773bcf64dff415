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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tn(version string) TypeName {
	return TypeName{Basename: "Widget", Group: "io.k8s.api.test", Version: version, Fullname: "io.k8s.api.test." + version + ".Widget"}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name   string
		lower  string
		higher string
	}{
		{name: "major_beats_stability", lower: "v1", higher: "v2"},
		{name: "ga_beats_beta", lower: "v1beta1", higher: "v1"},
		{name: "beta_beats_alpha", lower: "v1alpha1", higher: "v1beta1"},
		{name: "tier_numeral", lower: "v1beta1", higher: "v1beta2"},
		{name: "alpha_numeral", lower: "v1alpha1", higher: "v1alpha3"},
		{name: "missing_tier_numeral_is_zero", lower: "v1beta", higher: "v1beta1"},
		{name: "unparsable_ranks_lowest", lower: "", higher: "v1alpha1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tn(tt.lower), tn(tt.higher)
			assert.Less(t, CompareVersions(a, b), 0)
			assert.Greater(t, CompareVersions(b, a), 0)
		})
	}
}

func TestCompareVersionsAntisymmetry(t *testing.T) {
	versions := []string{"v1alpha1", "v1alpha3", "v1beta1", "v1beta2", "v1", "v2alpha1", "v2"}
	for _, a := range versions {
		for _, b := range versions {
			assert.Equal(t, CompareVersions(tn(a), tn(b)), -CompareVersions(tn(b), tn(a)), "%s vs %s", a, b)
		}
	}
}

func TestCompareVersionsTotalOrder(t *testing.T) {
	// sorting a shuffled list must yield the documented ordering,
	// v2 > v1 > v1beta2 > v1beta1 > v1alpha3 > v1alpha1
	shuffled := []TypeName{tn("v1beta1"), tn("v2"), tn("v1alpha1"), tn("v1"), tn("v1alpha3"), tn("v1beta2")}
	sort.SliceStable(shuffled, func(i, j int) bool {
		return CompareVersions(shuffled[i], shuffled[j]) < 0
	})
	got := make([]string, 0, len(shuffled))
	for _, v := range shuffled {
		got = append(got, v.Version)
	}
	assert.Equal(t, []string{"v1alpha1", "v1alpha3", "v1beta1", "v1beta2", "v1", "v2"}, got)
}

func TestCompareVersionsTies(t *testing.T) {
	assert.Zero(t, CompareVersions(tn("v1"), tn("v1")))
	assert.Zero(t, CompareVersions(tn("v1beta"), tn("v1beta")))
	assert.Zero(t, CompareVersions(tn(""), tn("")))
}

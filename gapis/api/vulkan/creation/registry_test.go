// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package creation_test

import (
	"encoding/json"
	"testing"

	"github.com/scottmarsland/renderdoc/core/assert"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/creation"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/handles"
)

func TestRegistryInsertLookup(t *testing.T) {
	ctx := log.Testing(t)
	r := creation.NewRegistry()
	mem := &creation.Memory{Size: 16}
	assert.For(ctx, "insert").ThatError(r.Insert(3, mem)).Succeeded()

	got, err := r.Lookup(3)
	assert.For(ctx, "lookup").ThatError(err).Succeeded()
	assert.For(ctx, "record").That(got).IsSameAs(mem)
	assert.For(ctx, "has").ThatBoolean(r.Has(3)).IsTrue()
	assert.For(ctx, "len").ThatInteger(r.Len()).Equals(1)

	_, err = r.Lookup(4)
	assert.For(ctx, "missing").ThatError(err).HasCause(creation.ErrNotFound)
	assert.For(ctx, "has missing").ThatBoolean(r.Has(4)).IsFalse()

	err = r.Insert(3, &creation.Buffer{})
	assert.For(ctx, "duplicate").ThatError(err).HasCause(creation.ErrDuplicate)
	got, _ = r.Lookup(3)
	assert.For(ctx, "first record kept").That(got).IsSameAs(mem)

	err = r.Insert(handles.NoResource, &creation.Buffer{})
	assert.For(ctx, "no resource").ThatError(err).Failed()
}

func TestRegistryLookupAs(t *testing.T) {
	ctx := log.Testing(t)
	r := creation.NewRegistry()
	r.Insert(1, &creation.Buffer{Size: 64})

	b, err := creation.LookupAs[*creation.Buffer](r, 1)
	assert.For(ctx, "buffer").ThatError(err).Succeeded()
	assert.For(ctx, "size").That(b.Size).Equals(vulkan.VkDeviceSize(64))

	_, err = creation.LookupAs[*creation.Image](r, 1)
	assert.For(ctx, "wrong kind").ThatError(err).HasCause(creation.ErrWrongKind)
	_, err = creation.LookupAs[*creation.Image](r, 2)
	assert.For(ctx, "not found").ThatError(err).HasCause(creation.ErrNotFound)
}

func TestRegistryIDsByKind(t *testing.T) {
	ctx := log.Testing(t)
	r := creation.NewRegistry()
	for _, id := range []creation.ResourceID{9, 2, 5} {
		r.Insert(id, &creation.Buffer{})
	}
	r.Insert(4, &creation.Memory{})

	assert.For(ctx, "buffers").ThatSlice(r.IDs(creation.KindBuffer)).Equals([]creation.ResourceID{2, 5, 9})
	assert.For(ctx, "memory").ThatSlice(r.IDs(creation.KindMemory)).Equals([]creation.ResourceID{4})
	assert.For(ctx, "pipelines").ThatSlice(r.IDs(creation.KindPipeline)).IsEmpty()
}

func TestRegistryJSON(t *testing.T) {
	ctx := log.Testing(t)
	r := creation.NewRegistry()
	r.Insert(3, &creation.Memory{Size: 16})
	r.Insert(1, &creation.Buffer{Usage: 0x10, Size: 8})

	data, err := json.Marshal(r)
	assert.For(ctx, "marshal").ThatError(err).Succeeded()
	assert.For(ctx, "json").ThatString(string(data)).Equals(
		`[{"id":1,"kind":"Buffer","record":{"Usage":16,"Size":8}},` +
			`{"id":3,"kind":"Memory","record":{"Size":16}}]`)
}

func TestKindNames(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "memory").That(creation.KindMemory.String()).Equals("Memory")
	assert.For(ctx, "pipeline").That(creation.KindPipeline.String()).Equals("Pipeline")
	assert.For(ctx, "unknown").That(creation.Kind(100).String()).Equals("Unknown")
	assert.For(ctx, "record kind").That((&creation.DescriptorSetLayout{}).Kind()).Equals(creation.KindDescriptorSetLayout)
}

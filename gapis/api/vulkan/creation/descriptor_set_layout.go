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

package creation

import (
	"context"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
)

// DescriptorSetLayout is the creation state of a VkDescriptorSetLayout.
type DescriptorSetLayout struct {
	Bindings []DescriptorBinding
	// DynamicCount is the number of bindings of a dynamic uniform or storage
	// buffer type.
	DynamicCount uint32
}

// DescriptorBinding is one binding of a DescriptorSetLayout, in declaration
// order.
type DescriptorBinding struct {
	Binding         uint32
	DescriptorCount uint32
	DescriptorType  vulkan.VkDescriptorType
	StageFlags      vulkan.VkShaderStageFlags
	// ImmutableSamplers is nil or holds exactly DescriptorCount samplers.
	ImmutableSamplers []ResourceID
}

// Kind implements Record.
func (*DescriptorSetLayout) Kind() Kind { return KindDescriptorSetLayout }

// DescriptorSlot holds the contents of one descriptor written to a set.
type DescriptorSlot struct {
	Sampler         ResourceID
	ImageView       ResourceID
	ImageLayout     vulkan.VkImageLayout
	Buffer          ResourceID
	Offset          vulkan.VkDeviceSize
	Range           vulkan.VkDeviceSize
	TexelBufferView ResourceID
}

// CreateBindingsArray returns storage for the descriptors of a set using
// this layout: one zeroed slot array per binding, sized to the binding's
// descriptor count.
func (l *DescriptorSetLayout) CreateBindingsArray() [][]DescriptorSlot {
	out := make([][]DescriptorSlot, len(l.Bindings))
	for i, b := range l.Bindings {
		out[i] = sized[DescriptorSlot](b.DescriptorCount)
	}
	return out
}

func isDynamic(t vulkan.VkDescriptorType) bool {
	return t == vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC ||
		t == vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC
}

// AddDescriptorSetLayout captures the layout created as id.
func (i *Info) AddDescriptorSetLayout(ctx context.Context, id ResourceID, ci *vulkan.VkDescriptorSetLayoutCreateInfo) *DescriptorSetLayout {
	return add(ctx, i, id, func(ctx context.Context) *DescriptorSetLayout {
		out := &DescriptorSetLayout{Bindings: make([]DescriptorBinding, len(ci.Bindings))}
		for n, b := range ci.Bindings {
			out.Bindings[n] = DescriptorBinding{
				Binding:         b.Binding,
				DescriptorCount: b.DescriptorCount,
				DescriptorType:  b.DescriptorType,
				StageFlags:      b.StageFlags,
			}
			if isDynamic(b.DescriptorType) {
				out.DynamicCount++
			}
			if b.ImmutableSamplers == nil {
				continue
			}
			if len(b.ImmutableSamplers) < int(b.DescriptorCount) {
				log.W(ctx, "Binding %d has %d immutable samplers for %d descriptors",
					b.Binding, len(b.ImmutableSamplers), b.DescriptorCount)
			}
			samplers := copySized(b.ImmutableSamplers, b.DescriptorCount)
			out.Bindings[n].ImmutableSamplers = convert(samplers, func(s vulkan.VkSampler) ResourceID {
				return i.optionalReference(ctx, s)
			})
		}
		return out
	})
}

// CreateBindingsArray returns descriptor storage for sets using the layout
// captured as layout.
func (i *Info) CreateBindingsArray(layout ResourceID) ([][]DescriptorSlot, error) {
	l, err := LookupAs[*DescriptorSetLayout](i.registry, layout)
	if err != nil {
		return nil, errors.Wrap(err, "Creating bindings array")
	}
	return l.CreateBindingsArray(), nil
}

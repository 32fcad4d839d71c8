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
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/handles"
	"golang.org/x/sync/errgroup"
)

// Tracker receives object creation events. It registers each new handle
// with a fresh ResourceID and captures the object's creation state.
type Tracker struct {
	handles *handles.Table
	info    *Info
}

// NewTracker returns a Tracker with an empty handle table.
func NewTracker(cfg Config) *Tracker {
	table := handles.NewTable()
	return &Tracker{handles: table, info: New(cfg, table)}
}

// Info returns the captured creation state.
func (t *Tracker) Info() *Info { return t.info }

// Handles returns the handle table.
func (t *Tracker) Handles() *handles.Table { return t.handles }

func create[CI any, R Record](ctx context.Context, t *Tracker, h vulkan.NonDispatchableHandle, ci *CI,
	add func(context.Context, ResourceID, *CI) R) (ResourceID, error) {
	if ci == nil {
		return handles.NoResource, errors.Errorf("No creation info for %v", h)
	}
	id, err := t.handles.Register(h)
	if err != nil {
		return handles.NoResource, errors.Wrapf(err, "Registering %T", h)
	}
	add(ctx, id, ci)
	return id, nil
}

// Destroy unbinds h from its ResourceID. The creation record is kept.
func (t *Tracker) Destroy(ctx context.Context, h vulkan.NonDispatchableHandle) error {
	return t.handles.Forget(h)
}

// AllocateMemory captures a memory allocation.
func (t *Tracker) AllocateMemory(ctx context.Context, h vulkan.VkDeviceMemory, ci *vulkan.VkMemoryAllocateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddMemory)
}

// CreateBuffer captures a buffer creation.
func (t *Tracker) CreateBuffer(ctx context.Context, h vulkan.VkBuffer, ci *vulkan.VkBufferCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddBuffer)
}

// CreateBufferView captures a buffer view creation.
func (t *Tracker) CreateBufferView(ctx context.Context, h vulkan.VkBufferView, ci *vulkan.VkBufferViewCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddBufferView)
}

// CreateImage captures an image creation.
func (t *Tracker) CreateImage(ctx context.Context, h vulkan.VkImage, ci *vulkan.VkImageCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddImage)
}

// CreateImageView captures an image view creation.
func (t *Tracker) CreateImageView(ctx context.Context, h vulkan.VkImageView, ci *vulkan.VkImageViewCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddImageView)
}

// CreateSampler captures a sampler creation.
func (t *Tracker) CreateSampler(ctx context.Context, h vulkan.VkSampler, ci *vulkan.VkSamplerCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddSampler)
}

// CreateShaderModule captures a shader module creation.
func (t *Tracker) CreateShaderModule(ctx context.Context, h vulkan.VkShaderModule, ci *vulkan.VkShaderModuleCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddShaderModule)
}

// CreateDescriptorSetLayout captures a descriptor set layout creation.
func (t *Tracker) CreateDescriptorSetLayout(ctx context.Context, h vulkan.VkDescriptorSetLayout, ci *vulkan.VkDescriptorSetLayoutCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddDescriptorSetLayout)
}

// CreatePipelineLayout captures a pipeline layout creation.
func (t *Tracker) CreatePipelineLayout(ctx context.Context, h vulkan.VkPipelineLayout, ci *vulkan.VkPipelineLayoutCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddPipelineLayout)
}

// CreateRenderPass captures a render pass creation.
func (t *Tracker) CreateRenderPass(ctx context.Context, h vulkan.VkRenderPass, ci *vulkan.VkRenderPassCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddRenderPass)
}

// CreateFramebuffer captures a framebuffer creation.
func (t *Tracker) CreateFramebuffer(ctx context.Context, h vulkan.VkFramebuffer, ci *vulkan.VkFramebufferCreateInfo) (ResourceID, error) {
	return create(ctx, t, h, ci, t.info.AddFramebuffer)
}

// CreateGraphicsPipelines captures a batch of graphics pipelines. The
// pipelines are captured concurrently; ids are returned in batch order.
func (t *Tracker) CreateGraphicsPipelines(ctx context.Context, hs []vulkan.VkPipeline, cis []vulkan.VkGraphicsPipelineCreateInfo) ([]ResourceID, error) {
	return createBatch(ctx, t, hs, cis, t.info.AddGraphicsPipeline)
}

// CreateComputePipelines captures a batch of compute pipelines. The
// pipelines are captured concurrently; ids are returned in batch order.
func (t *Tracker) CreateComputePipelines(ctx context.Context, hs []vulkan.VkPipeline, cis []vulkan.VkComputePipelineCreateInfo) ([]ResourceID, error) {
	return createBatch(ctx, t, hs, cis, t.info.AddComputePipeline)
}

func createBatch[CI any](ctx context.Context, t *Tracker, hs []vulkan.VkPipeline, cis []CI,
	add func(context.Context, ResourceID, *CI) *Pipeline) ([]ResourceID, error) {
	if len(hs) != len(cis) {
		return nil, errors.Errorf("Got %d pipeline handles for %d create infos", len(hs), len(cis))
	}
	ids := make([]ResourceID, len(hs))
	g, ctx := errgroup.WithContext(ctx)
	for n := range hs {
		n := n
		g.Go(func() error {
			id, err := create(ctx, t, hs[n], &cis[n], add)
			if err != nil {
				return errors.Wrapf(err, "Pipeline %d of batch", n)
			}
			ids[n] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ids, err
	}
	return ids, nil
}

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
	"context"
	"testing"

	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/creation"
	"github.com/scottmarsland/renderdoc/gapis/shadertools/spirvtest"
)

const (
	setLayoutHandle      = vulkan.VkDescriptorSetLayout(0x100)
	pipelineLayoutHandle = vulkan.VkPipelineLayout(0x200)
	renderPassHandle     = vulkan.VkRenderPass(0x300)
	graphicsModuleHandle = vulkan.VkShaderModule(0x400)
	computeModuleHandle  = vulkan.VkShaderModule(0x401)
	imageHandle          = vulkan.VkImage(0x500)
	imageViewHandle      = vulkan.VkImageView(0x600)
	samplerHandle        = vulkan.VkSampler(0x700)
)

// capture returns a context whose log messages are recorded instead of
// failing the test. Assertions must then report to t directly.
func capture(t *testing.T) (context.Context, *log.Capture) {
	c := &log.Capture{}
	return log.PutHandler(log.Testing(t), c), c
}

// fixture is a tracker holding the objects pipelines depend on.
type fixture struct {
	tracker        *creation.Tracker
	info           *creation.Info
	setLayout      creation.ResourceID
	pipelineLayout creation.ResourceID
	renderPass     creation.ResourceID
	graphicsModule creation.ResourceID
	computeModule  creation.ResourceID
}

func newFixture(ctx context.Context, t *testing.T, cfg creation.Config) *fixture {
	tr := creation.NewTracker(cfg)
	f := &fixture{tracker: tr, info: tr.Info()}
	must := func(id creation.ResourceID, err error) creation.ResourceID {
		if err != nil {
			t.Fatalf("Creating fixture: %v", err)
		}
		return id
	}
	f.setLayout = must(tr.CreateDescriptorSetLayout(ctx, setLayoutHandle, &vulkan.VkDescriptorSetLayoutCreateInfo{
		Bindings: []vulkan.VkDescriptorSetLayoutBinding{{
			Binding:         0,
			DescriptorType:  vulkan.VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER,
			DescriptorCount: 1,
			StageFlags:      vulkan.VkShaderStageFlags(vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_ALL_GRAPHICS),
		}},
	}))
	f.pipelineLayout = must(tr.CreatePipelineLayout(ctx, pipelineLayoutHandle, &vulkan.VkPipelineLayoutCreateInfo{
		SetLayouts: []vulkan.VkDescriptorSetLayout{setLayoutHandle},
	}))
	f.renderPass = must(tr.CreateRenderPass(ctx, renderPassHandle, &vulkan.VkRenderPassCreateInfo{
		Attachments: []vulkan.VkAttachmentDescription{{Format: vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM}},
		Subpasses: []vulkan.VkSubpassDescription{{
			ColorAttachments: []vulkan.VkAttachmentReference{{Attachment: 0}},
		}},
	}))
	f.graphicsModule = must(tr.CreateShaderModule(ctx, graphicsModuleHandle, &vulkan.VkShaderModuleCreateInfo{
		Code: spirvtest.Bytes(spirvtest.Graphics(spirvtest.Version10)),
	}))
	f.computeModule = must(tr.CreateShaderModule(ctx, computeModuleHandle, &vulkan.VkShaderModuleCreateInfo{
		Code: spirvtest.Bytes(spirvtest.Compute(64, 1, 1)),
	}))
	return f
}

// graphicsStages returns the vertex and fragment stages of the graphics
// fixture module.
func graphicsStages() []vulkan.VkPipelineShaderStageCreateInfo {
	return []vulkan.VkPipelineShaderStageCreateInfo{
		{Stage: vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT, Module: graphicsModuleHandle, Name: "main"},
		{Stage: vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT, Module: graphicsModuleHandle, Name: "frag"},
	}
}

// minimalGraphics returns a graphics pipeline with only the required state
// blocks.
func minimalGraphics() vulkan.VkGraphicsPipelineCreateInfo {
	return vulkan.VkGraphicsPipelineCreateInfo{
		Stages: graphicsStages(),
		InputAssemblyState: &vulkan.VkPipelineInputAssemblyStateCreateInfo{
			Topology: vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP,
		},
		RasterizationState: &vulkan.VkPipelineRasterizationStateCreateInfo{
			PolygonMode: vulkan.VkPolygonMode_VK_POLYGON_MODE_LINE,
			CullMode:    vulkan.VkCullModeFlags(vulkan.VkCullModeFlagBits_VK_CULL_MODE_BACK_BIT),
			FrontFace:   vulkan.VkFrontFace_VK_FRONT_FACE_CLOCKWISE,
			LineWidth:   2,
		},
		Layout:     pipelineLayoutHandle,
		RenderPass: renderPassHandle,
	}
}

func computeInfo() vulkan.VkComputePipelineCreateInfo {
	return vulkan.VkComputePipelineCreateInfo{
		Stage: vulkan.VkPipelineShaderStageCreateInfo{
			Stage:  vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_COMPUTE_BIT,
			Module: computeModuleHandle,
			Name:   "main",
		},
		Layout: pipelineLayoutHandle,
	}
}

func (f *fixture) graphicsPipeline(ctx context.Context, t *testing.T, h vulkan.VkPipeline, ci vulkan.VkGraphicsPipelineCreateInfo) *creation.Pipeline {
	ids, err := f.tracker.CreateGraphicsPipelines(ctx, []vulkan.VkPipeline{h}, []vulkan.VkGraphicsPipelineCreateInfo{ci})
	if err != nil {
		t.Fatalf("Creating graphics pipeline: %v", err)
	}
	p, err := creation.LookupAs[*creation.Pipeline](f.info.Registry(), ids[0])
	if err != nil {
		t.Fatalf("Looking up graphics pipeline: %v", err)
	}
	return p
}

func (f *fixture) computePipeline(ctx context.Context, t *testing.T, h vulkan.VkPipeline, ci vulkan.VkComputePipelineCreateInfo) *creation.Pipeline {
	ids, err := f.tracker.CreateComputePipelines(ctx, []vulkan.VkPipeline{h}, []vulkan.VkComputePipelineCreateInfo{ci})
	if err != nil {
		t.Fatalf("Creating compute pipeline: %v", err)
	}
	p, err := creation.LookupAs[*creation.Pipeline](f.info.Registry(), ids[0])
	if err != nil {
		t.Fatalf("Looking up compute pipeline: %v", err)
	}
	return p
}

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

	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
)

// VertexBinding is a vertex buffer binding of a pipeline.
type VertexBinding struct {
	Binding     uint32
	Stride      uint32
	PerInstance bool
}

// VertexAttribute is a vertex attribute of a pipeline.
type VertexAttribute struct {
	Location uint32
	Binding  uint32
	Format   vulkan.VkFormat
	Offset   uint32
}

// InputAssemblyState is the primitive assembly state of a pipeline.
type InputAssemblyState struct {
	Topology               vulkan.VkPrimitiveTopology
	PrimitiveRestartEnable bool
}

// TessellationState is the tessellation state of a pipeline.
type TessellationState struct {
	PatchControlPoints uint32
}

// ViewportState holds the static viewports and scissors of a pipeline.
// Both slices hold exactly the declared viewport count.
type ViewportState struct {
	Viewports []vulkan.VkViewport
	Scissors  []vulkan.VkRect2D
}

// RasterizationState is the rasterization state of a pipeline.
type RasterizationState struct {
	DepthClampEnable        bool
	RasterizerDiscardEnable bool
	PolygonMode             vulkan.VkPolygonMode
	CullMode                vulkan.VkCullModeFlags
	FrontFace               vulkan.VkFrontFace
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

// MultisampleState is the multisample state of a pipeline.
type MultisampleState struct {
	RasterizationSamples vulkan.VkSampleCountFlagBits
	SampleShadingEnable  bool
	MinSampleShading     float32
	// SampleMask is the first word of the sample mask.
	SampleMask            vulkan.VkSampleMask
	AlphaToCoverageEnable bool
	AlphaToOneEnable      bool
}

// DepthStencilState is the depth and stencil test state of a pipeline.
type DepthStencilState struct {
	DepthTestEnable   bool
	DepthWriteEnable  bool
	DepthCompareOp    vulkan.VkCompareOp
	DepthBoundsEnable bool
	StencilTestEnable bool
	Front             vulkan.VkStencilOpState
	Back              vulkan.VkStencilOpState
	MinDepthBounds    float32
	MaxDepthBounds    float32
}

// BlendEquation is one of the color or alpha blend equations of an
// attachment.
type BlendEquation struct {
	Source      vulkan.VkBlendFactor
	Destination vulkan.VkBlendFactor
	Operation   vulkan.VkBlendOp
}

// BlendAttachment is the blend state of one color attachment.
type BlendAttachment struct {
	BlendEnable bool
	Blend       BlendEquation
	AlphaBlend  BlendEquation
	WriteMask   vulkan.VkColorComponentFlags
}

// ColorBlendState is the color blend state of a pipeline.
type ColorBlendState struct {
	LogicOpEnable  bool
	LogicOp        vulkan.VkLogicOp
	BlendConstants [4]float32
	Attachments    []BlendAttachment
}

// DynamicStateCount is the number of dynamic state kinds tracked by
// DynamicStateSet.
const DynamicStateCount = int(vulkan.VkDynamicState_VK_DYNAMIC_STATE_STENCIL_REFERENCE) + 1

// DynamicStateSet is the set of pipeline states declared dynamic.
type DynamicStateSet uint32

// Contains returns true if s is in the set.
func (d DynamicStateSet) Contains(s vulkan.VkDynamicState) bool {
	return int(s) < DynamicStateCount && d&(1<<s) != 0
}

// Len returns the number of states in the set.
func (d DynamicStateSet) Len() int {
	n := 0
	for s := 0; s < DynamicStateCount; s++ {
		if d&(1<<uint(s)) != 0 {
			n++
		}
	}
	return n
}

// Defaults of the optional pipeline state blocks. They apply when the
// application passes a null block pointer, and to the graphics-only state of
// compute pipelines.
var (
	defaultInputAssembly = InputAssemblyState{
		Topology: vulkan.VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST,
	}
	defaultTessellation = TessellationState{PatchControlPoints: 0}
	defaultRasterization = RasterizationState{
		PolygonMode: vulkan.VkPolygonMode_VK_POLYGON_MODE_FILL,
		CullMode:    vulkan.VkCullModeFlags(vulkan.VkCullModeFlagBits_VK_CULL_MODE_NONE),
		FrontFace:   vulkan.VkFrontFace_VK_FRONT_FACE_COUNTER_CLOCKWISE,
		LineWidth:   1,
	}
	defaultMultisample = MultisampleState{
		RasterizationSamples: vulkan.VkSampleCountFlagBits_VK_SAMPLE_COUNT_1_BIT,
		MinSampleShading:     1,
		SampleMask:           ^vulkan.VkSampleMask(0),
	}
	defaultStencilOp = vulkan.VkStencilOpState{
		FailOp:      vulkan.VkStencilOp_VK_STENCIL_OP_KEEP,
		PassOp:      vulkan.VkStencilOp_VK_STENCIL_OP_KEEP,
		DepthFailOp: vulkan.VkStencilOp_VK_STENCIL_OP_KEEP,
		CompareOp:   vulkan.VkCompareOp_VK_COMPARE_OP_ALWAYS,
		CompareMask: 0xff,
		WriteMask:   0xff,
		Reference:   0,
	}
	defaultDepthStencil = DepthStencilState{
		DepthCompareOp: vulkan.VkCompareOp_VK_COMPARE_OP_ALWAYS,
		Front:          defaultStencilOp,
		Back:           defaultStencilOp,
		MinDepthBounds: 0,
		MaxDepthBounds: 1,
	}
)

func vertexInput(ci *vulkan.VkPipelineVertexInputStateCreateInfo) ([]VertexBinding, []VertexAttribute) {
	if ci == nil {
		return []VertexBinding{}, []VertexAttribute{}
	}
	bindings := convert(ci.VertexBindingDescriptions, func(b vulkan.VkVertexInputBindingDescription) VertexBinding {
		return VertexBinding{
			Binding:     b.Binding,
			Stride:      b.Stride,
			PerInstance: b.InputRate == vulkan.VkVertexInputRate_VK_VERTEX_INPUT_RATE_INSTANCE,
		}
	})
	attributes := convert(ci.VertexAttributeDescriptions, func(a vulkan.VkVertexInputAttributeDescription) VertexAttribute {
		return VertexAttribute{Location: a.Location, Binding: a.Binding, Format: a.Format, Offset: a.Offset}
	})
	return bindings, attributes
}

func inputAssembly(ci *vulkan.VkPipelineInputAssemblyStateCreateInfo) InputAssemblyState {
	return InputAssemblyState{Topology: ci.Topology, PrimitiveRestartEnable: boolean(ci.PrimitiveRestartEnable)}
}

func tessellation(ci *vulkan.VkPipelineTessellationStateCreateInfo) TessellationState {
	return TessellationState{PatchControlPoints: ci.PatchControlPoints}
}

func viewport(ci *vulkan.VkPipelineViewportStateCreateInfo) ViewportState {
	count := uint32(0)
	if ci != nil {
		count = ci.ViewportCount
	}
	out := ViewportState{
		Viewports: sized[vulkan.VkViewport](count),
		Scissors:  sized[vulkan.VkRect2D](count),
	}
	if ci != nil {
		// Null arrays leave dynamic viewports and scissors zeroed.
		copy(out.Viewports, ci.Viewports)
		copy(out.Scissors, ci.Scissors)
	}
	return out
}

func rasterization(ci *vulkan.VkPipelineRasterizationStateCreateInfo) RasterizationState {
	return RasterizationState{
		DepthClampEnable:        boolean(ci.DepthClampEnable),
		RasterizerDiscardEnable: boolean(ci.RasterizerDiscardEnable),
		PolygonMode:             ci.PolygonMode,
		CullMode:                ci.CullMode,
		FrontFace:               ci.FrontFace,
		DepthBiasEnable:         boolean(ci.DepthBiasEnable),
		DepthBiasConstantFactor: ci.DepthBiasConstantFactor,
		DepthBiasClamp:          ci.DepthBiasClamp,
		DepthBiasSlopeFactor:    ci.DepthBiasSlopeFactor,
		LineWidth:               ci.LineWidth,
	}
}

func multisample(ci *vulkan.VkPipelineMultisampleStateCreateInfo) MultisampleState {
	out := MultisampleState{
		RasterizationSamples:  ci.RasterizationSamples,
		SampleShadingEnable:   boolean(ci.SampleShadingEnable),
		MinSampleShading:      ci.MinSampleShading,
		SampleMask:            defaultMultisample.SampleMask,
		AlphaToCoverageEnable: boolean(ci.AlphaToCoverageEnable),
		AlphaToOneEnable:      boolean(ci.AlphaToOneEnable),
	}
	if len(ci.SampleMask) > 0 {
		out.SampleMask = ci.SampleMask[0]
	}
	return out
}

func depthStencil(ci *vulkan.VkPipelineDepthStencilStateCreateInfo) DepthStencilState {
	return DepthStencilState{
		DepthTestEnable:   boolean(ci.DepthTestEnable),
		DepthWriteEnable:  boolean(ci.DepthWriteEnable),
		DepthCompareOp:    ci.DepthCompareOp,
		DepthBoundsEnable: boolean(ci.DepthBoundsTestEnable),
		StencilTestEnable: boolean(ci.StencilTestEnable),
		Front:             ci.Front,
		Back:              ci.Back,
		MinDepthBounds:    ci.MinDepthBounds,
		MaxDepthBounds:    ci.MaxDepthBounds,
	}
}

func colorBlend(ci *vulkan.VkPipelineColorBlendStateCreateInfo) ColorBlendState {
	if ci == nil {
		return ColorBlendState{
			LogicOp:     vulkan.VkLogicOp_VK_LOGIC_OP_NO_OP,
			Attachments: []BlendAttachment{},
		}
	}
	return ColorBlendState{
		LogicOpEnable:  boolean(ci.LogicOpEnable),
		LogicOp:        ci.LogicOp,
		BlendConstants: ci.BlendConstants,
		Attachments: convert(ci.Attachments, func(a vulkan.VkPipelineColorBlendAttachmentState) BlendAttachment {
			return BlendAttachment{
				BlendEnable: boolean(a.BlendEnable),
				Blend:       BlendEquation{a.SrcColorBlendFactor, a.DstColorBlendFactor, a.ColorBlendOp},
				AlphaBlend:  BlendEquation{a.SrcAlphaBlendFactor, a.DstAlphaBlendFactor, a.AlphaBlendOp},
				WriteMask:   a.ColorWriteMask,
			}
		}),
	}
}

func dynamicStates(ctx context.Context, ci *vulkan.VkPipelineDynamicStateCreateInfo) DynamicStateSet {
	var out DynamicStateSet
	if ci == nil {
		return out
	}
	for _, s := range ci.DynamicStates {
		if int(s) >= DynamicStateCount {
			log.W(ctx, "Ignoring unknown dynamic state %d", uint32(s))
			continue
		}
		out |= 1 << s
	}
	return out
}

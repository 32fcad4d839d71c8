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
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/handles"
	"github.com/scottmarsland/renderdoc/gapis/shadertools"
)

// Pipeline is the creation state of a graphics or compute VkPipeline.
type Pipeline struct {
	BindPoint    vulkan.VkPipelineBindPoint
	Flags        vulkan.VkPipelineCreateFlags
	Layout       ResourceID
	RenderPass   ResourceID
	Subpass      uint32
	BasePipeline ResourceID

	// Shaders is indexed by shadertools.ShaderType.
	Shaders [shadertools.StageCount]ShaderStage

	VertexBindings   []VertexBinding
	VertexAttributes []VertexAttribute
	InputAssembly    InputAssemblyState
	Tessellation     TessellationState
	Viewport         ViewportState
	Rasterization    RasterizationState
	Multisample      MultisampleState
	DepthStencil     DepthStencilState
	ColorBlend       ColorBlendState
	DynamicStates    DynamicStateSet
}

// Kind implements Record.
func (*Pipeline) Kind() Kind { return KindPipeline }

// Stage returns the shader stage of type t, or nil if the pipeline has no
// shader for it.
func (p *Pipeline) Stage(t shadertools.ShaderType) *ShaderStage {
	if t < 0 || int(t) >= len(p.Shaders) || p.Shaders[t].Module == handles.NoResource {
		return nil
	}
	return &p.Shaders[t]
}

// ShaderStage is one shader of a pipeline.
type ShaderStage struct {
	Module     ResourceID
	EntryPoint string
	// SpecData is the owned copy of the specialization data.
	SpecData       []byte
	Specialization []SpecConstant
	// Reflection and Mapping are shared by every pipeline stage using the
	// same module and entry point.
	Reflection *shadertools.Reflection
	Mapping    *shadertools.BindpointMapping `json:"-"`
}

// SpecConstant is a specialization constant value of a shader stage.
type SpecConstant struct {
	ID     uint32
	Offset uint32
	Size   uint64
	// Data aliases the stage's SpecData from Offset. It is shorter than Size
	// when the map entry runs past the end of the data.
	Data []byte
}

var stageIndices = map[vulkan.VkShaderStageFlagBits]shadertools.ShaderType{
	vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT:                  shadertools.TypeVertex,
	vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT:    shadertools.TypeTessControl,
	vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT: shadertools.TypeTessEvaluation,
	vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_GEOMETRY_BIT:                shadertools.TypeGeometry,
	vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT:                shadertools.TypeFragment,
	vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_COMPUTE_BIT:                 shadertools.TypeCompute,
}

// StageIndex returns the shader type of a single shader stage bit.
func StageIndex(bit vulkan.VkShaderStageFlagBits) (shadertools.ShaderType, bool) {
	t, ok := stageIndices[bit]
	return t, ok
}

// AddGraphicsPipeline captures the graphics pipeline created as id.
func (i *Info) AddGraphicsPipeline(ctx context.Context, id ResourceID, ci *vulkan.VkGraphicsPipelineCreateInfo) *Pipeline {
	return add(ctx, i, id, func(ctx context.Context) *Pipeline {
		p := &Pipeline{
			BindPoint:    vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS,
			Flags:        ci.Flags,
			Layout:       i.reference(ctx, ci.Layout),
			RenderPass:   i.reference(ctx, ci.RenderPass),
			Subpass:      ci.Subpass,
			BasePipeline: i.optionalReference(ctx, ci.BasePipelineHandle),
		}
		for _, s := range ci.Stages {
			t, ok := StageIndex(s.Stage)
			if !ok {
				log.W(ctx, "Ignoring shader with stage bits %#x", uint32(s.Stage))
				continue
			}
			if p.Shaders[t].Module != handles.NoResource {
				log.W(ctx, "Pipeline declares more than one %v shader", t)
			}
			p.Shaders[t] = i.shaderStage(ctx, &s)
		}

		p.VertexBindings, p.VertexAttributes = vertexInput(ci.VertexInputState)
		invariant(ctx, ci.InputAssemblyState != nil, "Graphics pipeline has no input assembly state")
		p.InputAssembly = optional(ci.InputAssemblyState, defaultInputAssembly, inputAssembly)
		p.Tessellation = optional(ci.TessellationState, defaultTessellation, tessellation)
		p.Viewport = viewport(ci.ViewportState)
		invariant(ctx, ci.RasterizationState != nil, "Graphics pipeline has no rasterization state")
		p.Rasterization = optional(ci.RasterizationState, defaultRasterization, rasterization)
		p.Multisample = optional(ci.MultisampleState, defaultMultisample, multisample)
		p.DepthStencil = optional(ci.DepthStencilState, defaultDepthStencil, depthStencil)
		p.ColorBlend = colorBlend(ci.ColorBlendState)
		p.DynamicStates = dynamicStates(ctx, ci.DynamicState)
		return p
	})
}

// AddComputePipeline captures the compute pipeline created as id.
// Graphics-only state takes the defaults of a pipeline without rasterization.
func (i *Info) AddComputePipeline(ctx context.Context, id ResourceID, ci *vulkan.VkComputePipelineCreateInfo) *Pipeline {
	return add(ctx, i, id, func(ctx context.Context) *Pipeline {
		p := &Pipeline{
			BindPoint:    vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE,
			Flags:        ci.Flags,
			Layout:       i.reference(ctx, ci.Layout),
			BasePipeline: i.optionalReference(ctx, ci.BasePipelineHandle),
		}
		if ci.Stage.Stage != vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_COMPUTE_BIT {
			log.W(ctx, "Compute pipeline stage has stage bits %#x", uint32(ci.Stage.Stage))
		}
		p.Shaders[shadertools.TypeCompute] = i.shaderStage(ctx, &ci.Stage)

		p.VertexBindings, p.VertexAttributes = vertexInput(nil)
		p.InputAssembly = defaultInputAssembly
		p.Tessellation = defaultTessellation
		p.Viewport = viewport(nil)
		p.Rasterization = defaultRasterization
		p.Multisample = defaultMultisample
		p.DepthStencil = defaultDepthStencil
		p.ColorBlend = colorBlend(nil)
		return p
	})
}

func (i *Info) shaderStage(ctx context.Context, ci *vulkan.VkPipelineShaderStageCreateInfo) ShaderStage {
	out := ShaderStage{
		Module:     i.reference(ctx, ci.Module),
		EntryPoint: ci.Name,
	}
	var module *shadertools.Module
	if m, err := LookupAs[*ShaderModule](i.registry, out.Module); err == nil {
		module = m.Module
	}
	r := i.reflections.Get(ctx, out.Module, module, ci.Name)
	out.Reflection, out.Mapping = r.Reflection, r.Mapping

	if si := ci.SpecializationInfo; si != nil {
		out.SpecData = append([]byte{}, si.Data...)
		out.Specialization = make([]SpecConstant, len(si.MapEntries))
		for n, e := range si.MapEntries {
			out.Specialization[n] = specConstant(ctx, out.SpecData, e, out.Reflection)
		}
	}
	return out
}

func specConstant(ctx context.Context, data []byte, e vulkan.VkSpecializationMapEntry, refl *shadertools.Reflection) SpecConstant {
	out := SpecConstant{ID: e.ConstantID, Offset: e.Offset, Size: e.Size}
	size, start := uint64(len(data)), uint64(e.Offset)
	var end uint64
	switch {
	case start > size:
		log.W(ctx, "Specialization constant %d offset %d is past the end of %d bytes of data",
			e.ConstantID, e.Offset, size)
		start, end = size, size
	case e.Size > size-start:
		log.W(ctx, "Specialization constant %d (%d bytes at offset %d) is truncated to %d bytes of data",
			e.ConstantID, e.Size, e.Offset, size)
		end = size
	default:
		end = start + e.Size
	}
	out.Data = data[start:end:end]

	if sc, ok := refl.SpecConstant(e.ConstantID); ok && sc.Width != 0 && uint64(sc.Width)/8 != e.Size {
		log.W(ctx, "Specialization constant %d '%s' is %d bits wide but its map entry has %d bytes",
			e.ConstantID, sc.Name, sc.Width, e.Size)
	}
	return out
}

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
	"github.com/scottmarsland/renderdoc/gapis/shadertools"
)

// ShaderModule is the creation state of a VkShaderModule.
type ShaderModule struct {
	// Bytecode is how the module code was ingested.
	Bytecode shadertools.BytecodeKind
	// Module is the parsed code. It is nil when the code was not SPIR-V or
	// could not be parsed.
	Module *shadertools.Module `json:"-"`
	// EntryPoints are the entry points declared by Module.
	EntryPoints []shadertools.EntryPoint
}

// Kind implements Record.
func (*ShaderModule) Kind() Kind { return KindShaderModule }

// AddShaderModule captures the shader module created as id.
// Entry points are reflected later, when a pipeline first uses them.
func (i *Info) AddShaderModule(ctx context.Context, id ResourceID, ci *vulkan.VkShaderModuleCreateInfo) *ShaderModule {
	return add(ctx, i, id, func(ctx context.Context) *ShaderModule {
		code := ci.Code
		out := &ShaderModule{Bytecode: shadertools.Classify(code)}
		var err error
		switch out.Bytecode {
		case shadertools.KindDegraded:
			log.W(ctx, "Shader module not provided with SPIR-V (%d bytes)", len(code))
			return out
		case shadertools.KindEmbeddedSource:
			out.Module, err = i.compileEmbedded(ctx, code)
		case shadertools.KindSpirv:
			invariant(ctx, len(code)%4 == 0, "Shader module code size %d is not a multiple of 4", len(code))
			out.Module, err = i.ingestor.ParseBytecode(ctx, shadertools.Words(code))
		}
		if err != nil {
			log.W(ctx, "Could not ingest %v shader module: %v", out.Bytecode, err)
			out.Module = nil
			return out
		}
		if out.Module != nil {
			out.EntryPoints = out.Module.EntryPoints()
		}
		return out
	})
}

func (i *Info) compileEmbedded(ctx context.Context, code []byte) (*shadertools.Module, error) {
	bit, source, err := shadertools.EmbeddedSource(code)
	if err != nil {
		return nil, err
	}
	stage, ok := StageIndex(vulkan.VkShaderStageFlagBits(bit))
	if !ok {
		return nil, errors.Errorf("Embedded shader source has unknown stage bits %#x", bit)
	}
	return i.ingestor.CompileThenParse(ctx, stage, source)
}

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

	"github.com/scottmarsland/renderdoc/core/assert"
	"github.com/scottmarsland/renderdoc/core/fault"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/creation"
	"github.com/scottmarsland/renderdoc/gapis/shadertools"
	"github.com/scottmarsland/renderdoc/gapis/shadertools/spirvtest"
)

func shaderModule(ctx context.Context, t *testing.T, tr *creation.Tracker, h vulkan.VkShaderModule, code []byte) *creation.ShaderModule {
	id, err := tr.CreateShaderModule(ctx, h, &vulkan.VkShaderModuleCreateInfo{Code: code})
	if err != nil {
		t.Fatalf("Creating shader module: %v", err)
	}
	m, err := creation.LookupAs[*creation.ShaderModule](tr.Info().Registry(), id)
	if err != nil {
		t.Fatalf("Looking up shader module: %v", err)
	}
	return m
}

func TestShaderModuleSpirv(t *testing.T) {
	ctx := log.Testing(t)
	tr := creation.NewTracker(creation.Config{})
	m := shaderModule(ctx, t, tr, graphicsModuleHandle, spirvtest.Bytes(spirvtest.Graphics(spirvtest.Version13)))

	assert.For(ctx, "bytecode").That(m.Bytecode).Equals(shadertools.KindSpirv)
	assert.For(ctx, "module").That(m.Module).IsNotNil()
	assert.For(ctx, "entry points").ThatSlice(m.EntryPoints).Equals([]shadertools.EntryPoint{
		{Name: "main", Model: shadertools.ModelVertex},
		{Name: "frag", Model: shadertools.ModelFragment},
	})
}

func TestShaderModuleDegraded(t *testing.T) {
	ctx, c := capture(t)
	a := assert.To(t)
	tr := creation.NewTracker(creation.Config{})
	for n, code := range [][]byte{
		{},
		{0x44, 0x58, 0x42, 0x43, 0, 0, 0, 0},
		[]byte("#version 450\nvoid main() {}\n"),
	} {
		m := shaderModule(ctx, t, tr, vulkan.VkShaderModule(1+n), code)
		a.For("bytecode %d", n).That(m.Bytecode).Equals(shadertools.KindDegraded)
		a.For("module %d", n).That(m.Module).IsNil()
		a.For("entry points %d", n).ThatSlice(m.EntryPoints).IsEmpty()
	}
	a.For("warnings").ThatInteger(c.Count(log.Warning)).Equals(3)
	a.For("errors").ThatInteger(c.Count(log.Error)).Equals(0)
}

func TestShaderModuleUnparseable(t *testing.T) {
	ctx, c := capture(t)
	a := assert.To(t)
	tr := creation.NewTracker(creation.Config{})
	code := spirvtest.Bytes(spirvtest.Graphics(spirvtest.Version10))[:12]
	m := shaderModule(ctx, t, tr, graphicsModuleHandle, code)
	a.For("bytecode").That(m.Bytecode).Equals(shadertools.KindSpirv)
	a.For("module").That(m.Module).IsNil()
	a.For("warnings").ThatInteger(c.Count(log.Warning)).Equals(1)
}

func TestShaderModuleMisalignedCode(t *testing.T) {
	ctx, c := capture(t)
	a := assert.To(t)
	tr := creation.NewTracker(creation.Config{})
	code := append(spirvtest.Bytes(spirvtest.Compute(8, 8, 1)), 0xff, 0xff)
	m := shaderModule(ctx, t, tr, computeModuleHandle, code)
	a.For("errors").ThatInteger(c.Count(log.Error)).Equals(1)
	a.For("module").That(m.Module).IsNotNil()
	a.For("entry points").ThatSlice(m.EntryPoints).IsLength(1)
}

const fragmentWGSL = `
@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func TestShaderModuleEmbeddedSource(t *testing.T) {
	ctx := log.Testing(t)
	tr := creation.NewTracker(creation.Config{})
	bit := uint32(vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT)
	m := shaderModule(ctx, t, tr, graphicsModuleHandle, spirvtest.EmbeddedSource(bit, fragmentWGSL))

	assert.For(ctx, "bytecode").That(m.Bytecode).Equals(shadertools.KindEmbeddedSource)
	if !assert.For(ctx, "entry points").ThatSlice(m.EntryPoints).IsLength(1) {
		return
	}
	assert.For(ctx, "model").That(m.EntryPoints[0].Model).Equals(shadertools.ModelFragment)
}

const errIngest = fault.Const("Ingest failed")

type recordingIngestor struct {
	words  int
	stages []shadertools.ShaderType
}

func (r *recordingIngestor) ParseBytecode(ctx context.Context, words []uint32) (*shadertools.Module, error) {
	r.words = len(words)
	return nil, errIngest
}

func (r *recordingIngestor) CompileThenParse(ctx context.Context, stage shadertools.ShaderType, source string) (*shadertools.Module, error) {
	r.stages = append(r.stages, stage)
	return nil, errIngest
}

func TestShaderModuleIngestor(t *testing.T) {
	ctx, c := capture(t)
	a := assert.To(t)
	ing := &recordingIngestor{}
	tr := creation.NewTracker(creation.Config{Ingestor: ing})

	words := spirvtest.Compute(1, 1, 1)
	m := shaderModule(ctx, t, tr, computeModuleHandle, spirvtest.Bytes(words))
	a.For("words").ThatInteger(ing.words).Equals(len(words))
	a.For("module").That(m.Module).IsNil()
	a.For("bytecode kept").That(m.Bytecode).Equals(shadertools.KindSpirv)

	bit := uint32(vulkan.VkShaderStageFlagBits_VK_SHADER_STAGE_GEOMETRY_BIT)
	shaderModule(ctx, t, tr, graphicsModuleHandle, spirvtest.EmbeddedSource(bit, "source"))
	a.For("stages").ThatSlice(ing.stages).Equals([]shadertools.ShaderType{shadertools.TypeGeometry})

	shaderModule(ctx, t, tr, vulkan.VkShaderModule(0x402), spirvtest.EmbeddedSource(0x3, "source"))
	a.For("combined bits not compiled").ThatSlice(ing.stages).IsLength(1)

	a.For("warnings").ThatInteger(c.Count(log.Warning)).Equals(3)
}

func TestDegradedModuleReflection(t *testing.T) {
	ctx, c := capture(t)
	a := assert.To(t)
	tr := creation.NewTracker(creation.Config{})
	shaderModule(ctx, t, tr, computeModuleHandle, []byte("not spirv"))
	_, err := tr.CreatePipelineLayout(ctx, pipelineLayoutHandle, &vulkan.VkPipelineLayoutCreateInfo{})
	a.For("layout").ThatError(err).Succeeded()

	ids, err := tr.CreateComputePipelines(ctx, []vulkan.VkPipeline{1}, []vulkan.VkComputePipelineCreateInfo{computeInfo()})
	if !a.For("create").ThatError(err).Succeeded() {
		return
	}
	p, _ := creation.LookupAs[*creation.Pipeline](tr.Info().Registry(), ids[0])
	cs := p.Stage(shadertools.TypeCompute)
	a.For("reflection").That(cs.Reflection).IsNotNil()
	a.For("entry").That(cs.Reflection.EntryPoint).Equals("main")
	a.For("mapping").That(cs.Mapping).IsNotNil()
	a.For("errors").ThatInteger(c.Count(log.Error)).Equals(0)
}

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

package shadertools_test

import (
	"testing"

	"github.com/scottmarsland/renderdoc/core/assert"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/shadertools"
	"github.com/scottmarsland/renderdoc/gapis/shadertools/spirvtest"
)

func TestClassify(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name     string
		code     []byte
		expected shadertools.BytecodeKind
	}{
		{"empty", nil, shadertools.KindDegraded},
		{"short", []byte{0x03, 0x02, 0x23}, shadertools.KindDegraded},
		{"bad magic", []byte{0x01, 0x02, 0x03, 0x04, 0, 0, 1, 0}, shadertools.KindDegraded},
		{"magic only", spirvtest.Bytes([]uint32{spirvtest.Magic}), shadertools.KindSpirv},
		{"spirv", spirvtest.Bytes(spirvtest.Compute(1, 1, 1)), shadertools.KindSpirv},
		{"embedded", spirvtest.EmbeddedSource(0x10, "@fragment fn main() {}"), shadertools.KindEmbeddedSource},
	} {
		assert.For(ctx, "%s", test.name).That(shadertools.Classify(test.code)).Equals(test.expected)
	}
}

func TestEmbeddedSource(t *testing.T) {
	ctx := log.Testing(t)
	code := spirvtest.EmbeddedSource(0x1, "fn main() {}")
	stage, src, err := shadertools.EmbeddedSource(code)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "stage").That(stage).Equals(uint32(0x1))
	assert.For(ctx, "source").ThatString(src).Equals("fn main() {}")

	_, _, err = shadertools.EmbeddedSource(spirvtest.EmbeddedSource(0x1, ""))
	assert.For(ctx, "empty source").ThatError(err).HasCause(shadertools.ErrNoSource)
}

func TestWordsDropsTrailingBytes(t *testing.T) {
	ctx := log.Testing(t)
	words := shadertools.Words([]byte{0x03, 0x02, 0x23, 0x07, 0xff})
	assert.For(ctx, "words").ThatSlice(words).Equals([]uint32{spirvtest.Magic})
}

func TestParseBytecodeErrors(t *testing.T) {
	ctx := log.Testing(t)
	_, err := shadertools.ParseBytecode([]uint32{spirvtest.Magic, spirvtest.Version10})
	assert.For(ctx, "short header").ThatError(err).HasCause(shadertools.ErrTruncated)

	_, err = shadertools.ParseBytecode([]uint32{1, 2, 3, 4, 5})
	assert.For(ctx, "bad magic").ThatError(err).HasCause(shadertools.ErrBadMagic)

	words := spirvtest.Compute(1, 1, 1)
	_, err = shadertools.ParseBytecode(words[:len(words)-1])
	assert.For(ctx, "truncated").ThatError(err).HasCause(shadertools.ErrTruncated)

	_, err = shadertools.ParseBytecode(append([]uint32{spirvtest.Magic, 0, 0, 1, 0}, 0))
	assert.For(ctx, "zero word count").ThatError(err).HasCause(shadertools.ErrTruncated)
}

func TestEntryPoints(t *testing.T) {
	ctx := log.Testing(t)
	m, err := shadertools.ParseBytecode(spirvtest.Graphics(spirvtest.Version10))
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "version").That(m.Version).Equals(uint32(spirvtest.Version10))
	assert.For(ctx, "entry points").ThatSlice(m.EntryPoints()).Equals([]shadertools.EntryPoint{
		{Name: "main", Model: shadertools.ModelVertex},
		{Name: "frag", Model: shadertools.ModelFragment},
	})

	_, _, err = m.Reflect("missing")
	assert.For(ctx, "missing entry").ThatError(err).HasCause(shadertools.ErrNoEntryPoint)
}

func TestReflectVertex(t *testing.T) {
	ctx := log.Testing(t)
	m, err := shadertools.ParseBytecode(spirvtest.Graphics(spirvtest.Version10))
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	r, bp, err := m.Reflect("main")
	if !assert.For(ctx, "reflect").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "stage").That(r.Stage).Equals(shadertools.TypeVertex)
	assert.For(ctx, "model").That(r.ExecutionModel).Equals(shadertools.ModelVertex)
	assert.For(ctx, "inputs").ThatSlice(r.Inputs).Equals([]shadertools.Signature{
		{Name: "position", Location: 0, BuiltIn: -1},
		{Name: "uv", Location: 1, BuiltIn: -1},
	})
	assert.For(ctx, "outputs").ThatSlice(r.Outputs).Equals([]shadertools.Signature{
		{Name: "vUV", Location: 0, BuiltIn: -1},
		{Name: "gl_Position", Location: -1, BuiltIn: 0},
	})
	// Before SPIR-V 1.4 every declared resource is visible to every entry point.
	assert.For(ctx, "resources").ThatSlice(r.Resources).Equals([]shadertools.Resource{
		{Name: "globals", Kind: shadertools.ResourceUniformBuffer, Set: 0, Binding: 0, ArraySize: 1},
		{Name: "textures", Kind: shadertools.ResourceCombinedImageSampler, Set: 0, Binding: 1, ArraySize: 4},
		{Name: "data", Kind: shadertools.ResourceStorageBuffer, Set: 1, Binding: 0, ArraySize: 1},
		{Name: "target", Kind: shadertools.ResourceStorageImage, Set: 1, Binding: 2, ArraySize: 1},
	})
	assert.For(ctx, "push constants").ThatBoolean(r.PushConstants).IsTrue()
	assert.For(ctx, "spec constants").ThatSlice(r.SpecConstants).Equals([]shadertools.SpecConstant{
		{ID: 3, Name: "useFog", Width: 32},
		{ID: 7, Name: "count", Width: 32},
	})
	sc, ok := r.SpecConstant(7)
	assert.For(ctx, "spec constant 7").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "spec constant 7").That(sc.Name).Equals("count")
	_, ok = r.SpecConstant(4)
	assert.For(ctx, "spec constant 4").ThatBoolean(ok).IsFalse()

	assert.For(ctx, "input attributes").ThatSlice(bp.InputAttributes).Equals([]int32{0, 1})
	assert.For(ctx, "bindpoints").ThatSlice(bp.Bindpoints).Equals([]shadertools.Bindpoint{
		{Set: 0, Binding: 0, ArraySize: 1, Used: true},
		{Set: 0, Binding: 1, ArraySize: 4, Used: true},
		{Set: 1, Binding: 0, ArraySize: 1, Used: true},
		{Set: 1, Binding: 2, ArraySize: 1, Used: true},
	})
}

func TestReflectFiltersByInterfaceFromSpirv14(t *testing.T) {
	ctx := log.Testing(t)
	m, err := shadertools.ParseBytecode(spirvtest.Graphics(spirvtest.Version14))
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	vs, _, err := m.Reflect("main")
	assert.For(ctx, "vertex").ThatError(err).Succeeded()
	assert.For(ctx, "vertex resources").ThatSlice(vs.Resources).Equals([]shadertools.Resource{
		{Name: "globals", Kind: shadertools.ResourceUniformBuffer, Set: 0, Binding: 0, ArraySize: 1},
	})
	assert.For(ctx, "vertex push constants").ThatBoolean(vs.PushConstants).IsTrue()

	fs, bp, err := m.Reflect("frag")
	assert.For(ctx, "fragment").ThatError(err).Succeeded()
	assert.For(ctx, "fragment stage").That(fs.Stage).Equals(shadertools.TypeFragment)
	assert.For(ctx, "fragment resources").ThatSlice(fs.Resources).Equals([]shadertools.Resource{
		{Name: "textures", Kind: shadertools.ResourceCombinedImageSampler, Set: 0, Binding: 1, ArraySize: 4},
		{Name: "data", Kind: shadertools.ResourceStorageBuffer, Set: 1, Binding: 0, ArraySize: 1},
		{Name: "target", Kind: shadertools.ResourceStorageImage, Set: 1, Binding: 2, ArraySize: 1},
	})
	assert.For(ctx, "fragment push constants").ThatBoolean(fs.PushConstants).IsFalse()
	assert.For(ctx, "fragment inputs").ThatSlice(fs.Inputs).Equals([]shadertools.Signature{
		{Name: "vUV", Location: 0, BuiltIn: -1},
	})
	assert.For(ctx, "fragment bindpoints").ThatSlice(bp.Bindpoints).IsLength(3)
}

func TestReflectCompute(t *testing.T) {
	ctx := log.Testing(t)
	m, err := shadertools.ParseBytecode(spirvtest.Compute(8, 4, 1))
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	r, bp, err := m.Reflect("main")
	if !assert.For(ctx, "reflect").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "stage").That(r.Stage).Equals(shadertools.TypeCompute)
	assert.For(ctx, "local size").That(r.LocalSize).Equals([3]uint32{8, 4, 1})
	assert.For(ctx, "resources").ThatSlice(r.Resources).Equals([]shadertools.Resource{
		{Name: "values", Kind: shadertools.ResourceStorageBuffer, Set: 0, Binding: 0, ArraySize: 1},
	})
	assert.For(ctx, "spec constants").ThatSlice(r.SpecConstants).Equals([]shadertools.SpecConstant{
		{ID: 0, Name: "blockSize", Width: 32},
	})
	assert.For(ctx, "input attributes").ThatSlice(bp.InputAttributes).IsEmpty()
}

func TestShaderTypeNames(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "count").ThatInteger(shadertools.StageCount).Equals(6)
	assert.For(ctx, "vertex").That(shadertools.TypeVertex.String()).Equals("Vertex")
	assert.For(ctx, "compute").That(shadertools.TypeCompute.String()).Equals("Compute")
	assert.For(ctx, "kind").That(shadertools.ResourceInputAttachment.String()).Equals("InputAttachment")
}

const vertexWGSL = `
@vertex
fn main(@location(0) position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return position;
}
`

func TestCompileThenParse(t *testing.T) {
	ctx := log.Testing(t)
	m, err := shadertools.CompileThenParse(ctx, shadertools.TypeVertex, vertexWGSL)
	if !assert.For(ctx, "compile").ThatError(err).Succeeded() {
		return
	}
	eps := m.EntryPoints()
	if !assert.For(ctx, "entry points").ThatSlice(eps).IsLength(1) {
		return
	}
	assert.For(ctx, "model").That(eps[0].Model).Equals(shadertools.ModelVertex)
	r, _, err := m.Reflect(eps[0].Name)
	assert.For(ctx, "reflect").ThatError(err).Succeeded()
	assert.For(ctx, "stage").That(r.Stage).Equals(shadertools.TypeVertex)

	_, err = shadertools.CompileThenParse(ctx, shadertools.TypeFragment, vertexWGSL)
	assert.For(ctx, "wrong stage").ThatError(err).HasCause(shadertools.ErrNoEntryPoint)

	_, err = shadertools.CompileThenParse(ctx, shadertools.TypeVertex, "this is not wgsl")
	assert.For(ctx, "bad source").ThatError(err).Failed()
}

func TestReflectCyclicArrayType(t *testing.T) {
	ctx := log.Testing(t)
	b := spirvtest.New(spirvtest.Version10)
	arr := b.ID()
	b.Op(spirvtest.OpTypeArray, arr, arr, arr)
	b.Variable(arr, spirvtest.Uniform, "cycle")
	fn := b.Function()
	b.EntryPoint(spirvtest.GLCompute, fn, "main")

	m, err := shadertools.ParseBytecode(b.Words())
	if !assert.For(ctx, "parse").ThatError(err).Succeeded() {
		return
	}
	r, bp, err := m.Reflect("main")
	assert.For(ctx, "err").ThatError(err).HasCause(shadertools.ErrMalformed)
	assert.For(ctx, "reflection").That(r).IsNil()
	assert.For(ctx, "mapping").That(bp).IsNil()
}

func TestReflectHugeInputLocation(t *testing.T) {
	ctx := log.Testing(t)
	b := spirvtest.New(spirvtest.Version10)
	f32 := b.ID()
	b.Op(spirvtest.OpTypeFloat, f32, 32)
	far := b.Variable(f32, spirvtest.Input, "far")
	b.Decorate(far, spirvtest.Location, 0x7fffffff)
	near := b.Variable(f32, spirvtest.Input, "near")
	b.Decorate(near, spirvtest.Location, 1)
	fn := b.Function()
	b.EntryPoint(spirvtest.Vertex, fn, "main", far, near)

	m, err := shadertools.ParseBytecode(b.Words())
	if !assert.For(ctx, "parse").ThatError(err).Succeeded() {
		return
	}
	r, bp, err := m.Reflect("main")
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "inputs").ThatSlice(r.Inputs).IsLength(2)
	assert.For(ctx, "far location").That(r.Inputs[1].Location).Equals(int32(0x7fffffff))
	assert.For(ctx, "input attributes").ThatSlice(bp.InputAttributes).Equals([]int32{-1, 0})
}

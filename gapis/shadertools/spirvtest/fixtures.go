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

package spirvtest

// Execution models.
const (
	Vertex    = 0
	Fragment  = 4
	GLCompute = 5
)

// Graphics returns a module with a vertex entry point "main" and a fragment
// entry point "frag".
//
// The vertex stage reads "position" at location 0 and "uv" at location 1 and
// writes the Position built-in and "vUV" at location 0. The fragment stage
// reads "vUV" at location 0 and writes "color" at location 0.
//
// Resources, in declaration order:
//   - "globals": uniform buffer, set 0 binding 0 (vertex interface)
//   - "textures": 4 combined image samplers, set 0 binding 1 (fragment interface)
//   - "data": runtime sized storage buffer, set 1 binding 0 (fragment interface)
//   - "target": storage image, set 1 binding 2 (fragment interface)
//   - "params": push constant block (vertex interface)
//
// Spec constants: "useFog" bool with id 3, "count" int32 with id 7.
func Graphics(version uint32) []uint32 {
	b := New(version)
	float, vec4, vec2, int32T, uint32T, boolT := b.ID(), b.ID(), b.ID(), b.ID(), b.ID(), b.ID()
	b.Op(OpTypeFloat, float, 32)
	b.Op(OpTypeVector, vec4, float, 4)
	b.Op(OpTypeVector, vec2, float, 2)
	b.Op(OpTypeInt, int32T, 32, 1)
	b.Op(OpTypeInt, uint32T, 32, 0)
	b.Op(OpTypeBool, boolT)

	useFog, count := b.ID(), b.ID()
	b.Op(OpSpecConstantTrue, boolT, useFog)
	b.Op(OpSpecConstant, int32T, count, 16)
	b.Name(useFog, "useFog")
	b.Name(count, "count")
	b.Decorate(useFog, SpecID, 3)
	b.Decorate(count, SpecID, 7)

	position := b.Variable(vec4, Input, "position")
	b.Decorate(position, Location, 0)
	uv := b.Variable(vec2, Input, "uv")
	b.Decorate(uv, Location, 1)
	glPosition := b.Variable(vec4, Output, "gl_Position")
	b.Decorate(glPosition, BuiltIn, 0)
	vUVOut := b.Variable(vec2, Output, "vUV")
	b.Decorate(vUVOut, Location, 0)
	vUVIn := b.Variable(vec2, Input, "vUV")
	b.Decorate(vUVIn, Location, 0)
	color := b.Variable(vec4, Output, "color")
	b.Decorate(color, Location, 0)

	globalsT := b.ID()
	b.Op(OpTypeStruct, globalsT, vec4)
	b.Name(globalsT, "Globals")
	b.Decorate(globalsT, Block)
	globals := b.Variable(globalsT, Uniform, "globals")
	b.Decorate(globals, DescriptorSet, 0)
	b.Decorate(globals, Binding, 0)

	image, sampled, four, array := b.ID(), b.ID(), b.ID(), b.ID()
	b.Op(OpTypeImage, image, float, 1, 0, 0, 0, 1, 0)
	b.Op(OpTypeSampledImage, sampled, image)
	b.Op(OpConstant, uint32T, four, 4)
	b.Op(OpTypeArray, array, sampled, four)
	textures := b.Variable(array, UniformConstant, "textures")
	b.Decorate(textures, DescriptorSet, 0)
	b.Decorate(textures, Binding, 1)

	runtime, dataT := b.ID(), b.ID()
	b.Op(OpTypeRuntimeArray, runtime, vec4)
	b.Op(OpTypeStruct, dataT, runtime)
	b.Decorate(dataT, Block)
	data := b.Variable(dataT, StorageBuffer, "data")
	b.Decorate(data, DescriptorSet, 1)
	b.Decorate(data, Binding, 0)

	storageImage := b.ID()
	b.Op(OpTypeImage, storageImage, float, 1, 0, 0, 0, 2, 1)
	target := b.Variable(storageImage, UniformConstant, "target")
	b.Decorate(target, DescriptorSet, 1)
	b.Decorate(target, Binding, 2)

	paramsT := b.ID()
	b.Op(OpTypeStruct, paramsT, vec4)
	b.Decorate(paramsT, Block)
	params := b.Variable(paramsT, PushConstant, "params")

	vs, fs := b.Function(), b.Function()
	b.EntryPoint(Vertex, vs, "main", position, uv, glPosition, vUVOut, globals, params)
	b.EntryPoint(Fragment, fs, "frag", vUVIn, color, textures, data, target)
	return b.Words()
}

// Compute returns a module with a compute entry point "main" of the given
// local size. It uses one storage buffer "values" at set 0 binding 0 declared
// as a BufferBlock uniform, and declares the uint32 spec constant "blockSize"
// with id 0.
func Compute(x, y, z uint32) []uint32 {
	b := New(Version10)
	uint32T, runtime, valuesT := b.ID(), b.ID(), b.ID()
	b.Op(OpTypeInt, uint32T, 32, 0)
	b.Op(OpTypeRuntimeArray, runtime, uint32T)
	b.Op(OpTypeStruct, valuesT, runtime)
	b.Decorate(valuesT, BufferBlock)
	values := b.Variable(valuesT, Uniform, "values")
	b.Decorate(values, DescriptorSet, 0)
	b.Decorate(values, Binding, 0)

	blockSize := b.ID()
	b.Op(OpSpecConstant, uint32T, blockSize, 64)
	b.Name(blockSize, "blockSize")
	b.Decorate(blockSize, SpecID, 0)

	fn := b.Function()
	b.EntryPoint(GLCompute, fn, "main")
	b.Op(OpExecutionMode, fn, 17, x, y, z)
	return b.Words()
}

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

// Package spirvtest assembles small SPIR-V modules for tests.
package spirvtest

import "encoding/binary"

// SPIR-V opcodes used by the fixtures.
const (
	OpName             = 5
	OpMemberName       = 6
	OpEntryPoint       = 15
	OpExecutionMode    = 16
	OpCapability       = 17
	OpTypeVoid         = 19
	OpTypeBool         = 20
	OpTypeInt          = 21
	OpTypeFloat        = 22
	OpTypeVector       = 23
	OpTypeImage        = 25
	OpTypeSampler      = 26
	OpTypeSampledImage = 27
	OpTypeArray        = 28
	OpTypeRuntimeArray = 29
	OpTypeStruct       = 30
	OpTypePointer      = 32
	OpTypeFunction     = 33
	OpConstant         = 43
	OpSpecConstantTrue = 48
	OpSpecConstant     = 50
	OpFunction         = 54
	OpFunctionEnd      = 56
	OpVariable         = 59
	OpDecorate         = 71
	OpMemberDecorate   = 72
	OpLabel            = 248
	OpReturn           = 253
)

// Decorations.
const (
	SpecID               = 1
	Block                = 2
	BufferBlock          = 3
	BuiltIn              = 11
	Location             = 30
	Binding              = 33
	DescriptorSet        = 34
	InputAttachmentIndex = 43
)

// Storage classes.
const (
	UniformConstant = 0
	Input           = 1
	Uniform         = 2
	Output          = 3
	PushConstant    = 9
	StorageBuffer   = 12
)

// Versions.
const (
	Version10 = 0x00010000
	Version13 = 0x00010300
	Version14 = 0x00010400
)

// Magic is the SPIR-V magic number.
const Magic = 0x07230203

// Builder accumulates instructions of a SPIR-V module.
type Builder struct {
	version uint32
	next    uint32
	body    []uint32
}

// New returns a builder for a module of the given SPIR-V version.
func New(version uint32) *Builder {
	return &Builder{version: version, next: 1}
}

// ID allocates a fresh result id.
func (b *Builder) ID() uint32 {
	id := b.next
	b.next++
	return id
}

// Op appends an instruction.
func (b *Builder) Op(op uint32, operands ...uint32) {
	b.body = append(b.body, uint32(len(operands)+1)<<16|op)
	b.body = append(b.body, operands...)
}

// Name appends an OpName for id.
func (b *Builder) Name(id uint32, name string) {
	b.Op(OpName, append([]uint32{id}, String(name)...)...)
}

// Decorate appends an OpDecorate.
func (b *Builder) Decorate(id, decoration uint32, literals ...uint32) {
	b.Op(OpDecorate, append([]uint32{id, decoration}, literals...)...)
}

// EntryPoint appends an OpEntryPoint.
func (b *Builder) EntryPoint(model, function uint32, name string, interfaces ...uint32) {
	ops := append([]uint32{model, function}, String(name)...)
	b.Op(OpEntryPoint, append(ops, interfaces...)...)
}

// Variable declares a named variable of a fresh pointer type to typ.
func (b *Builder) Variable(typ, storage uint32, name string) uint32 {
	ptr, v := b.ID(), b.ID()
	b.Op(OpTypePointer, ptr, storage, typ)
	b.Op(OpVariable, ptr, v, storage)
	if name != "" {
		b.Name(v, name)
	}
	return v
}

// Function appends an empty void function and returns its id.
func (b *Builder) Function() uint32 {
	void, fnType, fn, label := b.ID(), b.ID(), b.ID(), b.ID()
	b.Op(OpTypeVoid, void)
	b.Op(OpTypeFunction, fnType, void)
	b.Op(OpFunction, void, fn, 0, fnType)
	b.Op(OpLabel, label)
	b.Op(OpReturn)
	b.Op(OpFunctionEnd)
	return fn
}

// Words returns the module with its header.
func (b *Builder) Words() []uint32 {
	return append([]uint32{Magic, b.version, 0, b.next, 0}, b.body...)
}

// Bytes returns the module as little-endian bytes.
func (b *Builder) Bytes() []byte {
	return Bytes(b.Words())
}

// Bytes encodes words as little-endian bytes.
func Bytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// String encodes s as a NUL-terminated literal string.
func String(s string) []uint32 {
	n := len(s)/4 + 1
	words := make([]uint32, n)
	for i := 0; i < len(s); i++ {
		words[i/4] |= uint32(s[i]) << (8 * uint(i%4))
	}
	return words
}

// EmbeddedSource returns module code carrying shader source text for the
// given Vulkan stage bit instead of SPIR-V.
func EmbeddedSource(stageBit uint32, source string) []byte {
	out := Bytes([]uint32{Magic, 0, stageBit})
	out = append(out, source...)
	out = append(out, 0)
	for len(out)%4 != 0 {
		out = append(out, 0)
	}
	return out
}

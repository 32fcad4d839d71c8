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

package shadertools

import (
	"bytes"
	"encoding/binary"
)

// MagicNumber is the first word of every SPIR-V module.
const MagicNumber = 0x07230203

// headerWords is the size of the SPIR-V module header.
const headerWords = 5

// embeddedSourceOffset is the byte offset of the source text in a module
// carrying embedded source: magic, a zero version word and the stage bit.
const embeddedSourceOffset = 12

// BytecodeKind describes how module code has to be ingested.
type BytecodeKind int

const (
	// KindDegraded is code that is not SPIR-V. It is kept unparsed.
	KindDegraded BytecodeKind = iota
	// KindSpirv is SPIR-V to be parsed directly.
	KindSpirv
	// KindEmbeddedSource is shader source text to be compiled, then parsed.
	KindEmbeddedSource
)

func (k BytecodeKind) String() string {
	switch k {
	case KindDegraded:
		return "Degraded"
	case KindSpirv:
		return "SPIR-V"
	case KindEmbeddedSource:
		return "EmbeddedSource"
	default:
		return "Unknown"
	}
}

// Classify inspects the head of code. Code shorter than four bytes or not
// starting with MagicNumber is KindDegraded. A zero word after the magic
// number marks embedded source, anything else is SPIR-V.
func Classify(code []byte) BytecodeKind {
	if len(code) < 4 || binary.LittleEndian.Uint32(code) != MagicNumber {
		return KindDegraded
	}
	if len(code) >= 8 && binary.LittleEndian.Uint32(code[4:]) == 0 {
		return KindEmbeddedSource
	}
	return KindSpirv
}

// Words converts little-endian code bytes to SPIR-V words. Trailing bytes
// that do not fill a word are dropped.
func Words(code []byte) []uint32 {
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return words
}

// EmbeddedSource splits code classified as KindEmbeddedSource into the stage
// bit stored in the third word and the NUL-terminated source text that
// follows it.
func EmbeddedSource(code []byte) (stageBit uint32, source string, err error) {
	if len(code) < embeddedSourceOffset {
		return 0, "", ErrNoSource
	}
	stageBit = binary.LittleEndian.Uint32(code[8:])
	text := code[embeddedSourceOffset:]
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	if len(text) == 0 {
		return stageBit, "", ErrNoSource
	}
	return stageBit, string(text), nil
}

const (
	opName            = 5
	opMemberName      = 6
	opEntryPoint      = 15
	opExecutionMode   = 16
	opTypeBool        = 20
	opTypeInt         = 21
	opTypeFloat       = 22
	opTypeVector      = 23
	opTypeMatrix      = 24
	opTypeImage       = 25
	opTypeSampler     = 26
	opTypeSampledImg  = 27
	opTypeArray       = 28
	opTypeRuntimeArr  = 29
	opTypeStruct      = 30
	opTypePointer     = 32
	opConstant        = 43
	opSpecConstTrue   = 48
	opSpecConstFalse  = 49
	opSpecConstant    = 50
	opVariable        = 59
	opDecorate        = 71
	opMemberDecorate  = 72
	decSpecID         = 1
	decBlock          = 2
	decBufferBlock    = 3
	decBuiltIn        = 11
	decLocation       = 30
	decBinding        = 33
	decDescriptorSet  = 34
	decInputAttachIdx = 43
	modeLocalSize     = 17
	dimBuffer         = 5
	dimSubpassData    = 6
)

// StorageClass is a SPIR-V storage class.
type StorageClass uint32

const (
	StorageUniformConstant StorageClass = 0
	StorageInput           StorageClass = 1
	StorageUniform         StorageClass = 2
	StorageOutput          StorageClass = 3
	StorageWorkgroup       StorageClass = 4
	StoragePrivate         StorageClass = 6
	StorageFunction        StorageClass = 7
	StoragePushConstant    StorageClass = 9
	StorageStorageBuffer   StorageClass = 12
)

// ExecutionModel is a SPIR-V execution model.
type ExecutionModel uint32

const (
	ModelVertex                 ExecutionModel = 0
	ModelTessellationControl    ExecutionModel = 1
	ModelTessellationEvaluation ExecutionModel = 2
	ModelGeometry               ExecutionModel = 3
	ModelFragment               ExecutionModel = 4
	ModelGLCompute              ExecutionModel = 5
	ModelKernel                 ExecutionModel = 6
)

// ShaderType returns the shader type of the execution model.
func (m ExecutionModel) ShaderType() (ShaderType, bool) {
	switch m {
	case ModelVertex:
		return TypeVertex, true
	case ModelTessellationControl:
		return TypeTessControl, true
	case ModelTessellationEvaluation:
		return TypeTessEvaluation, true
	case ModelGeometry:
		return TypeGeometry, true
	case ModelFragment:
		return TypeFragment, true
	case ModelGLCompute, ModelKernel:
		return TypeCompute, true
	default:
		return 0, false
	}
}

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

// Package shadertools ingests shader bytecode: it classifies module code,
// parses SPIR-V into a queryable module, reflects entry points and compiles
// embedded shader source to SPIR-V.
package shadertools

import "github.com/scottmarsland/renderdoc/core/fault"

// ShaderType is the enumerator of shader types.
// The values are dense and can be used to index per-stage arrays.
type ShaderType int

const (
	TypeVertex ShaderType = iota
	TypeTessControl
	TypeTessEvaluation
	TypeGeometry
	TypeFragment
	TypeCompute

	// StageCount is the number of shader types.
	StageCount = int(TypeCompute) + 1
)

func (t ShaderType) String() string {
	switch t {
	case TypeVertex:
		return "Vertex"
	case TypeTessControl:
		return "TessControl"
	case TypeTessEvaluation:
		return "TessEvaluation"
	case TypeGeometry:
		return "Geometry"
	case TypeFragment:
		return "Fragment"
	case TypeCompute:
		return "Compute"
	default:
		return "Unknown"
	}
}

const (
	// ErrBadMagic is returned when the code does not start with the SPIR-V
	// magic number.
	ErrBadMagic = fault.Const("Missing SPIR-V magic number")
	// ErrTruncated is returned when an instruction runs past the end of the
	// code.
	ErrTruncated = fault.Const("Truncated SPIR-V instruction stream")
	// ErrNoEntryPoint is returned when reflecting an entry point the module
	// does not declare.
	ErrNoEntryPoint = fault.Const("Entry point not found")
	// ErrNoSource is returned when embedded source text is missing.
	ErrNoSource = fault.Const("No embedded shader source")
	// ErrMalformed is returned when the type graph of a module is invalid.
	ErrMalformed = fault.Const("Malformed SPIR-V module")
)

// MaxInputLocations bounds the input locations recorded in
// BindpointMapping.InputAttributes. Inputs at higher locations are left
// unmapped.
const MaxInputLocations = 64

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
	"context"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/spirv"
	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/log"
)

// CompileOptions controls how embedded shader source is compiled.
type CompileOptions struct {
	// ShaderType is the stage the source is expected to declare an entry
	// point for.
	ShaderType ShaderType
	// Debug keeps OpName debug names in the output. Reflection needs them
	// for resource and signature names.
	Debug bool
}

// Compile compiles WGSL shader source to SPIR-V words.
func Compile(source string, o CompileOptions) ([]uint32, error) {
	code, err := naga.CompileWithOptions(source, naga.CompileOptions{
		SPIRVVersion: spirv.Version1_3,
		Debug:        o.Debug,
		Validate:     true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "Compiling %v shader", o.ShaderType)
	}
	return Words(code), nil
}

// CompileThenParse compiles the embedded source for stage and parses the
// result. The compiled module must declare an entry point for stage.
func CompileThenParse(ctx context.Context, stage ShaderType, source string) (*Module, error) {
	if source == "" {
		return nil, ErrNoSource
	}
	words, err := Compile(source, CompileOptions{ShaderType: stage, Debug: true})
	if err != nil {
		return nil, err
	}
	m, err := ParseBytecode(words)
	if err != nil {
		return nil, errors.Wrap(err, "Parsing compiled shader")
	}
	for _, e := range m.entryPoints {
		if s, ok := e.model.ShaderType(); ok && s == stage {
			log.D(ctx, "Compiled %v shader: %d words, entry point '%s'", stage, len(words), e.name)
			return m, nil
		}
	}
	return nil, errors.Wrapf(ErrNoEntryPoint, "No %v entry point in compiled source", stage)
}

// Ingestor turns shader module code into parsed modules.
type Ingestor interface {
	// ParseBytecode parses SPIR-V words.
	ParseBytecode(ctx context.Context, words []uint32) (*Module, error)
	// CompileThenParse compiles source text for the given stage, then parses
	// the resulting SPIR-V.
	CompileThenParse(ctx context.Context, stage ShaderType, source string) (*Module, error)
}

// DefaultIngestor parses SPIR-V in process and compiles WGSL source with naga.
var DefaultIngestor Ingestor = ingestor{}

type ingestor struct{}

func (ingestor) ParseBytecode(ctx context.Context, words []uint32) (*Module, error) {
	return ParseBytecode(words)
}

func (ingestor) CompileThenParse(ctx context.Context, stage ShaderType, source string) (*Module, error) {
	return CompileThenParse(ctx, stage, source)
}

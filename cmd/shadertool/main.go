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

// The shadertool command reflects the entry points of a shader module.
// SPIR-V modules are read as is. WGSL source is compiled for the stage given
// with -stage first.
package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/app"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/shadertools"
)

var (
	output = flag.String("out", "", "Destination for the compiled SPIR-V of WGSL input")
	stage  = flag.String("stage", "", "Shader stage of WGSL input (vertex, fragment, compute...)")
	entry  = flag.String("entry", "", "Only reflect this entry point")
)

func main() {
	app.Name = "shadertool"
	app.ShortHelp = "Prints the reflection of SPIR-V or WGSL shaders as JSON"
	app.ShortUsage = "<shader file>"
	app.Run(run)
}

type entryPoint struct {
	Name       string                        `json:"name"`
	Reflection *shadertools.Reflection       `json:"reflection"`
	Mapping    *shadertools.BindpointMapping `json:"mapping"`
}

func run(ctx context.Context) error {
	args := flag.Args()
	if len(args) != 1 {
		return errors.Wrap(app.ErrUsage, "Expected a single shader file")
	}
	input := args[0]
	code, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	m, err := load(ctx, input, code)
	if err != nil {
		return err
	}

	out := []entryPoint{}
	for _, e := range m.EntryPoints() {
		if *entry != "" && e.Name != *entry {
			continue
		}
		r, mapping, err := m.Reflect(e.Name)
		if err != nil {
			return errors.Wrapf(err, "Reflecting '%s'", e.Name)
		}
		out = append(out, entryPoint{Name: e.Name, Reflection: r, Mapping: mapping})
	}
	if *entry != "" && len(out) == 0 {
		return errors.Wrapf(shadertools.ErrNoEntryPoint, "'%s'", *entry)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func load(ctx context.Context, input string, code []byte) (*shadertools.Module, error) {
	if filepath.Ext(input) != ".wgsl" {
		if shadertools.Classify(code) != shadertools.KindSpirv {
			return nil, errors.Wrapf(shadertools.ErrBadMagic, "%s", input)
		}
		return shadertools.ParseBytecode(shadertools.Words(code))
	}

	t, err := parseStage(*stage)
	if err != nil {
		return nil, err
	}
	words, err := shadertools.Compile(string(code), shadertools.CompileOptions{ShaderType: t, Debug: true})
	if err != nil {
		return nil, err
	}
	log.I(ctx, "Compiled %v shader to %d words", t, len(words))
	if *output != "" {
		if err := os.WriteFile(*output, wordBytes(words), 0666); err != nil {
			return nil, err
		}
	}
	return shadertools.ParseBytecode(words)
}

func parseStage(s string) (shadertools.ShaderType, error) {
	for t := shadertools.TypeVertex; int(t) < shadertools.StageCount; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, errors.Wrapf(app.ErrUsage, "Unknown shader stage %q", s)
}

func wordBytes(words []uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}

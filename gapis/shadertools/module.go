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
	"github.com/pkg/errors"
)

// Module is a parsed SPIR-V module. It retains the declarations needed to
// reflect any of its entry points.
type Module struct {
	// Version is the SPIR-V version word, 0x00010300 for 1.3.
	Version uint32
	// Generator is the generator magic number.
	Generator uint32
	// Bound is the upper bound of the module's result ids.
	Bound uint32

	entryPoints   []entryPoint
	localSizes    map[uint32][3]uint32
	names         map[uint32]string
	decorations   map[uint32]*decorations
	memberBuiltIn map[uint32]uint32
	types         map[uint32]instruction
	constants     map[uint32]uint32
	specConstants []specConstant
	variables     []variable
}

type instruction struct {
	op       uint32
	operands []uint32
}

type entryPoint struct {
	model      ExecutionModel
	function   uint32
	name       string
	interfaces []uint32
}

type decorations struct {
	set, binding, location, builtIn, specID, inputAttachment optionalU32
	block, bufferBlock                                        bool
}

type optionalU32 struct {
	value uint32
	valid bool
}

func (o *optionalU32) set(v uint32) { o.value, o.valid = v, true }

type specConstant struct {
	id, typ uint32
}

type variable struct {
	id, typ uint32
	storage StorageClass
}

// ParseBytecode parses the SPIR-V words into a Module.
func ParseBytecode(words []uint32) (*Module, error) {
	if len(words) < headerWords {
		return nil, errors.Wrapf(ErrTruncated, "Header needs %d words, got %d", headerWords, len(words))
	}
	if words[0] != MagicNumber {
		return nil, errors.Wrapf(ErrBadMagic, "Got %#x", words[0])
	}
	m := &Module{
		Version:       words[1],
		Generator:     words[2],
		Bound:         words[3],
		localSizes:    map[uint32][3]uint32{},
		names:         map[uint32]string{},
		decorations:   map[uint32]*decorations{},
		memberBuiltIn: map[uint32]uint32{},
		types:         map[uint32]instruction{},
		constants:     map[uint32]uint32{},
	}
	for i := headerWords; i < len(words); {
		count, op := int(words[i]>>16), words[i]&0xffff
		if count == 0 || i+count > len(words) {
			return nil, errors.Wrapf(ErrTruncated, "Instruction %d at word %d has word count %d", op, i, count)
		}
		m.add(op, words[i+1:i+count])
		i += count
	}
	return m, nil
}

func (m *Module) add(op uint32, ops []uint32) {
	// Instructions with too few operands for their opcode are skipped.
	switch op {
	case opEntryPoint:
		if len(ops) < 3 {
			return
		}
		name, n := decodeString(ops[2:])
		m.entryPoints = append(m.entryPoints, entryPoint{
			model:      ExecutionModel(ops[0]),
			function:   ops[1],
			name:       name,
			interfaces: ops[2+n:],
		})
	case opExecutionMode:
		if len(ops) >= 5 && ops[1] == modeLocalSize {
			m.localSizes[ops[0]] = [3]uint32{ops[2], ops[3], ops[4]}
		}
	case opName:
		if len(ops) >= 2 {
			m.names[ops[0]], _ = decodeString(ops[1:])
		}
	case opDecorate:
		if len(ops) >= 2 {
			m.decorate(ops[0], ops[1], ops[2:])
		}
	case opMemberDecorate:
		if len(ops) >= 4 && ops[2] == decBuiltIn {
			if _, ok := m.memberBuiltIn[ops[0]]; !ok {
				m.memberBuiltIn[ops[0]] = ops[3]
			}
		}
	case opTypeBool, opTypeInt, opTypeFloat, opTypeVector, opTypeMatrix,
		opTypeImage, opTypeSampler, opTypeSampledImg, opTypeArray,
		opTypeRuntimeArr, opTypeStruct, opTypePointer:
		if len(ops) >= 1 {
			m.types[ops[0]] = instruction{op, ops}
		}
	case opConstant:
		if len(ops) >= 3 {
			m.constants[ops[1]] = ops[2]
		}
	case opSpecConstTrue, opSpecConstFalse, opSpecConstant:
		if len(ops) >= 2 {
			m.specConstants = append(m.specConstants, specConstant{id: ops[1], typ: ops[0]})
			if op == opSpecConstant && len(ops) >= 3 {
				m.constants[ops[1]] = ops[2]
			}
		}
	case opVariable:
		if len(ops) >= 3 {
			m.variables = append(m.variables, variable{id: ops[1], typ: ops[0], storage: StorageClass(ops[2])})
		}
	}
}

func (m *Module) decorate(target, decoration uint32, literals []uint32) {
	d, ok := m.decorations[target]
	if !ok {
		d = &decorations{}
		m.decorations[target] = d
	}
	switch decoration {
	case decBlock:
		d.block = true
	case decBufferBlock:
		d.bufferBlock = true
	}
	if len(literals) == 0 {
		return
	}
	switch decoration {
	case decSpecID:
		d.specID.set(literals[0])
	case decBuiltIn:
		d.builtIn.set(literals[0])
	case decLocation:
		d.location.set(literals[0])
	case decBinding:
		d.binding.set(literals[0])
	case decDescriptorSet:
		d.set.set(literals[0])
	case decInputAttachIdx:
		d.inputAttachment.set(literals[0])
	}
}

// EntryPoint is an entry point declared by a module.
type EntryPoint struct {
	Name  string
	Model ExecutionModel
}

// EntryPoints returns the entry points declared by the module, in
// declaration order.
func (m *Module) EntryPoints() []EntryPoint {
	out := make([]EntryPoint, len(m.entryPoints))
	for i, e := range m.entryPoints {
		out[i] = EntryPoint{Name: e.name, Model: e.model}
	}
	return out
}

func (m *Module) decorationsOf(id uint32) *decorations {
	if d, ok := m.decorations[id]; ok {
		return d
	}
	return &decorations{}
}

// decodeString decodes a NUL-terminated literal string packed little-endian
// into words. It returns the string and the number of words it occupies.
func decodeString(words []uint32) (string, int) {
	buf := make([]byte, 0, len(words)*4)
	for i, w := range words {
		for b := 0; b < 4; b++ {
			c := byte(w >> (8 * b))
			if c == 0 {
				return string(buf), i + 1
			}
			buf = append(buf, c)
		}
	}
	return string(buf), len(words)
}

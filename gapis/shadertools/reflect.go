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
	"sort"

	"github.com/pkg/errors"
)

// spirv14 is the first SPIR-V version whose entry point interface lists every
// global variable the entry point statically uses.
const spirv14 = 0x00010400

// ResourceKind is the descriptor kind of a shader resource.
type ResourceKind int

const (
	ResourceSampler ResourceKind = iota
	ResourceCombinedImageSampler
	ResourceSampledImage
	ResourceStorageImage
	ResourceUniformTexelBuffer
	ResourceStorageTexelBuffer
	ResourceUniformBuffer
	ResourceStorageBuffer
	ResourceInputAttachment
)

var resourceKindNames = [...]string{
	"Sampler",
	"CombinedImageSampler",
	"SampledImage",
	"StorageImage",
	"UniformTexelBuffer",
	"StorageTexelBuffer",
	"UniformBuffer",
	"StorageBuffer",
	"InputAttachment",
}

func (k ResourceKind) String() string {
	if k < 0 || int(k) >= len(resourceKindNames) {
		return "Unknown"
	}
	return resourceKindNames[k]
}

// MarshalText encodes the kind as its name.
func (k ResourceKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Signature is a stage input or output.
type Signature struct {
	Name string
	// Location is the interface location, -1 for built-ins.
	Location int32
	// BuiltIn is the SPIR-V BuiltIn value, -1 for user variables.
	BuiltIn int32
}

// IsBuiltIn returns true if the signature element is a built-in variable.
func (s Signature) IsBuiltIn() bool { return s.BuiltIn >= 0 }

// Resource is a descriptor bound resource used by a shader.
type Resource struct {
	Name    string
	Kind    ResourceKind
	Set     uint32
	Binding uint32
	// ArraySize is the number of descriptors, 0 for runtime sized arrays.
	ArraySize uint32
}

// SpecConstant is a specialization constant declared by a module.
type SpecConstant struct {
	ID   uint32
	Name string
	// Width is the size of the constant in bits. Booleans are 32 bits wide.
	Width uint32
}

// Reflection is the metadata of one entry point.
type Reflection struct {
	EntryPoint     string
	Stage          ShaderType
	ExecutionModel ExecutionModel
	Inputs         []Signature
	Outputs        []Signature
	Resources      []Resource
	PushConstants  bool
	SpecConstants  []SpecConstant
	LocalSize      [3]uint32
}

// SpecConstant returns the specialization constant with the given id.
func (r *Reflection) SpecConstant(id uint32) (SpecConstant, bool) {
	i := sort.Search(len(r.SpecConstants), func(i int) bool { return r.SpecConstants[i].ID >= id })
	if i < len(r.SpecConstants) && r.SpecConstants[i].ID == id {
		return r.SpecConstants[i], true
	}
	return SpecConstant{}, false
}

// Bindpoint is the descriptor binding of a reflected resource.
type Bindpoint struct {
	Set       uint32
	Binding   uint32
	ArraySize uint32
	Used      bool
}

// BindpointMapping maps reflected interface elements to API binding slots.
type BindpointMapping struct {
	// InputAttributes is indexed by input location and holds the index of the
	// input signature element at that location, or -1.
	InputAttributes []int32
	// Bindpoints is parallel to Reflection.Resources.
	Bindpoints []Bindpoint
}

// Reflect computes the reflection and bindpoint mapping of the named entry
// point.
func (m *Module) Reflect(entry string) (*Reflection, *BindpointMapping, error) {
	var ep *entryPoint
	for i := range m.entryPoints {
		if m.entryPoints[i].name == entry {
			ep = &m.entryPoints[i]
			break
		}
	}
	if ep == nil {
		return nil, nil, errors.Wrapf(ErrNoEntryPoint, "'%s'", entry)
	}
	stage, ok := ep.model.ShaderType()
	if !ok {
		return nil, nil, errors.Errorf("Unsupported execution model %d for '%s'", ep.model, entry)
	}

	r := &Reflection{
		EntryPoint:     entry,
		Stage:          stage,
		ExecutionModel: ep.model,
		LocalSize:      m.localSizes[ep.function],
	}

	iface := make(map[uint32]bool, len(ep.interfaces))
	for _, id := range ep.interfaces {
		iface[id] = true
	}
	filterResources := m.Version >= spirv14

	for _, v := range m.variables {
		switch v.storage {
		case StorageInput, StorageOutput:
			if !iface[v.id] {
				continue
			}
			sig, err := m.signature(v)
			if err != nil {
				return nil, nil, err
			}
			if v.storage == StorageInput {
				r.Inputs = append(r.Inputs, sig)
			} else {
				r.Outputs = append(r.Outputs, sig)
			}
		case StoragePushConstant:
			if filterResources && !iface[v.id] {
				continue
			}
			r.PushConstants = true
		case StorageUniformConstant, StorageUniform, StorageStorageBuffer:
			if filterResources && !iface[v.id] {
				continue
			}
			res, ok, err := m.resource(v)
			if err != nil {
				return nil, nil, err
			}
			if ok {
				r.Resources = append(r.Resources, res)
			}
		}
	}
	sortSignatures(r.Inputs)
	sortSignatures(r.Outputs)
	sort.SliceStable(r.Resources, func(i, j int) bool {
		a, b := r.Resources[i], r.Resources[j]
		if a.Set != b.Set {
			return a.Set < b.Set
		}
		return a.Binding < b.Binding
	})

	for _, sc := range m.specConstants {
		d := m.decorationsOf(sc.id)
		if !d.specID.valid {
			continue
		}
		r.SpecConstants = append(r.SpecConstants, SpecConstant{
			ID:    d.specID.value,
			Name:  m.names[sc.id],
			Width: m.scalarWidth(sc.typ),
		})
	}
	sort.Slice(r.SpecConstants, func(i, j int) bool { return r.SpecConstants[i].ID < r.SpecConstants[j].ID })

	return r, mapping(r), nil
}

func mapping(r *Reflection) *BindpointMapping {
	out := &BindpointMapping{Bindpoints: make([]Bindpoint, len(r.Resources))}
	for i, sig := range r.Inputs {
		if sig.IsBuiltIn() || sig.Location < 0 || sig.Location >= MaxInputLocations {
			continue
		}
		for int(sig.Location) >= len(out.InputAttributes) {
			out.InputAttributes = append(out.InputAttributes, -1)
		}
		out.InputAttributes[sig.Location] = int32(i)
	}
	for i, res := range r.Resources {
		out.Bindpoints[i] = Bindpoint{
			Set:       res.Set,
			Binding:   res.Binding,
			ArraySize: res.ArraySize,
			Used:      true,
		}
	}
	return out
}

func sortSignatures(s []Signature) {
	sort.SliceStable(s, func(i, j int) bool {
		a, b := s[i], s[j]
		if a.IsBuiltIn() != b.IsBuiltIn() {
			return !a.IsBuiltIn()
		}
		if a.IsBuiltIn() {
			return a.BuiltIn < b.BuiltIn
		}
		return a.Location < b.Location
	})
}

func (m *Module) signature(v variable) (Signature, error) {
	sig := Signature{Name: m.names[v.id], Location: -1, BuiltIn: -1}
	st, _, err := m.unwrapArrays(m.pointee(v.typ))
	if err != nil {
		return Signature{}, errors.Wrapf(err, "Variable %d", v.id)
	}
	d := m.decorationsOf(v.id)
	switch {
	case d.builtIn.valid:
		sig.BuiltIn = int32(d.builtIn.value)
	case d.location.valid:
		sig.Location = int32(d.location.value)
	default:
		// Built-in blocks such as gl_PerVertex decorate their members.
		if st != 0 {
			if b, ok := m.memberBuiltIn[st]; ok {
				sig.BuiltIn = int32(b)
			}
		}
	}
	if sig.Name == "" && st != 0 {
		sig.Name = m.names[st]
	}
	return sig, nil
}

func (m *Module) resource(v variable) (Resource, bool, error) {
	base, size, err := m.unwrapArrays(m.pointee(v.typ))
	if err != nil {
		return Resource{}, false, errors.Wrapf(err, "Variable %d", v.id)
	}
	t, ok := m.types[base]
	if !ok {
		return Resource{}, false, nil
	}
	d := m.decorationsOf(v.id)
	res := Resource{
		Name:      m.names[v.id],
		Set:       d.set.value,
		Binding:   d.binding.value,
		ArraySize: size,
	}
	switch t.op {
	case opTypeStruct:
		switch {
		case v.storage == StorageStorageBuffer:
			res.Kind = ResourceStorageBuffer
		case v.storage == StorageUniform && m.decorationsOf(base).bufferBlock:
			res.Kind = ResourceStorageBuffer
		case v.storage == StorageUniform:
			res.Kind = ResourceUniformBuffer
		default:
			return Resource{}, false, nil
		}
		if res.Name == "" {
			res.Name = m.names[base]
		}
	case opTypeSampler:
		res.Kind = ResourceSampler
	case opTypeSampledImg:
		res.Kind = ResourceCombinedImageSampler
	case opTypeImage:
		if len(t.operands) < 7 {
			return Resource{}, false, nil
		}
		dim, sampled := t.operands[2], t.operands[6]
		switch {
		case dim == dimSubpassData:
			res.Kind = ResourceInputAttachment
		case dim == dimBuffer && sampled == 2:
			res.Kind = ResourceStorageTexelBuffer
		case dim == dimBuffer:
			res.Kind = ResourceUniformTexelBuffer
		case sampled == 2:
			res.Kind = ResourceStorageImage
		default:
			res.Kind = ResourceSampledImage
		}
	default:
		return Resource{}, false, nil
	}
	return res, true, nil
}

// pointee returns the type pointed to by the pointer type id, or 0.
func (m *Module) pointee(ptr uint32) uint32 {
	if t, ok := m.types[ptr]; ok && t.op == opTypePointer && len(t.operands) >= 3 {
		return t.operands[2]
	}
	return 0
}

// unwrapArrays strips array types from id, returning the element type and the
// product of the array lengths. A runtime array yields a size of 0.
// An array chain longer than the number of declared types is cyclic.
func (m *Module) unwrapArrays(id uint32) (uint32, uint32, error) {
	size := uint32(1)
	for depth := 0; ; depth++ {
		if depth > len(m.types) {
			return 0, 0, errors.Wrapf(ErrMalformed, "Array type %d contains itself", id)
		}
		t, ok := m.types[id]
		if !ok {
			return id, size, nil
		}
		switch {
		case t.op == opTypeArray && len(t.operands) >= 3:
			size *= m.constants[t.operands[2]]
			id = t.operands[1]
		case t.op == opTypeRuntimeArr && len(t.operands) >= 2:
			size = 0
			id = t.operands[1]
		default:
			return id, size, nil
		}
	}
}

func (m *Module) scalarWidth(typ uint32) uint32 {
	t, ok := m.types[typ]
	if !ok {
		return 0
	}
	switch t.op {
	case opTypeBool:
		return 32
	case opTypeInt, opTypeFloat:
		if len(t.operands) >= 2 {
			return t.operands[1]
		}
	}
	return 0
}

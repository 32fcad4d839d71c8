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

package creation

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/fault"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/handles"
)

const (
	// ErrNotFound is returned when looking up an id that holds no record.
	ErrNotFound = fault.Const("Creation record not found")
	// ErrDuplicate is returned when inserting a second record for an id.
	ErrDuplicate = fault.Const("Creation record already exists")
	// ErrWrongKind is returned when a record is not of the requested kind.
	ErrWrongKind = fault.Const("Creation record has a different kind")
)

// Kind is the kind of object a Record was captured from.
type Kind int

const (
	KindMemory Kind = iota
	KindBuffer
	KindBufferView
	KindImage
	KindImageView
	KindSampler
	KindShaderModule
	KindDescriptorSetLayout
	KindPipelineLayout
	KindRenderPass
	KindFramebuffer
	KindPipeline
)

var kindNames = [...]string{
	"Memory",
	"Buffer",
	"BufferView",
	"Image",
	"ImageView",
	"Sampler",
	"ShaderModule",
	"DescriptorSetLayout",
	"PipelineLayout",
	"RenderPass",
	"Framebuffer",
	"Pipeline",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Record is the normalized creation state of one object.
type Record interface {
	Kind() Kind
}

// Registry holds the creation records of a capture session, indexed by
// ResourceID. Records are inserted once and never removed.
// It is safe for concurrent use.
type Registry struct {
	mutex   sync.RWMutex
	records map[ResourceID]Record
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{records: map[ResourceID]Record{}}
}

// Insert adds the record for id.
func (r *Registry) Insert(id ResourceID, rec Record) error {
	if id == handles.NoResource {
		return errors.Errorf("Cannot insert %v record without a resource id", rec.Kind())
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if old, ok := r.records[id]; ok {
		return errors.Wrapf(ErrDuplicate, "%v already holds a %v", id, old.Kind())
	}
	r.records[id] = rec
	return nil
}

// Lookup returns the record for id.
func (r *Registry) Lookup(id ResourceID) (Record, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if rec, ok := r.records[id]; ok {
		return rec, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "%v", id)
}

// Has returns true if the registry holds a record for id.
func (r *Registry) Has(id ResourceID) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.records[id]
	return ok
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.records)
}

// IDs returns the ids of all records of kind k in ascending order.
func (r *Registry) IDs(k Kind) []ResourceID {
	r.mutex.RLock()
	out := []ResourceID{}
	for id, rec := range r.records {
		if rec.Kind() == k {
			out = append(out, id)
		}
	}
	r.mutex.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LookupAs returns the record for id as a T.
func LookupAs[T Record](r *Registry, id ResourceID) (T, error) {
	var zero T
	rec, err := r.Lookup(id)
	if err != nil {
		return zero, err
	}
	out, ok := rec.(T)
	if !ok {
		return zero, errors.Wrapf(ErrWrongKind, "%v is a %v, not a %v", id, rec.Kind(), zero.Kind())
	}
	return out, nil
}

type registryEntry struct {
	ID     uint64 `json:"id"`
	Kind   Kind   `json:"kind"`
	Record Record `json:"record"`
}

// MarshalJSON encodes every record in ascending id order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	r.mutex.RLock()
	entries := make([]registryEntry, 0, len(r.records))
	for id, rec := range r.records {
		entries = append(entries, registryEntry{ID: uint64(id), Kind: rec.Kind(), Record: rec})
	}
	r.mutex.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return json.Marshal(entries)
}

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

// Package handles maps transient Vulkan handles to stable resource
// identifiers that outlive the handles themselves.
package handles

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/fault"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
)

// ResourceID is the stable identifier of a captured object.
// Identifiers are never reused within a Table.
type ResourceID uint64

// NoResource is the identifier of the null handle and of unresolved handles.
const NoResource = ResourceID(0)

func (id ResourceID) String() string {
	if id == NoResource {
		return "(NoResource)"
	}
	return fmt.Sprintf("ResourceID<%d>", uint64(id))
}

// ErrNullHandle is returned when registering a VK_NULL_HANDLE.
const ErrNullHandle = fault.Const("Cannot register a null handle")

type key struct {
	typ    reflect.Type
	handle uint64
}

// Table assigns fresh ResourceIDs to live handles.
// It is safe for concurrent use.
type Table struct {
	mutex   sync.RWMutex
	last    ResourceID
	ids     map[key]ResourceID
	handles map[ResourceID]vulkan.NonDispatchableHandle
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		ids:     map[key]ResourceID{},
		handles: map[ResourceID]vulkan.NonDispatchableHandle{},
	}
}

func keyOf(h vulkan.NonDispatchableHandle) key {
	return key{reflect.TypeOf(h), h.Handle()}
}

// Register binds h to a fresh ResourceID and returns it. Registering a handle
// value that is still bound rebinds it, as drivers may reuse the values of
// destroyed objects.
func (t *Table) Register(h vulkan.NonDispatchableHandle) (ResourceID, error) {
	if h == nil || h.Handle() == 0 {
		return NoResource, ErrNullHandle
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.last++
	id := t.last
	t.ids[keyOf(h)] = id
	t.handles[id] = h
	return id, nil
}

// ResolveID returns the ResourceID currently bound to h, or NoResource if h
// is null or was never registered.
func (t *Table) ResolveID(h vulkan.NonDispatchableHandle) ResourceID {
	if h == nil || h.Handle() == 0 {
		return NoResource
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.ids[keyOf(h)]
}

// Forget unbinds h. The ResourceID it was bound to stays valid for Handle.
func (t *Table) Forget(h vulkan.NonDispatchableHandle) error {
	if h == nil || h.Handle() == 0 {
		return ErrNullHandle
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	k := keyOf(h)
	if _, ok := t.ids[k]; !ok {
		return errors.Errorf("%v is not registered", h)
	}
	delete(t.ids, k)
	return nil
}

// Handle returns the handle that id was assigned to.
func (t *Table) Handle(id ResourceID) (vulkan.NonDispatchableHandle, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	h, ok := t.handles[id]
	return h, ok
}

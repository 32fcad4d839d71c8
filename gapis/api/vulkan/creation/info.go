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

// Package creation captures the creation state of Vulkan objects.
//
// Every object created by the application is normalized into an owned,
// fully defaulted Record keyed by a stable ResourceID. Records reference
// each other by ResourceID only, so they remain valid after the application
// destroys or reuses its handles. Shader reflection is computed at most once
// per module and entry point and shared by every pipeline that uses it.
//
// Extractors never fail. Malformed input is logged at Warning and degrades
// the record. Broken creation contracts, such as referencing an object whose
// creation was not captured, are logged at Error, or panic when
// config.CheckCreationInvariants is set.
package creation

import (
	"context"

	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/handles"
	"github.com/scottmarsland/renderdoc/gapis/shadertools"
)

// ResourceID is the stable identifier of a captured object.
type ResourceID = handles.ResourceID

// Resolver maps live handles to the ResourceIDs they were registered with.
type Resolver interface {
	ResolveID(vulkan.NonDispatchableHandle) ResourceID
}

// Reflector computes the reflection of one entry point of a parsed module.
type Reflector func(ctx context.Context, m *shadertools.Module, entry string) (*shadertools.Reflection, *shadertools.BindpointMapping, error)

// Config holds the collaborators used by Info.
// Zero fields take their defaults.
type Config struct {
	// Ingestor parses and compiles shader module code.
	// Defaults to shadertools.DefaultIngestor.
	Ingestor shadertools.Ingestor
	// Reflector reflects shader entry points.
	// Defaults to (*shadertools.Module).Reflect.
	Reflector Reflector
}

func defaultReflector(ctx context.Context, m *shadertools.Module, entry string) (*shadertools.Reflection, *shadertools.BindpointMapping, error) {
	return m.Reflect(entry)
}

// Info is the creation state of a capture session.
type Info struct {
	registry    *Registry
	resolver    Resolver
	ingestor    shadertools.Ingestor
	reflections *ReflectionCache
}

// New returns an empty Info resolving handles with resolver.
func New(cfg Config, resolver Resolver) *Info {
	if cfg.Ingestor == nil {
		cfg.Ingestor = shadertools.DefaultIngestor
	}
	if cfg.Reflector == nil {
		cfg.Reflector = defaultReflector
	}
	return &Info{
		registry:    NewRegistry(),
		resolver:    resolver,
		ingestor:    cfg.Ingestor,
		reflections: NewReflectionCache(cfg.Reflector),
	}
}

// Registry returns the records captured so far.
func (i *Info) Registry() *Registry { return i.registry }

// Lookup returns the record for id.
func (i *Info) Lookup(id ResourceID) (Record, error) { return i.registry.Lookup(id) }

// Reflections returns the entry points of module reflected so far.
func (i *Info) Reflections(module ResourceID) map[string]*StageReflection {
	return i.reflections.Module(module)
}

// reference resolves a handle the creation parameters require. The object
// must have been captured already.
func (i *Info) reference(ctx context.Context, h vulkan.NonDispatchableHandle) ResourceID {
	if !invariant(ctx, h.Handle() != 0, "Required %T is null", h) {
		return handles.NoResource
	}
	return i.optionalReference(ctx, h)
}

// optionalReference resolves a handle that may be null.
func (i *Info) optionalReference(ctx context.Context, h vulkan.NonDispatchableHandle) ResourceID {
	if h.Handle() == 0 {
		return handles.NoResource
	}
	id := i.resolver.ResolveID(h)
	if !invariant(ctx, id != handles.NoResource, "%v is not a registered handle", h) {
		return handles.NoResource
	}
	invariant(ctx, i.registry.Has(id), "%v (%v) is referenced before its creation was captured", h, id)
	return id
}

// add extracts the record of id and inserts it.
func add[T Record](ctx context.Context, i *Info, id ResourceID, extract func(context.Context) T) T {
	ctx = log.V{"resource": id}.Bind(ctx)
	rec := extract(ctx)
	if err := i.registry.Insert(id, rec); err != nil {
		invariant(ctx, false, "%v", err)
	}
	return rec
}

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
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/scottmarsland/renderdoc/core/fault"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/config"
	"github.com/scottmarsland/renderdoc/gapis/shadertools"
)

// StageReflection is the shared reflection of one module entry point.
// It is immutable once returned by the ReflectionCache.
type StageReflection struct {
	Reflection *shadertools.Reflection
	Mapping    *shadertools.BindpointMapping
	// Err is set when the entry point could not be reflected. Reflection and
	// Mapping are then empty.
	Err error

	finished chan struct{} // Closed when the reflection has been computed.
}

type reflectionKey struct {
	module ResourceID
	entry  string
}

// ReflectionCache computes the reflection of each (module, entry point) pair
// at most once. Concurrent requests for a pair being computed wait for the
// first request to finish and share its result.
type ReflectionCache struct {
	mutex     sync.Mutex
	entries   map[reflectionKey]*StageReflection
	reflector Reflector
}

// NewReflectionCache returns an empty cache using reflector.
func NewReflectionCache(reflector Reflector) *ReflectionCache {
	return &ReflectionCache{
		entries:   map[reflectionKey]*StageReflection{},
		reflector: reflector,
	}
}

// Get returns the reflection of entry in the module with the given id,
// computing it from m if this is the first request for the pair. m may be nil
// for modules whose code could not be parsed.
func (c *ReflectionCache) Get(ctx context.Context, module ResourceID, m *shadertools.Module, entry string) *StageReflection {
	key := reflectionKey{module, entry}

	c.mutex.Lock()
	r, ok := c.entries[key]
	if !ok {
		r = &StageReflection{finished: make(chan struct{})}
		c.entries[key] = r
	}
	c.mutex.Unlock()

	if ok {
		<-r.finished
		return r
	}

	defer close(r.finished)
	r.compute(ctx, c.reflector, m, entry)
	return r
}

func (r *StageReflection) compute(ctx context.Context, reflector Reflector, m *shadertools.Module, entry string) {
	defer func() {
		if p := recover(); p != nil {
			r.fail(ctx, entry, errors.Errorf("Reflection panicked: %v", p))
		}
	}()
	if m == nil {
		r.fail(ctx, entry, errNoModule)
		return
	}
	refl, mapping, err := reflector(ctx, m, entry)
	if err == nil && refl == nil {
		err = errors.Errorf("Reflector returned no reflection")
	}
	if err != nil {
		r.fail(ctx, entry, err)
		return
	}
	if mapping == nil {
		mapping = &shadertools.BindpointMapping{}
	}
	r.Reflection, r.Mapping = refl, mapping
	if config.LogReflectionComputation {
		log.D(ctx, "Reflected %v entry point '%s': %d resources", refl.Stage, entry, len(refl.Resources))
	}
}

const errNoModule = fault.Const("Shader module has no parsed code")

func (r *StageReflection) fail(ctx context.Context, entry string, err error) {
	log.W(ctx, "Could not reflect entry point '%s': %v", entry, err)
	r.Err = err
	r.Reflection = &shadertools.Reflection{EntryPoint: entry}
	r.Mapping = &shadertools.BindpointMapping{}
}

// Module returns the finished reflections of the module, keyed by entry
// point name.
func (c *ReflectionCache) Module(module ResourceID) map[string]*StageReflection {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	out := map[string]*StageReflection{}
	for k, r := range c.entries {
		if k.module != module {
			continue
		}
		select {
		case <-r.finished:
			out[k.entry] = r
		default:
		}
	}
	return out
}

// Len returns the number of cached pairs, including those being computed.
func (c *ReflectionCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

func (r *StageReflection) String() string {
	if r.Err != nil {
		return fmt.Sprintf("'%s' (degraded: %v)", r.Reflection.EntryPoint, r.Err)
	}
	return fmt.Sprintf("%v '%s'", r.Reflection.Stage, r.Reflection.EntryPoint)
}

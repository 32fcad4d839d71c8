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

package handles_test

import (
	"testing"

	"github.com/scottmarsland/renderdoc/core/assert"
	"github.com/scottmarsland/renderdoc/core/log"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/handles"
)

func TestRegisterAndResolve(t *testing.T) {
	ctx := log.Testing(t)
	table := handles.NewTable()

	image, err := table.Register(vulkan.VkImage(0x10))
	assert.For(ctx, "register image").ThatError(err).Succeeded()
	buffer, err := table.Register(vulkan.VkBuffer(0x10))
	assert.For(ctx, "register buffer").ThatError(err).Succeeded()

	assert.For(ctx, "distinct ids").That(image).NotEquals(buffer)
	assert.For(ctx, "resolve image").That(table.ResolveID(vulkan.VkImage(0x10))).Equals(image)
	assert.For(ctx, "resolve buffer").That(table.ResolveID(vulkan.VkBuffer(0x10))).Equals(buffer)
	assert.For(ctx, "unknown").That(table.ResolveID(vulkan.VkImage(0x20))).Equals(handles.NoResource)
	assert.For(ctx, "null").That(table.ResolveID(vulkan.VkImage(0))).Equals(handles.NoResource)

	h, ok := table.Handle(image)
	assert.For(ctx, "handle ok").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "handle").That(h).Equals(vulkan.VkImage(0x10))
}

func TestRegisterNull(t *testing.T) {
	ctx := log.Testing(t)
	table := handles.NewTable()
	id, err := table.Register(vulkan.VkSampler(0))
	assert.For(ctx, "err").ThatError(err).Equals(handles.ErrNullHandle)
	assert.For(ctx, "id").That(id).Equals(handles.NoResource)
}

func TestReusedHandleGetsFreshID(t *testing.T) {
	ctx := log.Testing(t)
	table := handles.NewTable()
	first, _ := table.Register(vulkan.VkPipeline(0xabc))
	assert.For(ctx, "forget").ThatError(table.Forget(vulkan.VkPipeline(0xabc))).Succeeded()
	assert.For(ctx, "forgotten").That(table.ResolveID(vulkan.VkPipeline(0xabc))).Equals(handles.NoResource)
	assert.For(ctx, "forget twice").ThatError(table.Forget(vulkan.VkPipeline(0xabc))).Failed()

	second, _ := table.Register(vulkan.VkPipeline(0xabc))
	assert.For(ctx, "fresh").That(second).NotEquals(first)
	assert.For(ctx, "resolve").That(table.ResolveID(vulkan.VkPipeline(0xabc))).Equals(second)

	h, ok := table.Handle(first)
	assert.For(ctx, "old id keeps handle").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "old handle").That(h).Equals(vulkan.VkPipeline(0xabc))
}

func TestResourceIDString(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "none").That(handles.NoResource.String()).Equals("(NoResource)")
	assert.For(ctx, "id").That(handles.ResourceID(5).String()).Equals("ResourceID<5>")
}

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

package vulkan

import "fmt"

// NonDispatchableHandle is implemented by every non-dispatchable Vulkan
// handle type. Handles of different types with the same value are distinct.
type NonDispatchableHandle interface {
	fmt.Stringer
	Handle() uint64
}

type (
	VkDeviceMemory        uint64
	VkBuffer              uint64
	VkBufferView          uint64
	VkImage               uint64
	VkImageView           uint64
	VkSampler             uint64
	VkShaderModule        uint64
	VkPipeline            uint64
	VkPipelineLayout      uint64
	VkDescriptorSetLayout uint64
	VkRenderPass          uint64
	VkFramebuffer         uint64
)

func (h VkDeviceMemory) Handle() uint64        { return uint64(h) }
func (h VkBuffer) Handle() uint64              { return uint64(h) }
func (h VkBufferView) Handle() uint64          { return uint64(h) }
func (h VkImage) Handle() uint64               { return uint64(h) }
func (h VkImageView) Handle() uint64           { return uint64(h) }
func (h VkSampler) Handle() uint64             { return uint64(h) }
func (h VkShaderModule) Handle() uint64        { return uint64(h) }
func (h VkPipeline) Handle() uint64            { return uint64(h) }
func (h VkPipelineLayout) Handle() uint64      { return uint64(h) }
func (h VkDescriptorSetLayout) Handle() uint64 { return uint64(h) }
func (h VkRenderPass) Handle() uint64          { return uint64(h) }
func (h VkFramebuffer) Handle() uint64         { return uint64(h) }

func (h VkDeviceMemory) String() string        { return fmt.Sprintf("VkDeviceMemory<%#x>", uint64(h)) }
func (h VkBuffer) String() string              { return fmt.Sprintf("VkBuffer<%#x>", uint64(h)) }
func (h VkBufferView) String() string          { return fmt.Sprintf("VkBufferView<%#x>", uint64(h)) }
func (h VkImage) String() string               { return fmt.Sprintf("VkImage<%#x>", uint64(h)) }
func (h VkImageView) String() string           { return fmt.Sprintf("VkImageView<%#x>", uint64(h)) }
func (h VkSampler) String() string             { return fmt.Sprintf("VkSampler<%#x>", uint64(h)) }
func (h VkShaderModule) String() string        { return fmt.Sprintf("VkShaderModule<%#x>", uint64(h)) }
func (h VkPipeline) String() string            { return fmt.Sprintf("VkPipeline<%#x>", uint64(h)) }
func (h VkPipelineLayout) String() string      { return fmt.Sprintf("VkPipelineLayout<%#x>", uint64(h)) }
func (h VkDescriptorSetLayout) String() string { return fmt.Sprintf("VkDescriptorSetLayout<%#x>", uint64(h)) }
func (h VkRenderPass) String() string          { return fmt.Sprintf("VkRenderPass<%#x>", uint64(h)) }
func (h VkFramebuffer) String() string         { return fmt.Sprintf("VkFramebuffer<%#x>", uint64(h)) }

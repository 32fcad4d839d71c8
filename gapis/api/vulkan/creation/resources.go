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

	"github.com/scottmarsland/renderdoc/gapis/api/vulkan"
	"github.com/scottmarsland/renderdoc/gapis/api/vulkan/handles"
)

// Memory is the creation state of a VkDeviceMemory allocation.
type Memory struct {
	Size vulkan.VkDeviceSize
}

// Kind implements Record.
func (*Memory) Kind() Kind { return KindMemory }

// AddMemory captures the allocation created as id.
func (i *Info) AddMemory(ctx context.Context, id ResourceID, ci *vulkan.VkMemoryAllocateInfo) *Memory {
	return add(ctx, i, id, func(ctx context.Context) *Memory {
		return &Memory{Size: ci.AllocationSize}
	})
}

// Buffer is the creation state of a VkBuffer.
type Buffer struct {
	Usage vulkan.VkBufferUsageFlags
	Size  vulkan.VkDeviceSize
}

// Kind implements Record.
func (*Buffer) Kind() Kind { return KindBuffer }

// AddBuffer captures the buffer created as id.
func (i *Info) AddBuffer(ctx context.Context, id ResourceID, ci *vulkan.VkBufferCreateInfo) *Buffer {
	return add(ctx, i, id, func(ctx context.Context) *Buffer {
		return &Buffer{Usage: ci.Usage, Size: ci.Size}
	})
}

// BufferView is the creation state of a VkBufferView.
type BufferView struct {
	Buffer ResourceID
	Offset vulkan.VkDeviceSize
	Range  vulkan.VkDeviceSize
}

// Kind implements Record.
func (*BufferView) Kind() Kind { return KindBufferView }

// AddBufferView captures the buffer view created as id.
func (i *Info) AddBufferView(ctx context.Context, id ResourceID, ci *vulkan.VkBufferViewCreateInfo) *BufferView {
	return add(ctx, i, id, func(ctx context.Context) *BufferView {
		return &BufferView{Buffer: i.reference(ctx, ci.Buffer), Offset: ci.Offset, Range: ci.Range}
	})
}

// TextureCreateFlags are the ways an image can be bound.
type TextureCreateFlags uint32

const (
	// TextureSRV images can be sampled.
	TextureSRV TextureCreateFlags = 1 << iota
	// TextureRTV images can be color attachments.
	TextureRTV
	// TextureDSV images can be depth stencil attachments.
	TextureDSV
	// TextureUAV images can be storage images.
	TextureUAV
)

// Has returns true if all of f are set.
func (t TextureCreateFlags) Has(f TextureCreateFlags) bool { return t&f == f }

func textureFlags(usage vulkan.VkImageUsageFlags) TextureCreateFlags {
	has := func(bits ...vulkan.VkImageUsageFlagBits) bool {
		for _, b := range bits {
			if usage&vulkan.VkImageUsageFlags(b) != 0 {
				return true
			}
		}
		return false
	}
	var out TextureCreateFlags
	if has(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_SAMPLED_BIT) {
		out |= TextureSRV
	}
	if has(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT,
		vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT) {
		out |= TextureRTV
	}
	if has(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT) {
		out |= TextureDSV
	}
	if has(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_STORAGE_BIT) {
		out |= TextureUAV
	}
	return out
}

// Image is the creation state of a VkImage.
type Image struct {
	Type        vulkan.VkImageType
	Format      vulkan.VkFormat
	Extent      vulkan.VkExtent3D
	ArrayLayers uint32
	MipLevels   uint32
	Samples     vulkan.VkSampleCountFlagBits
	Flags       TextureCreateFlags
	Cube        bool
	// View and StencilView are views created for replay. They are unset
	// when the image is captured.
	View        ResourceID
	StencilView ResourceID
}

// Kind implements Record.
func (*Image) Kind() Kind { return KindImage }

// AddImage captures the image created as id.
func (i *Info) AddImage(ctx context.Context, id ResourceID, ci *vulkan.VkImageCreateInfo) *Image {
	return add(ctx, i, id, func(ctx context.Context) *Image {
		return &Image{
			Type:        ci.ImageType,
			Format:      ci.Format,
			Extent:      ci.Extent,
			ArrayLayers: ci.ArrayLayers,
			MipLevels:   ci.MipLevels,
			Samples:     ci.Samples,
			Flags:       textureFlags(ci.Usage),
			Cube:        ci.Flags&vulkan.VkImageCreateFlags(vulkan.VkImageCreateFlagBits_VK_IMAGE_CREATE_CUBE_COMPATIBLE_BIT) != 0,
			View:        handles.NoResource,
			StencilView: handles.NoResource,
		}
	})
}

// Sampler is the creation state of a VkSampler.
type Sampler struct {
	MagFilter               vulkan.VkFilter
	MinFilter               vulkan.VkFilter
	MipmapMode              vulkan.VkSamplerMipmapMode
	Address                 [3]vulkan.VkSamplerAddressMode
	MipLodBias              float32
	MaxAnisotropy           float32
	CompareEnable           bool
	CompareOp               vulkan.VkCompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             vulkan.VkBorderColor
	UnnormalizedCoordinates bool
}

// Kind implements Record.
func (*Sampler) Kind() Kind { return KindSampler }

// AddSampler captures the sampler created as id.
func (i *Info) AddSampler(ctx context.Context, id ResourceID, ci *vulkan.VkSamplerCreateInfo) *Sampler {
	return add(ctx, i, id, func(ctx context.Context) *Sampler {
		return &Sampler{
			MagFilter:               ci.MagFilter,
			MinFilter:               ci.MinFilter,
			MipmapMode:              ci.MipmapMode,
			Address:                 [3]vulkan.VkSamplerAddressMode{ci.AddressModeU, ci.AddressModeV, ci.AddressModeW},
			MipLodBias:              ci.MipLodBias,
			MaxAnisotropy:           ci.MaxAnisotropy,
			CompareEnable:           boolean(ci.CompareEnable),
			CompareOp:               ci.CompareOp,
			MinLod:                  ci.MinLod,
			MaxLod:                  ci.MaxLod,
			BorderColor:             ci.BorderColor,
			UnnormalizedCoordinates: boolean(ci.UnnormalizedCoordinates),
		}
	})
}

// ImageView is the creation state of a VkImageView.
type ImageView struct {
	Image  ResourceID
	Format vulkan.VkFormat
	Range  vulkan.VkImageSubresourceRange
}

// Kind implements Record.
func (*ImageView) Kind() Kind { return KindImageView }

// AddImageView captures the image view created as id.
func (i *Info) AddImageView(ctx context.Context, id ResourceID, ci *vulkan.VkImageViewCreateInfo) *ImageView {
	return add(ctx, i, id, func(ctx context.Context) *ImageView {
		return &ImageView{Image: i.reference(ctx, ci.Image), Format: ci.Format, Range: ci.SubresourceRange}
	})
}

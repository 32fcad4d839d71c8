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
)

// PipelineLayout is the creation state of a VkPipelineLayout.
type PipelineLayout struct {
	SetLayouts         []ResourceID
	PushConstantRanges []vulkan.VkPushConstantRange
}

// Kind implements Record.
func (*PipelineLayout) Kind() Kind { return KindPipelineLayout }

// AddPipelineLayout captures the pipeline layout created as id.
func (i *Info) AddPipelineLayout(ctx context.Context, id ResourceID, ci *vulkan.VkPipelineLayoutCreateInfo) *PipelineLayout {
	return add(ctx, i, id, func(ctx context.Context) *PipelineLayout {
		return &PipelineLayout{
			SetLayouts: convert(ci.SetLayouts, func(l vulkan.VkDescriptorSetLayout) ResourceID {
				return i.reference(ctx, l)
			}),
			PushConstantRanges: append([]vulkan.VkPushConstantRange{}, ci.PushConstantRanges...),
		}
	})
}

// RenderPass is the creation state of a VkRenderPass.
type RenderPass struct {
	Attachments []AttachmentOps
	Subpasses   []Subpass
}

// Kind implements Record.
func (*RenderPass) Kind() Kind { return KindRenderPass }

// AttachmentOps are the load and store operations of a render pass
// attachment.
type AttachmentOps struct {
	LoadOp         vulkan.VkAttachmentLoadOp
	StoreOp        vulkan.VkAttachmentStoreOp
	StencilLoadOp  vulkan.VkAttachmentLoadOp
	StencilStoreOp vulkan.VkAttachmentStoreOp
}

// Subpass lists the attachment indices used by a subpass.
type Subpass struct {
	InputAttachments []uint32
	ColorAttachments []uint32
	// DepthStencilAttachment is -1 when the subpass has no depth stencil
	// attachment.
	DepthStencilAttachment int32
}

func attachmentIndex(r vulkan.VkAttachmentReference) uint32 { return r.Attachment }

// depthStencilIndex returns the attachment index of ref, or -1 when ref is
// absent or unused.
func depthStencilIndex(ref *vulkan.VkAttachmentReference) int32 {
	if ref == nil || ref.Attachment == vulkan.VK_ATTACHMENT_UNUSED {
		return -1
	}
	return int32(ref.Attachment)
}

// AddRenderPass captures the render pass created as id.
func (i *Info) AddRenderPass(ctx context.Context, id ResourceID, ci *vulkan.VkRenderPassCreateInfo) *RenderPass {
	return add(ctx, i, id, func(ctx context.Context) *RenderPass {
		return &RenderPass{
			Attachments: convert(ci.Attachments, func(a vulkan.VkAttachmentDescription) AttachmentOps {
				return AttachmentOps{a.LoadOp, a.StoreOp, a.StencilLoadOp, a.StencilStoreOp}
			}),
			Subpasses: convert(ci.Subpasses, func(s vulkan.VkSubpassDescription) Subpass {
				return Subpass{
					InputAttachments:       convert(s.InputAttachments, attachmentIndex),
					ColorAttachments:       convert(s.ColorAttachments, attachmentIndex),
					DepthStencilAttachment: depthStencilIndex(s.DepthStencilAttachment),
				}
			}),
		}
	})
}

// Framebuffer is the creation state of a VkFramebuffer.
type Framebuffer struct {
	RenderPass  ResourceID
	Width       uint32
	Height      uint32
	Layers      uint32
	Attachments []FramebufferAttachment
}

// Kind implements Record.
func (*Framebuffer) Kind() Kind { return KindFramebuffer }

// FramebufferAttachment is an image view bound to a framebuffer.
type FramebufferAttachment struct {
	View ResourceID
	// Format is copied from the view's creation record.
	Format vulkan.VkFormat
}

// AddFramebuffer captures the framebuffer created as id.
// Every attachment view must have been captured first.
func (i *Info) AddFramebuffer(ctx context.Context, id ResourceID, ci *vulkan.VkFramebufferCreateInfo) *Framebuffer {
	return add(ctx, i, id, func(ctx context.Context) *Framebuffer {
		return &Framebuffer{
			RenderPass: i.reference(ctx, ci.RenderPass),
			Width:      ci.Width,
			Height:     ci.Height,
			Layers:     ci.Layers,
			Attachments: convert(ci.Attachments, func(v vulkan.VkImageView) FramebufferAttachment {
				out := FramebufferAttachment{View: i.reference(ctx, v)}
				if view, err := LookupAs[*ImageView](i.registry, out.View); err == nil {
					out.Format = view.Format
				}
				return out
			}),
		}
	})
}

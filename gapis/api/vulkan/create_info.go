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

// The creation-parameter structures below mirror the Vulkan 1.0 API.
// Optional sub-structures are pointers and are nil when the application
// passed a null pointer. Arrays whose length is the API count are slices;
// arrays whose count is carried separately keep an explicit count field.

type VkExtent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

type VkOffset2D struct {
	X int32
	Y int32
}

type VkExtent2D struct {
	Width  uint32
	Height uint32
}

type VkRect2D struct {
	Offset VkOffset2D
	Extent VkExtent2D
}

type VkViewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type VkImageSubresourceRange struct {
	AspectMask     VkImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type VkComponentMapping struct {
	R VkComponentSwizzle
	G VkComponentSwizzle
	B VkComponentSwizzle
	A VkComponentSwizzle
}

type VkDescriptorSetLayoutBinding struct {
	Binding         uint32
	DescriptorType  VkDescriptorType
	DescriptorCount uint32
	StageFlags      VkShaderStageFlags
	// ImmutableSamplers is nil when no immutable samplers are supplied,
	// otherwise it holds at least DescriptorCount handles.
	ImmutableSamplers []VkSampler
}

type VkDescriptorSetLayoutCreateInfo struct {
	Flags    VkDescriptorSetLayoutCreateFlags
	Bindings []VkDescriptorSetLayoutBinding
}

type VkPushConstantRange struct {
	StageFlags VkShaderStageFlags
	Offset     uint32
	Size       uint32
}

type VkPipelineLayoutCreateInfo struct {
	Flags              VkPipelineLayoutCreateFlags
	SetLayouts         []VkDescriptorSetLayout
	PushConstantRanges []VkPushConstantRange
}

type VkSpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uint64
}

type VkSpecializationInfo struct {
	MapEntries []VkSpecializationMapEntry
	Data       []byte
}

type VkPipelineShaderStageCreateInfo struct {
	Stage              VkShaderStageFlagBits
	Module             VkShaderModule
	Name               string
	SpecializationInfo *VkSpecializationInfo
}

type VkVertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VkVertexInputRate
}

type VkVertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   VkFormat
	Offset   uint32
}

type VkPipelineVertexInputStateCreateInfo struct {
	VertexBindingDescriptions   []VkVertexInputBindingDescription
	VertexAttributeDescriptions []VkVertexInputAttributeDescription
}

type VkPipelineInputAssemblyStateCreateInfo struct {
	Topology               VkPrimitiveTopology
	PrimitiveRestartEnable VkBool32
}

type VkPipelineTessellationStateCreateInfo struct {
	PatchControlPoints uint32
}

type VkPipelineViewportStateCreateInfo struct {
	ViewportCount uint32
	// Viewports is nil when the viewport is dynamic.
	Viewports    []VkViewport
	ScissorCount uint32
	// Scissors is nil when the scissor is dynamic.
	Scissors []VkRect2D
}

type VkPipelineRasterizationStateCreateInfo struct {
	DepthClampEnable        VkBool32
	RasterizerDiscardEnable VkBool32
	PolygonMode             VkPolygonMode
	CullMode                VkCullModeFlags
	FrontFace               VkFrontFace
	DepthBiasEnable         VkBool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type VkPipelineMultisampleStateCreateInfo struct {
	RasterizationSamples VkSampleCountFlagBits
	SampleShadingEnable  VkBool32
	MinSampleShading     float32
	// SampleMask is nil when no sample mask is supplied.
	SampleMask            []VkSampleMask
	AlphaToCoverageEnable VkBool32
	AlphaToOneEnable      VkBool32
}

type VkStencilOpState struct {
	FailOp      VkStencilOp
	PassOp      VkStencilOp
	DepthFailOp VkStencilOp
	CompareOp   VkCompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type VkPipelineDepthStencilStateCreateInfo struct {
	DepthTestEnable       VkBool32
	DepthWriteEnable      VkBool32
	DepthCompareOp        VkCompareOp
	DepthBoundsTestEnable VkBool32
	StencilTestEnable     VkBool32
	Front                 VkStencilOpState
	Back                  VkStencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type VkPipelineColorBlendAttachmentState struct {
	BlendEnable         VkBool32
	SrcColorBlendFactor VkBlendFactor
	DstColorBlendFactor VkBlendFactor
	ColorBlendOp        VkBlendOp
	SrcAlphaBlendFactor VkBlendFactor
	DstAlphaBlendFactor VkBlendFactor
	AlphaBlendOp        VkBlendOp
	ColorWriteMask      VkColorComponentFlags
}

type VkPipelineColorBlendStateCreateInfo struct {
	LogicOpEnable  VkBool32
	LogicOp        VkLogicOp
	Attachments    []VkPipelineColorBlendAttachmentState
	BlendConstants [4]float32
}

type VkPipelineDynamicStateCreateInfo struct {
	DynamicStates []VkDynamicState
}

type VkGraphicsPipelineCreateInfo struct {
	Flags              VkPipelineCreateFlags
	Stages             []VkPipelineShaderStageCreateInfo
	VertexInputState   *VkPipelineVertexInputStateCreateInfo
	InputAssemblyState *VkPipelineInputAssemblyStateCreateInfo
	TessellationState  *VkPipelineTessellationStateCreateInfo
	ViewportState      *VkPipelineViewportStateCreateInfo
	RasterizationState *VkPipelineRasterizationStateCreateInfo
	MultisampleState   *VkPipelineMultisampleStateCreateInfo
	DepthStencilState  *VkPipelineDepthStencilStateCreateInfo
	ColorBlendState    *VkPipelineColorBlendStateCreateInfo
	DynamicState       *VkPipelineDynamicStateCreateInfo
	Layout             VkPipelineLayout
	RenderPass         VkRenderPass
	Subpass            uint32
	BasePipelineHandle VkPipeline
	BasePipelineIndex  int32
}

type VkComputePipelineCreateInfo struct {
	Flags              VkPipelineCreateFlags
	Stage              VkPipelineShaderStageCreateInfo
	Layout             VkPipelineLayout
	BasePipelineHandle VkPipeline
	BasePipelineIndex  int32
}

type VkAttachmentDescription struct {
	Format         VkFormat
	Samples        VkSampleCountFlagBits
	LoadOp         VkAttachmentLoadOp
	StoreOp        VkAttachmentStoreOp
	StencilLoadOp  VkAttachmentLoadOp
	StencilStoreOp VkAttachmentStoreOp
	InitialLayout  VkImageLayout
	FinalLayout    VkImageLayout
}

type VkAttachmentReference struct {
	Attachment uint32
	Layout     VkImageLayout
}

type VkSubpassDescription struct {
	PipelineBindPoint VkPipelineBindPoint
	InputAttachments  []VkAttachmentReference
	ColorAttachments  []VkAttachmentReference
	// ResolveAttachments is nil or has len(ColorAttachments) entries.
	ResolveAttachments     []VkAttachmentReference
	DepthStencilAttachment *VkAttachmentReference
	PreserveAttachments    []uint32
}

type VkRenderPassCreateInfo struct {
	Flags       VkRenderPassCreateFlags
	Attachments []VkAttachmentDescription
	Subpasses   []VkSubpassDescription
}

type VkFramebufferCreateInfo struct {
	Flags       VkFramebufferCreateFlags
	RenderPass  VkRenderPass
	Attachments []VkImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}

type VkMemoryAllocateInfo struct {
	AllocationSize  VkDeviceSize
	MemoryTypeIndex uint32
}

type VkBufferCreateInfo struct {
	Flags              VkBufferCreateFlags
	Size               VkDeviceSize
	Usage              VkBufferUsageFlags
	SharingMode        VkSharingMode
	QueueFamilyIndices []uint32
}

type VkBufferViewCreateInfo struct {
	Flags  VkBufferViewCreateFlags
	Buffer VkBuffer
	Format VkFormat
	Offset VkDeviceSize
	Range  VkDeviceSize
}

type VkImageCreateInfo struct {
	Flags              VkImageCreateFlags
	ImageType          VkImageType
	Format             VkFormat
	Extent             VkExtent3D
	MipLevels          uint32
	ArrayLayers        uint32
	Samples            VkSampleCountFlagBits
	Tiling             VkImageTiling
	Usage              VkImageUsageFlags
	SharingMode        VkSharingMode
	QueueFamilyIndices []uint32
	InitialLayout      VkImageLayout
}

type VkSamplerCreateInfo struct {
	Flags                   VkSamplerCreateFlags
	MagFilter               VkFilter
	MinFilter               VkFilter
	MipmapMode              VkSamplerMipmapMode
	AddressModeU            VkSamplerAddressMode
	AddressModeV            VkSamplerAddressMode
	AddressModeW            VkSamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        VkBool32
	MaxAnisotropy           float32
	CompareEnable           VkBool32
	CompareOp               VkCompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             VkBorderColor
	UnnormalizedCoordinates VkBool32
}

type VkImageViewCreateInfo struct {
	Flags            VkImageViewCreateFlags
	Image            VkImage
	ViewType         VkImageViewType
	Format           VkFormat
	Components       VkComponentMapping
	SubresourceRange VkImageSubresourceRange
}

type VkShaderModuleCreateInfo struct {
	Flags VkShaderModuleCreateFlags
	// Code is the raw module bytes; its length is the API's codeSize.
	Code []byte
}

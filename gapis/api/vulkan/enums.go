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

// Basic scalar types.
type (
	VkBool32     uint32
	VkDeviceSize uint64
	VkSampleMask uint32
	VkFlags      uint32
)

// VK_ATTACHMENT_UNUSED marks an attachment reference that is not used.
const VK_ATTACHMENT_UNUSED = ^uint32(0)

// Bitmask types.
type (
	VkPipelineCreateFlags            VkFlags
	VkShaderStageFlags               VkFlags
	VkCullModeFlags                  VkFlags
	VkColorComponentFlags            VkFlags
	VkImageUsageFlags                VkFlags
	VkImageCreateFlags               VkFlags
	VkBufferUsageFlags               VkFlags
	VkBufferCreateFlags              VkFlags
	VkImageAspectFlags               VkFlags
	VkDescriptorSetLayoutCreateFlags VkFlags
	VkRenderPassCreateFlags          VkFlags
	VkFramebufferCreateFlags         VkFlags
	VkShaderModuleCreateFlags        VkFlags
	VkSamplerCreateFlags             VkFlags
	VkImageViewCreateFlags           VkFlags
	VkBufferViewCreateFlags          VkFlags
	VkPipelineLayoutCreateFlags      VkFlags
)

type VkFormat uint32

const (
	VkFormat_VK_FORMAT_UNDEFINED           VkFormat = 0
	VkFormat_VK_FORMAT_R8G8B8A8_UNORM      VkFormat = 37
	VkFormat_VK_FORMAT_R8G8B8A8_SRGB       VkFormat = 43
	VkFormat_VK_FORMAT_B8G8R8A8_UNORM      VkFormat = 44
	VkFormat_VK_FORMAT_R32G32_SFLOAT       VkFormat = 103
	VkFormat_VK_FORMAT_R32G32B32_SFLOAT    VkFormat = 106
	VkFormat_VK_FORMAT_R32G32B32A32_SFLOAT VkFormat = 109
	VkFormat_VK_FORMAT_D32_SFLOAT          VkFormat = 126
	VkFormat_VK_FORMAT_D24_UNORM_S8_UINT   VkFormat = 129
)

type VkDescriptorType uint32

const (
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLER                VkDescriptorType = 0
	VkDescriptorType_VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER VkDescriptorType = 1
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE          VkDescriptorType = 2
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_IMAGE          VkDescriptorType = 3
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER   VkDescriptorType = 4
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER   VkDescriptorType = 5
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER         VkDescriptorType = 6
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER         VkDescriptorType = 7
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC VkDescriptorType = 8
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC VkDescriptorType = 9
	VkDescriptorType_VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT       VkDescriptorType = 10
)

type VkShaderStageFlagBits uint32

const (
	VkShaderStageFlagBits_VK_SHADER_STAGE_VERTEX_BIT                  VkShaderStageFlagBits = 0x00000001
	VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT    VkShaderStageFlagBits = 0x00000002
	VkShaderStageFlagBits_VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT VkShaderStageFlagBits = 0x00000004
	VkShaderStageFlagBits_VK_SHADER_STAGE_GEOMETRY_BIT                VkShaderStageFlagBits = 0x00000008
	VkShaderStageFlagBits_VK_SHADER_STAGE_FRAGMENT_BIT                VkShaderStageFlagBits = 0x00000010
	VkShaderStageFlagBits_VK_SHADER_STAGE_COMPUTE_BIT                 VkShaderStageFlagBits = 0x00000020
	VkShaderStageFlagBits_VK_SHADER_STAGE_ALL_GRAPHICS                VkShaderStageFlagBits = 0x0000001F
	VkShaderStageFlagBits_VK_SHADER_STAGE_ALL                         VkShaderStageFlagBits = 0x7FFFFFFF
)

type VkPrimitiveTopology uint32

const (
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_POINT_LIST     VkPrimitiveTopology = 0
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_LIST      VkPrimitiveTopology = 1
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_LINE_STRIP     VkPrimitiveTopology = 2
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST  VkPrimitiveTopology = 3
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP VkPrimitiveTopology = 4
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN   VkPrimitiveTopology = 5
	VkPrimitiveTopology_VK_PRIMITIVE_TOPOLOGY_PATCH_LIST     VkPrimitiveTopology = 10
)

type VkVertexInputRate uint32

const (
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_VERTEX   VkVertexInputRate = 0
	VkVertexInputRate_VK_VERTEX_INPUT_RATE_INSTANCE VkVertexInputRate = 1
)

type VkPolygonMode uint32

const (
	VkPolygonMode_VK_POLYGON_MODE_FILL  VkPolygonMode = 0
	VkPolygonMode_VK_POLYGON_MODE_LINE  VkPolygonMode = 1
	VkPolygonMode_VK_POLYGON_MODE_POINT VkPolygonMode = 2
)

type VkCullModeFlagBits uint32

const (
	VkCullModeFlagBits_VK_CULL_MODE_NONE           VkCullModeFlagBits = 0
	VkCullModeFlagBits_VK_CULL_MODE_FRONT_BIT      VkCullModeFlagBits = 1
	VkCullModeFlagBits_VK_CULL_MODE_BACK_BIT       VkCullModeFlagBits = 2
	VkCullModeFlagBits_VK_CULL_MODE_FRONT_AND_BACK VkCullModeFlagBits = 3
)

type VkFrontFace uint32

const (
	VkFrontFace_VK_FRONT_FACE_COUNTER_CLOCKWISE VkFrontFace = 0
	VkFrontFace_VK_FRONT_FACE_CLOCKWISE         VkFrontFace = 1
)

type VkSampleCountFlagBits uint32

const (
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_1_BIT  VkSampleCountFlagBits = 1
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_2_BIT  VkSampleCountFlagBits = 2
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_4_BIT  VkSampleCountFlagBits = 4
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_8_BIT  VkSampleCountFlagBits = 8
	VkSampleCountFlagBits_VK_SAMPLE_COUNT_16_BIT VkSampleCountFlagBits = 16
)

type VkCompareOp uint32

const (
	VkCompareOp_VK_COMPARE_OP_NEVER            VkCompareOp = 0
	VkCompareOp_VK_COMPARE_OP_LESS             VkCompareOp = 1
	VkCompareOp_VK_COMPARE_OP_EQUAL            VkCompareOp = 2
	VkCompareOp_VK_COMPARE_OP_LESS_OR_EQUAL    VkCompareOp = 3
	VkCompareOp_VK_COMPARE_OP_GREATER          VkCompareOp = 4
	VkCompareOp_VK_COMPARE_OP_NOT_EQUAL        VkCompareOp = 5
	VkCompareOp_VK_COMPARE_OP_GREATER_OR_EQUAL VkCompareOp = 6
	VkCompareOp_VK_COMPARE_OP_ALWAYS           VkCompareOp = 7
)

type VkStencilOp uint32

const (
	VkStencilOp_VK_STENCIL_OP_KEEP                VkStencilOp = 0
	VkStencilOp_VK_STENCIL_OP_ZERO                VkStencilOp = 1
	VkStencilOp_VK_STENCIL_OP_REPLACE             VkStencilOp = 2
	VkStencilOp_VK_STENCIL_OP_INCREMENT_AND_CLAMP VkStencilOp = 3
	VkStencilOp_VK_STENCIL_OP_DECREMENT_AND_CLAMP VkStencilOp = 4
	VkStencilOp_VK_STENCIL_OP_INVERT              VkStencilOp = 5
	VkStencilOp_VK_STENCIL_OP_INCREMENT_AND_WRAP  VkStencilOp = 6
	VkStencilOp_VK_STENCIL_OP_DECREMENT_AND_WRAP  VkStencilOp = 7
)

type VkLogicOp uint32

const (
	VkLogicOp_VK_LOGIC_OP_CLEAR VkLogicOp = 0
	VkLogicOp_VK_LOGIC_OP_AND   VkLogicOp = 1
	VkLogicOp_VK_LOGIC_OP_COPY  VkLogicOp = 3
	VkLogicOp_VK_LOGIC_OP_NO_OP VkLogicOp = 5
	VkLogicOp_VK_LOGIC_OP_XOR   VkLogicOp = 6
	VkLogicOp_VK_LOGIC_OP_OR    VkLogicOp = 7
	VkLogicOp_VK_LOGIC_OP_SET   VkLogicOp = 15
)

type VkBlendFactor uint32

const (
	VkBlendFactor_VK_BLEND_FACTOR_ZERO                VkBlendFactor = 0
	VkBlendFactor_VK_BLEND_FACTOR_ONE                 VkBlendFactor = 1
	VkBlendFactor_VK_BLEND_FACTOR_SRC_COLOR           VkBlendFactor = 2
	VkBlendFactor_VK_BLEND_FACTOR_ONE_MINUS_SRC_COLOR VkBlendFactor = 3
	VkBlendFactor_VK_BLEND_FACTOR_SRC_ALPHA           VkBlendFactor = 6
	VkBlendFactor_VK_BLEND_FACTOR_ONE_MINUS_SRC_ALPHA VkBlendFactor = 7
)

type VkBlendOp uint32

const (
	VkBlendOp_VK_BLEND_OP_ADD              VkBlendOp = 0
	VkBlendOp_VK_BLEND_OP_SUBTRACT         VkBlendOp = 1
	VkBlendOp_VK_BLEND_OP_REVERSE_SUBTRACT VkBlendOp = 2
	VkBlendOp_VK_BLEND_OP_MIN              VkBlendOp = 3
	VkBlendOp_VK_BLEND_OP_MAX              VkBlendOp = 4
)

type VkColorComponentFlagBits uint32

const (
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_R_BIT VkColorComponentFlagBits = 1
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_G_BIT VkColorComponentFlagBits = 2
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_B_BIT VkColorComponentFlagBits = 4
	VkColorComponentFlagBits_VK_COLOR_COMPONENT_A_BIT VkColorComponentFlagBits = 8
)

type VkDynamicState uint32

const (
	VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT             VkDynamicState = 0
	VkDynamicState_VK_DYNAMIC_STATE_SCISSOR              VkDynamicState = 1
	VkDynamicState_VK_DYNAMIC_STATE_LINE_WIDTH           VkDynamicState = 2
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BIAS           VkDynamicState = 3
	VkDynamicState_VK_DYNAMIC_STATE_BLEND_CONSTANTS      VkDynamicState = 4
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BOUNDS         VkDynamicState = 5
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK VkDynamicState = 6
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_WRITE_MASK   VkDynamicState = 7
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_REFERENCE    VkDynamicState = 8
)

type VkAttachmentLoadOp uint32

const (
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_LOAD      VkAttachmentLoadOp = 0
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_CLEAR     VkAttachmentLoadOp = 1
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_DONT_CARE VkAttachmentLoadOp = 2
)

type VkAttachmentStoreOp uint32

const (
	VkAttachmentStoreOp_VK_ATTACHMENT_STORE_OP_STORE     VkAttachmentStoreOp = 0
	VkAttachmentStoreOp_VK_ATTACHMENT_STORE_OP_DONT_CARE VkAttachmentStoreOp = 1
)

type VkImageLayout uint32

const (
	VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED                        VkImageLayout = 0
	VkImageLayout_VK_IMAGE_LAYOUT_GENERAL                          VkImageLayout = 1
	VkImageLayout_VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL         VkImageLayout = 2
	VkImageLayout_VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL VkImageLayout = 3
	VkImageLayout_VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL         VkImageLayout = 5
	VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR                  VkImageLayout = 1000001002
)

type VkPipelineBindPoint uint32

const (
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS VkPipelineBindPoint = 0
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE  VkPipelineBindPoint = 1
)

type VkImageType uint32

const (
	VkImageType_VK_IMAGE_TYPE_1D VkImageType = 0
	VkImageType_VK_IMAGE_TYPE_2D VkImageType = 1
	VkImageType_VK_IMAGE_TYPE_3D VkImageType = 2
)

type VkImageTiling uint32

const (
	VkImageTiling_VK_IMAGE_TILING_OPTIMAL VkImageTiling = 0
	VkImageTiling_VK_IMAGE_TILING_LINEAR  VkImageTiling = 1
)

type VkImageUsageFlagBits uint32

const (
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_SRC_BIT             VkImageUsageFlagBits = 0x00000001
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_DST_BIT             VkImageUsageFlagBits = 0x00000002
	VkImageUsageFlagBits_VK_IMAGE_USAGE_SAMPLED_BIT                  VkImageUsageFlagBits = 0x00000004
	VkImageUsageFlagBits_VK_IMAGE_USAGE_STORAGE_BIT                  VkImageUsageFlagBits = 0x00000008
	VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT         VkImageUsageFlagBits = 0x00000010
	VkImageUsageFlagBits_VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT VkImageUsageFlagBits = 0x00000020
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT     VkImageUsageFlagBits = 0x00000040
	VkImageUsageFlagBits_VK_IMAGE_USAGE_INPUT_ATTACHMENT_BIT         VkImageUsageFlagBits = 0x00000080
)

type VkImageCreateFlagBits uint32

const (
	VkImageCreateFlagBits_VK_IMAGE_CREATE_SPARSE_BINDING_BIT   VkImageCreateFlagBits = 0x00000001
	VkImageCreateFlagBits_VK_IMAGE_CREATE_SPARSE_RESIDENCY_BIT VkImageCreateFlagBits = 0x00000002
	VkImageCreateFlagBits_VK_IMAGE_CREATE_SPARSE_ALIASED_BIT   VkImageCreateFlagBits = 0x00000004
	VkImageCreateFlagBits_VK_IMAGE_CREATE_MUTABLE_FORMAT_BIT   VkImageCreateFlagBits = 0x00000008
	VkImageCreateFlagBits_VK_IMAGE_CREATE_CUBE_COMPATIBLE_BIT  VkImageCreateFlagBits = 0x00000010
)

type VkBufferUsageFlagBits uint32

const (
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_TRANSFER_SRC_BIT         VkBufferUsageFlagBits = 0x00000001
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_TRANSFER_DST_BIT         VkBufferUsageFlagBits = 0x00000002
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT VkBufferUsageFlagBits = 0x00000004
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT VkBufferUsageFlagBits = 0x00000008
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT       VkBufferUsageFlagBits = 0x00000010
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_STORAGE_BUFFER_BIT       VkBufferUsageFlagBits = 0x00000020
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_INDEX_BUFFER_BIT         VkBufferUsageFlagBits = 0x00000040
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_VERTEX_BUFFER_BIT        VkBufferUsageFlagBits = 0x00000080
	VkBufferUsageFlagBits_VK_BUFFER_USAGE_INDIRECT_BUFFER_BIT      VkBufferUsageFlagBits = 0x00000100
)

type VkSharingMode uint32

const (
	VkSharingMode_VK_SHARING_MODE_EXCLUSIVE  VkSharingMode = 0
	VkSharingMode_VK_SHARING_MODE_CONCURRENT VkSharingMode = 1
)

type VkFilter uint32

const (
	VkFilter_VK_FILTER_NEAREST VkFilter = 0
	VkFilter_VK_FILTER_LINEAR  VkFilter = 1
)

type VkSamplerMipmapMode uint32

const (
	VkSamplerMipmapMode_VK_SAMPLER_MIPMAP_MODE_NEAREST VkSamplerMipmapMode = 0
	VkSamplerMipmapMode_VK_SAMPLER_MIPMAP_MODE_LINEAR  VkSamplerMipmapMode = 1
)

type VkSamplerAddressMode uint32

const (
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_REPEAT               VkSamplerAddressMode = 0
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT      VkSamplerAddressMode = 1
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE        VkSamplerAddressMode = 2
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER      VkSamplerAddressMode = 3
	VkSamplerAddressMode_VK_SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE VkSamplerAddressMode = 4
)

type VkBorderColor uint32

const (
	VkBorderColor_VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK VkBorderColor = 0
	VkBorderColor_VK_BORDER_COLOR_INT_TRANSPARENT_BLACK   VkBorderColor = 1
	VkBorderColor_VK_BORDER_COLOR_FLOAT_OPAQUE_BLACK      VkBorderColor = 2
	VkBorderColor_VK_BORDER_COLOR_INT_OPAQUE_BLACK        VkBorderColor = 3
	VkBorderColor_VK_BORDER_COLOR_FLOAT_OPAQUE_WHITE      VkBorderColor = 4
	VkBorderColor_VK_BORDER_COLOR_INT_OPAQUE_WHITE        VkBorderColor = 5
)

type VkImageViewType uint32

const (
	VkImageViewType_VK_IMAGE_VIEW_TYPE_1D         VkImageViewType = 0
	VkImageViewType_VK_IMAGE_VIEW_TYPE_2D         VkImageViewType = 1
	VkImageViewType_VK_IMAGE_VIEW_TYPE_3D         VkImageViewType = 2
	VkImageViewType_VK_IMAGE_VIEW_TYPE_CUBE       VkImageViewType = 3
	VkImageViewType_VK_IMAGE_VIEW_TYPE_1D_ARRAY   VkImageViewType = 4
	VkImageViewType_VK_IMAGE_VIEW_TYPE_2D_ARRAY   VkImageViewType = 5
	VkImageViewType_VK_IMAGE_VIEW_TYPE_CUBE_ARRAY VkImageViewType = 6
)

type VkComponentSwizzle uint32

const (
	VkComponentSwizzle_VK_COMPONENT_SWIZZLE_IDENTITY VkComponentSwizzle = 0
	VkComponentSwizzle_VK_COMPONENT_SWIZZLE_ZERO     VkComponentSwizzle = 1
	VkComponentSwizzle_VK_COMPONENT_SWIZZLE_ONE      VkComponentSwizzle = 2
	VkComponentSwizzle_VK_COMPONENT_SWIZZLE_R        VkComponentSwizzle = 3
	VkComponentSwizzle_VK_COMPONENT_SWIZZLE_G        VkComponentSwizzle = 4
	VkComponentSwizzle_VK_COMPONENT_SWIZZLE_B        VkComponentSwizzle = 5
	VkComponentSwizzle_VK_COMPONENT_SWIZZLE_A        VkComponentSwizzle = 6
)

type VkImageAspectFlagBits uint32

const (
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT   VkImageAspectFlagBits = 0x00000001
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_DEPTH_BIT   VkImageAspectFlagBits = 0x00000002
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_STENCIL_BIT VkImageAspectFlagBits = 0x00000004
)

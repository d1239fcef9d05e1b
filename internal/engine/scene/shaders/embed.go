// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// OceanVertexShader is the vertex shader for the water surface.
//
//go:embed ocean.vert
var OceanVertexShader string

// OceanFragmentShader is the fragment shader for the water surface.
//
//go:embed ocean.frag
var OceanFragmentShader string

// SeabedVertexShader is the vertex shader for the caustic-lit seabed.
//
//go:embed seabed.vert
var SeabedVertexShader string

// SeabedFragmentShader is the fragment shader for the caustic-lit seabed.
//
//go:embed seabed.frag
var SeabedFragmentShader string

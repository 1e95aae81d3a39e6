package graphics

// Shader sources are embedded so the binary needs no asset directory.

// MeshVertexShader transforms mesh vertices; attribute 3 carries the
// per-instance offset for instanced draws and stays at the zero generic
// value for plain draws.
const MeshVertexShader = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;
layout (location = 2) in vec2 uv;
layout (location = 3) in vec3 instanceOffset;

uniform mat4 model;
uniform mat4 view;
uniform mat4 proj;

void main() {
    gl_Position = proj * view * model * vec4(position + instanceOffset, 1.0);
}
`

// MeshFragmentShader paints a flat color. The spheres carry no materials
// or lighting; the wireframe overlay pass provides the visible detail.
const MeshFragmentShader = `#version 410 core
uniform vec4 color;

out vec4 fragColor;

void main() {
    fragColor = color;
}
`

// OverlayVertexShader positions screen-space quads in pixel coordinates.
const OverlayVertexShader = `#version 410 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 uv;

uniform mat4 proj;

out vec2 vUV;

void main() {
    gl_Position = proj * vec4(position, 0.0, 1.0);
    vUV = uv;
}
`

// OverlayFragmentShader samples the single-channel glyph atlas.
const OverlayFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D atlas;
uniform vec4 textColor;

out vec4 fragColor;

void main() {
    float a = texture(atlas, vUV).r;
    fragColor = vec4(textColor.rgb, textColor.a * a);
}
`

package renderer

// blockVertexShader transforms chunk mesh vertices. The model matrix
// arrives as a per-instance attribute spread over locations 4..7.
const blockVertexShader = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;
layout(location = 3) in vec4 aTexBounds;
layout(location = 4) in mat4 aModel;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;
out vec4 vTexBounds;

void main() {
    vNormal = mat3(aModel) * aNormal;
    vTexCoord = aTexCoord;
    vTexBounds = aTexBounds;
    gl_Position = uViewProj * aModel * vec4(aPosition, 1.0);
}
`

// blockFragmentShader samples the atlas with per-quad tiling. Texture
// coordinates of merged quads run past 1.0; wrapping them back into the
// quad's atlas cell keeps the pattern repeating instead of bleeding
// into neighbouring cells.
const blockFragmentShader = `#version 410 core

in vec3 vNormal;
in vec2 vTexCoord;
in vec4 vTexBounds;

uniform sampler2D uTexture;
uniform vec3 uLightDir;

out vec4 fragColor;

void main() {
    vec2 cellMin = vTexBounds.xy;
    vec2 cellSize = vTexBounds.zw - vTexBounds.xy;
    vec2 uv = cellMin + fract((vTexCoord - cellMin) / cellSize) * cellSize;

    vec4 texel = texture(uTexture, uv);
    if (texel.a < 0.1) {
        discard;
    }

    float diffuse = max(dot(normalize(vNormal), normalize(-uLightDir)), 0.0);
    vec3 lit = texel.rgb * (0.35 + 0.65 * diffuse);
    fragColor = vec4(lit, texel.a);
}
`

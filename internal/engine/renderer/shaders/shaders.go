// Package shaders holds the GLSL sources used by the renderer.
package shaders

// HeadVertexShader transforms the subject mesh and passes world-space
// position and normal on for lighting.
const HeadVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;
uniform mat3 uNormalMatrix;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = normalize(uNormalMatrix * aNormal);
    gl_Position = uMVP * vec4(aPosition, 1.0);
}
`

// HeadFragmentShader shades with ambient plus Blinn-Phong per light.
// Directional lights shine from their position toward the origin; point
// lights fall off to zero at their range when one is set.
const HeadFragmentShader = `#version 410 core

#define MAX_LIGHTS 4
#define KIND_POINT 1

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uBaseColor;
uniform float uAmbient;
uniform float uShininess;
uniform float uSpecular;
uniform vec3 uCameraPos;

uniform int uLightCount;
uniform vec3 uLightPositions[MAX_LIGHTS];
uniform vec3 uLightColors[MAX_LIGHTS];
uniform float uLightRanges[MAX_LIGHTS];
uniform int uLightKinds[MAX_LIGHTS];

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 v = normalize(uCameraPos - vWorldPos);
    vec3 color = uBaseColor * uAmbient;

    for (int i = 0; i < MAX_LIGHTS; i++) {
        if (i >= uLightCount) break;

        vec3 l;
        float atten = 1.0;
        if (uLightKinds[i] == KIND_POINT) {
            vec3 toLight = uLightPositions[i] - vWorldPos;
            float d = length(toLight);
            l = toLight / max(d, 0.0001);
            if (uLightRanges[i] > 0.0) {
                float f = clamp(1.0 - d / uLightRanges[i], 0.0, 1.0);
                atten = f * f;
            }
        } else {
            l = normalize(uLightPositions[i]);
        }

        float diff = max(dot(n, l), 0.0);
        vec3 h = normalize(l + v);
        float spec = diff > 0.0 ? pow(max(dot(n, h), 0.0), uShininess) * uSpecular : 0.0;
        color += (uBaseColor * diff + vec3(spec)) * uLightColors[i] * atten;
    }

    // Gamma
    color = pow(color, vec3(1.0 / 2.2));
    FragColor = vec4(color, 1.0);
}
`

// LineVertexShader draws helper gizmos.
const LineVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aColor;

uniform mat4 uViewProj;

out vec3 vColor;

void main() {
    vColor = aColor;
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

// LineFragmentShader outputs the vertex colour unlit.
const LineFragmentShader = `#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
`

package shader

import (
	"github.com/Faultbox/textmesh/pkg/text"
)

// Text vertex attribute locations, in text.Vertex field order.
const (
	AttribPosition     = 0
	AttribColor        = 1
	AttribAtlasCoords  = 2
	AttribGlyphCoords  = 3
	AttribBoundsCoords = 4
)

// TextVertexSource transforms layout-space glyph quads by uProjection.
const TextVertexSource = `
#version 410 core

layout (location = 0) in vec2 aPosition;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec2 aAtlasCoords;
layout (location = 3) in vec2 aGlyphCoords;
layout (location = 4) in vec2 aBoundsCoords;

uniform mat4 uProjection;

out vec4 vColor;
out vec2 vAtlasCoords;
out vec2 vGlyphCoords;
out vec2 vBoundsCoords;

void main() {
	gl_Position = uProjection * vec4(aPosition, 0.0, 1.0);
	vColor = aColor;
	vAtlasCoords = aAtlasCoords;
	vGlyphCoords = aGlyphCoords;
	vBoundsCoords = aBoundsCoords;
}
`

const fragmentHeader = `
#version 410 core

uniform sampler2D uAtlas;
uniform float uScreenPxRange;

in vec4 vColor;
in vec2 vAtlasCoords;
in vec2 vGlyphCoords;
in vec2 vBoundsCoords;

out vec4 FragColor;

float median(float r, float g, float b) {
	return max(min(r, g), min(max(r, g), b));
}
`

// Coverage bodies per atlas kind. Atlases are uploaded as RGBA; single
// channel atlases carry their value in every channel.
const (
	hardmaskBody = `
void main() {
	float alpha = step(0.5, texture(uAtlas, vAtlasCoords).r);
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`
	softmaskBody = `
void main() {
	float alpha = texture(uAtlas, vAtlasCoords).r;
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`
	sdfBody = `
void main() {
	float dist = texture(uAtlas, vAtlasCoords).r;
	float alpha = clamp(uScreenPxRange * (dist - 0.5) + 0.5, 0.0, 1.0);
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`
	msdfBody = `
void main() {
	vec3 s = texture(uAtlas, vAtlasCoords).rgb;
	float dist = median(s.r, s.g, s.b);
	float alpha = clamp(uScreenPxRange * (dist - 0.5) + 0.5, 0.0, 1.0);
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`
)

// TextFragmentSource returns the fragment shader for an atlas type.
func TextFragmentSource(t text.AtlasType) string {
	switch t {
	case text.AtlasHardmask:
		return fragmentHeader + hardmaskBody
	case text.AtlasSDF, text.AtlasPSDF:
		return fragmentHeader + sdfBody
	case text.AtlasMSDF, text.AtlasMTSDF:
		return fragmentHeader + msdfBody
	default:
		return fragmentHeader + softmaskBody
	}
}

// ScreenPxRange returns the distance range in screen pixels for a style,
// never below 1.
func ScreenPxRange(atlas text.Atlas, size float32) float32 {
	if atlas.Size <= 0 {
		return 1
	}
	return max(atlas.DistanceRange*size/atlas.Size, 1)
}

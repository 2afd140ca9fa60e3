// Package renderer draws the lit subject, light helpers and background.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/asaro-studio/internal/engine/camera"
	"github.com/Faultbox/asaro-studio/internal/engine/renderer/shaders"
	"github.com/Faultbox/asaro-studio/internal/engine/shader"
	"github.com/Faultbox/asaro-studio/internal/lighting"
	"github.com/Faultbox/asaro-studio/internal/logger"
	"github.com/Faultbox/asaro-studio/internal/params"
)

// Config holds renderer configuration.
type Config struct {
	Ambient     float32
	HeadOffsetY float32
	HeadScale   float32
}

// Viewport is a pixel rectangle with a bottom-left origin, as GL expects.
type Viewport struct {
	X, Y, W, H int32
}

// Aspect returns width over height.
func (v Viewport) Aspect() float32 {
	if v.H == 0 {
		return 1
	}
	return float32(v.W) / float32(v.H)
}

// Renderer handles all OpenGL rendering of the scene.
type Renderer struct {
	config Config
	log    *zap.Logger

	head      *shader.Program
	headVAO   uint32
	headVBO   uint32
	headEBO   uint32
	headCount int32

	lines     *shader.Program
	lineVAO   uint32
	lineVBO   uint32
	lineCount int32

	// Scene state pushed by the scene binding
	background params.RGB
	lights     *lighting.Buffer
	baseColor  mgl32.Vec3
	roughness  float64
	rotation   float64
	helperData []float32
	helpersOn  bool
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		log:       logger.Named("renderer"),
		lights:    lighting.NewBuffer(),
		baseColor: mgl32.Vec3{1, 1, 1},
		roughness: 0.5,
		helpersOn: true,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	r.head, err = shader.New(shaders.HeadVertexShader, shaders.HeadFragmentShader,
		"uMVP", "uModel", "uNormalMatrix", "uBaseColor", "uAmbient", "uShininess", "uSpecular",
		"uCameraPos", "uLightCount", "uLightPositions", "uLightColors", "uLightRanges", "uLightKinds")
	if err != nil {
		return nil, fmt.Errorf("head shader: %w", err)
	}

	r.lines, err = shader.New(shaders.LineVertexShader, shaders.LineFragmentShader, "uViewProj")
	if err != nil {
		r.head.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.uploadHead(HeadMesh())
	r.createLineBuffers()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	gl.DeleteVertexArrays(1, &r.headVAO)
	gl.DeleteBuffers(1, &r.headVBO)
	gl.DeleteBuffers(1, &r.headEBO)
	gl.DeleteVertexArrays(1, &r.lineVAO)
	gl.DeleteBuffers(1, &r.lineVBO)
	r.head.Delete()
	r.lines.Delete()
}

// SetBackground sets the clear colour.
func (r *Renderer) SetBackground(c params.RGB) {
	r.background = c
}

// SetLights replaces the scene lights and rebuilds their helpers.
func (r *Renderer) SetLights(lights []lighting.Light) {
	r.lights.SetLights(lights)
	r.helperData = HelperVertices(r.lights.Lights)
}

// SetMaterial sets the subject's surface.
func (r *Renderer) SetMaterial(base params.RGB, roughness float64) {
	c := base.Float32()
	r.baseColor = mgl32.Vec3{c[0], c[1], c[2]}
	r.roughness = roughness
}

// SetHeadRotation sets the subject's turn about the vertical axis.
func (r *Renderer) SetHeadRotation(rad float64) {
	r.rotation = rad
}

// SetHelpersVisible toggles all helper gizmos regardless of per-light flags.
func (r *Renderer) SetHelpersVisible(on bool) {
	r.helpersOn = on
}

// HelpersVisible reports the global helper toggle.
func (r *Renderer) HelpersVisible() bool {
	return r.helpersOn
}

// Draw renders the scene into vp.
func (r *Renderer) Draw(cam *camera.OrbitCamera, vp Viewport) {
	gl.Viewport(vp.X, vp.Y, vp.W, vp.H)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(vp.X, vp.Y, vp.W, vp.H)
	bg := r.background.Float32()
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(vp.Aspect())
	viewProj := proj.Mul4(view)

	r.drawHead(cam, viewProj)

	gl.Disable(gl.CULL_FACE)
	if r.helpersOn {
		r.drawHelpers(viewProj)
	}
	gl.Disable(gl.DEPTH_TEST)
}

func (r *Renderer) drawHead(cam *camera.OrbitCamera, viewProj mgl32.Mat4) {
	model := HeadModel(r.rotation, r.config.HeadOffsetY, r.config.HeadScale)
	normal := model.Mat3().Inv().Transpose()
	exponent, weight := Shininess(r.roughness)

	p := r.head
	p.Use()
	p.SetMat4("uMVP", viewProj.Mul4(model))
	p.SetMat4("uModel", model)
	p.SetMat3("uNormalMatrix", normal)
	p.SetVec3("uBaseColor", r.baseColor)
	p.SetFloat("uAmbient", r.config.Ambient)
	p.SetFloat("uShininess", exponent)
	p.SetFloat("uSpecular", weight)
	p.SetVec3("uCameraPos", cam.Position())
	p.SetInt("uLightCount", int32(r.lights.Count))
	p.SetVec3Array("uLightPositions", r.lights.Positions())
	p.SetVec3Array("uLightColors", r.lights.Colors())
	p.SetFloatArray("uLightRanges", r.lights.Ranges())
	p.SetIntArray("uLightKinds", r.lights.Kinds())

	gl.BindVertexArray(r.headVAO)
	gl.DrawElements(gl.TRIANGLES, r.headCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawHelpers(viewProj mgl32.Mat4) {
	if len(r.helperData) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.helperData)*4, unsafe.Pointer(&r.helperData[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.lineCount = int32(len(r.helperData) / vertexStride)

	r.lines.Use()
	r.lines.SetMat4("uViewProj", viewProj)
	gl.BindVertexArray(r.lineVAO)
	gl.DrawArrays(gl.LINES, 0, r.lineCount)
	gl.BindVertexArray(0)
}

// ReadPixels returns the RGBA contents of vp with rows bottom-up.
func (r *Renderer) ReadPixels(vp Viewport) []byte {
	if vp.W <= 0 || vp.H <= 0 {
		return nil
	}
	buf := make([]byte, int(vp.W)*int(vp.H)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(vp.X, vp.Y, vp.W, vp.H, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	return buf
}

// HelperVertices builds interleaved position/colour line vertices for every
// light whose helper is switched on.
func HelperVertices(lights []lighting.Light) []float32 {
	var out []float32
	for _, l := range lights {
		if !l.Helper {
			continue
		}
		for _, p := range lighting.HelperLines(l) {
			out = append(out, p[0], p[1], p[2], l.Color[0], l.Color[1], l.Color[2])
		}
	}
	return out
}

func (r *Renderer) uploadHead(m *Mesh) {
	gl.GenVertexArrays(1, &r.headVAO)
	gl.BindVertexArray(r.headVAO)

	gl.GenBuffers(1, &r.headVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.headVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.headEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.headEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	r.headCount = int32(len(m.Indices))

	r.log.Debug("head mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", r.headCount),
	)
}

func (r *Renderer) createLineBuffers() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)

	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)

	stride := int32(vertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

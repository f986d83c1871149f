package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/strata/engine/colors"
)

// Renderer issues the few frame-level GL commands layers need. It uses
// whatever context is current.
type Renderer struct {
	clear colors.Color
}

func NewRenderer(clear colors.Color) *Renderer { return &Renderer{clear: clear} }

func (r *Renderer) SetClearColor(c colors.Color) { r.clear = c }
func (r *Renderer) ClearColor() colors.Color     { return r.clear }

func (r *Renderer) Clear() {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) SetViewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

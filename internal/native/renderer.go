package native

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/1broseidon/windowfun/internal/config"
)

// ClearRenderer fills the framebuffer with a solid colour. It requires the
// context created by Open to be current.
type ClearRenderer struct {
	colour config.Colour
}

// NewClearRenderer configures the GL state used each frame.
func NewClearRenderer(colour config.Colour) *ClearRenderer {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return &ClearRenderer{colour: colour}
}

// Clear paints the background for the next frame.
func (r *ClearRenderer) Clear() {
	gl.ClearColor(r.colour.R, r.colour.G, r.colour.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

package viewer

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/engine/input"
	"github.com/Faultbox/globe/internal/shapes"
	"github.com/Faultbox/globe/pkg/arcball"
)

var shapeKeys = map[sdl.Keycode]shapes.Kind{
	sdl.K_c: shapes.KindCube,
	sdl.K_o: shapes.KindCone,
	sdl.K_l: shapes.KindCylinder,
	sdl.K_s: shapes.KindSphere,
	sdl.K_t: shapes.KindTorus,
}

// controls is the interaction state driven by input events. It owns the
// arcball state between frames.
type controls struct {
	shape    shapes.Kind
	state    arcball.State
	viewport arcball.Viewport
	last     arcball.Point
	log      *zap.Logger

	// screenshot is set by F12 and cleared once the frame is saved.
	screenshot bool
}

// apply updates the controls from one event. It returns false when the
// viewer should stop.
func (c *controls) apply(ev input.Event) bool {
	switch ev.Type {
	case input.EventQuit:
		return false

	case input.EventKeyDown:
		if ev.Key == sdl.K_ESCAPE {
			return false
		}
		if ev.Key == sdl.K_F12 {
			c.screenshot = true
		}
		if k, ok := shapeKeys[ev.Key]; ok && k != c.shape {
			c.log.Debug("shape selected", zap.Stringer("shape", k))
			c.shape = k
		}

	case input.EventWindowResize:
		c.viewport.Width = float64(ev.Width)
		c.viewport.Height = float64(ev.Height)

	case input.EventMouseDown:
		c.state = c.state.Press()
		c.last = pointer(ev)

	case input.EventMouseMove:
		p := pointer(ev)
		if ev.Pressed() {
			next, err := c.state.Drag(c.viewport, c.last, p)
			if err != nil {
				c.log.Warn("drag ignored", zap.Error(err))
			} else {
				c.state = next
			}
		}
		c.last = p
	}
	return true
}

// step advances the spin by one frame.
func (c *controls) step() {
	c.state = c.state.Step()
}

func pointer(ev input.Event) arcball.Point {
	return arcball.Point{X: float64(ev.MouseX), Y: float64(ev.MouseY)}
}

package components

import (
	"fmt"

	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxRenderer", func() engine.Serializable {
		return NewBoxRenderer(rl.Vector3{X: 1, Y: 1, Z: 1}, rl.White)
	})
}

// BoxRenderer draws a solid box. Tint overrides Color while set, which is how
// gameplay feedback (hover pulses, drag highlight) recolors an object.
type BoxRenderer struct {
	engine.BaseComponent
	Size  rl.Vector3
	Color rl.Color
	tint  *rl.Color
}

func NewBoxRenderer(size rl.Vector3, color rl.Color) *BoxRenderer {
	return &BoxRenderer{Size: size, Color: color}
}

func (b *BoxRenderer) SetTint(c rl.Color) {
	b.tint = &c
}

func (b *BoxRenderer) ClearTint() {
	b.tint = nil
}

// CurrentColor is the color the next Draw will use.
func (b *BoxRenderer) CurrentColor() rl.Color {
	if b.tint != nil {
		return *b.tint
	}
	return b.Color
}

func (b *BoxRenderer) Draw() {
	g := b.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	scale := g.WorldScale()
	size := rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
	pos := g.WorldPosition()
	rl.DrawCubeV(pos, size, b.CurrentColor())
	rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.4))
}

func (b *BoxRenderer) TypeName() string {
	return "BoxRenderer"
}

func (b *BoxRenderer) Serialize() map[string]any {
	return map[string]any{
		"type":  "BoxRenderer",
		"size":  [3]float32{b.Size.X, b.Size.Y, b.Size.Z},
		"color": LookupColorName(b.Color),
	}
}

func (b *BoxRenderer) Deserialize(data map[string]any) {
	if v, ok := engine.Vector3(data, "size"); ok {
		b.Size = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
	if name, ok := data["color"].(string); ok {
		b.Color = LookupColor(name)
	}
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// LookupColor maps a color name to a raylib color, defaulting to white.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func LookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

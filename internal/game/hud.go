package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 220)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextHot   = rl.NewColor(255, 255, 255, 255)
)

const (
	hudX     = 10
	hudWidth = 300
	rowH     = 22
)

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextHot))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextHot))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (g *Game) DrawUI() {
	rl.DrawText("Right mouse: drag platform   Left mouse: shoot", hudX, 10, 18, rl.LightGray)
	rl.DrawText("Arrows/PgUp/PgDn: aim hand   V: hand trigger   H: hand tracking", hudX, 32, 18, rl.LightGray)
	rl.DrawFPS(hudX, 56)

	lines := g.statusLines()
	y := float32(84)
	panelH := float32(2*rowH+len(lines)*rowH) + 12
	rl.DrawRectangleRec(rl.Rectangle{X: hudX - 4, Y: y - 4, Width: hudWidth, Height: panelH}, colorBgPanel)

	g.BlockDragging = gui.CheckBox(rl.Rectangle{X: hudX, Y: y, Width: 16, Height: 16}, "Block dragging (Space)", g.BlockDragging)
	y += rowH
	g.DebugMode = gui.CheckBox(rl.Rectangle{X: hudX, Y: y, Width: 16, Height: 16}, "Debug overlay (F1)", g.DebugMode)
	y += rowH
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: hudX, Y: y, Width: hudWidth - 8, Height: rowH}, line)
		y += rowH
	}

	if g.DebugMode {
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), hudX, int32(y)+8, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), hudX, int32(y)+28, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Total:  %.2f ms", g.updateMs+g.drawMs), hudX, int32(y)+48, 16, rl.Lime)
	}
}

// statusLines describes the hand, the gate and the current drag. In debug
// mode every platform gets a line.
func (g *Game) statusLines() []string {
	lines := make([]string, 0, 4)

	hand := "lost"
	if g.hand != nil && g.hand.Object.Active {
		hand = "tracked"
	}
	lines = append(lines, "Hand: "+hand)

	if g.World.Gate.Suppressed() {
		lines = append(lines, "Dragging blocked")
	}

	if owner := g.World.Gate.Owner(); owner != nil {
		d := owner.Draggable()
		lines = append(lines,
			fmt.Sprintf("Dragging %s via %s", d.GetGameObject().Name, owner.GrabbedBy()),
			fmt.Sprintf("  %s = %.2f  session %s", d.Axis, d.Position(), owner.Session().String()[:8]),
		)
	} else {
		lines = append(lines, "Drag: none")
	}

	if g.DebugMode {
		for _, d := range g.World.Registry.All() {
			lines = append(lines, fmt.Sprintf("  %s %s %.2f", d.GetGameObject().Name, d.State(), d.Position()))
		}
	}
	return lines
}

package game

import (
	"fmt"
	"time"

	"diorama/internal/components"
	"diorama/internal/drag"
	"diorama/internal/engine"
	"diorama/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	shootCooldown = 0.15
	shotSpeed     = 30
	killPlaneY    = -50
)

type Game struct {
	World     *world.World
	Renderer  *world.Renderer
	DebugMode bool

	// BlockDragging is the HUD toggle; shooting blocks dragging on its own.
	BlockDragging bool

	hand   *Hand
	logger *zap.Logger

	shotCounter  int
	lastShotTime float64
	shooting     bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(w *world.World, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		World:    w,
		Renderer: world.NewRenderer(w),
		logger:   logger,
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "diorama")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initHUDStyle()

	g.wireInput()
	g.World.Start()
	g.logger.Info("running",
		zap.Int("objects", len(g.World.Scene.GameObjects)),
		zap.Int("platforms", g.World.Registry.Len()))

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// wireInput points the world's shared drag input at the live devices. The
// controllers created while loading the scene already hold this Input.
func (g *Game) wireInput() {
	w := g.World
	g.hand = FindOrCreateHand(w)

	in := w.Input
	in.VRPointer = g.hand.Pointer(w.Scene, w.Tuning.AimPitchDegrees)
	in.VRTrigger = drag.KeyAxis(rl.KeyV)
	in.DesktopPointer = &drag.DesktopPointer{
		Camera: g.camera,
		Mouse:  drag.RaylibMouse,
	}
	in.DesktopButton = drag.MouseButton(rl.MouseRightButton)
}

// camera is the scene's main camera, or a fixed overview when the scene has
// none.
func (g *Game) camera() (rl.Camera3D, bool) {
	if cam, ok := drag.MainCamera(g.World.Scene)(); ok {
		return cam, true
	}
	return rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 4, Z: 18},
		Target:     rl.Vector3{X: 0, Y: 1, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}, true
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.BlockDragging = !g.BlockDragging
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.hand.Toggle()
	}
	g.hand.Update(deltaTime)

	g.shooting = rl.IsMouseButtonDown(rl.MouseLeftButton)
	if g.shooting && rl.GetTime()-g.lastShotTime >= shootCooldown {
		g.shoot()
		g.lastShotTime = rl.GetTime()
	}
	g.World.Gate.SetSuppressed(g.BlockDragging || g.shooting)

	g.World.Step(deltaTime)
	g.cull()

	g.Renderer.ShowBounds = g.DebugMode
	g.Renderer.ShowProbes = g.DebugMode

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// shoot launches a crate along the desktop pointer. Crates land on platforms
// and ride them like any other dynamic body.
func (g *Game) shoot() {
	pointer := g.World.Input.DesktopPointer
	if pointer == nil {
		return
	}
	ray, ok := pointer.TryGetRay()
	if !ok {
		return
	}
	g.shotCounter++

	size := rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
	crate := engine.NewGameObject(fmt.Sprintf("Shot_%d", g.shotCounter))
	crate.Tags = []string{"shot"}
	crate.Transform.Position = rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, 3))
	crate.AddComponent(components.NewBoxRenderer(size, rl.Orange))
	crate.AddComponent(components.NewBoxCollider(size))

	rb := components.NewRigidbody()
	rb.Bounciness = 0.3
	rb.Friction = 0.2
	rb.Velocity = rl.Vector3Scale(ray.Direction, shotSpeed)
	crate.AddComponent(rb)

	g.World.SpawnObject(crate)
}

// cull destroys shots that fell out of the world.
func (g *Game) cull() {
	for _, obj := range g.World.Scene.FindByTag("shot") {
		if obj.WorldPosition().Y < killPlaneY {
			g.World.Destroy(obj)
		}
	}
}

func (g *Game) Draw() {
	camera, _ := g.camera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	rl.DrawGrid(40, 1)
	g.Renderer.Draw(g.World)
	g.hand.Draw(g.DebugMode)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

package world

import (
	"encoding/json"
	"fmt"
	"os"

	"diorama/internal/drag"
	"diorama/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Active     *bool            `json:"active,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components"`
	Children   []ObjectDef      `json:"children,omitempty"`
}

// --- Loading ---

// LoadScene adds the objects described by a scene file. Every Draggable gets
// a drag controller bound to the world's input and gate. Objects are not
// started; call Start once the scene is complete.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := w.buildObject(def)
		if err != nil {
			return fmt.Errorf("scene %s: %w", path, err)
		}
		objects = append(objects, g)
	}
	for _, g := range objects {
		w.Scene.AddGameObject(g)
	}

	w.logger.Info("scene loaded", zap.String("path", path), zap.Int("objects", len(objects)))
	return nil
}

func (w *World) buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	var draggable *drag.Draggable
	for _, data := range def.Components {
		name, _ := data["type"].(string)
		c := engine.CreateComponent(name, nil)
		if c == nil {
			w.logger.Warn("unknown component skipped",
				zap.String("object", def.Name),
				zap.String("type", name),
			)
			continue
		}
		if d, ok := c.(*drag.Draggable); ok {
			if draggable != nil {
				return nil, fmt.Errorf("object %q: more than one Draggable", def.Name)
			}
			d.Padding = w.Tuning.Padding
			draggable = d
		}
		c.Deserialize(data)
		g.AddComponent(c)
	}

	if draggable != nil {
		if err := draggable.Validate(); err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		drag.Attach(g, w.Input, w.Gate, w.Tuning, w.logger.Named("drag"))
	}

	for _, childDef := range def.Children {
		child, err := w.buildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile
	for _, g := range w.Scene.GameObjects {
		sf.Objects = append(sf.Objects, objectDef(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func objectDef(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
		Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
		Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}

	for _, c := range g.Components() {
		// Controllers are recreated from their Draggable on load
		if s, ok := c.(engine.Serializable); ok {
			def.Components = append(def.Components, s.Serialize())
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, objectDef(child))
	}
	return def
}

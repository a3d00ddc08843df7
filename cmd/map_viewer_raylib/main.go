package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	game "go-road-defense/internal/app"
	"go-road-defense/internal/config"
	"go-road-defense/internal/utils"
	"go-road-defense/pkg/roadmap"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	cellSize     = 10.0 // мировой размер клетки в 3D
)

// Vector3Lerp выполняет линейную интерполяцию между двумя векторами
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(utils.Lerp(float32(c1.R), float32(c2.R), t)),
		uint8(utils.Lerp(float32(c1.G), float32(c2.G), t)),
		uint8(utils.Lerp(float32(c1.B), float32(c2.B), t)),
		uint8(utils.Lerp(float32(c1.A), float32(c2.A), t)),
	)
}

// worldPos переводит мировые координаты симуляции (пиксели 2D) в 3D.
func worldPos(x, y float64, grid *roadmap.Grid, height float32) rl.Vector3 {
	scale := float32(cellSize / config.TileSize)
	ox := float32(grid.Cols) * cellSize / 2
	oz := float32(grid.Rows) * cellSize / 2
	return rl.NewVector3(float32(x)*scale-ox, height, float32(y)*scale-oz)
}

func cellPos(c roadmap.GridCell, grid *roadmap.Grid, height float32) rl.Vector3 {
	x, y := c.Center(config.TileSize)
	return worldPos(x, y, grid, height)
}

func tileColor(t roadmap.TileType) rl.Color {
	switch {
	case t == roadmap.TileGate:
		return rl.NewColor(90, 60, 40, 255)
	case t >= roadmap.TileOneWayEast:
		return rl.NewColor(175, 150, 100, 255)
	case t.IsRoad():
		return rl.NewColor(150, 130, 95, 255)
	default:
		return rl.NewColor(70, 110, 80, 255)
	}
}

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.SettingsPath(), "settings file")
	levelPath := flag.String("level", "", "level file, overrides level_file from settings")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	game.SetupLogging(os.Stdout, settings.LogLevel)
	if *levelPath != "" {
		settings.LevelFile = *levelPath
	}
	opts, err := game.LoadOptions(settings)
	if err != nil {
		return err
	}
	g := game.NewGame(opts)
	grid := g.Grid

	backgroundColor := rl.NewColor(10, 10, 20, 255)
	rl.InitWindow(screenWidth, screenHeight, "Road Map Viewer | Q/E - Rotate, Mouse Wheel - Change Angle, Space - Next Wave")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	span := float32(max(grid.Cols, grid.Rows)) * cellSize
	isoPos := rl.NewVector3(span*0.4, span*0.9, span*0.9)
	topDownPos := rl.NewVector3(0, span*1.6, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.5)

	onPath := make(map[roadmap.GridCell]struct{}, len(g.Path))
	for _, c := range g.Path {
		onPath[c] = struct{}{}
	}

	for !rl.WindowShouldClose() {
		// Вращение
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			cameraAngleT = min(max(cameraAngleT+wheel*0.05, 0), 0.99)
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			g.StartNextWave()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.Reset()
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		g.Update(1)

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		darkness := float32(g.Environment.Darkness())
		for row := 0; row < grid.Rows; row++ {
			for col := 0; col < grid.Cols; col++ {
				c := roadmap.GridCell{Col: col, Row: row}
				tile := grid.At(c)
				h := float32(1)
				if tile.IsRoad() {
					h = 0.4
				}
				clr := ColorLerp(tileColor(tile), backgroundColor, darkness*0.6)
				pos := cellPos(c, grid, h/2-1)
				rl.DrawCube(pos, cellSize*0.96, h, cellSize*0.96, clr)
				if _, ok := onPath[c]; ok {
					rl.DrawCubeWires(pos, cellSize*0.96, h, cellSize*0.96, rl.Gold)
				}
			}
		}
		if len(g.Path) > 0 {
			rl.DrawSphere(cellPos(g.Path[0], grid, 0.5), 1.5, rl.Green)
			rl.DrawSphere(cellPos(g.Path.Last(), grid, 0.5), 1.5, rl.Red)
		}

		for _, t := range g.Combat.Towers() {
			base := worldPos(t.X, t.Y, grid, 0)
			rl.DrawCylinder(base, 2.4, 2.8, 8, 9, rl.LightGray)
			rl.DrawCylinderWires(base, 2.4, 2.8, 8, 9, rl.DarkGray)
			if t.Def.Lit() && darkness > 0 {
				radius := float32(t.Def.LightRadius) * cellSize
				rl.DrawCircle3D(worldPos(t.X, t.Y, grid, 0.1), radius, rl.NewVector3(1, 0, 0), 90, rl.NewColor(255, 230, 140, uint8(120*darkness)))
			}
		}

		for _, e := range g.Simulator.Snapshot() {
			if !e.Alive {
				continue
			}
			c := e.Type.Color()
			clr := rl.NewColor(c.R, c.G, c.B, 255)
			if e.Invisible {
				clr.A = 80
			}
			radius := float32(e.Size.Radius()) * cellSize
			rl.DrawSphere(worldPos(e.X, e.Y, grid, radius), radius, clr)
		}

		rl.EndMode3D()

		st := g.Status()
		rl.DrawText(fmt.Sprintf("%s | %s", opts.Level.Name, st.Phase), 10, 10, 20, rl.White)
		rl.DrawText(fmt.Sprintf("gold %d  lives %d  %s", g.Economy.Gold, g.Economy.Lives, g.Economy.Phase), 10, 34, 20, rl.White)
		rl.DrawFPS(10, screenHeight-30)

		rl.EndDrawing()
	}
	return nil
}

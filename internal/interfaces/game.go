package interfaces

// Game is the control surface the host (window, headless runner) drives.
type Game interface {
	Update(speed float64)
	Reset()
	StartNextWave()
	SetDifficulty(name string) error
}

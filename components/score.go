package components

// Score tracks points and the golden-mouse counters of a run
type Score struct {
	Points           int
	NextPoints       int // point value of the next spawned mouse before capping
	EatenSinceGolden int // regular mice eaten since the last golden spawn
}

// NewScore returns the run-start score
func NewScore() Score {
	return Score{NextPoints: 1}
}

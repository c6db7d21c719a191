package constants

import "time"

// Grid
const (
	// GridUnit is the side length of one cell in field coordinates
	GridUnit = 10

	// InitialFieldWidth is the field width at the start of every run
	InitialFieldWidth = 80

	// InitialFieldHeight is the field height at the start of every run, clamped to the viewport
	InitialFieldHeight = 80
)

// Clock
const (
	// BaseTickInterval drives Update and render at normal speed
	BaseTickInterval = 187 * time.Millisecond

	// AgingInterval is the mouse aging cadence
	AgingInterval = time.Second

	// BoostFactor scales the boosted cadence: base / (1 + target*factor)
	BoostFactor = 0.1
)

// Mice
const (
	// InitialMouseLife is the base lifespan in aging ticks at run start
	InitialMouseLife = 10

	// InitialMouseTarget is the number of live mice at run start
	InitialMouseTarget = 1

	// MaxMice is the base mouse cap before length bonuses
	MaxMice = 10

	// MouseCapLengthStep adds one to the mouse cap per this many snake segments
	MouseCapLengthStep = 100

	// MaxPointValue bounds the point value of any mouse
	MaxPointValue = 10

	// GoldenAfterEaten is the count of regular mice eaten before the next spawn is golden
	GoldenAfterEaten = 4
)

// Spawning
const (
	// SpawnMaxAttempts is the number of random samples before falling back to a full scan
	SpawnMaxAttempts = 100

	// AvoidPredictedPath keeps spawns off the snake's next one or two head cells
	AvoidPredictedPath = true
)

// Field expansion thresholds, indexed by score tier
const (
	ExpansionThresholdLow  = 0.25
	ExpansionThresholdMid  = 0.5
	ExpansionThresholdHigh = 0.75

	// ExpansionScoreMid is the score at which the mid threshold applies
	ExpansionScoreMid = 500

	// ExpansionScoreHigh is the score at which the high threshold applies
	ExpansionScoreHigh = 1000
)

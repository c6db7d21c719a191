package constants

// HUD and canvas layout
const (
	// HUDWidth is the minimum canvas width in field units, the field is centered inside it
	HUDWidth = 320

	// HUDRows is the number of terminal rows reserved above the field
	HUDRows = 1

	// CellColumns is the number of terminal columns one grid cell occupies
	CellColumns = 2

	// BorderCells is the frame thickness drawn around the field, in terminal cells per side
	BorderCells = 1
)

// Overlay text
const (
	PausedText      = "PAUSED"
	ResumeHintText  = "Press END or SPACE to resume"
	GameOverText    = "GAME OVER"
	AcknowledgeText = "Press any key"
	StartHintText   = "Arrow keys to start"
)

package ui

// ANSI escape codes
const (
	Purple = "\033[95m"
	Blue   = "\033[94m"
	Cyan   = "\033[96m"
	Green  = "\033[92m"
	Yellow = "\033[93m"
	Red    = "\033[91m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Reset  = "\033[0m"
)

// miniBanner is shown above the phase lines on a terminal.
const miniBanner = Purple + Bold + "/last30days" + Reset + " " + Dim + "· researching..." + Reset

// SpinnerFrames is the braille animation cycle.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

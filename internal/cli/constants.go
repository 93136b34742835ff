package cli

// Default values for CLI flags and output.
const (
	// MaxDescriptionLength is the maximum length of a hook description to display.
	MaxDescriptionLength = 60
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
	// setCommandArgs is the number of arguments expected by config set.
	setCommandArgs = 2
)

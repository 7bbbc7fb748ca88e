package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenContextInput
	ScreenGenerating
	ScreenPicker
	ScreenCommitting
	ScreenPushing
	ScreenComplete
	ScreenError
)

func (s Screen) String() string {
	names := []string{
		"Loading",
		"ContextInput",
		"Generating",
		"Picker",
		"Committing",
		"Pushing",
		"Complete",
		"Error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

package core

// RuntimeConfig carries process-level settings from the CLI into drivers.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters, 0 if unknown
	ScreenH int   // Terminal height in characters, 0 if unknown
	Seed    int64 // RNG seed the food source was created with
	Color   bool  // Whether drivers may emit colors
}

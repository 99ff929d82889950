// Package config holds the window layout constants and the runtime
// configuration read from flags, environment and breathe.yaml.
package config

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonY      = 20

	// Progress bar
	ProgressWidth  = 400
	ProgressHeight = 10
	ProgressY      = 80

	// Breathing circle
	GuideRadius  = 200
	CircleTop    = ProgressY + ProgressHeight + 20
	StatusMargin = 12
)

package cmd

import (
	"errors"

	"github.com/ncruces/zenity"
)

// pickTrack asks for an audio file. A cancelled dialog returns "" and no error.
func pickTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a track"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.mp3", "*.wav", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

package audio

import (
	"bytes"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/tcolgate/mp3"
)

// Info is the descriptive metadata shown next to the player.
type Info struct {
	Title  string
	Artist string

	// Encoded is the duration summed from mp3 frame headers; zero for other formats.
	Encoded time.Duration
}

func readInfo(source, ext string, data []byte) Info {
	var info Info
	if meta, err := tag.ReadFrom(bytes.NewReader(data)); err == nil {
		info.Title = strings.TrimSpace(meta.Title())
		info.Artist = strings.TrimSpace(meta.Artist())
	}
	if info.Title == "" {
		base := filepath.Base(source)
		if isURL(source) {
			base = path.Base(source)
		}
		info.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if ext == ".mp3" {
		if d, err := mp3Duration(bytes.NewReader(data)); err == nil {
			info.Encoded = d
		}
	}
	return info
}

func mp3Duration(r io.Reader) (time.Duration, error) {
	decoder := mp3.NewDecoder(r)
	var frame mp3.Frame
	var skipped int
	var total time.Duration

	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		total += frame.Duration()
	}
	return total, nil
}

package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var (
	// ErrUnsupportedFormat is returned for sources that are not mp3, wav or flac.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrEmptyTrack is returned when decoding yields no samples.
	ErrEmptyTrack = errors.New("audio track is empty")
)

// Loader fetches and decodes a track.
type Loader interface {
	Load(ctx context.Context, source string) (*Track, error)
}

// FileLoader reads local paths and http(s) URLs.
type FileLoader struct {
	Client *http.Client
	Logger *slog.Logger
}

// NewLoader returns a FileLoader with a bounded HTTP client.
func NewLoader(logger *slog.Logger) *FileLoader {
	return &FileLoader{
		Client: &http.Client{Timeout: 30 * time.Second},
		Logger: logger,
	}
}

// Load reads source fully, decodes it by extension and buffers the samples.
func (l *FileLoader) Load(ctx context.Context, source string) (*Track, error) {
	ext, err := extension(source)
	if err != nil {
		return nil, err
	}

	data, err := l.fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}

	streamer, format, err := decode(ext, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	if buffer.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyTrack)
	}

	track := NewTrack(source, buffer, readInfo(source, ext, data))
	l.logger().Info("track loaded",
		"source", source,
		"title", track.Info.Title,
		"sampleRate", int(format.SampleRate),
		"duration", track.Duration(),
	)
	return track, nil
}

func (l *FileLoader) fetch(ctx context.Context, source string) ([]byte, error) {
	if !isURL(source) {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (l *FileLoader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

func decode(ext string, data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case ".wav":
		return wav.Decode(bytes.NewReader(data))
	case ".mp3":
		return mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	case ".flac":
		return flac.Decode(bytes.NewReader(data))
	default:
		return nil, beep.Format{}, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}

func extension(source string) (string, error) {
	p := source
	if isURL(source) {
		u, err := url.Parse(source)
		if err != nil {
			return "", err
		}
		p = path.Base(u.Path)
	}
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".wav", ".mp3", ".flac":
		return ext, nil
	}
	return "", fmt.Errorf("%s: %w", source, ErrUnsupportedFormat)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

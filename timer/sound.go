package timer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode, nil
	case ".ogg":
		return vorbis.Decode, nil
	case ".flac":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return flac.Decode(r)
		}, nil
	case ".wav":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(r)
		}, nil
	}

	return nil, errInvalidSoundFormat.Fmt(path)
}

// SoundPath resolves the file of an ambient sound. Relative names are looked
// up in dir.
func SoundPath(dir, fileURL string) string {
	if fileURL == "" || filepath.IsAbs(fileURL) {
		return fileURL
	}

	return filepath.Join(dir, fileURL)
}

// ambientPlayer loops a sound file until it is closed.
type ambientPlayer struct {
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
}

func openAmbient(path string) (*ambientPlayer, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errPlaySound.Fmt(path).Wrap(err)
	}

	stream, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, errPlaySound.Fmt(path).Wrap(err)
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Second/time.Duration(bufferSize)),
	)
	if err != nil {
		_ = stream.Close()
		return nil, errPlaySound.Fmt(path).Wrap(err)
	}

	p := &ambientPlayer{
		stream: stream,
		ctrl: &beep.Ctrl{
			Streamer: beep.Loop(-1, stream),
			Paused:   true,
		},
	}

	speaker.Play(p.ctrl)

	return p, nil
}

// SetPlaying starts or pauses the loop.
func (p *ambientPlayer) SetPlaying(on bool) {
	if p == nil {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = !on
	speaker.Unlock()
}

func (p *ambientPlayer) Close() {
	if p == nil {
		return
	}

	speaker.Clear()
	speaker.Close()

	_ = p.stream.Close()
}

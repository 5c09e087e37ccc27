// Package output plays an audio synth through the default portaudio device.
package output

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/dialnav/internal/audio"
)

// Source renders stereo samples on the audio thread.
type Source interface {
	Process(out [][]float32)
}

type Player struct {
	stream *portaudio.Stream
}

// Start opens an output-only stream on the default device.
func Start(src Source) (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio: init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, audio.SampleRate, audio.BufferSize, src.Process)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: start stream: %w", err)
	}
	return &Player{stream: stream}, nil
}

func (p *Player) Stop() error {
	if p == nil || p.stream == nil {
		return nil
	}
	err := p.stream.Stop()
	p.stream.Close()
	p.stream = nil
	portaudio.Terminate()
	return err
}

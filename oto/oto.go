package oto

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/oido"
)

type (
	OtoContext struct {
		context *oto.Context
	}

	// OtoOutput starts a one-shot player for every buffer written to it, so
	// tones can overlap. Players that have finished are closed on the next
	// write.
	OtoOutput struct {
		context *oto.Context
		mu      sync.Mutex
		players []*oto.Player
	}
)

const channelCount = 2

// NewContext creates the oto context and waits until the device is ready.
func NewContext() (*OtoContext, error) {
	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   oido.SampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{context: context}, nil
}

func (c *OtoContext) Output() oido.AudioSink {
	return &OtoOutput{context: c.context}
}

// Close suspends the device; oto contexts live until the process exits.
func (c *OtoContext) Close() error {
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

// WriteAudio implements the oido.AudioSink interface
func (o *OtoOutput) WriteAudio(buffer []float32) error {
	if err := o.context.Err(); err != nil {
		return fmt.Errorf("oto context failed: %w", err)
	}
	data := FloatBufferToBytes(buffer, channelCount, nil)
	player := o.context.NewPlayer(bytes.NewReader(data))
	player.Play()
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prune()
	o.players = append(o.players, player)
	return nil
}

func (o *OtoOutput) prune() {
	live := o.players[:0]
	for _, p := range o.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	clear(o.players[len(live):])
	o.players = live
}

// Close disposes of resources
func (o *OtoOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	var firstErr error
	for _, p := range o.players {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("cannot close oto player: %w", err)
		}
	}
	o.players = nil
	return firstErr
}

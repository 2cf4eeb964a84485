package main

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	raudio "github.com/hajimehoshi/ebiten/v2/examples/resources/audio"
)

const sampleRate = 48000

var (
	audioContext *audio.Context
)

// newHitPlayer 撞击音效，游戏结束时播放
func newHitPlayer() (*audio.Player, error) {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	jabD, err := wav.DecodeWithoutResampling(bytes.NewReader(raudio.Jab_wav))
	if err != nil {
		return nil, err
	}
	return audioContext.NewPlayer(jabD)
}

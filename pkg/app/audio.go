package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	tone "github.com/gonewx/fortune/internal/audio"
	"github.com/gonewx/fortune/pkg/game"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// soundBank 每个音效的合成参数
var soundBank = map[game.Sound]tone.Tone{
	game.SoundShoot:       {Wave: tone.WaveSquare, StartHz: 880, EndHz: 660, DurationMs: 40, Volume: 0.15},
	game.SoundEnemyShoot:  {Wave: tone.WaveSquare, StartHz: 330, EndHz: 220, DurationMs: 60, Volume: 0.15},
	game.SoundExplosion:   {Wave: tone.WaveNoise, DurationMs: 250, Volume: 0.4},
	game.SoundCollect:     {Wave: tone.WaveSine, StartHz: 990, EndHz: 1480, DurationMs: 90, Volume: 0.3},
	game.SoundHit:         {Wave: tone.WaveNoise, DurationMs: 120, Volume: 0.5},
	game.SoundPowerUp:     {Wave: tone.WaveSine, StartHz: 440, EndHz: 1320, DurationMs: 300, Volume: 0.35},
	game.SoundBossWarning: {Wave: tone.WaveSquare, StartHz: 110, EndHz: 90, DurationMs: 900, Volume: 0.3},
	game.SoundGameOver:    {Wave: tone.WaveSine, StartHz: 330, EndHz: 82, DurationMs: 1200, Volume: 0.4},
}

// ToneAudio 用合成波形播放音效，遵循 SettingsManager 中的开关和音量
type ToneAudio struct {
	context  *audio.Context
	settings *game.SettingsManager
	pcm      map[game.Sound][]byte
}

// NewToneAudio 合成全部音效
// context 为 nil 时 Play 不发声（无音频设备的环境）
func NewToneAudio(context *audio.Context, settings *game.SettingsManager) *ToneAudio {
	a := &ToneAudio{
		context:  context,
		settings: settings,
		pcm:      make(map[game.Sound][]byte, len(soundBank)),
	}
	for sound, t := range soundBank {
		a.pcm[sound] = tone.Synthesize(t, SampleRate)
	}
	log.Printf("[ToneAudio] Synthesized %d sounds", len(a.pcm))
	return a
}

// Play 播放一次音效，未知音效静默忽略
func (a *ToneAudio) Play(sound game.Sound) {
	if a.context == nil {
		return
	}
	volume := 1.0
	if a.settings != nil {
		s := a.settings.GetSettings()
		if !s.SoundEnabled {
			return
		}
		volume = s.SoundVolume
	}
	buf, ok := a.pcm[sound]
	if !ok || len(buf) == 0 {
		return
	}

	player := a.context.NewPlayerFromBytes(buf)
	player.SetVolume(volume)
	player.Play()
}

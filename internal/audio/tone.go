// Package audio 合成简单的音效波形（16 位小端立体声 PCM）
//
// 游戏没有音频资源文件，所有音效都由 Tone 描述并在启动时合成一次。
package audio

import (
	"encoding/binary"
	"math"
)

// Waveform 波形
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// Tone 一段音效：频率从 StartHz 线性滑到 EndHz，音量线性衰减到 0
type Tone struct {
	Wave       Waveform
	StartHz    float64
	EndHz      float64
	DurationMs float64
	Volume     float64 // 0..1
}

const bytesPerFrame = 4 // 2 声道 × 16 位

// Synthesize 按采样率生成 PCM 数据
// 时长或采样率不合法时返回 nil
func Synthesize(t Tone, sampleRate int) []byte {
	if sampleRate <= 0 || t.DurationMs <= 0 {
		return nil
	}
	frames := int(float64(sampleRate) * t.DurationMs / 1000)
	if frames == 0 {
		return nil
	}
	volume := math.Max(0, math.Min(1, t.Volume))

	buf := make([]byte, frames*bytesPerFrame)
	phase := 0.0
	// 线性同余噪声，保证同一 Tone 每次合成结果一致
	noise := uint32(22222)

	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch t.Wave {
		case WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			noise = noise*1664525 + 1013904223
			v = float64(int32(noise)) / float64(math.MaxInt32)
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		sample := int16(v * volume * (1 - progress) * math.MaxInt16)
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint16(buf[off:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(sample))
	}
	return buf
}

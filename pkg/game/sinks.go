package game

// Sound 音效标识
type Sound string

const (
	SoundShoot       Sound = "shoot"
	SoundEnemyShoot  Sound = "enemy_shoot"
	SoundExplosion   Sound = "explosion"
	SoundCollect     Sound = "collect"
	SoundHit         Sound = "hit"
	SoundPowerUp     Sound = "powerup"
	SoundBossWarning Sound = "boss_warning"
	SoundGameOver    Sound = "game_over"
)

// EffectsSink 视觉效果接收方（爆炸、闪光、震屏）
// 宿主缺少对应资源时应静默忽略
type EffectsSink interface {
	Explosion(x, y float64, large bool)
	Sparkle(x, y float64)
	Shake(intensity float64)
}

// AudioSink 音效接收方
type AudioSink interface {
	Play(sound Sound)
}

// EventSink 语义事件接收方
type EventSink interface {
	Emit(event Event)
}

// NopEffects 丢弃所有视觉效果
type NopEffects struct{}

func (NopEffects) Explosion(x, y float64, large bool) {}
func (NopEffects) Sparkle(x, y float64)               {}
func (NopEffects) Shake(intensity float64)            {}

// NopAudio 丢弃所有音效
type NopAudio struct{}

func (NopAudio) Play(Sound) {}

// NopEvents 丢弃所有事件
type NopEvents struct{}

func (NopEvents) Emit(Event) {}

// RecordingEvents 记录所有事件，用于测试和无界面运行
type RecordingEvents struct {
	Events []Event
}

func (r *RecordingEvents) Emit(event Event) {
	r.Events = append(r.Events, event)
}

// Of 返回指定类型的全部事件
func (r *RecordingEvents) Of(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Count 返回指定类型的事件数量
func (r *RecordingEvents) Count(t EventType) int {
	return len(r.Of(t))
}

// Last 返回指定类型的最后一个事件
func (r *RecordingEvents) Last(t EventType) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Type == t {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// RecordingEffects 统计视觉效果调用次数
type RecordingEffects struct {
	Explosions      int
	LargeExplosions int
	Sparkles        int
	Shakes          int
}

func (r *RecordingEffects) Explosion(x, y float64, large bool) {
	r.Explosions++
	if large {
		r.LargeExplosions++
	}
}

func (r *RecordingEffects) Sparkle(x, y float64) { r.Sparkles++ }

func (r *RecordingEffects) Shake(intensity float64) { r.Shakes++ }

// RecordingAudio 记录播放过的音效
type RecordingAudio struct {
	Played []Sound
}

func (r *RecordingAudio) Play(sound Sound) {
	r.Played = append(r.Played, sound)
}

// MultiEvents 把事件分发给多个接收方
type MultiEvents []EventSink

func (m MultiEvents) Emit(event Event) {
	for _, sink := range m {
		sink.Emit(event)
	}
}

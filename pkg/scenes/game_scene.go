package scenes

import (
	"errors"
	"log"

	"github.com/gonewx/fortune/internal/collision"
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/systems"
)

// RunState 一局游戏的阶段
type RunState int

const (
	StatePlaying        RunState = iota // 波次进行中
	StateWaveTransition                 // 清场后等待下一波
	StateShop                           // Boss 波之后的商店，模拟暂停
	StateGameOver                       // 命数耗尽
)

func (s RunState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWaveTransition:
		return "wave_transition"
	case StateShop:
		return "shop"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// OverlapDetector 宿主提供的粗检测
// Detect 返回按注册的分类对定向的重叠，A 属于分类对的第一个分类
type OverlapDetector interface {
	Register(a, b components.CollisionKind)
	Detect(em *ecs.EntityManager, dtSeconds float64) []systems.Overlap
}

// Options 创建一局游戏所需的协作者，为空的使用默认实现
type Options struct {
	Data        *config.CombatData
	Seed        int64
	Detector    OverlapDetector
	Leaderboard *game.Leaderboard

	Effects game.EffectsSink
	Audio   game.AudioSink
	Events  game.EventSink
}

// GameScene 运行控制器：每帧按固定顺序推进全部系统，并负责波次切换、商店和游戏结束
type GameScene struct {
	clock       *game.TickClock
	world       *systems.World
	enc         *systems.Encounter
	detector    OverlapDetector
	leaderboard *game.Leaderboard

	state     RunState
	wave      int
	spent     int
	lastBonus game.BonusBreakdown
	finalRank int

	// reloads 热重载的数据表，在下一波开始时生效
	reloads chan *config.CombatData
}

// NewGameScene 创建一局游戏（尚未开始）
func NewGameScene(opts Options) (*GameScene, error) {
	if opts.Data == nil {
		return nil, errors.New("combat data is required")
	}

	clock := game.NewTickClock()
	w := systems.NewWorld(opts.Data, clock, opts.Seed)
	if opts.Effects != nil {
		w.Effects = opts.Effects
	}
	if opts.Audio != nil {
		w.Audio = opts.Audio
	}
	if opts.Events != nil {
		w.Events = opts.Events
	}

	detector := opts.Detector
	if detector == nil {
		detector = collision.NewDetector()
	}
	leaderboard := opts.Leaderboard
	if leaderboard == nil {
		leaderboard = game.NewLeaderboard(nil)
	}

	s := &GameScene{
		clock:       clock,
		world:       w,
		enc:         systems.NewEncounter(w),
		detector:    detector,
		leaderboard: leaderboard,
		reloads:     make(chan *config.CombatData, 1),
	}
	s.enc.Player.OnGameOver = s.gameOver

	for _, pair := range s.enc.Combat.Router().Pairs() {
		s.detector.Register(pair[0], pair[1])
	}
	return s, nil
}

// Start 生成玩家并开始第一波
func (s *GameScene) Start() {
	s.enc.Player.Spawn()
	log.Printf("[GameScene] Run started")
	s.startWave(1)
}

// Update 推进一帧
func (s *GameScene) Update(deltaMs float64) {
	if s.state == StateGameOver || s.state == StateShop {
		return
	}

	s.clock.Advance(deltaMs)
	s.world.Scheduler.Drain(s.clock.NowMs())

	s.enc.Simulate(deltaMs)
	overlaps := s.detector.Detect(s.world.EM, deltaMs/1000)
	s.enc.Settle(deltaMs, overlaps)

	if s.state == StatePlaying && s.enc.Waves.IsComplete() {
		s.completeWave()
	}

	s.world.EM.RemoveMarkedEntities()
}

// SetInput 设置玩家输入方向
func (s *GameScene) SetInput(x, y float64) {
	s.enc.Player.SetInput(x, y)
}

func (s *GameScene) startWave(n int) {
	select {
	case data := <-s.reloads:
		s.world.Data = data
		log.Printf("[GameScene] Applied reloaded combat data at wave %d", n)
	default:
	}

	s.state = StatePlaying
	s.wave = n
	s.enc.Bonus.StartWave(n)
	s.enc.Waves.StartWave(n)
	s.world.Emit(game.EventWaveStarted, s.enc.Waves.Started())
}

func (s *GameScene) completeWave() {
	s.state = StateWaveTransition
	s.enc.ClearHostileBullets()

	s.lastBonus = s.enc.Bonus.SettleWave(s.enc.Waves.Kills(), s.enc.Waves.Total())
	s.world.Emit(game.EventWaveCleared, game.WaveClearedPayload{Wave: s.wave, Bonus: s.lastBonus})

	bossWave := s.enc.Waves.IsBossWave()
	wave := s.wave
	stillWaiting := func() bool { return s.state == StateWaveTransition && s.wave == wave }
	s.world.Scheduler.Schedule(config.WaveTransitionDelayMs, stillWaiting, func() {
		if bossWave {
			s.openShop()
			return
		}
		s.startWave(wave + 1)
	})
}

func (s *GameScene) gameOver() {
	if s.state == StateGameOver {
		return
	}
	s.state = StateGameOver
	s.enc.Formations.ClearAll()
	s.enc.ClearHostileBullets()
	score := s.enc.Score.Score()

	rank, err := s.leaderboard.Submit(score)
	if err != nil {
		log.Printf("[GameScene] Warning: failed to save leaderboard: %v", err)
	}
	s.finalRank = rank

	s.world.Audio.Play(game.SoundGameOver)
	log.Printf("[GameScene] Game over at wave %d: score %d, rank %d", s.wave, score, rank)
	s.world.Emit(game.EventGameOver, game.GameOverPayload{Score: score, Wave: s.wave, Rank: rank})
}

// OfferData 提交热重载的数据表，可从其他 goroutine 调用
// 只保留最新的一份，下一波开始时生效
func (s *GameScene) OfferData(data *config.CombatData) {
	for {
		select {
		case s.reloads <- data:
			return
		default:
		}
		select {
		case <-s.reloads:
		default:
		}
	}
}

func (s *GameScene) State() RunState                { return s.state }
func (s *GameScene) Wave() int                      { return s.wave }
func (s *GameScene) Score() int                     { return s.enc.Score.Score() }
func (s *GameScene) FinalRank() int                 { return s.finalRank }
func (s *GameScene) LastBonus() game.BonusBreakdown { return s.lastBonus }
func (s *GameScene) Encounter() *systems.Encounter  { return s.enc }
func (s *GameScene) World() *systems.World          { return s.world }
func (s *GameScene) Leaderboard() *game.Leaderboard { return s.leaderboard }

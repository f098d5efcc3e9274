package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/gonewx/fortune/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	leaderboardObject   = "fortune"
	leaderboardProperty = "leaderboard"
)

// ScoreStore 排行榜的持久化后端
// 存储格式为降序的整数列表，无版本号
type ScoreStore interface {
	LoadScores() ([]int, error)
	SaveScores(scores []int) error
}

// GdataScoreStore 基于 gdata 的跨平台存储
type GdataScoreStore struct {
	manager *gdata.Manager
}

// NewGdataScoreStore 创建 gdata 存储，manager 不能为 nil
func NewGdataScoreStore(manager *gdata.Manager) *GdataScoreStore {
	return &GdataScoreStore{manager: manager}
}

// LoadScores 读取分数列表，不存在时返回空列表
func (s *GdataScoreStore) LoadScores() ([]int, error) {
	if !s.manager.ObjectPropExists(leaderboardObject, leaderboardProperty) {
		return nil, nil
	}

	data, err := s.manager.LoadObjectProp(leaderboardObject, leaderboardProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	var scores []int
	if err := yaml.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leaderboard: %w", err)
	}
	return scores, nil
}

// SaveScores 写入分数列表
func (s *GdataScoreStore) SaveScores(scores []int) error {
	data, err := yaml.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}
	if err := s.manager.SaveObjectProp(leaderboardObject, leaderboardProperty, data); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}
	return nil
}

// MemoryScoreStore 仅内存存储，用于测试和无法持久化的环境
type MemoryScoreStore struct {
	scores []int
	Saves  int // SaveScores 调用次数
}

func (s *MemoryScoreStore) LoadScores() ([]int, error) {
	return append([]int(nil), s.scores...), nil
}

func (s *MemoryScoreStore) SaveScores(scores []int) error {
	s.scores = append([]int(nil), scores...)
	s.Saves++
	return nil
}

// Leaderboard 本地排行榜：降序，最多保留 config.LeaderboardSize 条
type Leaderboard struct {
	store  ScoreStore
	scores []int
}

// NewLeaderboard 创建排行榜并读取已有记录
//
// store 为 nil 时使用内存存储（降级模式）。读取失败只记录警告，从空榜开始。
func NewLeaderboard(store ScoreStore) *Leaderboard {
	if store == nil {
		store = &MemoryScoreStore{}
	}
	lb := &Leaderboard{store: store}

	scores, err := store.LoadScores()
	if err != nil {
		log.Printf("[Leaderboard] Warning: %v (starting empty)", err)
		scores = nil
	}
	lb.scores = normalizeScores(scores)
	return lb
}

// Submit 记录一局的最终分数并保存
//
// 返回名次（1 起）；未进入前 config.LeaderboardSize 名返回 0。
// 保存失败时内存中的排行榜仍然更新，错误返回给调用方记录。
func (l *Leaderboard) Submit(score int) (int, error) {
	// 同分时新成绩排在已有成绩之后
	pos := sort.Search(len(l.scores), func(i int) bool { return l.scores[i] < score })

	rank := 0
	if pos < config.LeaderboardSize {
		rank = pos + 1
	}

	scores := make([]int, 0, len(l.scores)+1)
	scores = append(scores, l.scores[:pos]...)
	scores = append(scores, score)
	scores = append(scores, l.scores[pos:]...)
	l.scores = normalizeScores(scores)

	if err := l.store.SaveScores(l.scores); err != nil {
		return rank, err
	}
	log.Printf("[Leaderboard] Saved score %d (rank %d)", score, rank)
	return rank, nil
}

// Scores 返回排行榜副本（降序）
func (l *Leaderboard) Scores() []int {
	return append([]int(nil), l.scores...)
}

// HighScore 返回最高分，空榜返回 0
func (l *Leaderboard) HighScore() int {
	if len(l.scores) == 0 {
		return 0
	}
	return l.scores[0]
}

// normalizeScores 排序为降序并截断
func normalizeScores(scores []int) []int {
	sort.SliceStable(scores, func(i, j int) bool { return scores[i] > scores[j] })
	if len(scores) > config.LeaderboardSize {
		scores = scores[:config.LeaderboardSize]
	}
	return scores
}

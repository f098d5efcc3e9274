package systems

import (
	"log"
	"math"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/entities"
	"github.com/gonewx/fortune/pkg/types"
)

// Formation 一组以共享参考系运动的敌机
//
// 编队独占成员列表：从列表移除成员不会销毁敌机，销毁编队会销毁所有剩余成员。
// 成员只持有自己的固定偏移（FormationMemberComponent），位置每帧由参考系重新计算。
type Formation struct {
	ID        int
	Type      types.FormationType
	EnemyType types.EnemyType
	Requested int // 创建时请求的数量
	Members   []ecs.EntityID

	// 参考系
	X, Y      float64
	Direction float64 // 水平方向 1 / -1
	Rotation  float64 // Circle 累计旋转（弧度）
	Phase     float64 // Grid 摆动 / Wave 波动相位（弧度）
}

// FormationSystem 编队引擎
type FormationSystem struct {
	world      *World
	formations []*Formation
	nextID     int

	// OnMemberExited 成员从底部离场时调用（在成员被销毁之后）
	OnMemberExited func(id ecs.EntityID, enemy *components.EnemyComponent)
}

// NewFormationSystem 创建编队引擎
func NewFormationSystem(w *World) *FormationSystem {
	return &FormationSystem{world: w}
}

// Create 在 (x, y) 处创建编队
// count 为 0 是合法的，得到的空编队会在下一次 Update 结束时被丢弃
func (s *FormationSystem) Create(formationType types.FormationType, enemyType types.EnemyType, count int, x, y float64) *Formation {
	formationType = types.ParseFormationType(string(formationType))
	enemyType = types.ParseEnemyType(string(enemyType))
	if count < 0 {
		count = 0
	}

	s.nextID++
	f := &Formation{
		ID:        s.nextID,
		Type:      formationType,
		EnemyType: enemyType,
		Requested: count,
		X:         x,
		Y:         y,
		Direction: 1,
	}

	stats := s.world.Data.Enemies.Get(enemyType)
	offsets := formationOffsets(formationType, count)
	for slot, off := range offsets {
		id := entities.NewEnemy(s.world.EM, enemyType, stats, x+off[0], y+off[1], true)
		s.world.EM.AddComponent(id, &components.FormationMemberComponent{
			FormationID: f.ID,
			Slot:        slot,
			OffsetX:     off[0],
			OffsetY:     off[1],
		})
		f.Members = append(f.Members, id)
	}
	s.place(f)

	s.formations = append(s.formations, f)
	log.Printf("[FormationSystem] Created %s formation #%d: %d x %s at (%.0f, %.0f)", formationType, f.ID, count, enemyType, x, y)
	return f
}

// formationOffsets 计算每个槽位相对参考点的固定偏移
func formationOffsets(formationType types.FormationType, count int) [][2]float64 {
	offsets := make([][2]float64, 0, count)
	if count == 0 {
		return offsets
	}

	switch formationType {
	case types.FormationGrid:
		cols := int(math.Ceil(math.Sqrt(float64(count))))
		for i := 0; i < count; i++ {
			row, col := i/cols, i%cols
			offsets = append(offsets, [2]float64{
				(float64(col) - float64(cols)/2) * config.GridSpacingX,
				float64(row) * config.GridSpacingY,
			})
		}

	case types.FormationCircle:
		step := 2 * math.Pi / float64(count)
		for i := 0; i < count; i++ {
			angle := float64(i) * step
			offsets = append(offsets, [2]float64{
				math.Cos(angle) * config.CircleRadius,
				math.Sin(angle) * config.CircleRadius,
			})
		}

	case types.FormationWave:
		start := -float64(count-1) * config.WaveSpacingX / 2
		for i := 0; i < count; i++ {
			offsets = append(offsets, [2]float64{start + float64(i)*config.WaveSpacingX, 0})
		}

	default: // V
		// 第 r 行放 r+1 个，行数不设上限，保证每个请求的成员都有槽位
		placed := 0
		for row := 0; placed < count; row++ {
			inRow := min(count-placed, row+1)
			start := -float64(inRow-1) * config.VSpacingX / 2
			for col := 0; col < inRow; col++ {
				offsets = append(offsets, [2]float64{start + float64(col)*config.VSpacingX, float64(row) * config.VSpacingY})
				placed++
			}
		}
	}

	return offsets
}

// Update 推进所有编队的参考系并重新计算成员位置
// 被击杀的成员从列表移除；越过底部的成员被销毁并计为离场。
// 移除在整轮遍历后统一生效，空编队在最后丢弃。
func (s *FormationSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000

	for _, f := range s.formations {
		s.advance(f, dt)
		s.place(f)

		var removed []ecs.EntityID
		for _, id := range f.Members {
			if !s.world.EM.IsAlive(id) {
				removed = append(removed, id)
				continue
			}
			pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, id)
			if ok && pos.Y > config.FormationExitY {
				removed = append(removed, id)
				s.exit(id)
			}
		}
		if len(removed) > 0 {
			f.Members = without(f.Members, removed)
		}
	}

	kept := s.formations[:0]
	for _, f := range s.formations {
		if len(f.Members) > 0 {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(s.formations); i++ {
		s.formations[i] = nil
	}
	s.formations = kept
}

// advance 按编队类型推进参考系
func (s *FormationSystem) advance(f *Formation, dt float64) {
	width := config.PlayfieldWidth

	// 入场：在上方出生的编队额外下降，直到参考点到达 FormationEntryY
	if f.Y < config.FormationEntryY {
		f.Y = math.Min(f.Y+config.FormationEntrySpeed*dt, config.FormationEntryY)
	}

	switch f.Type {
	case types.FormationGrid:
		f.X += config.GridSpeedX * f.Direction * dt
		f.Phase += config.GridWobbleRate * dt
		f.Direction = bounce(f.X, f.Direction, config.GridMargin, width-config.GridMargin)

	case types.FormationCircle:
		f.Rotation += config.CircleRotateSpeed * dt
		f.Y += config.CircleSpeedY * dt

	case types.FormationWave:
		f.X += config.WaveSpeedX * f.Direction * dt
		f.Y += config.WaveSpeedY * dt
		f.Phase += config.WavePhaseRate * dt
		f.Direction = bounce(f.X, f.Direction, config.WaveMargin, width-config.WaveMargin)

	default:
		f.X += config.VSpeedX * f.Direction * dt
		f.Y += config.VSpeedY * dt
		f.Direction = bounce(f.X, f.Direction, config.VMargin, width-config.VMargin)
	}
}

// place 根据参考系和固定偏移计算每个存活成员的位置
func (s *FormationSystem) place(f *Formation) {
	for _, id := range f.Members {
		if !s.world.EM.IsAlive(id) {
			continue
		}
		member, ok := ecs.GetComponent[*components.FormationMemberComponent](s.world.EM, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, id)
		if !ok {
			continue
		}

		switch f.Type {
		case types.FormationGrid:
			pos.X = f.X + member.OffsetX
			pos.Y = f.Y + member.OffsetY + math.Sin(f.Phase)*config.GridWobble

		case types.FormationCircle:
			angle := float64(member.Slot)*2*math.Pi/float64(f.Requested) + f.Rotation
			pos.X = f.X + math.Cos(angle)*config.CircleRadius
			pos.Y = f.Y + math.Sin(angle)*config.CircleRadius

		case types.FormationWave:
			pos.X = f.X + member.OffsetX
			pos.Y = f.Y + math.Sin(f.Phase+float64(member.Slot)*config.WavePhaseStep)*config.WaveAmplitude

		default:
			pos.X = f.X + member.OffsetX
			pos.Y = f.Y + member.OffsetY
		}
	}
}

func (s *FormationSystem) exit(id ecs.EntityID) {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.world.EM, id)
	s.world.EM.DestroyEntity(id)
	if s.OnMemberExited != nil {
		s.OnMemberExited(id, enemy)
	}
}

// Destroy 销毁编队及其全部剩余成员（不计为离场）
func (s *FormationSystem) Destroy(f *Formation) {
	for _, id := range f.Members {
		s.world.EM.DestroyEntity(id)
	}
	f.Members = nil
	for i, other := range s.formations {
		if other == f {
			s.formations = append(s.formations[:i], s.formations[i+1:]...)
			break
		}
	}
}

// ClearAll 销毁所有编队
func (s *FormationSystem) ClearAll() {
	for len(s.formations) > 0 {
		s.Destroy(s.formations[len(s.formations)-1])
	}
}

// Formations 返回当前活动编队（只读）
func (s *FormationSystem) Formations() []*Formation {
	return s.formations
}

// MemberCount 返回所有编队中的成员总数
func (s *FormationSystem) MemberCount() int {
	n := 0
	for _, f := range s.formations {
		n += len(f.Members)
	}
	return n
}

// bounce 在软边界处反转方向
func bounce(x, dir, minX, maxX float64) float64 {
	if x < minX {
		return 1
	}
	if x > maxX {
		return -1
	}
	return dir
}

// without 返回去掉 removed 的新切片
func without(ids, removed []ecs.EntityID) []ecs.EntityID {
	drop := make(map[ecs.EntityID]struct{}, len(removed))
	for _, id := range removed {
		drop[id] = struct{}{}
	}
	out := make([]ecs.EntityID, 0, len(ids)-len(removed))
	for _, id := range ids {
		if _, ok := drop[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

package systems

import (
	"math"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/entities"
	"github.com/gonewx/fortune/pkg/game"
	"github.com/gonewx/fortune/pkg/types"
)

// crossDirections 依次为四个正方向和四个对角方向
var crossDirections = [8][2]float64{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{math.Sqrt2 / 2, math.Sqrt2 / 2}, {-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

func (s *BossSystem) executeAttack(id ecs.EntityID, pos *components.PositionComponent, attack config.AttackSpec) {
	x, y := pos.X, pos.Y+config.BossRadius/2

	switch attack.Kind {
	case config.AttackSpread:
		s.fireSpread(id, x, y, attack)
	case config.AttackRapid:
		s.fireRapid(id, attack)
	case config.AttackCircular:
		s.fireRing(id, x, y, attack.Count, attack.Speed)
	case config.AttackCross:
		s.fireCross(id, x, y, attack)
	case config.AttackDrones:
		s.releaseDrones(pos.X, pos.Y, attack.Chance)
		return
	}
	s.world.Audio.Play(game.SoundEnemyShoot)
}

// fireSpread 以 Boss 为中心对称排布，越靠外水平速度越大
func (s *BossSystem) fireSpread(id ecs.EntityID, x, y float64, attack config.AttackSpec) {
	center := float64(attack.Count-1) / 2
	for i := 0; i < attack.Count; i++ {
		k := float64(i) - center
		entities.NewBossBullet(s.world.EM, id, x+k*attack.Spacing, y, k*config.BossSpreadSideSpeed, attack.Speed)
	}
}

// fireRapid 第一发立即射出，其余每隔固定间隔一发，每发都从 Boss 当前位置射出
// 进入死亡演出后剩余的连射取消
func (s *BossSystem) fireRapid(id ecs.EntityID, attack config.AttackSpec) {
	fire := func() {
		boss, ok := ecs.GetComponent[*components.BossComponent](s.world.EM, id)
		if !ok || boss.Phase == types.BossDying {
			return
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.world.EM, id)
		if !ok {
			return
		}
		vx := (s.world.Rand.Float64()*2 - 1) * config.BossRapidJitter
		entities.NewBossBullet(s.world.EM, id, pos.X, pos.Y+config.BossRadius/2, vx, attack.Speed)
	}

	alive := s.world.aliveCheck(id)
	for i := 0; i < attack.Count; i++ {
		if i == 0 {
			fire()
			continue
		}
		s.world.Scheduler.Schedule(float64(i)*config.BossRapidStaggerMs, alive, fire)
	}
}

// fireRing 360° 均匀分布
func (s *BossSystem) fireRing(id ecs.EntityID, x, y float64, count int, speed float64) {
	if count <= 0 {
		return
	}
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := float64(i) * step
		entities.NewBossBullet(s.world.EM, id, x, y, math.Cos(angle)*speed, math.Sin(angle)*speed)
	}
}

func (s *BossSystem) fireCross(id ecs.EntityID, x, y float64, attack config.AttackSpec) {
	n := min(attack.Count, len(crossDirections))
	for i := 0; i < n; i++ {
		d := crossDirections[i]
		entities.NewBossBullet(s.world.EM, id, x, y, d[0]*attack.Speed, d[1]*attack.Speed)
	}
}

// releaseDrones 按概率在 Boss 两侧释放无人机，无人机不计入波次
func (s *BossSystem) releaseDrones(x, y, chance float64) {
	if s.world.Rand.Float64() >= chance {
		return
	}
	stats := s.world.Data.Enemies.Get(types.EnemyDrone)
	entities.NewDrone(s.world.EM, stats, x-config.DroneOffsetX, y)
	entities.NewDrone(s.world.EM, stats, x+config.DroneOffsetX, y)
}

package main

import (
	"math"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/config"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/scenes"
)

const (
	// dodgeRadius 比这更近的敌方子弹会触发躲避
	dodgeRadius = 90.0
	// aimDeadZone 与目标水平距离小于该值时停止移动
	aimDeadZone = 6.0
)

// shopOrder 商店购买优先级
var shopOrder = []scenes.Upgrade{
	scenes.UpgradeWeapon,
	scenes.UpgradeHealth,
	scenes.UpgradeExtraLife,
	scenes.UpgradeSpeed,
}

// steer 躲避最近的敌方子弹，否则对准最近的敌机或 Boss
func steer(em *ecs.EntityManager, player ecs.EntityID) (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, player)
	if !ok {
		return 0, 0
	}

	var threatX, threatY, targetX float64
	threatDist, targetDist := math.Inf(1), math.Inf(1)
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](em) {
		if !em.IsAlive(id) {
			continue
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		p, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		d := math.Hypot(p.X-pos.X, p.Y-pos.Y)

		switch col.Kind {
		case components.KindEnemyBullet, components.KindBossBullet:
			if p.Y < pos.Y+config.PlayerRadius && d < threatDist {
				threatX, threatY, threatDist = p.X, p.Y, d
			}
		case components.KindEnemy, components.KindBoss:
			if p.Y >= 0 && d < targetDist {
				targetX, targetDist = p.X, d
			}
		}
	}

	if threatDist < dodgeRadius {
		dx := pos.X - threatX
		if dx == 0 {
			dx = 1
		}
		dy := 0.0
		if threatY > pos.Y-config.PlayerRadius*2 {
			dy = 1
		}
		return math.Copysign(1, dx), dy
	}
	if !math.IsInf(targetDist, 1) {
		if dx := targetX - pos.X; math.Abs(dx) > aimDeadZone {
			return math.Copysign(1, dx), 0
		}
	}
	return 0, 0
}

// shop 按优先级循环购买直到买不起任何一项，然后离开商店
func shop(s *scenes.GameScene) []scenes.Upgrade {
	var bought []scenes.Upgrade
	for {
		purchased := false
		for _, u := range shopOrder {
			if s.Currency() >= u.Cost() && s.Purchase(u) == nil {
				bought = append(bought, u)
				purchased = true
				break
			}
		}
		if !purchased {
			break
		}
	}
	s.CloseShop()
	return bought
}

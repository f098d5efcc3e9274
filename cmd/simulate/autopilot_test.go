package main

import (
	"testing"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/ecs"
)

func place(em *ecs.EntityManager, x, y float64, kind components.CollisionKind) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Kind: kind, Radius: 8})
	return id
}

func TestSteer(t *testing.T) {
	t.Run("对准最近的敌机", func(t *testing.T) {
		em := ecs.NewEntityManager()
		player := place(em, 400, 520, components.KindPlayer)
		place(em, 300, 100, components.KindEnemy)
		place(em, 700, 50, components.KindEnemy)

		x, y := steer(em, player)
		if x != -1 || y != 0 {
			t.Errorf("Expected (-1, 0), got (%v, %v)", x, y)
		}
	})

	t.Run("躲避子弹优先", func(t *testing.T) {
		em := ecs.NewEntityManager()
		player := place(em, 400, 520, components.KindPlayer)
		place(em, 300, 100, components.KindEnemy)
		place(em, 390, 470, components.KindEnemyBullet)

		x, _ := steer(em, player)
		if x != 1 {
			t.Errorf("Expected to dodge right, got x=%v", x)
		}
	})

	t.Run("已对准时不动", func(t *testing.T) {
		em := ecs.NewEntityManager()
		player := place(em, 400, 520, components.KindPlayer)
		place(em, 403, 100, components.KindBoss)

		x, y := steer(em, player)
		if x != 0 || y != 0 {
			t.Errorf("Expected (0, 0), got (%v, %v)", x, y)
		}
	})

	t.Run("忽略屏幕上方的敌机", func(t *testing.T) {
		em := ecs.NewEntityManager()
		player := place(em, 400, 520, components.KindPlayer)
		place(em, 100, -40, components.KindEnemy)

		x, y := steer(em, player)
		if x != 0 || y != 0 {
			t.Errorf("Expected (0, 0), got (%v, %v)", x, y)
		}
	})
}

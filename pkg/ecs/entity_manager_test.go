package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if !em.IsAlive(id1) || !em.IsAlive(id2) {
		t.Error("New entities should be alive")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	if _, found := GetComponent[*testVelocityComponent](em, id); found {
		t.Error("Velocity should not be found")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 3})

	em.DestroyEntity(id)
	em.DestroyEntity(id) // 重复标记不应出错

	// 标记后立即失活，但组件仍可读取
	if em.IsAlive(id) {
		t.Error("Entity should not be alive after DestroyEntity")
	}
	if pos, ok := GetComponent[*testPositionComponent](em, id); !ok || pos.X != 3 {
		t.Error("Component should remain readable until cleanup")
	}
	if len(GetEntitiesWith1[*testPositionComponent](em)) != 0 {
		t.Error("Marked entity should be excluded from queries")
	}

	em.RemoveMarkedEntities()
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.Count() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.Count())
	}

	// 不存在的实体
	em.DestroyEntity(999)
	if em.IsAlive(999) {
		t.Error("Unknown entity should not be alive")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1, got %v", both)
	}

	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Fatalf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
	// 结果按ID升序
	if posEntities[0] != id1 || posEntities[1] != id2 {
		t.Errorf("Expected ascending order [%d %d], got %v", id1, id2, posEntities)
	}
}

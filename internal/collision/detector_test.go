package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/ecs"
)

func spawn(em *ecs.EntityManager, x, y, r float64, kind components.CollisionKind) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Kind: kind, Radius: r})
	return id
}

func TestDetector_ReportsRegisteredPairs(t *testing.T) {
	em := ecs.NewEntityManager()
	d := NewDetector()
	d.Register(components.KindPlayerBullet, components.KindEnemy)

	enemy := spawn(em, 100, 100, 20, components.KindEnemy)
	bullet := spawn(em, 110, 100, 4, components.KindPlayerBullet)
	spawn(em, 400, 400, 4, components.KindPlayerBullet)

	overlaps := d.Detect(em, 1.0/60)
	require.Len(t, overlaps, 1)
	assert.Equal(t, bullet, overlaps[0].A, "A 应属于注册对的第一个分类")
	assert.Equal(t, enemy, overlaps[0].B)
	assert.Equal(t, components.KindPlayerBullet, overlaps[0].KindA)
	assert.Equal(t, components.KindEnemy, overlaps[0].KindB)
}

func TestDetector_IgnoresUnregisteredPairs(t *testing.T) {
	em := ecs.NewEntityManager()
	d := NewDetector()
	d.Register(components.KindPlayerBullet, components.KindEnemy)

	spawn(em, 100, 100, 20, components.KindEnemy)
	spawn(em, 105, 100, 20, components.KindEnemy)
	spawn(em, 100, 100, 4, components.KindEnemyBullet)

	assert.Empty(t, d.Detect(em, 1.0/60))
}

func TestDetector_TracksMovementAndRemoval(t *testing.T) {
	em := ecs.NewEntityManager()
	d := NewDetector()
	d.Register(components.KindEnemyBullet, components.KindPlayer)

	player := spawn(em, 240, 560, 15, components.KindPlayer)
	bullet := spawn(em, 240, 300, 4, components.KindEnemyBullet)

	assert.Empty(t, d.Detect(em, 1.0/60))
	assert.Equal(t, 2, d.Tracked())

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, bullet)
	pos.Y = 555
	overlaps := d.Detect(em, 1.0/60)
	require.Len(t, overlaps, 1)
	assert.Equal(t, bullet, overlaps[0].A)
	assert.Equal(t, player, overlaps[0].B)

	em.DestroyEntity(bullet)
	em.RemoveMarkedEntities()
	assert.Empty(t, d.Detect(em, 1.0/60))
	assert.Equal(t, 1, d.Tracked())
}

func TestDetector_ZeroStepStillDetects(t *testing.T) {
	em := ecs.NewEntityManager()
	d := NewDetector()
	d.Register(components.KindCollectible, components.KindPlayer)

	spawn(em, 240, 560, 15, components.KindPlayer)
	spawn(em, 245, 560, 8, components.KindCollectible)

	assert.Len(t, d.Detect(em, 0), 1)
}

func TestDetector_Reset(t *testing.T) {
	em := ecs.NewEntityManager()
	d := NewDetector()
	spawn(em, 10, 10, 5, components.KindEnemy)
	d.Detect(em, 1.0/60)
	require.Equal(t, 1, d.Tracked())

	d.Reset()
	assert.Equal(t, 0, d.Tracked())
}

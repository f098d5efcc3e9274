// Package collision 基于 chipmunk 空间的粗检测：每个碰撞实体一个传感器圆，
// 只上报重叠，不产生物理响应。
package collision

import (
	"log"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/ecs"
	"github.com/gonewx/fortune/pkg/systems"
)

// defaultStep dt 不大于 0 时使用的步长（cp 会跳过 0 步长）
const defaultStep = 1.0 / 60

type tracked struct {
	body   *cp.Body
	shape  *cp.Shape
	kind   components.CollisionKind
	radius float64
}

type shapeEntry struct {
	id   ecs.EntityID
	kind components.CollisionKind
}

type pairKey struct {
	a, b ecs.EntityID
}

// Detector 重叠检测器
type Detector struct {
	space    *cp.Space
	bodies   map[ecs.EntityID]*tracked
	shapes   map[*cp.Shape]shapeEntry
	pairs    map[[2]components.CollisionKind]bool
	found    map[pairKey]systems.Overlap
	overlaps []systems.Overlap
}

// NewDetector 创建检测器（无重力空间）
func NewDetector() *Detector {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &Detector{
		space:  space,
		bodies: make(map[ecs.EntityID]*tracked),
		shapes: make(map[*cp.Shape]shapeEntry),
		pairs:  make(map[[2]components.CollisionKind]bool),
		found:  make(map[pairKey]systems.Overlap),
	}
}

// Register 上报分类对 (a, b) 的重叠，结果中 A 属于 a
func (d *Detector) Register(a, b components.CollisionKind) {
	key := [2]components.CollisionKind{a, b}
	if d.pairs[key] {
		return
	}
	d.pairs[key] = true

	handler := d.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
	handler.UserData = d
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		det, ok := userData.(*Detector)
		if !ok {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		det.record(shapeA, shapeB, a, b)
		return false
	}
}

// record 按注册顺序定向并去重
func (d *Detector) record(shapeA, shapeB *cp.Shape, kindA, kindB components.CollisionKind) {
	ea, okA := d.shapes[shapeA]
	eb, okB := d.shapes[shapeB]
	if !okA || !okB {
		return
	}
	if ea.kind != kindA {
		ea, eb = eb, ea
	}
	if ea.kind != kindA || eb.kind != kindB {
		return
	}
	d.found[pairKey{ea.id, eb.id}] = systems.Overlap{A: ea.id, B: eb.id, KindA: ea.kind, KindB: eb.kind}
}

// Detect 同步实体位置，推进一次空间并返回本帧的重叠（按实体 ID 排序）
func (d *Detector) Detect(em *ecs.EntityManager, dtSeconds float64) []systems.Overlap {
	d.sync(em)

	clear(d.found)
	if dtSeconds <= 0 {
		dtSeconds = defaultStep
	}
	d.space.Step(dtSeconds)

	d.overlaps = d.overlaps[:0]
	for _, o := range d.found {
		d.overlaps = append(d.overlaps, o)
	}
	sort.Slice(d.overlaps, func(i, j int) bool {
		if d.overlaps[i].A != d.overlaps[j].A {
			return d.overlaps[i].A < d.overlaps[j].A
		}
		return d.overlaps[i].B < d.overlaps[j].B
	})
	return d.overlaps
}

func (d *Detector) sync(em *ecs.EntityManager) {
	seen := make(map[ecs.EntityID]struct{}, len(d.bodies))

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if col.Kind == components.KindNone || col.Radius <= 0 {
			continue
		}
		seen[id] = struct{}{}

		t, ok := d.bodies[id]
		if ok && (t.kind != col.Kind || t.radius != col.Radius) {
			d.remove(id, t)
			ok = false
		}
		if !ok {
			t = d.add(id, col)
		}
		t.body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	}

	for id, t := range d.bodies {
		if _, ok := seen[id]; !ok {
			d.remove(id, t)
		}
	}
}

func (d *Detector) add(id ecs.EntityID, col *components.CollisionComponent) *tracked {
	body := cp.NewBody(1, cp.INFINITY)
	shape := cp.NewCircle(body, col.Radius, cp.Vector{})
	shape.SetSensor(true)
	shape.SetCollisionType(cp.CollisionType(col.Kind))

	d.space.AddBody(body)
	d.space.AddShape(shape)

	t := &tracked{body: body, shape: shape, kind: col.Kind, radius: col.Radius}
	d.bodies[id] = t
	d.shapes[shape] = shapeEntry{id: id, kind: col.Kind}
	return t
}

func (d *Detector) remove(id ecs.EntityID, t *tracked) {
	d.space.RemoveShape(t.shape)
	d.space.RemoveBody(t.body)
	delete(d.shapes, t.shape)
	delete(d.bodies, id)
}

// Tracked 当前空间中的实体数
func (d *Detector) Tracked() int { return len(d.bodies) }

// Reset 清空空间（保留已注册的分类对）
func (d *Detector) Reset() {
	for id, t := range d.bodies {
		d.remove(id, t)
	}
	log.Printf("[Detector] Reset collision space")
}

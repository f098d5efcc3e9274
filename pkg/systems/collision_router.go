package systems

import (
	"github.com/gonewx/fortune/pkg/components"
	"github.com/gonewx/fortune/pkg/ecs"
)

// Overlap 宿主检测到的一次重叠
// A 的分类为 KindA，B 的分类为 KindB
type Overlap struct {
	A, B         ecs.EntityID
	KindA, KindB components.CollisionKind
}

// CollisionHandler 处理有序分类对 (a, b) 的重叠，a 属于第一个分类
type CollisionHandler func(a, b ecs.EntityID)

type kindPair struct {
	a, b components.CollisionKind
}

// CollisionRouter 按有序分类对分派重叠事件
type CollisionRouter struct {
	em       *ecs.EntityManager
	handlers map[kindPair]CollisionHandler
	order    []kindPair
}

// NewCollisionRouter 创建路由器
func NewCollisionRouter(em *ecs.EntityManager) *CollisionRouter {
	return &CollisionRouter{em: em, handlers: make(map[kindPair]CollisionHandler)}
}

// Register 注册分类对 (a, b) 的处理函数，重复注册覆盖之前的处理函数
func (r *CollisionRouter) Register(a, b components.CollisionKind, handler CollisionHandler) {
	key := kindPair{a, b}
	if _, exists := r.handlers[key]; !exists {
		r.order = append(r.order, key)
	}
	r.handlers[key] = handler
}

// Pairs 已注册的分类对，按注册顺序
func (r *CollisionRouter) Pairs() [][2]components.CollisionKind {
	pairs := make([][2]components.CollisionKind, len(r.order))
	for i, p := range r.order {
		pairs[i] = [2]components.CollisionKind{p.a, p.b}
	}
	return pairs
}

// Dispatch 分派一次重叠，返回是否找到处理函数
// 任一实体已失效时跳过；反向注册的分类对会交换实体顺序。
func (r *CollisionRouter) Dispatch(o Overlap) bool {
	if !r.em.IsAlive(o.A) || !r.em.IsAlive(o.B) {
		return false
	}
	if h, ok := r.handlers[kindPair{o.KindA, o.KindB}]; ok {
		h(o.A, o.B)
		return true
	}
	if h, ok := r.handlers[kindPair{o.KindB, o.KindA}]; ok {
		h(o.B, o.A)
		return true
	}
	return false
}

// DispatchAll 依次分派，返回被处理的数量
func (r *CollisionRouter) DispatchAll(overlaps []Overlap) int {
	n := 0
	for _, o := range overlaps {
		if r.Dispatch(o) {
			n++
		}
	}
	return n
}

package game

import "container/heap"

// Scheduler 延迟任务队列
//
// 按触发时间排序，同一时间按加入顺序执行。Run Controller 每帧开始时调用 Drain。
// 每个任务带有 alive 检查：执行前返回 false 的任务被跳过，
// 用于处理宿主实体已被销毁（例如 Boss 在爆炸序列中途被清理）的情况。
type Scheduler struct {
	queue taskQueue
	seq   uint64
	now   float64
}

type scheduledTask struct {
	at    float64
	seq   uint64
	alive func() bool
	fn    func()
}

// NewScheduler 创建空队列
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule 在 delayMs 毫秒后执行 fn
// alive 为 nil 表示无需检查
func (s *Scheduler) Schedule(delayMs float64, alive func() bool, fn func()) {
	if delayMs < 0 {
		delayMs = 0
	}
	s.seq++
	heap.Push(&s.queue, &scheduledTask{
		at:    s.now + delayMs,
		seq:   s.seq,
		alive: alive,
		fn:    fn,
	})
}

// Drain 执行所有触发时间不晚于 now 的任务，返回实际执行的数量
// 任务内部新加入且同样到期的任务也在本次执行
func (s *Scheduler) Drain(now float64) int {
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].at <= now {
		task := heap.Pop(&s.queue).(*scheduledTask)
		// 任务内部的延迟以任务自身的触发时间为基准
		s.now = task.at
		if task.alive != nil && !task.alive() {
			continue
		}
		task.fn()
		ran++
	}
	if now > s.now {
		s.now = now
	}
	return ran
}

// Pending 返回尚未执行的任务数
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// Clear 丢弃所有未执行的任务
func (s *Scheduler) Clear() {
	s.queue = nil
}

// NowMs 返回最近一次 Drain 的时间
func (s *Scheduler) NowMs() float64 {
	return s.now
}

type taskQueue []*scheduledTask

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*scheduledTask)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

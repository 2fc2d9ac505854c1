package game

// TimerID 定时器标识，0 表示无效
type TimerID uint64

type timer struct {
	id       TimerID
	name     string
	due      uint64 // 下次触发的逻辑帧
	interval uint64 // 0 表示一次性定时器
	seq      uint64 // 同一帧内按登记顺序触发
	fn       func()
}

// Scheduler 基于逻辑帧的定时器
//
// 替代浏览器的 setInterval/setTimeout：所有定时器在 Engine.Tick 开头
// 由 Advance 统一触发，按 (due, seq) 顺序执行，回调不会重入。
// 回调中取消的定时器在本帧内不会再触发；回调中登记的新定时器最早在下一帧触发。
type Scheduler struct {
	now    uint64
	nextID TimerID
	seq    uint64
	timers map[TimerID]*timer
}

// NewScheduler 创建空调度器，当前帧为 0
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[TimerID]*timer)}
}

// Now 返回调度器当前所处的逻辑帧
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Every 登记重复定时器，首次在 interval 帧后触发
func (s *Scheduler) Every(name string, interval uint64, fn func()) TimerID {
	if interval == 0 {
		interval = 1
	}
	return s.add(name, interval, interval, fn)
}

// After 登记一次性定时器，在 delay 帧后触发
func (s *Scheduler) After(name string, delay uint64, fn func()) TimerID {
	if delay == 0 {
		delay = 1
	}
	return s.add(name, delay, 0, fn)
}

func (s *Scheduler) add(name string, delay, interval uint64, fn func()) TimerID {
	s.nextID++
	s.seq++
	t := &timer{
		id:       s.nextID,
		name:     name,
		due:      s.now + delay,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers[t.id] = t
	return t.id
}

// Cancel 取消定时器，取消不存在的定时器是无操作
//
// 返回: 定时器是否存在
func (s *Scheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// CancelAll 取消全部定时器
func (s *Scheduler) CancelAll() {
	clear(s.timers)
}

// Active 定时器是否仍在等待触发
func (s *Scheduler) Active(id TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

// Remaining 距离下次触发还剩多少帧
func (s *Scheduler) Remaining(id TimerID) (uint64, bool) {
	t, ok := s.timers[id]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// Len 返回等待中的定时器数量
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance 推进到第 tick 帧并触发所有到期的定时器
//
// 返回: 本次触发的回调数量
func (s *Scheduler) Advance(tick uint64) int {
	if tick > s.now {
		s.now = tick
	}

	fired := 0
	for {
		t := s.nextDue()
		if t == nil {
			return fired
		}

		if t.interval == 0 {
			delete(s.timers, t.id)
		} else {
			s.seq++
			t.due += t.interval
			t.seq = s.seq
		}

		t.fn()
		fired++
	}
}

// nextDue 返回最早到期的定时器
func (s *Scheduler) nextDue() *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Reset 取消全部定时器并回到第 0 帧
func (s *Scheduler) Reset() {
	s.CancelAll()
	s.now = 0
	s.seq = 0
}

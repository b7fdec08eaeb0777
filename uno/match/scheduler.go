package match

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timerScheduler struct{}

func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler keeps a virtual clock and only runs callbacks when told to.
// Callbacks run on the caller's goroutine, outside the scheduler lock.
type ManualScheduler struct {
	sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	scheduler *ManualScheduler
	at        time.Duration
	seq       int
	f         func()
	done      bool
}

func (t *manualTask) Stop() bool {
	t.scheduler.Lock()
	defer t.scheduler.Unlock()
	if t.done {
		return false
	}
	t.done = true
	t.scheduler.remove(t)
	return true
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.Lock()
	defer s.Unlock()
	s.seq++
	task := &manualTask{scheduler: s, at: s.now + d, seq: s.seq, f: f}
	s.tasks = append(s.tasks, task)
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at == s.tasks[j].at {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].at < s.tasks[j].at
	})
	return task
}

func (s *ManualScheduler) remove(task *manualTask) {
	for i, t := range s.tasks {
		if t == task {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks are waiting to run.
func (s *ManualScheduler) Pending() int {
	s.Lock()
	defer s.Unlock()
	return len(s.tasks)
}

// NextDelay reports how far the clock is from the earliest pending callback.
func (s *ManualScheduler) NextDelay() (time.Duration, bool) {
	s.Lock()
	defer s.Unlock()
	if len(s.tasks) == 0 {
		return 0, false
	}
	return s.tasks[0].at - s.now, true
}

// RunNext moves the clock to the earliest pending callback and runs it.
func (s *ManualScheduler) RunNext() bool {
	s.Lock()
	if len(s.tasks) == 0 {
		s.Unlock()
		return false
	}
	task := s.tasks[0]
	s.tasks = s.tasks[1:]
	task.done = true
	if task.at > s.now {
		s.now = task.at
	}
	s.Unlock()

	task.f()
	return true
}

// Advance moves the clock forward by d, running every callback that falls due,
// including the ones scheduled along the way. It returns how many ran.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.Lock()
	deadline := s.now + d
	s.Unlock()

	ran := 0
	for {
		s.Lock()
		if len(s.tasks) == 0 || s.tasks[0].at > deadline {
			s.now = deadline
			s.Unlock()
			return ran
		}
		s.Unlock()
		s.RunNext()
		ran++
	}
}

// RunAll drains the queue, giving up after limit callbacks.
func (s *ManualScheduler) RunAll(limit int) int {
	ran := 0
	for ran < limit && s.RunNext() {
		ran++
	}
	return ran
}

// Package safe_close 提供多组件协同关闭机制
package safe_close

import (
	"sync"
)

// SafeClose coordinates the shutdown of multiple attached goroutines: any
// of them (or an external caller) can send the close signal, after which
// WaitClosed blocks until every attached routine has called done.
// SafeClose 协调多个附加协程的关闭：任意协程（或外部调用者）都可以发送
// 关闭信号，之后 WaitClosed 阻塞直到所有附加协程调用 done。
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach runs f in its own goroutine. f must call done when it has fully
// stopped, and should stop when closeSignal is closed.
// Attach 在独立协程中运行 f。f 停止后必须调用 done，
// 且应在 closeSignal 关闭时停止。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go f(s.wg.Done, s.closeSignal)
}

// SendCloseSignal 发送关闭信号；首个错误会被保留
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until every attached routine is done and returns the
// error passed to the first SendCloseSignal, if any.
// WaitClosed 阻塞直到所有附加协程结束，返回首次 SendCloseSignal 的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

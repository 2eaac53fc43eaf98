package fnsmetadata

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// responder writes at most one response. The timeout and the normal completion path
// both go through it, whichever comes second is dropped.
type responder struct {
	mu   sync.Mutex
	sent bool
	c    *gin.Context
}

func newResponder(c *gin.Context) *responder {
	return &responder{c: c}
}

func (w *responder) claim() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.sent {
		return false
	}
	w.sent = true
	return true
}

func (w *responder) JSON(code int, obj interface{}) bool {
	if !w.claim() {
		return false
	}
	w.c.JSON(code, obj)
	return true
}

func (w *responder) Data(code int, contentType string, data []byte) bool {
	if !w.claim() {
		return false
	}
	w.c.Data(code, contentType, data)
	return true
}

func (w *responder) Sent() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sent
}

package server

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

const defaultConsoleSize = 100

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the server log
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// Console keeps the most recent messages from all renders
type Console struct {
	mu       sync.Mutex
	limit    int
	messages []ConsoleMessage
}

// NewConsole creates a console holding at most limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: limit}
}

// Add appends a message, dropping the oldest once the console is full
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0:0], c.messages[over:]...)
	}
}

// Drain adds every message from ch until it is closed
func (c *Console) Drain(ch <-chan ConsoleMessage) {
	for msg := range ch {
		c.Add(msg)
	}
}

// Messages returns a copy of the stored messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ConsoleMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

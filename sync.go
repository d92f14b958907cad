package ggui

import (
	"github.com/gogpu/ggui/event"
)

// Message is a widget-to-application notification.
type Message = event.Message

// Controller is the application side of the message channel. Every posted
// message is delivered to it before the tree sees it again.
type Controller interface {
	Deliver(msg Message)
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(msg Message)

// Deliver implements Controller.
func (f ControllerFunc) Deliver(msg Message) { f(msg) }

// NopController discards messages.
type NopController struct{}

// Deliver implements Controller.
func (NopController) Deliver(Message) {}

// MapController keeps the last value posted for each topic. Widgets that
// share state read it back while handling event.Sync.
type MapController struct {
	values map[string]any
	order  []string
}

// NewMapController creates an empty MapController.
func NewMapController() *MapController {
	return &MapController{values: make(map[string]any)}
}

// Deliver implements Controller.
func (c *MapController) Deliver(msg Message) {
	if _, ok := c.values[msg.Topic]; !ok {
		c.order = append(c.order, msg.Topic)
	}
	c.values[msg.Topic] = msg.Value
}

// Get returns the last value posted under topic.
func (c *MapController) Get(topic string) (any, bool) {
	v, ok := c.values[topic]
	return v, ok
}

// Topics returns every topic seen, in first-posted order.
func (c *MapController) Topics() []string { return c.order }

// WindowHandle is the part of a window a widget may act on while syncing.
type WindowHandle interface {
	Close()
	SetTitle(title string)
}

type nopWindow struct{}

func (nopWindow) Close()          {}
func (nopWindow) SetTitle(string) {}

// SyncContext is passed to Widget.Sync. It carries the message queue that
// Sync drains to a fixed point.
type SyncContext struct {
	controller Controller
	window     WindowHandle
	queue      []Message
}

// NewSyncContext creates a sync context. Nil arguments are replaced with
// no-op implementations.
func NewSyncContext(c Controller, w WindowHandle) *SyncContext {
	if c == nil {
		c = NopController{}
	}
	if w == nil {
		w = nopWindow{}
	}
	return &SyncContext{controller: c, window: w}
}

// Post delivers msg to the controller and queues it for re-delivery to the
// tree as an event.Sync.
func (c *SyncContext) Post(msg Message) {
	c.controller.Deliver(msg)
	c.queue = append(c.queue, msg)
}

// Pending returns the number of queued messages.
func (c *SyncContext) Pending() int { return len(c.queue) }

// Controller returns the application controller.
func (c *SyncContext) Controller() Controller { return c.controller }

// Window returns the window being synced.
func (c *SyncContext) Window() WindowHandle { return c.window }

func (c *SyncContext) next() (Message, bool) {
	if len(c.queue) == 0 {
		return Message{}, false
	}
	msg := c.queue[0]
	c.queue[0] = Message{}
	c.queue = c.queue[1:]
	return msg, true
}

// Sync delivers ev to root, then drains the messages posted meanwhile: each
// queued message costs exactly one more pass, as event.Sync. Messages
// posted during a drain pass are drained too. It returns the folded damage
// and the number of extra passes.
func Sync(root Widget, ctx *SyncContext, ev event.Event) (Damage, int) {
	d := root.Sync(ctx, ev)
	passes := 0
	for {
		msg, ok := ctx.next()
		if !ok {
			break
		}
		d = Max(d, root.Sync(ctx, event.Sync{Message: msg}))
		passes++
	}
	return d, passes
}

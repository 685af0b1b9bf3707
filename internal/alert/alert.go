// Package alert surfaces success and error messages to the user.
package alert

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

const (
	TitleError   = "Erro"
	TitleSuccess = "Sucesso"
)

type Notifier interface {
	Notify(title, message string) error
}

// Gateway is best-effort: a failing or panicking notifier is logged and
// never reaches the caller.
type Gateway struct {
	notifier Notifier
	log      *zap.Logger
}

func NewGateway(n Notifier, log *zap.Logger) *Gateway {
	return &Gateway{notifier: n, log: log}
}

func (g *Gateway) Notify(title, message string) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("Notifier panicked", zap.Any("panic", r), zap.String("title", title))
		}
	}()

	if g.notifier == nil {
		return
	}

	if err := g.notifier.Notify(title, message); err != nil {
		g.log.Warn("Unable to display notification", zap.String("title", title), zap.Error(err))
	}
}

func (g *Gateway) NotifyError(message string) {
	g.Notify(TitleError, message)
}

func (g *Gateway) NotifySuccess(message string) {
	g.Notify(TitleSuccess, message)
}

// WriterNotifier prints notifications as "[title] message" lines.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(title, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintf(n.w, "[%s] %s\n", title, message)
	return err
}

type Notification struct {
	Title   string
	Message string
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *Recorder) Notify(title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, Notification{Title: title, Message: message})
	return nil
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Notification(nil), r.notifications...)
}

func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.notifications) == 0 {
		return Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = nil
}

// Package testutil provides fake confirmation and notification
// collaborators for session and CLI tests.
package testutil

import "github.com/naatacademy/kalaamdesk/internal/console"

// Confirmer is a scripted console.Confirmer that records every prompt.
type Confirmer struct {
	// Answer is returned from every Confirm call.
	Answer bool

	// Asked collects the prompt messages in order.
	Asked []string
}

// Confirm records the message and returns the scripted answer.
func (c *Confirmer) Confirm(message string) bool {
	c.Asked = append(c.Asked, message)
	return c.Answer
}

// Notification is one recorded Notify call.
type Notification struct {
	Message string
	Level   console.Level
}

// Notifier records every notification it receives.
type Notifier struct {
	Notifications []Notification
}

// Notify records the message.
func (n *Notifier) Notify(message string, level console.Level) {
	n.Notifications = append(n.Notifications, Notification{Message: message, Level: level})
}

// Errors returns the recorded error-level messages.
func (n *Notifier) Errors() []string {
	var out []string
	for _, note := range n.Notifications {
		if note.Level == console.Error {
			out = append(out, note.Message)
		}
	}
	return out
}

// Infos returns the recorded info-level messages.
func (n *Notifier) Infos() []string {
	var out []string
	for _, note := range n.Notifications {
		if note.Level == console.Info {
			out = append(out, note.Message)
		}
	}
	return out
}

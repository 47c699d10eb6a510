// Package agent owns the dialog state machine that drives a multi-turn
// booking conversation. Each turn re-enters the machine with the persisted
// state, decides the next step from the classifier result and the prior
// step, and produces a reply plus a replacement state.
package agent

import (
	"context"
	"time"

	"bookwise/models"
)

// Service processes one conversation turn. It always returns a reply and a
// state, never an error: every failure path is converted into a polite,
// actionable message and an updated step.
type Service interface {
	ProcessTurn(ctx context.Context, conversationID, message string) (string, *models.ConversationState)
}

// ReminderScheduler enqueues a reminder for a committed appointment.
// Satisfied by cron.Scheduler; nil disables reminders.
type ReminderScheduler interface {
	ScheduleReminder(bookingID, title string, start time.Time) error
}

package tui

import (
	"context"

	"flowboard/internal/day"
	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

// dayHost adapts the loaded day record to the board's host boundary. It is
// shared by pointer across model copies so board state survives bubbletea's
// value-semantics update loop.
//
// Notifications and save errors are buffered here and drained by the update
// loop after each board call; the board itself never talks to the screen.
type dayHost struct {
	repo day.Repository
	rec  *day.Record

	notice      string
	noticeLevel timeblock.Level
	hasNotice   bool
	saveErr     error
}

func (h *dayHost) Schedule() timeblock.Schedule {
	if h.rec == nil {
		return nil
	}
	return h.rec.Schedule
}

func (h *dayHost) SetSchedule(s timeblock.Schedule) {
	if h.rec != nil {
		h.rec.Schedule = s
	}
}

func (h *dayHost) TaskByID(id string) *task.Task {
	if h.rec == nil {
		return nil
	}
	return h.rec.TaskByID(id)
}

func (h *dayHost) Notify(message string, level timeblock.Level) {
	h.notice = message
	h.noticeLevel = level
	h.hasNotice = true
}

func (h *dayHost) Persist() {
	if h.rec == nil {
		return
	}
	if err := h.repo.SaveDay(context.Background(), h.rec); err != nil {
		h.saveErr = err
	}
}

// Rerender is a no-op: bubbletea redraws after every update anyway.
func (h *dayHost) Rerender() {}

// takeNotice returns and clears the buffered notification.
func (h *dayHost) takeNotice() (string, timeblock.Level, bool) {
	if !h.hasNotice {
		return "", timeblock.LevelInfo, false
	}
	msg, lvl := h.notice, h.noticeLevel
	h.notice, h.hasNotice = "", false
	return msg, lvl, true
}

// takeSaveErr returns and clears the last failed save, if any.
func (h *dayHost) takeSaveErr() error {
	err := h.saveErr
	h.saveErr = nil
	return err
}

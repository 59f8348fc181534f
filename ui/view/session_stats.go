package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows selecting time, the number of sessions and the capture count.
type SessionStats interface {
	SetSession(d time.Duration)
	SetTotal(d time.Duration, sessions int)
	SetCaptures(n int)
}

type sessionStats struct {
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
	capLbl     *LabelWidget
}

// NewSessionStats creates the labels in a grid layout starting at
// (row, startCol) and spanning three columns.
func NewSessionStats(row, startCol int) SessionStats {
	s := &sessionStats{sessionLbl: Label(Width(14)), totalLbl: Label(Width(18)), capLbl: Label(Width(12))}
	Grid(s.sessionLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	Grid(s.capLbl, Row(row), Column(startCol+2), Sticky("w"), Padx("0.2m"))
	s.SetSession(0)
	s.SetTotal(0, 0)
	s.SetCaptures(0)
	return s
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// SetSession updates the current selection duration display.
func (s *sessionStats) SetSession(d time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + mmss(d)))
}

// SetTotal updates the total duration display along with how many
// sessions it spans.
func (s *sessionStats) SetTotal(d time.Duration, sessions int) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt(fmt.Sprintf("Total: %s (%d)", mmss(d), sessions)))
}

func (s *sessionStats) SetCaptures(n int) {
	if s == nil || s.capLbl == nil {
		return
	}
	s.capLbl.Configure(Txt(fmt.Sprintf("Captures: %d", n)))
}

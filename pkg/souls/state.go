package souls

import (
	"fmt"
	"math"
	"time"
)

// HistoryLimit is the number of kill events kept in State.History.
const HistoryLimit = 10

// MilestoneStep is the soul interval between milestones.
const MilestoneStep = 100

// State holds the session's soul counters. It is never persisted.
type State struct {
	MobKills    int
	PlayerKills int
	TotalSouls  int
	// History is newest first.
	History []KillEvent
}

// New returns an empty State.
func New() State {
	return State{History: make([]KillEvent, 0, HistoryLimit)}
}

// Record returns the successor state after a kill of the given kind at the
// given time, along with the event that was prepended to the history. The
// receiver's history slice is not modified. Unknown kinds leave the state as is.
func (s State) Record(kind Kind, at time.Time) (State, KillEvent) {
	if !kind.Valid() {
		return s, KillEvent{}
	}
	ev := KillEvent{Kind: kind, Timestamp: at, SoulsGained: kind.Souls()}

	next := State{
		MobKills:    s.MobKills,
		PlayerKills: s.PlayerKills,
		TotalSouls:  s.TotalSouls + ev.SoulsGained,
	}
	if kind == Mob {
		next.MobKills++
	} else {
		next.PlayerKills++
	}

	keep := min(len(s.History), HistoryLimit-1)
	next.History = make([]KillEvent, 0, HistoryLimit)
	next.History = append(next.History, ev)
	next.History = append(next.History, s.History[:keep]...)
	return next, ev
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.History = append([]KillEvent(nil), s.History...)
	return c
}

// NextMilestone is the smallest multiple of MilestoneStep not below TotalSouls.
func (s State) NextMilestone() int {
	return int(math.Ceil(float64(s.TotalSouls)/MilestoneStep)) * MilestoneStep
}

// SoulsToMilestone is how many souls remain until NextMilestone.
func (s State) SoulsToMilestone() int {
	return s.NextMilestone() - s.TotalSouls
}

// ProgressToMilestone is the percentage, in [0, 100), of the way from the last
// milestone to the next one.
func (s State) ProgressToMilestone() float64 {
	return float64(s.TotalSouls%MilestoneStep) / MilestoneStep * 100
}

// MilestonesReached counts the milestones passed so far.
func (s State) MilestonesReached() int {
	return s.TotalSouls / MilestoneStep
}

// TotalKills is the number of kills of either kind.
func (s State) TotalKills() int {
	return s.MobKills + s.PlayerKills
}

// PlayerPercentage is the share of player kills among all kills. With no kills
// the denominator is 1, so the result is 0.
func (s State) PlayerPercentage() float64 {
	total := s.TotalKills()
	if total == 0 {
		total = 1
	}
	return float64(s.PlayerKills) / float64(total) * 100
}

// PlayerPercentageText formats PlayerPercentage with one decimal place.
func (s State) PlayerPercentageText() string {
	return fmt.Sprintf("%.1f%%", s.PlayerPercentage())
}

// MobSoulsTotal is the number of souls earned from mobs.
func (s State) MobSoulsTotal() int {
	return s.MobKills * MobSouls
}

// PlayerSoulsTotal is the number of souls earned from players.
func (s State) PlayerSoulsTotal() int {
	return s.PlayerKills * PlayerSouls
}

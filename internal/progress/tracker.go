package progress

import (
	"sync"
	"time"

	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
)

// Action kinds that earn XP.
const (
	ActionSearch     = "search"
	ActionEmail      = "email"
	ActionTool       = "tool"
	ActionJobViewed  = "job_viewed"
	ActionDailyLogin = "daily_login"
)

var actionXP = map[string]int{
	ActionSearch:     10,
	ActionEmail:      25,
	ActionTool:       15,
	ActionJobViewed:  5,
	ActionDailyLogin: 20,
}

type badge struct {
	Name      string
	Threshold int // total XP required
}

var badges = []badge{
	{"First Steps", 10},
	{"Explorer", 100},
	{"Relocation Ready", 300},
	{"Globetrotter", 750},
}

// Snapshot is the current per-session state.
type Snapshot struct {
	SessionID  string   `json:"session_id"`
	XP         int      `json:"xp"`
	StreakDays int      `json:"streak_days"`
	Badges     []string `json:"badges"`
}

type sessionState struct {
	xp         int
	streakDays int
	lastActive time.Time
}

// Tracker holds per-session counters in memory only. State is lost on
// restart; nothing is persisted.
type Tracker struct {
	mutex    sync.Mutex
	sessions map[string]*sessionState
	now      func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		sessions: make(map[string]*sessionState),
		now:      time.Now,
	}
}

// Record awards XP for one action and returns the updated snapshot.
func (t *Tracker) Record(sessionID, action string) (*Snapshot, error) {
	if sessionID == "" {
		return nil, errors.InvalidInput("session_id is required", nil)
	}
	xp, ok := actionXP[action]
	if !ok {
		return nil, errors.InvalidInput("unknown action: "+action, nil)
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	state, exists := t.sessions[sessionID]
	now := t.now()
	if !exists {
		state = &sessionState{streakDays: 1, lastActive: now}
		t.sessions[sessionID] = state
	} else {
		state.streakDays = nextStreak(state.streakDays, state.lastActive, now)
		state.lastActive = now
	}

	state.xp += xp
	return t.snapshotLocked(sessionID, state), nil
}

// Get returns the snapshot for a session, zero-valued if never seen.
func (t *Tracker) Get(sessionID string) *Snapshot {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	state, exists := t.sessions[sessionID]
	if !exists {
		return &Snapshot{SessionID: sessionID, Badges: []string{}}
	}
	return t.snapshotLocked(sessionID, state)
}

func (t *Tracker) snapshotLocked(sessionID string, state *sessionState) *Snapshot {
	earned := make([]string, 0, len(badges))
	for _, b := range badges {
		if state.xp >= b.Threshold {
			earned = append(earned, b.Name)
		}
	}
	return &Snapshot{
		SessionID:  sessionID,
		XP:         state.xp,
		StreakDays: state.streakDays,
		Badges:     earned,
	}
}

func nextStreak(current int, lastActive, now time.Time) int {
	lastDay := lastActive.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	switch today.Sub(lastDay) {
	case 0:
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}

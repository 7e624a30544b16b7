// Package session manages the live attendance session: the one singleton
// document with a real lifecycle (NoSession -> Active -> NoSession). Every
// mutation is a read-modify-write of the whole document with no version
// check, so concurrent writers clobber each other and the last write wins.
// That is the storage contract the rest of the system is built on, not an
// accident; see DESIGN.md.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"campusconnect/internal/model"
	"campusconnect/internal/queue"
	"campusconnect/internal/roster"
	"campusconnect/internal/seed"
	"campusconnect/internal/store"
)

// ErrNoActiveSession is returned by session mutations when no session is
// active.
var ErrNoActiveSession = errors.New("no active attendance session")

// VerifyJob is the payload published for the worker after a camera
// self-verification.
type VerifyJob struct {
	SessionID string `json:"sessionId"`
	StudentID string `json:"studentId"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// Manager drives the session lifecycle and the history archive.
type Manager struct {
	store  store.Store
	roster *roster.Service
	queue  queue.Queue // nil disables async verification
}

// NewManager creates a session manager. queue may be nil.
func NewManager(st store.Store, r *roster.Service, q queue.Queue) *Manager {
	return &Manager{store: st, roster: r, queue: q}
}

// Live returns the current live state, nil when no session exists.
func (m *Manager) Live(ctx context.Context) *model.LiveAttendanceState {
	var state *model.LiveAttendanceState
	m.store.Get(ctx, store.KeyLiveAttendance, &state)
	return state
}

// SaveLive overwrites the live document with whatever the client sent,
// including nil. This is the raw passthrough behind POST /attendance/live;
// the typed transitions below are built on the same write.
func (m *Manager) SaveLive(ctx context.Context, state *model.LiveAttendanceState) {
	m.store.Set(ctx, store.KeyLiveAttendance, state)
}

// StartInput is the faculty-side session configuration. It only exists
// client-side until Start persists the first live document.
type StartInput struct {
	Department string
	Division   string
	Classroom  string
	Headcount  int
}

// Start creates a new active session seeded from the full current roster,
// everyone Absent except the demo pre-marks (first student Present/Camera,
// third Present/Manual).
func (m *Manager) Start(ctx context.Context, in StartInput) *model.LiveAttendanceState {
	students := m.roster.Students(ctx)
	now := time.Now().UTC().Format(time.RFC3339)
	for i := range students {
		students[i].Status = model.StatusAbsent
		students[i].Timestamp = ""
		students[i].Method = ""
		students[i].RFIDVerified = false
		if i == 0 || i == 2 {
			students[i].Status = model.StatusPresent
			students[i].Timestamp = now
			students[i].RFIDVerified = true
			if i == 0 {
				students[i].Method = model.MethodCamera
			} else {
				students[i].Method = model.MethodManual
			}
		}
	}
	if in.Headcount <= 0 {
		in.Headcount = 50
	}
	state := &model.LiveAttendanceState{
		SessionID:       fmt.Sprintf("session-%d", time.Now().UnixMilli()),
		IsSessionActive: true,
		Students:        students,
		Division:        in.Division,
		Classroom:       in.Classroom,
		Department:      in.Department,
		Headcount:       in.Headcount,
	}
	m.SaveLive(ctx, state)
	sessionsStarted.Inc()
	return state
}

// Stop ends the session. When at least one student is Present the final
// roster is archived as a history log; either way the live document is
// cleared. Returns the archived log, nil when nothing was saved.
func (m *Manager) Stop(ctx context.Context) (*model.AttendanceHistoryLog, error) {
	state := m.Live(ctx)
	if state == nil || !state.IsSessionActive {
		return nil, ErrNoActiveSession
	}
	var archived *model.AttendanceHistoryLog
	if anyPresent(state.Students) {
		division := seed.DivisionName(state.Division)
		if division == "" {
			division = "Unknown Division"
		}
		logEntry := model.AttendanceHistoryLog{
			Subject: division + " Session",
			Date:    time.Now().UTC().Format(time.RFC3339),
			Records: state.Students,
		}
		m.AddLog(ctx, logEntry)
		archived = &logEntry
	}
	m.SaveLive(ctx, nil)
	sessionsStopped.Inc()
	return archived, nil
}

// MarkManual merges a faculty override for one student into the live
// document. Marking Absent clears the method and timestamp, matching the
// dashboard behavior. Unknown student ids are a no-op on the roster, but the
// document is still written back.
func (m *Manager) MarkManual(ctx context.Context, studentID, status string) (*model.LiveAttendanceState, error) {
	state := m.Live(ctx)
	if state == nil || !state.IsSessionActive {
		return nil, ErrNoActiveSession
	}
	for i := range state.Students {
		if state.Students[i].ID != studentID {
			continue
		}
		state.Students[i].Status = status
		if status == model.StatusPresent {
			state.Students[i].Method = model.MethodManual
			state.Students[i].Timestamp = time.Now().UTC().Format(time.RFC3339)
		} else {
			state.Students[i].Method = ""
			state.Students[i].Timestamp = ""
		}
		break
	}
	m.SaveLive(ctx, state)
	manualOverrides.Inc()
	return state, nil
}

// CameraVerify records a student's camera self-verification: the student is
// added to the session roster if missing, marked Present, and a verification
// job is queued for the worker. imageURL is the captured frame; when empty
// the student's profile image is used instead.
func (m *Manager) CameraVerify(ctx context.Context, studentID, imageURL string) (*model.LiveAttendanceState, error) {
	state := m.Live(ctx)
	if state == nil || !state.IsSessionActive {
		return nil, ErrNoActiveSession
	}
	idx := -1
	for i := range state.Students {
		if state.Students[i].ID == studentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		detail := m.roster.StudentByID(ctx, studentID)
		if detail == nil {
			return nil, fmt.Errorf("student %s not on roster", studentID)
		}
		state.Students = append(state.Students, *detail)
		idx = len(state.Students) - 1
	}
	state.Students[idx].Status = model.StatusPresent
	state.Students[idx].Method = model.MethodCamera
	state.Students[idx].Timestamp = time.Now().UTC().Format(time.RFC3339)
	m.SaveLive(ctx, state)
	cameraVerifications.Inc()

	if imageURL == "" {
		imageURL = state.Students[idx].Image
	}
	if m.queue != nil {
		job := VerifyJob{
			SessionID: state.SessionID,
			StudentID: studentID,
			ImageURL:  imageURL,
		}
		body, _ := json.Marshal(job)
		if err := m.queue.Publish(ctx, queue.Message{Type: queue.TypeCameraVerify, Body: body}); err != nil {
			log.Printf("session: queue publish failed: %v", err)
		}
	}
	return state, nil
}

// ConfirmRFID flips the rfidVerified flag for one student on the live
// document. Called by the worker after the face service accepts the
// verification; a stale session id makes it a no-op.
func (m *Manager) ConfirmRFID(ctx context.Context, sessionID, studentID string) {
	state := m.Live(ctx)
	if state == nil || !state.IsSessionActive || state.SessionID != sessionID {
		return
	}
	for i := range state.Students {
		if state.Students[i].ID == studentID {
			state.Students[i].RFIDVerified = true
			m.SaveLive(ctx, state)
			return
		}
	}
}

// History returns all archived logs, newest first.
func (m *Manager) History(ctx context.Context) []model.AttendanceHistoryLog {
	var history []model.AttendanceHistoryLog
	m.store.Get(ctx, store.KeyAttendanceHistory, &history)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history
}

// HistoryFor applies the role-based projection: students only see their own
// records, and logs with none of theirs are dropped.
func (m *Manager) HistoryFor(ctx context.Context, role, userID string) []model.AttendanceHistoryLog {
	history := m.History(ctx)
	if role != model.RoleStudent || userID == "" {
		return history
	}
	filtered := make([]model.AttendanceHistoryLog, 0, len(history))
	for _, logEntry := range history {
		records := make([]model.Student, 0, 1)
		for _, r := range logEntry.Records {
			if r.ID == userID {
				records = append(records, r)
			}
		}
		if len(records) == 0 {
			continue
		}
		logEntry.Records = records
		filtered = append(filtered, logEntry)
	}
	return filtered
}

// AddLog prepends a log to the archive.
func (m *Manager) AddLog(ctx context.Context, logEntry model.AttendanceHistoryLog) {
	var history []model.AttendanceHistoryLog
	m.store.Get(ctx, store.KeyAttendanceHistory, &history)
	updated := append([]model.AttendanceHistoryLog{logEntry}, history...)
	m.store.Set(ctx, store.KeyAttendanceHistory, updated)
}

// Check annotates the full roster with each student's most recent observed
// status. Logs are walked oldest first so the newest occurrence of a student
// wins chronologically.
func (m *Manager) Check(ctx context.Context) []model.Student {
	history := m.History(ctx)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date < history[j].Date
	})
	latest := make(map[string]model.Student)
	for _, logEntry := range history {
		for _, r := range logEntry.Records {
			latest[r.ID] = r
		}
	}
	students := m.roster.Students(ctx)
	for i := range students {
		if r, ok := latest[students[i].ID]; ok {
			students[i].Status = r.Status
			students[i].Timestamp = r.Timestamp
			students[i].Method = r.Method
		}
	}
	return students
}

func anyPresent(students []model.Student) bool {
	for _, s := range students {
		if s.Status == model.StatusPresent {
			return true
		}
	}
	return false
}

package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusconnect/internal/model"
	"campusconnect/internal/queue"
	"campusconnect/internal/roster"
	"campusconnect/internal/seed"
	"campusconnect/internal/store"
)

func newTestManager(q queue.Queue) (*Manager, store.Store) {
	docs := store.NewMemory()
	return NewManager(docs, roster.NewService(docs), q), docs
}

func TestLiveNilWhenNoSession(t *testing.T) {
	m, _ := newTestManager(nil)
	assert.Nil(t, m.Live(context.Background()))
}

func TestStartSeedsFullRoster(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)

	state := m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})
	require.NotNil(t, state)
	assert.True(t, state.IsSessionActive)
	assert.Regexp(t, `^session-\d+$`, state.SessionID)
	assert.Equal(t, 50, state.Headcount)
	require.Len(t, state.Students, len(seed.Students()))

	// demo pre-marks: first student camera-verified, third manually marked
	assert.Equal(t, model.StatusPresent, state.Students[0].Status)
	assert.Equal(t, model.MethodCamera, state.Students[0].Method)
	assert.True(t, state.Students[0].RFIDVerified)
	assert.Equal(t, model.StatusAbsent, state.Students[1].Status)
	assert.Equal(t, model.StatusPresent, state.Students[2].Status)
	assert.Equal(t, model.MethodManual, state.Students[2].Method)

	// the rest of the roster starts Absent with transient fields cleared
	for _, s := range state.Students[3:] {
		assert.Equal(t, model.StatusAbsent, s.Status)
		assert.Empty(t, s.Method)
		assert.Empty(t, s.Timestamp)
	}
}

func TestStopWithoutPresentArchivesNothing(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)

	state := m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})
	for i := range state.Students {
		state.Students[i].Status = model.StatusAbsent
	}
	m.SaveLive(ctx, state)

	archived, err := m.Stop(ctx)
	require.NoError(t, err)
	assert.Nil(t, archived)
	assert.Empty(t, m.History(ctx))
	assert.Nil(t, m.Live(ctx))
}

func TestStopArchivesFinalRoster(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)

	m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})
	final := m.Live(ctx)

	archived, err := m.Stop(ctx)
	require.NoError(t, err)
	require.NotNil(t, archived)
	assert.Equal(t, "CA-FY-A Session", archived.Subject)
	assert.Equal(t, final.Students, archived.Records)

	history := m.History(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, archived.Subject, history[0].Subject)

	// live state cleared to null
	assert.Nil(t, m.Live(ctx))
}

func TestStopWithoutSession(t *testing.T) {
	m, _ := newTestManager(nil)
	_, err := m.Stop(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestMarkManual(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)
	m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})

	state, err := m.MarkManual(ctx, "ca-fy-a-s2", model.StatusPresent)
	require.NoError(t, err)
	var marked *model.Student
	for i := range state.Students {
		if state.Students[i].ID == "ca-fy-a-s2" {
			marked = &state.Students[i]
		}
	}
	require.NotNil(t, marked)
	assert.Equal(t, model.StatusPresent, marked.Status)
	assert.Equal(t, model.MethodManual, marked.Method)
	assert.NotEmpty(t, marked.Timestamp)

	// marking Absent clears the transient fields
	state, err = m.MarkManual(ctx, "ca-fy-a-s2", model.StatusAbsent)
	require.NoError(t, err)
	for _, s := range state.Students {
		if s.ID == "ca-fy-a-s2" {
			assert.Equal(t, model.StatusAbsent, s.Status)
			assert.Empty(t, s.Method)
			assert.Empty(t, s.Timestamp)
		}
	}
}

func TestMarkManualWithoutSession(t *testing.T) {
	m, _ := newTestManager(nil)
	_, err := m.MarkManual(context.Background(), "ca-fy-a-s1", model.StatusPresent)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestCameraVerifyMarksStudentAndQueuesJob(t *testing.T) {
	ctx := context.Background()
	q := queue.NewInMemory(4)
	m, _ := newTestManager(q)
	m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})

	state, err := m.CameraVerify(ctx, "ca-fy-a-s4", "https://img.test/frame.jpg")
	require.NoError(t, err)
	var found *model.Student
	for i := range state.Students {
		if state.Students[i].ID == "ca-fy-a-s4" {
			found = &state.Students[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, model.StatusPresent, found.Status)
	assert.Equal(t, model.MethodCamera, found.Method)

	msgs, err := q.Consume(ctx)
	require.NoError(t, err)
	msg := <-msgs
	assert.Equal(t, queue.TypeCameraVerify, msg.Type)
	var job VerifyJob
	require.NoError(t, json.Unmarshal(msg.Body, &job))
	assert.Equal(t, "ca-fy-a-s4", job.StudentID)
	assert.Equal(t, state.SessionID, job.SessionID)
	assert.Equal(t, "https://img.test/frame.jpg", job.ImageURL)
}

func TestCameraVerifyAddsMissingRosterStudent(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)
	state := m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})

	// drop one student from the live roster, then have them self-verify
	kept := state.Students[:0:0]
	for _, s := range state.Students {
		if s.ID != "ca-fy-a-s5" {
			kept = append(kept, s)
		}
	}
	state.Students = kept
	m.SaveLive(ctx, state)

	after, err := m.CameraVerify(ctx, "ca-fy-a-s5", "")
	require.NoError(t, err)
	require.Len(t, after.Students, len(seed.Students()))
	last := after.Students[len(after.Students)-1]
	assert.Equal(t, "ca-fy-a-s5", last.ID)
	assert.Equal(t, model.StatusPresent, last.Status)
}

func TestCameraVerifyUnknownStudent(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)
	m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})

	_, err := m.CameraVerify(ctx, "ghost", "")
	assert.Error(t, err)
}

func TestConfirmRFIDIgnoresStaleSession(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)
	state := m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})

	m.ConfirmRFID(ctx, "session-0", "ca-fy-a-s2")
	live := m.Live(ctx)
	for _, s := range live.Students {
		if s.ID == "ca-fy-a-s2" {
			assert.False(t, s.RFIDVerified)
		}
	}

	m.ConfirmRFID(ctx, state.SessionID, "ca-fy-a-s2")
	live = m.Live(ctx)
	for _, s := range live.Students {
		if s.ID == "ca-fy-a-s2" {
			assert.True(t, s.RFIDVerified)
		}
	}
}

// Two writers read the same document, patch different students, and write
// back whole documents. The second write erases the first: last write wins.
// This pins the storage contract rather than guarding against a bug.
func TestConcurrentWholeDocumentWritesLastWins(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)
	m.Start(ctx, StartInput{Department: "ca", Division: "ca-fy-a", Classroom: "CR-1"})

	a := m.Live(ctx)
	b := m.Live(ctx)

	for i := range a.Students {
		if a.Students[i].ID == "ca-fy-a-s4" {
			a.Students[i].Status = model.StatusPresent
		}
	}
	for i := range b.Students {
		if b.Students[i].ID == "ca-fy-a-s5" {
			b.Students[i].Status = model.StatusPresent
		}
	}

	m.SaveLive(ctx, a)
	m.SaveLive(ctx, b)

	final := m.Live(ctx)
	for _, s := range final.Students {
		switch s.ID {
		case "ca-fy-a-s4":
			assert.Equal(t, model.StatusAbsent, s.Status, "first write should be lost")
		case "ca-fy-a-s5":
			assert.Equal(t, model.StatusPresent, s.Status)
		}
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)

	m.AddLog(ctx, model.AttendanceHistoryLog{Subject: "old", Date: "2026-01-01T09:00:00Z"})
	m.AddLog(ctx, model.AttendanceHistoryLog{Subject: "new", Date: "2026-02-01T09:00:00Z"})

	history := m.History(ctx)
	require.Len(t, history, 2)
	assert.Equal(t, "new", history[0].Subject)
	assert.Equal(t, "old", history[1].Subject)
}

func TestHistoryForStudentFiltersRecords(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)

	m.AddLog(ctx, model.AttendanceHistoryLog{
		Subject: "CA-FY-A Session",
		Date:    "2026-01-05T09:00:00Z",
		Records: []model.Student{
			{ID: "ca-fy-a-s1", Status: model.StatusPresent},
			{ID: "ca-fy-a-s2", Status: model.StatusAbsent},
		},
	})
	m.AddLog(ctx, model.AttendanceHistoryLog{
		Subject: "AIDS-FY-A Session",
		Date:    "2026-01-06T09:00:00Z",
		Records: []model.Student{{ID: "aids-fy-a-s1", Status: model.StatusPresent}},
	})

	mine := m.HistoryFor(ctx, model.RoleStudent, "ca-fy-a-s1")
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Records, 1)
	assert.Equal(t, "ca-fy-a-s1", mine[0].Records[0].ID)

	// faculty and admin see everything
	assert.Len(t, m.HistoryFor(ctx, model.RoleFaculty, "f-tb"), 2)
	assert.Len(t, m.HistoryFor(ctx, model.RoleAdmin, ""), 2)
}

func TestCheckLatestStatusWins(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(nil)

	m.AddLog(ctx, model.AttendanceHistoryLog{
		Subject: "CA-FY-A Session",
		Date:    "2026-01-05T09:00:00Z",
		Records: []model.Student{{ID: "ca-fy-a-s1", Status: model.StatusPresent, Method: model.MethodCamera}},
	})
	m.AddLog(ctx, model.AttendanceHistoryLog{
		Subject: "CA-FY-A Session",
		Date:    "2026-01-12T09:00:00Z",
		Records: []model.Student{{ID: "ca-fy-a-s1", Status: model.StatusAbsent}},
	})

	checked := m.Check(ctx)
	require.Len(t, checked, len(seed.Students()))
	for _, s := range checked {
		if s.ID == "ca-fy-a-s1" {
			assert.Equal(t, model.StatusAbsent, s.Status, "newer log should win")
		}
	}
}

package timetable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusconnect/internal/model"
	"campusconnect/internal/seed"
	"campusconnect/internal/store"
)

func TestListSeedFallback(t *testing.T) {
	svc := NewService(store.NewMemory())
	entries := svc.List(context.Background())
	require.Equal(t, len(seed.Timetable()), len(entries))
}

func TestByDivision(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory())

	entries := svc.ByDivision(ctx, "CA-FY-A")
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "CA-FY-A", e.Division)
	}

	assert.Empty(t, svc.ByDivision(ctx, "NOPE"))
}

func TestSaveOverwritesWholeGrid(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemory())

	svc.Save(ctx, []model.TimetableEntry{{
		ID:       "x",
		Division: "CA-FY-A",
		Subject:  "Go",
		Day:      "Monday",
		TimeSlot: "10:00 - 11:00",
		Type:     "Lecture",
	}})

	entries := svc.List(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "Go", entries[0].Subject)
}

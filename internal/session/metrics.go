package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_sessions_started_total",
		Help: "Attendance sessions started.",
	})
	sessionsStopped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_sessions_stopped_total",
		Help: "Attendance sessions stopped.",
	})
	cameraVerifications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_camera_verifications_total",
		Help: "Camera self-verifications submitted by students.",
	})
	manualOverrides = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusconnect_manual_overrides_total",
		Help: "Manual status overrides applied by faculty.",
	})
)

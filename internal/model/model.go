package model

// UserRole identifies which dashboard a user sees. It is declarative only:
// nothing in the API enforces it.
type UserRole = string

const (
	RoleAdmin   UserRole = "admin"
	RoleFaculty UserRole = "faculty"
	RoleStudent UserRole = "student"
)

// Attendance status values for a student within one session.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Verification methods recorded on a student's session entry.
const (
	MethodCamera = "Camera"
	MethodRFID   = "RFID"
	MethodManual = "Manual"
)

// User is a login identity: a student projection, a faculty member or an admin.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
	Email string   `json:"email,omitempty"`
}

// Student carries both the permanent roster fields and the transient
// per-session fields (status, timestamp, method, rfidVerified) that are
// overwritten every session and only become durable inside a history log.
type Student struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Division     string `json:"division"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp,omitempty"`
	Image        string `json:"image,omitempty"`
	Method       string `json:"method,omitempty"`
	RFIDVerified bool   `json:"rfidVerified,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Comment is append-only and owned by its event.
type Comment struct {
	ID        string   `json:"id"`
	User      string   `json:"user"`
	Role      UserRole `json:"role"`
	Text      string   `json:"text"`
	AvatarURL string   `json:"avatarUrl"`
}

// Event is a campus event with likes, RSVPs and comments embedded.
// Likes is a bare counter with no per-user identity; RSVPs is a set of user
// ids toggled per call.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	ImageHint   string    `json:"imageHint,omitempty"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	CreatedBy   string    `json:"createdBy"`
	RSVPs       []string  `json:"rsvps"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// TimetableEntry is one cell of the weekly grid. Nothing enforces the
// one-entry-per (division, day, timeSlot) assumption.
type TimetableEntry struct {
	ID          string `json:"id"`
	Division    string `json:"division"`
	Subject     string `json:"subject"`
	FacultyID   string `json:"facultyId"`
	FacultyName string `json:"facultyName"`
	ClassroomID string `json:"classroomId"`
	Day         string `json:"day"`
	TimeSlot    string `json:"timeSlot"`
	Type        string `json:"type"` // Lecture or Lab
}

// Classroom, Department and Division are fixed catalogs used to configure a
// session and to filter views.
type Classroom struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Division struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId"`
}

// AttendanceHistoryLog is the immutable snapshot written when a session stops
// with at least one Present student.
type AttendanceHistoryLog struct {
	Subject string    `json:"subject"`
	Date    string    `json:"date"`
	Records []Student `json:"records"`
}

// LiveAttendanceState is the singleton document describing the in-progress
// session. Every mutation is a whole-document overwrite of this value; a nil
// state means no session.
type LiveAttendanceState struct {
	SessionID       string    `json:"sessionId"`
	IsSessionActive bool      `json:"isSessionActive"`
	Students        []Student `json:"students"`
	Division        string    `json:"division"`
	Classroom       string    `json:"classroom"`
	Department      string    `json:"department"`
	Headcount       int       `json:"headcount"`
}

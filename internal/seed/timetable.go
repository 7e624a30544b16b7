package seed

import (
	"fmt"

	"campusconnect/internal/model"
)

// timetableTemplate is the weekly grid shared by every division; Timetable
// stamps it out per division with generated ids.
var timetableTemplate = []model.TimetableEntry{
	// Monday
	{Day: "Monday", TimeSlot: "10:00 - 11:00", Subject: "DBMS", FacultyName: "Prof. Trupti Bhagat", FacultyID: "f-tb", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Monday", TimeSlot: "11:00 - 12:00", Subject: "TOC", FacultyName: "Prof. Radhika Malpani", FacultyID: "f-rm", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Monday", TimeSlot: "12:15 - 14:15", Subject: "LP-I(SPM)-TB3", FacultyName: "Prof. Vrushali Wankhede", FacultyID: "f-vw", ClassroomID: "L1", Type: "Lab"},
	{Day: "Monday", TimeSlot: "12:15 - 14:15", Subject: "DBMSL-TB1", FacultyName: "Prof. Supriya Tambe", FacultyID: "f-st", ClassroomID: "L4", Type: "Lab"},
	{Day: "Monday", TimeSlot: "12:15 - 14:15", Subject: "FOSS-TB2", FacultyName: "FOSS Faculty", FacultyID: "f-foss", ClassroomID: "L2", Type: "Lab"},
	{Day: "Monday", TimeSlot: "15:00 - 17:00", Subject: "CNS-TB2", FacultyName: "Prof. Radha Tripathi", FacultyID: "f-rt", ClassroomID: "L4", Type: "Lab"},
	{Day: "Monday", TimeSlot: "15:00 - 17:00", Subject: "DBMSL-TB3", FacultyName: "Prof. Supriya Tambe", FacultyID: "f-st", ClassroomID: "L3A", Type: "Lab"},
	{Day: "Monday", TimeSlot: "15:00 - 17:00", Subject: "FOSS-TB1", FacultyName: "FOSS Faculty", FacultyID: "f-foss", ClassroomID: "L3", Type: "Lab"},

	// Tuesday
	{Day: "Tuesday", TimeSlot: "10:00 - 11:00", Subject: "TOC", FacultyName: "Prof. Radhika Malpani", FacultyID: "f-rm", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Tuesday", TimeSlot: "11:00 - 12:00", Subject: "DBMS", FacultyName: "Prof. Trupti Bhagat", FacultyID: "f-tb", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Tuesday", TimeSlot: "12:15 - 14:15", Subject: "LP-I(SPOS)-TB1", FacultyName: "Prof. Sandyarani Kalyane", FacultyID: "f-sk", ClassroomID: "L2", Type: "Lab"},
	{Day: "Tuesday", TimeSlot: "12:15 - 14:15", Subject: "LP-I(SPM)-TB2", FacultyName: "Prof. Vrushali Wankhede", FacultyID: "f-vw", ClassroomID: "L1", Type: "Lab"},
	{Day: "Tuesday", TimeSlot: "12:15 - 14:15", Subject: "DBMSL-TB3", FacultyName: "Prof. Supriya Tambe", FacultyID: "f-st", ClassroomID: "L6", Type: "Lab"},
	{Day: "Tuesday", TimeSlot: "15:00 - 16:00", Subject: "CNS", FacultyName: "Prof. Radha Tripathi", FacultyID: "f-rt", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Tuesday", TimeSlot: "16:00 - 17:00", Subject: "SPOS", FacultyName: "Prof. Sandyarani Kalyane", FacultyID: "f-sk", ClassroomID: "CR-2", Type: "Lecture"},

	// Wednesday
	{Day: "Wednesday", TimeSlot: "10:00 - 11:00", Subject: "TOC", FacultyName: "Prof. Radhika Malpani", FacultyID: "f-rm", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Wednesday", TimeSlot: "11:00 - 12:00", Subject: "DBMS", FacultyName: "Prof. Trupti Bhagat", FacultyID: "f-tb", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Wednesday", TimeSlot: "12:15 - 13:15", Subject: "CNS", FacultyName: "Prof. Radha Tripathi", FacultyID: "f-rt", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Wednesday", TimeSlot: "13:15 - 14:15", Subject: "SPM", FacultyName: "Prof. Vrushali Wankhede", FacultyID: "f-vw", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Wednesday", TimeSlot: "15:00 - 17:00", Subject: "CNS-TB1", FacultyName: "Prof. Radha Tripathi", FacultyID: "f-rt", ClassroomID: "L4", Type: "Lab"},
	{Day: "Wednesday", TimeSlot: "15:00 - 17:00", Subject: "DBMSL-TB2", FacultyName: "Prof. Supriya Tambe", FacultyID: "f-st", ClassroomID: "L3A", Type: "Lab"},
	{Day: "Wednesday", TimeSlot: "15:00 - 17:00", Subject: "FOSS-TB3", FacultyName: "FOSS Faculty", FacultyID: "f-foss", ClassroomID: "L3", Type: "Lab"},

	// Thursday
	{Day: "Thursday", TimeSlot: "10:00 - 11:00", Subject: "SPM", FacultyName: "Prof. Vrushali Wankhede", FacultyID: "f-vw", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Thursday", TimeSlot: "11:00 - 12:00", Subject: "TOC", FacultyName: "Prof. Radhika Malpani", FacultyID: "f-rm", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Thursday", TimeSlot: "12:15 - 13:15", Subject: "CNS", FacultyName: "Prof. Radha Tripathi", FacultyID: "f-rt", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Thursday", TimeSlot: "13:15 - 14:15", Subject: "SPOS", FacultyName: "Prof. Sandyarani Kalyane", FacultyID: "f-sk", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Thursday", TimeSlot: "15:00 - 17:00", Subject: "LP-I(SPOS)-TB3", FacultyName: "Prof. Sandyarani Kalyane", FacultyID: "f-sk", ClassroomID: "L2", Type: "Lab"},
	{Day: "Thursday", TimeSlot: "15:00 - 17:00", Subject: "LP-I(SPM)-TB1", FacultyName: "Prof. Vrushali Wankhede", FacultyID: "f-vw", ClassroomID: "L1", Type: "Lab"},
	{Day: "Thursday", TimeSlot: "15:00 - 17:00", Subject: "DBMSL-TB2", FacultyName: "Prof. Supriya Tambe", FacultyID: "f-st", ClassroomID: "L3A", Type: "Lab"},

	// Friday
	{Day: "Friday", TimeSlot: "10:00 - 11:00", Subject: "SPOS", FacultyName: "Prof. Sandyarani Kalyane", FacultyID: "f-sk", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Friday", TimeSlot: "11:00 - 12:00", Subject: "SPM", FacultyName: "Prof. Vrushali Wankhede", FacultyID: "f-vw", ClassroomID: "CR-2", Type: "Lecture"},
	{Day: "Friday", TimeSlot: "12:15 - 14:15", Subject: "CNS-TB3", FacultyName: "Prof. Radha Tripathi", FacultyID: "f-rt", ClassroomID: "L4", Type: "Lab"},
	{Day: "Friday", TimeSlot: "12:15 - 14:15", Subject: "DBMSL-TB1", FacultyName: "Prof. Supriya Tambe", FacultyID: "f-st", ClassroomID: "L1", Type: "Lab"},
	{Day: "Friday", TimeSlot: "12:15 - 14:15", Subject: "LP-I(SPOS)-TB2", FacultyName: "Prof. Sandyarani Kalyane", FacultyID: "f-sk", ClassroomID: "L3B", Type: "Lab"},
}

// Timetable expands the weekly template across every division.
func Timetable() []model.TimetableEntry {
	divisions := Divisions()
	entries := make([]model.TimetableEntry, 0, len(divisions)*len(timetableTemplate))
	for _, div := range divisions {
		for i, tmpl := range timetableTemplate {
			entry := tmpl
			entry.ID = fmt.Sprintf("%s-%s-%s-%d", div.ID, tmpl.Day, tmpl.TimeSlot, i)
			entry.Division = div.Name
			entries = append(entries, entry)
		}
	}
	return entries
}

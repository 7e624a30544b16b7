// Package seed holds the built-in demo collections returned by the record
// services on first run, before anything has been persisted.
package seed

import (
	"fmt"

	"campusconnect/internal/model"
)

// Departments returns the department catalog.
func Departments() []model.Department {
	return []model.Department{
		{ID: "ca", Name: "Computer Applications (CA)"},
		{ID: "aids", Name: "AI & Data Science (AIDS)"},
	}
}

// Divisions returns the division catalog.
func Divisions() []model.Division {
	return []model.Division{
		{ID: "ca-fy-a", Name: "CA-FY-A", DepartmentID: "ca"},
		{ID: "ca-sy-a", Name: "CA-SY-A", DepartmentID: "ca"},
		{ID: "ca-ty-a", Name: "CA-TY-A", DepartmentID: "ca"},
		{ID: "aids-fy-a", Name: "AIDS-FY-A", DepartmentID: "aids"},
		{ID: "aids-sy-a", Name: "AIDS-SY-A", DepartmentID: "aids"},
		{ID: "aids-ty-a", Name: "AIDS-TY-A", DepartmentID: "aids"},
	}
}

// DivisionName resolves a division id to its display name.
func DivisionName(id string) string {
	for _, d := range Divisions() {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}

// Classrooms returns the classroom catalog.
func Classrooms() []model.Classroom {
	return []model.Classroom{
		{ID: "CR-1", Name: "Classroom 1"},
		{ID: "CR-2", Name: "Classroom 2"},
		{ID: "CR-3", Name: "Classroom 3"},
		{ID: "L1", Name: "Paloalto Networks"},
		{ID: "L2", Name: "AWS Lab"},
		{ID: "L3", Name: "FOSS lab"},
		{ID: "L3A", Name: "FOSS Lab A"},
		{ID: "L3B", Name: "FOSS lab B"},
		{ID: "L4", Name: "Oracle Lab"},
		{ID: "L5", Name: "Red Hat Academy"},
		{ID: "L6", Name: "DOMO Lab"},
		{ID: "L7", Name: "IoT Lab"},
		{ID: "L8", Name: "ETC Comp Lab"},
		{ID: "TA1", Name: "TA1"},
		{ID: "TA2", Name: "TA2"},
		{ID: "TA3", Name: "TA3"},
	}
}

// Students returns the demo roster. Every entry starts Absent; the transient
// session fields are empty.
func Students() []model.Student {
	names := []struct {
		id, name, division string
		pic                int
	}{
		{"ca-fy-a-s1", "Krushna Lasure", "CA-FY-A", 1},
		{"ca-fy-a-s2", "Arya Madkholkar", "CA-FY-A", 2},
		{"ca-fy-a-s3", "Harsh Kankal", "CA-FY-A", 3},
		{"ca-fy-a-s4", "Shruti Jhade", "CA-FY-A", 4},
		{"ca-fy-a-s5", "Karan Prasad", "CA-FY-A", 5},
		{"ca-sy-a-s1", "Neha Gupta", "CA-SY-A", 6},
		{"ca-sy-a-s2", "Karan Lasure", "CA-SY-A", 7},
		{"ca-sy-a-s3", "Sarthak Londhe", "CA-SY-A", 8},
		{"ca-sy-a-s4", "Himanshu Mahire", "CA-SY-A", 9},
		{"ca-ty-a-s1", "Suyog Makar", "CA-TY-A", 10},
		{"ca-ty-a-s2", "Riya", "CA-TY-A", 11},
		{"ca-ty-a-s3", "Pallavi Lasure", "CA-TY-A", 12},
		{"ca-ty-a-s4", "Suyash", "CA-TY-A", 13},
		{"aids-fy-a-s1", "Viraj", "AIDS-FY-A", 14},
		{"aids-fy-a-s2", "Raj", "AIDS-FY-A", 15},
		{"aids-fy-a-s3", "Tushar", "AIDS-FY-A", 16},
		{"aids-fy-a-s4", "Aditi", "AIDS-FY-A", 17},
		{"aids-sy-a-s1", "Samrudhi", "AIDS-SY-A", 18},
		{"aids-sy-a-s2", "Bhumika", "AIDS-SY-A", 19},
		{"aids-sy-a-s3", "Ardra", "AIDS-SY-A", 20},
		{"aids-sy-a-s4", "Pate Krishna", "AIDS-SY-A", 21},
		{"aids-ty-a-s1", "Rahul", "AIDS-TY-A", 22},
		{"aids-ty-a-s2", "Ganesh", "AIDS-TY-A", 23},
		{"aids-ty-a-s3", "Mahadev", "AIDS-TY-A", 24},
		{"aids-ty-a-s4", "Ram", "AIDS-TY-A", 25},
		{"aids-ty-a-s5", "Sita", "AIDS-TY-A", 26},
		{"aids-ty-a-s6", "Parvati", "AIDS-TY-A", 27},
	}
	students := make([]model.Student, 0, len(names))
	for _, n := range names {
		students = append(students, model.Student{
			ID:       n.id,
			Name:     n.name,
			Division: n.division,
			Status:   model.StatusAbsent,
			Image:    picsum(n.pic),
		})
	}
	return students
}

func picsum(n int) string {
	return fmt.Sprintf("https://picsum.photos/seed/s%d/100/100", n)
}

// Faculty returns the demo faculty list.
func Faculty() []model.User {
	return []model.User{
		{ID: "f-tb", Name: "Prof. Trupti Bhagat", Role: model.RoleFaculty, Email: "trupti.bhagat@campus.com"},
		{ID: "f-rm", Name: "Prof. Radhika Malpani", Role: model.RoleFaculty, Email: "radhika.malpani@campus.com"},
		{ID: "f-sk", Name: "Prof. Sandyarani Kalyane", Role: model.RoleFaculty, Email: "sandyarani.kalyane@campus.com"},
		{ID: "f-rt", Name: "Prof. Radha Tripathi", Role: model.RoleFaculty, Email: "radha.tripathi@campus.com"},
		{ID: "f-vw", Name: "Prof. Vrushali Wankhede", Role: model.RoleFaculty, Email: "vrushali.wankhede@campus.com"},
		{ID: "f-st", Name: "Prof. Supriya Tambe", Role: model.RoleFaculty, Email: "supriya.tambe@campus.com"},
		{ID: "f-tsr", Name: "Seminar Faculty", Role: model.RoleFaculty, Email: "seminar.faculty@campus.com"},
		{ID: "f-foss", Name: "FOSS Faculty", Role: model.RoleFaculty, Email: "foss.faculty@campus.com"},
		{ID: "f-kg", Name: "Prof. Kirti Gavhane", Role: model.RoleFaculty, Email: "kirti.gavhane@campus.com"},
		{ID: "f-pk", Name: "Prof. P Kandekar", Role: model.RoleFaculty, Email: "p.kandekar@campus.com"},
		{ID: "f-sm", Name: "Prof. S.Manwar", Role: model.RoleFaculty, Email: "s.manwar@campus.com"},
		{ID: "f-dj", Name: "Dr. D. Jadhav", Role: model.RoleFaculty, Email: "d.jadhav@campus.com"},
		{ID: "f-rd", Name: "Prof. R. Dandage", Role: model.RoleFaculty, Email: "r.dandage@campus.com"},
		{ID: "f-mr", Name: "Prof. Manjiri Raut", Role: model.RoleFaculty, Email: "manjiri.raut@campus.com"},
		{ID: "f-ak", Name: "Prof. Avneet Kaur", Role: model.RoleFaculty, Email: "avneet.kaur@campus.com"},
		{ID: "f-tr", Name: "Prof. Tejal Rane", Role: model.RoleFaculty, Email: "tejal.rane@campus.com"},
		{ID: "f-vk", Name: "Dr. Veena Kadam", Role: model.RoleFaculty, Email: "veena.kadam@campus.com"},
		{ID: "f-at", Name: "Dr. Alan Turing", Role: model.RoleFaculty, Email: "alan.turing@campus.com"},
		{ID: "f-al", Name: "Dr. Ada Lovelace", Role: model.RoleFaculty, Email: "ada.lovelace@campus.com"},
	}
}

// Admins returns the built-in admin accounts. Admins are not persisted or
// editable through the API.
func Admins() []model.User {
	return []model.User{
		{ID: "admin-kl", Name: "Krushna Lasure", Role: model.RoleAdmin, Email: "krushna.lasure@campus.com"},
	}
}

package curriculum

import "testing"

func validSemester(n int) SemesterData {
	return SemesterData{
		Semester: n,
		Credits:  3,
		Hours:    HourDistribution{Lecture: 30, Lab: 30, Individual: 30},
	}
}

func validCourse(code string, prereqs ...string) Course {
	return Course{
		Code:          code,
		Name:          "Course " + code,
		Type:          TypeMandatory,
		Semesters:     []SemesterData{validSemester(1)},
		Prerequisites: prereqs,
	}
}

func TestSemesterData_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sd      SemesterData
		wantErr string
	}{
		{name: "valid", sd: validSemester(1)},
		{
			name:    "zero credits",
			sd:      SemesterData{Semester: 1, Hours: HourDistribution{Individual: 30}},
			wantErr: "credits must be positive",
		},
		{
			name:    "hour arithmetic broken",
			sd:      SemesterData{Semester: 1, Credits: 3, Hours: HourDistribution{Lecture: 30, Individual: 30}},
			wantErr: "total hours (60) must equal credits x 30 (90)",
		},
		{
			name:    "no individual hours",
			sd:      SemesterData{Semester: 1, Credits: 1, Hours: HourDistribution{Lecture: 30}},
			wantErr: "individual hours must be present",
		},
		{
			name:    "no instructional hours",
			sd:      SemesterData{Semester: 1, Credits: 1, Hours: HourDistribution{Individual: 30}},
			wantErr: "at least one type of instructional hour must be present",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sd.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCourse_Validate(t *testing.T) {
	twoSemesters := validCourse("CS101")
	twoSemesters.Semesters = []SemesterData{validSemester(1), validSemester(2)}

	duplicated := validCourse("CS101")
	duplicated.Semesters = []SemesterData{validSemester(1), validSemester(2), validSemester(1)}

	badSecond := validCourse("CS101")
	badSecond.Semesters = []SemesterData{validSemester(1), {Semester: 2, Credits: 3}}

	tests := []struct {
		name    string
		course  Course
		wantErr string
	}{
		{name: "valid", course: validCourse("CS101")},
		{name: "multiple semesters", course: twoSemesters},
		{
			name:    "missing name",
			course:  Course{Code: "CS101", Type: TypeMandatory},
			wantErr: "course CS101: course code and name are required",
		},
		{
			name:    "unknown type",
			course:  Course{Code: "CS101", Name: "Intro", Type: "optional"},
			wantErr: `course CS101: invalid course type: "optional"`,
		},
		{
			name:    "no semesters",
			course:  Course{Code: "CS101", Name: "Intro", Type: TypeSelective},
			wantErr: "course CS101: at least one semester is required",
		},
		{
			name:    "duplicate semester",
			course:  duplicated,
			wantErr: "course CS101: duplicate semester number: 1",
		},
		{
			name:    "invalid semester data carries course code",
			course:  badSecond,
			wantErr: "course CS101: total hours (0) must equal credits x 30 (90)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCourse_TotalCredits(t *testing.T) {
	course := validCourse("CS101")
	course.Semesters = []SemesterData{validSemester(1), validSemester(2)}
	if got := course.TotalCredits(); got != 6 {
		t.Errorf("TotalCredits() = %d, want 6", got)
	}
}

func TestCourseMap_Validate(t *testing.T) {
	tests := []struct {
		name    string
		courses CourseMap
		wantErr string
	}{
		{name: "empty", courses: CourseMap{}},
		{
			name: "valid with prerequisites",
			courses: CourseMap{
				"CS101": validCourse("CS101"),
				"CS201": validCourse("CS201", "CS101"),
			},
		},
		{
			name:    "key and code mismatch",
			courses: CourseMap{"CS101": validCourse("CS999")},
			wantErr: "course CS101: course code mismatch: CS101 vs CS999",
		},
		{
			name: "invalid course wins over dangling prerequisite",
			courses: CourseMap{
				"CS101": {Code: "CS101", Type: TypeMandatory},
				"CS201": validCourse("CS201", "NOPE"),
			},
			wantErr: "course CS101: course code and name are required",
		},
		{
			name: "dangling prerequisites reported together, sorted",
			courses: CourseMap{
				"CS101": validCourse("CS101"),
				"CS201": validCourse("CS201", "ZZ9", "CS101", "AA1", "ZZ9"),
			},
			wantErr: "course CS201: invalid prerequisites: [AA1 ZZ9]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.courses.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

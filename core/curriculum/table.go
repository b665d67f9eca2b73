package curriculum

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Column names of the tabular curriculum layout.
const (
	ColCourseCode    = "course_code"
	ColCourseName    = "course_name"
	ColCourseType    = "course_type"
	ColCredits       = "credits"
	ColSemester      = "semester"
	ColPrerequisites = "prerequisites"
	ColLecture       = "lecture"
	ColLab           = "lab"
	ColPractice      = "practice"
	ColSeminar       = "seminar"
	ColIndividual    = "individual"
)

// RequiredColumns must all be present for a Table to decode. ColCourseType is
// optional; a blank or absent type defaults to TypeMandatory.
var RequiredColumns = []string{
	ColCourseCode,
	ColCourseName,
	ColCredits,
	ColSemester,
	ColPrerequisites,
	ColLecture,
	ColLab,
	ColPractice,
	ColSeminar,
	ColIndividual,
}

// Table is a row-oriented tabular curriculum representation: the exchange
// format between the codec and spreadsheet/CSV collaborators. Records hold
// cell strings in Columns order.
type Table struct {
	Columns []string
	Records [][]string
}

// columnIndex maps column names to their position.
func (t Table) columnIndex() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		idx[strings.TrimSpace(col)] = i
	}
	return idx
}

// cell returns the trimmed cell under the named column, or "" when the column
// is absent or the record is short.
func (t Table) cell(idx map[string]int, record []string, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// intCell coerces a numeric cell to int; blank counts as 0. Spreadsheet
// tooling sometimes renders integers as floats ("3.0"), so those are accepted
// when integral.
func (t Table) intCell(idx map[string]int, record []string, col string, row int) (int, error) {
	s := t.cell(idx, record, col)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), nil
	}
	return 0, newSchemaErrorf("row %d: column %s: invalid number %q", row, col, s)
}

func splitPrerequisites(s string) []string {
	if s == "" {
		return nil
	}
	var codes []string
	for _, part := range strings.Split(s, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Decode transforms tabular rows into a validated CourseMap.
//
// A row with a blank course_code is a continuation row: it contributes one
// additional SemesterData to the most recently named course. A row with a
// non-blank code starts a new course, taking name/type/prerequisites from
// that row. After all rows are decoded the whole map is validated; a failure
// aborts the decode and no partial curriculum is returned.
//
// Soft quality issues are returned as warnings alongside a successful decode;
// they never fail it.
func Decode(t Table) (CourseMap, []string, error) {
	idx := t.columnIndex()
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, nil, newSchemaErrorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	courses := make(CourseMap)
	var current string
	for i, record := range t.Records {
		row := i + 1

		credits, err := t.intCell(idx, record, ColCredits, row)
		if err != nil {
			return nil, nil, err
		}
		semester, err := t.intCell(idx, record, ColSemester, row)
		if err != nil {
			return nil, nil, err
		}
		var hours HourDistribution
		for col, bucket := range map[string]*int{
			ColLecture:    &hours.Lecture,
			ColLab:        &hours.Lab,
			ColPractice:   &hours.Practice,
			ColSeminar:    &hours.Seminar,
			ColIndividual: &hours.Individual,
		} {
			if *bucket, err = t.intCell(idx, record, col, row); err != nil {
				return nil, nil, err
			}
		}
		sd := SemesterData{Semester: semester, Credits: credits, Hours: hours}

		code := t.cell(idx, record, ColCourseCode)
		if code == "" {
			// continuation row
			if current == "" {
				return nil, nil, newSchemaErrorf("row %d: continuation row without a preceding course", row)
			}
			course := courses[current]
			course.Semesters = append(course.Semesters, sd)
			courses[current] = course
			continue
		}

		if _, ok := courses[code]; ok {
			return nil, nil, newSchemaErrorf("row %d: duplicate course code %s", row, code)
		}
		courseType := t.cell(idx, record, ColCourseType)
		if courseType == "" {
			courseType = TypeMandatory
		}
		courses[code] = Course{
			Code:          code,
			Name:          t.cell(idx, record, ColCourseName),
			Type:          courseType,
			Semesters:     []SemesterData{sd},
			Prerequisites: splitPrerequisites(t.cell(idx, record, ColPrerequisites)),
		}
		current = code
	}

	if err := courses.Validate(); err != nil {
		return nil, nil, err
	}
	return courses, decodeWarnings(courses), nil
}

// decodeWarnings flags soft quality issues; informational only.
func decodeWarnings(courses CourseMap) []string {
	var warnings []string
	for _, code := range courses.Codes() {
		course := courses[code]
		if total := course.TotalCredits(); total > 8 {
			warnings = append(warnings, fmt.Sprintf("course %s has unusually high credits (%d)", code, total))
		}
		if n := len(course.Prerequisites); n > 3 {
			warnings = append(warnings, fmt.Sprintf("course %s has many prerequisites (%d)", code, n))
		}
		if n := len(course.Semesters); n > 2 {
			warnings = append(warnings, fmt.Sprintf("course %s spans %d semesters", code, n))
		}
	}
	return warnings
}

func encodeColumns() []string {
	return []string{
		ColCourseCode,
		ColCourseName,
		ColCourseType,
		ColCredits,
		ColSemester,
		ColPrerequisites,
		ColLecture,
		ColLab,
		ColPractice,
		ColSeminar,
		ColIndividual,
	}
}

// Encode transforms a CourseMap into the exact tabular layout consumed by
// Decode: per course (in code order) one row per semester (in semester
// order); the first row carries the course identity and prerequisites,
// continuation rows leave those blank.
func Encode(courses CourseMap) Table {
	t := Table{Columns: encodeColumns()}
	for _, code := range courses.Codes() {
		course := courses[code]

		semesters := make([]SemesterData, len(course.Semesters))
		copy(semesters, course.Semesters)
		sort.Slice(semesters, func(i, j int) bool { return semesters[i].Semester < semesters[j].Semester })

		for i, sd := range semesters {
			record := []string{
				course.Code,
				course.Name,
				course.Type,
				strconv.Itoa(sd.Credits),
				strconv.Itoa(sd.Semester),
				strings.Join(course.Prerequisites, ", "),
				strconv.Itoa(sd.Hours.Lecture),
				strconv.Itoa(sd.Hours.Lab),
				strconv.Itoa(sd.Hours.Practice),
				strconv.Itoa(sd.Hours.Seminar),
				strconv.Itoa(sd.Hours.Individual),
			}
			if i > 0 {
				// continuation row: blank identity fields
				record[0], record[1], record[2], record[5] = "", "", "", ""
			}
			t.Records = append(t.Records, record)
		}
	}
	return t
}

// Template returns a tabular skeleton with the header and a few illustrative
// rows, including one continuation row. Presentational only; not part of the
// round-trip contract (though it does decode cleanly).
func Template() Table {
	return Table{
		Columns: encodeColumns(),
		Records: [][]string{
			{"CS101", "Introduction to Programming", "mandatory", "3", "1", "", "30", "30", "0", "0", "30"},
			{"CS201", "Data Structures", "mandatory", "3", "2", "CS101", "30", "15", "15", "0", "30"},
			{"", "", "", "2", "3", "", "15", "15", "0", "0", "30"},
		},
	}
}

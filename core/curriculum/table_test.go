package curriculum

import (
	"reflect"
	"testing"
)

func TestDecode_schema(t *testing.T) {
	tests := []struct {
		name    string
		tab     Table
		wantErr string
	}{
		{
			name:    "missing columns, sorted",
			tab:     Table{Columns: []string{ColCourseCode, ColSemester, ColCredits}},
			wantErr: "missing required columns: course_name, individual, lab, lecture, practice, prerequisites, seminar",
		},
		{
			name: "leading continuation row",
			tab: Table{
				Columns: encodeColumns(),
				Records: [][]string{{"", "", "", "3", "1", "", "30", "30", "0", "0", "30"}},
			},
			wantErr: "row 1: continuation row without a preceding course",
		},
		{
			name: "duplicate course code",
			tab: Table{
				Columns: encodeColumns(),
				Records: [][]string{
					{"CS101", "Intro", "mandatory", "3", "1", "", "30", "30", "0", "0", "30"},
					{"CS101", "Intro again", "mandatory", "3", "2", "", "30", "30", "0", "0", "30"},
				},
			},
			wantErr: "row 2: duplicate course code CS101",
		},
		{
			name: "non-numeric cell",
			tab: Table{
				Columns: encodeColumns(),
				Records: [][]string{{"CS101", "Intro", "mandatory", "three", "1", "", "30", "30", "0", "0", "30"}},
			},
			wantErr: `row 1: column credits: invalid number "three"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.tab)
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("Decode() error = %v, want %q", err, tt.wantErr)
			}
			if _, ok := err.(*SchemaError); !ok {
				t.Errorf("Decode() error type = %T, want *SchemaError", err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("template", func(t *testing.T) {
		courses, warnings, err := Decode(Template())
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(warnings) != 0 {
			t.Errorf("Decode() warnings = %v, want none", warnings)
		}
		if len(courses) != 2 {
			t.Fatalf("len(courses) = %d, want 2", len(courses))
		}

		cs201 := courses["CS201"]
		if len(cs201.Semesters) != 2 {
			t.Fatalf("CS201 semesters = %d, want 2 (continuation row)", len(cs201.Semesters))
		}
		if got := cs201.Semesters[1]; got.Semester != 3 || got.Credits != 2 {
			t.Errorf("CS201 continuation = %+v", got)
		}
		if !reflect.DeepEqual(cs201.Prerequisites, []string{"CS101"}) {
			t.Errorf("CS201 prerequisites = %v", cs201.Prerequisites)
		}
	})

	t.Run("blank type defaults to mandatory", func(t *testing.T) {
		tab := Table{
			Columns: encodeColumns(),
			Records: [][]string{{"CS101", "Intro", "", "3", "1", "", "30", "30", "0", "0", "30"}},
		}
		courses, _, err := Decode(tab)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if got := courses["CS101"].Type; got != TypeMandatory {
			t.Errorf("Type = %q, want %q", got, TypeMandatory)
		}
	})

	t.Run("float rendering of integers", func(t *testing.T) {
		tab := Table{
			Columns: encodeColumns(),
			Records: [][]string{{"CS101", "Intro", "mandatory", "3.0", "1", "", "30", "30", "0", "0", "30"}},
		}
		courses, _, err := Decode(tab)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if got := courses["CS101"].Semesters[0].Credits; got != 3 {
			t.Errorf("Credits = %d, want 3", got)
		}
	})

	t.Run("short records read as blank cells", func(t *testing.T) {
		tab := Table{
			Columns: encodeColumns(),
			Records: [][]string{{"CS101", "Intro", "mandatory", "1", "1", "", "15", "0", "0", "0", "15"}},
		}
		tab.Records[0] = tab.Records[0][:7] // trailing cells trimmed by spreadsheet tooling
		if _, _, err := Decode(tab); err == nil {
			t.Error("Decode() expected validation error for hours read as 0")
		}
	})

	t.Run("invalid data aborts the whole decode", func(t *testing.T) {
		tab := Table{
			Columns: encodeColumns(),
			Records: [][]string{
				{"CS101", "Intro", "mandatory", "3", "1", "", "30", "30", "0", "0", "30"},
				{"CS201", "Data Structures", "mandatory", "3", "2", "NOPE", "30", "30", "0", "0", "30"},
			},
		}
		courses, _, err := Decode(tab)
		want := "course CS201: invalid prerequisites: [NOPE]"
		if err == nil || err.Error() != want {
			t.Fatalf("Decode() error = %v, want %q", err, want)
		}
		if courses != nil {
			t.Error("Decode() returned a partial map on failure")
		}
	})
}

func TestDecode_warnings(t *testing.T) {
	tab := Table{
		Columns: encodeColumns(),
		Records: [][]string{
			{"P1", "Prereq 1", "mandatory", "3", "1", "", "30", "30", "0", "0", "30"},
			{"P2", "Prereq 2", "mandatory", "3", "1", "", "30", "30", "0", "0", "30"},
			{"P3", "Prereq 3", "mandatory", "3", "1", "", "30", "30", "0", "0", "30"},
			{"P4", "Prereq 4", "mandatory", "3", "1", "", "30", "30", "0", "0", "30"},
			{"XX9", "Heavy Capstone", "mandatory", "9", "2", "P1, P2, P3, P4", "90", "90", "0", "0", "90"},
			{"", "", "", "1", "3", "", "15", "0", "0", "0", "15"},
			{"", "", "", "1", "4", "", "15", "0", "0", "0", "15"},
		},
	}
	_, warnings, err := Decode(tab)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []string{
		"course XX9 has unusually high credits (11)",
		"course XX9 has many prerequisites (4)",
		"course XX9 spans 3 semesters",
	}
	if !reflect.DeepEqual(warnings, want) {
		t.Errorf("Decode() warnings = %v, want %v", warnings, want)
	}
}

func TestEncode(t *testing.T) {
	courses, _, err := Decode(Template())
	if err != nil {
		t.Fatalf("Decode(Template()) error = %v", err)
	}

	tab := Encode(courses)
	if !reflect.DeepEqual(tab.Columns, encodeColumns()) {
		t.Errorf("Columns = %v", tab.Columns)
	}
	if len(tab.Records) != 3 {
		t.Fatalf("len(Records) = %d, want 3", len(tab.Records))
	}

	// continuation row blanks identity fields and prerequisites
	cont := tab.Records[2]
	for _, i := range []int{0, 1, 2, 5} {
		if cont[i] != "" {
			t.Errorf("continuation cell %d = %q, want blank", i, cont[i])
		}
	}
	if cont[3] != "2" || cont[4] != "3" {
		t.Errorf("continuation credits/semester = %q/%q", cont[3], cont[4])
	}
}

// Decoding an encoded map yields the same map back.
func TestEncodeDecode_roundTrip(t *testing.T) {
	orig, _, err := Decode(Template())
	if err != nil {
		t.Fatalf("Decode(Template()) error = %v", err)
	}

	decoded, warnings, err := Decode(Encode(orig))
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("round-trip warnings = %v", warnings)
	}
	if !reflect.DeepEqual(decoded, orig) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", decoded, orig)
	}
}

package department

import "testing"

func TestExperienceLevelFor(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{0, ExperienceBeginner},
		{1, ExperienceIntermediate},
		{4, ExperienceIntermediate},
		{5, ExperienceExperienced},
		{20, ExperienceExperienced},
	}
	for _, tt := range tests {
		if got := ExperienceLevelFor(tt.years); got != tt.want {
			t.Errorf("ExperienceLevelFor(%d) = %q, want %q", tt.years, got, tt.want)
		}
	}
}

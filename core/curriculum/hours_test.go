package curriculum

import "testing"

func TestHourDistribution(t *testing.T) {
	tests := []struct {
		name              string
		hours             HourDistribution
		wantTotal         int
		wantInstructional int
	}{
		{name: "zero value", hours: HourDistribution{}},
		{
			name:      "all buckets",
			hours:     HourDistribution{Lecture: 30, Lab: 15, Practice: 15, Seminar: 10, Individual: 20},
			wantTotal: 90, wantInstructional: 70,
		},
		{
			name:      "individual only",
			hours:     HourDistribution{Individual: 30},
			wantTotal: 30, wantInstructional: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hours.TotalHours(); got != tt.wantTotal {
				t.Errorf("TotalHours() = %d, want %d", got, tt.wantTotal)
			}
			if got := tt.hours.InstructionalHours(); got != tt.wantInstructional {
				t.Errorf("InstructionalHours() = %d, want %d", got, tt.wantInstructional)
			}
		})
	}
}

package gorm

import (
	"testing"
	"time"

	"gorm.io/datatypes"
)

func TestRepresentative_SuccessRate(t *testing.T) {
	cases := []struct {
		name     string
		solved   int
		received int
		want     float64
	}{
		{"no complaints received", 0, 0, 0.0},
		{"solved without received", 5, 0, 0.0},
		{"eighty percent", 80, 100, 80.0},
		{"all solved", 4, 4, 100.0},
		{"rounded to one decimal", 2, 3, 66.7},
		{"one third", 1, 3, 33.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Representative{SolvedComplaints: tc.solved, ReceivedComplaints: tc.received}
			if got := r.SuccessRate(); got != tc.want {
				t.Errorf("SuccessRate() with %d/%d = %v, want %v", tc.solved, tc.received, got, tc.want)
			}
		})
	}
}

func TestRepresentative_Age(t *testing.T) {
	born := datatypes.Date(time.Date(1980, time.June, 15, 0, 0, 0, 0, time.UTC))
	r := Representative{BirthDate: &born}

	cases := []struct {
		today time.Time
		want  int
	}{
		{time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), 43},
		{time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), 44},
		{time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 44},
	}
	for _, tc := range cases {
		got := r.Age(tc.today)
		if got == nil || *got != tc.want {
			t.Errorf("Age(%s) = %v, want %d", tc.today.Format("2006-01-02"), got, tc.want)
		}
	}

	if (Representative{}).Age(time.Now()) != nil {
		t.Error("expected nil age without a birth date")
	}
}

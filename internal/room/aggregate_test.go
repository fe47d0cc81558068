package room

import (
	"testing"

	"pokerplan/backend/internal/models"
)

func votesOf(values ...models.VoteValue) []models.Vote {
	votes := make([]models.Vote, 0, len(values))
	for _, v := range values {
		votes = append(votes, models.Vote{Value: v})
	}
	return votes
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		values  []models.VoteValue
		average float64
		min     models.VoteValue
		max     models.VoteValue
		mode    models.VoteValue
	}{
		{
			name:    "single vote",
			values:  []models.VoteValue{models.VoteFive},
			average: 5, min: 5, max: 5, mode: 5,
		},
		{
			name:    "clear mode",
			values:  []models.VoteValue{models.VoteThree, models.VoteThree, models.VoteEight},
			average: 14.0 / 3.0, min: 3, max: 8, mode: 3,
		},
		{
			name:    "tie breaks to lowest value",
			values:  []models.VoteValue{models.VoteFive, models.VoteEight},
			average: 6.5, min: 5, max: 8, mode: 5,
		},
		{
			name:    "three-way tie breaks to lowest value",
			values:  []models.VoteValue{models.VoteThirteen, models.VoteOne, models.VoteEight},
			average: 22.0 / 3.0, min: 1, max: 13, mode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(votesOf(tt.values...))
			if summary == nil {
				t.Fatal("expected a summary")
			}
			if summary.Count != len(tt.values) {
				t.Errorf("count = %d, want %d", summary.Count, len(tt.values))
			}
			if summary.Average != tt.average {
				t.Errorf("average = %v, want %v", summary.Average, tt.average)
			}
			if summary.Min != tt.min {
				t.Errorf("min = %d, want %d", summary.Min, tt.min)
			}
			if summary.Max != tt.max {
				t.Errorf("max = %d, want %d", summary.Max, tt.max)
			}
			if summary.Mode != tt.mode {
				t.Errorf("mode = %d, want %d", summary.Mode, tt.mode)
			}
		})
	}
}

func TestSummarizeEmptyRound(t *testing.T) {
	if got := Summarize(nil); got != nil {
		t.Errorf("Summarize(nil) = %+v, want nil", got)
	}
}

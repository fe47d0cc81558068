package room

import "pokerplan/backend/internal/models"

// RevealedVote pairs a vote with its player's display name, for
// presentation after a reveal.
type RevealedVote struct {
	PlayerID   string           `json:"playerId"`
	PlayerName string           `json:"playerName"`
	Value      models.VoteValue `json:"value"`
	Label      string           `json:"label"`
}

// VoteSummary aggregates a revealed round.
type VoteSummary struct {
	Count   int              `json:"count"`
	Average float64          `json:"average"`
	Min     models.VoteValue `json:"min"`
	Max     models.VoteValue `json:"max"`
	Mode    models.VoteValue `json:"mode"`
}

// Summarize computes average, min, max and mode over a round's votes.
// When several values tie for most frequent, the lowest of them wins, so
// the mode is deterministic. Returns nil for an empty round.
func Summarize(votes []models.Vote) *VoteSummary {
	if len(votes) == 0 {
		return nil
	}

	sum := 0
	counts := make(map[models.VoteValue]int)
	min, max := votes[0].Value, votes[0].Value
	for _, v := range votes {
		sum += int(v.Value)
		counts[v.Value]++
		if v.Value < min {
			min = v.Value
		}
		if v.Value > max {
			max = v.Value
		}
	}

	mode := min
	best := 0
	for _, value := range models.VoteValues() {
		if counts[value] > best {
			best = counts[value]
			mode = value
		}
	}

	return &VoteSummary{
		Count:   len(votes),
		Average: float64(sum) / float64(len(votes)),
		Min:     min,
		Max:     max,
		Mode:    mode,
	}
}

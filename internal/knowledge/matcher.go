package knowledge

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"superteam-bot/internal/model"
)

// Match is the result of a best-match lookup against the knowledge base.
type Match struct {
	Entry model.KnowledgeEntry
	Score float64
}

// BestMatch returns the entry whose question is most similar to the query,
// with a normalized similarity score in [0,1] (Sørensen–Dice over bigrams,
// case-insensitive). ok is false for an empty corpus.
func BestMatch(query string, entries []model.KnowledgeEntry) (Match, bool) {
	if len(entries) == 0 {
		return Match{}, false
	}

	dice := metrics.NewSorensenDice()
	dice.CaseSensitive = false

	best := Match{Score: -1}
	for _, entry := range entries {
		score := strutil.Similarity(query, entry.Question, dice)
		if score > best.Score {
			best = Match{Entry: entry, Score: score}
		}
	}
	return best, true
}

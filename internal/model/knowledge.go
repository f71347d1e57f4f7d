package model

// KnowledgeEntry is one question/answer pair of the knowledge base.
type KnowledgeEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

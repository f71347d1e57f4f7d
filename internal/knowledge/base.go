package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"superteam-bot/internal/model"
)

// LoadBase reads question/answer pairs from a JSON file. A missing file is
// not an error: the bot starts with an empty base.
func LoadBase(path string) ([]model.KnowledgeEntry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base %s: %w", path, err)
	}

	var entries []model.KnowledgeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base %s: %w", path, err)
	}
	return entries, nil
}

// SaveBase writes the entries to the given path as indented JSON.
func SaveBase(path string, entries []model.KnowledgeEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal knowledge base: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write knowledge base %s: %w", path, err)
	}
	return nil
}

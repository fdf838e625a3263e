package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"StudyPlanner/internal/model"
)

// LoadState reads the profile state from a JSON file. Returns a zero state if the file doesn't exist.
func LoadState(filePath string) (*model.ProfileState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.ProfileState{}, nil
		}
		return nil, err
	}
	var state model.ProfileState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the profile state to a JSON file.
func SaveState(filePath string, state *model.ProfileState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}

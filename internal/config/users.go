package config

import (
	"encoding/json"
	"fmt"
	"os"

	"bookcatalog/internal/entity"
)

// LoadUsers reads the fixed identity set from a JSON file: a list of
// {username, password, is_admin, token} objects where password is a
// bcrypt hash. The file is read once at startup.
func LoadUsers(path string) ([]entity.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file %s: %w", path, err)
	}
	var users []entity.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users file %s: %w", path, err)
	}
	for i, u := range users {
		if u.Username == "" || u.Token == "" {
			return nil, fmt.Errorf("users file %s: entry %d missing username or token", path, i)
		}
	}
	return users, nil
}

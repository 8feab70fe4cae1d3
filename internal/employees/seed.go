package employees

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

type seedEmployee struct {
	Name         string `toml:"name"`
	Username     string `toml:"username"`
	PasswordHash string `toml:"password_hash"`
	Role         string `toml:"role"`
	Initials     string `toml:"initials"`
	Color        string `toml:"color"`
	TelegramID   string `toml:"telegram_id"`
	Frame        string `toml:"frame"`
	AvatarURL    string `toml:"avatar_url"`
}

type seedFile struct {
	Employees []seedEmployee `toml:"employees"`
}

// SeedFromFile loads the employee directory from a TOML seed file. Passwords
// in the seed file are bcrypt hashes, never plaintext.
func SeedFromFile(ctx context.Context, repo *Repo, path string) error {
	var seed seedFile
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return fmt.Errorf("decode employees seed file %q: %w", path, err)
	}

	if len(seed.Employees) == 0 {
		return fmt.Errorf("employees seed file %q has no employees", path)
	}

	for _, se := range seed.Employees {
		if se.PasswordHash == "" {
			return fmt.Errorf("employee %q has no password hash", se.Username)
		}

		employee, err := repo.Create(ctx, Employee{
			Name:         se.Name,
			Username:     se.Username,
			PasswordHash: se.PasswordHash,
			Role:         Role(se.Role),
			Initials:     se.Initials,
			Color:        se.Color,
			TelegramID:   se.TelegramID,
			Frame:        se.Frame,
			AvatarURL:    se.AvatarURL,
		})
		if err != nil {
			return fmt.Errorf("seed employee %q: %w", se.Username, err)
		}

		log.Debugf("seeded employee [%d] %s (%s)", employee.ID, employee.Username, employee.Role)
	}

	log.Infof("employee directory seeded, %d employees", len(seed.Employees))
	return nil
}

package service

import (
	"fmt"
	"os"

	"github.com/Kravtmk/whoami-app/internal/apperror"
	"github.com/Kravtmk/whoami-app/internal/model"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Roles []model.Role `yaml:"roles"`
}

// LoadSeedRoles returns the built-in roles when path is empty, otherwise the
// roles listed in the YAML file at path.
func LoadSeedRoles(path string) ([]model.Role, error) {
	if path == "" {
		return model.DefaultRoles(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read role seed file: %w", err)
	}
	return parseSeedRoles(data)
}

func parseSeedRoles(data []byte) ([]model.Role, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: parse role seed: %w", apperror.ErrValidation, err)
	}
	seen := make(map[int]struct{}, len(seed.Roles))
	for _, role := range seed.Roles {
		if err := validateStruct(role); err != nil {
			return nil, err
		}
		if _, ok := seen[role.ID]; ok {
			return nil, fmt.Errorf("%w: %w: %d", apperror.ErrValidation, apperror.ErrDuplicateSeed, role.ID)
		}
		seen[role.ID] = struct{}{}
	}
	if seed.Roles == nil {
		seed.Roles = []model.Role{}
	}
	return seed.Roles, nil
}

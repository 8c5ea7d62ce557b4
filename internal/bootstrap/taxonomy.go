package bootstrap

import (
	"errors"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"hirs/internal/domain/hazard"
)

// LoadTaxonomy returns the reporting taxonomy. An empty path keeps the
// built-in defaults; otherwise the TOML file replaces them wholesale.
func LoadTaxonomy(path string) (hazard.Taxonomy, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return hazard.DefaultTaxonomy(), nil
	}

	raw, err := os.ReadFile(trimmed)
	if err != nil {
		return hazard.Taxonomy{}, err
	}

	var tax hazard.Taxonomy
	if err := toml.Unmarshal(raw, &tax); err != nil {
		return hazard.Taxonomy{}, err
	}
	if err := validateTaxonomy(tax); err != nil {
		return hazard.Taxonomy{}, err
	}
	return tax, nil
}

func validateTaxonomy(tax hazard.Taxonomy) error {
	if len(tax.Categories) == 0 {
		return errors.New("taxonomy requires at least one category")
	}
	for _, c := range tax.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return errors.New("taxonomy category name is required")
		}
	}
	return nil
}

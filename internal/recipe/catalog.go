package recipe

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
)

//go:embed seed/catalog.json
var seedCatalog []byte

// LoadCatalog decodes a JSON array of recipes, keeping the file order.
func LoadCatalog(r io.Reader) ([]Recipe, error) {
	var recipes []Recipe
	if err := json.NewDecoder(r).Decode(&recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipe catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(recipes))
	for i, rec := range recipes {
		if rec.ID == "" {
			return nil, fmt.Errorf("recipe %d (%q) has no id", i, rec.Name)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %q", rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return recipes, nil
}

// SeedCatalog returns the built-in starter catalog.
func SeedCatalog() []Recipe {
	recipes, err := LoadCatalog(bytes.NewReader(seedCatalog))
	if err != nil {
		panic(err)
	}
	for i := range recipes {
		recipes[i].Source = SourceSeed
	}
	return recipes
}

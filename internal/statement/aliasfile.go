package statement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type aliasFile struct {
	Aliases map[Field][]string `yaml:"aliases"`
}

// LoadAliases reads extra column spellings from a YAML file:
//
//	aliases:
//	  premium: ["Prem Amt", "Annualized Premium"]
//	  producer_name: ["Rep"]
//
// An empty path yields no extra aliases.
func LoadAliases(path string) (map[Field][]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}

	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse alias file: %w", err)
	}

	for field := range f.Aliases {
		if !field.Valid() {
			return nil, fmt.Errorf("alias file: unknown field %q", field)
		}
	}

	return f.Aliases, nil
}

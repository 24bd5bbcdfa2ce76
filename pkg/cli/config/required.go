package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/bb2gitea/pkg/domain/types"
)

type required struct {
	key   string
	value string
}

func missingKeys(values ...required) []string {
	var missing []string
	for _, v := range values {
		if v.value == "" {
			missing = append(missing, v.key)
		}
	}
	return missing
}

// Validator is a config section that can report missing required environment keys
type Validator interface {
	Missing() []string
}

// Validate checks every section and returns one error naming all missing keys
func Validate(sections ...Validator) error {
	var missing []string
	for _, s := range sections {
		missing = append(missing, s.Missing()...)
	}

	if len(missing) > 0 {
		return goerr.New("the following keys are missing from the environment variables: "+strings.Join(missing, ", "),
			goerr.V("missing", missing),
			goerr.T(types.ErrTagConfiguration),
		)
	}
	return nil
}

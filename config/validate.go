package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/kollel-app/kollel/key"
	"github.com/spf13/viper"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// constraint is the validator tag applied to a config key.
// Folded values are trimmed and lower-cased first, matching consumers that parse them case-insensitively.
type constraint struct {
	Key  string
	Tag  string
	Fold bool
}

var constraints = []constraint{
	{Key: key.APIURL, Tag: "required,http_url"},
	{Key: key.APIHeaderPolicy, Tag: "oneof=merge replace", Fold: true},
	{Key: key.IconsVariant, Tag: "oneof=emoji nerd plain squares"},
	{Key: key.LogsLevel, Tag: "oneof=panic fatal error warn warning info debug trace", Fold: true},
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

func (c constraint) check(value any) error {
	if s, ok := value.(string); ok && c.Fold {
		value = strings.ToLower(strings.TrimSpace(s))
	}

	err := validatorInstance().Var(value, c.Tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%s: %q does not satisfy %s", c.Key, fmt.Sprint(value), rule(fieldErrs[0]))
	}
	return fmt.Errorf("%s: %w", c.Key, err)
}

// Validate checks the current configuration values against their allowed formats.
// Setup does not call it, so commands that repair the config keep working with bad values.
func Validate() error {
	var msgs []string
	for _, c := range constraints {
		if err := c.check(viper.GetString(c.Key)); err != nil {
			msgs = append(msgs, err.Error())
		}
	}

	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// ValidateValue checks a single candidate value for k without touching the global configuration.
func ValidateValue(k string, value any) error {
	for _, c := range constraints {
		if c.Key == k {
			if err := c.check(value); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return nil
		}
	}
	return nil
}

func rule(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

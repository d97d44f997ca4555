package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	errs "github.com/matzehuels/mekko/pkg/errors"
	"github.com/matzehuels/mekko/pkg/mekko"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks field constraints and the derived plot area.
func (c Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return errs.New(errs.ErrCodeInvalidConfig, "%s", describe(verrs))
		}
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "validate")
	}
	for _, f := range c.Fields() {
		if err := errs.ValidateFieldName(f); err != nil {
			return err
		}
	}
	if err := errs.ValidateKeyList("inner", c.InnerKeys); err != nil {
		return err
	}
	if err := errs.ValidateKeyList("outer", c.OuterKeys); err != nil {
		return err
	}
	if _, err := mekko.NewPalette(nil, c.Palette); err != nil {
		return err
	}
	if c.PlotWidth() <= 0 || c.PlotHeight() <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig,
			"margins leave no plot area (%gx%g inside %gx%g)", c.PlotWidth(), c.PlotHeight(), c.Width, c.Height)
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			parts[i] = fmt.Sprintf("%s is required", field)
		case "oneof":
			parts[i] = fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
		case "gt", "gte":
			parts[i] = fmt.Sprintf("%s must be %s %s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
		default:
			parts[i] = fmt.Sprintf("%s failed %s validation (value %v)", field, fe.Tag(), fe.Value())
		}
	}
	return strings.Join(parts, "; ")
}

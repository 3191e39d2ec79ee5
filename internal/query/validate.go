package query

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"marquee/internal/normalize"
	"marquee/internal/scoring"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
			_, ok := scoring.ParseTier(fl.Field().String())
			return ok
		})
	})
	return validate
}

// Validate checks the caller preconditions of spec: at most maxGenres genres,
// known kind and tier names, no blank selections and an ordered year range.
// A non-positive maxGenres selects DefaultMaxGenres.
func Validate(spec FilterSpec, maxGenres int) error {
	if maxGenres <= 0 {
		maxGenres = DefaultMaxGenres
	}
	v := validatorInstance()

	var problems []string
	if err := v.Struct(spec); err != nil {
		problems = append(problems, describe(err)...)
	}
	if err := v.Var(spec.Genres, fmt.Sprintf("max=%d", maxGenres)); err != nil {
		problems = append(problems, fmt.Sprintf("genres: at most %d selections allowed, got %d", maxGenres, len(spec.Genres)))
	}
	for _, kind := range spec.Kinds {
		if strings.TrimSpace(kind) == "" {
			continue
		}
		if _, ok := normalize.FoldKind(kind); !ok {
			problems = append(problems, fmt.Sprintf("kinds: unknown kind %q", kind))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid query:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func describe(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "FilterSpec.")
		switch fe.Tag() {
		case "ltefield":
			out = append(out, fmt.Sprintf("%s: must not exceed %s", field, fe.Param()))
		case "tier":
			out = append(out, fmt.Sprintf("%s: unknown tier %q", field, fe.Value()))
		case "required":
			out = append(out, fmt.Sprintf("%s: blank selection", field))
		default:
			out = append(out, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}
	return out
}

package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	// custom validation tags & texts
	rosterUsernameTag   = "roster_username"
	rosterUsernameText  = "{0} may only contain letters, digits, dashes and underscores"
	rosterUsernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	requiredTag  = "required"
	requiredText = "{0} is required"

	translator ut.Translator
)

// Init registers JSON field names, English messages and the portal's custom tags on gin's validator.
func Init() {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Warn().Msg("Gin validator engine is not go-playground/validator, skipping validation setup")
		return
	}
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	Register(validate, translator)
}

// Register wires tags and translations onto validate.
func Register(validate *validator.Validate, trans ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(rosterUsernameTag, func(fl validator.FieldLevel) bool {
		return rosterUsernameRegex.MatchString(fl.Field().String())
	})
	registerTranslation(validate, trans, rosterUsernameTag, rosterUsernameText)
	registerTranslation(validate, trans, requiredTag, requiredText, true)
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// FieldErrors turns a binding error into a field -> message map. It returns nil for anything
// that is not a validation failure (malformed JSON, wrong types).
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldPath(fe)
		if translator != nil {
			fields[key] = fe.Translate(translator)
		} else {
			fields[key] = fe.Error()
		}
	}
	return fields
}

// fieldPath drops the top-level struct name from the namespace, e.g. "AddStudentRequest.username" -> "username".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

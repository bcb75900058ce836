package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// fieldArticles gives the noun phrase used by the "required" message.
var fieldArticles = map[string]string{
	"title":       "a title",
	"amount":      "an amount",
	"category":    "a category",
	"description": "a description",
}

func newTranslator(validate *validator.Validate) (ut.Translator, error) {
	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	overrides := []struct {
		tag  string
		text string
		fn   validator.TranslationFunc
	}{
		{
			tag:  "required",
			text: "Please add {0}",
			fn: func(trans ut.Translator, fe validator.FieldError) string {
				article, ok := fieldArticles[fe.Field()]
				if !ok {
					article = "a " + fe.Field()
				}
				msg, _ := trans.T("required", article)
				return msg
			},
		},
		{
			tag:  "utf16max",
			text: "{0} cannot be more than {1} characters",
			fn: func(trans ut.Translator, fe validator.FieldError) string {
				msg, _ := trans.T("utf16max", capitalize(fe.Field()), fe.Param())
				return msg
			},
		},
		{
			tag:  "oneof",
			text: "`{0}` is not a valid enum value for path `{1}`.",
			fn: func(trans ut.Translator, fe validator.FieldError) string {
				msg, _ := trans.T("oneof", fmt.Sprint(fe.Value()), fe.Field())
				return msg
			},
		},
	}

	for _, o := range overrides {
		text := o.text
		err := validate.RegisterTranslation(o.tag, trans, func(trans ut.Translator) error {
			return trans.Add(o.tag, text, true)
		}, o.fn)
		if err != nil {
			return nil, fmt.Errorf("registering %q translation: %w", o.tag, err)
		}
	}

	return trans, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

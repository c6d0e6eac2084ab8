// Package validation checks form payloads before they are submitted and
// reports violations keyed by dot-joined JSON field paths.
//
// Messages come from struct tags: msg_<rule> for one rule, msg for any rule
// of the field, otherwise the English text of the failing rule.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

// Result is the outcome of client-side validation. It never carries server
// errors.
type Result struct {
	Success     bool
	FieldErrors map[string]string
}

func ok() Result { return Result{Success: true, FieldErrors: map[string]string{}} }

// Validator is safe for concurrent use.
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

var std = sync.OnceValue(func() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
})

// Default returns the shared validator.
func Default() *Validator { return std() }

// Validate is shorthand for Default().Validate(payload).
func Validate(payload any) Result { return std().Validate(payload) }

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, err
	}

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}
	err := v.RegisterTranslation("notblank", trans,
		func(t ut.Translator) error { return t.Add("notblank", "{0} must not be blank", true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("notblank", fe.Field())
			return msg
		},
	)
	if err != nil {
		return nil, err
	}
	return &Validator{v: v, trans: trans}, nil
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Validate checks payload, a struct or pointer to one. Only the first
// violation of each field is reported.
func (v *Validator) Validate(payload any) Result {
	err := v.v.Struct(payload)
	if err == nil {
		return ok()
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{FieldErrors: map[string]string{"": err.Error()}}
	}
	root := reflect.TypeOf(payload)
	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := FieldPath(fe.Namespace())
		if _, seen := out[path]; seen {
			continue
		}
		out[path] = v.message(root, fe)
	}
	return Result{FieldErrors: out}
}

var indexRe = regexp.MustCompile(`\[([^\]]*)\]`)

// FieldPath turns a validator namespace such as
// "ProjectForm.feedbacks[0].rating" into "feedbacks.0.rating".
func FieldPath(namespace string) string {
	namespace = indexRe.ReplaceAllString(namespace, ".$1")
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}

func (v *Validator) message(root reflect.Type, fe validator.FieldError) string {
	if f, ok := lookupField(root, fe.StructNamespace()); ok {
		if msg := f.Tag.Get("msg_" + fe.Tag()); msg != "" {
			return msg
		}
		if msg := f.Tag.Get("msg"); msg != "" {
			return msg
		}
	}
	return fe.Translate(v.trans)
}

// lookupField walks a struct namespace ("Form.Social.LinkedIn", with [i]
// indexes) down from root to the struct field it names.
func lookupField(root reflect.Type, structNS string) (reflect.StructField, bool) {
	segs := strings.Split(indexRe.ReplaceAllString(structNS, ""), ".")
	if len(segs) < 2 {
		return reflect.StructField{}, false
	}
	t := root
	var field reflect.StructField
	for _, name := range segs[1:] {
		t = elem(t)
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		f, found := t.FieldByName(name)
		if !found {
			return reflect.StructField{}, false
		}
		field = f
		t = f.Type
	}
	return field, true
}

func elem(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return t
		}
	}
}

package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/http/response"
)

const dateOnlyLayout = "2006-01-02"

// Validator is the gin struct validator for request bodies. Field names in
// errors follow the json tags so clients see the names they sent.
type Validator struct {
	once       sync.Once
	validate   *validator.Validate
	translator ut.Translator
}

var _ binding.StructValidator = (*Validator)(nil)

var std = &Validator{}

// Install makes the shared validator gin's binding validator.
func Install() *Validator {
	binding.Validator = std
	return std
}

func (v *Validator) ValidateStruct(obj any) error {
	if kindOfData(obj) != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

func (v *Validator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *Validator) Translator() ut.Translator {
	v.lazyinit()
	return v.translator
}

func (v *Validator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
		v.validate.SetTagName("binding")
		v.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.validate.RegisterValidation("filterdate", func(fl validator.FieldLevel) bool {
			_, _, err := ParseFilterDate(fl.Field().String())
			return err == nil
		})
		_ = v.validate.RegisterValidation("logtype", func(fl validator.FieldLevel) bool {
			return types.LogType(fl.Field().String()).Valid()
		})

		locale := en.New()
		uni := ut.New(locale, locale)
		v.translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v.validate, v.translator)
		v.registerCustomTranslations()
	})
}

func (v *Validator) registerCustomTranslations() {
	add := func(tag, text string, withParam bool) {
		_ = v.validate.RegisterTranslation(tag, v.translator, func(t ut.Translator) error {
			return t.Add(tag, text, true)
		}, func(t ut.Translator, fe validator.FieldError) string {
			var msg string
			if withParam {
				msg, _ = t.T(tag, fe.Field(), fe.Param())
			} else {
				msg, _ = t.T(tag, fe.Field())
			}
			return msg
		})
	}
	add("required", "{0} is required", false)
	add("max", "{0} must be at most {1}", true)
	add("min", "{0} must be at least {1}", true)
	add("filterdate", "{0} must be an RFC 3339 timestamp or a YYYY-MM-DD date", false)
	add("logtype", "{0} must be one of ["+logTypeList()+"]", false)
}

// Details converts a bind or validation error into per-field response details.
func Details(err error) []response.FieldDetail {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		trans := std.Translator()
		out := make([]response.FieldDetail, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.FieldDetail{
				Field:   fieldPath(fe.Namespace()),
				Message: fe.Translate(trans),
			})
		}
		return out
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []response.FieldDetail{{Field: field, Message: "must be a " + typeErr.Type.String()}}
	}
	if errors.Is(err, io.EOF) {
		return []response.FieldDetail{{Field: "body", Message: "request body is required"}}
	}
	return []response.FieldDetail{{Field: "body", Message: "malformed JSON body"}}
}

// ParseFilterDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date.
// dateOnly reports the latter so callers can widen an upper bound to the end of that day.
func ParseFilterDate(raw string) (t time.Time, dateOnly bool, err error) {
	if d, derr := time.ParseInLocation(dateOnlyLayout, raw, time.UTC); derr == nil {
		return d, true, nil
	}
	t, err = time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func logTypeList() string {
	names := make([]string, 0, len(types.LogTypes))
	for _, t := range types.LogTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, " ")
}

func kindOfData(data any) reflect.Kind {
	value := reflect.ValueOf(data)
	kind := value.Kind()
	if kind == reflect.Pointer {
		kind = value.Elem().Kind()
	}
	return kind
}

package memory

import (
	"reflect"
	"strings"
	"time"
	"unicode"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// matches reports whether the record satisfies every condition. Columns are
// resolved against struct fields the same way the relational engine names
// them: an explicit gorm column tag wins, otherwise the snake_cased field name.
func matches[T any](record *T, conds []repository.Condition) (bool, error) {
	value := reflect.ValueOf(record).Elem()
	structType := value.Type()

	for _, cond := range conds {
		if cond.Operator != "=" {
			return false, errors.Errorf("memory engine does not support operator %q", cond.Operator)
		}

		index, ok := fieldIndexByColumn(structType, cond.Column)
		if !ok {
			return false, errors.Errorf("unknown column %q on %s", cond.Column, structType.Name())
		}

		if !valueEqual(value.Field(index).Interface(), cond.Value) {
			return false, nil
		}
	}

	return true, nil
}

func fieldIndexByColumn(structType reflect.Type, column string) (int, bool) {
	for i := 0; i < structType.NumField(); i++ {
		if columnNameOf(structType.Field(i)) == column {
			return i, true
		}
	}

	return 0, false
}

func columnNameOf(field reflect.StructField) string {
	for _, part := range strings.Split(field.Tag.Get("gorm"), ";") {
		if name, ok := strings.CutPrefix(part, "column:"); ok {
			return name
		}
	}

	return snakeCase(field.Name)
}

// snakeCase mirrors gorm's default naming: acronym runs stay together, so
// ParentCategoryID becomes parent_category_id.
func snakeCase(name string) string {
	var out strings.Builder
	runes := []rune(name)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			out.WriteRune(r)

			continue
		}

		boundary := i > 0 &&
			(unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
		if boundary {
			out.WriteByte('_')
		}
		out.WriteRune(unicode.ToLower(r))
	}

	return out.String()
}

func valueEqual(have, want any) bool {
	if haveTime, ok := have.(time.Time); ok {
		wantTime, ok := want.(time.Time)

		return ok && haveTime.Equal(wantTime)
	}

	haveValue := reflect.ValueOf(have)
	wantValue := reflect.ValueOf(want)
	if haveValue.IsValid() && wantValue.IsValid() && wantValue.Type().ConvertibleTo(haveValue.Type()) {
		return reflect.DeepEqual(have, wantValue.Convert(haveValue.Type()).Interface())
	}

	return reflect.DeepEqual(have, want)
}

// idOf reads the record's ID field; every persisted entity carries one.
func idOf(record any) uuid.UUID {
	field := reflect.ValueOf(record).Elem().FieldByName("ID")
	if !field.IsValid() {
		return uuid.Nil
	}

	id, ok := field.Interface().(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return id
}

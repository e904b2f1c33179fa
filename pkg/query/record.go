package query

import (
	"fmt"
	"reflect"
)

// TagName is the struct tag read by CriteriaFromStruct.
const TagName = "query"

var (
	fieldValueType    = reflect.TypeOf(FieldValue{})
	fieldValuePtrType = reflect.TypeOf(&FieldValue{})
)

// CriteriaFromStruct builds criteria from a record type whose fields are
// FieldValue or *FieldValue. Fields are visited in declaration order,
// embedded structs inline. The logical name is the `query` tag, or the Go
// field name (ArpCode and arpCode both map to ARP_CODE). A tag of "-" skips
// the field; other field types are ignored.
//
//	type ItemCriteria struct {
//		Code       query.FieldValue
//		CardType   query.FieldValue `query:"cardType"`
//		Internal   query.FieldValue `query:"-"`
//	}
func CriteriaFromStruct(record any) (*Criteria, error) {
	criteria := NewCriteria()

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return criteria, nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, rv.Kind())
	}

	collectFields(rv, criteria)

	return criteria, nil
}

func collectFields(rv reflect.Value, criteria *Criteria) {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)

		tag := sf.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		fv := rv.Field(i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && tag == "" {
			collectFields(fv, criteria)

			continue
		}

		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if tag != "" {
			name = tag
		}

		switch sf.Type {
		case fieldValueType:
			criteria.Where(name, fv.Interface().(FieldValue))
		case fieldValuePtrType:
			if !fv.IsNil() {
				criteria.Where(name, *fv.Interface().(*FieldValue))
			}
		}
	}
}

// CompileStruct is CriteriaFromStruct followed by Compile.
func CompileStruct(record any) (string, bool, error) {
	criteria, err := CriteriaFromStruct(record)
	if err != nil {
		return "", false, err
	}

	filter, ok := Compile(criteria)

	return filter, ok, nil
}

package source

import (
	"errors"
	"strings"
)

var (
	// ErrSourceUnavailable reports that the external source could not be read
	// (network, permission, missing object).
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMissingKeyColumn reports a sheet whose header has no asset key column.
	ErrMissingKeyColumn = errors.New("header has no key column")
)

// Row maps a normalized (uppercased, trimmed) column name to its trimmed value.
type Row map[string]string

// Field is an internal attribute name independent of any sheet's header.
type Field string

const (
	FieldKey        Field = "key"
	FieldModel      Field = "model"
	FieldCapacity   Field = "capacity"
	FieldColor      Field = "color"
	FieldSKU        Field = "sku"
	FieldGrade      Field = "grade"
	FieldLockStatus Field = "lock_status"
	FieldLocation   Field = "location"
)

// Record is the strictly typed form of a Row; everything past the adapter uses it.
// Empty strings mean the sheet had no value.
type Record struct {
	Key        string `json:"key"`
	Model      string `json:"model,omitempty"`
	Capacity   string `json:"capacity,omitempty"`
	Color      string `json:"color,omitempty"`
	SKU        string `json:"sku,omitempty"`
	Grade      string `json:"grade,omitempty"`
	LockStatus string `json:"lock_status,omitempty"`
	Location   string `json:"location,omitempty"`
}

// Schema maps each Field to the header names a sheet may use for it.
// The first alias present in the header wins.
type Schema struct {
	Name    string
	Columns map[Field][]string
}

// PrimarySchema is the column layout of the authoritative inventory sheet.
func PrimarySchema() Schema {
	return Schema{
		Name: "primary",
		Columns: map[Field][]string{
			FieldKey:        {"IMEI", "SERIAL", "KEY"},
			FieldModel:      {"MODEL"},
			FieldCapacity:   {"CAPACITY", "GB"},
			FieldColor:      {"COLOR", "COLOUR"},
			FieldSKU:        {"SKU"},
			FieldGrade:      {"GRADE"},
			FieldLockStatus: {"LOCK STATUS", "LOCK"},
			FieldLocation:   {"LOCATION", "BIN"},
		},
	}
}

// SecondarySchema is the layout of the independently kept audit sheet, which
// names the same concepts differently.
func SecondarySchema() Schema {
	return Schema{
		Name: "secondary",
		Columns: map[Field][]string{
			FieldKey:        {"SERIAL NUMBER", "IMEI/SN", "IMEI"},
			FieldModel:      {"DEVICE", "MODEL NAME"},
			FieldCapacity:   {"STORAGE", "SIZE"},
			FieldColor:      {"COLOUR", "COLOR"},
			FieldSKU:        {"ITEM CODE", "SKU"},
			FieldGrade:      {"CONDITION", "GRADE"},
			FieldLockStatus: {"CARRIER LOCK", "LOCK STATUS"},
			FieldLocation:   {"SHELF", "LOCATION"},
		},
	}
}

// NormalizeHeader uppercases a header cell and collapses inner whitespace.
func NormalizeHeader(h string) string {
	return strings.ToUpper(strings.Join(strings.Fields(h), " "))
}

// resolve maps each field of the schema to the normalized header name present in
// the sheet. Fields without a matching column are absent from the result.
func (s Schema) resolve(header map[string]int) (map[Field]string, error) {
	resolved := make(map[Field]string, len(s.Columns))
	for field, aliases := range s.Columns {
		for _, alias := range aliases {
			name := NormalizeHeader(alias)
			if _, ok := header[name]; ok {
				resolved[field] = name
				break
			}
		}
	}
	if _, ok := resolved[FieldKey]; !ok {
		return nil, ErrMissingKeyColumn
	}
	return resolved, nil
}

// decode converts a Row into a Record using resolved column names.
// It reports false when the mandatory key is blank.
func decode(row Row, columns map[Field]string) (Record, bool) {
	get := func(f Field) string {
		name, ok := columns[f]
		if !ok {
			return ""
		}
		return row[name]
	}

	rec := Record{
		Key:        get(FieldKey),
		Model:      get(FieldModel),
		Capacity:   get(FieldCapacity),
		Color:      get(FieldColor),
		SKU:        get(FieldSKU),
		Grade:      strings.ToUpper(get(FieldGrade)),
		LockStatus: strings.ToLower(get(FieldLockStatus)),
		Location:   get(FieldLocation),
	}
	return rec, rec.Key != ""
}

// Package form holds per-field validation records for the registration form.
package form

// Field is one validated form value
type Field struct {
	Name     string
	Label    string
	Value    string
	Error    string
	Validate func(string) error
}

// Check runs the validator and records its message. Returns true when valid.
func (f *Field) Check() bool {
	f.Error = ""
	if f.Validate == nil {
		return true
	}
	if err := f.Validate(f.Value); err != nil {
		f.Error = err.Error()
		return false
	}
	return true
}

// Form is an ordered set of fields validated together
type Form struct {
	fields []*Field
	byName map[string]*Field
}

// New creates a form from fields in display order
func New(fields ...*Field) *Form {
	f := &Form{
		fields: fields,
		byName: make(map[string]*Field, len(fields)),
	}
	for _, field := range fields {
		f.byName[field.Name] = field
	}
	return f
}

// Field returns the named field, or nil
func (f *Form) Field(name string) *Field {
	return f.byName[name]
}

// Set stores a value without validating it
func (f *Form) Set(name, value string) {
	if field := f.byName[name]; field != nil {
		field.Value = value
	}
}

// Value returns the named field's value
func (f *Form) Value(name string) string {
	if field := f.byName[name]; field != nil {
		return field.Value
	}
	return ""
}

// Validate checks every field and returns the failures keyed by field name.
// An empty map means the form can be submitted.
func (f *Form) Validate() map[string]string {
	errs := make(map[string]string)
	for _, field := range f.fields {
		if !field.Check() {
			errs[field.Name] = field.Error
		}
	}
	return errs
}

// FirstInvalid returns the index of the first field with an error, or -1
func (f *Form) FirstInvalid() int {
	for i, field := range f.fields {
		if field.Error != "" {
			return i
		}
	}
	return -1
}

// ClearErrors drops every recorded message
func (f *Form) ClearErrors() {
	for _, field := range f.fields {
		field.Error = ""
	}
}

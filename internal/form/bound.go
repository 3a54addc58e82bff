package form

// BoundField is the template view of one field.
type BoundField struct {
	Name     string
	Label    string
	HelpText string
	Widget   string
	Required bool
	Value    string
	Errors   []string
	Choices  []BoundChoice
}

// BoundChoice is one option of a select with its selection state.
type BoundChoice struct {
	Value    string
	Label    string
	Selected bool
}

// Fields returns every field in declaration order.
func (f *Form) Fields() []BoundField {
	out := make([]BoundField, 0, len(f.schema.Fields))
	for _, fd := range f.schema.Fields {
		out = append(out, f.bind(fd))
	}
	return out
}

// Field returns a single field by name. The zero BoundField is returned for unknown names.
func (f *Form) Field(name string) BoundField {
	for _, fd := range f.schema.Fields {
		if fd.Name == name {
			return f.bind(fd)
		}
	}
	return BoundField{}
}

func (f *Form) bind(fd Field) BoundField {
	bf := BoundField{
		Name:     fd.Name,
		Label:    fd.Label,
		HelpText: fd.HelpText,
		Widget:   fd.Kind.Widget(),
		Required: fd.Required,
		Errors:   f.errors[fd.Name],
	}
	// Passwords and files are never echoed back.
	if fd.Kind != KindPassword && fd.Kind != KindImage {
		bf.Value = f.values[fd.Name]
	}
	if fd.Kind == KindChoice {
		bf.Choices = make([]BoundChoice, 0, len(fd.Choices))
		for _, c := range fd.Choices {
			bf.Choices = append(bf.Choices, BoundChoice{
				Value:    c.Value,
				Label:    c.Label,
				Selected: c.Value == bf.Value,
			})
		}
	}
	return bf
}

package variant

import "github.com/invopop/jsonschema"

// classSchema accepts a class string or a per-slot object of class strings.
func (t Table) classSchema() *jsonschema.Schema {
	slots := jsonschema.NewProperties()
	for _, s := range t.SlotNames() {
		slots.Set(string(s), &jsonschema.Schema{Type: "string"})
	}
	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{
		{Type: "string"},
		{Type: "object", Properties: slots, AdditionalProperties: jsonschema.FalseSchema},
	}}
}

// JSONSchema describes the encoded form produced by MarshalJSON.
func (t Table) JSONSchema() *jsonschema.Schema {
	slots := jsonschema.NewProperties()
	for _, s := range t.SlotNames() {
		slots.Set(string(s), &jsonschema.Schema{Type: "string"})
	}

	variants := jsonschema.NewProperties()
	defaults := jsonschema.NewProperties()
	conditions := jsonschema.NewProperties()
	for _, axis := range t.Axes {
		values := jsonschema.NewProperties()
		enum := make([]any, 0, len(axis.Values))
		for _, v := range axis.Values {
			values.Set(v.Name, t.classSchema())
			enum = append(enum, flagOrString(v.Name))
		}
		variants.Set(axis.Name, &jsonschema.Schema{Type: "object", Properties: values, AdditionalProperties: jsonschema.FalseSchema})

		if axis.IsFlag() {
			conditions.Set(axis.Name, &jsonschema.Schema{Type: "boolean"})
		} else {
			conditions.Set(axis.Name, &jsonschema.Schema{Type: "string", Enum: enum})
			defaults.Set(axis.Name, &jsonschema.Schema{Type: "string", Enum: enum})
		}
	}
	conditions.Set("class", t.classSchema())

	props := jsonschema.NewProperties()
	props.Set("slots", &jsonschema.Schema{Type: "object", Properties: slots})
	props.Set("variants", &jsonschema.Schema{Type: "object", Properties: variants})
	props.Set("compoundVariants", &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Type: "object", Properties: conditions, Required: []string{"class"}},
	})
	props.Set("defaultVariants", &jsonschema.Schema{Type: "object", Properties: defaults})

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"slots", "variants"},
	}
}

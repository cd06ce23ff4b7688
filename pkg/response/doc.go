// Package response validates outgoing payloads against their declared shape
// before they are written.
//
// A payload is first sent through an encoding/json round trip so the schema
// sees exactly what a client would receive. It is then validated with every
// declared property required (unless the property declares a default) and with
// undeclared keys removed from the result:
//
//	var userSchema = response.MustSchema(response.SchemaFromYAML([]byte(`
//	type: object
//	properties:
//	  id:   {type: string}
//	  name: {type: string}
//	`)))
//
//	out, err := response.Validate(user, userSchema)
//
// A violation is returned as *validator.Error with Kind
// validator.KindDataValidation and severity error. It signals a server-side
// defect, not a client mistake.
//
// Schemas are JSON Schema documents handled by github.com/google/jsonschema-go.
// Other engines can be plugged in by implementing Schema.
package response

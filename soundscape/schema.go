// SPDX-License-Identifier: MIT

package soundscape

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"

	"github.com/katalvlaran/ambiscape/event"
	"github.com/katalvlaran/ambiscape/reverb"
)

// Schema returns the JSON schema of the Scene description.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Mapper:         mapType,
	}
	return reflector.Reflect(&Scene{})
}

// mapType describes the text-encoded enums, which reflection would
// otherwise report by their Go kind.
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeOf(uuid.UUID{}):
		return &jsonschema.Schema{Type: "string", Format: "uuid"}
	case reflect.TypeOf(event.Role(0)):
		return &jsonschema.Schema{Type: "string", Enum: []any{
			event.Foreground.String(), event.Background.String(),
		}}
	case reflect.TypeOf(reverb.Kind("")):
		return &jsonschema.Schema{Type: "string", Enum: []any{
			string(reverb.Simulated), string(reverb.Measured),
		}}
	case reflect.TypeOf(reverb.Wrap("")):
		enum := make([]any, 0, 4)
		for _, w := range reverb.WrapPolicies() {
			enum = append(enum, w)
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}
	}
	return nil
}

package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValidateCatalog compiles every catalog input schema and checks that each
// declared default satisfies its own property schema. Run at server
// construction so a bad descriptor fails startup instead of the first call.
func ValidateCatalog() error {
	for _, t := range Descriptors() {
		if err := checkDescriptor(t); err != nil {
			return fmt.Errorf("tool %s: %w", t.Name, err)
		}
	}
	return nil
}

func checkDescriptor(t *sdkmcp.Tool) error {
	doc, err := schemaDoc(t.InputSchema)
	if err != nil {
		return err
	}

	if _, err := compileDoc(doc); err != nil {
		return fmt.Errorf("compiling input schema: %w", err)
	}

	props, _ := doc["properties"].(map[string]any)
	if required, ok := doc["required"].([]any); ok {
		for _, r := range required {
			name, _ := r.(string)
			if _, ok := props[name]; !ok {
				return fmt.Errorf("required property %q is not declared", name)
			}
		}
	}

	for name, raw := range props {
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		def, ok := prop["default"]
		if !ok {
			continue
		}
		compiled, err := compileDoc(prop)
		if err != nil {
			return fmt.Errorf("compiling schema for property %q: %w", name, err)
		}
		if err := compiled.Validate(def); err != nil {
			return fmt.Errorf("default for property %q: %s",
				name, strings.Join(validationErrors(err), "; "))
		}
	}

	return nil
}

// schemaDoc round-trips a descriptor schema through JSON into the plain map
// form the compiler takes.
func schemaDoc(schema any) (map[string]any, error) {
	b, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}
	return doc, nil
}

func compileDoc(doc map[string]any) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// printer renders validation failures as English text.
var printer = message.NewPrinter(language.English)

// validationErrors flattens a validation error into readable messages.
func validationErrors(err error) []string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{err.Error()}
	}
	var msgs []string
	collectCauses(verr, &msgs)
	if len(msgs) == 0 {
		msgs = append(msgs, verr.Error())
	}
	return msgs
}

// collectCauses gathers leaf errors, the ones with no further causes.
func collectCauses(err *jsonschema.ValidationError, msgs *[]string) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if len(err.InstanceLocation) > 0 {
			msg = "/" + strings.Join(err.InstanceLocation, "/") + ": " + msg
		}
		*msgs = append(*msgs, msg)
	}
	for _, cause := range err.Causes {
		collectCauses(cause, msgs)
	}
}

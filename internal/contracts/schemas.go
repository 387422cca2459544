// Package contracts holds the JSON Schemas describing what each variant's
// create endpoint accepts. The payloads are checked against these before any
// bytes go on the wire; in particular the lodge/hotel schema requires every
// amenity flag to be present, because the backend treats all of them as
// required fields rather than optional enrichment.
package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"skidmo-client/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemasFS embed.FS

// schemaBaseURL matches the $id of every embedded schema, so registration
// URL and $id agree and relative $refs between the schemas resolve to
// registered resources rather than the local filesystem.
const schemaBaseURL = "https://schemas.skidmo.app/"

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()

	// Register every schema as a resource first so $ref between them works.
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return compiler.AddResource(schemaBaseURL+strings.TrimPrefix(path, "schemas/"), file)
	})
	if err != nil {
		log.Fatalf("contracts: failed to add schema resources: %v", err)
	}

	for _, name := range []string{"house", "apartment", "commercial", "lodge-hotel"} {
		schema, err := compiler.Compile(schemaBaseURL + "listing/" + name + ".json")
		if err != nil {
			log.Fatalf("contracts: failed to compile schema %s: %v", name, err)
		}
		compiledSchemas[name] = schema
	}
}

// schemaNameFor maps a property type to its contract schema. BOARDING uses
// the house contract.
func schemaNameFor(t domain.PropertyType) (string, bool) {
	switch t {
	case domain.TypeHouse, domain.TypeBoarding:
		return "house", true
	case domain.TypeApartment:
		return "apartment", true
	case domain.TypeCommercial:
		return "commercial", true
	case domain.TypeLodgeHotel:
		return "lodge-hotel", true
	default:
		return "", false
	}
}

// ValidateCreationFields checks a payload's non-file fields against the
// variant's schema. The fields are round-tripped through JSON so the schema
// sees exactly what the wire encoding will carry.
func ValidateCreationFields(t domain.PropertyType, fields map[string]interface{}) error {
	name, ok := schemaNameFor(t)
	if !ok {
		return fmt.Errorf("contracts: no creation schema for property type %q", t)
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("contracts: failed to marshal payload fields: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("contracts: failed to decode payload fields: %w", err)
	}

	if err := compiledSchemas[name].Validate(doc); err != nil {
		return fmt.Errorf("contracts: payload does not satisfy the %s creation contract: %w", name, err)
	}
	return nil
}

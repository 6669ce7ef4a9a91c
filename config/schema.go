package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/awantoch/iconflow/constants"
)

//go:embed iconflow.schema.json
var schemaJSON string

var goPackagePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var (
	compiledSchema *jsonschema.Schema
	compileErr     error
	compileOnce    sync.Once
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledSchema, compileErr = jsonschema.CompileString(constants.IconflowSchemaFile, schemaJSON)
	})
	return compiledSchema, compileErr
}

// ValidateSchema runs JSON-Schema validation of raw config JSON against the
// embedded iconflow schema.
func ValidateSchema(data []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	return nil
}

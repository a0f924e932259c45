// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/MKhiriev/go-pattern-keeper/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// DocumentValidator validates document payloads against a JSON schema.
type DocumentValidator struct {
	schema *jsonschema.Schema
}

// NewDocumentValidator compiles the document schema. It fails only if the
// embedded schema itself is broken.
func NewDocumentValidator() (*DocumentValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
	if err != nil {
		return nil, fmt.Errorf("decode document schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err = c.AddResource(documentSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add document schema: %w", err)
	}

	schema, err := c.Compile(documentSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}

	return &DocumentValidator{schema: schema}, nil
}

// Validate accepts [models.DocumentRequest], [models.Document],
// [models.DocumentPatch] or a raw JSON body ([]byte). Field names are
// accepted for interface compatibility; only FieldTitle and FieldContent are
// known.
func (v *DocumentValidator) Validate(_ context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if f != FieldTitle && f != FieldContent {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var payload []byte
	switch value := obj.(type) {
	case models.DocumentRequest:
		return v.validateRequest(value)
	case *models.DocumentRequest:
		return v.validateRequest(*value)
	case models.Document:
		return v.validateRequest(value.Patch().Request(value))
	case *models.Document:
		return v.validateRequest(value.Patch().Request(*value))
	case models.DocumentPatch:
		if value.IsEmpty() {
			return ErrInvalidPatch
		}
		return v.validateRequest(value.Request(models.Document{}))
	case []byte:
		payload = value
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	return v.validateJSON(payload)
}

func (v *DocumentValidator) validateRequest(req models.DocumentRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return v.validateJSON(payload)
}

func (v *DocumentValidator) validateJSON(payload []byte) error {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err = v.schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

package configvalidator

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"github.com/shanakama/smart-auto-scaler/models"
)

// configUpdateSchema pins the editable subset of the backend config: exactly
// these six fields, no extras. The backend applies whatever it is sent, so
// the payload is checked on this side before the POST.
const configUpdateSchema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"type": "object",
	"required": [
		"dry_run",
		"scale_factor",
		"auto_scale_enabled",
		"auto_scale_interval",
		"scaling_cooldown",
		"namespaces"
	],
	"additionalProperties": false,
	"properties": {
		"dry_run": {
			"type": "boolean"
		},
		"scale_factor": {
			"type": "number",
			"minimum": 0,
			"exclusiveMinimum": true,
			"maximum": 1
		},
		"auto_scale_enabled": {
			"type": "boolean"
		},
		"auto_scale_interval": {
			"type": "integer",
			"minimum": 1
		},
		"scaling_cooldown": {
			"type": "integer",
			"minimum": 0
		},
		"namespaces": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "string",
				"minLength": 1
			}
		}
	}
}`

type ConfigValidator struct {
	schemaLoader gojsonschema.JSONLoader
}

type ConfigValidationErrors struct {
	Context     string `json:"context"`
	Description string `json:"description"`
}

type ConfigValidationError struct {
	gojsonschema.ResultErrorFields
}

func newConfigValidationError(context *gojsonschema.JsonContext, formatString string, errDetails gojsonschema.ErrorDetails) *ConfigValidationError {
	err := ConfigValidationError{}
	err.SetType("custom_invalid_config_error")
	err.SetContext(context)
	err.SetDescriptionFormat(formatString)
	err.SetDetails(errDetails)
	return &err
}

func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		schemaLoader: gojsonschema.NewStringLoader(configUpdateSchema),
	}
}

func (cv *ConfigValidator) ValidateConfigUpdate(updateStr string) (*[]ConfigValidationErrors, bool) {
	updateLoader := gojsonschema.NewStringLoader(updateStr)

	result, err := gojsonschema.Validate(cv.schemaLoader, updateLoader)
	if err != nil {
		resultErrors := []ConfigValidationErrors{
			{Context: "(root)", Description: err.Error()},
		}
		return &resultErrors, false
	}

	if !result.Valid() {
		return getErrorsObject(result.Errors()), false
	}

	update := models.ConfigUpdate{}
	err = json.Unmarshal([]byte(updateStr), &update)
	if err != nil {
		resultErrors := []ConfigValidationErrors{
			{Context: "(root)", Description: err.Error()},
		}
		return &resultErrors, false
	}

	cv.validateAttributes(&update, result)

	if len(result.Errors()) > 0 {
		return getErrorsObject(result.Errors()), false
	}
	return nil, true
}

func (cv *ConfigValidator) validateAttributes(update *models.ConfigUpdate, result *gojsonschema.Result) {
	rootContext := gojsonschema.NewJsonContext("(root)", nil)

	// the schema cannot catch duplicate namespaces
	namespacesContext := gojsonschema.NewJsonContext("namespaces", rootContext)
	seen := make(map[string]bool)
	for _, namespace := range update.Namespaces {
		if seen[namespace] {
			errDetails := gojsonschema.ErrorDetails{
				"namespace": namespace,
			}
			formatString := "namespaces contains duplicate entry {{.namespace}}"
			err := newConfigValidationError(namespacesContext, formatString, errDetails)
			result.AddError(err, errDetails)
		}
		seen[namespace] = true
	}
}

func getErrorsObject(resErrs []gojsonschema.ResultError) *[]ConfigValidationErrors {
	var resultErrors []ConfigValidationErrors
	for _, resErr := range resErrs {
		resultErrors = append(resultErrors, ConfigValidationErrors{
			Context:     resErr.Context().String(),
			Description: resErr.Description(),
		})
	}
	return &resultErrors
}

package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// ValidationError はスキーマ違反の一件
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult はスキーマ検証の結果
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) String() string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateWithSchema は設定ファイルの内容をJSON Schemaで検証する
// 構文エラーも検証結果として返し、error は形式が未対応の場合などに限る
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	data, err := decode(path, content)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: err.Error(),
		})
		return result, nil
	}
	// 空のファイルは既定値のまま
	if data == nil {
		return result, nil
	}

	validationResult, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if !validationResult.Valid() {
		result.Valid = false
		for _, e := range validationResult.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   e.Field(),
				Message: e.Description(),
			})
		}
	}
	return result, nil
}

// decode は設定ファイルをスキーマ検証できる汎用の値に変換する
func decode(path string, content []byte) (any, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		var data map[string]any
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("invalid YAML syntax: %w", err)
		}
		if data == nil {
			return nil, nil
		}
		return data, nil
	case ".toml", ".json":
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		data, err := parser.Unmarshal(content)
		if err != nil {
			return nil, fmt.Errorf("invalid %s syntax: %w", strings.ToUpper(strings.TrimPrefix(ext, ".")), err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "history"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return DefaultMaxLogFiles
			case "parallelism":
				return DefaultParallelism
			case "stage_timeout_seconds":
				return 60
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "artifact_name":
			return "output.o"
		case "compiler":
			return "~/src/sushi/build/sushi"
		case "executable_name":
			return "test"
		case "harness":
			return "~/src/sushi/test/clang_harness/clang_harness.cpp"
		case "toolchain":
			return "clang++"
		case "workspace_root":
			return "/tmp/sushitest"
		default:
			return "example"
		}
	case reflect.Slice:
		if fieldName == "suite_paths" {
			return []string{"~/src/sushi/test/suites"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}

// Package config assembles provider configuration maps from environment
// variables, JSON strings, JSON files and key=value pairs.
package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"
)

// ParseKV parses a key=value pair, attempting type inference for the value
func ParseKV(kvPair string) (string, any, error) {
	parts := strings.SplitN(kvPair, "=", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid format, expected key=value: %s", kvPair)
	}

	key := strings.TrimSpace(parts[0])
	if key == "" {
		return "", nil, fmt.Errorf("empty key in key=value pair")
	}

	valueStr := strings.TrimSpace(parts[1])

	// Try to parse as integer first (to avoid "1" being parsed as boolean true)
	if intVal, err := strconv.Atoi(valueStr); err == nil {
		return key, intVal, nil
	}

	// Try to parse as float
	if floatVal, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return key, floatVal, nil
	}

	// Try to parse as boolean (only for explicit "true"/"false" strings)
	if valueStr == "true" || valueStr == "false" {
		boolVal, _ := strconv.ParseBool(valueStr)
		return key, boolVal, nil
	}

	// Return as string
	return key, valueStr, nil
}

// ParseJSON parses a JSON object string into a map
func ParseJSON(jsonStr string) (map[string]any, error) {
	var result map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return result, nil
}

// ParseFile reads and parses a JSON object from a file
func ParseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("invalid JSON in file: %w", err)
	}
	return result, nil
}

// ParseEnvWithPrefix parses environment variables with the given prefix.
// PREFIX itself may hold a JSON object; PREFIX_* variables hold single
// values with type inference applied.
func ParseEnvWithPrefix(prefix string) map[string]any {
	result := make(map[string]any)

	if jsonStr := os.Getenv(prefix); jsonStr != "" {
		if parsed, err := ParseJSON(jsonStr); err == nil {
			maps.Copy(result, parsed)
		}
	}

	envPrefix := prefix + "_"
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				key := strings.ToLower(strings.TrimPrefix(parts[0], envPrefix))
				// Apply type inference to env var values
				_, value, _ := ParseKV(key + "=" + parts[1])
				result[key] = value
			}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// Merge merges configuration maps; later sources override earlier ones
func Merge(configs ...map[string]any) map[string]any {
	result := make(map[string]any)
	for _, cfg := range configs {
		maps.Copy(result, cfg)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// BuildWithPrefix builds a configuration map from all sources.
// Precedence: env < file < JSON string < key=value pairs.
func BuildWithPrefix(envPrefix, jsonStr string, kvPairs []string, filePath string) (map[string]any, error) {
	var configs []map[string]any

	if envCfg := ParseEnvWithPrefix(envPrefix); envCfg != nil {
		configs = append(configs, envCfg)
	}

	if filePath != "" {
		fileCfg, err := ParseFile(filePath)
		if err != nil {
			return nil, err
		}
		configs = append(configs, fileCfg)
	}

	if jsonStr != "" {
		jsonCfg, err := ParseJSON(jsonStr)
		if err != nil {
			return nil, err
		}
		configs = append(configs, jsonCfg)
	}

	if len(kvPairs) > 0 {
		kvCfg := make(map[string]any)
		for _, kv := range kvPairs {
			key, value, err := ParseKV(kv)
			if err != nil {
				return nil, err
			}
			kvCfg[key] = value
		}
		configs = append(configs, kvCfg)
	}

	return Merge(configs...), nil
}

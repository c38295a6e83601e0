package domain

import "fmt"

// ValidateMetadata checks that every metadata value belongs to the
// closed set of allowed leaf types: strings, booleans, numbers, string
// slices, and a single nested level of string-to-string maps. Anything
// else (deeper nesting, arbitrary structs, nil values) is rejected so
// that untyped data never propagates past the boundary.
func ValidateMetadata(metadata map[string]any) error {
	for key, value := range metadata {
		if key == "" {
			return fmt.Errorf("%w: empty key", ErrInvalidMetadata)
		}
		if err := validateMetadataValue(key, value); err != nil {
			return err
		}
	}
	return nil
}

func validateMetadataValue(key string, value any) error {
	switch v := value.(type) {
	case string, bool, int, int32, int64, float32, float64:
		return nil
	case []string:
		return nil
	case []any:
		for _, elem := range v {
			if _, ok := elem.(string); !ok {
				return fmt.Errorf("%w: key %q holds a non-string list element",
					ErrInvalidMetadata, key)
			}
		}
		return nil
	case map[string]string:
		return nil
	case map[string]any:
		for nestedKey, nested := range v {
			switch nested.(type) {
			case string, bool, int, int32, int64, float32, float64:
			default:
				return fmt.Errorf("%w: key %q nests a non-scalar under %q",
					ErrInvalidMetadata, key, nestedKey)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: key %q holds unsupported type %T",
			ErrInvalidMetadata, key, value)
	}
}

package cli

import (
	"encoding/json"
	"fmt"
)

// parseValue interprets a CLI argument as a JSON value (numbers, strings,
// booleans, null, arrays, objects). Arguments that do not parse as JSON are
// taken as plain strings, so `sqlist push hello` works without quoting.
func parseValue(arg string) any {
	var value any

	err := json.Unmarshal([]byte(arg), &value)
	if err != nil {
		return arg
	}

	return value
}

// parseValues maps parseValue over a list of arguments.
func parseValues(args []string) []any {
	values := make([]any, 0, len(args))
	for _, arg := range args {
		values = append(values, parseValue(arg))
	}

	return values
}

// formatValue renders a decoded element as JSON for display.
func formatValue(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

package utils

import "encoding/json"

// PrettyJson serializa um valor com indentação para logs de depuração.
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}
	return string(buffer)
}

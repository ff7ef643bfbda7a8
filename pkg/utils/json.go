package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa o valor com indentação; bytes são tratados como JSON já serializado
func PrettyJson(in any) (string, error) {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return "", err
		}
		in = decoded
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}

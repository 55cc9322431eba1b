// FILE: internal/dto/string_list.go
package dto

import "encoding/json"

// StringList accepts either a single JSON string or an array of strings.
// The send endpoint historically allowed both shapes for the "to" field.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

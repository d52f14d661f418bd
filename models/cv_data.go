package models

import "strings"

// CVData is the downloadable CV. Base64 carries a complete data URL, not bare base64.
type CVData struct {
	Name   string `json:"name"`
	Base64 string `json:"base64"`
	Type   string `json:"type"`
}

func (c CVData) Validate() error {
	if c.Name == "" {
		return missingField("name")
	}
	if !strings.HasPrefix(c.Base64, "data:") {
		return invalidField("base64", "expected a data URL")
	}
	return nil
}

package v1

import (
	"encoding/json"
)

// Text is raw user input. JSON strings and numbers are both accepted
// so that amounts like "12,50" and 12.5 can be sent.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*t = Text(n.String())
	return nil
}

// Message is a translated notice about a successful operation.
type Message struct {
	Message string `json:"message" example:"Ausgabe hinzugefügt."`
}

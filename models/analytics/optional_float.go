package analytics

import (
	"encoding/json"
	"fmt"
)

// OptionalFloat marks a value that may be undefined, such as the mean of an empty sample.
type OptionalFloat struct {
	Value float64
	Valid bool
}

func SomeFloat(value float64) OptionalFloat {
	return OptionalFloat{Value: value, Valid: true}
}

func NoFloat() OptionalFloat {
	return OptionalFloat{}
}

func (o OptionalFloat) Get() (float64, bool) {
	return o.Value, o.Valid
}

func (o OptionalFloat) String() string {
	if !o.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.6f", o.Value)
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = NoFloat()
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = SomeFloat(value)
	return nil
}

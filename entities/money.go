package entities

import (
	"encoding/json"
	"fmt"
	"math"
)

// Money is an amount in minor units (1/100 of the catalog currency).
type Money int64

func NewMoney(major float64) Money {
	return Money(math.Round(major * 100))
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = NewMoney(f)
	return nil
}

package config

import (
	"fmt"
	"time"

	json "github.com/json-iterator/go"
)

// Duration is a time.Duration that is written in config files as a string accepted by
// time.ParseDuration, e.g. "90s" or "1m30s". A bare JSON number is taken as nanoseconds,
// as time.Duration itself is encoded.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}

		parsed, err := time.ParseDuration(str)
		if err != nil {
			return fmt.Errorf("duration: %w", err)
		}

		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return fmt.Errorf("duration: want a string like \"90s\" or integer nanoseconds: %w", err)
	}

	*d = Duration(ns)
	return nil
}

package config

import (
	"fmt"
	"strconv"
)

// configSetter applies file and env values while respecting flag precedence.
// A value is applied only if the corresponding flag was not explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses an env-style bool. Empty means unset.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}

// setCaseMode sets the case mode if not empty and flag not changed.
func (s *configSetter) setCaseMode(flag, value string, dst *CaseMode) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = CaseMode(value)
}

// setColorMode sets the color mode if not empty and no color flag was given.
func (s *configSetter) setColorMode(value string, dst *ColorMode) {
	if value == "" || s.changed["color"] || s.changed["no-color"] {
		return
	}
	*dst = ColorMode(value)
}

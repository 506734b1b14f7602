// Package prefio moves stable marriage instances in and out of files: preference tables as CSV,
// whole instances as JSON or YAML.
package prefio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/stablemarriage/pkg/marriage"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Instance is a stable marriage problem as stored in a file. Omitted tables are randomised by Session.
type Instance struct {
	Group1   []string            `mapstructure:"group1"`
	Group2   []string            `mapstructure:"group2"`
	Pref1    map[string][]string `mapstructure:"pref1"`
	Pref2    map[string][]string `mapstructure:"pref2"`
	Matching map[string]string   `mapstructure:"matching"`
}

// InstanceFromFile decodes a ".json", ".yaml" or ".yml" instance file.
func InstanceFromFile(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &inputMap)
	case ".json":
		err = json.Unmarshal(bytes, &inputMap)
	default:
		return Instance{}, fmt.Errorf("unsupported instance format %q", filepath.Ext(file))
	}
	if err != nil {
		return Instance{}, fmt.Errorf("cannot parse instance file: %w", err)
	}

	return DecodeInstance(inputMap)
}

// DecodeInstance decodes an instance from its generic map form.
func DecodeInstance(inputMap map[string]any) (Instance, error) {
	var instance Instance
	if err := mapstructure.Decode(inputMap, &instance); err != nil {
		return Instance{}, fmt.Errorf("cannot decode instance: %w", err)
	}
	return instance, nil
}

// Session validates the instance and turns it into a marriage.Session.
func (instance Instance) Session(opts ...marriage.Option) (*marriage.Session, error) {
	if instance.Pref1 != nil || instance.Pref2 != nil {
		opts = append(opts, marriage.WithPreferences(instance.Pref1, instance.Pref2))
	}
	if instance.Matching != nil {
		opts = append(opts, marriage.WithMatching(instance.Matching))
	}
	return marriage.New(instance.Group1, instance.Group2, opts...)
}

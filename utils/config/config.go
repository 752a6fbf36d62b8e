// Package config loads a prince.Config from a YAML file, the way the CLI's
// --config flag lets a long-running job pin its parameters outside of shell
// flags. Skip and Limit are carried as decimal strings since YAML numbers
// don't hold 128 bits.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elementchain/prince/prince"
	"github.com/elementchain/prince/utils/u128"
)

// FileConfig is the on-disk shape of a config file.
type FileConfig struct {
	PwMin      int    `yaml:"pw_min"`
	PwMax      int    `yaml:"pw_max"`
	ElemCntMin int    `yaml:"elem_cnt_min"`
	ElemCntMax int    `yaml:"elem_cnt_max"`
	WlDistLen  bool   `yaml:"wl_dist_len"`
	Skip       string `yaml:"skip"`
	Limit      string `yaml:"limit"`

	Wordlist string `yaml:"wordlist"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader parses a YAML config from r.
func LoadReader(r io.Reader) (FileConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return FileConfig{}, fmt.Errorf("config: read: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("config: parse: %w", err)
	}
	return fc, nil
}

// ToConfig converts fc into a prince.Config, defaulting empty skip/limit
// strings to zero. PwMin, PwMax, ElemCntMin and ElemCntMax default to
// DefaultConfig's values when the file leaves them at the YAML zero value,
// so a minimal config file doesn't have to restate every bound. It does not
// validate the bounds; NewEngine does.
func (fc FileConfig) ToConfig() (prince.Config, error) {
	def := prince.DefaultConfig()
	cfg := prince.Config{
		PwMin:      fc.PwMin,
		PwMax:      fc.PwMax,
		ElemCntMin: fc.ElemCntMin,
		ElemCntMax: fc.ElemCntMax,
		WlDistLen:  fc.WlDistLen,
	}
	if cfg.PwMin == 0 {
		cfg.PwMin = def.PwMin
	}
	if cfg.PwMax == 0 {
		cfg.PwMax = def.PwMax
	}
	if cfg.ElemCntMin == 0 {
		cfg.ElemCntMin = def.ElemCntMin
	}
	if cfg.ElemCntMax == 0 {
		cfg.ElemCntMax = def.ElemCntMax
	}

	if fc.Skip != "" {
		skip, err := u128.Parse(fc.Skip)
		if err != nil {
			return prince.Config{}, fmt.Errorf("config: skip: %w", err)
		}
		cfg.Skip = skip
	}
	if fc.Limit != "" {
		limit, err := u128.Parse(fc.Limit)
		if err != nil {
			return prince.Config{}, fmt.Errorf("config: limit: %w", err)
		}
		cfg.Limit = limit
	}
	return cfg, nil
}

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elementchain/prince/prince"
	fileconfig "github.com/elementchain/prince/utils/config"
	"github.com/elementchain/prince/utils/u128"
	"github.com/elementchain/prince/utils/wordlist"
)

// addConfigFlags registers the flags shared by every subcommand that builds
// a prince.Config: the bounds, the distribution mode, and the keyspace
// window. Flags default to the Go zero value rather than DefaultConfig's
// values so loadStoreAndConfig can tell "not set" apart from "set to zero".
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Int("pw-min", 0, "minimum candidate length")
	cmd.Flags().Int("pw-max", 0, "maximum candidate length")
	cmd.Flags().Int("elem-cnt-min", 0, "minimum elements per chain")
	cmd.Flags().Int("elem-cnt-max", 0, "maximum elements per chain")
	cmd.Flags().Bool("wl-dist-len", false, "derive the length distribution from the dictionary instead of the baked-in table")
	cmd.Flags().String("skip", "", "global keyspace position to start at (decimal)")
	cmd.Flags().String("limit", "", "maximum number of candidates to emit (decimal, 0 = unlimited)")
}

// loadStoreAndConfig assembles a Config from, in increasing precedence, the
// engine defaults, the --config file, and explicitly-set flags, then loads
// --wordlist into a Store.
func loadStoreAndConfig(cmd *cobra.Command) (*prince.Store, prince.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, prince.Config{}, fmt.Errorf("princegen: binding flags: %w", err)
	}

	cfg := prince.DefaultConfig()
	if path := v.GetString("config"); path != "" {
		fc, err := fileconfig.Load(path)
		if err != nil {
			return nil, prince.Config{}, err
		}
		cfg, err = fc.ToConfig()
		if err != nil {
			return nil, prince.Config{}, err
		}
	}

	if cmd.Flags().Changed("pw-min") {
		cfg.PwMin = v.GetInt("pw-min")
	}
	if cmd.Flags().Changed("pw-max") {
		cfg.PwMax = v.GetInt("pw-max")
	}
	if cmd.Flags().Changed("elem-cnt-min") {
		cfg.ElemCntMin = v.GetInt("elem-cnt-min")
	}
	if cmd.Flags().Changed("elem-cnt-max") {
		cfg.ElemCntMax = v.GetInt("elem-cnt-max")
	}
	if cmd.Flags().Changed("wl-dist-len") {
		cfg.WlDistLen = v.GetBool("wl-dist-len")
	}
	if cmd.Flags().Changed("skip") {
		skip, err := u128.Parse(v.GetString("skip"))
		if err != nil {
			return nil, prince.Config{}, fmt.Errorf("princegen: --skip: %w", err)
		}
		cfg.Skip = skip
	}
	if cmd.Flags().Changed("limit") {
		limit, err := u128.Parse(v.GetString("limit"))
		if err != nil {
			return nil, prince.Config{}, fmt.Errorf("princegen: --limit: %w", err)
		}
		cfg.Limit = limit
	}

	wordlistPath := v.GetString("wordlist")
	if wordlistPath == "" {
		return nil, prince.Config{}, fmt.Errorf("princegen: --wordlist is required")
	}

	store := prince.NewStore()
	n, err := wordlist.LoadFile(wordlistPath, store)
	if err != nil {
		return nil, prince.Config{}, fmt.Errorf("princegen: loading %s: %w", wordlistPath, err)
	}
	log.Printf("loaded %d elements from %s", n, wordlistPath)

	return store, cfg, nil
}

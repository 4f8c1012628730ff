// File: cmd/slicebench/profile.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"
)

// Profile carries workload parameters. Files are HuJSON: comments and
// trailing commas are allowed and standardized away before decoding.
type Profile struct {
	Producers int    `json:"producers"`
	Appends   int    `json:"appends"`
	BlockCap  int    `json:"block_cap"`
	Backend   string `json:"backend"`
	SlabSize  int    `json:"slab_size"`
	Pin       bool   `json:"pin"`
	Runs      int    `json:"runs"`
	Jitter    int    `json:"jitter"`
}

// loadWorkload resolves the effective workload: flag defaults first,
// then the profile file, then any flag the user set explicitly.
func loadWorkload(fs *pflag.FlagSet) (Profile, error) {
	p := Profile{
		Producers: flagProducers,
		Appends:   flagAppends,
		BlockCap:  flagBlockCap,
		Backend:   flagBackend,
		SlabSize:  flagSlabSize,
		Pin:       flagPin,
		Runs:      flagRuns,
		Jitter:    flagJitter,
	}

	if flagProfile != "" {
		data, err := os.ReadFile(flagProfile)
		if err != nil {
			return Profile{}, fmt.Errorf("profile: %w", err)
		}
		file, err := parseProfile(data)
		if err != nil {
			return Profile{}, fmt.Errorf("profile %s: %w", flagProfile, err)
		}
		p = mergeProfile(p, file)
	}

	// Explicit flags always win over the profile.
	if fs.Changed("producers") {
		p.Producers = flagProducers
	}
	if fs.Changed("appends") {
		p.Appends = flagAppends
	}
	if fs.Changed("blockcap") {
		p.BlockCap = flagBlockCap
	}
	if fs.Changed("backend") {
		p.Backend = flagBackend
	}
	if fs.Changed("slabsize") {
		p.SlabSize = flagSlabSize
	}
	if fs.Changed("pin") {
		p.Pin = flagPin
	}
	if fs.Changed("runs") {
		p.Runs = flagRuns
	}
	if fs.Changed("jitter") {
		p.Jitter = flagJitter
	}

	return p, p.validate()
}

// parseProfile standardizes HuJSON to JSON and decodes it.
func parseProfile(data []byte) (Profile, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Profile{}, fmt.Errorf("invalid HuJSON: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(standardized, &p); err != nil {
		return Profile{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return p, nil
}

// mergeProfile overlays the set fields of overlay onto base.
func mergeProfile(base, overlay Profile) Profile {
	if overlay.Producers > 0 {
		base.Producers = overlay.Producers
	}
	if overlay.Appends > 0 {
		base.Appends = overlay.Appends
	}
	if overlay.BlockCap > 0 {
		base.BlockCap = overlay.BlockCap
	}
	if overlay.Backend != "" {
		base.Backend = overlay.Backend
	}
	if overlay.SlabSize > 0 {
		base.SlabSize = overlay.SlabSize
	}
	if overlay.Pin {
		base.Pin = true
	}
	if overlay.Runs > 0 {
		base.Runs = overlay.Runs
	}
	if overlay.Jitter > 0 {
		base.Jitter = overlay.Jitter
	}
	return base
}

func (p Profile) validate() error {
	if p.Backend != "raw" && p.Backend != "heap" {
		return fmt.Errorf("backend %q: want raw or heap", p.Backend)
	}
	if p.Producers < 1 || p.Appends < 1 || p.Runs < 1 {
		return fmt.Errorf("producers, appends and runs must be positive")
	}
	if p.BlockCap < 1 {
		return fmt.Errorf("blockcap must be positive")
	}
	return nil
}

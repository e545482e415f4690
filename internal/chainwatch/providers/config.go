// Package providers builds chain providers from the chains file.
package providers

import (
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
	"gopkg.in/yaml.v3"
)

// ChainConfig describes one chain parser.
type ChainConfig struct {
	Chain          model.Chain `yaml:"chain"`
	URL            string      `yaml:"url"`
	StartBlock     int64       `yaml:"start_block"`
	AwaitBlocks    int64       `yaml:"await_blocks"`
	ParallelBlocks int64       `yaml:"parallel_blocks"`
	RPS            float64     `yaml:"rps"`
	ChainID        int64       `yaml:"chain_id"`
	Network        string      `yaml:"network"`
	User           string      `yaml:"user"`
	Password       string      `yaml:"password"`
}

type chainsFile struct {
	Chains []ChainConfig `yaml:"chains"`
}

// LoadChains reads and validates the YAML chains file.
func LoadChains(path string) ([]ChainConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chains file: %w", err)
	}
	return ParseChains(raw)
}

// ParseChains decodes and validates chain entries.
func ParseChains(raw []byte) ([]ChainConfig, error) {
	var file chainsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode chains file: %w", err)
	}
	if len(file.Chains) == 0 {
		return nil, errors.New("chains file lists no chains")
	}

	seen := make(map[model.Chain]struct{}, len(file.Chains))
	for i := range file.Chains {
		cfg := &file.Chains[i]
		if _, err := model.ParseChain(string(cfg.Chain)); err != nil {
			return nil, fmt.Errorf("chains[%d]: %w", i, err)
		}
		if _, dup := seen[cfg.Chain]; dup {
			return nil, fmt.Errorf("chains[%d]: duplicate chain %s", i, cfg.Chain)
		}
		seen[cfg.Chain] = struct{}{}
		if cfg.URL == "" {
			return nil, fmt.Errorf("chains[%d]: url is required", i)
		}
		if cfg.StartBlock < 0 || cfg.AwaitBlocks < 0 {
			return nil, fmt.Errorf("chains[%d]: start_block and await_blocks must not be negative", i)
		}
		if cfg.ParallelBlocks == 0 {
			cfg.ParallelBlocks = defaultParallelBlocks
		}
		if cfg.ParallelBlocks < 0 {
			return nil, fmt.Errorf("chains[%d]: parallel_blocks must be positive", i)
		}
		if cfg.Chain == model.Ethereum && cfg.ChainID == 0 {
			cfg.ChainID = 1
		}
	}
	return file.Chains, nil
}

// InitialState is the progress record created the first time the chain is parsed.
func (c ChainConfig) InitialState() model.ParserState {
	return model.ParserState{
		Chain:          c.Chain,
		CurrentBlock:   c.StartBlock,
		LatestBlock:    c.StartBlock,
		AwaitBlocks:    c.AwaitBlocks,
		ParallelBlocks: c.ParallelBlocks,
	}
}

package model

import "time"

// ParserState is the persisted progress record of one chain parser.
type ParserState struct {
	Chain          Chain
	CurrentBlock   int64
	LatestBlock    int64
	AwaitBlocks    int64
	ParallelBlocks int64
	UpdatedAt      time.Time
}

// IsAhead reports whether no block is safely behind the head yet.
func (s ParserState) IsAhead(latest int64) bool {
	return s.CurrentBlock+s.AwaitBlocks >= latest
}

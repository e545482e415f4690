package parser

import "github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"

// Window is the half-open block range [Start, End).
type Window struct {
	Start int64
	End   int64
}

// NextWindow returns the blocks to process after state.CurrentBlock: at most
// ParallelBlocks of them, and none at or past LatestBlock-AwaitBlocks.
func NextWindow(state model.ParserState) Window {
	parallel := state.ParallelBlocks
	if parallel < 1 {
		parallel = 1
	}
	start := state.CurrentBlock + 1
	end := min(start+parallel, state.LatestBlock-state.AwaitBlocks)
	if end < start {
		end = start
	}
	return Window{Start: start, End: end}
}

func (w Window) Len() int {
	return int(w.End - w.Start)
}

func (w Window) Empty() bool {
	return w.End <= w.Start
}

// Last is the highest block in the window.
func (w Window) Last() int64 {
	return w.End - 1
}

func (w Window) Blocks() []int64 {
	blocks := make([]int64, 0, w.Len())
	for b := w.Start; b < w.End; b++ {
		blocks = append(blocks, b)
	}
	return blocks
}

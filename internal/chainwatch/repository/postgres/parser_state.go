package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainwatch-backend/internal/chainwatch/model"
)

// InitParserState stores state unless the chain already has a progress record.
func (r *Repository) InitParserState(ctx context.Context, state model.ParserState) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("init_parser_state", state.Chain, err, start)
	}()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO parser_state (chain, current_block, latest_block, await_blocks, parallel_blocks)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (chain) DO NOTHING
	`, string(state.Chain), state.CurrentBlock, state.LatestBlock, state.AwaitBlocks, state.ParallelBlocks)
	if err != nil {
		return fmt.Errorf("init parser state: %w", err)
	}
	return nil
}

func (r *Repository) ParserState(ctx context.Context, chain model.Chain) (state model.ParserState, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("parser_state", chain, err, start)
	}()

	var name string
	err = r.db.QueryRowContext(ctx, `
		SELECT chain, current_block, latest_block, await_blocks, parallel_blocks, updated_at
		FROM parser_state
		WHERE chain = $1
	`, string(chain)).Scan(
		&name, &state.CurrentBlock, &state.LatestBlock,
		&state.AwaitBlocks, &state.ParallelBlocks, &state.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ParserState{}, fmt.Errorf("get parser state %s: %w", chain, model.ErrNotFound)
	}
	if err != nil {
		return model.ParserState{}, fmt.Errorf("get parser state: %w", err)
	}
	state.Chain = model.Chain(name)
	return state, nil
}

func (r *Repository) SetLatestBlock(ctx context.Context, chain model.Chain, block int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("set_latest_block", chain, err, start)
	}()

	err = r.update(ctx, `
		UPDATE parser_state SET latest_block = $2, updated_at = now()
		WHERE chain = $1
	`, chain, block)
	if err != nil {
		return fmt.Errorf("set latest block: %w", err)
	}
	return nil
}

// SetCurrentBlock advances the progress cursor. A lower block never moves it back.
func (r *Repository) SetCurrentBlock(ctx context.Context, chain model.Chain, block int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("set_current_block", chain, err, start)
	}()

	err = r.update(ctx, `
		UPDATE parser_state SET current_block = GREATEST(current_block, $2), updated_at = now()
		WHERE chain = $1
	`, chain, block)
	if err != nil {
		return fmt.Errorf("set current block: %w", err)
	}
	return nil
}

func (r *Repository) update(ctx context.Context, query string, chain model.Chain, block int64) error {
	res, err := r.db.ExecContext(ctx, query, string(chain), block)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("parser state %s: %w", chain, model.ErrNotFound)
	}
	return nil
}

// ParserStates returns the progress records of all chains ordered by chain.
func (r *Repository) ParserStates(ctx context.Context) (states []model.ParserState, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("parser_states", "", err, start)
	}()

	rows, err := r.db.QueryContext(ctx, `
		SELECT chain, current_block, latest_block, await_blocks, parallel_blocks, updated_at
		FROM parser_state
		ORDER BY chain
	`)
	if err != nil {
		return nil, fmt.Errorf("query parser states: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s    model.ParserState
			name string
		)
		if err = rows.Scan(&name, &s.CurrentBlock, &s.LatestBlock, &s.AwaitBlocks, &s.ParallelBlocks, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan parser state: %w", err)
		}
		s.Chain = model.Chain(name)
		states = append(states, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parser states: %w", err)
	}
	return states, nil
}

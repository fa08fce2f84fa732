package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"llmsbrowse/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// LoadedMsg delivers a loaded collection to the pane that asked for it.
// Seq lets the pane drop results of loads it has since superseded.
type LoadedMsg[T any] struct {
	Owner string
	Seq   uint64
	Items []T
	Err   error
}

// LoadFunc reads a collection from its source
type LoadFunc[T any] func(ctx context.Context) ([]T, error)

// LoadCommand loads a collection off the update loop
type LoadCommand[T any] struct {
	ctx   context.Context
	owner string
	seq   uint64
	load  LoadFunc[T]
	bus   eventbus.EventBus
}

// NewLoadCommand creates a load command. bus may be nil.
func NewLoadCommand[T any](ctx context.Context, owner string, seq uint64, load LoadFunc[T], bus eventbus.EventBus) *LoadCommand[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &LoadCommand[T]{ctx: ctx, owner: owner, seq: seq, load: load, bus: bus}
}

// Execute returns the command that performs the load
func (c *LoadCommand[T]) Execute() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		items, err := c.load(c.ctx)
		if err != nil {
			log.Error().Err(err).Str("owner", c.owner).Msg("failed to load collection")
			if c.bus != nil {
				c.bus.Publish(eventbus.ErrorEvent{
					Source:  c.owner,
					Message: "failed to load " + c.owner,
					Err:     err,
				})
			}
			return LoadedMsg[T]{Owner: c.owner, Seq: c.seq, Err: err}
		}
		log.Info().
			Str("owner", c.owner).
			Int("items", len(items)).
			Dur("took", time.Since(start)).
			Msg("collection loaded")
		return LoadedMsg[T]{Owner: c.owner, Seq: c.seq, Items: items}
	}
}

package bot

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/internal/randutil"
)

// ErrUnknownAgent is returned when no agent is registered under a name.
var ErrUnknownAgent = errors.New("unknown agent")

// Options are passed to agent factories.
type Options struct {
	RNG     *rand.Rand
	Logger  *log.Logger
	Samples int // Monte Carlo samples per decision, for agents that estimate equity
}

// Factory builds a fresh agent.
type Factory func(Options) game.Agent

// Info describes a registered agent.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	info    Info
	factory Factory
}

var (
	mu       sync.RWMutex
	registry = map[string]entry{}
)

func init() {
	Register("fold", "folds whenever it owes chips, otherwise checks", func(o Options) game.Agent {
		return NewFoldBot(o.Logger)
	})
	Register("call", "calls every bet", func(o Options) game.Agent {
		return NewCallBot(o.Logger)
	})
	Register("raise", "raises to the cap at every opportunity", func(o Options) game.Agent {
		return NewRaiseBot(o.Logger)
	})
	Register("random", "picks fold, call or bet uniformly at random", func(o Options) game.Agent {
		return NewRandBot(o.RNG, o.Logger)
	})
	Register("equity", "bets, calls or folds on Monte Carlo showdown equity", func(o Options) game.Agent {
		return NewEquityBot(o.RNG, o.Logger, o.Samples)
	})
}

// Register adds a factory under name. It panics if name is taken.
func Register(name, description string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("agent %q registered twice", name))
	}
	registry[name] = entry{info: Info{Name: name, Description: description}, factory: factory}
}

// New builds the agent registered under name. A nil RNG is seeded from
// the clock and a nil logger discards output.
func New(name string, opts Options) (game.Agent, error) {
	mu.RLock()
	e, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
	}

	if opts.RNG == nil {
		opts.RNG = randutil.New(time.Now().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return e.factory(opts), nil
}

// List returns every registered agent sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Info, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

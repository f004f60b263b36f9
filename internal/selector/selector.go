// Package selector implements the client selection modal: it loads the
// client list from the backend every time it opens, filters it in memory and
// reports the picked client to its parent view.
package selector

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"comodatos-admin/internal/models"
)

var (
	ErrSelectorClosed  = errors.New("selector is not open or still loading")
	ErrClienteNotFound = errors.New("cliente is not in the current list")
)

// FetchErrorNotice is shown to the user when the client list cannot be loaded.
const FetchErrorNotice = "Error al cargar los clientes"

const defaultFetchTimeout = 10 * time.Second

// ClienteFetcher loads the full client collection from the backend.
type ClienteFetcher interface {
	ListClientes(ctx context.Context) ([]models.Cliente, error)
}

// Metrics is the subset of the metrics recorder the selector reports to.
type Metrics interface {
	IncrementCounter(name string, tags map[string]string)
}

// Options configures a Selector. Zero values fall back to defaults.
type Options struct {
	// ShowSelected renders the summary card of the chosen client.
	ShowSelected bool
	// PlaceholderLogo replaces a missing client logo.
	PlaceholderLogo string
	// NewClientRoute is where the "Nuevo Cliente" action navigates when no
	// OnAddClient callback is set.
	NewClientRoute string
	FetchTimeout   time.Duration

	OnSelect    func(id int64)
	OnAddClient func()
}

// State is a point-in-time copy of the selector, safe to render.
type State struct {
	Open            bool
	Loading         bool
	Generation      uint64
	Search          string
	Clientes        []models.Cliente
	Filtered        []models.Cliente
	Selected        *models.Cliente
	ShowSelected    bool
	Notice          string
	PlaceholderLogo string
}

// ShowSummary reports whether the selected client's card should be rendered.
func (s State) ShowSummary() bool {
	return s.ShowSelected && s.Selected != nil
}

// Selector is one session's client picker, holding the modal state and the
// fetched client list. Methods are safe for concurrent use. List fetches run
// in the background and a response is applied only if its generation is
// still current.
type Selector struct {
	fetcher ClienteFetcher
	logger  *slog.Logger
	metrics Metrics
	opts    Options

	mu         sync.Mutex
	open       bool
	loading    bool
	generation uint64
	cancel     context.CancelFunc
	clientes   []models.Cliente
	filtered   []models.Cliente
	search     string
	selected   *models.Cliente
	notice     string

	inflight sync.WaitGroup
}

// New returns a closed Selector with nothing loaded. FetchTimeout defaults to
// ten seconds and a nil logger to slog.Default.
func New(fetcher ClienteFetcher, logger *slog.Logger, metrics Metrics, opts Options) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}

	return &Selector{
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
		opts:    opts,
	}
}

// Open shows the modal and starts loading the client list in the background.
// Only a closed-to-open transition fetches; calling Open on an open modal is a
// no-op. It returns the generation tag of the active fetch.
func (s *Selector) Open(ctx context.Context) uint64 {
	s.mu.Lock()
	if s.open {
		gen := s.generation
		s.mu.Unlock()
		return gen
	}

	s.cancelInflightLocked()
	s.generation++
	gen := s.generation
	s.open = true
	s.loading = true
	s.notice = ""
	s.search = ""
	s.clientes = nil
	s.filtered = nil

	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.FetchTimeout)
	s.cancel = cancel
	s.inflight.Add(1)
	s.mu.Unlock()

	go s.fetch(fetchCtx, cancel, gen)
	return gen
}

func (s *Selector) fetch(ctx context.Context, cancel context.CancelFunc, gen uint64) {
	defer s.inflight.Done()
	defer cancel()

	start := time.Now()
	clientes, err := s.fetcher.ListClientes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("discarding superseded clientes response",
			"generation", gen,
			"current_generation", s.generation,
		)
		s.count("discarded")
		return
	}

	s.loading = false
	s.cancel = nil

	if err != nil {
		s.logger.Error("Error fetching clients",
			"error", err,
			"generation", gen,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		s.notice = FetchErrorNotice
		s.clientes = nil
		s.filtered = nil
		s.count("failed")
		return
	}

	s.clientes = clientes
	s.filtered = Filter(clientes, s.search)
	s.count("success")
}

// Close hides the modal. Any fetch still in flight is cancelled and its
// response ignored.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *Selector) closeLocked() {
	if !s.open {
		return
	}
	s.open = false
	s.loading = false
	s.generation++
	s.cancelInflightLocked()
}

func (s *Selector) cancelInflightLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Search narrows the fetched list to names containing text, ignoring case.
func (s *Selector) Search(text string) []models.Cliente {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = text
	s.filtered = Filter(s.clientes, text)
	return append([]models.Cliente(nil), s.filtered...)
}

// Select picks a client from the visible list: the parent's callback gets its
// id, the client becomes the displayed selection and the modal closes.
func (s *Selector) Select(id int64) (models.Cliente, error) {
	s.mu.Lock()
	if !s.open || s.loading {
		s.mu.Unlock()
		return models.Cliente{}, ErrSelectorClosed
	}

	var chosen *models.Cliente
	for i := range s.filtered {
		if s.filtered[i].ID == id {
			c := s.filtered[i]
			chosen = &c
			break
		}
	}
	if chosen == nil {
		s.mu.Unlock()
		return models.Cliente{}, ErrClienteNotFound
	}

	s.selected = chosen
	s.closeLocked()
	onSelect := s.opts.OnSelect
	s.mu.Unlock()

	s.count("selected")
	if onSelect != nil {
		onSelect(id)
	}
	return *chosen, nil
}

// NewClient runs the "Nuevo Cliente" action. With an OnAddClient callback the
// callback handles it and the returned route is empty; otherwise the caller
// must navigate to the returned route. The modal closes either way.
func (s *Selector) NewClient() string {
	s.mu.Lock()
	s.closeLocked()
	onAdd := s.opts.OnAddClient
	route := s.opts.NewClientRoute
	s.mu.Unlock()

	if onAdd != nil {
		onAdd()
		return ""
	}
	return route
}

// Snapshot copies the current state. The returned slices are not shared
// with the selector.
func (s *Selector) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Open:            s.open,
		Loading:         s.loading,
		Generation:      s.generation,
		Search:          s.search,
		Clientes:        append([]models.Cliente(nil), s.clientes...),
		Filtered:        append([]models.Cliente(nil), s.filtered...),
		ShowSelected:    s.opts.ShowSelected,
		Notice:          s.notice,
		PlaceholderLogo: s.opts.PlaceholderLogo,
	}
	if s.selected != nil {
		c := *s.selected
		st.Selected = &c
	}
	return st
}

// Wait blocks until every fetch started so far has finished.
func (s *Selector) Wait() {
	s.inflight.Wait()
}

func (s *Selector) count(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("selector_event", map[string]string{"outcome": outcome})
}

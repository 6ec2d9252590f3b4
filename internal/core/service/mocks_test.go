package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
)

var errStoreDown = errors.New("store down")

type stockRow struct {
	id       int64
	model    string
	size     int
	color    string
	quantity int
}

type cartCall struct {
	customerID  int64
	target      domain.OrderTarget
	inventoryID int64
}

// Mock store backing all three repositories
type mockStore struct {
	customers []domain.Customer
	stock     []stockRow

	failQueries bool
	failCart    bool

	queries int
	carts   []cartCall
	mu      sync.Mutex
}

func newMockStore() *mockStore {
	return &mockStore{
		customers: []domain.Customer{
			{ID: 1, Name: "anna", Password: "secret"},
			{ID: 2, Name: "bertil", Password: "hunter2"},
		},
		stock: []stockRow{
			{id: 10, model: "Runner", size: 42, color: "Black", quantity: 3},
			{id: 11, model: "Runner", size: 42, color: "White", quantity: 0},
			{id: 12, model: "Runner", size: 43, color: "Black", quantity: 1},
			{id: 13, model: "Trail", size: 40, color: "Red", quantity: 2},
		},
	}
}

func (m *mockStore) query() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries++
	if m.failQueries {
		return errStoreDown
	}
	return nil
}

func (m *mockStore) queryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queries
}

func (m *mockStore) CustomerExists(ctx context.Context, name, password string) (bool, error) {
	if err := m.query(); err != nil {
		return false, err
	}
	for _, c := range m.customers {
		if c.Name == name && c.Password == password {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) CustomerID(ctx context.Context, name string) (int64, bool, error) {
	if err := m.query(); err != nil {
		return 0, false, err
	}
	for _, c := range m.customers {
		if c.Name == name {
			return c.ID, true, nil
		}
	}
	return 0, false, nil
}

func (m *mockStore) Models(ctx context.Context) ([]string, error) {
	if err := m.query(); err != nil {
		return nil, err
	}
	var out []string
	for _, r := range m.stock {
		if !domain.IsValid(out, r.model) {
			out = append(out, r.model)
		}
	}
	return out, nil
}

func (m *mockStore) SizesForModel(ctx context.Context, model string) ([]int, error) {
	if err := m.query(); err != nil {
		return nil, err
	}
	var out []int
	for _, r := range m.stock {
		if r.model == model && !domain.IsValid(out, r.size) {
			out = append(out, r.size)
		}
	}
	return out, nil
}

func (m *mockStore) ColorsForModelAndSize(ctx context.Context, model string, size int) ([]string, error) {
	if err := m.query(); err != nil {
		return nil, err
	}
	var out []string
	for _, r := range m.stock {
		if r.model == model && r.size == size && r.quantity > 0 && !domain.IsValid(out, r.color) {
			out = append(out, r.color)
		}
	}
	return out, nil
}

func (m *mockStore) InventoryID(ctx context.Context, sel domain.Selection) (int64, error) {
	if err := m.query(); err != nil {
		return 0, err
	}
	var ids []int64
	for _, r := range m.stock {
		if r.model == sel.Model && r.size == sel.Size && r.color == sel.Color {
			ids = append(ids, r.id)
		}
	}
	switch len(ids) {
	case 0:
		return 0, domain.ErrProductNotFound
	case 1:
		return ids[0], nil
	default:
		return 0, fmt.Errorf("%w: %d rows", domain.ErrInconsistentInventory, len(ids))
	}
}

func (m *mockStore) AddToCart(ctx context.Context, customerID int64, target domain.OrderTarget, inventoryID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCart {
		return errStoreDown
	}
	m.carts = append(m.carts, cartCall{customerID: customerID, target: target, inventoryID: inventoryID})
	return nil
}

// Mock SubmissionGuard
type mockGuard struct {
	claimed map[string]bool
	err     error
	mu      sync.Mutex
}

func newMockGuard() *mockGuard {
	return &mockGuard{claimed: make(map[string]bool)}
}

func (g *mockGuard) Claim(ctx context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return false, g.err
	}
	if g.claimed[key] {
		return false, nil
	}
	g.claimed[key] = true
	return true, nil
}

// Mock Terminal fed with scripted answers
type mockTerminal struct {
	answers []string
	asked   []string
	lines   []string
}

func newMockTerminal(answers ...string) *mockTerminal {
	return &mockTerminal{answers: answers}
}

func (t *mockTerminal) Ask(label string) (string, error) {
	t.asked = append(t.asked, label)
	if len(t.answers) == 0 {
		return "", io.EOF
	}
	v := t.answers[0]
	t.answers = t.answers[1:]
	return v, nil
}

func (t *mockTerminal) AskSecret(label string) (string, error) {
	return t.Ask(label)
}

func (t *mockTerminal) Say(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/core/domain"
	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/port"
)

// State is a step of the shopping session. States are reached strictly in
// declaration order and never twice.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateModelChosen
	StateSizeChosen
	StateColorChosen
	StateOrderTargetResolved
	StateCompleted
)

var stateNames = [...]string{
	"unauthenticated",
	"authenticated",
	"model_chosen",
	"size_chosen",
	"color_chosen",
	"order_target_resolved",
	"completed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

var (
	ErrLoginFailed     = errors.New("login failed")
	ErrUnknownCustomer = errors.New("customer id could not be resolved")
	ErrInvalidModel    = errors.New("invalid model")
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidColor    = errors.New("invalid color")
	ErrSessionUsed     = errors.New("session already ran")
)

// Session walks one customer from login to a single cart addition.
type Session struct {
	id      string
	auth    *AuthService
	catalog *CatalogService
	orders  *OrderService
	term    port.Terminal
	logger  *slog.Logger

	state      State
	started    bool
	customerID int64
	selection  domain.Selection
	target     domain.OrderTarget
	addition   *domain.CartAddition
}

func NewSession(auth *AuthService, catalog *CatalogService, orders *OrderService, term port.Terminal, logger *slog.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:         id,
		auth:       auth,
		catalog:    catalog,
		orders:     orders,
		term:       term,
		logger:     logger.With("session", id),
		customerID: domain.UnknownCustomerID,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// Addition is the cart addition made by a completed session, nil otherwise.
func (s *Session) Addition() *domain.CartAddition {
	return s.addition
}

// Run executes the session. It returns the last state reached and, when the
// session halted early, the reason. Every halt has already been explained to
// the user on the terminal.
func (s *Session) Run(ctx context.Context) (State, error) {
	if s.started {
		return s.state, ErrSessionUsed
	}
	s.started = true

	steps := []func(context.Context) error{
		s.authenticate,
		s.chooseModel,
		s.chooseSize,
		s.chooseColor,
		s.resolveTarget,
		s.submit,
	}

	for _, step := range steps {
		if err := step(ctx); err != nil {
			s.logger.Info("session halted", "state", s.state.String(), "reason", err)
			return s.state, err
		}
		s.state++
		s.logger.Debug("session advanced", "state", s.state.String())
	}

	return s.state, nil
}

func (s *Session) authenticate(ctx context.Context) error {
	s.term.Say("Log in to continue:")
	username, err := s.ask("Name: ")
	if err != nil {
		return err
	}
	password, err := s.askSecret("Password: ")
	if err != nil {
		return err
	}

	if !s.auth.Login(ctx, username, password) {
		s.term.Say("Login failed. Wrong username or password.")
		return ErrLoginFailed
	}
	s.term.Say("Login successful!")

	id := s.auth.ResolveCustomerID(ctx, username)
	if id == domain.UnknownCustomerID {
		s.term.Say("Could not look up your customer account.")
		return ErrUnknownCustomer
	}
	s.customerID = id
	return nil
}

func (s *Session) chooseModel(ctx context.Context) error {
	models := s.catalog.ListModels(ctx)
	if len(models) == 0 {
		s.term.Say("No shoe models available.")
		return ErrInvalidModel
	}

	s.term.Say("Choose a shoe model:")
	for _, m := range models {
		s.term.Say("%s", m)
	}
	model, err := s.ask("Enter the name of the shoe model: ")
	if err != nil {
		return err
	}
	if !domain.IsValid(models, model) {
		s.term.Say("Invalid model name.")
		return ErrInvalidModel
	}

	s.selection.Model = model
	return nil
}

func (s *Session) chooseSize(ctx context.Context) error {
	sizes := s.catalog.ListSizesForModel(ctx, s.selection.Model)
	if len(sizes) == 0 {
		s.term.Say("No sizes available for %s.", s.selection.Model)
		return ErrInvalidSize
	}

	s.term.Say("Choose a shoe size:")
	for _, sz := range sizes {
		s.term.Say("%d", sz)
	}
	input, err := s.ask("Enter size: ")
	if err != nil {
		return err
	}
	size, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || !domain.IsValid(sizes, size) {
		s.term.Say("Invalid size.")
		return ErrInvalidSize
	}

	s.selection.Size = size
	return nil
}

func (s *Session) chooseColor(ctx context.Context) error {
	colors := s.catalog.ListColorsForModelAndSize(ctx, s.selection.Model, s.selection.Size)
	if len(colors) == 0 {
		s.term.Say("No colors in stock for %s in size %d.", s.selection.Model, s.selection.Size)
		return ErrInvalidColor
	}

	s.term.Say("Available colors for %s in size %d:", s.selection.Model, s.selection.Size)
	for _, c := range colors {
		s.term.Say("%s", c)
	}
	color, err := s.ask("Enter the color: ")
	if err != nil {
		return err
	}
	if !domain.IsValid(colors, color) {
		s.term.Say("Invalid color.")
		return ErrInvalidColor
	}

	s.selection.Color = color
	return nil
}

// resolveTarget never halts the session: input that is not an integer falls
// back to a new order.
func (s *Session) resolveTarget(ctx context.Context) error {
	input, err := s.ask("Enter an order id to add to an existing order, leave empty to create a new order: ")
	if err != nil {
		return err
	}

	s.target = ParseOrderTarget(input)
	if s.target.IsNew() && strings.TrimSpace(input) != "" {
		s.term.Say("Invalid order id. A new order will be created.")
	}
	return nil
}

func (s *Session) submit(ctx context.Context) error {
	addition, err := s.orders.AddToCart(ctx, s.id, s.selection, s.customerID, s.target)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrProductNotFound):
		s.term.Say("Could not find a product with the given model, size and color.")
		return err
	case errors.Is(err, domain.ErrInconsistentInventory):
		s.term.Say("The product matches more than one inventory row. Nothing was added.")
		return err
	case errors.Is(err, domain.ErrDuplicateSubmission):
		s.term.Say("This selection has already been submitted.")
		return err
	default:
		s.term.Say("Could not add the product to your order: %v", err)
		return err
	}

	s.addition = addition
	s.term.Say("The product has been added to your order.")
	return nil
}

func (s *Session) ask(label string) (string, error) {
	v, err := s.term.Ask(label)
	if err != nil {
		s.term.Say("Could not read input.")
		return "", fmt.Errorf("read input: %w", err)
	}
	return v, nil
}

func (s *Session) askSecret(label string) (string, error) {
	v, err := s.term.AskSecret(label)
	if err != nil {
		s.term.Say("Could not read input.")
		return "", fmt.Errorf("read input: %w", err)
	}
	return v, nil
}

// ParseOrderTarget maps the order id prompt answer to a target. Empty or
// non-numeric input means a new order.
func ParseOrderTarget(input string) domain.OrderTarget {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.NewOrderTarget()
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return domain.NewOrderTarget()
	}
	return domain.ExistingOrder(id)
}

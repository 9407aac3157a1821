// Package editor holds the bill form workflow as an explicit state machine.
//
// An Editor is either Idle, Creating a new bill, or Editing a saved one. The
// draft lives only in the editor until Save writes it to the store.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/splitease/splitease/internal/models"
	"github.com/splitease/splitease/internal/settlement"
	"github.com/splitease/splitease/internal/storage"
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the current state.
	ErrInvalidTransition = errors.New("invalid editor transition")

	// ErrIncompleteBill is returned by Save when the draft lacks a title, a
	// parseable total or members.
	ErrIncompleteBill = errors.New("bill is incomplete")

	// ErrMemberIndex is returned for a member index outside the draft.
	ErrMemberIndex = errors.New("member index out of range")
)

// Mode is the kind of state the editor is in.
type Mode int

const (
	Idle Mode = iota
	Creating
	Editing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// State is the editor state. BillID is set only in Editing.
type State struct {
	Mode   Mode
	BillID string
}

func (s State) String() string {
	if s.Mode == Editing {
		return fmt.Sprintf("editing(%s)", s.BillID)
	}
	return s.Mode.String()
}

// Draft is the bill form. Total is kept as typed.
type Draft struct {
	Title   string
	Total   string
	Date    string
	Members []models.Member
}

// Editor drives the bill form. It is not safe for concurrent use.
type Editor struct {
	store storage.Store
	state State
	draft Draft
}

// New returns an Idle editor backed by store.
func New(store storage.Store) *Editor {
	return &Editor{store: store}
}

// State returns the current state.
func (e *Editor) State() State {
	return e.state
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() Draft {
	d := e.draft
	d.Members = append([]models.Member(nil), e.draft.Members...)
	return d
}

func (e *Editor) requireIdle(op string) error {
	if e.state.Mode != Idle {
		return fmt.Errorf("%s while %s: %w", op, e.state, ErrInvalidTransition)
	}
	return nil
}

func (e *Editor) requireForm(op string) error {
	if e.state.Mode == Idle {
		return fmt.Errorf("%s while %s: %w", op, e.state, ErrInvalidTransition)
	}
	return nil
}

func (e *Editor) member(op string, i int) (*models.Member, error) {
	if err := e.requireForm(op); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(e.draft.Members) {
		return nil, fmt.Errorf("%s: member %d of %d: %w", op, i, len(e.draft.Members), ErrMemberIndex)
	}
	return &e.draft.Members[i], nil
}

// New starts a blank bill.
func (e *Editor) New() error {
	if err := e.requireIdle("new"); err != nil {
		return err
	}
	e.draft = Draft{}
	e.state = State{Mode: Creating}
	slog.Debug("Editor state changed", "state", e.state)
	return nil
}

// Edit loads a saved bill into the draft.
func (e *Editor) Edit(ctx context.Context, billID string) error {
	if err := e.requireIdle("edit"); err != nil {
		return err
	}
	bill, err := e.store.GetBill(ctx, billID)
	if err != nil {
		return fmt.Errorf("failed to load bill: %w", err)
	}
	e.draft = Draft{
		Title:   bill.Title,
		Total:   fmt.Sprint(bill.TotalAmount),
		Date:    bill.Date,
		Members: bill.Members,
	}
	e.state = State{Mode: Editing, BillID: bill.ID}
	slog.Debug("Editor state changed", "state", e.state)
	return nil
}

// AddMember appends an empty unpaid member and returns its index.
func (e *Editor) AddMember() (int, error) {
	if err := e.requireForm("add member"); err != nil {
		return 0, err
	}
	e.draft.Members = append(e.draft.Members, models.Member{ID: uuid.New().String()})
	return len(e.draft.Members) - 1, nil
}

// UpdateMemberName renames member i.
func (e *Editor) UpdateMemberName(i int, name string) error {
	m, err := e.member("update member name", i)
	if err != nil {
		return err
	}
	m.Name = name
	return nil
}

// UpdateMemberOwes sets the amount member i owes.
func (e *Editor) UpdateMemberOwes(i int, owes float64) error {
	m, err := e.member("update member owes", i)
	if err != nil {
		return err
	}
	m.Owes = owes
	return nil
}

// SetDraftMemberPaid sets the paid flag of member i in the draft.
func (e *Editor) SetDraftMemberPaid(i int, paid bool) error {
	m, err := e.member("set member paid", i)
	if err != nil {
		return err
	}
	m.HasPaid = paid
	return nil
}

// RemoveMember deletes member i, keeping the order of the rest.
func (e *Editor) RemoveMember(i int) error {
	if _, err := e.member("remove member", i); err != nil {
		return err
	}
	e.draft.Members = append(e.draft.Members[:i], e.draft.Members[i+1:]...)
	return nil
}

// SetTitle sets the draft title.
func (e *Editor) SetTitle(title string) error {
	if err := e.requireForm("set title"); err != nil {
		return err
	}
	e.draft.Title = title
	return nil
}

// SetTotal sets the draft total as typed.
func (e *Editor) SetTotal(total string) error {
	if err := e.requireForm("set total"); err != nil {
		return err
	}
	e.draft.Total = total
	return nil
}

// SetDate sets the draft date. An empty date means today on save.
func (e *Editor) SetDate(date string) error {
	if err := e.requireForm("set date"); err != nil {
		return err
	}
	e.draft.Date = date
	return nil
}

// SplitEqually sets every member's owed amount to an equal share of the
// total. It leaves the draft unchanged when the total does not parse or there
// are no members.
func (e *Editor) SplitEqually() error {
	if err := e.requireForm("split equally"); err != nil {
		return err
	}
	total, err := settlement.ParseAmount(e.draft.Total)
	if err != nil {
		return nil
	}
	share, ok := settlement.EqualSplit(total, len(e.draft.Members))
	if !ok {
		return nil
	}
	for i := range e.draft.Members {
		e.draft.Members[i].Owes = share
	}
	return nil
}

// Save writes the draft to the store and returns the saved bill. A new bill
// gets an ID from the store; an edited bill keeps its ID. On success the
// editor returns to Idle with an empty draft.
func (e *Editor) Save(ctx context.Context) (*models.Bill, error) {
	if err := e.requireForm("save"); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(e.draft.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrIncompleteBill)
	}
	total, err := settlement.ParseAmount(e.draft.Total)
	if err != nil {
		return nil, fmt.Errorf("%w: total: %v", ErrIncompleteBill, err)
	}
	if len(e.draft.Members) == 0 {
		return nil, fmt.Errorf("%w: at least one member is required", ErrIncompleteBill)
	}

	date := e.draft.Date
	if date == "" {
		date = storage.Today()
	}
	bill := &models.Bill{
		ID:          e.state.BillID,
		Title:       title,
		TotalAmount: total,
		Date:        date,
		Members:     append([]models.Member(nil), e.draft.Members...),
	}

	if err := bill.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bill: %w", err)
	}

	if e.state.Mode == Editing {
		err = e.store.UpdateBill(ctx, bill)
	} else {
		err = e.store.CreateBill(ctx, bill)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	slog.Info("Bill saved", "bill_id", bill.ID, "state", e.state)
	e.reset()
	return bill, nil
}

// Cancel discards the draft.
func (e *Editor) Cancel() error {
	if err := e.requireForm("cancel"); err != nil {
		return err
	}
	e.reset()
	return nil
}

func (e *Editor) reset() {
	e.draft = Draft{}
	e.state = State{Mode: Idle}
	slog.Debug("Editor state changed", "state", e.state)
}

// Delete removes a saved bill. It is only allowed while Idle.
func (e *Editor) Delete(ctx context.Context, billID string) error {
	if err := e.requireIdle("delete"); err != nil {
		return err
	}
	if err := e.store.DeleteBill(ctx, billID); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return nil
}

// TogglePayment flips the paid flag of a saved bill's member and returns the
// updated bill. It is allowed in any state and does not touch the draft.
func (e *Editor) TogglePayment(ctx context.Context, billID string, memberIndex int) (*models.Bill, error) {
	bill, err := e.store.GetBill(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill: %w", err)
	}
	if memberIndex < 0 || memberIndex >= len(bill.Members) {
		return nil, fmt.Errorf("toggle payment: member %d of %d: %w", memberIndex, len(bill.Members), ErrMemberIndex)
	}
	m := &bill.Members[memberIndex]
	paid, err := e.store.ToggleMemberPaid(ctx, bill.ID, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle payment: %w", err)
	}
	m.HasPaid = paid
	return bill, nil
}

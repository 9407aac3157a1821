// Package service implements the SplitEase Connect services.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/splitease/splitease/internal/metrics"
	"github.com/splitease/splitease/internal/models"
	"github.com/splitease/splitease/internal/settlement"
	"github.com/splitease/splitease/internal/storage"
	"github.com/splitease/splitease/pkg/api"
)

// BillService implements api.BillServiceHandler.
type BillService struct {
	api.UnimplementedBillServiceHandler
	store    storage.Store
	strategy settlement.Strategy
	metrics  *metrics.Metrics
}

// Option configures a BillService.
type Option func(*BillService)

// WithStrategy sets the settlement strategy used when a request names none.
func WithStrategy(s settlement.Strategy) Option {
	return func(svc *BillService) { svc.strategy = s }
}

// WithMetrics records settlement counts on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(svc *BillService) { svc.metrics = m }
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store, opts ...Option) *BillService {
	svc := &BillService{store: store, strategy: settlement.Pairwise}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// storeError maps storage errors to Connect codes.
func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	if errors.Is(err, context.Canceled) {
		return connect.NewError(connect.CodeCanceled, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// normalizeDate checks an optional date and defaults it to today.
func normalizeDate(date string) (string, error) {
	if date == "" {
		return storage.Today(), nil
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "", fmt.Errorf("date %q must be in YYYY-MM-DD format", date)
	}
	return date, nil
}

// settle computes settlements for members with the requested strategy,
// falling back to the service default.
func (s *BillService) settle(requested string, members []models.Member) ([]models.Settlement, error) {
	strategy := s.strategy
	if requested != "" {
		strategy = settlement.Strategy(requested)
	}
	if strategy == "" {
		strategy = settlement.Pairwise
	}
	fn, err := settlement.For(strategy)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	settlements := fn(members)
	s.metrics.ObserveSettlements(string(strategy), len(settlements))
	return settlements, nil
}

// CreateBill validates and stores a new bill.
func (s *BillService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	date, err := normalizeDate(req.Msg.Date)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	bill := &models.Bill{
		Title:       req.Msg.Title,
		TotalAmount: req.Msg.TotalAmount,
		Date:        date,
		Members:     membersFromAPI(req.Msg.Members),
	}
	if err := bill.Validate(); err != nil {
		slog.Warn("CreateBill validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	// Save to storage (generates IDs and CreatedAt)
	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("Bill created", "bill_id", bill.ID, "members_count", len(bill.Members))

	return connect.NewResponse(&api.CreateBillResponse{Bill: billToAPI(bill)}), nil
}

// GetBill retrieves a bill with its current settlements.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("GetBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, storeError(err)
	}

	settlements, err := s.settle(req.Msg.Strategy, bill.Members)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetBillResponse{
		Bill:        billToAPI(bill),
		Settlements: settlementsToAPI(settlements),
		Summary:     summaryToAPI(settlement.Summarize(bill, settlements)),
	}), nil
}

// ListBills returns summaries of all bills in creation order.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[api.ListBillsRequest]) (*connect.Response[api.ListBillsResponse], error) {
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, storeError(err)
	}

	summaries := make([]api.BillSummary, len(bills))
	for i, bill := range bills {
		summaries[i] = billSummaryToAPI(bill)
	}

	slog.Debug("ListBills successful", "count", len(bills))

	return connect.NewResponse(&api.ListBillsResponse{Bills: summaries}), nil
}

// UpdateBill replaces a bill's fields and members.
func (s *BillService) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	if req.Msg.BillID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bill_id required"))
	}

	var date string
	if req.Msg.Date != "" {
		var err error
		if date, err = normalizeDate(req.Msg.Date); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	bill := &models.Bill{
		ID:          req.Msg.BillID,
		Title:       req.Msg.Title,
		TotalAmount: req.Msg.TotalAmount,
		Date:        date,
		Members:     membersFromAPI(req.Msg.Members),
	}
	if err := bill.Validate(); err != nil {
		slog.Warn("UpdateBill validation failed", "bill_id", bill.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.UpdateBill(ctx, bill); err != nil {
		slog.Error("UpdateBill failed", "bill_id", bill.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Bill updated", "bill_id", bill.ID)

	return connect.NewResponse(&api.UpdateBillResponse{Bill: billToAPI(bill)}), nil
}

// DeleteBill deletes a bill.
func (s *BillService) DeleteBill(ctx context.Context, req *connect.Request[api.DeleteBillRequest]) (*connect.Response[api.DeleteBillResponse], error) {
	if req.Msg.BillID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("bill_id required"))
	}

	if err := s.store.DeleteBill(ctx, req.Msg.BillID); err != nil {
		slog.Error("DeleteBill failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Bill deleted", "bill_id", req.Msg.BillID)

	return connect.NewResponse(&api.DeleteBillResponse{}), nil
}

// TogglePayment flips one member's paid flag.
func (s *BillService) TogglePayment(ctx context.Context, req *connect.Request[api.TogglePaymentRequest]) (*connect.Response[api.TogglePaymentResponse], error) {
	paid, err := s.store.ToggleMemberPaid(ctx, req.Msg.BillID, req.Msg.MemberID)
	if err != nil {
		slog.Error("TogglePayment failed", "bill_id", req.Msg.BillID, "member_id", req.Msg.MemberID, "error", err)
		return nil, storeError(err)
	}

	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("TogglePayment: failed to get bill", "bill_id", req.Msg.BillID, "error", err)
		return nil, storeError(err)
	}
	// Report the flag this call produced, even if another toggle landed since
	if i := bill.MemberIndex(req.Msg.MemberID); i >= 0 {
		bill.Members[i].HasPaid = paid
	}

	slog.Info("Payment toggled", "bill_id", bill.ID, "member_id", req.Msg.MemberID, "has_paid", paid)

	return connect.NewResponse(&api.TogglePaymentResponse{Bill: billToAPI(bill)}), nil
}

// ComputeSettlements settles an ad-hoc member list without touching storage.
// Member names are not required, so unsaved drafts can be previewed.
func (s *BillService) ComputeSettlements(ctx context.Context, req *connect.Request[api.ComputeSettlementsRequest]) (*connect.Response[api.ComputeSettlementsResponse], error) {
	members := membersFromAPI(req.Msg.Members)
	if err := models.ValidateMembers(members); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	settlements, err := s.settle(req.Msg.Strategy, members)
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{TotalAmount: req.Msg.TotalAmount, Members: members}
	if req.Msg.TotalAmount == 0 {
		// No total given: treat the owed amounts as the whole bill
		for _, m := range members {
			bill.TotalAmount += m.Owes
		}
	}

	slog.Debug("Settlements computed", "members_count", len(members), "settlements_count", len(settlements))

	return connect.NewResponse(&api.ComputeSettlementsResponse{
		Settlements: settlementsToAPI(settlements),
		Summary:     summaryToAPI(settlement.Summarize(bill, settlements)),
	}), nil
}

// GetSettlements recomputes the settlements of a stored bill.
func (s *BillService) GetSettlements(ctx context.Context, req *connect.Request[api.GetSettlementsRequest]) (*connect.Response[api.GetSettlementsResponse], error) {
	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("GetSettlements failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, storeError(err)
	}

	settlements, err := s.settle(req.Msg.Strategy, bill.Members)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetSettlementsResponse{
		Settlements: settlementsToAPI(settlements),
		Summary:     summaryToAPI(settlement.Summarize(bill, settlements)),
	}), nil
}

// EqualSplit divides a total evenly. OK is false when the split is a no-op.
func (s *BillService) EqualSplit(ctx context.Context, req *connect.Request[api.EqualSplitRequest]) (*connect.Response[api.EqualSplitResponse], error) {
	amount, ok := settlement.EqualSplit(req.Msg.TotalAmount, int(req.Msg.MemberCount))
	return connect.NewResponse(&api.EqualSplitResponse{
		AmountPerPerson: amount,
		OK:              ok,
	}), nil
}

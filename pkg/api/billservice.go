package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// BillServiceName is the fully-qualified name of the BillService service.
	BillServiceName = "splitease.v1.BillService"

	BillServiceCreateBillProcedure         = "/splitease.v1.BillService/CreateBill"
	BillServiceGetBillProcedure            = "/splitease.v1.BillService/GetBill"
	BillServiceListBillsProcedure          = "/splitease.v1.BillService/ListBills"
	BillServiceUpdateBillProcedure         = "/splitease.v1.BillService/UpdateBill"
	BillServiceDeleteBillProcedure         = "/splitease.v1.BillService/DeleteBill"
	BillServiceTogglePaymentProcedure      = "/splitease.v1.BillService/TogglePayment"
	BillServiceComputeSettlementsProcedure = "/splitease.v1.BillService/ComputeSettlements"
	BillServiceGetSettlementsProcedure     = "/splitease.v1.BillService/GetSettlements"
	BillServiceEqualSplitProcedure         = "/splitease.v1.BillService/EqualSplit"
)

// BillServiceHandler is implemented by the server.
type BillServiceHandler interface {
	CreateBill(context.Context, *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	UpdateBill(context.Context, *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error)
	DeleteBill(context.Context, *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error)
	TogglePayment(context.Context, *connect.Request[TogglePaymentRequest]) (*connect.Response[TogglePaymentResponse], error)
	ComputeSettlements(context.Context, *connect.Request[ComputeSettlementsRequest]) (*connect.Response[ComputeSettlementsResponse], error)
	GetSettlements(context.Context, *connect.Request[GetSettlementsRequest]) (*connect.Response[GetSettlementsResponse], error)
	EqualSplit(context.Context, *connect.Request[EqualSplitRequest]) (*connect.Response[EqualSplitResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	handlers := map[string]http.Handler{
		BillServiceCreateBillProcedure:         connect.NewUnaryHandler(BillServiceCreateBillProcedure, svc.CreateBill, opts...),
		BillServiceGetBillProcedure:            connect.NewUnaryHandler(BillServiceGetBillProcedure, svc.GetBill, opts...),
		BillServiceListBillsProcedure:          connect.NewUnaryHandler(BillServiceListBillsProcedure, svc.ListBills, opts...),
		BillServiceUpdateBillProcedure:         connect.NewUnaryHandler(BillServiceUpdateBillProcedure, svc.UpdateBill, opts...),
		BillServiceDeleteBillProcedure:         connect.NewUnaryHandler(BillServiceDeleteBillProcedure, svc.DeleteBill, opts...),
		BillServiceTogglePaymentProcedure:      connect.NewUnaryHandler(BillServiceTogglePaymentProcedure, svc.TogglePayment, opts...),
		BillServiceComputeSettlementsProcedure: connect.NewUnaryHandler(BillServiceComputeSettlementsProcedure, svc.ComputeSettlements, opts...),
		BillServiceGetSettlementsProcedure:     connect.NewUnaryHandler(BillServiceGetSettlementsProcedure, svc.GetSettlements, opts...),
		BillServiceEqualSplitProcedure:         connect.NewUnaryHandler(BillServiceEqualSplitProcedure, svc.EqualSplit, opts...),
	}

	return "/" + BillServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedBillServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBillServiceHandler struct{}

func unimplemented(procedure string) error {
	name := procedure[strings.LastIndex(procedure, "/")+1:]
	return connect.NewError(connect.CodeUnimplemented, errors.New(BillServiceName+"."+name+" is not implemented"))
}

func (UnimplementedBillServiceHandler) CreateBill(context.Context, *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return nil, unimplemented(BillServiceCreateBillProcedure)
}

func (UnimplementedBillServiceHandler) GetBill(context.Context, *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error) {
	return nil, unimplemented(BillServiceGetBillProcedure)
}

func (UnimplementedBillServiceHandler) ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return nil, unimplemented(BillServiceListBillsProcedure)
}

func (UnimplementedBillServiceHandler) UpdateBill(context.Context, *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error) {
	return nil, unimplemented(BillServiceUpdateBillProcedure)
}

func (UnimplementedBillServiceHandler) DeleteBill(context.Context, *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error) {
	return nil, unimplemented(BillServiceDeleteBillProcedure)
}

func (UnimplementedBillServiceHandler) TogglePayment(context.Context, *connect.Request[TogglePaymentRequest]) (*connect.Response[TogglePaymentResponse], error) {
	return nil, unimplemented(BillServiceTogglePaymentProcedure)
}

func (UnimplementedBillServiceHandler) ComputeSettlements(context.Context, *connect.Request[ComputeSettlementsRequest]) (*connect.Response[ComputeSettlementsResponse], error) {
	return nil, unimplemented(BillServiceComputeSettlementsProcedure)
}

func (UnimplementedBillServiceHandler) GetSettlements(context.Context, *connect.Request[GetSettlementsRequest]) (*connect.Response[GetSettlementsResponse], error) {
	return nil, unimplemented(BillServiceGetSettlementsProcedure)
}

func (UnimplementedBillServiceHandler) EqualSplit(context.Context, *connect.Request[EqualSplitRequest]) (*connect.Response[EqualSplitResponse], error) {
	return nil, unimplemented(BillServiceEqualSplitProcedure)
}

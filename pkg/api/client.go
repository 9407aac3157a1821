package api

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// BillServiceClient is a client for the splitease.v1.BillService service.
type BillServiceClient struct {
	createBill         *connect.Client[CreateBillRequest, CreateBillResponse]
	getBill            *connect.Client[GetBillRequest, GetBillResponse]
	listBills          *connect.Client[ListBillsRequest, ListBillsResponse]
	updateBill         *connect.Client[UpdateBillRequest, UpdateBillResponse]
	deleteBill         *connect.Client[DeleteBillRequest, DeleteBillResponse]
	togglePayment      *connect.Client[TogglePaymentRequest, TogglePaymentResponse]
	computeSettlements *connect.Client[ComputeSettlementsRequest, ComputeSettlementsResponse]
	getSettlements     *connect.Client[GetSettlementsRequest, GetSettlementsResponse]
	equalSplit         *connect.Client[EqualSplitRequest, EqualSplitResponse]
}

// NewBillServiceClient constructs a client for the BillService at baseURL
// (for example, http://localhost:8080).
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &BillServiceClient{
		createBill:         connect.NewClient[CreateBillRequest, CreateBillResponse](httpClient, baseURL+BillServiceCreateBillProcedure, opts...),
		getBill:            connect.NewClient[GetBillRequest, GetBillResponse](httpClient, baseURL+BillServiceGetBillProcedure, opts...),
		listBills:          connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+BillServiceListBillsProcedure, opts...),
		updateBill:         connect.NewClient[UpdateBillRequest, UpdateBillResponse](httpClient, baseURL+BillServiceUpdateBillProcedure, opts...),
		deleteBill:         connect.NewClient[DeleteBillRequest, DeleteBillResponse](httpClient, baseURL+BillServiceDeleteBillProcedure, opts...),
		togglePayment:      connect.NewClient[TogglePaymentRequest, TogglePaymentResponse](httpClient, baseURL+BillServiceTogglePaymentProcedure, opts...),
		computeSettlements: connect.NewClient[ComputeSettlementsRequest, ComputeSettlementsResponse](httpClient, baseURL+BillServiceComputeSettlementsProcedure, opts...),
		getSettlements:     connect.NewClient[GetSettlementsRequest, GetSettlementsResponse](httpClient, baseURL+BillServiceGetSettlementsProcedure, opts...),
		equalSplit:         connect.NewClient[EqualSplitRequest, EqualSplitResponse](httpClient, baseURL+BillServiceEqualSplitProcedure, opts...),
	}
}

func (c *BillServiceClient) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) GetBill(ctx context.Context, req *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *BillServiceClient) UpdateBill(ctx context.Context, req *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error) {
	return c.updateBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) DeleteBill(ctx context.Context, req *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error) {
	return c.deleteBill.CallUnary(ctx, req)
}

func (c *BillServiceClient) TogglePayment(ctx context.Context, req *connect.Request[TogglePaymentRequest]) (*connect.Response[TogglePaymentResponse], error) {
	return c.togglePayment.CallUnary(ctx, req)
}

func (c *BillServiceClient) ComputeSettlements(ctx context.Context, req *connect.Request[ComputeSettlementsRequest]) (*connect.Response[ComputeSettlementsResponse], error) {
	return c.computeSettlements.CallUnary(ctx, req)
}

func (c *BillServiceClient) GetSettlements(ctx context.Context, req *connect.Request[GetSettlementsRequest]) (*connect.Response[GetSettlementsResponse], error) {
	return c.getSettlements.CallUnary(ctx, req)
}

func (c *BillServiceClient) EqualSplit(ctx context.Context, req *connect.Request[EqualSplitRequest]) (*connect.Response[EqualSplitResponse], error) {
	return c.equalSplit.CallUnary(ctx, req)
}

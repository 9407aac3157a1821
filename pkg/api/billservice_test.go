package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
)

func TestUnimplementedBillServiceHandler(t *testing.T) {
	path, handler := NewBillServiceHandler(UnimplementedBillServiceHandler{})
	if path != "/splitease.v1.BillService/" {
		t.Fatalf("unexpected mount path %q", path)
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewBillServiceClient(http.DefaultClient, server.URL)
	_, err := client.EqualSplit(context.Background(), connect.NewRequest(&EqualSplitRequest{TotalAmount: 100, MemberCount: 4}))

	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T (%v)", err, err)
	}
	if connectErr.Code() != connect.CodeUnimplemented {
		t.Errorf("expected CodeUnimplemented, got %v", connectErr.Code())
	}
}

func TestBillServiceHandler_UnknownProcedure(t *testing.T) {
	_, handler := NewBillServiceHandler(UnimplementedBillServiceHandler{})

	req := httptest.NewRequest(http.MethodPost, "/splitease.v1.BillService/Nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestJSONCodec(t *testing.T) {
	codec := JSONCodec{}
	if codec.Name() != "json" {
		t.Fatalf("codec name = %q, want json", codec.Name())
	}

	data, err := codec.Marshal(&Member{Name: "Alice", Owes: 12.5, HasPaid: true})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if want := `{"name":"Alice","owes":12.5,"has_paid":true}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var empty ListBillsRequest
	if err := codec.Unmarshal(nil, &empty); err != nil {
		t.Errorf("Unmarshal of empty body failed: %v", err)
	}

	var m Member
	if err := codec.Unmarshal([]byte(`{"name":`), &m); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

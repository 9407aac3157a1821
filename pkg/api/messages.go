package api

// Member is a bill participant on the wire.
type Member struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Owes    float64 `json:"owes"`
	HasPaid bool    `json:"has_paid"`
}

// Bill is a stored bill on the wire.
type Bill struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	TotalAmount float64  `json:"total_amount"`
	Date        string   `json:"date"`
	Members     []Member `json:"members"`
	CreatedAt   int64    `json:"created_at"`
}

// Settlement is one payment instruction.
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	// Display is the human-readable line, e.g. "Bob → Alice: 30.00".
	Display string `json:"display"`
}

// Summary holds aggregate figures for a bill.
type Summary struct {
	FairShare   float64 `json:"fair_share"`
	TotalOwed   float64 `json:"total_owed"`
	TotalPaid   float64 `json:"total_paid"`
	Unallocated float64 `json:"unallocated"`
	AllSettled  bool    `json:"all_settled"`
}

// BillSummary is a compact bill entry for listings.
type BillSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	TotalAmount float64 `json:"total_amount"`
	Date        string  `json:"date"`
	MemberCount int32   `json:"member_count"`
	PaidCount   int32   `json:"paid_count"`
	CreatedAt   int64   `json:"created_at"`
}

type CreateBillRequest struct {
	Title       string   `json:"title"`
	TotalAmount float64  `json:"total_amount"`
	Date        string   `json:"date,omitempty"`
	Members     []Member `json:"members"`
}

type CreateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type GetBillRequest struct {
	BillID   string `json:"bill_id"`
	Strategy string `json:"strategy,omitempty"`
}

type GetBillResponse struct {
	Bill        *Bill        `json:"bill"`
	Settlements []Settlement `json:"settlements"`
	Summary     *Summary     `json:"summary"`
}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []BillSummary `json:"bills"`
}

type UpdateBillRequest struct {
	BillID      string   `json:"bill_id"`
	Title       string   `json:"title"`
	TotalAmount float64  `json:"total_amount"`
	Date        string   `json:"date,omitempty"`
	Members     []Member `json:"members"`
}

type UpdateBillResponse struct {
	Bill *Bill `json:"bill"`
}

type DeleteBillRequest struct {
	BillID string `json:"bill_id"`
}

type DeleteBillResponse struct{}

type TogglePaymentRequest struct {
	BillID   string `json:"bill_id"`
	MemberID string `json:"member_id"`
}

type TogglePaymentResponse struct {
	Bill *Bill `json:"bill"`
}

// ComputeSettlementsRequest settles an ad-hoc member list, such as an unsaved draft.
type ComputeSettlementsRequest struct {
	Members     []Member `json:"members"`
	TotalAmount float64  `json:"total_amount,omitempty"`
	Strategy    string   `json:"strategy,omitempty"`
}

type ComputeSettlementsResponse struct {
	Settlements []Settlement `json:"settlements"`
	Summary     *Summary     `json:"summary"`
}

type GetSettlementsRequest struct {
	BillID   string `json:"bill_id"`
	Strategy string `json:"strategy,omitempty"`
}

type GetSettlementsResponse struct {
	Settlements []Settlement `json:"settlements"`
	Summary     *Summary     `json:"summary"`
}

type EqualSplitRequest struct {
	TotalAmount float64 `json:"total_amount"`
	MemberCount int32   `json:"member_count"`
}

// EqualSplitResponse reports OK=false when the split would be a no-op.
type EqualSplitResponse struct {
	AmountPerPerson float64 `json:"amount_per_person"`
	OK              bool    `json:"ok"`
}

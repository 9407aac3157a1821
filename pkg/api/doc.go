// Package api defines the SplitEase v1 wire contract.
//
// Messages are plain Go structs carried as JSON by a Connect codec, so the
// service can be called with any Connect or plain HTTP client:
//
//	curl -X POST -H 'Content-Type: application/json' \
//	    -d '{"members":[{"name":"A","owes":60,"has_paid":true}]}' \
//	    http://localhost:8080/splitease.v1.BillService/ComputeSettlements
package api

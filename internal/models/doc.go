// Package models defines the core domain models for SplitEase.
//
// # Models
//
//   - Bill: a tracked group expense with a title, total amount, date and members
//   - Member: a participant in a bill, with an amount owed and a paid flag
//   - Settlement: a derived payment instruction from an unpaid member to a paid one
//
// Members are identified by name in settlements. Member IDs exist so that the
// store and the editor can address a member even while its name is still blank.
//
// # Design Principles
//
//  1. Plain data: models carry no behaviour beyond validation and copying
//  2. Settlements are never stored; they are recomputed from the member list
//  3. Use ID strings instead of pointers for relationships
package models

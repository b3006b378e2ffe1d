// Package workflow defines the property lifecycle state machine.
//
// A property moves from pending through admin review, contractor
// evaluation and price negotiation to completion:
//
//	pending -> rejected                      (admin rejects)
//	pending -> approved | eval_pending       (admin approves; eval_pending when a contractor is assigned)
//	eval_pending -> approved | rejected      (assigned contractor evaluates)
//	approved -> price_proposed               (first price offer)
//	price_proposed -> in_progress            (homeowner accepts an offer)
//	price_proposed -> approved               (homeowner rejects the last pending offer)
//	in_progress -> completed                 (assigned contractor submits proof of work)
//
// rejected and completed are terminal.
package workflow

import "renovation-marketplace-api/internal/common"

type Status string

const (
	Pending       Status = "pending"
	EvalPending   Status = "eval_pending"
	Approved      Status = "approved"
	PriceProposed Status = "price_proposed"
	InProgress    Status = "in_progress"
	Completed     Status = "completed"
	Rejected      Status = "rejected"
)

var all = []Status{Pending, EvalPending, Approved, PriceProposed, InProgress, Completed, Rejected}

func Parse(s string) (Status, bool) {
	for _, status := range all {
		if string(status) == s {
			return status, true
		}
	}

	return "", false
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := Parse(string(s))

	return ok
}

func (s Status) Terminal() bool {
	return s == Rejected || s == Completed
}

// CanAdminReview reports whether an admin decision is still possible.
// Once reviewed (or rejected) a property never returns to pending.
func (s Status) CanAdminReview() bool {
	return s == Pending
}

// AdminDecision resolves the admin review outcome. Approving a property
// with an assigned contractor sends it to evaluation first; without one
// it is listed for offers straight away.
func AdminDecision(action string, contractorAssigned bool) (Status, bool) {
	switch action {
	case common.ActionApprove:
		if contractorAssigned {
			return EvalPending, true
		}

		return Approved, true
	case common.ActionReject:
		return Rejected, true
	}

	return "", false
}

func (s Status) CanAssignContractor() bool {
	return s == Pending
}

func (s Status) CanEvaluate() bool {
	return s == EvalPending
}

// EvaluationDecision resolves the contractor review outcome.
func EvaluationDecision(action string) (Status, bool) {
	switch action {
	case common.ActionApprove:
		return Approved, true
	case common.ActionReject:
		return Rejected, true
	}

	return "", false
}

// CanReceiveOffer allows offers on listed properties. A property that
// already has pending offers stays open for competing ones.
func (s Status) CanReceiveOffer() bool {
	return s == Approved || s == PriceProposed
}

func (s Status) CanDecideOffer() bool {
	return s == PriceProposed
}

func (s Status) CanComplete() bool {
	return s == InProgress
}

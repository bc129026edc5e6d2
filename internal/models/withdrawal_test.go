package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWithdrawal() Withdrawal {
	return Withdrawal{
		MemberID: uuid.New(),
		Amount:   decimal.NewFromFloat(500.00),
		Purpose:  "medical",
		Status:   WithdrawalStatusPending,
	}
}

func TestWithdrawal_Validate(t *testing.T) {
	fundID := uuid.New()

	tests := []struct {
		name    string
		mutate  func(*Withdrawal)
		wantErr bool
	}{
		{"valid pending withdrawal", func(w *Withdrawal) {}, false},
		{"missing member", func(w *Withdrawal) { w.MemberID = uuid.Nil }, true},
		{"zero amount", func(w *Withdrawal) { w.Amount = decimal.Zero }, true},
		{"negative amount", func(w *Withdrawal) { w.Amount = decimal.NewFromFloat(-1) }, true},
		{"missing purpose", func(w *Withdrawal) { w.Purpose = "" }, true},
		{"invalid status", func(w *Withdrawal) { w.Status = "cancelled" }, true},
		{"approved without fund", func(w *Withdrawal) { w.Status = WithdrawalStatusApproved }, true},
		{"pending with fund", func(w *Withdrawal) { w.FundID = &fundID }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWithdrawal()
			tt.mutate(&w)

			err := w.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithdrawal_MarkApproved(t *testing.T) {
	w := validWithdrawal()
	fundID := uuid.New()
	reviewerID := uuid.New()

	require.NoError(t, w.MarkApproved(fundID, reviewerID))
	assert.Equal(t, WithdrawalStatusApproved, w.Status)
	require.NotNil(t, w.FundID)
	assert.Equal(t, fundID, *w.FundID)
	assert.NoError(t, w.Validate())

	// Terminal states absorb further review attempts
	assert.ErrorIs(t, w.MarkApproved(uuid.New(), uuid.New()), ErrAlreadyReviewed)
	assert.ErrorIs(t, w.MarkRejected(uuid.New(), "dup"), ErrAlreadyReviewed)
}

func TestWithdrawal_MarkApproved_ZeroValueStatus(t *testing.T) {
	// An unpersisted withdrawal that never went through BeforeCreate
	// still reviews as pending
	w := Withdrawal{
		MemberID: uuid.New(),
		Amount:   decimal.NewFromFloat(500.00),
		Purpose:  "medical",
	}

	require.NoError(t, w.MarkApproved(uuid.New(), uuid.New()))
	assert.Equal(t, WithdrawalStatusApproved, w.Status)
}

func TestWithdrawal_MarkRejected(t *testing.T) {
	w := validWithdrawal()

	require.NoError(t, w.MarkRejected(uuid.New(), "insufficient documentation"))
	assert.Equal(t, WithdrawalStatusRejected, w.Status)
	assert.Equal(t, "insufficient documentation", w.RejectionReason)
	assert.Nil(t, w.FundID)

	assert.ErrorIs(t, w.MarkApproved(uuid.New(), uuid.New()), ErrAlreadyReviewed)
}

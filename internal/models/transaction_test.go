package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()
	validDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:     validUserID,
				Amount:     decimal.RequireFromString("42.50"),
				Category:   CategoryFood,
				OccurredOn: validDate,
			},
		},
		{
			name: "valid income",
			transaction: Transaction{
				UserID:     validUserID,
				Amount:     decimal.RequireFromString("2500.00"),
				IsIncome:   true,
				Category:   CategoryOther,
				OccurredOn: validDate,
			},
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:     validUserID,
				Amount:     decimal.Zero,
				Category:   CategoryFood,
				OccurredOn: validDate,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID:     validUserID,
				Amount:     decimal.RequireFromString("-5.00"),
				Category:   CategoryFood,
				OccurredOn: validDate,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "missing date",
			transaction: Transaction{
				UserID:   validUserID,
				Amount:   decimal.RequireFromString("10.00"),
				Category: CategoryFood,
			},
			wantErr: ErrMissingDate,
		},
		{
			name: "unknown category",
			transaction: Transaction{
				UserID:     validUserID,
				Amount:     decimal.RequireFromString("10.00"),
				Category:   "crypto",
				OccurredOn: validDate,
			},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "note too long",
			transaction: Transaction{
				UserID:     validUserID,
				Amount:     decimal.RequireFromString("10.00"),
				Category:   CategoryFood,
				Note:       strings.Repeat("x", MaxNoteLength+1),
				OccurredOn: validDate,
			},
			wantErr: ErrNoteTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Validate_MissingUserID(t *testing.T) {
	transaction := Transaction{
		Amount:     decimal.RequireFromString("10.00"),
		Category:   CategoryFood,
		OccurredOn: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	err := transaction.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user ID is required")
}

func TestTransaction_Flow(t *testing.T) {
	income := Transaction{Amount: decimal.RequireFromString("100.00"), IsIncome: true}
	expense := Transaction{Amount: decimal.RequireFromString("40.00"), IsIncome: false}

	assert.True(t, income.Flow().Equal(decimal.RequireFromString("100.00")))
	assert.True(t, expense.Flow().Equal(decimal.RequireFromString("-40.00")))
}

func TestTransaction_MonthKey(t *testing.T) {
	transaction := Transaction{
		OccurredOn: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2024-03", transaction.MonthKey())
}

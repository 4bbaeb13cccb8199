package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	trialDays := 7

	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name    string
		account models.Account
		now     time.Time
		want    Decision
	}{
		{
			name: "trial just registered has full trial",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionTrial,
				CreatedAt:          now,
			},
			now:  now,
			want: Decision{DaysRemaining: 7, AccessDenied: false},
		},
		{
			name: "trial day decreases next day",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionTrial,
				CreatedAt:          now,
			},
			now:  now.Add(24 * time.Hour),
			want: Decision{DaysRemaining: 6, AccessDenied: false},
		},
		{
			name: "trial denied after trial window passes",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionTrial,
				CreatedAt:          now,
			},
			now:  now.AddDate(0, 0, 8),
			want: Decision{DaysRemaining: 0, AccessDenied: true},
		},
		{
			name: "partial day rounds up",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionActive,
				SubscriptionExpiry: ptr(now.Add(36 * time.Hour)),
			},
			now:  now,
			want: Decision{DaysRemaining: 2, AccessDenied: false},
		},
		{
			name: "admin grants 30 days",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionActive,
				SubscriptionExpiry: ptr(now.AddDate(0, 0, 30)),
			},
			now:  now,
			want: Decision{DaysRemaining: 30, AccessDenied: false},
		},
		{
			name: "active denied once expiry passes",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionActive,
				SubscriptionExpiry: ptr(now.Add(-1 * time.Hour)),
			},
			now:  now,
			want: Decision{DaysRemaining: 0, AccessDenied: true},
		},
		{
			name: "expired overrides future expiry",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionExpired,
				SubscriptionExpiry: ptr(now.AddDate(0, 0, 10)),
			},
			now:  now,
			want: Decision{DaysRemaining: 0, AccessDenied: true},
		},
		{
			name: "suspended keeps computed days but denies",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionSuspended,
				SubscriptionExpiry: ptr(now.AddDate(0, 0, 5)),
			},
			now:  now,
			want: Decision{DaysRemaining: 5, AccessDenied: true},
		},
		{
			name: "negative days clamp to zero",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionTrial,
				CreatedAt:          now.AddDate(0, 0, -30),
			},
			now:  now,
			want: Decision{DaysRemaining: 0, AccessDenied: true},
		},
		{
			name: "no dates at all falls back to trial length",
			account: models.Account{
				SubscriptionStatus: models.SubscriptionTrial,
			},
			now:  now,
			want: Decision{DaysRemaining: 7, AccessDenied: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(&tt.account, tt.now, trialDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_TrialCountdown(t *testing.T) {
	registered := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	account := models.Account{
		SubscriptionStatus: models.SubscriptionTrial,
		CreatedAt:          registered,
	}

	prev := Evaluate(&account, registered, 7).DaysRemaining
	for d := 1; d <= 8; d++ {
		got := Evaluate(&account, registered.AddDate(0, 0, d), 7).DaysRemaining
		assert.LessOrEqual(t, got, prev, "days must not grow over time")
		prev = got
	}
	assert.Equal(t, 0, prev)
}

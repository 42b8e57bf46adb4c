package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
	"github.com/kiwiorbit/speechive-7.1/internal/event"
	"github.com/kiwiorbit/speechive-7.1/internal/logger"
	"github.com/kiwiorbit/speechive-7.1/internal/store"
)

// NewVoucherCode generates a voucher code: the fixed prefix plus eight
// uppercased hex characters of a fresh UUID.
func NewVoucherCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return domain.VoucherCodePrefix + strings.ToUpper(id[:8])
}

// badgeEligible reports whether day's badge can be claimed: some category
// has that day authored with at least one activity and all of them
// completed. Caller holds the lock.
func (s *service) badgeEligible(day int) bool {
	for i := range s.log {
		if d := s.log[i].Day(day); d != nil && d.AllCompleted() {
			return true
		}
	}
	return false
}

// BadgeStatuses returns the claim state of all 30 day badges.
func (s *service) BadgeStatuses() []domain.BadgeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.BadgeStatus, 0, domain.ChallengeDays)
	for day := 1; day <= domain.ChallengeDays; day++ {
		out = append(out, domain.BadgeStatus{
			Day:      day,
			Eligible: s.badgeEligible(day),
			Claimed:  s.badges.Contains(day),
		})
	}
	return out
}

// ClaimBadge collects the badge reward for a completed day. Claiming an
// already-claimed badge is a no-op returning the current balance. Returns
// the balance after the claim.
func (s *service) ClaimBadge(ctx context.Context, day int) (int, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if day < 1 || day > domain.ChallengeDays {
		return s.profile.HoneyDrops, fmt.Errorf("%w: day %d", domain.ErrBadgeNotEligible, day)
	}
	if s.badges.Contains(day) {
		return s.profile.HoneyDrops, nil
	}
	if !s.badgeEligible(day) {
		return s.profile.HoneyDrops, fmt.Errorf("%w: day %d", domain.ErrBadgeNotEligible, day)
	}

	s.badges = s.badges.Add(day)
	s.saveRecord(ctx, store.KeyClaimedBadges, s.badges)

	balance := s.credit(ctx, domain.BadgeReward)
	s.publish(ctx, event.NewBadgeClaimedEvent(day, domain.BadgeReward))

	log.Info("badge claimed", "day", day, "balance", balance)
	return balance, nil
}

// Redeem exchanges honey drops for a voucher. Requires a saved caregiver
// profile since the voucher is made out to the caregiver by name.
func (s *service) Redeem(ctx context.Context) (*domain.Voucher, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.profileSet || s.profile.CaregiverName == "" {
		return nil, domain.ErrProfileRequired
	}
	if s.profile.HoneyDrops < domain.RedeemCost {
		s.publish(ctx, event.NewRedemptionRejectedEvent(domain.ErrMsgInsufficientBalance, s.profile.HoneyDrops))
		return nil, fmt.Errorf("%w: have %d, need %d",
			domain.ErrInsufficientBalance, s.profile.HoneyDrops, domain.RedeemCost)
	}

	voucher := &domain.Voucher{
		Code:       s.newVoucherCode(),
		Amount:     domain.VoucherAmount,
		IssueDate:  s.clk.Now().Format("02/01/2006"),
		RedeemedTo: s.profile.CaregiverName,
	}

	s.credit(ctx, -domain.RedeemCost)
	s.publish(ctx, event.NewVoucherIssuedEvent(voucher.Code, voucher.Amount))

	log.Info("voucher issued", "code", voucher.Code, "balance", s.profile.HoneyDrops)
	return voucher, nil
}

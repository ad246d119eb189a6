package usecase

import (
	"context"
	"log"
	"time"

	"jarkeeper/domain"
	"jarkeeper/interface/exporter"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/tlb"
)

// JarStore is the account storage provider: it loads and persists one jar
// record by its stable address. Find returns (nil, nil) when no record
// exists at the address.
type JarStore interface {
	Find(address tongo.AccountID) (*domain.TipJar, error)
	Upsert(address tongo.AccountID, jar *domain.TipJar) error
	Delete(address tongo.AccountID) error
}

type JarInteractor struct {
	jarAddress    tongo.AccountID
	jarStore      JarStore
	treasurer     domain.Treasurer
	notifier      domain.Notifier
	withdrawLimit tlb.Grams
}

func NewJarInteractor(owner tongo.AccountID,
	jarStore JarStore,
	treasurer domain.Treasurer,
	notifier domain.Notifier,
	withdrawLimit tlb.Grams) *JarInteractor {
	interactor := &JarInteractor{
		jarAddress:    domain.JarAddress(owner),
		jarStore:      jarStore,
		treasurer:     treasurer,
		notifier:      notifier,
		withdrawLimit: withdrawLimit,
	}

	return interactor
}

func (interactor *JarInteractor) JarAddress() tongo.AccountID {
	return interactor.jarAddress
}

// Initialize creates the jar record for the caller: active, zeroed
// aggregates, empty history. The caller becomes the immutable owner and must
// be the account the interactor is bound to, or the record would be persisted
// at an address no later operation loads from.
func (interactor *JarInteractor) Initialize(ctx context.Context, caller tongo.AccountID, description, category string, goal tlb.Grams) (*domain.TipJar, error) {

	if domain.JarAddress(caller) != interactor.jarAddress {
		return nil, domain.ErrorUnauthorized
	}

	jar, err := domain.NewTipJar(caller, description, category, goal)
	if err != nil {
		return nil, err
	}

	existing, err := interactor.jarStore.Find(interactor.jarAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrorJarAlreadyExists
	}

	if err := interactor.jarStore.Upsert(interactor.jarAddress, jar); err != nil {
		return nil, err
	}

	interactor.notify(ctx, domain.JarEvent{Initialized: &domain.InitializedPayload{
		Jar:   interactor.jarAddress.ToRaw(),
		Owner: caller.ToRaw(),
		Goal:  uint64(goal),
	}})

	return jar, nil
}

// SendTip accepts a tip from the caller. The value transfer happens before
// any record mutation, so a failed transfer can never be observed alongside
// a mutated history or credited balance. A paused jar short-circuits before
// the transfer and only emits a refund notification.
func (interactor *JarInteractor) SendTip(ctx context.Context, caller tongo.AccountID, amount tlb.Grams, visibility domain.Visibility, memo string) (*domain.TipJar, error) {

	if amount == 0 {
		return nil, domain.ErrorInvalidAmount
	}
	if len(memo) > domain.MaxMemoLen {
		return nil, domain.ErrorMemoTooLong
	}

	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}

	if !jar.IsActive {
		exporter.IncRefundCount()
		interactor.notify(ctx, domain.JarEvent{Refunded: &domain.RefundedPayload{
			Jar:    interactor.jarAddress.ToRaw(),
			Sender: caller.ToRaw(),
			Amount: uint64(amount),
		}})
		return jar, nil
	}

	if jar.IsPrivate && !jar.IsOwner(caller) {
		return nil, domain.ErrorUnauthorized
	}

	if err := interactor.treasurer.Transfer(ctx, caller, interactor.jarAddress, amount, memo); err != nil {
		return nil, err
	}

	jar.RecordTip(domain.Tip{
		Sender:     caller,
		Amount:     amount,
		Visibility: visibility,
		Memo:       memo,
		Timestamp:  time.Now(),
	})
	jar.TotalTipsCount++
	jar.TotalReceived += amount

	if err := interactor.jarStore.Upsert(interactor.jarAddress, jar); err != nil {
		return nil, err
	}

	exporter.IncTipCount()
	exporter.SetTotalReceived(uint64(jar.TotalReceived))

	sender := ""
	if visibility == domain.VisibilityPublic {
		sender = caller.ToRaw()
	}
	interactor.notify(ctx, domain.JarEvent{TipSent: &domain.TipSentPayload{
		Jar:           interactor.jarAddress.ToRaw(),
		Sender:        sender,
		Amount:        uint64(amount),
		Memo:          memo,
		TotalReceived: uint64(jar.TotalReceived),
		TipsCount:     jar.TotalTipsCount,
	}})

	// Once the goal is crossed, every further tip re-announces it. The
	// milestone is level-triggered on the running balance.
	if jar.GoalReached() {
		exporter.IncGoalReachedCount()
		interactor.notify(ctx, domain.JarEvent{GoalReached: &domain.GoalReachedPayload{
			Jar:           interactor.jarAddress.ToRaw(),
			Goal:          uint64(jar.Goal),
			TotalReceived: uint64(jar.TotalReceived),
		}})
	}

	return jar, nil
}

// ToggleStatus switches the jar to the requested status and rejects a no-op
// flip. Pause and Resume below set the flag unconditionally; the asymmetry
// is intentional.
func (interactor *JarInteractor) ToggleStatus(ctx context.Context, caller tongo.AccountID, active bool) (*domain.TipJar, error) {

	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}
	if !jar.IsOwner(caller) {
		return nil, domain.ErrorUnauthorized
	}
	if jar.IsActive == active {
		return nil, domain.ErrorRedundantStatusChange
	}

	jar.IsActive = active
	return interactor.persistStatus(ctx, jar)
}

func (interactor *JarInteractor) Pause(ctx context.Context, caller tongo.AccountID) (*domain.TipJar, error) {
	return interactor.setStatus(ctx, caller, false)
}

func (interactor *JarInteractor) Resume(ctx context.Context, caller tongo.AccountID) (*domain.TipJar, error) {
	return interactor.setStatus(ctx, caller, true)
}

func (interactor *JarInteractor) setStatus(ctx context.Context, caller tongo.AccountID, active bool) (*domain.TipJar, error) {

	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}
	if !jar.IsOwner(caller) {
		return nil, domain.ErrorUnauthorized
	}

	jar.IsActive = active
	return interactor.persistStatus(ctx, jar)
}

func (interactor *JarInteractor) persistStatus(ctx context.Context, jar *domain.TipJar) (*domain.TipJar, error) {
	if err := interactor.jarStore.Upsert(interactor.jarAddress, jar); err != nil {
		return nil, err
	}

	interactor.notify(ctx, domain.JarEvent{StatusChanged: &domain.StatusChangedPayload{
		Jar:      interactor.jarAddress.ToRaw(),
		IsActive: jar.IsActive,
	}})
	return jar, nil
}

// UpdateMetadata overwrites description, category and goal. The same caps
// and positivity constraints as Initialize apply here too.
func (interactor *JarInteractor) UpdateMetadata(ctx context.Context, caller tongo.AccountID, description, category string, goal tlb.Grams) (*domain.TipJar, error) {

	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}
	if !jar.IsOwner(caller) {
		return nil, domain.ErrorUnauthorized
	}
	if err := domain.ValidateMetadata(description, category, goal); err != nil {
		return nil, err
	}

	jar.Description = description
	jar.Category = category
	jar.Goal = goal

	if err := interactor.jarStore.Upsert(interactor.jarAddress, jar); err != nil {
		return nil, err
	}

	interactor.notify(ctx, domain.JarEvent{Updated: &domain.UpdatedPayload{
		Jar:         interactor.jarAddress.ToRaw(),
		Description: description,
		Category:    category,
		Goal:        uint64(goal),
	}})
	return jar, nil
}

func (interactor *JarInteractor) ClearHistory(ctx context.Context, caller tongo.AccountID) (*domain.TipJar, error) {

	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}
	if !jar.IsOwner(caller) {
		return nil, domain.ErrorUnauthorized
	}

	jar.ClearHistory()

	if err := interactor.jarStore.Upsert(interactor.jarAddress, jar); err != nil {
		return nil, err
	}

	interactor.notify(ctx, domain.JarEvent{HistoryCleared: &domain.HistoryClearedPayload{
		Jar:       interactor.jarAddress.ToRaw(),
		TipsCount: jar.TotalTipsCount,
	}})
	return jar, nil
}

// Withdraw moves part of the balance to the owner, bounded by the per-call
// withdrawal limit. The transfer runs before the balance is debited.
func (interactor *JarInteractor) Withdraw(ctx context.Context, caller tongo.AccountID, amount tlb.Grams) (*domain.TipJar, error) {

	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}
	if !jar.IsOwner(caller) {
		return nil, domain.ErrorUnauthorized
	}
	if amount == 0 {
		return nil, domain.ErrorInvalidAmount
	}
	if amount > jar.TotalReceived {
		return nil, domain.ErrorInsufficientFunds
	}
	if amount > interactor.withdrawLimit {
		return nil, domain.ErrorWithdrawalLimitExceeded
	}

	if err := interactor.treasurer.Transfer(ctx, interactor.jarAddress, jar.Owner, amount, "withdraw"); err != nil {
		return nil, err
	}

	jar.TotalReceived -= amount

	if err := interactor.jarStore.Upsert(interactor.jarAddress, jar); err != nil {
		return nil, err
	}

	exporter.IncWithdrawCount()
	exporter.SetTotalReceived(uint64(jar.TotalReceived))
	interactor.notify(ctx, domain.JarEvent{Withdrawn: &domain.WithdrawnPayload{
		Jar:       interactor.jarAddress.ToRaw(),
		Owner:     jar.Owner.ToRaw(),
		Amount:    uint64(amount),
		Remaining: uint64(jar.TotalReceived),
	}})
	return jar, nil
}

// Close transfers the whole remaining balance to the owner (skipped at
// zero) and releases the stored record. The jar is gone afterwards; every
// further operation fails with ErrorJarNotFound.
func (interactor *JarInteractor) Close(ctx context.Context, caller tongo.AccountID) error {

	jar, err := interactor.loadJar()
	if err != nil {
		return err
	}
	if !jar.IsOwner(caller) {
		return domain.ErrorUnauthorized
	}

	if jar.TotalReceived > 0 {
		if err := interactor.treasurer.Transfer(ctx, interactor.jarAddress, jar.Owner, jar.TotalReceived, "close"); err != nil {
			return err
		}
	}

	if err := interactor.jarStore.Delete(interactor.jarAddress); err != nil {
		return err
	}

	exporter.SetTotalReceived(0)
	interactor.notify(ctx, domain.JarEvent{Closed: &domain.ClosedPayload{
		Jar:    interactor.jarAddress.ToRaw(),
		Owner:  jar.Owner.ToRaw(),
		Amount: uint64(jar.TotalReceived),
	}})
	return nil
}

// TipHistory pages through the buffer in storage order, which after a
// wraparound is not chronological.
func (interactor *JarInteractor) TipHistory(ctx context.Context, page, pageSize int) ([]domain.Tip, error) {
	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}
	return jar.HistoryPage(page, pageSize), nil
}

// Stats reads the running aggregates and broadcasts them.
func (interactor *JarInteractor) Stats(ctx context.Context) (*domain.StatsPayload, error) {

	jar, err := interactor.loadJar()
	if err != nil {
		return nil, err
	}

	stats := &domain.StatsPayload{
		Jar:           interactor.jarAddress.ToRaw(),
		IsActive:      jar.IsActive,
		IsPrivate:     jar.IsPrivate,
		Category:      jar.Category,
		Goal:          uint64(jar.Goal),
		TotalReceived: uint64(jar.TotalReceived),
		TipsCount:     jar.TotalTipsCount,
		GoalReached:   jar.GoalReached(),
	}

	exporter.SetTotalReceived(stats.TotalReceived)
	interactor.notify(ctx, domain.JarEvent{Stats: stats})
	return stats, nil
}

func (interactor *JarInteractor) loadJar() (*domain.TipJar, error) {
	jar, err := interactor.jarStore.Find(interactor.jarAddress)
	if err != nil {
		return nil, err
	}
	if jar == nil {
		return nil, domain.ErrorJarNotFound
	}
	return jar, nil
}

// Notifications are fire and forget: a failed publish is counted and logged,
// never propagated to the operation that produced it.
func (interactor *JarInteractor) notify(ctx context.Context, event domain.JarEvent) {
	if interactor.notifier == nil {
		return
	}
	if err := interactor.notifier.Notify(ctx, event); err != nil {
		exporter.IncErrorCount()
		log.Printf("🔴 publishing notification - %v\n", err.Error())
	}
}

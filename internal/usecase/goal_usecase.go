package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IGoalUseCase exposes the goal board and the counting trigger run after every
// confirmed exchange.

type IGoalUseCase interface {
	GetBoard(ctx context.Context, userID string) (entities.GoalBoard, error)
	RecordExchange(ctx context.Context, userID string) ([]entities.Goal, error)
}

type GoalUseCase struct {
	repo     interfaces.IGoalRepository
	reads    interfaces.IReservationRepository
	wallet   interfaces.IWalletRepository
	broker   interfaces.IChangeBroker
	notifier interfaces.INotifier
	tiers    []entities.GoalTier
	now      func() time.Time
}

var (
	_ IGoalUseCase                 = (*GoalUseCase)(nil)
	_ interfaces.IExchangeRecorder = (*GoalUseCase)(nil)
)

func NewGoalUseCase(repo interfaces.IGoalRepository, reads interfaces.IReservationRepository, wallet interfaces.IWalletRepository, broker interfaces.IChangeBroker, notifier interfaces.INotifier, tiers []entities.GoalTier) *GoalUseCase {
	if len(tiers) == 0 {
		tiers = entities.DefaultGoalTiers()
	}
	return &GoalUseCase{
		repo:     repo,
		reads:    reads,
		wallet:   wallet,
		broker:   broker,
		notifier: notifier,
		tiers:    tiers,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *GoalUseCase) GetBoard(ctx context.Context, userID string) (entities.GoalBoard, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.GoalBoard{}, ErrInvalidUserID
	}
	return u.loadBoard(ctx, userID)
}

func (u *GoalUseCase) loadBoard(ctx context.Context, userID string) (entities.GoalBoard, error) {
	if u.repo == nil || u.reads == nil {
		return entities.GoalBoard{}, errors.New("goal repositories not configured")
	}
	if err := u.repo.Seed(ctx, userID, u.tiers); err != nil {
		return entities.GoalBoard{}, fmt.Errorf("seed goals: %w", err)
	}
	goals, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return entities.GoalBoard{}, fmt.Errorf("list goals: %w", err)
	}
	completed, err := u.reads.CountCompletedExchanges(ctx, userID)
	if err != nil {
		return entities.GoalBoard{}, fmt.Errorf("count exchanges: %w", err)
	}
	return entities.NewGoalBoard(goals, completed), nil
}

// RecordExchange unlocks every tier the user's completed exchanges now reach.
//
// The bonus is credited before the flag flips, keyed by meta:<user>:<tier>, so a crash
// between both steps is repaired by the next call without paying twice. Only the call
// that actually flips conquistado announces the unlock.
func (u *GoalUseCase) RecordExchange(ctx context.Context, userID string) ([]entities.Goal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if u.wallet == nil {
		return nil, errors.New("wallet repository not configured")
	}

	board, err := u.loadBoard(ctx, userID)
	if err != nil {
		log.Printf("[goal][usecase] load board failed user_id=%s err=%v", userID, err)
		return nil, err
	}

	unlocked := make([]entities.Goal, 0)
	for _, g := range board.Unlockable() {
		if _, err := u.wallet.ApplyTransaction(ctx, entities.Transaction{
			ID:         uuid.NewString(),
			UserID:     userID,
			Tipo:       entities.TransactionBonusMeta,
			Valor:      g.GirinhasBonus,
			Descricao:  fmt.Sprintf("Meta %s conquistada", g.TipoMeta),
			Referencia: fmt.Sprintf("meta:%s:%s", userID, g.TipoMeta),
			CreatedAt:  u.now(),
		}); err != nil {
			log.Printf("[goal][usecase] bonus credit failed user_id=%s tipo_meta=%s err=%v", userID, g.TipoMeta, err)
			return unlocked, fmt.Errorf("credit goal bonus: %w", err)
		}

		after, changed, err := u.repo.MarkAchieved(ctx, userID, g.TipoMeta, u.now())
		if err != nil {
			log.Printf("[goal][usecase] mark achieved failed user_id=%s tipo_meta=%s err=%v", userID, g.TipoMeta, err)
			return unlocked, fmt.Errorf("mark goal achieved: %w", err)
		}
		if !changed {
			continue
		}
		unlocked = append(unlocked, after)
		log.Printf("[goal][usecase] goal unlocked user_id=%s tipo_meta=%s bonus=%.2f", userID, after.TipoMeta, after.GirinhasBonus)

		if u.broker != nil {
			if err := u.broker.Publish(ctx, entities.NewGoalUnlockedEvent(g, after)); err != nil {
				log.Printf("[goal][usecase] publish unlock failed user_id=%s err=%v", userID, err)
			}
		}
		if u.notifier != nil {
			if err := u.notifier.Notify(ctx, userID, entities.PushNotification{
				Title:   "Missão completada!",
				Message: fmt.Sprintf("Você conquistou a meta %s e ganhou %.0f Girinhas.", after.TipoMeta, after.GirinhasBonus),
				Type:    entities.NotificationMissaoCompletada,
				Data:    map[string]any{"tipo_meta": string(after.TipoMeta)},
			}); err != nil {
				log.Printf("[goal][usecase] unlock push failed user_id=%s err=%v", userID, err)
			}
		}
	}
	return unlocked, nil
}

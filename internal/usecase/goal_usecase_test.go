package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"giramae/internal/domain/entities"
	mock_interfaces "giramae/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seededGoals(userID string, achieved ...entities.GoalTierName) []entities.Goal {
	done := map[entities.GoalTierName]bool{}
	for _, a := range achieved {
		done[a] = true
	}
	out := []entities.Goal{}
	for _, tier := range entities.DefaultGoalTiers() {
		out = append(out, entities.Goal{
			UserID:            userID,
			TipoMeta:          tier.Tipo,
			TrocasNecessarias: tier.TrocasNecessarias,
			GirinhasBonus:     tier.GirinhasBonus,
			Conquistado:       done[tier.Tipo],
		})
	}
	return out
}

func TestGoalUseCase_GetBoard(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewGoalUseCase(nil, nil, nil, nil, nil, nil)
		if _, err := uc.GetBoard(context.Background(), " "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("seeds then lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGoalRepository(ctrl)
		reads := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewGoalUseCase(repo, reads, nil, nil, nil, nil)

		gomock.InOrder(
			repo.EXPECT().Seed(gomock.Any(), "u1", entities.DefaultGoalTiers()).Return(nil),
			repo.EXPECT().ListByUser(gomock.Any(), "u1").Return(seededGoals("u1"), nil),
		)
		reads.EXPECT().CountCompletedExchanges(gomock.Any(), "u1").Return(0, nil)

		board, err := uc.GetBoard(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		next, ok := board.NextGoal()
		if !ok || next.TipoMeta != entities.GoalTierBronze {
			t.Fatalf("expected bronze next, got %+v ok=%v", next, ok)
		}
		if board.Progress(entities.GoalTierBronze) != 0 {
			t.Fatalf("expected 0%% progress")
		}
	})

	t.Run("seed failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGoalRepository(ctrl)
		reads := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewGoalUseCase(repo, reads, nil, nil, nil, nil)

		repo.EXPECT().Seed(gomock.Any(), "u1", gomock.Any()).Return(errors.New("throttled"))
		if _, err := uc.GetBoard(context.Background(), "u1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestGoalUseCase_RecordExchange(t *testing.T) {
	t.Run("unlocks reached tiers once and credits bonus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGoalRepository(ctrl)
		reads := mock_interfaces.NewMockIReservationRepository(ctrl)
		wallet := mock_interfaces.NewMockIWalletRepository(ctrl)
		broker := mock_interfaces.NewMockIChangeBroker(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewGoalUseCase(repo, reads, wallet, broker, notifier, nil)
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		repo.EXPECT().Seed(gomock.Any(), "u1", gomock.Any()).Return(nil)
		repo.EXPECT().ListByUser(gomock.Any(), "u1").Return(seededGoals("u1", entities.GoalTierBronze), nil)
		reads.EXPECT().CountCompletedExchanges(gomock.Any(), "u1").Return(15, nil)

		wallet.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr entities.Transaction) (bool, error) {
				if tr.Tipo != entities.TransactionBonusMeta || tr.Valor != 25 || tr.Referencia != "meta:u1:prata" {
					t.Fatalf("unexpected bonus credit: %+v", tr)
				}
				return true, nil
			},
		)
		achieved := entities.Goal{UserID: "u1", TipoMeta: entities.GoalTierPrata, TrocasNecessarias: 15, GirinhasBonus: 25, Conquistado: true, DataConquista: &now}
		repo.EXPECT().MarkAchieved(gomock.Any(), "u1", entities.GoalTierPrata, now).Return(achieved, true, nil)
		broker.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev entities.ChangeEvent) error {
				if !ev.IsGoalUnlock() || ev.UserID != "u1" {
					t.Fatalf("expected goal unlock event, got %+v", ev)
				}
				return nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, n entities.PushNotification) error {
				if n.Type != entities.NotificationMissaoCompletada {
					t.Fatalf("unexpected push type %s", n.Type)
				}
				return nil
			},
		)

		unlocked, err := uc.RecordExchange(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(unlocked) != 1 || unlocked[0].TipoMeta != entities.GoalTierPrata {
			t.Fatalf("expected prata unlocked, got %+v", unlocked)
		}
	})

	t.Run("lost flip race announces nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGoalRepository(ctrl)
		reads := mock_interfaces.NewMockIReservationRepository(ctrl)
		wallet := mock_interfaces.NewMockIWalletRepository(ctrl)
		broker := mock_interfaces.NewMockIChangeBroker(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewGoalUseCase(repo, reads, wallet, broker, notifier, nil)

		repo.EXPECT().Seed(gomock.Any(), "u1", gomock.Any()).Return(nil)
		repo.EXPECT().ListByUser(gomock.Any(), "u1").Return(seededGoals("u1"), nil)
		reads.EXPECT().CountCompletedExchanges(gomock.Any(), "u1").Return(5, nil)
		// The credit is keyed, so the second writer's attempt is a no-op.
		wallet.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().MarkAchieved(gomock.Any(), "u1", entities.GoalTierBronze, gomock.Any()).Return(entities.Goal{}, false, nil)

		unlocked, err := uc.RecordExchange(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(unlocked) != 0 {
			t.Fatalf("expected nothing unlocked, got %+v", unlocked)
		}
	})

	t.Run("credit failure stops before flipping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGoalRepository(ctrl)
		reads := mock_interfaces.NewMockIReservationRepository(ctrl)
		wallet := mock_interfaces.NewMockIWalletRepository(ctrl)
		uc := NewGoalUseCase(repo, reads, wallet, nil, nil, nil)

		repo.EXPECT().Seed(gomock.Any(), "u1", gomock.Any()).Return(nil)
		repo.EXPECT().ListByUser(gomock.Any(), "u1").Return(seededGoals("u1"), nil)
		reads.EXPECT().CountCompletedExchanges(gomock.Any(), "u1").Return(6, nil)
		wallet.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).Return(false, errors.New("db"))

		if _, err := uc.RecordExchange(context.Background(), "u1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("below every threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGoalRepository(ctrl)
		reads := mock_interfaces.NewMockIReservationRepository(ctrl)
		wallet := mock_interfaces.NewMockIWalletRepository(ctrl)
		uc := NewGoalUseCase(repo, reads, wallet, nil, nil, nil)

		repo.EXPECT().Seed(gomock.Any(), "u1", gomock.Any()).Return(nil)
		repo.EXPECT().ListByUser(gomock.Any(), "u1").Return(seededGoals("u1"), nil)
		reads.EXPECT().CountCompletedExchanges(gomock.Any(), "u1").Return(4, nil)

		unlocked, err := uc.RecordExchange(context.Background(), "u1")
		if err != nil || len(unlocked) != 0 {
			t.Fatalf("expected nothing, got %+v err=%v", unlocked, err)
		}
	})
}

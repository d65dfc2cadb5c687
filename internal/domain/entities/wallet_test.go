package entities

import "testing"

func TestSplitFee(t *testing.T) {
	credited, fee := SplitFee(20, 10)
	if credited != 18 || fee != 2 {
		t.Fatalf("expected 18/2, got %v/%v", credited, fee)
	}

	credited, fee = SplitFee(15, 5)
	if credited != 14.25 || fee != 0.75 {
		t.Fatalf("expected 14.25/0.75, got %v/%v", credited, fee)
	}

	credited, fee = SplitFee(10, 0)
	if credited != 10 || fee != 0 {
		t.Fatalf("expected no fee, got %v/%v", credited, fee)
	}
}

func TestTransactionDelta(t *testing.T) {
	cases := map[TransactionType]float64{
		TransactionBloqueioReserva:  -5,
		TransactionReembolsoReserva: 5,
		TransactionRecebidoTroca:    5,
		TransactionTaxaQueimada:     0,
		TransactionBonusMeta:        5,
		TransactionCompra:           5,
	}
	for tipo, want := range cases {
		if got := (Transaction{Tipo: tipo, Valor: 5}).Delta(); got != want {
			t.Fatalf("%s: expected %v got %v", tipo, want, got)
		}
	}
}

func TestWalletCanAfford(t *testing.T) {
	w := Wallet{SaldoAtual: 20}
	if !w.CanAfford(20) || w.CanAfford(20.01) {
		t.Fatalf("unexpected affordability for %+v", w)
	}
}

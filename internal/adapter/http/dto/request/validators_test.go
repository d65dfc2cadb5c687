package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestRegisterValidators_Codigo(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		codigo string
		valid  bool
	}{
		{"123456", true},
		{"000001", true},
		{"12345", false},
		{"1234567", false},
		{"12a456", false},
		{"", false},
	}
	for _, tc := range cases {
		err := binding.Validator.ValidateStruct(ConfirmReservationRequest{Codigo: tc.codigo})
		if (err == nil) != tc.valid {
			t.Fatalf("codigo %q: expected valid=%v, got err=%v", tc.codigo, tc.valid, err)
		}
	}
}

func TestItemCreateRequest_ToEntity(t *testing.T) {
	item := ItemCreateRequest{Titulo: "  Berço  ", Categoria: " moveis ", ValorGirinhas: 40}.ToEntity()
	if item.Titulo != "Berço" || item.Categoria != "moveis" || item.ValorGirinhas != 40 {
		t.Fatalf("unexpected entity %+v", item)
	}
	if item.ID != "" || item.Status != "" || item.PublicadoPor != "" {
		t.Fatalf("identity fields must come from the service: %+v", item)
	}
}

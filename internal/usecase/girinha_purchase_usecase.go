package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"giramae/internal/config"
	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

var (
	ErrGirinhaPurchaseNotFound        = errors.New("girinha purchase not found")
	ErrInvalidPurchaseQuantity        = errors.New("invalid quantidade")
	ErrInvalidPurchaseID              = errors.New("invalid purchase id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IGirinhaPurchaseUseCase encapsulates buying Girinhas with BRL.
//
// Requested behavior:
//   - Charge quantidade x GIRINHA_PRECO_MANUAL through the payment gateway.
//   - Store the purchase with the provider response and credit the wallet once approved.

type IGirinhaPurchaseUseCase interface {
	CreateAndApprove(ctx context.Context, userID string, quantidade int, mpPayload json.RawMessage) (entities.GirinhaPurchase, error)
	GetByID(ctx context.Context, userID, id string) (entities.GirinhaPurchase, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.GirinhaPurchase, error)
}

type GirinhaPurchaseUseCase struct {
	repo    interfaces.IGirinhaPurchaseRepository
	wallet  interfaces.IWalletRepository
	gateway interfaces.IPaymentGateway
	cfg     config.Marketplace
}

var _ IGirinhaPurchaseUseCase = (*GirinhaPurchaseUseCase)(nil)

func NewGirinhaPurchaseUseCase(repo interfaces.IGirinhaPurchaseRepository, wallet interfaces.IWalletRepository, gateway interfaces.IPaymentGateway, cfg config.Marketplace) *GirinhaPurchaseUseCase {
	if cfg.GirinhaPrice <= 0 {
		cfg.GirinhaPrice = 1
	}
	if cfg.MaxGirinhaPurchase <= 0 {
		cfg.MaxGirinhaPurchase = 999
	}
	return &GirinhaPurchaseUseCase{repo: repo, wallet: wallet, gateway: gateway, cfg: cfg}
}

func (u *GirinhaPurchaseUseCase) CreateAndApprove(ctx context.Context, userID string, quantidade int, mpPayload json.RawMessage) (entities.GirinhaPurchase, error) {
	log.Printf("[purchase][usecase] create-and-approve start user_id=%q quantidade=%d payload_len=%d", userID, quantidade, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.GirinhaPurchase{}, ErrInvalidUserID
	}
	if quantidade <= 0 || quantidade > u.cfg.MaxGirinhaPurchase {
		log.Printf("[purchase][usecase] invalid quantidade user_id=%s quantidade=%d", userID, quantidade)
		return entities.GirinhaPurchase{}, ErrInvalidPurchaseQuantity
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[purchase][usecase] invalid payload user_id=%s", userID)
			return entities.GirinhaPurchase{}, ErrInvalidMPPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[purchase][usecase] gateway not configured user_id=%s", userID)
		return entities.GirinhaPurchase{}, errors.New("payment gateway not configured")
	}
	if u.wallet == nil {
		log.Printf("[purchase][usecase] wallet repository not configured user_id=%s", userID)
		return entities.GirinhaPurchase{}, errors.New("wallet repository not configured")
	}

	purchaseID := uuid.NewString()
	total := entities.Round2(float64(quantidade) * u.cfg.GirinhaPrice)

	// The charged amount always comes from the configured Girinha price.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil && reqMap != nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[purchase][usecase] missing payment_method_id user_id=%s", userID)
			return entities.GirinhaPurchase{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[purchase][usecase] missing/invalid payer user_id=%s", userID)
			return entities.GirinhaPurchase{}, ErrInvalidMPPayload
		}
		reqMap["external_reference"] = purchaseID
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Compra de %d Girinhas", quantidade)
		}
		reqMap["transaction_amount"] = total
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else if !mockMode {
		log.Printf("[purchase][usecase] payload is not an object user_id=%s", userID)
		return entities.GirinhaPurchase{}, ErrInvalidMPPayload
	}

	var providerResp json.RawMessage
	providerStatus := ""
	if mockMode {
		log.Printf("[purchase][usecase] mock mode enabled; skipping external payment gateway purchase_id=%s", purchaseID)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(mpPayload, &mockResp)
		mockResp["id"] = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		mockResp["external_reference"] = purchaseID
		mockResp["transaction_amount"] = total
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.GirinhaPurchase{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[purchase][usecase] calling payment gateway purchase_id=%s amount=%.2f", purchaseID, total)
		var err error
		_, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[purchase][usecase] payment gateway failed purchase_id=%s err=%v", purchaseID, err)
			return entities.GirinhaPurchase{}, mapGatewayError(err)
		}
	}

	if providerStatus == "" {
		providerStatus = gjson.GetBytes(providerResp, "status").String()
	}
	status := purchaseStatusFromProvider(providerStatus)
	log.Printf("[purchase][usecase] payment gateway answered purchase_id=%s provider_payment_id=%s provider_status=%s", purchaseID, gjson.GetBytes(providerResp, "id").String(), providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[purchase][usecase] provider response unmarshal failed purchase_id=%s err=%v", purchaseID, err)
	}

	p := entities.GirinhaPurchase{
		ID:           purchaseID,
		UserID:       userID,
		Quantidade:   quantidade,
		ValorTotal:   total,
		Date:         time.Now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[purchase][usecase] purchase repository create failed purchase_id=%s err=%v", purchaseID, err)
		return entities.GirinhaPurchase{}, err
	}

	if created.Status == entities.PurchaseStatusAprovado {
		if _, err := u.wallet.ApplyTransaction(ctx, entities.Transaction{
			ID:         uuid.NewString(),
			UserID:     userID,
			Tipo:       entities.TransactionCompra,
			Valor:      float64(quantidade),
			Descricao:  fmt.Sprintf("Compra de %d Girinhas", quantidade),
			Referencia: "compra:" + created.ID,
			CreatedAt:  created.Date,
		}); err != nil {
			log.Printf("[purchase][usecase] wallet credit failed purchase_id=%s err=%v", created.ID, err)
			return entities.GirinhaPurchase{}, fmt.Errorf("credit purchase: %w", err)
		}
	}
	log.Printf("[purchase][usecase] create-and-approve success purchase_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func purchaseStatusFromProvider(providerStatus string) entities.PurchaseStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PurchaseStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PurchaseStatusNegado
	default:
		return entities.PurchaseStatusPendente
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// In sandbox, either payer.id or payer.email may be used.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}
	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}
	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[purchase][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	return config.IsEnabled("PAYMENT_GATEWAY_MOCK") || config.IsEnabled("MERCADOPAGO_MOCK")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *GirinhaPurchaseUseCase) GetByID(ctx context.Context, userID, id string) (entities.GirinhaPurchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.GirinhaPurchase{}, ErrInvalidPurchaseID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.GirinhaPurchase{}, err
	}
	if p.ID == "" || p.UserID != userID {
		return entities.GirinhaPurchase{}, ErrGirinhaPurchaseNotFound
	}
	return p, nil
}

func (u *GirinhaPurchaseUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.GirinhaPurchase, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

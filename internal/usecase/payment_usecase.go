package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase/interfaces"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentNotApproved             = errors.New("payment was not approved by the provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions configure how payloads are prepared for Mercado Pago.
type PaymentOptions struct {
	// Mock skips payload checks that only the live provider needs.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IPaymentUseCase collects the balance of a pending payment item through the
// payment gateway.
type IPaymentUseCase interface {
	PayItem(ctx context.Context, caller entities.Caller, itemID string, mpPayload json.RawMessage) (entities.PaymentItem, error)
	GetItem(ctx context.Context, caller entities.Caller, itemID string) (entities.PaymentItem, error)
}

type PaymentUseCase struct {
	payments interfaces.IPaymentItemRepository
	gateway  interfaces.IPaymentGateway
	opts     PaymentOptions
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(payments interfaces.IPaymentItemRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, gateway: gateway, opts: opts}
}

func (u *PaymentUseCase) GetItem(ctx context.Context, caller entities.Caller, itemID string) (entities.PaymentItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.PaymentItem{}, ErrInvalidPaymentItemID
	}
	it, err := u.payments.GetByID(ctx, itemID)
	if err != nil {
		return entities.PaymentItem{}, collaborator("load payment item", err)
	}
	if it.ID == "" || !caller.CanAccess(it.OutfitterID, it.ClientEmail) {
		return entities.PaymentItem{}, ErrNotYours
	}
	return it, nil
}

// PayItem charges the item's outstanding balance. The amount always comes from
// the stored item; whatever the caller put in transaction_amount is replaced.
func (u *PaymentUseCase) PayItem(ctx context.Context, caller entities.Caller, itemID string, mpPayload json.RawMessage) (entities.PaymentItem, error) {
	log.Printf("[payment][usecase] pay start raw_item_id=%q payload_len=%d", itemID, len(mpPayload))
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			log.Printf("[payment][usecase] invalid payload item_id=%s", itemID)
			return entities.PaymentItem{}, validation(ErrInvalidMPPayload)
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.PaymentItem{}, collaborator("pay item", ErrPaymentGatewayNotConfigured)
	}

	it, err := u.GetItem(ctx, caller, itemID)
	if err != nil {
		return entities.PaymentItem{}, err
	}
	if it.Status != entities.PaymentStatusPending {
		return entities.PaymentItem{}, stateErr(fmt.Errorf("%w: item %s is %s", ErrPaymentItemNotPending, it.ID, it.Status))
	}
	balance := it.BalanceCents()
	log.Printf("[payment][usecase] item loaded item_id=%s contract_id=%s type=%s balance_cents=%d", it.ID, it.ContractID, it.ItemType, balance)

	payload, err := u.preparePayload(it, balance, mpPayload)
	if err != nil {
		return entities.PaymentItem{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway item_id=%s", it.ID)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed item_id=%s err=%v", it.ID, err)
		return entities.PaymentItem{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway returned item_id=%s provider_payment_id=%s provider_status=%s", it.ID, providerPaymentID, providerStatus)
	if providerStatus != "approved" {
		return entities.PaymentItem{}, validation(fmt.Errorf("%w: status %s", ErrPaymentNotApproved, providerStatus))
	}

	now := time.Now().UTC()
	it.AmountPaidCents += balance
	it.Status = entities.PaymentStatusPaid
	it.ProviderPaymentID = providerPaymentID
	it.ProviderPayload = providerResp
	it.PaidAt = &now
	it.UpdatedAt = now

	paid, err := u.payments.MarkPaid(ctx, it)
	if err != nil {
		log.Printf("[payment][usecase] mark paid failed item_id=%s provider_payment_id=%s err=%v", it.ID, providerPaymentID, err)
		return entities.PaymentItem{}, collaborator("mark payment item paid", err)
	}
	log.Printf("[payment][usecase] pay success item_id=%s provider_payment_id=%s amount_cents=%d", paid.ID, providerPaymentID, balance)
	return paid, nil
}

// preparePayload links the provider request to the item and pins the amount.
func (u *PaymentUseCase) preparePayload(it entities.PaymentItem, balance int64, raw json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		return nil, validation(ErrInvalidMPPayload)
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id item_id=%s", it.ID)
			return nil, validation(fmt.Errorf("%w: payment_method_id is required", ErrInvalidMPPayload))
		}
		u.normalizeSandboxPayer(req)
		u.ensurePayerDefaults(req, it.ClientEmail)
		if !hasPayer(req) {
			log.Printf("[payment][usecase] missing/invalid payer item_id=%s", it.ID)
			return nil, validation(fmt.Errorf("%w: payer.email or payer.id is required", ErrInvalidMPPayload))
		}
	}

	req["external_reference"] = it.ID
	if _, ok := req["description"]; !ok {
		req["description"] = describeItem(it)
	}
	req["transaction_amount"] = float64(balance) / 100

	b, err := json.Marshal(req)
	if err != nil {
		return nil, validation(fmt.Errorf("%w: %v", ErrInvalidMPPayload, err))
	}
	return b, nil
}

func describeItem(it entities.PaymentItem) string {
	if it.ItemType == entities.PaymentItemGuideFeeInstallment {
		return fmt.Sprintf("Guide fee %s installment %d/%d", it.ContractID, it.InstallmentNumber, it.InstallmentCount)
	}
	return fmt.Sprintf("Guide fee %s", it.ContractID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
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

// ensurePayerDefaults fills payer.email from the item's client, or from the
// configured sandbox payer when the item has none.
func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any, clientEmail string) {
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
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.sandboxEmail() != "":
		payer["email"] = u.sandboxEmail()
	case strings.TrimSpace(clientEmail) != "":
		payer["email"] = strings.TrimSpace(clientEmail)
	}
}

func (u *PaymentUseCase) sandboxEmail() string {
	if !u.opts.sandbox() {
		return ""
	}
	if e := strings.TrimSpace(u.opts.TestPayerEmail); e != "" {
		return e
	}
	return "test_user_br@testuser.com"
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox accepts.
func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.opts.sandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

// classifyGatewayError turns provider rejections of the request into
// validation errors; anything else is a collaborator failure.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return validation(fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err))
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return validation(fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err))
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return collaborator("create payment", fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err))
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return validation(fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err))
	}
	return collaborator("create payment", err)
}

package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nepolianStore/business/cart"
	"nepolianStore/domain"
	"nepolianStore/pkg/logger"
	"nepolianStore/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type (
	// OrdersRepository contract interface
	OrdersRepository interface {
		CreateOrder(ctx context.Context, data domain.Orders) (domain.Orders, error)
	}

	// StockRepository contract interface
	StockRepository interface {
		GetAvailable(ctx context.Context, id uint64) (int, error)
		SetAvailable(ctx context.Context, id uint64, available int) error
	}

	// SessionRepository contract interface
	SessionRepository interface {
		Get(ctx context.Context, userID string) (domain.CheckoutSession, error)
		Save(ctx context.Context, session domain.CheckoutSession) error
		Delete(ctx context.Context, userID string) error
	}

	// NotificationRepository contract interface
	NotificationRepository interface {
		NotifyAdmin(subject, htmlContent string) error
	}

	// PaymentGateway contract interface
	PaymentGateway interface {
		Enabled() bool
		GatewayURL() string
		PaymentForm(transactionUUID string, totalAmount float64) (map[string]string, error)
	}

	// ConfirmResult carries the stored order plus, for gateway payments, the
	// form the client must post to the gateway.
	ConfirmResult struct {
		Order       domain.Orders     `json:"order"`
		Message     string            `json:"message"`
		GatewayURL  string            `json:"gateway_url,omitempty"`
		PaymentForm map[string]string `json:"payment_form,omitempty"`
	}
)

type checkoutService struct {
	validate         *validator.Validate
	sessionRepo      SessionRepository
	cartRepo         cart.CartRepository
	ordersRepo       OrdersRepository
	stockRepo        StockRepository
	notificationRepo NotificationRepository
	gateway          PaymentGateway
}

func NewCheckoutService(
	sessionRepo SessionRepository,
	cartRepo cart.CartRepository,
	ordersRepo OrdersRepository,
	stockRepo StockRepository,
	notificationRepo NotificationRepository,
	gateway PaymentGateway,
) *checkoutService {
	return &checkoutService{
		validate:         validator.New(),
		sessionRepo:      sessionRepo,
		cartRepo:         cartRepo,
		ordersRepo:       ordersRepo,
		stockRepo:        stockRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
	}
}

func (s *checkoutService) GetSession(ctx context.Context, userID string) (domain.CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting checkout session")
		return domain.CheckoutSession{}, fmt.Errorf("context error: %w", err)
	}

	return s.sessionRepo.Get(ctx, userID)
}

// SelectPaymentMethod starts (or restarts) a checkout and moves it to address
// collection. Online payment can only be chosen while the gateway is enabled.
func (s *checkoutService) SelectPaymentMethod(ctx context.Context, userID, paymentMethod string) (domain.CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when selecting payment method")
		return domain.CheckoutSession{}, fmt.Errorf("context error: %w", err)
	}

	switch paymentMethod {
	case domain.PaymentMethodCOD:
	case domain.PaymentMethodEsewa:
		if !s.gateway.Enabled() {
			return domain.CheckoutSession{}, errors.New("online payment is currently unavailable")
		}
	default:
		return domain.CheckoutSession{}, errors.New("unknown payment method")
	}

	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get checkout session", err)
		return domain.CheckoutSession{}, err
	}

	session.PaymentMethod = paymentMethod
	session.State = domain.CheckoutStateAddressCollection

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		logger.Error("Failed to save checkout session", err)
		return domain.CheckoutSession{}, err
	}

	return session, nil
}

// SubmitAddress validates the delivery details and advances the session to
// confirmation. On validation failure the session stays where it was.
func (s *checkoutService) SubmitAddress(ctx context.Context, userID string, details domain.DeliveryDetails) (domain.CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when submitting address")
		return domain.CheckoutSession{}, fmt.Errorf("context error: %w", err)
	}

	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get checkout session", err)
		return domain.CheckoutSession{}, err
	}

	if session.State != domain.CheckoutStateAddressCollection && session.State != domain.CheckoutStateConfirmation {
		return session, errors.New("select a payment method first")
	}

	details.UserID = userID
	if err := s.validate.Struct(&details); err != nil {
		logger.Error("Invalid delivery details", err)
		return session, fmt.Errorf("invalid delivery details: %w", err)
	}

	session.DeliveryDetails = details
	session.State = domain.CheckoutStateConfirmation

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		logger.Error("Failed to save checkout session", err)
		return domain.CheckoutSession{}, err
	}

	return session, nil
}

// Confirm places the order. The flow is sequential: availability check, order
// insert, per-line stock decrement, admin email, cart clear. The stock
// decrement is a read-modify-write with no guard; concurrent confirms of the
// same product can interleave and drive the count negative. Negative results
// are logged and counted, not rolled back.
func (s *checkoutService) Confirm(ctx context.Context, userID string) (ConfirmResult, error) {
	start := time.Now()
	defer func() {
		metrics.CheckoutLatency.Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		logger.Error("context error when confirming checkout")
		return ConfirmResult{}, fmt.Errorf("context error: %w", err)
	}

	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get checkout session", err)
		return ConfirmResult{}, err
	}

	if session.State != domain.CheckoutStateConfirmation {
		return ConfirmResult{}, errors.New("checkout is not ready to confirm")
	}

	userCart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		return ConfirmResult{}, err
	}

	if userCart.Empty() {
		return ConfirmResult{}, errors.New("cart is empty")
	}

	session.State = domain.CheckoutStateSubmitting
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		logger.Error("Failed to save checkout session", err)
		return ConfirmResult{}, err
	}

	// Step 1: every line must be in stock before anything is written.
	for _, line := range userCart.Lines {
		count, err := s.stockRepo.GetAvailable(ctx, line.ProductID)
		if err != nil {
			return ConfirmResult{}, s.fail(ctx, session, err)
		}
		if count < line.Quantity {
			return ConfirmResult{}, s.fail(ctx, session, fmt.Errorf("insufficient stock for %s", line.ProductName))
		}
	}

	// Step 2: insert the order.
	lines := make([]domain.OrderLine, 0, len(userCart.Lines))
	for _, line := range userCart.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}

	status := domain.OrderStatusPendingPayment
	if session.PaymentMethod == domain.PaymentMethodCOD {
		status = domain.OrderStatusPendingDelivery
	}

	order, err := s.ordersRepo.CreateOrder(ctx, domain.Orders{
		TransactionUUID: uuid.NewString(),
		TotalAmount:     userCart.Total(),
		Status:          status,
		Payment:         false,
		PaymentMethod:   session.PaymentMethod,
		DeliveryDetails: datatypes.NewJSONType(session.DeliveryDetails),
		Products:        datatypes.NewJSONSlice(lines),
	})
	if err != nil {
		logger.Error("Failed to create order", err)
		return ConfirmResult{}, s.fail(ctx, session, errors.New("order save failed"))
	}

	// Step 3: decrement stock per line. Each decrement re-reads the count, so
	// a checkout that raced past the step 1 check can push it negative.
	// Failures here do not undo the order; they are logged and the count is
	// reconciled by hand.
	for _, line := range userCart.Lines {
		count, err := s.stockRepo.GetAvailable(ctx, line.ProductID)
		if err != nil {
			logger.Error("Failed to read stock after order", err)
			continue
		}

		newCount := count - line.Quantity
		if newCount < 0 {
			logger.Warn("Stock went negative after checkout",
				"product_id", line.ProductID, "available", newCount)
			metrics.OversoldProducts.Inc()
		}
		if err := s.stockRepo.SetAvailable(ctx, line.ProductID, newCount); err != nil {
			logger.Error("Failed to decrement stock after order", err)
		}
	}

	// Step 4: tell the admins. Best effort, the order already exists.
	subject := fmt.Sprintf("User %s has placed an order of transaction id: %s of price %.2f",
		session.DeliveryDetails.FullName, order.TransactionUUID, order.TotalAmount)
	if err := s.notificationRepo.NotifyAdmin(subject, orderEmailBody(order, session.DeliveryDetails)); err != nil {
		logger.Error("Failed to notify admins of new order", err)
	}

	// Step 5: the cart is consumed.
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		logger.Error("Failed to clear cart after order", err)
	}

	session.State = domain.CheckoutStateSuccess
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		logger.Error("Failed to save checkout session", err)
	}

	metrics.OrdersPlaced.Inc()

	result := ConfirmResult{
		Order:   order,
		Message: "Order placed successfully! We will contact you for delivery.",
	}

	if session.PaymentMethod == domain.PaymentMethodEsewa {
		form, err := s.gateway.PaymentForm(order.TransactionUUID, order.TotalAmount)
		if err != nil {
			logger.Error("Failed to build payment form", err)
		} else {
			result.GatewayURL = s.gateway.GatewayURL()
			result.PaymentForm = form
		}
	}

	return result, nil
}

// fail parks the session in the failed state and passes the cause through.
func (s *checkoutService) fail(ctx context.Context, session domain.CheckoutSession, cause error) error {
	session.State = domain.CheckoutStateFailed
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		logger.Error("Failed to save checkout session", err)
	}

	return cause
}

func orderEmailBody(order domain.Orders, details domain.DeliveryDetails) string {
	body := fmt.Sprintf(
		"<h3>New order %s</h3><p>Customer: %s<br>Contact: %s<br>Address: %s, %s, %s</p><ul>",
		order.TransactionUUID, details.FullName, details.ContactNumber,
		details.LocalArea, details.District, details.Province,
	)
	for _, line := range order.Products {
		body += fmt.Sprintf("<li>%s x%d @ %.2f</li>", line.ProductName, line.Quantity, line.Price)
	}
	body += fmt.Sprintf("</ul><p>Total: %.2f (%s)</p>", order.TotalAmount, order.PaymentMethod)

	return body
}

package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/config"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/app/contracts"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/constvars"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/exceptions"
	"github.com/ramakrishnanyadav/LegalConnect-main-sub000/internal/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	razorpayServiceInstance contracts.PaymentGatewayService
	onceRazorpayService     sync.Once
)

type razorpayService struct {
	HTTPClient     *http.Client
	Limiter        *rate.Limiter
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceRazorpayService.Do(func() {
		instance := &razorpayService{
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
			},
			Limiter:        rate.NewLimiter(rate.Limit(internalConfig.PaymentGateway.RequestsPerSecond), internalConfig.PaymentGateway.Burst),
			Log:            logger,
			InternalConfig: internalConfig,
		}
		razorpayServiceInstance = instance
	})
	return razorpayServiceInstance
}

func (s *razorpayService) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !s.Limiter.Allow() {
		err := exceptions.ErrPaymentGatewayRateLimited(fmt.Errorf("outbound order creation rate exceeded"))
		s.Log.Warn("razorpayService.CreateOrder rate limited",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return "", err
	}

	payload := createOrderRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}

	url := fmt.Sprintf("%s/orders", s.InternalConfig.PaymentGateway.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(s.InternalConfig.PaymentGateway.KeyID, s.InternalConfig.PaymentGateway.KeySecret)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("razorpayService.CreateOrder error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		err := exceptions.ErrPaymentGatewayCreateOrder(fmt.Errorf("gateway responded with status %d", resp.StatusCode))
		s.Log.Error("razorpayService.CreateOrder unexpected gateway status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", err
	}

	var orderResponse createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResponse); err != nil {
		return "", exceptions.ErrDecodeResponse(err, "payment gateway")
	}
	if orderResponse.ID == "" {
		return "", exceptions.ErrPaymentGatewayCreateOrder(fmt.Errorf("gateway returned an empty order id"))
	}

	s.Log.Info("razorpayService.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderResponse.ID),
	)
	return orderResponse.ID, nil
}

func (s *razorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	return utils.VerifyPaymentSignature(s.InternalConfig.PaymentGateway.KeySecret, orderID, paymentID, signature)
}

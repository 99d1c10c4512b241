package user

import (
	"fmt"
	"time"

	"trailhub/models"
	"trailhub/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentmethod"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ensureStripeCustomer returns the user's Stripe customer ID, creating the
// customer on first use.
func (s *DefaultUserService) ensureStripeCustomer(user *models.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.Name),
	}
	params.AddMetadata("userId", user.ID)
	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment profile: %w", err)
	}

	err = s.Repo.UpdateWithDocument(user.ID, bson.M{
		"stripeCustomerId": cust.ID,
		"updatedAt":        time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store payment profile: %w", err)
	}
	user.StripeCustomerID = cust.ID
	return cust.ID, nil
}

// AttachPaymentMethod links a Stripe payment method to the user's customer,
// optionally making it the default.
func (s *DefaultUserService) AttachPaymentMethod(userID string, req models.AttachPaymentMethodRequest) (*models.PaymentMethodInfo, error) {
	logger := utils.GetLogger()

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	customerID, err := s.ensureStripeCustomer(user)
	if err != nil {
		return nil, err
	}

	pm, err := paymentmethod.Attach(req.PaymentMethodID, &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	})
	if err != nil {
		logger.Error("AttachPaymentMethod: stripe attach failed",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to attach payment method: %w", err)
	}

	isDefault := req.SetDefault || user.DefaultPaymentMethodID == ""
	if isDefault {
		if err := s.setStripeDefault(userID, customerID, pm.ID); err != nil {
			return nil, err
		}
	}

	info := paymentMethodInfo(pm, isDefault)
	return &info, nil
}

// ListPaymentMethods returns the user's stored cards.
func (s *DefaultUserService) ListPaymentMethods(userID string) ([]models.PaymentMethodInfo, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user.StripeCustomerID == "" {
		return []models.PaymentMethodInfo{}, nil
	}

	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(user.StripeCustomerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	}
	methods := []models.PaymentMethodInfo{}
	iter := paymentmethod.List(params)
	for iter.Next() {
		pm := iter.PaymentMethod()
		methods = append(methods, paymentMethodInfo(pm, pm.ID == user.DefaultPaymentMethodID))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}

// DetachPaymentMethod removes a stored card. Detaching the default clears
// the default pointer.
func (s *DefaultUserService) DetachPaymentMethod(userID, paymentMethodID string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user.StripeCustomerID == "" {
		return fmt.Errorf("no payment profile for this user")
	}

	if _, err := paymentmethod.Detach(paymentMethodID, &stripe.PaymentMethodDetachParams{}); err != nil {
		return fmt.Errorf("failed to detach payment method: %w", err)
	}

	if user.DefaultPaymentMethodID == paymentMethodID {
		err := s.Repo.UpdateWithDocument(userID, bson.M{
			"defaultPaymentMethodId": "",
			"updatedAt":              time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to clear default payment method: %w", err)
		}
	}
	return nil
}

// SetDefaultPaymentMethod marks an already-attached card as the default.
func (s *DefaultUserService) SetDefaultPaymentMethod(userID, paymentMethodID string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user.StripeCustomerID == "" {
		return fmt.Errorf("no payment profile for this user")
	}
	return s.setStripeDefault(userID, user.StripeCustomerID, paymentMethodID)
}

// setStripeDefault points the customer's invoice settings and the local
// record at the given payment method.
func (s *DefaultUserService) setStripeDefault(userID, customerID, paymentMethodID string) error {
	_, err := customer.Update(customerID, &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to set default payment method: %w", err)
	}
	err = s.Repo.UpdateWithDocument(userID, bson.M{
		"defaultPaymentMethodId": paymentMethodID,
		"updatedAt":              time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to store default payment method: %w", err)
	}
	return nil
}

func paymentMethodInfo(pm *stripe.PaymentMethod, isDefault bool) models.PaymentMethodInfo {
	info := models.PaymentMethodInfo{
		ID:        pm.ID,
		IsDefault: isDefault,
	}
	if pm.Card != nil {
		info.Brand = string(pm.Card.Brand)
		info.Last4 = pm.Card.Last4
		info.ExpMonth = pm.Card.ExpMonth
		info.ExpYear = pm.Card.ExpYear
	}
	return info
}

package notification

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"myfridge-backend/domain"
	"myfridge-backend/entities"
	"myfridge-backend/internal/utils/mailing"
	"myfridge-backend/pkg/product"
)

type (
	NotificationService interface {
		SendDailyReminders(ctx context.Context) (domain.SendRemindersResponse, error)
	}

	notificationService struct {
		productRepository product.ProductRepository
		pushSender        PushSender
		mailer            mailing.Mailer
		log               *zap.Logger
	}
)

func NewNotificationService(
	productRepository product.ProductRepository,
	pushSender PushSender,
	mailer mailing.Mailer,
	log *zap.Logger,
) NotificationService {
	return &notificationService{
		productRepository: productRepository,
		pushSender:        pushSender,
		mailer:            mailer,
		log:               log,
	}
}

// SendDailyReminders notifies every user whose products expire tomorrow. All
// of a user's expiring products go into ONE push per device token, never one
// push per product. Users without a push token get an email digest instead.
func (s *notificationService) SendDailyReminders(ctx context.Context) (domain.SendRemindersResponse, error) {
	tomorrow := product.TodayUTC().AddDate(0, 0, 1).Format("2006-01-02")

	expiring, err := s.productRepository.GetProductsExpiringOn(ctx, tomorrow)
	if err != nil {
		return domain.SendRemindersResponse{}, err
	}

	byUser := groupByUser(expiring)

	sent := 0
	for _, group := range byUser {
		user := group.user
		body := reminderBody(group.products)

		if user.PushToken != "" {
			err := s.pushSender.Send(ctx, PushMessage{
				To:    user.PushToken,
				Title: "Products expiring tomorrow",
				Body:  body,
				Sound: "default",
			})
			if err != nil {
				s.log.Warn("push delivery failed",
					zap.String("user_id", user.ID.String()),
					zap.Error(err),
				)
				continue
			}
			sent++
			continue
		}

		if user.Email != "" {
			if err := s.mailer.SendMail(user.Email, "Products expiring tomorrow", emailBody(group.products)); err != nil {
				s.log.Warn("reminder email failed",
					zap.String("user_id", user.ID.String()),
					zap.Error(err),
				)
				continue
			}
			sent++
		}
	}

	s.log.Info("daily reminders dispatched",
		zap.Int("expiring_products", len(expiring)),
		zap.Int("users", len(byUser)),
		zap.Int("sent", sent),
	)

	return domain.SendRemindersResponse{Sent: sent}, nil
}

type userGroup struct {
	user     *entities.User
	products []*entities.Product
}

func groupByUser(products []*entities.Product) []*userGroup {
	index := make(map[string]*userGroup)
	var order []*userGroup

	for _, p := range products {
		if p.User == nil {
			continue
		}
		key := p.UserID.String()
		group, ok := index[key]
		if !ok {
			group = &userGroup{user: p.User}
			index[key] = group
			order = append(order, group)
		}
		group.products = append(group.products, p)
	}

	return order
}

func reminderBody(products []*entities.Product) string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	if len(names) == 1 {
		return fmt.Sprintf("%s expires tomorrow. Use it before it goes to waste!", names[0])
	}
	return fmt.Sprintf("%d products expire tomorrow: %s", len(names), strings.Join(names, ", "))
}

func emailBody(products []*entities.Product) string {
	var b strings.Builder
	b.WriteString("<p>These products in your fridge expire tomorrow:</p><ul>")
	for _, p := range products {
		b.WriteString("<li>")
		b.WriteString(p.Name)
		b.WriteString("</li>")
	}
	b.WriteString("</ul><p>Plan a meal around them before they go to waste.</p>")
	return b.String()
}

package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"myfridge-backend/entities"
	"myfridge-backend/pkg/product"
)

type fakeExpiringRepo struct {
	expiring []*entities.Product
}

func (f *fakeExpiringRepo) Query(_ context.Context, _ product.QueryPlan) ([]*entities.Product, error) {
	return nil, nil
}

func (f *fakeExpiringRepo) GetProductByID(_ context.Context, _ string, _ string) (*entities.Product, error) {
	return nil, nil
}

func (f *fakeExpiringRepo) CreateProduct(_ context.Context, _ *entities.Product) error { return nil }

func (f *fakeExpiringRepo) CreateProducts(_ context.Context, _ []*entities.Product) error {
	return nil
}

func (f *fakeExpiringRepo) UpdateProduct(_ context.Context, _ *entities.Product) error { return nil }

func (f *fakeExpiringRepo) DeleteProduct(_ context.Context, _ string) error { return nil }

func (f *fakeExpiringRepo) SoftDeleteProduct(_ context.Context, _ string) error { return nil }

func (f *fakeExpiringRepo) GetProductsExpiringOn(_ context.Context, _ string) ([]*entities.Product, error) {
	return f.expiring, nil
}

type fakePushSender struct {
	sent []PushMessage
}

func (f *fakePushSender) Send(_ context.Context, msg PushMessage) error {
	f.sent = append(f.sent, msg)
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendMail(toEmail string, _ string, _ string) error {
	f.sent = append(f.sent, toEmail)
	return nil
}

func expiringProduct(user *entities.User, name string) *entities.Product {
	return &entities.Product{
		ID:     uuid.New(),
		UserID: user.ID,
		Name:   name,
		User:   user,
	}
}

func TestSendDailyRemindersBatchesPerDevice(t *testing.T) {
	withToken := &entities.User{ID: uuid.New(), Email: "a@example.com", PushToken: "ExponentPushToken[abc]"}

	repo := &fakeExpiringRepo{expiring: []*entities.Product{
		expiringProduct(withToken, "Milk"),
		expiringProduct(withToken, "Yogurt"),
		expiringProduct(withToken, "Ham"),
	}}
	pusher := &fakePushSender{}
	mailer := &fakeMailer{}

	svc := NewNotificationService(repo, pusher, mailer, zap.NewNop())

	res, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)

	// Three expiring products, ONE push.
	require.Len(t, pusher.sent, 1)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, "ExponentPushToken[abc]", pusher.sent[0].To)
	assert.Contains(t, pusher.sent[0].Body, "Milk")
	assert.Contains(t, pusher.sent[0].Body, "Yogurt")
	assert.Contains(t, pusher.sent[0].Body, "Ham")
	assert.Empty(t, mailer.sent)
}

func TestSendDailyRemindersEmailFallback(t *testing.T) {
	noToken := &entities.User{ID: uuid.New(), Email: "b@example.com"}

	repo := &fakeExpiringRepo{expiring: []*entities.Product{
		expiringProduct(noToken, "Cheese"),
	}}
	pusher := &fakePushSender{}
	mailer := &fakeMailer{}

	svc := NewNotificationService(repo, pusher, mailer, zap.NewNop())

	res, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)

	assert.Empty(t, pusher.sent)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "b@example.com", mailer.sent[0])
	assert.Equal(t, 1, res.Sent)
}

func TestSendDailyRemindersMixedUsers(t *testing.T) {
	withToken := &entities.User{ID: uuid.New(), Email: "a@example.com", PushToken: "ExponentPushToken[abc]"}
	noToken := &entities.User{ID: uuid.New(), Email: "b@example.com"}

	repo := &fakeExpiringRepo{expiring: []*entities.Product{
		expiringProduct(withToken, "Milk"),
		expiringProduct(noToken, "Cheese"),
		expiringProduct(withToken, "Butter"),
	}}
	pusher := &fakePushSender{}
	mailer := &fakeMailer{}

	svc := NewNotificationService(repo, pusher, mailer, zap.NewNop())

	res, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)

	assert.Len(t, pusher.sent, 1)
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, 2, res.Sent)
}

func TestSendDailyRemindersNothingExpiring(t *testing.T) {
	svc := NewNotificationService(&fakeExpiringRepo{}, &fakePushSender{}, &fakeMailer{}, zap.NewNop())

	res, err := svc.SendDailyReminders(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Sent)
}

package common

import (
	"context"
	"errors"
	"fmt"
	"hbs/src/db/dbtest"
	"hbs/src/lib"
	"hbs/src/models"
	"hbs/src/types"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	return dbtest.New(t)
}

type fixture struct {
	owner *models.User
	guest *models.User
	hotel *models.Hotel
	room  *models.Room
}

func seed(t *testing.T, gdb *gorm.DB, rate float64) *fixture {
	t.Helper()
	owner := &models.User{ID: "user_owner", Username: "Olive Owner", Email: "owner@example.com", Role: types.ROLE_ADMIN}
	guest := &models.User{ID: "user_guest", Username: "Gus Guest", Email: "guest@example.com", Role: types.ROLE_USER}
	require.NoError(t, gdb.Create(owner).Error)
	require.NoError(t, gdb.Create(guest).Error)
	hotel := &models.Hotel{Name: "Seaside Inn", Address: "1 Beach Road", Contact: "+10000000", City: "Goa", OwnerID: owner.ID}
	require.NoError(t, gdb.Create(hotel).Error)
	room := &models.Room{HotelID: hotel.ID, RoomType: "Double Bed", PricePerNight: rate, IsAvailable: true}
	require.NoError(t, gdb.Create(room).Error)
	return &fixture{owner: owner, guest: guest, hotel: hotel, room: room}
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*lib.SendMailInput
	err  error
}

func (m *fakeMailer) Send(_ context.Context, input *lib.SendMailInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, input)
	return m.err
}

func (m *fakeMailer) subjects() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sent))
	for _, s := range m.sent {
		out = append(out, s.Subject)
	}
	return out
}

type published struct {
	channel string
	event   string
	data    map[string]any
}

type fakePublisher struct {
	events []published
	err    error
}

func (p *fakePublisher) Publish(channel, event string, data map[string]any) error {
	p.events = append(p.events, published{channel, event, data})
	return p.err
}

type fakeOrders struct {
	calls []map[string]interface{}
	err   error
	seq   int
}

func (o *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	o.calls = append(o.calls, data)
	if o.err != nil {
		return nil, o.err
	}
	o.seq++
	return map[string]interface{}{
		"id":       fmt.Sprintf("order_test_%d", o.seq),
		"amount":   float64(data["amount"].(int64)),
		"currency": data["currency"],
		"status":   "created",
	}, nil
}

type fakeLocker struct {
	held     map[string]bool
	err      error
	released []string
}

func (l *fakeLocker) Acquire(_ context.Context, key, _ string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if l.held == nil {
		l.held = map[string]bool{}
	}
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *fakeLocker) Release(_ context.Context, key string) error {
	delete(l.held, key)
	l.released = append(l.released, key)
	return nil
}

var errGatewayDown = errors.New("gateway unavailable")

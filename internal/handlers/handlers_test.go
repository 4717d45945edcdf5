package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"time"

	"campaign-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// envelope mirrors utils.StandardResponse for decoding test responses.
type envelope struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type memContentRepo struct {
	nextID   uint
	contents map[uint]*models.Content
}

func newMemContentRepo() *memContentRepo {
	return &memContentRepo{
		nextID:   1,
		contents: make(map[uint]*models.Content),
	}
}

func (m *memContentRepo) Upsert(_ context.Context, content *models.Content) (*models.Content, error) {
	for _, existing := range m.contents {
		if existing.Page == content.Page && existing.Key == content.Key {
			existing.Type = content.Type
			existing.ValueEn = content.ValueEn
			existing.ValueNp = content.ValueNp
			existing.UpdatedAt = time.Now().UTC()
			stored := *existing
			return &stored, nil
		}
	}
	stored := *content
	stored.ID = m.nextID
	m.nextID++
	m.contents[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memContentRepo) FindByPage(_ context.Context, page string) ([]models.Content, error) {
	result := make([]models.Content, 0)
	for _, c := range m.contents {
		if c.Page == page {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *memContentRepo) FindByID(_ context.Context, id uint) (*models.Content, error) {
	c, ok := m.contents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *c
	return &out, nil
}

func (m *memContentRepo) Update(_ context.Context, content *models.Content) error {
	if _, ok := m.contents[content.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *content
	m.contents[content.ID] = &stored
	return nil
}

func (m *memContentRepo) Delete(_ context.Context, id uint) error {
	delete(m.contents, id)
	return nil
}

type memInquiryRepo struct {
	nextID    uint
	inquiries map[uint]*models.Inquiry
}

func newMemInquiryRepo() *memInquiryRepo {
	return &memInquiryRepo{
		nextID:    1,
		inquiries: make(map[uint]*models.Inquiry),
	}
}

func (m *memInquiryRepo) Create(_ context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = m.nextID
	m.nextID++
	stored := *inquiry
	m.inquiries[stored.ID] = &stored
	return nil
}

func (m *memInquiryRepo) Update(_ context.Context, inquiry *models.Inquiry) error {
	if _, ok := m.inquiries[inquiry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *inquiry
	m.inquiries[stored.ID] = &stored
	return nil
}

func (m *memInquiryRepo) Delete(_ context.Context, id uint) error {
	delete(m.inquiries, id)
	return nil
}

func (m *memInquiryRepo) FindByID(_ context.Context, id uint) (*models.Inquiry, error) {
	i, ok := m.inquiries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *i
	return &out, nil
}

func (m *memInquiryRepo) FindAll(_ context.Context, page, limit int) ([]models.Inquiry, int64, error) {
	result := make([]models.Inquiry, 0)
	for _, i := range m.inquiries {
		result = append(result, *i)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, int64(len(result)), nil
}

type memUserRepo struct {
	users map[uint]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	repo := &memUserRepo{users: make(map[uint]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

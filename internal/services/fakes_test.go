package services

import (
	"context"
	"io"
	"sort"
	"time"

	"campaign-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeContentRepo is an in-memory stand-in keyed on (page, key), mirroring the
// unique index the real table carries.
type fakeContentRepo struct {
	nextID   uint
	contents map[uint]*models.Content
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		nextID:   1,
		contents: make(map[uint]*models.Content),
	}
}

func (f *fakeContentRepo) Upsert(_ context.Context, content *models.Content) (*models.Content, error) {
	for _, existing := range f.contents {
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
	stored.ID = f.nextID
	f.nextID++
	f.contents[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (f *fakeContentRepo) FindByPage(_ context.Context, page string) ([]models.Content, error) {
	result := make([]models.Content, 0)
	for _, c := range f.contents {
		if c.Page == page {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeContentRepo) FindByID(_ context.Context, id uint) (*models.Content, error) {
	c, ok := f.contents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeContentRepo) Update(_ context.Context, content *models.Content) error {
	for id, existing := range f.contents {
		if id != content.ID && existing.Page == content.Page && existing.Key == content.Key {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	if _, ok := f.contents[content.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *content
	f.contents[content.ID] = &stored
	return nil
}

func (f *fakeContentRepo) Delete(_ context.Context, id uint) error {
	delete(f.contents, id)
	return nil
}

type fakeBlogRepo struct {
	nextID uint
	blogs  map[uint]*models.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{
		nextID: 1,
		blogs:  make(map[uint]*models.Blog),
	}
}

func (f *fakeBlogRepo) Create(_ context.Context, blog *models.Blog) error {
	for _, existing := range f.blogs {
		if existing.Slug == blog.Slug {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	blog.ID = f.nextID
	f.nextID++
	stored := *blog
	f.blogs[stored.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) Update(_ context.Context, blog *models.Blog) error {
	for id, existing := range f.blogs {
		if id != blog.ID && existing.Slug == blog.Slug {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	if _, ok := f.blogs[blog.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *blog
	f.blogs[blog.ID] = &stored
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id uint) error {
	delete(f.blogs, id)
	return nil
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id uint) (*models.Blog, error) {
	b, ok := f.blogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeBlogRepo) FindBySlug(_ context.Context, slug string) (*models.Blog, error) {
	for _, b := range f.blogs {
		if b.Slug == slug {
			out := *b
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBlogRepo) FindAll(_ context.Context, publishedOnly bool, page, limit int) ([]models.Blog, int64, error) {
	result := make([]models.Blog, 0)
	for _, b := range f.blogs {
		if publishedOnly && !b.Published {
			continue
		}
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	total := int64(len(result))

	if limit > 0 {
		offset := (page - 1) * limit
		if offset >= len(result) {
			return []models.Blog{}, total, nil
		}
		end := offset + limit
		if end > len(result) {
			end = len(result)
		}
		result = result[offset:end]
	}
	return result, total, nil
}

func (f *fakeBlogRepo) IncrementViews(_ context.Context, id uint) (int64, error) {
	b, ok := f.blogs[id]
	if !ok {
		return 0, nil
	}
	b.Views++
	return 1, nil
}

func (f *fakeBlogRepo) Stats(_ context.Context) (*models.BlogStats, error) {
	stats := &models.BlogStats{}
	for _, b := range f.blogs {
		stats.Total++
		if b.Published {
			stats.Published++
		}
		stats.Views += b.Views
	}
	return stats, nil
}

type fakeInquiryRepo struct {
	nextID    uint
	inquiries map[uint]*models.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{
		nextID:    1,
		inquiries: make(map[uint]*models.Inquiry),
	}
}

func (f *fakeInquiryRepo) Create(_ context.Context, inquiry *models.Inquiry) error {
	inquiry.ID = f.nextID
	f.nextID++
	stored := *inquiry
	f.inquiries[stored.ID] = &stored
	return nil
}

func (f *fakeInquiryRepo) Update(_ context.Context, inquiry *models.Inquiry) error {
	if _, ok := f.inquiries[inquiry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *inquiry
	f.inquiries[stored.ID] = &stored
	return nil
}

func (f *fakeInquiryRepo) Delete(_ context.Context, id uint) error {
	delete(f.inquiries, id)
	return nil
}

func (f *fakeInquiryRepo) FindByID(_ context.Context, id uint) (*models.Inquiry, error) {
	i, ok := f.inquiries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *i
	return &out, nil
}

func (f *fakeInquiryRepo) FindAll(_ context.Context, page, limit int) ([]models.Inquiry, int64, error) {
	result := make([]models.Inquiry, 0)
	for _, i := range f.inquiries {
		result = append(result, *i)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, int64(len(result)), nil
}

type fakeProgramRepo struct {
	nextID   uint
	programs map[uint]*models.Program
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{
		nextID:   1,
		programs: make(map[uint]*models.Program),
	}
}

func (f *fakeProgramRepo) Create(_ context.Context, program *models.Program) error {
	program.ID = f.nextID
	f.nextID++
	stored := *program
	f.programs[stored.ID] = &stored
	return nil
}

func (f *fakeProgramRepo) Update(_ context.Context, program *models.Program) error {
	if _, ok := f.programs[program.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *program
	f.programs[stored.ID] = &stored
	return nil
}

func (f *fakeProgramRepo) Delete(_ context.Context, id uint) error {
	delete(f.programs, id)
	return nil
}

func (f *fakeProgramRepo) FindByID(_ context.Context, id uint) (*models.Program, error) {
	p, ok := f.programs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeProgramRepo) FindAll(_ context.Context) ([]models.Program, error) {
	result := make([]models.Program, 0)
	for _, p := range f.programs {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (f *fakeProgramRepo) FindUpcoming(_ context.Context, onOrAfter time.Time, limit int) ([]models.Program, error) {
	result := make([]models.Program, 0)
	for _, p := range f.programs {
		if p.Date.Before(onOrAfter) {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *u
	return &out, nil
}

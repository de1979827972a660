package service

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testLogger = zap.NewNop()

// fakeStore keeps users and photos in memory and enforces the same
// constraints the database does: unique user_name/email, photo owner must
// exist, cascade on user delete.
type fakeStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
	photos map[uint]*models.Photo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  map[uint]*models.User{},
		photos: map[uint]*models.Photo{},
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

type fakeUsers struct{ *fakeStore }

type fakePhotos struct{ *fakeStore }

func (f fakeUsers) List(ctx context.Context, spec filter.Spec) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f fakeUsers) GetByID(ctx context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUsers) conflicts(id uint, userName, email string) bool {
	for _, u := range f.users {
		if u.ID != id && (u.UserName == userName || u.Email == email) {
			return true
		}
	}
	return false
}

func (f fakeUsers) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflicts(0, user.UserName, user.Email) {
		return gorm.ErrDuplicatedKey
	}
	user.ID = f.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f fakeUsers) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	next := *u
	for k, v := range changes {
		switch k {
		case "user_name":
			next.UserName = v.(string)
		case "email":
			next.Email = v.(string)
		case "password_hash":
			next.PasswordHash = v.(string)
		}
	}
	if f.conflicts(id, next.UserName, next.Email) {
		return gorm.ErrDuplicatedKey
	}
	next.UpdatedAt = time.Now()
	f.users[id] = &next
	return nil
}

func (f fakeUsers) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	for pid, p := range f.photos {
		if p.UserID == id {
			delete(f.photos, pid)
		}
	}
	return nil
}

func (f fakePhotos) ListByUser(ctx context.Context, userID uint, spec filter.Spec) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	photos := []models.Photo{}
	for _, p := range f.photos {
		if p.UserID != userID {
			continue
		}
		match := true
		for _, t := range spec.Text {
			if t.Column == "title" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(t.Value)) {
				match = false
			}
		}
		if match {
			photos = append(photos, *p)
		}
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID < photos[j].ID })
	return photos, nil
}

func (f fakePhotos) GetByUser(ctx context.Context, userID, id uint) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakePhotos) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakePhotos) Create(ctx context.Context, photo *models.Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[photo.UserID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	photo.ID = f.id()
	photo.CreatedAt = time.Now()
	photo.UpdatedAt = photo.CreatedAt
	cp := *photo
	f.photos[photo.ID] = &cp
	return nil
}

func (f fakePhotos) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.photos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range changes {
		switch k {
		case "title":
			p.Title = v.(string)
		case "category":
			p.Category = v.(string)
		case "image_url":
			p.ImageURL = v.(string)
		}
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (f fakePhotos) Delete(ctx context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.photos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.photos, id)
	return nil
}

func (f fakePhotos) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, p := range f.photos {
		if p.UserID == userID {
			delete(f.photos, id)
			n++
		}
	}
	return n, nil
}

func (f fakePhotos) ImageURLsByUser(ctx context.Context, userID uint) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var urls []string
	for _, p := range f.photos {
		if p.UserID == userID {
			urls = append(urls, p.ImageURL)
		}
	}
	return urls, nil
}

const fakeBucketURL = "https://cdn.example.com/"

type fakeObjects struct {
	uploaded map[string]string
	deleted  []string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{uploaded: map[string]string{}}
}

func (f *fakeObjects) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.uploaded[key] = string(b)
	return fakeBucketURL + key, nil
}

func (f *fakeObjects) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeObjects) KeyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, fakeBucketURL) {
		return "", false
	}
	return strings.TrimPrefix(url, fakeBucketURL), true
}

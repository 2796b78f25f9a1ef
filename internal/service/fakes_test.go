package service

import (
	"sort"
	"strings"

	"github.com/smokequit/smokequit-api/internal/models"
	"github.com/smokequit/smokequit-api/internal/repository"
)

// In-memory repository fakes backing the service tests. They mimic the
// store contract: identity assignment on create, ErrNotFound on misses,
// affected/removed counts on writes.

func pageSlice[T any](items []T, currentPage, pageSize int) []T {
	offset := (currentPage - 1) * pageSize
	if offset >= len(items) {
		return nil
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// --- brands ---

type fakeBrandRepo struct {
	brands      map[int64]*models.Brand
	nextID      int64
	createCalls int
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: make(map[int64]*models.Brand), nextID: 1}
}

func (f *fakeBrandRepo) all() []*models.Brand {
	out := make([]*models.Brand, 0, len(f.brands))
	for _, b := range f.brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeBrandRepo) GetAll() ([]*models.Brand, error) { return f.all(), nil }

func (f *fakeBrandRepo) GetByID(id int64) (*models.Brand, error) {
	b, ok := f.brands[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBrandRepo) Create(b *models.Brand) (int64, error) {
	f.createCalls++
	stored := *b
	stored.ID = f.nextID
	f.nextID++
	f.brands[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeBrandRepo) Update(b *models.Brand) (int64, error) {
	if _, ok := f.brands[b.ID]; !ok {
		return 0, nil
	}
	stored := *b
	f.brands[b.ID] = &stored
	return 1, nil
}

func (f *fakeBrandRepo) Remove(id int64) (bool, error) {
	if _, ok := f.brands[id]; !ok {
		return false, nil
	}
	delete(f.brands, id)
	return true, nil
}

func (f *fakeBrandRepo) Search(name, country string) ([]*models.Brand, error) {
	var out []*models.Brand
	for _, b := range f.all() {
		if name != "" && !containsFold(b.BrandName, name) {
			continue
		}
		if country != "" && (b.Country == nil || !containsFold(*b.Country, country)) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBrandRepo) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Brand], error) {
	all := f.all()
	return models.NewPaginationResult(pageSlice(all, currentPage, pageSize), len(all), currentPage, pageSize), nil
}

// --- smartphones ---

type fakeSmartphoneRepo struct {
	phones      map[int64]*models.Smartphone
	nextID      int64
	createCalls int
}

func newFakeSmartphoneRepo() *fakeSmartphoneRepo {
	return &fakeSmartphoneRepo{phones: make(map[int64]*models.Smartphone), nextID: 1}
}

func (f *fakeSmartphoneRepo) all() []*models.Smartphone {
	out := make([]*models.Smartphone, 0, len(f.phones))
	for _, p := range f.phones {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeSmartphoneRepo) GetAll() ([]*models.Smartphone, error) { return f.all(), nil }

func (f *fakeSmartphoneRepo) GetByID(id int64) (*models.Smartphone, error) {
	p, ok := f.phones[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeSmartphoneRepo) Create(p *models.Smartphone) (int64, error) {
	f.createCalls++
	stored := *p
	stored.ID = f.nextID
	f.nextID++
	f.phones[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeSmartphoneRepo) Update(p *models.Smartphone) (int64, error) {
	if _, ok := f.phones[p.ID]; !ok {
		return 0, nil
	}
	stored := *p
	f.phones[p.ID] = &stored
	return 1, nil
}

func (f *fakeSmartphoneRepo) Remove(id int64) (bool, error) {
	if _, ok := f.phones[id]; !ok {
		return false, nil
	}
	delete(f.phones, id)
	return true, nil
}

func (f *fakeSmartphoneRepo) filter(modelName, storage string) []*models.Smartphone {
	var out []*models.Smartphone
	for _, p := range f.all() {
		if modelName != "" && !containsFold(p.ModelName, modelName) {
			continue
		}
		if storage != "" && (p.Storage == nil || !containsFold(*p.Storage, storage)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (f *fakeSmartphoneRepo) Search(modelName, storage string) ([]*models.Smartphone, error) {
	return f.filter(modelName, storage), nil
}

func (f *fakeSmartphoneRepo) SearchWithPaging(modelName, storage string, currentPage, pageSize int) (models.PaginationResult[*models.Smartphone], error) {
	matched := f.filter(modelName, storage)
	return models.NewPaginationResult(pageSlice(matched, currentPage, pageSize), len(matched), currentPage, pageSize), nil
}

// --- coaches ---

type fakeCoachRepo struct {
	coaches      map[int64]*models.Coach
	chatCoachIDs map[int64]bool
	nextID       int64
	createCalls  int
}

func newFakeCoachRepo() *fakeCoachRepo {
	return &fakeCoachRepo{
		coaches:      make(map[int64]*models.Coach),
		chatCoachIDs: make(map[int64]bool),
		nextID:       1,
	}
}

func (f *fakeCoachRepo) all() []*models.Coach {
	out := make([]*models.Coach, 0, len(f.coaches))
	for _, c := range f.coaches {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeCoachRepo) GetAll() ([]*models.Coach, error) { return f.all(), nil }

func (f *fakeCoachRepo) GetByID(id int64) (*models.Coach, error) {
	c, ok := f.coaches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCoachRepo) GetByEmail(email string) (*models.Coach, error) {
	for _, c := range f.all() {
		if strings.EqualFold(c.Email, email) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCoachRepo) HasChats(coachID int64) (bool, error) {
	return f.chatCoachIDs[coachID], nil
}

func (f *fakeCoachRepo) Create(c *models.Coach) (int64, error) {
	f.createCalls++
	stored := *c
	stored.ID = f.nextID
	f.nextID++
	f.coaches[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeCoachRepo) Update(c *models.Coach) (int64, error) {
	if _, ok := f.coaches[c.ID]; !ok {
		return 0, nil
	}
	stored := *c
	f.coaches[c.ID] = &stored
	return 1, nil
}

func (f *fakeCoachRepo) Remove(id int64) (bool, error) {
	if _, ok := f.coaches[id]; !ok {
		return false, nil
	}
	delete(f.coaches, id)
	return true, nil
}

func (f *fakeCoachRepo) filter(fullName, email string) []*models.Coach {
	var out []*models.Coach
	for _, c := range f.all() {
		if fullName != "" && !containsFold(c.FullName, fullName) {
			continue
		}
		if email != "" && !containsFold(c.Email, email) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *fakeCoachRepo) Search(fullName, email string) ([]*models.Coach, error) {
	return f.filter(fullName, email), nil
}

func (f *fakeCoachRepo) SearchWithPaging(fullName, email string, currentPage, pageSize int) (models.PaginationResult[*models.Coach], error) {
	matched := f.filter(fullName, email)
	return models.NewPaginationResult(pageSlice(matched, currentPage, pageSize), len(matched), currentPage, pageSize), nil
}

func (f *fakeCoachRepo) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Coach], error) {
	return f.SearchWithPaging("", "", currentPage, pageSize)
}

// --- accounts ---

type fakeAccountRepo struct {
	accounts    map[int64]*models.SystemAccount
	nextID      int64
	createCalls int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int64]*models.SystemAccount), nextID: 1}
}

func (f *fakeAccountRepo) all() []*models.SystemAccount {
	out := make([]*models.SystemAccount, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeAccountRepo) GetByLogin(email, password string) (*models.SystemAccount, error) {
	for _, a := range f.all() {
		if a.Email == email && a.Password == password && a.IsActive {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccountRepo) GetAll() ([]*models.SystemAccount, error) { return f.all(), nil }

func (f *fakeAccountRepo) GetByID(id int64) (*models.SystemAccount, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.SystemAccount, error) {
	for _, a := range f.all() {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAccountRepo) Create(a *models.SystemAccount) (int64, error) {
	f.createCalls++
	stored := *a
	stored.ID = f.nextID
	f.nextID++
	f.accounts[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeAccountRepo) Update(a *models.SystemAccount) (int64, error) {
	if _, ok := f.accounts[a.ID]; !ok {
		return 0, nil
	}
	stored := *a
	f.accounts[a.ID] = &stored
	return 1, nil
}

func (f *fakeAccountRepo) Remove(id int64) (bool, error) {
	if _, ok := f.accounts[id]; !ok {
		return false, nil
	}
	delete(f.accounts, id)
	return true, nil
}

// --- chats ---

type fakeChatRepo struct {
	chats       map[int64]*models.Chat
	userIDs     map[int64]bool
	coachIDs    map[int64]bool
	nextID      int64
	createCalls int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		chats:    make(map[int64]*models.Chat),
		userIDs:  make(map[int64]bool),
		coachIDs: make(map[int64]bool),
		nextID:   1,
	}
}

func (f *fakeChatRepo) all() []*models.Chat {
	out := make([]*models.Chat, 0, len(f.chats))
	for _, c := range f.chats {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeChatRepo) GetAll() ([]*models.Chat, error) { return f.all(), nil }

func (f *fakeChatRepo) GetByID(id int64) (*models.Chat, error) {
	c, ok := f.chats[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeChatRepo) UserExists(userID int64) (bool, error)   { return f.userIDs[userID], nil }
func (f *fakeChatRepo) CoachExists(coachID int64) (bool, error) { return f.coachIDs[coachID], nil }

func (f *fakeChatRepo) Create(c *models.Chat) (int64, error) {
	f.createCalls++
	stored := *c
	stored.ID = f.nextID
	f.nextID++
	f.chats[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeChatRepo) Update(c *models.Chat) (int64, error) {
	if _, ok := f.chats[c.ID]; !ok {
		return 0, nil
	}
	stored := *c
	f.chats[c.ID] = &stored
	return 1, nil
}

func (f *fakeChatRepo) Remove(id int64) (bool, error) {
	if _, ok := f.chats[id]; !ok {
		return false, nil
	}
	delete(f.chats, id)
	return true, nil
}

func (f *fakeChatRepo) filter(filter repository.ChatFilter) []*models.Chat {
	var out []*models.Chat
	for _, c := range f.all() {
		if filter.MessageType != "" && c.MessageType != filter.MessageType {
			continue
		}
		if filter.SentBy != "" && c.SentBy != filter.SentBy {
			continue
		}
		if filter.IsRead != nil && c.IsRead != *filter.IsRead {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *fakeChatRepo) Search(filter repository.ChatFilter) ([]*models.Chat, error) {
	return f.filter(filter), nil
}

func (f *fakeChatRepo) GetAllWithPaging(currentPage, pageSize int) (models.PaginationResult[*models.Chat], error) {
	return f.SearchWithPaging(repository.ChatFilter{}, currentPage, pageSize)
}

func (f *fakeChatRepo) SearchWithPaging(filter repository.ChatFilter, currentPage, pageSize int) (models.PaginationResult[*models.Chat], error) {
	matched := f.filter(filter)
	return models.NewPaginationResult(pageSlice(matched, currentPage, pageSize), len(matched), currentPage, pageSize), nil
}

// --- publisher ---

type fakePublisher struct {
	published []*models.Chat
	err       error
}

func (f *fakePublisher) Publish(chat *models.Chat) error {
	if f.err != nil {
		return f.err
	}
	copied := *chat
	f.published = append(f.published, &copied)
	return nil
}

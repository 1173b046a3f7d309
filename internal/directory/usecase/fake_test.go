package usecase

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"sort"
	"sync"
	"testing"

	"github.com/shandysiswandi/academia/internal/directory/entity"
	"github.com/shandysiswandi/academia/internal/directory/outbound/file"
	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/storage"
	"github.com/shandysiswandi/academia/internal/pkg/uid"
	"github.com/shandysiswandi/academia/internal/pkg/validator"
)

type memRepo struct {
	mu         sync.Mutex
	staff      map[int64]entity.StaffProfile
	facilities map[int64]entity.Facility
	fail       error
}

func newMemRepo() *memRepo {
	return &memRepo{staff: map[int64]entity.StaffProfile{}, facilities: map[int64]entity.Facility{}}
}

func paginate[T any](all []T, size, offset int32) []T {
	if int(offset) >= len(all) {
		return []T{}
	}
	return all[offset:min(int(offset+size), len(all))]
}

func (m *memRepo) ListStaff(_ context.Context, f entity.StaffFilter) ([]entity.StaffProfile, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	out := []entity.StaffProfile{}
	for _, p := range m.staff {
		if p.Kind == f.Kind && (f.IsActive == nil || p.IsActive == *f.IsActive) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, f.Size, f.Offset), int64(len(out)), nil
}

func (m *memRepo) GetStaffByID(_ context.Context, kind entity.Kind, id int64) (*entity.StaffProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	p, ok := m.staff[id]
	if !ok || p.Kind != kind {
		return nil, goerror.ErrNotFound
	}
	return &p, nil
}

func (m *memRepo) CreateStaff(_ context.Context, p entity.StaffProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.staff[p.ID] = p
	return nil
}

func (m *memRepo) UpdateStaff(_ context.Context, p entity.StaffProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	old, ok := m.staff[p.ID]
	if !ok || old.Kind != p.Kind {
		return goerror.ErrNotFound
	}
	m.staff[p.ID] = p
	return nil
}

func (m *memRepo) DeleteStaff(_ context.Context, kind entity.Kind, id int64) (*string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	p, ok := m.staff[id]
	if !ok || p.Kind != kind {
		return nil, goerror.ErrNotFound
	}
	delete(m.staff, id)
	return p.Image, nil
}

func (m *memRepo) ListFacilities(_ context.Context, f entity.FacilityFilter) ([]entity.Facility, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	out := []entity.Facility{}
	for _, fc := range m.facilities {
		if (f.IsActive == nil || fc.IsActive == *f.IsActive) &&
			(f.IsFeatured == nil || fc.IsFeatured == *f.IsFeatured) &&
			(f.Category == nil || (fc.Category != nil && *fc.Category == *f.Category)) {
			out = append(out, fc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID > out[j].ID
	})
	return paginate(out, f.Size, f.Offset), int64(len(out)), nil
}

func (m *memRepo) GetFacilityByID(_ context.Context, id int64) (*entity.Facility, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	f, ok := m.facilities[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &f, nil
}

func (m *memRepo) slugTaken(slug string, except int64) bool {
	for _, f := range m.facilities {
		if f.Slug == slug && f.ID != except {
			return true
		}
	}
	return false
}

func (m *memRepo) CreateFacility(_ context.Context, f entity.Facility) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if m.slugTaken(f.Slug, f.ID) {
		return goerror.ErrConflict
	}
	m.facilities[f.ID] = f
	return nil
}

func (m *memRepo) UpdateFacility(_ context.Context, f entity.Facility) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.facilities[f.ID]; !ok {
		return goerror.ErrNotFound
	}
	if m.slugTaken(f.Slug, f.ID) {
		return goerror.ErrConflict
	}
	m.facilities[f.ID] = f
	return nil
}

func (m *memRepo) DeleteFacility(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.facilities[id]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.facilities, id)
	return nil
}

type env struct {
	uc    *Usecase
	repo  *memRepo
	store *storage.Memory
}

func newEnv(t *testing.T) *env {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	sf, err := uid.NewSnowflakeWithNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	repo := newMemRepo()
	store := storage.NewMemory()
	ins := instrument.NewNoop()

	return &env{
		uc: New(Dependency{
			RepoDB:     repo,
			RepoFile:   file.NewFile(store, ins),
			Validator:  v,
			UID:        sf,
			ObjectID:   uid.NewULID(),
			Instrument: ins,
		}),
		repo:  repo,
		store: store,
	}
}

func (e *env) exists(key string) bool {
	rc, _, err := e.store.Get(context.Background(), key)
	if err != nil {
		return false
	}
	_ = rc.Close()
	return true
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png: %v", err)
	}
	return buf.Bytes()
}

// hugePNG claims a 16000x16000 canvas in its header over 1x1 pixel data.
func hugePNG(t *testing.T) []byte {
	t.Helper()
	b := pngOf(t, 1, 1)
	binary.BigEndian.PutUint32(b[16:20], 16000)
	binary.BigEndian.PutUint32(b[20:24], 16000)
	binary.BigEndian.PutUint32(b[29:33], crc32.ChecksumIEEE(b[12:29]))
	return b
}

func str(s string) *string { return &s }

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()
	if goerror.CodeOf(err) != want {
		t.Fatalf("error = %v (code %v), want code %v", err, goerror.CodeOf(err), want)
	}
}

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/academia/internal/pkg/goerror"
	"github.com/shandysiswandi/academia/internal/pkg/instrument"
	"github.com/shandysiswandi/academia/internal/pkg/pgtest"
	"github.com/shandysiswandi/academia/internal/setting/entity"
)

func str(s string) *string { return &s }

func TestDB_Settings(t *testing.T) {
	// Arrange
	s := NewDB(pgtest.New(t), instrument.NewNoop())
	ctx := context.Background()
	seed := []entity.Setting{
		{ID: 1, Key: "smtp.host", Value: str("mail.local"), Type: entity.TypeText, Group: "smtp"},
		{ID: 2, Key: "site.name", Value: str("Academia"), Type: entity.TypeText, Group: "general", IsPublic: true},
		{ID: 3, Key: "site.tagline", Type: entity.TypeText, Group: "general"},
	}
	for _, st := range seed {
		if err := s.CreateSetting(ctx, st); err != nil {
			t.Fatalf("CreateSetting(%s) error = %v", st.Key, err)
		}
	}
	public := true
	general := "general"

	// Act
	dup := s.CreateSetting(ctx, entity.Setting{ID: 4, Key: "site.name", Type: entity.TypeText, Group: "x"})
	all, total, errAll := s.ListSettings(ctx, entity.SettingFilter{Size: 10})
	onlyPublic, publicTotal, _ := s.ListSettings(ctx, entity.SettingFilter{Group: &general, IsPublic: &public, Size: 10})
	group, _ := s.ListSettingsByGroup(ctx, "general", false)
	publicGroup, _ := s.ListSettingsByGroup(ctx, "general", true)
	byKey, errKey := s.GetSettingByKey(ctx, "site.tagline")

	// Assert
	if !errors.Is(dup, goerror.ErrConflict) {
		t.Fatalf("duplicate key error = %v", dup)
	}
	if errAll != nil || total != 3 || all[0].Key != "site.name" || all[2].Key != "smtp.host" {
		t.Fatalf("ListSettings() = %+v, %d, %v", all, total, errAll)
	}
	if publicTotal != 1 || len(onlyPublic) != 1 || onlyPublic[0].ID != 2 {
		t.Fatalf("public list = %+v (%d)", onlyPublic, publicTotal)
	}
	if len(group) != 2 || len(publicGroup) != 1 {
		t.Fatalf("group = %d, public group = %d", len(group), len(publicGroup))
	}
	if errKey != nil || byKey.ID != 3 || byKey.Value != nil {
		t.Fatalf("GetSettingByKey() = %+v, %v", byKey, errKey)
	}
}

func TestDB_UpdateDeleteSetting(t *testing.T) {
	// Arrange
	s := NewDB(pgtest.New(t), instrument.NewNoop())
	ctx := context.Background()
	st := entity.Setting{ID: 1, Key: "site.name", Value: str("A"), Type: entity.TypeText, Group: "general"}
	_ = s.CreateSetting(ctx, st)
	st.Value = str("B")
	st.IsPublic = true

	// Act
	errUpdate := s.UpdateSetting(ctx, st)
	got, _ := s.GetSettingByID(ctx, 1)
	errMissing := s.UpdateSetting(ctx, entity.Setting{ID: 9, Key: "k", Type: entity.TypeText, Group: "g"})
	errDelete := s.DeleteSetting(ctx, 1)
	errDeleteAgain := s.DeleteSetting(ctx, 1)

	// Assert
	if errUpdate != nil || *got.Value != "B" || !got.IsPublic {
		t.Fatalf("UpdateSetting() = %+v, %v", got, errUpdate)
	}
	if !errors.Is(errMissing, goerror.ErrNotFound) || errDelete != nil || !errors.Is(errDeleteAgain, goerror.ErrNotFound) {
		t.Fatalf("errors = %v, %v, %v", errMissing, errDelete, errDeleteAgain)
	}
}

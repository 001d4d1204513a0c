package draft

import (
	"strconv"
	"testing"
	"time"

	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(uuid.New())
}

func TestSetFieldBrandRecomputesModels(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SetField("brand", "Toyota"))
	assert.Contains(t, s.Models, "Corolla")

	require.NoError(t, s.SetField("model", "Corolla"))
	assert.Equal(t, "Corolla", s.Model)

	// Switching brand drops a model that is no longer offered.
	require.NoError(t, s.SetField("brand", "TOGG"))
	assert.Equal(t, []string{"T10X", "T10F"}, s.Models)
	assert.Empty(t, s.Model)
}

func TestSetFieldClearsValidationError(t *testing.T) {
	s := newTestSession(t)
	s.Errors["price"] = "Fiyat girmelisiniz"

	require.NoError(t, s.SetField("price", "250000"))

	assert.Equal(t, "250.000", s.Price)
	assert.NotContains(t, s.Errors, "price")
}

func TestSetFieldRejectsInvalidValues(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		field string
		value string
	}{
		{"brand", "Yugo"},
		{"year", "1899"},
		{"year", strconv.Itoa(time.Now().Year() + 1)},
		{"year", "soon"},
		{"color", "Eflatun"},
		{"currency", "JPY"},
		{"engine_size", "9.9"},
		{"power", "1000 HP"},
		{"doors", "7"},
		{"condition", "scrap"},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, s.SetField(tt.field, tt.value), ErrInvalidValue, "%s=%q", tt.field, tt.value)
	}

	assert.ErrorIs(t, s.SetField("vin", "x"), ErrUnknownField)
}

func TestSetFieldFormatsAmounts(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SetField("mileage", "125000"))
	assert.Equal(t, "125.000", s.Mileage)

	require.NoError(t, s.SetField("price", "1.250.000 TL"))
	assert.Equal(t, "1.250.000", s.Price)
}

func TestToggleFeatureIsIdempotentPair(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.ToggleFeature("Klima"))
	assert.Equal(t, []string{"Klima"}, s.Features)

	require.NoError(t, s.ToggleFeature("ABS"))
	require.NoError(t, s.ToggleFeature("Klima"))
	assert.Equal(t, []string{"ABS"}, s.Features)

	assert.ErrorIs(t, s.ToggleFeature("Sihirli Halı"), ErrInvalidValue)
}

func TestToggleDropdownClosesTheOther(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.ToggleDropdown("currency"))
	assert.True(t, s.CurrencyDropdownOpen)

	require.NoError(t, s.ToggleDropdown("color"))
	assert.True(t, s.ColorDropdownOpen)
	assert.False(t, s.CurrencyDropdownOpen)

	assert.ErrorIs(t, s.ToggleDropdown("brand"), ErrUnknownField)
}

func TestNextRequiresPhotoToLeaveFirstStep(t *testing.T) {
	s := newTestSession(t)

	assert.ErrorIs(t, s.Next(), ErrNoPhotos)
	assert.Equal(t, StepPhotos, s.Step)

	require.NoError(t, s.AddPhotos([]model.Photo{{Filename: "front.jpg"}}))
	require.NoError(t, s.Next())
	assert.Equal(t, StepVehicleInfo, s.Step)

	require.NoError(t, s.Next())
	assert.Equal(t, StepDetails, s.Step)

	assert.ErrorIs(t, s.Next(), ErrAtLastStep)
}

func TestBackFloorsAtFirstStep(t *testing.T) {
	s := newTestSession(t)
	s.Step = StepDetails

	s.Back()
	assert.Equal(t, StepVehicleInfo, s.Step)
	s.Back()
	assert.Equal(t, StepPhotos, s.Step)
	s.Back()
	assert.Equal(t, StepPhotos, s.Step)
}

func TestPhotoLimit(t *testing.T) {
	s := newTestSession(t)

	batch := make([]model.Photo, MaxPhotos)
	require.NoError(t, s.AddPhotos(batch))
	assert.ErrorIs(t, s.AddPhotos([]model.Photo{{}}), ErrTooManyPhotos)
}

func TestRemovePhotoKeepsOrder(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.AddPhotos([]model.Photo{
		{Filename: "a.jpg"}, {Filename: "b.jpg"}, {Filename: "c.jpg"},
	}))

	require.NoError(t, s.RemovePhoto(1))
	photos := s.PhotoList()
	require.Len(t, photos, 2)
	assert.Equal(t, "a.jpg", photos[0].Filename)
	assert.Equal(t, "c.jpg", photos[1].Filename)

	assert.ErrorIs(t, s.RemovePhoto(5), ErrInvalidValue)
	assert.ErrorIs(t, s.RemovePhoto(-1), ErrInvalidValue)
}

func TestValidateRoutesToOffendingStep(t *testing.T) {
	s := newTestSession(t)
	s.Step = StepDetails

	// No photos at all: failure lands on the photos step.
	assert.False(t, s.Validate())
	assert.Equal(t, StepPhotos, s.Step)
	assert.Contains(t, s.Errors, "photos")

	require.NoError(t, s.AddPhotos([]model.Photo{{Filename: "front.jpg"}}))
	require.NoError(t, s.SetField("engine_size", "1.6"))
	require.NoError(t, s.SetField("power", "120 HP"))
	require.NoError(t, s.SetField("location", "İstanbul"))
	require.NoError(t, s.SetField("description", "Temiz araç"))

	// Price still missing: failure lands on the details step.
	assert.False(t, s.Validate())
	assert.Equal(t, StepDetails, s.Step)
	assert.Equal(t, "Fiyat girmelisiniz", s.Errors["price"])
	assert.NotContains(t, s.Errors, "location")

	require.NoError(t, s.SetField("price", "250000"))
	assert.True(t, s.Validate())
	assert.Empty(t, s.Errors)
}

func TestRecordParsesGroupedAmounts(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetField("brand", "Toyota"))
	require.NoError(t, s.SetField("model", "Corolla"))
	require.NoError(t, s.SetField("price", "1.250.000"))
	require.NoError(t, s.SetField("mileage", "98.500"))
	require.NoError(t, s.SetFlag("negotiable", true))
	require.NoError(t, s.ToggleFeature("ABS"))

	rec := s.Record()
	assert.Equal(t, s.UserID, rec.UserID)
	assert.Equal(t, "Toyota", rec.Brand)
	assert.Equal(t, 1250000, rec.Price)
	assert.Equal(t, 98500, rec.Mileage)
	assert.True(t, rec.Negotiable)
	assert.Equal(t, []string{"ABS"}, rec.Features)
}

func TestSnapshotCopiesMutableState(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetField("brand", "Toyota"))
	require.NoError(t, s.ToggleFeature("Klima"))

	snap := s.Snapshot()
	snap.Models[0] = "mutated"
	snap.Features[0] = "mutated"
	snap.Errors["x"] = "mutated"

	assert.NotEqual(t, "mutated", s.Models[0])
	assert.Equal(t, []string{"Klima"}, s.Features)
	assert.NotContains(t, s.Errors, "x")
}

func TestStoreOwnership(t *testing.T) {
	store := NewStore()
	owner := uuid.New()

	sess := store.Open(owner)
	require.NotNil(t, sess)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID, owner)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = store.Get(sess.ID, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	store.Close(sess.ID)
	_, err = store.Get(sess.ID, owner)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

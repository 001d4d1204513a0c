// Package draft owns the in-progress listing draft held server-side
// while a seller walks the three-step creation wizard
// (photos -> vehicle info -> details).
package draft

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/UgurucanDuman/Autonova/internal/catalog"
	"github.com/UgurucanDuman/Autonova/internal/model"
	"github.com/google/uuid"
)

// Wizard steps.
const (
	StepPhotos      = 1
	StepVehicleInfo = 2
	StepDetails     = 3
)

const MaxPhotos = 16

var (
	ErrNoPhotos     = errors.New("at least one photo required")
	ErrUnknownField = errors.New("unknown draft field")
	ErrInvalidValue = errors.New("invalid value for field")
	ErrAtLastStep   = errors.New("already at the last step")
	ErrTooManyPhotos = errors.New("photo limit reached")
)

// Validation messages, keyed by field, shown to the seller on submit.
var requiredMessages = map[string]string{
	"engine_size": "Motor hacmi seçmelisiniz",
	"power":       "Motor gücü seçmelisiniz",
	"location":    "Konum girmelisiniz",
	"price":       "Fiyat girmelisiniz",
	"description": "Açıklama girmelisiniz",
}

// requiredFields preserves the order failures are reported in.
var requiredFields = []string{"engine_size", "power", "location", "price", "description"}

// Session is one seller's in-progress draft: the field values, the
// wizard position, the current validation errors and the photo set.
// All methods lock; a session has one cooperative owner but HTTP
// retries may overlap.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time

	mu sync.Mutex

	Brand        string
	Model        string
	Year         int
	Mileage      string // formatted display string
	Color        string
	Price        string // formatted display string
	Currency     string
	FuelType     string
	Transmission string
	Location     string
	Description  string
	BodyType     string
	EngineSize   string
	Power        string
	Doors        string
	Condition    string
	Features     []string
	Warranty     bool
	Negotiable   bool
	Exchange     bool

	Step   int
	Errors map[string]string
	Photos []model.Photo

	// derived from Brand, recomputed synchronously on every brand change
	Models []string

	// transient UI toggles
	CurrencyDropdownOpen bool
	ColorDropdownOpen    bool
}

func NewSession(userID uuid.UUID) *Session {
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Year:      time.Now().Year(),
		Currency:  "TRY",
		Doors:     "4",
		Condition: catalog.ConditionUsed,
		Step:      StepPhotos,
		Errors:    make(map[string]string),
		Models:    []string{},
		Features:  []string{},
	}
}

// SetField applies one edit to the draft. Price and mileage edits are
// reformatted, a brand edit recomputes the model list and drops a model
// that is no longer in it, and any edit clears that field's validation
// error whether or not the new value is valid.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "brand":
		if value != "" && !catalog.IsBrand(value) {
			return ErrInvalidValue
		}
		s.Brand = value
		s.Models = catalog.ModelsFor(value)
		if !containsString(s.Models, s.Model) {
			s.Model = ""
		}
	case "model":
		s.Model = value
	case "year":
		year, err := strconv.Atoi(value)
		if err != nil || year < 1900 || year > time.Now().Year() {
			return ErrInvalidValue
		}
		s.Year = year
	case "price":
		s.Price = FormatAmount(value)
	case "mileage":
		s.Mileage = FormatAmount(value)
	case "color":
		if value != "" && !catalog.IsColor(value) {
			return ErrInvalidValue
		}
		s.Color = value
		s.ColorDropdownOpen = false
	case "currency":
		if !catalog.IsCurrency(value) {
			return ErrInvalidValue
		}
		s.Currency = value
		s.CurrencyDropdownOpen = false
	case "fuel_type":
		s.FuelType = value
	case "transmission":
		s.Transmission = value
	case "location":
		s.Location = value
	case "description":
		s.Description = value
	case "body_type":
		if value != "" && !catalog.IsBodyType(value) {
			return ErrInvalidValue
		}
		s.BodyType = value
	case "engine_size":
		if value != "" && !catalog.IsEngineSize(value) {
			return ErrInvalidValue
		}
		s.EngineSize = value
	case "power":
		if value != "" && !catalog.IsPower(value) {
			return ErrInvalidValue
		}
		s.Power = value
	case "doors":
		if !catalog.IsDoorCount(value) {
			return ErrInvalidValue
		}
		s.Doors = value
	case "condition":
		if !catalog.IsCondition(value) {
			return ErrInvalidValue
		}
		s.Condition = value
	default:
		return ErrUnknownField
	}

	delete(s.Errors, name)
	return nil
}

// SetFlag sets one of the boolean draft fields. Checkbox edits bypass
// numeric formatting entirely.
func (s *Session) SetFlag(name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "warranty":
		s.Warranty = value
	case "negotiable":
		s.Negotiable = value
	case "exchange":
		s.Exchange = value
	default:
		return ErrUnknownField
	}
	delete(s.Errors, name)
	return nil
}

// ToggleFeature adds the feature when absent and removes it when
// present. Toggling twice restores the original membership.
func (s *Session) ToggleFeature(feature string) error {
	if !catalog.IsFeature(feature) {
		return ErrInvalidValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.Features {
		if f == feature {
			s.Features = append(s.Features[:i], s.Features[i+1:]...)
			return nil
		}
	}
	s.Features = append(s.Features, feature)
	return nil
}

// ToggleDropdown flips the transient open state of the currency or
// color dropdown; opening one closes the other.
func (s *Session) ToggleDropdown(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "currency":
		s.CurrencyDropdownOpen = !s.CurrencyDropdownOpen
		if s.CurrencyDropdownOpen {
			s.ColorDropdownOpen = false
		}
	case "color":
		s.ColorDropdownOpen = !s.ColorDropdownOpen
		if s.ColorDropdownOpen {
			s.CurrencyDropdownOpen = false
		}
	default:
		return ErrUnknownField
	}
	return nil
}

// Next advances the wizard one step. Leaving the photos step requires
// at least one photo; the vehicle-info step advances unconditionally,
// empty values are caught by submit validation later.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.Step {
	case StepPhotos:
		if len(s.Photos) == 0 {
			return ErrNoPhotos
		}
		s.Step = StepVehicleInfo
	case StepVehicleInfo:
		s.Step = StepDetails
	default:
		return ErrAtLastStep
	}
	return nil
}

// Back retreats one step and always succeeds; position floors at the
// photos step.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Step > StepPhotos {
		s.Step--
	}
}

// AddPhotos appends already-validated photos, keeping order.
func (s *Session) AddPhotos(photos []model.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Photos)+len(photos) > MaxPhotos {
		return ErrTooManyPhotos
	}
	s.Photos = append(s.Photos, photos...)
	return nil
}

// RemovePhoto drops the photo at index, preserving order of the rest.
func (s *Session) RemovePhoto(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.Photos) {
		return ErrInvalidValue
	}
	s.Photos = append(s.Photos[:index], s.Photos[index+1:]...)
	return nil
}

// Validate runs the submit-time checks. On failure the wizard is routed
// to the offending step and the error set replaced wholesale; the draft
// itself is untouched. Returns true when the draft may be submitted.
func (s *Session) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Photos) == 0 {
		s.Errors = map[string]string{"photos": "En az bir araç fotoğrafı yüklemelisiniz."}
		s.Step = StepPhotos
		return false
	}

	errs := make(map[string]string)
	for _, field := range requiredFields {
		if s.fieldValue(field) == "" {
			errs[field] = requiredMessages[field]
		}
	}
	if len(errs) > 0 {
		s.Errors = errs
		s.Step = StepDetails
		return false
	}

	s.Errors = make(map[string]string)
	return true
}

func (s *Session) fieldValue(name string) string {
	switch name {
	case "engine_size":
		return s.EngineSize
	case "power":
		return s.Power
	case "location":
		return s.Location
	case "price":
		return s.Price
	case "description":
		return s.Description
	}
	return ""
}

// Record composes the cleaned listing row for submission: grouped
// numeric strings are stripped back to integers.
func (s *Session) Record() model.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	features := make([]string, len(s.Features))
	copy(features, s.Features)

	return model.Listing{
		UserID:       s.UserID,
		Brand:        s.Brand,
		Model:        s.Model,
		Year:         s.Year,
		Mileage:      ParseAmount(s.Mileage),
		Color:        s.Color,
		Price:        ParseAmount(s.Price),
		Currency:     s.Currency,
		FuelType:     s.FuelType,
		Transmission: s.Transmission,
		Location:     s.Location,
		Description:  s.Description,
		BodyType:     s.BodyType,
		EngineSize:   s.EngineSize,
		Power:        s.Power,
		Doors:        s.Doors,
		Condition:    s.Condition,
		Features:     features,
		Warranty:     s.Warranty,
		Negotiable:   s.Negotiable,
		Exchange:     s.Exchange,
	}
}

// PhotoList returns the ordered photo set.
func (s *Session) PhotoList() []model.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := make([]model.Photo, len(s.Photos))
	copy(photos, s.Photos)
	return photos
}

// State is the wire snapshot of a session.
type State struct {
	ID           uuid.UUID         `json:"id"`
	Step         int               `json:"step"`
	Brand        string            `json:"brand"`
	Model        string            `json:"model"`
	Models       []string          `json:"models"`
	Year         int               `json:"year"`
	Mileage      string            `json:"mileage"`
	Color        string            `json:"color"`
	Price        string            `json:"price"`
	Currency     string            `json:"currency"`
	FuelType     string            `json:"fuel_type"`
	Transmission string            `json:"transmission"`
	Location     string            `json:"location"`
	Description  string            `json:"description"`
	BodyType     string            `json:"body_type"`
	EngineSize   string            `json:"engine_size"`
	Power        string            `json:"power"`
	Doors        string            `json:"doors"`
	Condition    string            `json:"condition"`
	Features     []string          `json:"features"`
	Warranty     bool              `json:"warranty"`
	Negotiable   bool              `json:"negotiable"`
	Exchange     bool              `json:"exchange"`
	PhotoCount   int               `json:"photo_count"`
	Errors       map[string]string `json:"errors"`

	CurrencyDropdownOpen bool `json:"currency_dropdown_open"`
	ColorDropdownOpen    bool `json:"color_dropdown_open"`
}

// Snapshot renders the session for clients.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		errs[k] = v
	}
	models := make([]string, len(s.Models))
	copy(models, s.Models)
	features := make([]string, len(s.Features))
	copy(features, s.Features)

	return State{
		ID:           s.ID,
		Step:         s.Step,
		Brand:        s.Brand,
		Model:        s.Model,
		Models:       models,
		Year:         s.Year,
		Mileage:      s.Mileage,
		Color:        s.Color,
		Price:        s.Price,
		Currency:     s.Currency,
		FuelType:     s.FuelType,
		Transmission: s.Transmission,
		Location:     s.Location,
		Description:  s.Description,
		BodyType:     s.BodyType,
		EngineSize:   s.EngineSize,
		Power:        s.Power,
		Doors:        s.Doors,
		Condition:    s.Condition,
		Features:     features,
		Warranty:     s.Warranty,
		Negotiable:   s.Negotiable,
		Exchange:     s.Exchange,
		PhotoCount:   len(s.Photos),
		Errors:       errs,

		CurrencyDropdownOpen: s.CurrencyDropdownOpen,
		ColorDropdownOpen:    s.ColorDropdownOpen,
	}
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

package devserver

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/fittrack/internal/domain"
	"github.com/spec-kit/fittrack/internal/stats"
)

var (
	// ErrUsernameTaken reports a registration name collision.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrNotFound reports a missing record.
	ErrNotFound = errors.New("record not found")
)

// Account is the in-memory account record with all user-owned data.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string

	Profile      domain.Profile
	Meals        []domain.MealLog
	Workouts     []domain.WorkoutLog
	Plans        []domain.WorkoutPlan
	Measurements []domain.Measurement
	History      []domain.ChangeHistoryEntry
}

// Store is the devserver's in-memory data layer. It mirrors the shape of
// the real backend's repositories without any durability.
type Store struct {
	mu sync.RWMutex

	nextUserID        int64
	nextMealID        int64
	nextWorkoutID     int64
	nextPlanID        int64
	nextPlanDayID     int64
	nextMeasurementID int64
	nextHistoryID     int64

	byName map[string]*Account
	byID   map[int64]*Account

	predefined []domain.PredefinedExercise
}

// NewStore returns an empty store with the predefined exercise catalog
// seeded.
func NewStore() *Store {
	s := &Store{
		byName: make(map[string]*Account),
		byID:   make(map[int64]*Account),
	}
	s.seedPredefined()
	return s
}

// CreateAccount registers a new account with a default metric profile.
func (s *Store) CreateAccount(username, passwordHash string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[username]; exists {
		return nil, ErrUsernameTaken
	}

	s.nextUserID++
	now := time.Now()
	acc := &Account{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		Profile: domain.Profile{
			ID:             s.nextUserID,
			Username:       username,
			UnitPreference: domain.UnitsMetric,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
	s.byName[username] = acc
	s.byID[acc.ID] = acc
	return acc, nil
}

// AccountByUsername looks an account up by name.
func (s *Store) AccountByUsername(username string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byName[username]
	return acc, ok
}

// AccountByID looks an account up by id.
func (s *Store) AccountByID(id int64) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.byID[id]
	return acc, ok
}

// AddMeal stores a meal log with computed totals.
func (s *Store) AddMeal(userID int64, foods []domain.FoodItem) (*domain.MealLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}

	for i := range foods {
		if foods[i].ID == "" {
			foods[i].ID = uuid.NewString()
		}
	}

	totals := stats.FoodTotals(foods)
	s.nextMealID++
	meal := domain.MealLog{
		ID:            s.nextMealID,
		CreatedAt:     time.Now(),
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFats:     totals.Fats,
		Foods:         foods,
	}
	acc.Meals = append(acc.Meals, meal)
	return &meal, nil
}

// MealsOf lists a user's meals, newest first.
func (s *Store) MealsOf(userID int64) []domain.MealLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil
	}
	meals := append([]domain.MealLog(nil), acc.Meals...)
	sort.Slice(meals, func(i, j int) bool { return meals[i].CreatedAt.After(meals[j].CreatedAt) })
	return meals
}

// AddWorkout stores a workout log with computed totals. When planDayID is
// non-nil the workout is linked to that plan day.
func (s *Store) AddWorkout(userID int64, exercises []domain.ExerciseItem, planDayID *int64) (*domain.WorkoutLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}

	var dayName *string
	if planDayID != nil {
		day := findPlanDay(acc, *planDayID)
		if day == nil {
			return nil, ErrNotFound
		}
		dayName = &day.DayName
	}

	for i := range exercises {
		if exercises[i].ID == "" {
			exercises[i].ID = uuid.NewString()
		}
	}

	totals := stats.ExerciseTotals(exercises)
	s.nextWorkoutID++
	workout := domain.WorkoutLog{
		ID:                   s.nextWorkoutID,
		CreatedAt:            time.Now(),
		TotalDurationMinutes: totals.DurationMinutes,
		TotalCaloriesBurned:  totals.CaloriesBurned,
		TotalSets:            totals.Sets,
		TotalReps:            totals.Reps,
		WorkoutPlanDayID:     planDayID,
		WorkoutPlanDayName:   dayName,
		Exercises:            exercises,
	}
	acc.Workouts = append(acc.Workouts, workout)
	return &workout, nil
}

// WorkoutsOf lists a user's workouts, newest first.
func (s *Store) WorkoutsOf(userID int64) []domain.WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil
	}
	workouts := append([]domain.WorkoutLog(nil), acc.Workouts...)
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].CreatedAt.After(workouts[j].CreatedAt) })
	return workouts
}

// CreatePlan stores a workout plan, assigning plan and day ids.
func (s *Store) CreatePlan(userID int64, req domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}

	s.nextPlanID++
	plan := domain.WorkoutPlan{
		ID:          s.nextPlanID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
		Days:        s.assignDayIDs(req.Days),
	}
	acc.Plans = append(acc.Plans, plan)
	return &plan, nil
}

// PlansOf lists a user's plans.
func (s *Store) PlansOf(userID int64) []domain.WorkoutPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil
	}
	return append([]domain.WorkoutPlan(nil), acc.Plans...)
}

// PlanByID fetches one of the user's plans.
func (s *Store) PlanByID(userID, planID int64) (*domain.WorkoutPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}
	for i := range acc.Plans {
		if acc.Plans[i].ID == planID {
			plan := acc.Plans[i]
			return &plan, nil
		}
	}
	return nil, ErrNotFound
}

// UpdatePlan replaces a plan's content, keeping its id and creation time.
func (s *Store) UpdatePlan(userID, planID int64, req domain.WorkoutPlanRequest) (*domain.WorkoutPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}
	for i := range acc.Plans {
		if acc.Plans[i].ID == planID {
			acc.Plans[i].Name = req.Name
			acc.Plans[i].Description = req.Description
			acc.Plans[i].Days = s.assignDayIDs(req.Days)
			plan := acc.Plans[i]
			return &plan, nil
		}
	}
	return nil, ErrNotFound
}

// DeletePlan removes a plan.
func (s *Store) DeletePlan(userID, planID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return ErrNotFound
	}
	for i := range acc.Plans {
		if acc.Plans[i].ID == planID {
			acc.Plans = append(acc.Plans[:i], acc.Plans[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// PlanDay fetches a single plan day owned by the user.
func (s *Store) PlanDay(userID, dayID int64) (*domain.WorkoutPlanDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}
	if day := findPlanDay(acc, dayID); day != nil {
		copied := *day
		return &copied, nil
	}
	return nil, ErrNotFound
}

// ProfileOf returns the user's profile with derived age.
func (s *Store) ProfileOf(userID int64) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}
	profile := acc.Profile
	if profile.BirthYear != nil {
		age := time.Now().Year() - *profile.BirthYear
		profile.Age = &age
	}
	return &profile, nil
}

// UpdateProfile applies a partial update and records field-level history.
func (s *Store) UpdateProfile(userID int64, req domain.ProfileUpdateRequest) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}

	if req.BirthYear != nil && !equalIntPtr(acc.Profile.BirthYear, req.BirthYear) {
		s.appendHistory(acc, domain.ChangeEntityProfile, nil, "birthYear",
			intPtrString(acc.Profile.BirthYear), intPtrString(req.BirthYear))
		acc.Profile.BirthYear = req.BirthYear
	}
	if req.Gender != nil && (acc.Profile.Gender == nil || *acc.Profile.Gender != *req.Gender) {
		var old *string
		if acc.Profile.Gender != nil {
			v := string(*acc.Profile.Gender)
			old = &v
		}
		newVal := string(*req.Gender)
		s.appendHistory(acc, domain.ChangeEntityProfile, nil, "gender", old, &newVal)
		acc.Profile.Gender = req.Gender
	}
	if req.UnitPreference != nil && acc.Profile.UnitPreference != *req.UnitPreference {
		old := string(acc.Profile.UnitPreference)
		newVal := string(*req.UnitPreference)
		s.appendHistory(acc, domain.ChangeEntityProfile, nil, "unitPreference", &old, &newVal)
		acc.Profile.UnitPreference = *req.UnitPreference
	}
	acc.Profile.UpdatedAt = time.Now()

	profile := acc.Profile
	if profile.BirthYear != nil {
		age := time.Now().Year() - *profile.BirthYear
		profile.Age = &age
	}
	return &profile, nil
}

// AddMeasurement records a measurement snapshot and histories the fields
// that changed relative to the previous latest measurement.
func (s *Store) AddMeasurement(userID int64, req domain.MeasurementRequest) (*domain.Measurement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil, ErrNotFound
	}

	var prev *domain.Measurement
	if len(acc.Measurements) > 0 {
		prev = &acc.Measurements[len(acc.Measurements)-1]
	}

	s.nextMeasurementID++
	m := domain.Measurement{
		ID:             s.nextMeasurementID,
		RecordedAt:     time.Now(),
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		BodyFatPercent: req.BodyFatPercent,
		NeckCm:         req.NeckCm,
		ShouldersCm:    req.ShouldersCm,
		ChestCm:        req.ChestCm,
		BicepsCm:       req.BicepsCm,
		ForearmsCm:     req.ForearmsCm,
		WaistCm:        req.WaistCm,
		HipsCm:         req.HipsCm,
		ThighsCm:       req.ThighsCm,
		CalvesCm:       req.CalvesCm,
		Notes:          req.Notes,
	}

	for _, field := range measurementFields(&m) {
		var prevVal *float64
		if prev != nil {
			prevVal = field.of(prev)
		}
		if field.value != nil && !equalFloatPtr(prevVal, field.value) {
			s.appendHistory(acc, domain.ChangeEntityMeasurement, &m.ID, field.name,
				floatPtrString(prevVal), floatPtrString(field.value))
		}
	}

	acc.Measurements = append(acc.Measurements, m)
	return &m, nil
}

// MeasurementsOf lists a user's measurements, newest first.
func (s *Store) MeasurementsOf(userID int64) []domain.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil
	}
	ms := append([]domain.Measurement(nil), acc.Measurements...)
	sort.Slice(ms, func(i, j int) bool { return ms[i].RecordedAt.After(ms[j].RecordedAt) })
	return ms
}

// LatestMeasurement returns the most recent measurement, or nil.
func (s *Store) LatestMeasurement(userID int64) *domain.Measurement {
	ms := s.MeasurementsOf(userID)
	if len(ms) == 0 {
		return nil
	}
	return &ms[0]
}

// DeleteMeasurement removes one measurement by id.
func (s *Store) DeleteMeasurement(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return ErrNotFound
	}
	for i := range acc.Measurements {
		if acc.Measurements[i].ID == id {
			acc.Measurements = append(acc.Measurements[:i], acc.Measurements[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// HistoryOf lists recorded changes, newest first.
func (s *Store) HistoryOf(userID int64) []domain.ChangeHistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.byID[userID]
	if !ok {
		return nil
	}
	entries := append([]domain.ChangeHistoryEntry(nil), acc.History...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].ChangedAt.After(entries[j].ChangedAt) })
	return entries
}

// Predefined lists catalog exercises, optionally filtered by category.
func (s *Store) Predefined(category *domain.ExerciseCategory) []domain.PredefinedExercise {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == nil {
		return append([]domain.PredefinedExercise(nil), s.predefined...)
	}
	var filtered []domain.PredefinedExercise
	for _, ex := range s.predefined {
		if ex.Category == *category {
			filtered = append(filtered, ex)
		}
	}
	return filtered
}

// assignDayIDs stamps day ids and fills exercise ids; callers hold the lock.
func (s *Store) assignDayIDs(days []domain.WorkoutPlanDay) []domain.WorkoutPlanDay {
	assigned := append([]domain.WorkoutPlanDay(nil), days...)
	for i := range assigned {
		s.nextPlanDayID++
		assigned[i].ID = s.nextPlanDayID
		exercises := append([]domain.WorkoutPlanExercise(nil), assigned[i].Exercises...)
		for j := range exercises {
			if exercises[j].ID == "" {
				exercises[j].ID = uuid.NewString()
			}
		}
		assigned[i].Exercises = exercises
	}
	return assigned
}

// appendHistory records one field change; callers hold the lock.
func (s *Store) appendHistory(acc *Account, entity domain.ChangeEntityType, entityID *int64, field string, oldVal, newVal *string) {
	s.nextHistoryID++
	acc.History = append(acc.History, domain.ChangeHistoryEntry{
		ID:         s.nextHistoryID,
		EntityType: entity,
		EntityID:   entityID,
		FieldName:  field,
		OldValue:   oldVal,
		NewValue:   newVal,
		ChangedAt:  time.Now(),
	})
}

func (s *Store) seedPredefined() {
	catalog := map[domain.ExerciseCategory][]string{
		domain.CategoryBack:       {"Deadlift", "Pull Up", "Barbell Row", "Lat Pulldown"},
		domain.CategoryChest:      {"Bench Press", "Incline Press", "Chest Fly", "Push Up"},
		domain.CategoryBiceps:     {"Barbell Curl", "Hammer Curl"},
		domain.CategoryTriceps:    {"Tricep Pushdown", "Skull Crusher"},
		domain.CategoryShoulders:  {"Overhead Press", "Lateral Raise"},
		domain.CategoryHamstrings: {"Romanian Deadlift", "Leg Curl"},
		domain.CategoryQuads:      {"Squat", "Leg Press", "Lunge"},
		domain.CategoryGlutes:     {"Hip Thrust", "Glute Bridge"},
		domain.CategoryCalves:     {"Standing Calf Raise"},
		domain.CategoryCore:       {"Plank", "Hanging Leg Raise", "Cable Crunch"},
		domain.CategoryCardio:     {"Running", "Rowing", "Cycling", "Jump Rope"},
	}

	for _, category := range domain.ExerciseCategories() {
		for _, name := range catalog[category] {
			s.predefined = append(s.predefined, domain.PredefinedExercise{
				ID:       uuid.NewString(),
				Name:     name,
				Category: category,
			})
		}
	}
}

func findPlanDay(acc *Account, dayID int64) *domain.WorkoutPlanDay {
	for i := range acc.Plans {
		for j := range acc.Plans[i].Days {
			if acc.Plans[i].Days[j].ID == dayID {
				return &acc.Plans[i].Days[j]
			}
		}
	}
	return nil
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrString(v *int) *string {
	if v == nil {
		return nil
	}
	str := strconv.Itoa(*v)
	return &str
}

func floatPtrString(v *float64) *string {
	if v == nil {
		return nil
	}
	str := fmt.Sprintf("%g", *v)
	return &str
}

// measurementField pairs a wire field name with its value accessor.
type measurementField struct {
	name  string
	value *float64
	of    func(*domain.Measurement) *float64
}

func measurementFields(m *domain.Measurement) []measurementField {
	return []measurementField{
		{"heightCm", m.HeightCm, func(x *domain.Measurement) *float64 { return x.HeightCm }},
		{"weightKg", m.WeightKg, func(x *domain.Measurement) *float64 { return x.WeightKg }},
		{"bodyFatPercent", m.BodyFatPercent, func(x *domain.Measurement) *float64 { return x.BodyFatPercent }},
		{"neckCm", m.NeckCm, func(x *domain.Measurement) *float64 { return x.NeckCm }},
		{"shouldersCm", m.ShouldersCm, func(x *domain.Measurement) *float64 { return x.ShouldersCm }},
		{"chestCm", m.ChestCm, func(x *domain.Measurement) *float64 { return x.ChestCm }},
		{"bicepsCm", m.BicepsCm, func(x *domain.Measurement) *float64 { return x.BicepsCm }},
		{"forearmsCm", m.ForearmsCm, func(x *domain.Measurement) *float64 { return x.ForearmsCm }},
		{"waistCm", m.WaistCm, func(x *domain.Measurement) *float64 { return x.WaistCm }},
		{"hipsCm", m.HipsCm, func(x *domain.Measurement) *float64 { return x.HipsCm }},
		{"thighsCm", m.ThighsCm, func(x *domain.Measurement) *float64 { return x.ThighsCm }},
		{"calvesCm", m.CalvesCm, func(x *domain.Measurement) *float64 { return x.CalvesCm }},
	}
}

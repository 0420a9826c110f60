package relational

import (
	"time"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type userRow struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Username  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_username"`
	Password  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	Seq       seqValue  `gorm:"type:bigint;index:idx_users_seq"`
}

func (userRow) TableName() string { return "users" }

type mealRow struct {
	ID               string            `gorm:"type:varchar(64);primaryKey"`
	UserID           string            `gorm:"type:varchar(64);not null;index:idx_meals_user_id"`
	Title            string            `gorm:"type:text;not null"`
	Ingredients      string            `gorm:"type:text;not null"`
	Instructions     string            `gorm:"type:text;not null"`
	TitleFold        string            `gorm:"type:text;not null;default:''"`
	IngredientsFold  string            `gorm:"type:text;not null;default:''"`
	InstructionsFold string            `gorm:"type:text;not null;default:''"`
	ImageURL         *string           `gorm:"type:text"`
	GalleryImages    models.StringList `gorm:"type:text;not null;default:'[]'"`
	CreatedAt        time.Time         `gorm:"not null;index:idx_meals_created_at"`
	UpdatedAt        time.Time         `gorm:"not null"`
	Seq              seqValue          `gorm:"type:bigint;index:idx_meals_seq"`
	User             *userRow          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (mealRow) TableName() string { return "meals" }

// mealPlanRow has no foreign key on meal_id: deleting a meal leaves the
// entries that reference it in place.
type mealPlanRow struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_meal_plans_slot,priority:1"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_meal_plans_slot,priority:2"`
	MealType  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_meal_plans_slot,priority:3"`
	MealID    string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	Seq       seqValue  `gorm:"type:bigint;index:idx_meal_plans_seq"`
	User      *userRow  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (mealPlanRow) TableName() string { return "meal_plans" }

func newUserRow(u *models.User) userRow {
	return userRow{ID: u.ID, Username: u.Username, Password: u.Password, CreatedAt: u.CreatedAt}
}

func newMealRow(m *models.Meal) mealRow {
	row := mealRow{
		ID:               m.ID,
		UserID:           m.UserID,
		Title:            m.Title,
		Ingredients:      m.Ingredients,
		Instructions:     m.Instructions,
		TitleFold:        store.Fold(m.Title),
		IngredientsFold:  store.Fold(m.Ingredients),
		InstructionsFold: store.Fold(m.Instructions),
		GalleryImages:    models.StringList(m.GalleryImages),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.ImageURL != nil && *m.ImageURL != "" {
		url := *m.ImageURL
		row.ImageURL = &url
	}
	return row
}

func newMealPlanRow(e *models.MealPlanEntry) mealPlanRow {
	return mealPlanRow{
		ID:        e.ID,
		UserID:    e.UserID,
		Date:      e.Date,
		MealType:  string(e.MealType),
		MealID:    e.MealID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

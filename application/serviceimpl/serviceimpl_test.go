package serviceimpl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"questgen/domain/models"
	"questgen/domain/services"
	"questgen/infrastructure/postgres"
)

// fakeGenerator นับจำนวนครั้งที่ถูกเรียก ไว้ assert ว่า workflow
// ไม่ยิง generation service ก่อน resolve user/category สำเร็จ
type fakeGenerator struct {
	calls      int
	lastPrompt string
	text       string
	err        error
}

func (f *fakeGenerator) GenerateTaskDescription(ctx context.Context, categoryName string) (string, error) {
	f.calls++
	f.lastPrompt = categoryName
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeGenerator) Close() error { return nil }

type testEnv struct {
	db        *gorm.DB
	generator *fakeGenerator
	tasks     services.TaskService
	users     services.UserService
	categs    services.CategoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	taskRepo := postgres.NewTaskRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	userRepo := postgres.NewUserRepository(db)
	userTaskRepo := postgres.NewUserTaskRepository(db)

	generator := &fakeGenerator{text: "Run 5km in the park"}

	return &testEnv{
		db:        db,
		generator: generator,
		tasks:     NewTaskService(taskRepo, categoryRepo, userRepo, userTaskRepo, generator, 5*time.Second),
		users:     NewUserService(userRepo, userTaskRepo),
		categs:    NewCategoryService(categoryRepo),
	}
}

func (e *testEnv) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := e.db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

func (e *testEnv) seedUser(t *testing.T, telegramID int64) *models.User {
	t.Helper()
	user := &models.User{TelegramID: telegramID, FirstName: "Test"}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %d: %v", telegramID, err)
	}
	return user
}

func (e *testEnv) seedTask(t *testing.T, categoryID uint, description string) *models.Task {
	t.Helper()
	task := &models.Task{Description: description, CategoryID: categoryID}
	if err := e.db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func (e *testEnv) taskCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(&models.Task{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count tasks: %v", err)
	}
	return count
}

func strPtr(s string) *string { return &s }

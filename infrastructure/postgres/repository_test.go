package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"questgen/domain/dto"
	"questgen/domain/models"
)

// openTestDB เปิด in-memory SQLite พร้อม foreign key enforcement
// เพื่อให้ cascade semantics ตรงกับ postgres จริง
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

func seedUser(t *testing.T, db *gorm.DB, telegramID int64) *models.User {
	t.Helper()
	user := &models.User{TelegramID: telegramID, FirstName: "Test"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %d: %v", telegramID, err)
	}
	return user
}

func seedTask(t *testing.T, db *gorm.DB, categoryID uint, description string) *models.Task {
	t.Helper()
	task := &models.Task{Description: description, CategoryID: categoryID}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return task
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func TestCategoryUniqueName(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Category{Name: "Sport"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	err := repo.Create(ctx, &models.Category{Name: "Sport"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate create error = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestUserUniqueTelegramID(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.User{TelegramID: 42, FirstName: "A"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	err := repo.Create(ctx, &models.User{TelegramID: 42, FirstName: "B"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate create error = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestDeleteCategoryCascadesToTasksAndAssignments(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	category := seedCategory(t, db, "Sport")
	other := seedCategory(t, db, "Art")
	user := seedUser(t, db, 42)

	task := seedTask(t, db, category.ID, "Run 5km")
	otherTask := seedTask(t, db, other.ID, "Paint a sunset")

	for _, taskID := range []uint{task.ID, otherTask.ID} {
		if err := db.Create(&models.UserTask{UserID: user.ID, TaskID: taskID, Status: models.UserTaskStatusAssigned}).Error; err != nil {
			t.Fatalf("failed to seed assignment: %v", err)
		}
	}

	if err := NewCategoryRepository(db).Delete(ctx, category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	if got := countRows(t, db, &models.Task{}); got != 1 {
		t.Errorf("tasks remaining = %d, want 1", got)
	}
	if got := countRows(t, db, &models.UserTask{}); got != 1 {
		t.Errorf("assignments remaining = %d, want 1", got)
	}

	// category อื่นต้องไม่โดนกระทบ
	var survivor models.Task
	if err := db.First(&survivor, otherTask.ID).Error; err != nil {
		t.Errorf("unrelated task was deleted: %v", err)
	}
}

func TestDeleteUserCascadesToAssignments(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	category := seedCategory(t, db, "Sport")
	user := seedUser(t, db, 42)
	task := seedTask(t, db, category.ID, "Run 5km")

	if err := db.Create(&models.UserTask{UserID: user.ID, TaskID: task.ID, Status: models.UserTaskStatusAssigned}).Error; err != nil {
		t.Fatalf("failed to seed assignment: %v", err)
	}

	if err := NewUserRepository(db).Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}

	if got := countRows(t, db, &models.UserTask{}); got != 0 {
		t.Errorf("assignments remaining = %d, want 0", got)
	}
	// task ยังอยู่ เพราะ cascade วิ่งจาก user ไป assignments เท่านั้น
	if got := countRows(t, db, &models.Task{}); got != 1 {
		t.Errorf("tasks remaining = %d, want 1", got)
	}
}

func TestDeleteTaskCascadesToAssignments(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	category := seedCategory(t, db, "Sport")
	user := seedUser(t, db, 42)
	task := seedTask(t, db, category.ID, "Run 5km")

	if err := db.Create(&models.UserTask{UserID: user.ID, TaskID: task.ID, Status: models.UserTaskStatusAssigned}).Error; err != nil {
		t.Fatalf("failed to seed assignment: %v", err)
	}

	if err := NewTaskRepository(db).Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete task failed: %v", err)
	}

	if got := countRows(t, db, &models.UserTask{}); got != 0 {
		t.Errorf("assignments remaining = %d, want 0", got)
	}
}

func TestCreateWithAssignmentIsAtomic(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Sport")
	user := seedUser(t, db, 42)

	task := &models.Task{Description: "Run 5km", CategoryID: category.ID}
	if err := repo.CreateWithAssignment(ctx, task, user.ID); err != nil {
		t.Fatalf("CreateWithAssignment failed: %v", err)
	}

	if got := countRows(t, db, &models.Task{}); got != 1 {
		t.Errorf("tasks = %d, want 1", got)
	}
	if got := countRows(t, db, &models.UserTask{}); got != 1 {
		t.Errorf("assignments = %d, want 1", got)
	}

	// assignment fail (user ไม่มีจริง) ต้อง rollback task ด้วย
	badTask := &models.Task{Description: "Orphan", CategoryID: category.ID}
	if err := repo.CreateWithAssignment(ctx, badTask, user.ID+999); err == nil {
		t.Fatal("CreateWithAssignment with unknown user succeeded, want error")
	}

	if got := countRows(t, db, &models.Task{}); got != 1 {
		t.Errorf("tasks after rollback = %d, want 1 (no orphan)", got)
	}
}

func TestGetByTaskAndUserReturnsLatest(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserTaskRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Sport")
	user := seedUser(t, db, 42)
	task := seedTask(t, db, category.ID, "Run 5km")

	// assign ซ้ำ = history สองแถว
	first := &models.UserTask{UserID: user.ID, TaskID: task.ID, Status: models.UserTaskStatusCompleted}
	second := &models.UserTask{UserID: user.ID, TaskID: task.ID, Status: models.UserTaskStatusAssigned}
	for _, userTask := range []*models.UserTask{first, second} {
		if err := repo.Create(ctx, userTask); err != nil {
			t.Fatalf("failed to create assignment: %v", err)
		}
	}

	got, err := repo.GetByTaskAndUser(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("GetByTaskAndUser failed: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("got assignment %d, want latest %d", got.ID, second.ID)
	}

	_, err = repo.GetByTaskAndUser(ctx, task.ID, user.ID+1)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing assignment error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestListByUserFiltersStatusAndPreloads(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserTaskRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Sport")
	user := seedUser(t, db, 42)
	otherUser := seedUser(t, db, 43)

	done := seedTask(t, db, category.ID, "Run 5km")
	pending := seedTask(t, db, category.ID, "Swim 1km")

	assignments := []*models.UserTask{
		{UserID: user.ID, TaskID: done.ID, Status: models.UserTaskStatusCompleted},
		{UserID: user.ID, TaskID: pending.ID, Status: models.UserTaskStatusAssigned},
		{UserID: otherUser.ID, TaskID: pending.ID, Status: models.UserTaskStatusCompleted},
	}
	for _, userTask := range assignments {
		if err := repo.Create(ctx, userTask); err != nil {
			t.Fatalf("failed to create assignment: %v", err)
		}
	}

	completed, err := repo.ListByUser(ctx, user.ID, models.UserTaskStatusCompleted)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("completed assignments = %d, want 1", len(completed))
	}
	if completed[0].Task.Description != "Run 5km" {
		t.Errorf("Task not preloaded, description = %q", completed[0].Task.Description)
	}
	if completed[0].Task.Category.Name != "Sport" {
		t.Errorf("Category not preloaded, name = %q", completed[0].Task.Category.Name)
	}

	all, err := repo.ListByUser(ctx, user.ID, "")
	if err != nil {
		t.Fatalf("ListByUser without filter failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all assignments = %d, want 2", len(all))
	}
}

func TestUserListFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := &models.User{TelegramID: 1, FirstName: "Alice", Username: "alice"}
	bob := &models.User{TelegramID: 2, FirstName: "Bob", Username: "bob"}
	for _, user := range []*models.User{alice, bob} {
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	telegramID := int64(2)
	users, err := repo.List(ctx, &dto.UserFilter{TelegramID: &telegramID})
	if err != nil {
		t.Fatalf("List by telegram_id failed: %v", err)
	}
	if len(users) != 1 || users[0].FirstName != "Bob" {
		t.Errorf("filtered users = %+v, want only Bob", users)
	}

	username := "alice"
	users, err = repo.List(ctx, &dto.UserFilter{Username: &username})
	if err != nil {
		t.Fatalf("List by username failed: %v", err)
	}
	if len(users) != 1 || users[0].FirstName != "Alice" {
		t.Errorf("filtered users = %+v, want only Alice", users)
	}

	users, err = repo.List(ctx, &dto.UserFilter{})
	if err != nil {
		t.Fatalf("List without filter failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("all users = %d, want 2", len(users))
	}
}

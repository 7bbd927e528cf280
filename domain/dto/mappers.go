package dto

import "questgen/domain/models"

func CategoryToCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryToCategoryResponse(category)
	}
	return responses
}

// TaskToTaskResponse ต้องการ Category ที่ preload มาแล้ว
func TaskToTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Category:    task.Category.Name,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = TaskToTaskResponse(task)
	}
	return responses
}

func UserToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
	}
}

func UsersToUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = UserToUserResponse(user)
	}
	return responses
}

func UserTaskToUserTaskResponse(userTask *models.UserTask) UserTaskResponse {
	return UserTaskResponse{
		TaskID:       userTask.TaskID,
		Description:  userTask.Task.Description,
		CategoryName: userTask.Task.Category.Name,
		Status:       userTask.Status,
		AssignedAt:   userTask.CreatedAt,
		CompletedAt:  userTask.CompletedAt,
	}
}

func UserTasksToUserTaskResponses(userTasks []*models.UserTask) []UserTaskResponse {
	responses := make([]UserTaskResponse, len(userTasks))
	for i, userTask := range userTasks {
		responses[i] = UserTaskToUserTaskResponse(userTask)
	}
	return responses
}

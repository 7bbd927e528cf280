package dto

// === Requests ===

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=80"`
}

// UpdateCategoryRequest ใช้ pointer เพื่อแยก "ไม่ส่ง field" ออกจาก "ส่งค่าว่าง"
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=80"`
}

// === Responses ===

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

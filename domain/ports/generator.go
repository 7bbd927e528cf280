package ports

import "context"

// TaskGeneratorPort คือ outbound port ไปยัง external text-generation service
// implementation อยู่ใน infrastructure/ai
type TaskGeneratorPort interface {
	// GenerateTaskDescription สร้างคำอธิบาย task สั้นๆ ตาม category ที่ให้
	// คืน text ที่ trim whitespace แล้ว (ไม่ retry ให้, fail ครั้งเดียวคือ fail)
	GenerateTaskDescription(ctx context.Context, categoryName string) (string, error)

	Close() error
}

package utils

import "math/rand"

// PickRandom เลือกสมาชิก 1 ตัวจาก slice แบบ uniform
// ใช้แทน ORDER BY random() เพื่อให้ distribution ชัดเจนและไม่ผูกกับ store
func PickRandom[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[rand.Intn(len(items))], true
}

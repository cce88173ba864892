package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Detail string `json:"detail" example:"Activity not found"` // รายละเอียดของ Error
}

// MessageResponse ใช้เป็นโครงสร้าง JSON Response เมื่อ operation สำเร็จ
type MessageResponse struct {
	Message string `json:"message" example:"Signed up test@mergington.edu for Chess Club"`
}

// HealthResponse สถานะของ API สำหรับ health check
type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	Activities int    `json:"activities" example:"3"`
}

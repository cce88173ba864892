package models

// Activity กิจกรรมชุมนุมหนึ่งรายการของโรงเรียน
// JSON field name เป็น snake_case ตาม contract ของ API
type Activity struct {
	Description     string   `json:"description" validate:"required" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" validate:"required" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" validate:"gt=0" example:"12"`
	Participants    []string `json:"participants" validate:"unique" example:"michael@mergington.edu,daniel@mergington.edu"`
}

// ActivityDirectory - mapping จากชื่อกิจกรรม (case-sensitive) ไปยัง Activity
type ActivityDirectory map[string]Activity

// HasParticipant เช็คว่า email นี้ลงทะเบียนกิจกรรมแล้วหรือยัง
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull เช็คว่ากิจกรรมเต็มโควต้าแล้วหรือยัง
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

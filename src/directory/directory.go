package directory

import (
	"Backend-Mergington/src/models"
	"errors"
	"sync"
)

// Error มาตรฐานของ storage layer - service/controller ใช้ errors.Is เช็คได้
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAlreadySignedUp     = errors.New("already signed up")
	ErrActivityFull        = errors.New("activity is full")
)

// Directory - in-memory store ของกิจกรรมทั้งหมด
// mutex กันการ check-then-mutate ชนกันตอน Fiber รับ request พร้อมกันหลายตัว
type Directory struct {
	mu         sync.RWMutex
	activities models.ActivityDirectory
}

// New สร้าง Directory จาก seed set (deep copy - ไม่ alias กับ seed เดิม)
func New(seed models.ActivityDirectory) *Directory {
	d := &Directory{activities: models.ActivityDirectory{}}
	d.Reset(seed)
	return d
}

// Reset ล้างข้อมูลทั้งหมดแล้ว seed ใหม่ - ใช้ตอน start process และใน test
func (d *Directory) Reset(seed models.ActivityDirectory) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.activities = make(models.ActivityDirectory, len(seed))
	for name, activity := range seed {
		d.activities[name] = copyActivity(activity)
	}
}

// Snapshot คืนค่า deep copy ของ directory ทั้งหมด
// caller แก้ค่าที่ได้ไปโดยไม่กระทบ store
func (d *Directory) Snapshot() models.ActivityDirectory {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := make(models.ActivityDirectory, len(d.activities))
	for name, activity := range d.activities {
		snapshot[name] = copyActivity(activity)
	}
	return snapshot
}

// Get ดึงกิจกรรมตามชื่อ (deep copy)
func (d *Directory) Get(name string) (models.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	activity, ok := d.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	return copyActivity(activity), nil
}

// Count จำนวนกิจกรรมทั้งหมดใน directory
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.activities)
}

// Signup เพิ่ม email ต่อท้าย participants ของกิจกรรม (ลำดับ = ลำดับการสมัคร)
// ทุกเงื่อนไขเช็คใต้ lock เดียวกัน กัน duplicate จาก request ที่มาพร้อมกัน
func (d *Directory) Signup(name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	// กันลงซ้ำ
	if activity.HasParticipant(email) {
		return ErrAlreadySignedUp
	}

	// กันเต็มโควต้า
	if activity.IsFull() {
		return ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	d.activities[name] = activity
	return nil
}

// Unregister ลบ email ออกจาก participants ของกิจกรรม
// email ที่ถูกลบแล้วสามารถ Signup ใหม่ได้เสมอ
func (d *Directory) Unregister(name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			d.activities[name] = activity
			return nil
		}
	}
	return ErrParticipantNotFound
}

func copyActivity(a models.Activity) models.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

package activities

import (
	"Backend-Mergington/src/directory"
	"Backend-Mergington/src/models"
	"Backend-Mergington/src/observability"
	"errors"

	"go.uber.org/zap"
)

// Service - business operation ของกิจกรรมทั้งหมด ทำงานบน directory ที่ inject เข้ามา
type Service struct {
	dir *directory.Directory
	log *zap.Logger
}

func NewService(dir *directory.Directory, log *zap.Logger) *Service {
	return &Service{dir: dir, log: log}
}

// GetAllActivities ดึงกิจกรรมทั้งหมด (snapshot - แก้ค่าที่ได้ไปไม่กระทบ store)
func (s *Service) GetAllActivities() models.ActivityDirectory {
	observability.ListRequestsTotal.Inc()
	return s.dir.Snapshot()
}

// ActivityCount จำนวนกิจกรรมใน directory (ใช้ใน health check)
func (s *Service) ActivityCount() int {
	return s.dir.Count()
}

// ✅ 1. Student สมัครกิจกรรม (ลงซ้ำไม่ได้ + กันเต็มโควต้า)
func (s *Service) Signup(activityName, email string) error {
	if err := s.dir.Signup(activityName, email); err != nil {
		observability.SignupRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		s.log.Warn("signup rejected",
			zap.String("activity", activityName),
			zap.String("email", email),
			zap.Error(err),
		)
		return err
	}

	observability.SignupsTotal.Inc()
	s.log.Info("student signed up",
		zap.String("activity", activityName),
		zap.String("email", email),
	)
	return nil
}

// ✅ 2. Student ยกเลิกการสมัครกิจกรรม (ลบแล้วสมัครใหม่ได้เสมอ)
func (s *Service) Unregister(activityName, email string) error {
	if err := s.dir.Unregister(activityName, email); err != nil {
		s.log.Warn("unregister rejected",
			zap.String("activity", activityName),
			zap.String("email", email),
			zap.Error(err),
		)
		return err
	}

	observability.RemovalsTotal.Inc()
	s.log.Info("student removed",
		zap.String("activity", activityName),
		zap.String("email", email),
	)
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, directory.ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, directory.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, directory.ErrActivityFull):
		return "activity_full"
	default:
		return "other"
	}
}

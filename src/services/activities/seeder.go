package activities

import (
	"Backend-Mergington/src/models"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DefaultActivities - seed set ของกิจกรรมตอน start process
// restart แล้วข้อมูลกลับมาเป็นชุดนี้เสมอ (ไม่มี persistence)
func DefaultActivities() models.ActivityDirectory {
	return models.ActivityDirectory{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}

// ValidateSeed ตรวจ seed set ก่อนเปิด server
// 1) field ครบตาม validate tag  2) จำนวนผู้สมัครไม่เกินโควต้า
func ValidateSeed(seed models.ActivityDirectory) error {
	for name, activity := range seed {
		if name == "" {
			return fmt.Errorf("seed contains an activity with an empty name")
		}
		if err := validate.Struct(activity); err != nil {
			return fmt.Errorf("seed activity %q is invalid: %w", name, err)
		}
		if len(activity.Participants) > activity.MaxParticipants {
			return fmt.Errorf("seed activity %q has %d participants but max is %d",
				name, len(activity.Participants), activity.MaxParticipants)
		}
	}
	return nil
}

package entity

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// CanAdvanceTo reports whether a booking in status s may move to next.
// The only legal transition is pending -> done.
func (s Status) CanAdvanceTo(next Status) bool {
	return s == StatusPending && next == StatusDone
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusDone
}

type Appointment struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	DoctorID    int    `json:"doctorId" gorm:"not null"` // References: doctors(id)
	DoctorName  string `json:"doctorName" gorm:"not null"`
	PatientName string `json:"patientName" gorm:"not null"`
	Status      Status `json:"status" gorm:"not null;default:pending"`
}
